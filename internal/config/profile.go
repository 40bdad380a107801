package config

import (
	"os"
	"path/filepath"

	"github.com/aaraujo/ssbctl/internal/helper"
	"github.com/hashicorp/hcl"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Profile holds the connection settings read from the ssbctl config file.
//
//	server {
//	    base_url = "https://ssb.example.com:18121"
//	    username = "admin"
//	    password = "ENV:SSB_PASSWORD"
//	}
type Profile struct {
	Server *Server `hcl:"server"`
}

type Server struct {
	BaseURL  string `hcl:"base_url"`
	Username string `hcl:"username"`
	Password string `hcl:"password"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ssbctl.hcl")
}

// Load reads and parses the profile at path. A missing file yields an empty
// profile, so running with flags only needs no config file at all. Values
// support ENV: indirection.
func Load(path string) (*Profile, error) {
	profile := Profile{}

	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("found config file: %s", path)

	if err := hcl.Unmarshal(contents, &profile); err != nil {
		return nil, errors.Wrapf(err, "could not parse configuration file %s", path)
	}

	if profile.Server != nil {
		profile.Server.BaseURL = helper.ResolveEnv(profile.Server.BaseURL)
		profile.Server.Username = helper.ResolveEnv(profile.Server.Username)
		profile.Server.Password = helper.ResolveEnv(profile.Server.Password)
	}

	return &profile, nil
}
