package helper

import (
	"os"
	"strings"
)

// ResolveEnv resolves values of the form "ENV:NAME" to the value of the
// environment variable NAME. Anything else is returned unchanged.
func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}
