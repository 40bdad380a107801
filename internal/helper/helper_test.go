package helper_test

import (
	"testing"

	"github.com/aaraujo/ssbctl/internal/helper"
	"github.com/stretchr/testify/assert"
)

func TestResolveEnv(t *testing.T) {
	t.Setenv("SSB_USER", "admin")

	assert.Equal(t, "admin", helper.ResolveEnv("ENV:SSB_USER"))
	assert.Equal(t, "plain-value", helper.ResolveEnv("plain-value"))
	assert.Equal(t, "", helper.ResolveEnv("ENV:SSB_UNSET_VARIABLE"))
}
