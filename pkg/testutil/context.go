package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/jt/pkg/adapters"
)

// ConfigHome is the XDG_CONFIG_HOME every test context gets unless the
// test sets its own, so the real user config is never read
const ConfigHome = "/test/config"

// ConfigPath is where the user config file lives under ConfigHome
const ConfigPath = ConfigHome + "/jt/config.toml"

// NewContext builds an in-memory execution context from cfg
func NewContext(t *testing.T, cfg adapters.MemoryConfig) *adapters.MemoryContext {
	t.Helper()

	env := make(map[string]string, len(cfg.Env)+1)
	for k, v := range cfg.Env {
		env[k] = v
	}
	if _, ok := env["XDG_CONFIG_HOME"]; !ok {
		env["XDG_CONFIG_HOME"] = ConfigHome
	}
	cfg.Env = env

	ctx, err := adapters.NewMemoryContext(cfg)
	require.NoError(t, err)
	return ctx
}
