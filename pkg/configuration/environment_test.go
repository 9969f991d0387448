package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration_Defaults(t *testing.T) {
	t.Setenv("LOG_PATH", t.TempDir()+"/app.log")

	c := &Configuration{}
	require.NoError(t, c.load(nil))
	t.Cleanup(c.Unload)

	assert.Equal(t, "fluxion", c.Database.Name)
	assert.Equal(t, 3200, c.ServerPort)
	assert.Equal(t, 20, c.PageSize)
	assert.Equal(t, 100, c.MaxPageSize)
	assert.Equal(t, "disabled", c.RLSEnforce)
	assert.Equal(t, ":3200", c.Address())
}

func TestConfiguration_DatabaseConnectionString(t *testing.T) {
	d := DatabaseOptions{
		Name:     "fluxion",
		Host:     "db.internal",
		Port:     "6432",
		User:     "svc",
		Password: "secret",
	}
	assert.Equal(t,
		"host=db.internal port=6432 user=svc dbname=fluxion password=secret sslmode=disable",
		d.ConnectionString(),
	)
}

func TestConfiguration_InvalidRLSMode(t *testing.T) {
	t.Setenv("LOG_PATH", t.TempDir()+"/app.log")
	t.Setenv("RLS_ENFORCE", "sometimes")

	c := &Configuration{}
	err := c.load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RLS_ENFORCE")
}

func TestRateLimitOptions_Validate(t *testing.T) {
	cases := []struct {
		name    string
		opts    RateLimitOptions
		wantErr bool
	}{
		{"memory default", RateLimitOptions{GlobalRPS: 100, Storage: "memory"}, false},
		{"negative rps", RateLimitOptions{GlobalRPS: -1, Storage: "memory"}, true},
		{"unknown storage", RateLimitOptions{GlobalRPS: 10, Storage: "etcd"}, true},
		{"redis without url", RateLimitOptions{GlobalRPS: 10, Storage: "redis"}, true},
		{"redis with url", RateLimitOptions{GlobalRPS: 10, Storage: "redis", RedisURL: "redis://localhost:6379"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfiguration_LogLevelMapping(t *testing.T) {
	c := &Configuration{LogLevel: "info"}
	assert.Equal(t, "info", c.LogrusLogLevel().String())

	c.LogLevel = "unknown"
	assert.Equal(t, "error", c.LogrusLogLevel().String())
}
