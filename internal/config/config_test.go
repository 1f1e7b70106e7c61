package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("PLANNER_ACTIVITY_WINDOW_DAYS", "14")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 14, cfg.Planner.ActivityWindowDays)
	assert.Equal(t, 3, cfg.Planner.IntensitySaturationDays)
	assert.Equal(t, 15*time.Minute, cfg.S3.URLExpiry)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
database:
  driver: mongo
  uri: mongodb://db:27017
  name: planner_test
jwt:
  secret: from-file
log:
  level: debug
  format: json
s3:
  region: eu-central-1
  bucket_name: media
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "planner_test", cfg.Database.Name)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.S3.Enabled())
}

func TestValidate(t *testing.T) {
	valid := Config{
		Database: DatabaseConfig{Driver: DriverMemory},
		JWT:      JWTConfig{Secret: "x"},
		Planner:  PlannerConfig{ActivityWindowDays: 7, IntensitySaturationDays: 3},
	}
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(c *Config){
		"unknown driver":     func(c *Config) { c.Database.Driver = "postgres" },
		"mongo without uri":  func(c *Config) { c.Database.Driver = DriverMongo },
		"missing secret":     func(c *Config) { c.JWT.Secret = "" },
		"window too large":   func(c *Config) { c.Planner.ActivityWindowDays = 365 },
		"saturation zero":    func(c *Config) { c.Planner.IntensitySaturationDays = 0 },
		"unknown log format": func(c *Config) { c.Log.Format = "xml" },
	} {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
