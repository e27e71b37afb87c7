package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-api/internal/secrets"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func withSecrets() *StructuredConfig {
	return &StructuredConfig{Secrets: Secrets{
		DBPassword: "db_secret",
		APIKey:     "api_secret",
		SigningKey: "jwt_secret",
	}}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsAndSecrets verifies that defaults plus secrets form a
// valid configuration.
func TestBuild_DefaultsAndSecrets(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, withSecrets())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultEnv, cfg.App.Env)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(102400), cfg.Server.MaxBodySize)
	assert.Zero(t, cfg.Server.RateLimitRPS)
	assert.Equal(t, DriverMemory, cfg.Storage.DB.Driver)
	assert.Equal(t, secrets.Secret("api_secret"), cfg.Secrets.APIKey)
}

// TestBuild_EmptyBuilder verifies that building with no configs fails
// because the secrets are missing.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingSecrets)
}

// TestBuild_MissingSingleSecret verifies that each secret is required and
// that the error names the field but not any value.
func TestBuild_MissingSingleSecret(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	partial := withSecrets()
	partial.Secrets.SigningKey = ""
	b.configs = append(b.configs, partial)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrMissingSecrets)
	assert.Contains(t, err.Error(), "SigningKey")
	assert.NotContains(t, err.Error(), "api_secret")
	assert.NotContains(t, err.Error(), "db_secret")
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that later non-zero fields win and
// zero fields keep the earlier value.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		withSecrets(),
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:8080"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9090", MaxBodySize: 1024}},
		&StructuredConfig{App: App{Env: "production"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, int64(1024), cfg.Server.MaxBodySize)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, secrets.Secret("db_secret"), cfg.Secrets.DBPassword)
}

// TestBuild_InvalidStorage verifies driver and DSN validation.
func TestBuild_InvalidStorage(t *testing.T) {
	tests := []struct {
		name string
		db   DB
	}{
		{name: "unknown driver", db: DB{Driver: "mongo"}},
		{name: "postgres without dsn", db: DB{Driver: DriverPostgres}},
		{name: "sqlite without dsn", db: DB{Driver: DriverSQLite}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder().withDefaults()
			b.configs = append(b.configs, withSecrets(), &StructuredConfig{Storage: Storage{DB: tt.db}})

			_, err := b.build()
			assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
		})
	}
}

// TestBuild_InvalidServer verifies limit validation.
func TestBuild_InvalidServer(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, withSecrets(), &StructuredConfig{Server: Server{RateLimitBurst: -1}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_ENV", "env-label")
	t.Setenv("JWT_SECRET", "env-secret")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-label", b.configs[0].App.Env)
	assert.Equal(t, secrets.Secret("env-secret"), b.configs[0].Secrets.SigningKey)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a conversion failure is
// recorded on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedFlags verifies that parsed flags are appended.
func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-a", ":8081"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, ":8081", b.configs[0].Server.HTTPAddress)
}

// TestWithFlags_SetsErrorOnBadFlag verifies that parse errors are recorded.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Env = "json-env"
	payload.Server.RequestTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-env", b.configs[1].App.Env)
	assert.Equal(t, 5*time.Second, b.configs[1].Server.RequestTimeout)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Env = "first"
	last := StructuredJSONConfig{}
	last.App.Env = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Env)
}

// TestWithJSON_SkipsWhenErrorAlreadySet verifies that an earlier error stops
// the JSON file from being read.
func TestWithJSON_SkipsWhenErrorAlreadySet(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies env < flags < JSON.
func TestGetStructuredConfig_Priority(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"DB_PASSWORD":            "db_secret",
		"API_KEY":                "api_secret",
		"JWT_SECRET":             "jwt_secret",
		"SERVER_ADDRESS":         ":4000",
		"SERVER_REQUEST_TIMEOUT": "20s",
		"APP_ENV":                "from-env",
	})

	payload := StructuredJSONConfig{}
	payload.App.Env = "from-json"
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetStructuredConfig([]string{"-a", ":5000", "-env", "from-flags", "-c", path})

	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "from-json", cfg.App.Env)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestGetStructuredConfig_MissingSecrets verifies startup fails without
// secrets.
func TestGetStructuredConfig_MissingSecrets(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingSecrets)
}
