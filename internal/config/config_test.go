package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testYAML = `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
  timeout: "30s"
  cors:
    allow_origins:
      - "https://admin.example.com"
    allow_credentials: true
    max_age: "12h"
database:
  driver: "postgres"
  sqlite:
    path: "data/test.db"
  postgres:
    host: "db.example.com"
    port: 5433
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "require"
  pool:
    max_idle_conns: 5
    max_open_conns: 50
    conn_max_lifetime: "30m"
log:
  level: "info"
  format: "json"
auth:
  enabled: true
  jwt_secret: "Abcdefghijklmnopqrstuvwxyz123456"
  token_expiry: "24h"
assets:
  public_base_url: "https://cdn.example.com"
  upload_dir: "var/uploads"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// validBaseYAML returns a minimal valid YAML config (sqlite, debug mode) with
// the given extra section appended.
func validBaseYAML(extras string) string {
	return `server:
  host: "0.0.0.0"
  port: 8080
  mode: "debug"
database:
  driver: "sqlite"
  sqlite:
    path: "data/app.db"
log:
  level: "info"
  format: "text"
assets:
  upload_dir: "uploads"
` + extras
}

func TestLoad_FullYAML(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Server.Mode = %q, want %q", cfg.Server.Mode, "release")
	}
	if cfg.Server.Timeout != "30s" {
		t.Errorf("Server.Timeout = %q, want %q", cfg.Server.Timeout, "30s")
	}

	// CORS
	if len(cfg.Server.CORS.AllowOrigins) != 1 || cfg.Server.CORS.AllowOrigins[0] != "https://admin.example.com" {
		t.Errorf("CORS.AllowOrigins = %v, want [https://admin.example.com]", cfg.Server.CORS.AllowOrigins)
	}
	if !cfg.Server.CORS.AllowCredentials {
		t.Error("CORS.AllowCredentials = false, want true")
	}
	if cfg.Server.CORS.MaxAge != "12h" {
		t.Errorf("CORS.MaxAge = %q, want %q", cfg.Server.CORS.MaxAge, "12h")
	}

	// Database
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "postgres")
	}
	if cfg.Database.SQLite.Path != "data/test.db" {
		t.Errorf("SQLite.Path = %q, want %q", cfg.Database.SQLite.Path, "data/test.db")
	}
	if cfg.Database.Postgres.Host != "db.example.com" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Database.Postgres.Host, "db.example.com")
	}
	if cfg.Database.Postgres.Port != 5433 {
		t.Errorf("Postgres.Port = %d, want %d", cfg.Database.Postgres.Port, 5433)
	}
	if cfg.Database.Postgres.User != "admin" {
		t.Errorf("Postgres.User = %q, want %q", cfg.Database.Postgres.User, "admin")
	}
	if cfg.Database.Postgres.Password != "secret" {
		t.Errorf("Postgres.Password = %q, want %q", cfg.Database.Postgres.Password, "secret")
	}
	if cfg.Database.Postgres.DBName != "testdb" {
		t.Errorf("Postgres.DBName = %q, want %q", cfg.Database.Postgres.DBName, "testdb")
	}
	if cfg.Database.Postgres.SSLMode != "require" {
		t.Errorf("Postgres.SSLMode = %q, want %q", cfg.Database.Postgres.SSLMode, "require")
	}

	// Pool
	if cfg.Database.Pool.MaxIdleConns != 5 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 5)
	}
	if cfg.Database.Pool.MaxOpenConns != 50 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d", cfg.Database.Pool.MaxOpenConns, 50)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "30m" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q", cfg.Database.Pool.ConnMaxLifetime, "30m")
	}

	// Log
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}

	// Auth
	if !cfg.Auth.Enabled {
		t.Error("Auth.Enabled = false, want true")
	}
	if cfg.Auth.JWTSecret != "Abcdefghijklmnopqrstuvwxyz123456" {
		t.Errorf("Auth.JWTSecret = %q, unexpected", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenExpiry != "24h" {
		t.Errorf("Auth.TokenExpiry = %q, want %q", cfg.Auth.TokenExpiry, "24h")
	}

	// Assets
	if cfg.Assets.PublicBaseURL != "https://cdn.example.com" {
		t.Errorf("Assets.PublicBaseURL = %q, want %q", cfg.Assets.PublicBaseURL, "https://cdn.example.com")
	}
	if cfg.Assets.UploadDir != "var/uploads" {
		t.Errorf("Assets.UploadDir = %q, want %q", cfg.Assets.UploadDir, "var/uploads")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, validBaseYAML(""))

	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__LOG__LEVEL", "error")

	// PoolConfig keys contain single underscores, which must be preserved:
	// only double underscores act as hierarchy separators.
	t.Setenv("APP__DATABASE__POOL__MAX_IDLE_CONNS", "20")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want env override %d", cfg.Server.Port, 9090)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want env override %q", cfg.Log.Level, "error")
	}
	if cfg.Database.Pool.MaxIdleConns != 20 {
		t.Errorf("Pool.MaxIdleConns = %d, want env override %d", cfg.Database.Pool.MaxIdleConns, 20)
	}

	// Fields without overrides keep their file values.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want file value %q", cfg.Server.Host, "0.0.0.0")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing config file, got nil")
	}
}

func TestLoad_InvalidServerMode(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `mode: "debug"`, `mode: "production"`, 1)
	path := writeTestConfig(t, yaml)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid server.mode, got nil")
	}
	if !strings.Contains(err.Error(), "server.mode") {
		t.Errorf("error = %q, want mention of server.mode", err)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"zero", "0"},
		{"negative", "-1"},
		{"too large", "70000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := strings.Replace(validBaseYAML(""), "port: 8080", "port: "+tt.port, 1)
			path := writeTestConfig(t, yaml)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), "server.port") {
				t.Errorf("error = %q, want mention of server.port", err)
			}
		})
	}
}

func TestLoad_MissingServerHost(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `host: "0.0.0.0"`, `host: "   "`, 1)
	path := writeTestConfig(t, yaml)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for blank server.host, got nil")
	}
	if !strings.Contains(err.Error(), "server.host") {
		t.Errorf("error = %q, want mention of server.host", err)
	}
}

func TestLoad_InvalidDatabaseDriver(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `driver: "sqlite"`, `driver: "mysql"`, 1)
	path := writeTestConfig(t, yaml)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid database.driver, got nil")
	}
	if !strings.Contains(err.Error(), "database.driver") {
		t.Errorf("error = %q, want mention of database.driver", err)
	}
}

func TestLoad_SQLiteMissingPath(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `path: "data/app.db"`, `path: "  "`, 1)
	path := writeTestConfig(t, yaml)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for missing sqlite path, got nil")
	}
	if !strings.Contains(err.Error(), "database.sqlite.path") {
		t.Errorf("error = %q, want mention of database.sqlite.path", err)
	}
}

func TestLoad_PostgresMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantErr  string
	}{
		{"missing host", `host: "db.example.com"`, `host: ""`, "database.postgres.host"},
		{"missing user", `user: "admin"`, `user: ""`, "database.postgres.user"},
		{"missing dbname", `dbname: "testdb"`, `dbname: ""`, "database.postgres.dbname"},
		{"invalid port", "port: 5433", "port: 0", "database.postgres.port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := strings.Replace(testYAML, tt.from, tt.to, 1)
			path := writeTestConfig(t, yaml)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_PostgresInvalidSSLMode(t *testing.T) {
	yaml := strings.Replace(testYAML, `sslmode: "require"`, `sslmode: "maybe"`, 1)
	path := writeTestConfig(t, yaml)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid sslmode, got nil")
	}
	if !strings.Contains(err.Error(), "sslmode") {
		t.Errorf("error = %q, want mention of sslmode", err)
	}
}

func TestLoad_PostgresSSLMode_ReleaseRestriction(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		sslmode string
		wantErr bool
	}{
		{"release rejects disable", "release", "disable", true},
		{"release rejects prefer", "release", "prefer", true},
		{"release accepts require", "release", "require", false},
		{"release accepts verify-full", "release", "verify-full", false},
		{"debug accepts disable", "debug", "disable", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := strings.Replace(testYAML, `mode: "release"`, `mode: "`+tt.mode+`"`, 1)
			yaml = strings.Replace(yaml, `sslmode: "require"`, `sslmode: "`+tt.sslmode+`"`, 1)
			path := writeTestConfig(t, yaml)

			_, err := Load(path)
			if tt.wantErr && err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_InvalidDurations(t *testing.T) {
	tests := []struct {
		name    string
		extras  string
		wantErr string
	}{
		{"malformed timeout", "  timeout: \"fast\"\n", "server.timeout"},
		{"zero timeout", "  timeout: \"0s\"\n", "server.timeout"},
		{"negative timeout", "  timeout: \"-5s\"\n", "server.timeout"},
		{"malformed cors max_age", "  cors:\n    max_age: \"soon\"\n", "server.cors.max_age"},
		{"zero cors max_age", "  cors:\n    max_age: \"0s\"\n", "server.cors.max_age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := strings.Replace(validBaseYAML(""), `  mode: "debug"`+"\n", `  mode: "debug"`+"\n"+tt.extras, 1)
			path := writeTestConfig(t, yaml)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_InvalidPoolLifetime(t *testing.T) {
	yaml := strings.Replace(testYAML, `conn_max_lifetime: "30m"`, `conn_max_lifetime: "-30m"`, 1)
	path := writeTestConfig(t, yaml)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for negative conn_max_lifetime, got nil")
	}
	if !strings.Contains(err.Error(), "conn_max_lifetime") {
		t.Errorf("error = %q, want mention of conn_max_lifetime", err)
	}
}

func TestLoad_OptionalDurationWhitespace_NormalizedAsUnset(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `  mode: "debug"`+"\n", `  mode: "debug"`+"\n  timeout: \"   \"\n", 1)
	path := writeTestConfig(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Timeout != "" {
		t.Errorf("Server.Timeout = %q, want normalized empty string", cfg.Server.Timeout)
	}
}

func TestLoad_AuthConfig(t *testing.T) {
	const goodSecret = "abcdefghijklmnopqrstuvwxyz123456"

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "disabled skips validation",
			yaml: validBaseYAML("auth:\n  enabled: false\n  jwt_secret: \"\"\n  token_expiry: \"bad\"\n"),
		},
		{
			name:    "enabled requires secret",
			yaml:    validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"\"\n  token_expiry: \"24h\"\n"),
			wantErr: "auth.jwt_secret",
		},
		{
			name:    "secret too short",
			yaml:    validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"tooshort\"\n  token_expiry: \"24h\"\n"),
			wantErr: "at least 32 characters",
		},
		{
			name: "valid enabled config",
			yaml: validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"" + goodSecret + "\"\n  token_expiry: \"24h\"\n"),
		},
		{
			name:    "enabled requires token_expiry",
			yaml:    validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"" + goodSecret + "\"\n  token_expiry: \"\"\n"),
			wantErr: "auth.token_expiry",
		},
		{
			name:    "malformed token_expiry",
			yaml:    validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"" + goodSecret + "\"\n  token_expiry: \"not-a-duration\"\n"),
			wantErr: "auth.token_expiry",
		},
		{
			name:    "zero token_expiry",
			yaml:    validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"" + goodSecret + "\"\n  token_expiry: \"0s\"\n"),
			wantErr: "auth.token_expiry",
		},
		{
			name:    "negative token_expiry",
			yaml:    validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"" + goodSecret + "\"\n  token_expiry: \"-1h\"\n"),
			wantErr: "auth.token_expiry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.yaml)

			_, err := Load(path)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Load() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ReleaseRequiresStrongSecret(t *testing.T) {
	// Lowercase-and-digit only: 2 character classes, rejected in release mode.
	weak := "abcdefghijklmnopqrstuvwxyz123456"
	yaml := strings.Replace(testYAML, "Abcdefghijklmnopqrstuvwxyz123456", weak, 1)
	path := writeTestConfig(t, yaml)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for weak secret in release mode, got nil")
	}
	if !strings.Contains(err.Error(), "character classes") {
		t.Errorf("error = %q, want mention of character classes", err)
	}

	// The same secret passes in debug mode.
	yaml = strings.Replace(yaml, `mode: "release"`, `mode: "debug"`, 1)
	yaml = strings.Replace(yaml, `sslmode: "require"`, `sslmode: "disable"`, 1)
	path = writeTestConfig(t, yaml)
	if _, err := Load(path); err != nil {
		t.Fatalf("Load() unexpected error in debug mode: %v", err)
	}
}

func TestLoad_AssetsConfig(t *testing.T) {
	t.Run("upload_dir required", func(t *testing.T) {
		yaml := strings.Replace(validBaseYAML(""), `  upload_dir: "uploads"`, `  upload_dir: "   "`, 1)
		path := writeTestConfig(t, yaml)

		_, err := Load(path)
		if err == nil {
			t.Fatal("Load() expected error for missing assets.upload_dir, got nil")
		}
		if !strings.Contains(err.Error(), "assets.upload_dir") {
			t.Errorf("error = %q, want mention of assets.upload_dir", err)
		}
	})

	t.Run("public_base_url trimmed", func(t *testing.T) {
		yaml := strings.Replace(validBaseYAML(""), `  upload_dir: "uploads"`,
			"  upload_dir: \"uploads\"\n  public_base_url: \"  https://cdn.example.com  \"", 1)
		path := writeTestConfig(t, yaml)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Assets.PublicBaseURL != "https://cdn.example.com" {
			t.Errorf("Assets.PublicBaseURL = %q, want trimmed URL", cfg.Assets.PublicBaseURL)
		}
	})
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `level: "info"`, `level: "verbose"`, 1)
	path := writeTestConfig(t, yaml)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid log.level, got nil")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("error = %q, want mention of log.level", err)
	}
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `format: "text"`, `format: "xml"`, 1)
	path := writeTestConfig(t, yaml)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid log.format, got nil")
	}
	if !strings.Contains(err.Error(), "log.format") {
		t.Errorf("error = %q, want mention of log.format", err)
	}
}

func TestLoad_LogLevelCaseNormalized(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `level: "info"`, `level: "  WARN  "`, 1)
	yaml = strings.Replace(yaml, `format: "text"`, `format: "JSON"`, 1)
	path := writeTestConfig(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
}

func TestCountSecretClasses(t *testing.T) {
	tests := []struct {
		secret string
		want   int
	}{
		{"", 0},
		{"abc", 1},
		{"abcDEF", 2},
		{"abcDEF123", 3},
		{"abcDEF123!@#", 4},
		{"12345", 1},
		{"!!!", 1},
	}
	for _, tt := range tests {
		if got := CountSecretClasses(tt.secret); got != tt.want {
			t.Errorf("CountSecretClasses(%q) = %d, want %d", tt.secret, got, tt.want)
		}
	}
}
