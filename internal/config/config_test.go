package config

import (
	"os"
	"testing"
	"time"
)

func requiredEnv() map[string]string {
	return map[string]string{
		"MARIADB_DSN":               "user:pass@tcp(localhost:3306)/collegeinfo",
		"MARIADB_MAX_OPEN_CONN":     "10",
		"MARIADB_MAX_IDLE_CONNS":    "5",
		"MARIADB_CONN_MAX_LIFETIME": "30",
		"SERVER_PORT":               "8080",
		"MINIO_ENDPOINT":            "localhost:9000",
		"MINIO_ACCESS_KEY":          "minio",
		"MINIO_SECRET_KEY":          "minio123",
		"MINIO_BUCKET":              "department-images",
		"REDIS_ADDR":                "localhost:6379",
		"CACHE_DIR":                 "/tmp/collegeinfo-cache",
	}
}

func chdirTemp(t *testing.T) {
	t.Helper()
	// Switch to a temp directory to avoid loading a real .env
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	})
}

func TestLoad_Success(t *testing.T) {
	chdirTemp(t)

	reqs := requiredEnv()
	for k, v := range reqs {
		t.Setenv(k, v)
	}
	t.Setenv("PUBLIC_BASE_URL", "https://cdn.example.edu")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.MariaDBDSN != reqs["MARIADB_DSN"] {
		t.Errorf("MariaDBDSN: expected %q, got %q", reqs["MARIADB_DSN"], cfg.MariaDBDSN)
	}
	if cfg.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns: expected %d, got %d", 10, cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != 5 {
		t.Errorf("MaxIdleConns: expected %d, got %d", 5, cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != 30*time.Second {
		t.Errorf("ConnMaxLifetime: expected %v, got %v", 30*time.Second, cfg.ConnMaxLifetime)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected %d, got %d", 8080, cfg.ServerPort)
	}
	if cfg.MinioBucket != "department-images" {
		t.Errorf("MinioBucket: expected %q, got %q", "department-images", cfg.MinioBucket)
	}
	if cfg.PublicBaseURL != "https://cdn.example.edu" {
		t.Errorf("PublicBaseURL: expected %q, got %q", "https://cdn.example.edu", cfg.PublicBaseURL)
	}
	if cfg.RedisAddr != reqs["REDIS_ADDR"] {
		t.Errorf("RedisAddr: expected %q, got %q", reqs["REDIS_ADDR"], cfg.RedisAddr)
	}
	if cfg.CacheDir != reqs["CACHE_DIR"] {
		t.Errorf("CacheDir: expected %q, got %q", reqs["CACHE_DIR"], cfg.CacheDir)
	}
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	for missingKey := range requiredEnv() {
		t.Run(missingKey, func(t *testing.T) {
			chdirTemp(t)

			for k, v := range requiredEnv() {
				if k == missingKey {
					if err := os.Unsetenv(k); err != nil {
						t.Fatalf("could not unset key %s in env: %v", k, err)
					}
				} else {
					t.Setenv(k, v)
				}
			}

			cfg, err := Load()
			if err == nil {
				t.Fatalf("expected error for missing %s, got nil", missingKey)
			}
			if err.Error() != missingKey+" is required" {
				t.Errorf("error = %q; want %q", err.Error(), missingKey+" is required")
			}
			if cfg != nil {
				t.Errorf("expected cfg nil on error, got %#v", cfg)
			}
		})
	}
}
