package config_test

import (
	"testing"

	"app/internal/config"

	"github.com/stretchr/testify/assert"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "pass")
	t.Setenv("POSTGRES_DB", "appdb")
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("DISPLAY_TIMEZONE", "")
}

// Test: デフォルト値の充填とDSNの組み立て
func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "static/uploads", cfg.UploadDir)
	assert.Equal(t, "Asia/Kolkata", cfg.DisplayTimezone)
	assert.Equal(t, "host=localhost port=5432 user=app password=pass dbname=appdb sslmode=disable", cfg.DSN())
}

// Test: DATABASE_URLがあればPOSTGRES_*は見ない
func TestLoadDatabaseURLWins(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/appdb")
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PORT", "")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/appdb", cfg.DSN())
}

// Test: 必須変数の欠落はエラー
func TestLoadMissingRequired(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	setBaseEnv(t)
	t.Setenv("POSTGRES_USER", "")

	_, err = config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_USER")
}
