package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tonotes/ranking"
)

func TestLoadRankingConfigDefaults(t *testing.T) {
	cfg := LoadRankingConfig()

	assert.Equal(t, ranking.DefaultConfig(), cfg.Config)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRankingConfigWindowsAreIndependent(t *testing.T) {
	t.Setenv("FOCUS_DUE_SOON_DAYS", "2")
	t.Setenv("PRIORITY_DUE_SOON_DAYS", "10")
	t.Setenv("RESUME_RETURNING_AFTER", "90m")

	cfg := LoadRankingConfig()

	assert.Equal(t, 48*time.Hour, cfg.Focus.DueSoonWindow)
	assert.Equal(t, 240*time.Hour, cfg.Priority.DueSoonWindow)
	assert.Equal(t, 7*24*time.Hour, cfg.SmartViews.DueSoonWindow)
	assert.Equal(t, 90*time.Minute, cfg.Resume.ReturningAfter)
}

func TestRankingConfigValidate(t *testing.T) {
	t.Setenv("FOCUS_DUE_SOON_DAYS", "0")
	t.Setenv("RESUME_MEANINGFUL_SCROLL_MIN", "95")

	err := LoadRankingConfig().Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOCUS_DUE_SOON_DAYS")
	assert.Contains(t, err.Error(), "RESUME_MEANINGFUL_SCROLL_MIN")
}

func TestLoadAppConfig(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PORT", "9090")

	cfg, err := LoadAppConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "notes", cfg.Database.NotesCollection)
}

func TestLoadAppConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := LoadAppConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
	assert.Contains(t, err.Error(), "postgres")
}
