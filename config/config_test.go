package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	assert.Nil(t, err)
	assert.Equal(t, "mjscore.txt", cfg.Input)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, TargetAll, cfg.Target)
	assert.True(t, cfg.Fundamental)
	assert.Equal(t, "en", cfg.Language)
	assert.False(t, cfg.Strict)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MJSTAT_TARGET", "あなた")
	t.Setenv("MJSTAT_LANG", "ja")
	cfg, err := Load("", nil)
	assert.Nil(t, err)
	assert.Equal(t, "あなた", cfg.Target)
	assert.Equal(t, "ja", cfg.Language)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mjstat.yaml")
	err := os.WriteFile(path, []byte("input: scores/january.txt\nencoding: sjis\nyaku: true\n"), 0o644)
	assert.Nil(t, err)

	cfg, err := Load(path, nil)
	assert.Nil(t, err)
	assert.Equal(t, "scores/january.txt", cfg.Input)
	assert.Equal(t, "sjis", cfg.Encoding)
	assert.True(t, cfg.YakuFrequency)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml", nil)
	assert.NotNil(t, err)
}
