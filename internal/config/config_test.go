package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"BBTREE_CONFIG", "BBTREE_DOT", "BBTREE_DB", "BBTREE_FORMATS", "BBTREE_LOG_LEVEL", "BBTREE_RANKDIR", "BBTREE_LEGEND"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BBTREE_DOT", "/opt/graphviz/bin/dot")
	t.Setenv("BBTREE_DB", "/tmp/runs.db")
	t.Setenv("BBTREE_FORMATS", "pdf, svg,")
	t.Setenv("BBTREE_LOG_LEVEL", "debug")
	t.Setenv("BBTREE_LEGEND", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/graphviz/bin/dot", cfg.DotBinary)
	assert.Equal(t, "/tmp/runs.db", cfg.DBPath)
	assert.Equal(t, []string{"pdf", "svg"}, cfg.Formats)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.True(t, cfg.Legend)
}

func TestLoad_FileThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bbtree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rankdir: LR\nformats: [svg]\nlegend: true\n"), 0o644))
	t.Setenv("BBTREE_CONFIG", path)
	t.Setenv("BBTREE_RANKDIR", "BT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "BT", cfg.RankDir)
	assert.Equal(t, []string{"svg"}, cfg.Formats)
	assert.True(t, cfg.Legend)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	t.Setenv("BBTREE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("formats: [unterminated\n"), 0o644))
	t.Setenv("BBTREE_CONFIG", path)
	_, err := Load()
	assert.Error(t, err)
}

func TestLevel_Default(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "chatty"}.Level())
}
