package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("tinytindb", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "tinytindb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Default(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "db > ", cfg.Prompt)
	assert.Equal(t, PageDirArray, cfg.PageDir)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
prompt: "tiny> "
page_dir: btree
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny> ", cfg.Prompt)
	assert.Equal(t, PageDirBTree, cfg.PageDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// untouched keys keep the default
	assert.Equal(t, "stderr", cfg.Log.OutputFile)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "page_dir: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "page_dir: hash"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	path := writeConfig(t, "page_dir: btree\nprompt: \"a> \"\n")

	cfg, err := Parse(newFlagSet(), []string{"-config", path, "-prompt", "b> ", "-log-level", "info"})
	require.NoError(t, err)
	assert.Equal(t, "b> ", cfg.Prompt)
	assert.Equal(t, PageDirBTree, cfg.PageDir)
	assert.Equal(t, "info", cfg.Log.Level)

	_, err = Parse(newFlagSet(), []string{"-pagedir", "list"})
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-unknown"})
	assert.Error(t, err)
}
