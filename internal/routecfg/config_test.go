package routecfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Slug.Lowercase)
	assert.Equal(t, "-", cfg.Slug.Separator)
	assert.Equal(t, "nodes", cfg.CollectionKey)
	assert.Contains(t, cfg.Templates.Extensions, ".tsx")
}

func TestLoad_PartialOverridesKeepDefaults(t *testing.T) {
	path := writeConfig(t, "slug:\n  separator: \"_\"\ncollection_key: items\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "_", cfg.Slug.Separator)
	assert.Equal(t, "items", cfg.CollectionKey)
	// Untouched fields keep their defaults.
	assert.True(t, cfg.Slug.Lowercase)
	assert.True(t, cfg.Slug.StripDiacritics)
	assert.Equal(t, "src/pages", cfg.Templates.Root)
}

func TestLoad_DisablingBooleans(t *testing.T) {
	path := writeConfig(t, "slug:\n  lowercase: false\n  strip_diacritics: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Slug.Lowercase)
	assert.False(t, cfg.Slug.StripDiacritics)
}

func TestLoad_InvalidSeparator(t *testing.T) {
	path := writeConfig(t, "slug:\n  separator: \"--\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "separator")
}

func TestLoad_InvalidExtension(t *testing.T) {
	path := writeConfig(t, "templates:\n  extensions: [\"js\"]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with a dot")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSlugOptions(t *testing.T) {
	cfg := Default()
	cfg.Slug.Separator = "_"

	opts := cfg.SlugOptions()
	assert.Equal(t, '_', opts.Separator)
	assert.True(t, opts.Lowercase)
}
