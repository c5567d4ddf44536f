package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string `json:"name"`
	Retries int    `json:"retries"`
	Nested  struct {
		Url string `json:"url"`
	} `json:"nested"`
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "toolbox.local.json5", LocalPath("toolbox.json5"))
	require.Equal(t, filepath.Join("a", "b.local.json"), LocalPath(filepath.Join("a", "b.json")))
	require.Equal(t, "noext.local", LocalPath("noext"))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbox.json5")

	_, err := ReadConfig[testConfig](path)
	require.True(t, os.IsNotExist(err))

	err = os.WriteFile(path, []byte(`{
		// comments are allowed
		name: "base",
		retries: 3,
		nested: { url: "http://example.com" },
	}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "base", cfg.Name)
	require.Equal(t, 3, cfg.Retries)
	require.Equal(t, "http://example.com", cfg.Nested.Url)

	err = os.WriteFile(LocalPath(path), []byte(`{ name: "local" }`), 0600)
	require.NoError(t, err)

	cfg, err = ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Name)
	require.Equal(t, 3, cfg.Retries)
	require.Equal(t, "http://example.com", cfg.Nested.Url)
}

func TestReadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{ name: `), 0600))

	_, err := ReadConfig[testConfig](path)
	require.Error(t, err)
	require.False(t, os.IsNotExist(err))
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0777))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "recursive_test.json5"),
		[]byte(`{ name: "found" }`),
		0600,
	))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() {
		os.Chdir(wd)
	})

	cfg, path, err := ReadRecursively[testConfig]("recursive_test.json5")
	require.NoError(t, err)
	require.Equal(t, "found", cfg.Name)
	require.Equal(t, "recursive_test.json5", filepath.Base(path))

	_, _, err = ReadRecursively[testConfig]("definitely_missing_test.json5")
	require.True(t, os.IsNotExist(err))
}
