package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl       string   `json:"base_url"`
	UserAgent     string   `json:"user_agent"`
	OutputFormats []string `json:"output_formats"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	err := os.WriteFile(name, []byte(`{
		// checked-in defaults
		base_url: "https://www.tiktok.com/tag",
		user_agent: "test-agent",
		output_formats: ["json", "csv"],
	}`), 0644)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		user_agent: "local-agent",
	}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://www.tiktok.com/tag", config.BaseUrl)
	require.Equal(t, "local-agent", config.UserAgent)
	require.Equal(t, []string{"json", "csv"}, config.OutputFormats)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}
