package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VISION_API_KEY", "vision-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "openai", cfg.FormatProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 10, cfg.AnnotateTimeout)
	assert.Equal(t, 20, cfg.FormatTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VISION_CREDENTIALS_FILE", "/etc/relay/key.json")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("FORMAT_PROVIDER", "gemini")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("FORMAT_TIMEOUT", "45")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "gemini", cfg.FormatProvider)
	assert.Equal(t, "/etc/relay/key.json", cfg.VisionCredentialsFile)
	assert.Equal(t, 45, cfg.FormatTimeout)
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("VISION_API_KEY", "")
	t.Setenv("VISION_CREDENTIALS_FILE", "")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VISION")
}

func TestLoad_ProviderWithoutKey(t *testing.T) {
	t.Setenv("VISION_API_KEY", "vision-key")
	t.Setenv("FORMAT_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("VISION_API_KEY", "vision-key")
	t.Setenv("FORMAT_PROVIDER", "claude")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown FORMAT_PROVIDER")
}
