package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielmiessler/tw2s/internal/convert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitPositionalArguments(t *testing.T) {
	isolate(t)

	f, err := Init([]string{"-f", "in.txt", "out.txt"})
	require.NoError(t, err)
	assert.Equal(t, convert.Request{Input: "in.txt", Output: "out.txt", Force: true}, f.Request())
	assert.Equal(t, convert.ModeFile, f.Request().Mode())

	f, err = Init(nil)
	require.NoError(t, err)
	assert.Equal(t, convert.ModeStream, f.Request().Mode())
	assert.Equal(t, os.TempDir(), f.DictionaryDir())
}

func TestInitAppliesConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "force: true\ndictDir: /var/cache/tw2s\nlanguage: zh-TW\ndebug: 2\n")

	f, err := Init([]string{"--config", path})
	require.NoError(t, err)
	assert.True(t, f.Force)
	assert.Equal(t, "/var/cache/tw2s", f.DictDir)
	assert.Equal(t, "zh-TW", f.Language)
	assert.Equal(t, 2, f.Debug)
}

func TestInitCommandLineBeatsConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "dictDir: /from/config\nlanguage: zh-TW\ndebug: 2\n")

	f, err := Init([]string{"--config", path, "--dict-dir", "/from/flag", "--language", "en", "--debug", "0"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", f.DictDir)
	assert.Equal(t, "en", f.Language)
	assert.Equal(t, 0, f.Debug)
}

func TestInitEnvironmentIsTheFallback(t *testing.T) {
	isolate(t)
	t.Setenv("TW2S_DICT_DIR", "/from/env")
	t.Setenv("TW2S_DEBUG", "3")

	f, err := Init(nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", f.DictDir)
	assert.Equal(t, 3, f.Debug)

	path := writeConfig(t, "dictDir: /from/config\n")
	f, err = Init([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "/from/config", f.DictDir)
	assert.Equal(t, 3, f.Debug)
}

func TestInitConfigZeroValuesOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("TW2S_DEBUG", "3")
	t.Setenv("TW2S_LANGUAGE", "zh-TW")

	f, err := Init([]string{"--config", writeConfig(t, "debug: 0\nlanguage: \"\"\n")})
	require.NoError(t, err)
	assert.Equal(t, 0, f.Debug)
	assert.Equal(t, "", f.Language)

	f, err = Init([]string{"-f", "--config", writeConfig(t, "force: false\n")})
	require.NoError(t, err)
	assert.True(t, f.Force)

	f, err = Init([]string{"--config", writeConfig(t, "force: false\n")})
	require.NoError(t, err)
	assert.False(t, f.Force)
	assert.Equal(t, 3, f.Debug)
}

func TestInitRejectsOutputWithoutInput(t *testing.T) {
	isolate(t)

	_, err := Init([]string{"", "out.txt"})
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInvocation, ExitCode(err))
	assert.Contains(t, err.Error(), "out.txt")
}

func TestInitUsesDefaultConfigFile(t *testing.T) {
	isolate(t)
	configDir := filepath.Join(os.Getenv("HOME"), ".config", "tw2s")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("force: true\n"), 0o644))

	f, err := Init(nil)
	require.NoError(t, err)
	assert.True(t, f.Force)
	assert.Equal(t, filepath.Join(configDir, "config.yaml"), f.Config)
}

func TestInitConfigErrors(t *testing.T) {
	isolate(t)

	_, err := Init([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	_, err = Init([]string{"--config", writeConfig(t, "force: [not, a, bool\n")})
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	isolate(t)
	configDir := filepath.Join(os.Getenv("HOME"), ".config", "tw2s")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, ".env"), []byte("TW2S_LANGUAGE=zh-CN\nTW2S_DEBUG=1\n"), 0o644))
	t.Setenv("TW2S_DEBUG", "4")

	require.NoError(t, loadEnvFile())
	assert.Equal(t, "zh-CN", os.Getenv("TW2S_LANGUAGE"))
	assert.Equal(t, "4", os.Getenv("TW2S_DEBUG"))

	f, err := Init(nil)
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", f.Language)
	assert.Equal(t, 4, f.Debug)
}
