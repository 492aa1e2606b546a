package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/estatedesk", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "estatedesk"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		envVal  string
		wantSub string // substring the result must contain
	}{
		{
			name:    "flag wins over env",
			flag:    "/explicit/config",
			envVal:  "/env/config",
			wantSub: "/explicit/config",
		},
		{
			name:    "env wins when flag empty",
			flag:    "",
			envVal:  "/env/config",
			wantSub: "/env/config",
		},
		{
			name:    "platform default when both empty",
			flag:    "",
			envVal:  "",
			wantSub: "estatedesk",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	tests := []struct {
		name      string
		flag      string
		configVal string
		envVal    string
		wantSub   string
	}{
		{
			name:      "flag wins over everything",
			flag:      "/explicit/data",
			configVal: "/config/data",
			envVal:    "/env/data",
			wantSub:   "/explicit/data",
		},
		{
			name:      "config value wins over env",
			flag:      "",
			configVal: "/config/data",
			envVal:    "/env/data",
			wantSub:   "/config/data",
		},
		{
			name:    "env wins over default",
			flag:    "",
			envVal:  "/env/data",
			wantSub: "/env/data",
		},
		{
			name:    "CWD default when nothing set",
			wantSub: DefaultDataDirName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.envVal)
			got, err := ResolveDataDir(tt.flag, tt.configVal)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveDataDir_DefaultIsUnderCWD(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, DefaultDataDirName), got)
}
