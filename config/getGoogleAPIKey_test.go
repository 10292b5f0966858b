package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSecretsFile(t *testing.T, root, contents string) {
	t.Helper()
	dir := filepath.Join(root, ".streamlit")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secrets.toml"), []byte(contents), 0644))
}

func TestResolveGoogleAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		secrets string // empty means no secrets.toml
		envKey  string
		want    string
		wantErr bool
	}{
		{
			name:    "secrets file only",
			secrets: `GOOGLE_API_KEY = "from-secrets"`,
			want:    "from-secrets",
		},
		{
			name:   "env only",
			envKey: "from-env",
			want:   "from-env",
		},
		{
			name:    "secrets file wins over env",
			secrets: `GOOGLE_API_KEY = "from-secrets"`,
			envKey:  "from-env",
			want:    "from-secrets",
		},
		{
			name:    "blank secrets value falls back to env",
			secrets: `GOOGLE_API_KEY = ""`,
			envKey:  "from-env",
			want:    "from-env",
		},
		{
			name:    "whitespace env value counts as missing",
			envKey:  "   ",
			wantErr: true,
		},
		{
			name:    "missing everywhere",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.secrets != "" {
				writeSecretsFile(t, root, tt.secrets)
			}
			t.Setenv(googleAPIKeyName, tt.envKey)

			got, err := ResolveGoogleAPIKey(root)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "GOOGLE_API_KEY is missing")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveGoogleAPIKeyOtherSecretsIgnored(t *testing.T) {
	root := t.TempDir()
	writeSecretsFile(t, root, "SOME_OTHER_SECRET = \"nope\"\n")
	t.Setenv(googleAPIKeyName, "from-env")

	got, err := ResolveGoogleAPIKey(root)
	require.NoError(t, err)
	require.Equal(t, "from-env", got)
}
