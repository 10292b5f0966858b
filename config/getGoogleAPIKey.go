package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const googleAPIKeyName = "GOOGLE_API_KEY"

const missingKeyHelp = `GOOGLE_API_KEY is missing. Add your Google API key:

For hosted deployment:
  add to .streamlit/secrets.toml:
    GOOGLE_API_KEY = "your_api_key_here"

For local development:
  create a .env file in the project root with:
    GOOGLE_API_KEY=your_api_key_here

then restart the application.`

// ResolveGoogleAPIKey resolves the Gemini credential from exactly one of two
// channels: the managed secrets file (.streamlit/secrets.toml under projectRoot)
// is checked first, then the process environment (populated from .env at
// startup). Blank values count as missing.
func ResolveGoogleAPIKey(projectRoot string) (string, error) {
	secretsPath := filepath.Join(projectRoot, ".streamlit", "secrets.toml")
	if _, err := os.Stat(secretsPath); err == nil {
		v := viper.New()
		v.SetConfigFile(secretsPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", secretsPath, err)
		}
		if key := strings.TrimSpace(v.GetString(googleAPIKeyName)); key != "" {
			return key, nil
		}
	}

	if key := strings.TrimSpace(os.Getenv(googleAPIKeyName)); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("%s", missingKeyHelp)
}

// GetGoogleAPIKey resolves the credential from the working directory and
// aborts startup when it is absent.
func GetGoogleAPIKey() string {
	key, err := ResolveGoogleAPIKey(".")
	if err != nil {
		Logger.Fatal(err.Error())
	}
	return key
}
