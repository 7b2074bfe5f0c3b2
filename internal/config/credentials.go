package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// APIKeyEnvVar overrides the stored credential when set.
const APIKeyEnvVar = "VIRLO_API_KEY"

func credentialFile() string {
	return filepath.Join(CredentialsDir(), "virlo.json")
}

type credential struct {
	APIKey string `json:"api_key"`
}

// APIKey returns the bearer token for the remote service and where it
// came from ("env", "file", or "" when absent). Absent means every
// access falls back to the offline source regardless of declared mode.
func APIKey() (string, string) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnvVar)); key != "" {
		return key, "env"
	}
	data, err := os.ReadFile(credentialFile())
	if err != nil {
		return "", ""
	}
	var cred credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return "", ""
	}
	if key := strings.TrimSpace(cred.APIKey); key != "" {
		return key, "file"
	}
	return "", ""
}

// SaveAPIKey stores the bearer token with an atomic rename and 0600
// permissions.
func SaveAPIKey(key string) error {
	content, err := json.Marshal(credential{APIKey: strings.TrimSpace(key)})
	if err != nil {
		return fmt.Errorf("writing credential: %w", err)
	}
	path := credentialFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("writing credential: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o600); err != nil {
		return fmt.Errorf("writing credential: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("writing credential: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the stored credential. Missing file is fine.
func DeleteAPIKey() {
	_ = os.Remove(credentialFile())
}
