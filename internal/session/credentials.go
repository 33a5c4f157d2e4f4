// ABOUTME: Persists the bearer token pair in the XDG config directory
// ABOUTME: Also stores the join-requests viewed flag used by the inbox badge

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Credentials is the persisted bearer token pair
type Credentials struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// prefs holds small UI flags that outlive the process
type prefs struct {
	HasViewedRequests bool `json:"has_viewed_requests"`
}

// CredentialStore reads and writes credentials under a config directory
type CredentialStore struct {
	configDir string
}

// NewStore creates a credential store rooted at the given config directory
func NewStore(configDir string) *CredentialStore {
	return &CredentialStore{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "buildbuddy")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "buildbuddy")
}

func (s *CredentialStore) credentialsFile() string {
	return filepath.Join(s.configDir, "credentials.json")
}

func (s *CredentialStore) prefsFile() string {
	return filepath.Join(s.configDir, "prefs.json")
}

// Load reads the stored credentials. A missing or unreadable file yields
// (nil, nil): no credential, not an error.
func (s *CredentialStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.credentialsFile())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// Corrupt file, treat as logged out
		return nil, nil
	}
	if creds.Access == "" {
		return nil, nil
	}
	return &creds, nil
}

// Save writes the credentials. The file holds tokens, so it is user-only.
func (s *CredentialStore) Save(creds *Credentials) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.credentialsFile(), data, 0600)
}

// Clear removes any stored credentials. Missing file is not an error.
func (s *CredentialStore) Clear() error {
	err := os.Remove(s.credentialsFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// HasViewedRequests reports whether the user has opened the join-requests tab
func (s *CredentialStore) HasViewedRequests() bool {
	data, err := os.ReadFile(s.prefsFile())
	if err != nil {
		return false
	}
	var p prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return false
	}
	return p.HasViewedRequests
}

// SetViewedRequests records that the join-requests tab has been opened
func (s *CredentialStore) SetViewedRequests(viewed bool) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefs{HasViewedRequests: viewed}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.prefsFile(), data, 0644)
}
