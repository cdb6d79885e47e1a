package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
)

// sessionFile persists the tokens between invocations.
type sessionFile string

func defaultSessionFile() sessionFile {
	if p := os.Getenv("BACKOFFICE_SESSION_FILE"); p != "" {
		return sessionFile(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return sessionFile(filepath.Join(dir, "backoffice", "session.json"))
}

func (f sessionFile) Load() (auth.Tokens, error) {
	var t auth.Tokens
	b, err := os.ReadFile(string(f))
	if err != nil {
		return t, err
	}
	err = json.Unmarshal(b, &t)
	return t, err
}

func (f sessionFile) Save(t auth.Tokens) error {
	if err := os.MkdirAll(filepath.Dir(string(f)), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(string(f), b, 0o600)
}

func (f sessionFile) Remove() error {
	err := os.Remove(string(f))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
