package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sightkey/sightkey/internal/configs"
)

// Entry records the non-secret metadata of one derivation. Colors,
// patterns, coordinates, and passwords are never written here.
type Entry struct {
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	Install   string `json:"install"` // Anonymous install UUID.
	Domain    string `json:"domain"`
	Username  string `json:"username"`
	Length    int    `json:"length"`

	// Location records whether a coordinate contributed to the derivation,
	// not where it was.
	Location bool `json:"location,omitempty"`
}

// Log appends an entry to the history log.
// If logging fails, it does not return an error.
// A derivation should not fail just because history logging failed.
func Log(entry Entry) {
	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	// Open file for appending (create if doesn't exist). The log lives in
	// the user's data dir and holds only their own metadata.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the history log file.
// Returns empty string if user settings are not initialized.
func LogPath() string {
	if configs.UserSightkeySettings == nil || configs.UserSightkeySettings.UserDataPath == "" {
		return ""
	}
	return filepath.Join(configs.UserSightkeySettings.UserDataPath, "history.jsonl")
}

// ReadEntries reads all entries from the history log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into history entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
