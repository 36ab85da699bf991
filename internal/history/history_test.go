package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sightkey/sightkey/internal/configs"
)

// withTempDataDir points the user settings at a temp directory for the test.
func withTempDataDir(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalSettings := configs.UserSightkeySettings
	configs.UserSightkeySettings = &configs.UserSettings{
		UserDataPath: tempDir,
	}
	t.Cleanup(func() {
		configs.UserSightkeySettings = originalSettings
	})

	return tempDir
}

func TestLog_CreatesFile(t *testing.T) {
	tempDir := withTempDataDir(t)

	Log(Entry{
		Install:  "test-uuid",
		Domain:   "github.com",
		Username: "alice.dev",
		Length:   18,
	})

	logPath := filepath.Join(tempDir, "history.jsonl")
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("History log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	tempDir := withTempDataDir(t)

	Log(Entry{Domain: "github.com", Username: "alice.dev", Length: 18})
	Log(Entry{Domain: "example.com", Username: "alice.dev", Length: 18})
	Log(Entry{Domain: "github.com", Username: "bob", Length: 24})

	data, err := os.ReadFile(filepath.Join(tempDir, "history.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read history log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	tempDir := withTempDataDir(t)

	// Log an entry without timestamp (should be auto-set).
	Log(Entry{Domain: "github.com", Username: "alice.dev", Length: 18})

	data, err := os.ReadFile(filepath.Join(tempDir, "history.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read history log: %v", err)
	}

	var parsed Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}

	// Check timestamp format: 2006-01-02T15:04:05.000000Z.
	if parsed.Timestamp == "" {
		t.Errorf("Timestamp should be auto-set")
	}
	if !strings.HasSuffix(parsed.Timestamp, "Z") {
		t.Errorf("Timestamp should end with Z, got %s", parsed.Timestamp)
	}
	if !strings.Contains(parsed.Timestamp, ".") {
		t.Errorf("Timestamp should contain microseconds, got %s", parsed.Timestamp)
	}
}

func TestLog_NeverRecordsSecrets(t *testing.T) {
	tempDir := withTempDataDir(t)

	Log(Entry{Domain: "github.com", Username: "alice.dev", Length: 18, Location: true})

	data, err := os.ReadFile(filepath.Join(tempDir, "history.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read history log: %v", err)
	}

	line := strings.TrimSpace(string(data))
	for _, field := range []string{"color", "pattern", "latitude", "longitude", "password"} {
		if strings.Contains(line, field) {
			t.Errorf("History entry must not contain %q, got: %s", field, line)
		}
	}
}

func TestLog_NoDataPath(t *testing.T) {
	originalSettings := configs.UserSightkeySettings
	configs.UserSightkeySettings = &configs.UserSettings{UserDataPath: ""}
	defer func() {
		configs.UserSightkeySettings = originalSettings
	}()

	// Log should not panic or error.
	Log(Entry{Domain: "github.com", Username: "alice.dev"}) // Should silently do nothing.
}

func TestParseEntries_ValidData(t *testing.T) {
	data := []byte(`{"ts":"2026-01-15T10:30:00.123456Z","install":"a","domain":"github.com","username":"alice.dev","length":18}
{"ts":"2026-01-15T10:35:00.456789Z","install":"a","domain":"example.com","username":"bob","length":24}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Domain != "github.com" {
		t.Errorf("Expected first domain github.com, got %s", entries[0].Domain)
	}
	if entries[1].Length != 24 {
		t.Errorf("Expected second length 24, got %d", entries[1].Length)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2026-01-15T10:30:00.123456Z","domain":"github.com","username":"alice.dev"}
this is not valid json
{"ts":"2026-01-15T10:35:00.456789Z","domain":"example.com","username":"bob"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if len(entries) != 2 {
		t.Errorf("Expected 2 valid entries (malformed should be skipped), got %d", len(entries))
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries([]byte{})
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if entries != nil {
		t.Errorf("Expected nil entries for empty data, got %v", entries)
	}
}

func TestLogPath_NoSettings(t *testing.T) {
	originalSettings := configs.UserSightkeySettings
	configs.UserSightkeySettings = nil
	defer func() {
		configs.UserSightkeySettings = originalSettings
	}()

	if path := LogPath(); path != "" {
		t.Errorf("Expected empty path, got %s", path)
	}
}
