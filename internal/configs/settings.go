package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
}

var UserSightkeySettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	// Independent of the working directory, so it is ok to init here.
	UserSightkeySettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "sightkey"),
		UserDataPath:    filepath.Join(dataDir, "sightkey"),
	}
}
