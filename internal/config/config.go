package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/kodiarasan/sheetflow/internal/drive"
	"github.com/kodiarasan/sheetflow/internal/gauth"
	"github.com/kodiarasan/sheetflow/internal/layout"
)

// DefaultSpreadsheetName titles the created document when nothing overrides it.
const DefaultSpreadsheetName = "Family Expense Tracker"

// DefaultTokenFile returns the default OAuth token cache location.
func DefaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "token.json"
	}
	return filepath.Join(home, ".config", "sheetflow", "token.json")
}

// LoadAuthConfig loads OAuth2 client configuration from Viper and environment
// variables. Precedence:
// 1. Viper configuration (from config file or SHEETFLOW_ env vars)
// 2. Direct environment variables (GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET)
// 3. Default values
func LoadAuthConfig() (gauth.Config, error) {
	config := gauth.Config{
		TokenFile: DefaultTokenFile(),
	}

	if v := viper.GetString("google.client_id"); v != "" {
		config.ClientID = v
	}
	if v := viper.GetString("google.client_secret"); v != "" {
		config.ClientSecret = v
	}
	if v := viper.GetString("google.token_file"); v != "" {
		config.TokenFile = ExpandPath(v)
	}

	if config.ClientID == "" {
		config.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if config.ClientSecret == "" {
		config.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}

	if err := config.Validate(); err != nil {
		return gauth.Config{}, err
	}
	return config, nil
}

// LoadDriveConfig loads the upload destination settings.
func LoadDriveConfig() (drive.Config, error) {
	config := drive.Config{
		SpreadsheetName: DefaultSpreadsheetName,
	}

	if v := viper.GetString("drive.folder_id"); v != "" {
		config.FolderID = v
	}
	if v := viper.GetString("drive.spreadsheet_name"); v != "" {
		config.SpreadsheetName = v
	}

	if config.FolderID == "" {
		config.FolderID = os.Getenv("GOOGLE_DRIVE_FOLDER_ID")
	}

	if err := config.Validate(); err != nil {
		return drive.Config{}, err
	}
	return config, nil
}

// LoadLayoutConfig loads the dashboard layout settings. The spreadsheet ID is
// only known after the upload, so it is not validated here.
func LoadLayoutConfig() layout.Config {
	config := layout.DefaultConfig()

	if v := viper.GetFloat64("dashboard.overspend_threshold"); v > 0 {
		config.OverspendThreshold = v
	}
	return config
}
