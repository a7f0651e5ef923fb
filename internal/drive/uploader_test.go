package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kodiarasan/sheetflow/internal/common"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid with folder",
			config: Config{FolderID: "folder-id", SpreadsheetName: "Family Expense Tracker"},
		},
		{
			name:   "folder optional",
			config: Config{SpreadsheetName: "Family Expense Tracker"},
		},
		{
			name:    "missing name",
			config:  Config{FolderID: "folder-id"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShareURL(t *testing.T) {
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc123",
		ShareURL("abc123"))
}

func TestUploader_Upload(t *testing.T) {
	t.Skip("Requires Google Drive API access")
}
