// Package drive uploads the exported workbook to Google Drive, converting it
// into a collaboratively-editable Google Sheet.
package drive

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/kodiarasan/sheetflow/internal/common"
)

const (
	xlsxMimeType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetMimeType = "application/vnd.google-apps.spreadsheet"

	// BaseURL is the prefix of every shareable spreadsheet link.
	BaseURL = "https://docs.google.com/spreadsheets/d/"
)

// Config holds the upload destination settings.
type Config struct {
	FolderID        string // Drive folder receiving the document
	SpreadsheetName string // title of the created spreadsheet
}

// Validate checks the upload configuration.
func (c Config) Validate() error {
	if c.SpreadsheetName == "" {
		return fmt.Errorf("%w: spreadsheet name is required", common.ErrInvalidConfig)
	}
	return nil
}

// Uploader creates spreadsheet documents from workbook files.
type Uploader struct {
	service *drive.Service
	config  Config
}

// NewUploader creates an Uploader backed by an authenticated HTTP client.
func NewUploader(ctx context.Context, client *http.Client, config Config) (*Uploader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	service, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create drive service: %w", err)
	}

	return &Uploader{service: service, config: config}, nil
}

// Upload sends the workbook at path to Drive as a converted Google Sheet and
// returns the new document's ID. Each call creates a fresh document; it is
// never an update of an earlier one.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return "", fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	meta := &drive.File{
		Name:     u.config.SpreadsheetName,
		MimeType: sheetMimeType,
	}
	if u.config.FolderID != "" {
		meta.Parents = []string{u.config.FolderID}
	}

	created, err := u.service.Files.Create(meta).
		Media(f, googleapi.ContentType(xlsxMimeType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload workbook: %w", err)
	}

	slog.Info("workbook uploaded",
		"spreadsheet_id", created.Id,
		"name", u.config.SpreadsheetName,
		"folder", u.config.FolderID)

	return created.Id, nil
}

// ShareURL builds the public link for a spreadsheet ID.
func ShareURL(spreadsheetID string) string {
	return BaseURL + spreadsheetID
}
