package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kodiarasan/sheetflow/internal/cli"
	"github.com/kodiarasan/sheetflow/internal/common"
	"github.com/kodiarasan/sheetflow/internal/config"
	"github.com/kodiarasan/sheetflow/internal/dataset"
	"github.com/kodiarasan/sheetflow/internal/drive"
	"github.com/kodiarasan/sheetflow/internal/export"
	"github.com/kodiarasan/sheetflow/internal/gauth"
	"github.com/kodiarasan/sheetflow/internal/layout"
)

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the expense tracker spreadsheet",
		Long: `Build the complete family expense tracker.

This command will:
1. Write the seed workbook (expenses, categories, family, payment modes, budget)
2. Upload it to Google Drive as a converted Google Sheet
3. Apply the dashboard layout: KPIs, summaries, budget vs actual,
   conditional formatting, dropdown validation, and charts
4. Print the shareable spreadsheet URL`,
		RunE: runBuild,
	}

	cmd.Flags().String("name", "", "spreadsheet name (overrides config)")
	cmd.Flags().String("folder", "", "Drive folder ID (overrides config)")
	cmd.Flags().String("workbook", "", "keep the exported workbook at this path instead of a temp file")

	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	authConfig, err := config.LoadAuthConfig()
	if err != nil {
		return common.NewUserError("Google credentials missing. Set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET or add them to the config file", err)
	}

	driveConfig, err := config.LoadDriveConfig()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("name"); v != "" {
		driveConfig.SpreadsheetName = v
	}
	if v, _ := cmd.Flags().GetString("folder"); v != "" {
		driveConfig.FolderID = v
	}

	// Export the seed workbook.
	workbookPath, cleanup, err := workbookDestination(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	tables := dataset.Build()
	if err := export.WriteWorkbook(workbookPath, tables); err != nil {
		return fmt.Errorf("failed to export workbook: %w", err)
	}
	slog.Info("Exported seed workbook", "path", workbookPath, "sheets", len(tables))

	// Authenticate and upload.
	provider, err := gauth.NewProvider(authConfig)
	if err != nil {
		return err
	}
	client, err := provider.Client(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed, run 'sheetflow auth' first: %w", err)
	}

	uploader, err := drive.NewUploader(ctx, client, driveConfig)
	if err != nil {
		return err
	}
	spreadsheetID, err := uploader.Upload(ctx, workbookPath)
	if err != nil {
		return fmt.Errorf("failed to upload workbook: %w", err)
	}

	// Lay the dashboard over the uploaded document.
	layoutConfig := config.LoadLayoutConfig()
	layoutConfig.SpreadsheetID = spreadsheetID

	orchestrator, err := layout.NewOrchestrator(ctx, client, layoutConfig)
	if err != nil {
		return err
	}

	steps := orchestrator.Steps()
	bar := initProgressBar(len(steps))
	for i, step := range steps {
		bar.Describe(fmt.Sprintf("[cyan][%d/%d][reset] %s", i+1, len(steps), step.Name))
		if err := step.Run(ctx); err != nil {
			_ = bar.Exit()
			fmt.Println()
			return fmt.Errorf("layout step %d (%s) failed: %w", i+1, step.Name, err)
		}
		_ = bar.Add(1)
	}

	url := drive.ShareURL(spreadsheetID)
	fmt.Println(cli.FormatSuccess("SUCCESS"))
	fmt.Println(cli.FormatTitle(driveConfig.SpreadsheetName))
	fmt.Println(cli.FormatURL(url))
	return nil
}

// workbookDestination resolves where the exported workbook lives. Without the
// --workbook flag the file is temporary and removed after the upload.
func workbookDestination(cmd *cobra.Command) (string, func(), error) {
	if v, _ := cmd.Flags().GetString("workbook"); v != "" {
		return config.ExpandPath(v), func() {}, nil
	}

	dir, err := os.MkdirTemp("", "sheetflow-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			slog.Warn("Failed to remove temp workbook", "dir", dir, "error", err)
		}
	}
	return filepath.Join(dir, "expense-tracker.xlsx"), cleanup, nil
}

func initProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Building dashboard...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}
