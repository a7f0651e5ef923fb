package layout

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/kodiarasan/sheetflow/internal/common"
	"github.com/kodiarasan/sheetflow/internal/dataset"
)

// Config holds the orchestrator settings.
type Config struct {
	SpreadsheetID      string
	OverspendThreshold float64 // amount above which a row is flagged
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OverspendThreshold: 5000,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("%w: spreadsheet ID is required", common.ErrInvalidConfig)
	}
	if c.OverspendThreshold <= 0 {
		return fmt.Errorf("%w: overspend threshold must be positive", common.ErrInvalidConfig)
	}
	return nil
}

// Orchestrator applies the ordered mutation sequence that turns the uploaded
// data-only spreadsheet into the dashboard. Steps must run in order: later
// steps read layout established by earlier ones. Sheet IDs are re-resolved by
// title before every batch rather than cached, since an earlier step may have
// just created the sheet.
type Orchestrator struct {
	service   *sheets.Service
	config    Config
	registry  Registry
	ruleIndex map[int64]int64
}

// NewOrchestrator creates an orchestrator backed by an authenticated client.
func NewOrchestrator(ctx context.Context, client *http.Client, config Config) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return &Orchestrator{
		service:   service,
		config:    config,
		registry:  DefaultRegistry(),
		ruleIndex: make(map[int64]int64),
	}, nil
}

// Step is one named unit of the mutation sequence.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Steps returns the mutation sequence in its mandatory order.
func (o *Orchestrator) Steps() []Step {
	return []Step{
		{Name: "derive month and year columns", Run: o.applyDerivedColumns},
		{Name: "create dashboard sheet", Run: o.createDashboardSheet},
		{Name: "write KPI cells", Run: o.writeKPIs},
		{Name: "write summary queries", Run: o.writeSummaries},
		{Name: "write budget vs actual", Run: o.writeBudget},
		{Name: "write section titles", Run: o.writeSectionTitles},
		{Name: "write for-whom breakdown", Run: o.writeForWhom},
		{Name: "apply visual emphasis", Run: o.applyEmphasis},
		{Name: "apply data-quality rules", Run: o.applyDataQualityRules},
		{Name: "apply input validation", Run: o.applyValidation},
		{Name: "add charts", Run: o.addCharts},
	}
}

// Apply runs every step in order, aborting on the first failure. There are no
// retries and no rollback: an interrupted run leaves the document in whatever
// state the completed steps produced.
func (o *Orchestrator) Apply(ctx context.Context) error {
	for i, step := range o.Steps() {
		slog.Info("applying layout step", "step", i+1, "name", step.Name)
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("layout step %d (%s) failed: %w", i+1, step.Name, err)
		}
	}
	return nil
}

// resolveSheetID looks up a sheet's server-assigned ID by title. IDs are
// fetched fresh per call; they must never be cached across steps.
func (o *Orchestrator) resolveSheetID(ctx context.Context, title string) (int64, error) {
	spreadsheet, err := o.service.Spreadsheets.Get(o.config.SpreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}

	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", common.ErrSheetNotFound, title)
}

// nextRuleIndex hands out conditional-format priority indices contiguously
// and ascending per sheet, matching insertion order.
func (o *Orchestrator) nextRuleIndex(sheetID int64) int64 {
	idx := o.ruleIndex[sheetID]
	o.ruleIndex[sheetID]++
	return idx
}

func (o *Orchestrator) batchUpdate(ctx context.Context, requests ...*sheets.Request) error {
	_, err := o.service.Spreadsheets.BatchUpdate(o.config.SpreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return err
}

// updateValues writes a block of values at an A1 range with USER_ENTERED
// semantics, so formula strings become live formulas.
func (o *Orchestrator) updateValues(ctx context.Context, a1Range string, values [][]any) error {
	_, err := o.service.Spreadsheets.Values.Update(o.config.SpreadsheetID, a1Range, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", a1Range, err)
	}
	return nil
}

// batchValues writes several A1 ranges in one request.
func (o *Orchestrator) batchValues(ctx context.Context, data []*sheets.ValueRange) error {
	_, err := o.service.Spreadsheets.Values.BatchUpdate(o.config.SpreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}).Context(ctx).Do()
	return err
}

func stringCell(s string) *sheets.CellData {
	return &sheets.CellData{
		UserEnteredValue: &sheets.ExtendedValue{StringValue: &s},
	}
}

func formulaCell(f string) *sheets.CellData {
	return &sheets.CellData{
		UserEnteredValue: &sheets.ExtendedValue{FormulaValue: &f},
	}
}

// applyDerivedColumns overwrites the Month and Year headers and installs the
// whole-column array formulas deriving both from the date column. Runs first:
// every later aggregate leans on the derived month labels.
func (o *Orchestrator) applyDerivedColumns(ctx context.Context) error {
	expensesID, err := o.resolveSheetID(ctx, dataset.SheetExpenses)
	if err != nil {
		return err
	}

	requests := []*sheets.Request{
		{
			UpdateCells: &sheets.UpdateCellsRequest{
				Range: &sheets.GridRange{
					SheetId:          expensesID,
					StartRowIndex:    0,
					EndRowIndex:      1,
					StartColumnIndex: ColMonth.Index(),
					EndColumnIndex:   ColYear.Index() + 1,
				},
				Rows: []*sheets.RowData{{
					Values: []*sheets.CellData{
						stringCell(ColMonth.Header()),
						stringCell(ColYear.Header()),
					},
				}},
				Fields: "userEnteredValue",
			},
		},
		{
			UpdateCells: &sheets.UpdateCellsRequest{
				Range: &sheets.GridRange{
					SheetId:          expensesID,
					StartRowIndex:    1,
					EndRowIndex:      2,
					StartColumnIndex: ColMonth.Index(),
					EndColumnIndex:   ColMonth.Index() + 1,
				},
				Rows:   []*sheets.RowData{{Values: []*sheets.CellData{formulaCell(MonthFormula())}}},
				Fields: "userEnteredValue",
			},
		},
		{
			UpdateCells: &sheets.UpdateCellsRequest{
				Range: &sheets.GridRange{
					SheetId:          expensesID,
					StartRowIndex:    1,
					EndRowIndex:      2,
					StartColumnIndex: ColYear.Index(),
					EndColumnIndex:   ColYear.Index() + 1,
				},
				Rows:   []*sheets.RowData{{Values: []*sheets.CellData{formulaCell(YearFormula())}}},
				Fields: "userEnteredValue",
			},
		},
	}

	return o.batchUpdate(ctx, requests...)
}

// createDashboardSheet adds the Dashboard sheet. A pre-existing sheet with
// that title means the run is not against a fresh document; that is fatal,
// and the remaining sequence must not execute.
func (o *Orchestrator) createDashboardSheet(ctx context.Context) error {
	if _, err := o.resolveSheetID(ctx, SheetDashboard); err == nil {
		return fmt.Errorf("%w: %q", common.ErrDuplicateSheet, SheetDashboard)
	}

	err := o.batchUpdate(ctx, &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{Title: SheetDashboard},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to add dashboard sheet: %w", err)
	}

	// Post-condition: the sheet must now exist and have a known ID before any
	// dependent mutation proceeds.
	if _, err := o.resolveSheetID(ctx, SheetDashboard); err != nil {
		return fmt.Errorf("dashboard sheet missing after creation: %w", err)
	}
	return nil
}
