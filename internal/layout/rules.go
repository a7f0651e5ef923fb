package layout

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/sheets/v4"

	"github.com/kodiarasan/sheetflow/internal/dataset"
)

// kpiCard describes the visual treatment of one KPI column.
type kpiCard struct {
	labelSize  int64
	valueSize  int64
	background *sheets.Color
}

// Card styles per KPI, in dashboard column order. The current-month card is
// the loudest: it is the number the household checks daily.
var kpiCards = []kpiCard{
	{labelSize: 14, valueSize: 18, background: &sheets.Color{Red: 0.90, Green: 0.96, Blue: 0.90}},
	{labelSize: 15, valueSize: 26, background: &sheets.Color{Red: 0.98, Green: 0.90, Blue: 0.80}},
	{labelSize: 14, valueSize: 18, background: &sheets.Color{Red: 0.98, Green: 0.88, Blue: 0.88}},
}

func boldFormatRequest(rng *sheets.GridRange, fontSize int64) *sheets.Request {
	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: rng,
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					TextFormat: &sheets.TextFormat{Bold: true, FontSize: fontSize},
				},
			},
			Fields: "userEnteredFormat.textFormat",
		},
	}
}

func cardFormatRequest(rng *sheets.GridRange, fontSize int64, background *sheets.Color) *sheets.Request {
	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: rng,
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					TextFormat:      &sheets.TextFormat{Bold: true, FontSize: fontSize},
					BackgroundColor: background,
				},
			},
			Fields: "userEnteredFormat(textFormat,backgroundColor)",
		},
	}
}

// conditionalRule builds an addConditionalFormatRule request with the next
// contiguous priority index for the target sheet.
func (o *Orchestrator) conditionalRule(sheetID int64, rng *sheets.GridRange, condition *sheets.BooleanCondition, background *sheets.Color) *sheets.Request {
	return &sheets.Request{
		AddConditionalFormatRule: &sheets.AddConditionalFormatRuleRequest{
			Rule: &sheets.ConditionalFormatRule{
				Ranges: []*sheets.GridRange{rng},
				BooleanRule: &sheets.BooleanRule{
					Condition: condition,
					Format:    &sheets.CellFormat{BackgroundColor: background},
				},
			},
			Index:           o.nextRuleIndex(sheetID),
			ForceSendFields: []string{"Index"},
		},
	}
}

func customFormulaCondition(formula string) *sheets.BooleanCondition {
	return &sheets.BooleanCondition{
		Type:   "CUSTOM_FORMULA",
		Values: []*sheets.ConditionValue{{UserEnteredValue: formula}},
	}
}

// applyEmphasis styles the KPI cards and adds the two emphasis highlights:
// rows tied for the maximum amount on the data sheet, and negative variance
// cells in the budget table.
func (o *Orchestrator) applyEmphasis(ctx context.Context) error {
	dashboardID, err := o.resolveSheetID(ctx, SheetDashboard)
	if err != nil {
		return err
	}

	labels := o.registry.KPILabels
	values := o.registry.KPIValues
	requests := make([]*sheets.Request, 0, len(kpiCards)*2+1)
	for i, card := range kpiCards {
		col := labels.StartCol + int64(i)
		labelCell := Region{Sheet: labels.Sheet, StartRow: labels.StartRow, EndRow: labels.EndRow, StartCol: col, EndCol: col + 1}
		valueCell := Region{Sheet: values.Sheet, StartRow: values.StartRow, EndRow: values.EndRow, StartCol: col, EndCol: col + 1}
		requests = append(requests,
			boldFormatRequest(labelCell.GridRange(dashboardID), card.labelSize),
			cardFormatRequest(valueCell.GridRange(dashboardID), card.valueSize, card.background),
		)
	}

	requests = append(requests, o.conditionalRule(
		dashboardID,
		o.registry.VarianceColumn().GridRange(dashboardID),
		&sheets.BooleanCondition{
			Type:   "NUMBER_LESS",
			Values: []*sheets.ConditionValue{{UserEnteredValue: "0"}},
		},
		&sheets.Color{Red: 1.0, Green: 0.85, Blue: 0.85},
	))

	if err := o.batchUpdate(ctx, requests...); err != nil {
		return fmt.Errorf("failed to apply dashboard emphasis: %w", err)
	}

	expensesID, err := o.resolveSheetID(ctx, dataset.SheetExpenses)
	if err != nil {
		return err
	}

	// Whole data rows, so every row tied for the maximum lights up.
	maxRange := &sheets.GridRange{
		SheetId:        expensesID,
		StartRowIndex:  1,
		EndColumnIndex: int64(ExpenseColumnCount),
	}
	err = o.batchUpdate(ctx, o.conditionalRule(
		expensesID,
		maxRange,
		customFormulaCondition(MaxAmountHighlightFormula()),
		&sheets.Color{Red: 1.0, Green: 0.9, Blue: 0.9},
	))
	if err != nil {
		return fmt.Errorf("failed to add max-amount highlight: %w", err)
	}
	return nil
}

// applyDataQualityRules flags suspicious data rows: amounts above the
// configured threshold, and rows missing any mandatory field. The two rules
// get distinct severities (red vs amber).
func (o *Orchestrator) applyDataQualityRules(ctx context.Context) error {
	expensesID, err := o.resolveSheetID(ctx, dataset.SheetExpenses)
	if err != nil {
		return err
	}

	overspendRange := &sheets.GridRange{
		SheetId:          expensesID,
		StartRowIndex:    1,
		StartColumnIndex: ColAmount.Index(),
		EndColumnIndex:   ColAmount.Index() + 1,
	}
	missingRange := &sheets.GridRange{
		SheetId:        expensesID,
		StartRowIndex:  1,
		EndColumnIndex: ColAmount.Index() + 1,
	}

	err = o.batchUpdate(ctx,
		o.conditionalRule(
			expensesID,
			overspendRange,
			&sheets.BooleanCondition{
				Type:   "NUMBER_GREATER",
				Values: []*sheets.ConditionValue{{UserEnteredValue: strconv.FormatFloat(o.config.OverspendThreshold, 'f', -1, 64)}},
			},
			&sheets.Color{Red: 1.0, Green: 0.85, Blue: 0.85},
		),
		o.conditionalRule(
			expensesID,
			missingRange,
			customFormulaCondition(MissingMandatoryFormula()),
			&sheets.Color{Red: 1.0, Green: 0.95, Blue: 0.8},
		),
	)
	if err != nil {
		return fmt.Errorf("failed to add data-quality rules: %w", err)
	}
	return nil
}

// applyValidation restricts every categorical input column to its configured
// vocabulary. Strict: out-of-set values are rejected, not just flagged.
func (o *Orchestrator) applyValidation(ctx context.Context) error {
	expensesID, err := o.resolveSheetID(ctx, dataset.SheetExpenses)
	if err != nil {
		return err
	}

	rules := ValidationRules()
	requests := make([]*sheets.Request, 0, len(rules))
	for _, rule := range rules {
		values := make([]*sheets.ConditionValue, 0, len(rule.Values))
		for _, v := range rule.Values {
			values = append(values, &sheets.ConditionValue{UserEnteredValue: v})
		}
		requests = append(requests, &sheets.Request{
			SetDataValidation: &sheets.SetDataValidationRequest{
				Range: &sheets.GridRange{
					SheetId:          expensesID,
					StartRowIndex:    1,
					StartColumnIndex: rule.Column.Index(),
					EndColumnIndex:   rule.Column.Index() + 1,
				},
				Rule: &sheets.DataValidationRule{
					Condition: &sheets.BooleanCondition{
						Type:   "ONE_OF_LIST",
						Values: values,
					},
					ShowCustomUi: true,
					Strict:       true,
				},
			},
		})
	}

	if err := o.batchUpdate(ctx, requests...); err != nil {
		return fmt.Errorf("failed to set data validation: %w", err)
	}
	return nil
}
