package layout

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// KPI labels in dashboard column order.
const (
	kpiTotalLabel        = "Total Expense"
	kpiCurrentMonthLabel = "Current Month Total"
	kpiHighestLabel      = "Highest Expense"
)

// Dashboard section titles.
const (
	categoryTitle = "Expense by Category"
	paymentTitle  = "Expense by Payment Mode"
	budgetTitle   = "Budget vs Actual (Current Month)"
	forWhomTitle  = "Expense by For Whom"
)

// writeKPIs installs the three scalar KPI formulas with their labels.
func (o *Orchestrator) writeKPIs(ctx context.Context) error {
	err := o.batchValues(ctx, []*sheets.ValueRange{
		{
			Range:  o.registry.KPILabels.Anchor(),
			Values: [][]any{{kpiTotalLabel, kpiCurrentMonthLabel, kpiHighestLabel}},
		},
		{
			Range: o.registry.KPIValues.Anchor(),
			Values: [][]any{{
				TotalExpenseFormula(),
				CurrentMonthTotalFormula(),
				HighestExpenseFormula(),
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write KPI cells: %w", err)
	}
	return nil
}

// writeSummaries installs the category and payment-mode grouping queries.
// Each query expands downward from its anchor into its registry block.
func (o *Orchestrator) writeSummaries(ctx context.Context) error {
	err := o.batchValues(ctx, []*sheets.ValueRange{
		{
			Range:  o.registry.CategorySummary.Anchor(),
			Values: [][]any{{CategorySummaryFormula()}},
		},
		{
			Range:  o.registry.PaymentSummary.Anchor(),
			Values: [][]any{{PaymentModeSummaryFormula()}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write summary queries: %w", err)
	}
	return nil
}

// writeBudget is the two-stage budget computation: the staging query first,
// then the join formula that reads the staging columns. The join references
// the staging block by column span, so staging must land before it.
func (o *Orchestrator) writeBudget(ctx context.Context) error {
	staging := o.registry.BudgetStaging
	if err := o.updateValues(ctx, staging.Anchor(), [][]any{{BudgetActualStagingFormula()}}); err != nil {
		return fmt.Errorf("failed to write budget staging: %w", err)
	}

	table := o.registry.BudgetTable
	if err := o.updateValues(ctx, table.Anchor(), [][]any{{BudgetVsActualFormula(staging.Cols())}}); err != nil {
		return fmt.Errorf("failed to write budget table: %w", err)
	}
	return nil
}

// writeSectionTitles writes the title texts and applies their bold/enlarged
// format in one batched pair. Both target the same registry coordinates.
func (o *Orchestrator) writeSectionTitles(ctx context.Context) error {
	titles := []struct {
		region Region
		text   string
	}{
		{o.registry.CategoryTitle, categoryTitle},
		{o.registry.PaymentTitle, paymentTitle},
		{o.registry.BudgetTitle, budgetTitle},
		{o.registry.ForWhomTitle, forWhomTitle},
	}

	data := make([]*sheets.ValueRange, 0, len(titles))
	for _, t := range titles {
		data = append(data, &sheets.ValueRange{
			Range:  t.region.Anchor(),
			Values: [][]any{{t.text}},
		})
	}
	if err := o.batchValues(ctx, data); err != nil {
		return fmt.Errorf("failed to write section titles: %w", err)
	}

	dashboardID, err := o.resolveSheetID(ctx, SheetDashboard)
	if err != nil {
		return err
	}

	requests := make([]*sheets.Request, 0, len(titles))
	for _, t := range titles {
		requests = append(requests, &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: t.region.GridRange(dashboardID),
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat: &sheets.TextFormat{
							Bold:     true,
							FontSize: 13,
						},
					},
				},
				Fields: "userEnteredFormat.textFormat",
			},
		})
	}
	if err := o.batchUpdate(ctx, requests...); err != nil {
		return fmt.Errorf("failed to format section titles: %w", err)
	}
	return nil
}

// writeForWhom installs the household-member grouping query, offset away from
// the budget table so neither block expands into the other.
func (o *Orchestrator) writeForWhom(ctx context.Context) error {
	region := o.registry.ForWhomSummary
	if err := o.updateValues(ctx, region.Anchor(), [][]any{{ForWhomSummaryFormula()}}); err != nil {
		return fmt.Errorf("failed to write for-whom breakdown: %w", err)
	}
	return nil
}
