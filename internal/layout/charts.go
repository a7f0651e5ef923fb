package layout

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

func chartData(rng *sheets.GridRange) *sheets.ChartData {
	return &sheets.ChartData{
		SourceRange: &sheets.ChartSourceRange{
			Sources: []*sheets.GridRange{rng},
		},
	}
}

func overlayAt(sheetID int64, anchor Cell) *sheets.EmbeddedObjectPosition {
	return &sheets.EmbeddedObjectPosition{
		OverlayPosition: &sheets.OverlayPosition{
			AnchorCell: &sheets.GridCoordinate{
				SheetId:     sheetID,
				RowIndex:    anchor.Row,
				ColumnIndex: anchor.Col,
			},
		},
	}
}

func pieChartRequest(sheetID int64, title string, domain, series Region, anchor Cell) *sheets.Request {
	return &sheets.Request{
		AddChart: &sheets.AddChartRequest{
			Chart: &sheets.EmbeddedChart{
				Spec: &sheets.ChartSpec{
					Title: title,
					PieChart: &sheets.PieChartSpec{
						LegendPosition:   "RIGHT_LEGEND",
						ThreeDimensional: false,
						Domain:           chartData(domain.GridRange(sheetID)),
						Series:           chartData(series.GridRange(sheetID)),
					},
				},
				Position: overlayAt(sheetID, anchor),
			},
		},
	}
}

func columnChartRequest(sheetID int64, title string, domain, series Region, anchor Cell) *sheets.Request {
	return &sheets.Request{
		AddChart: &sheets.AddChartRequest{
			Chart: &sheets.EmbeddedChart{
				Spec: &sheets.ChartSpec{
					Title: title,
					BasicChart: &sheets.BasicChartSpec{
						ChartType:      "COLUMN",
						LegendPosition: "NO_LEGEND",
						Domains: []*sheets.BasicChartDomain{
							{Domain: chartData(domain.GridRange(sheetID))},
						},
						Series: []*sheets.BasicChartSeries{
							{Series: chartData(series.GridRange(sheetID))},
						},
					},
				},
				Position: overlayAt(sheetID, anchor),
			},
		},
	}
}

// addCharts anchors the three dashboard charts over the grid. Charts bind to
// the summary blocks' data rows, which are formula-driven: the registry's
// block heights are the only guarantee the ranges are big enough.
func (o *Orchestrator) addCharts(ctx context.Context) error {
	dashboardID, err := o.resolveSheetID(ctx, SheetDashboard)
	if err != nil {
		return err
	}

	category := o.registry.CategorySummary.DataRows()
	payment := o.registry.PaymentSummary.DataRows()
	forWhom := o.registry.ForWhomSummary.DataRows()

	err = o.batchUpdate(ctx,
		pieChartRequest(dashboardID, "Expenses by Category (%)",
			category.Column(0), category.Column(1), o.registry.CategoryChartAnchor),
		columnChartRequest(dashboardID, "Expenses by Payment Mode",
			payment.Column(0), payment.Column(1), o.registry.PaymentChartAnchor),
		pieChartRequest(dashboardID, "Expenses by For Whom (%)",
			forWhom.Column(0), forWhom.Column(1), o.registry.ForWhomChartAnchor),
	)
	if err != nil {
		return fmt.Errorf("failed to add charts: %w", err)
	}
	return nil
}
