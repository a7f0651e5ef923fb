package layout

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// SheetDashboard is the title of the sheet the orchestrator creates.
const SheetDashboard = "Dashboard"

// Region is a rectangular block of cells on a named sheet. Rows and columns
// are 0-indexed and half-open; a zero EndRow means the block is open-ended.
type Region struct {
	Sheet    string
	StartRow int64
	EndRow   int64
	StartCol int64
	EndCol   int64
}

// colLetter converts a 0-based column index to its letter ("A".."Z").
func colLetter(i int64) string {
	return string(rune('A' + i))
}

// Anchor returns the A1 address of the region's top-left cell,
// e.g. "Dashboard!A20".
func (r Region) Anchor() string {
	return fmt.Sprintf("%s!%s%d", r.Sheet, colLetter(r.StartCol), r.StartRow+1)
}

// Cols returns the sheet-local column span, e.g. "J:K". Used for joins that
// must survive the block growing or shrinking vertically.
func (r Region) Cols() string {
	return fmt.Sprintf("%s:%s", colLetter(r.StartCol), colLetter(r.EndCol-1))
}

// GridRange converts the region to API coordinates for the given sheet ID.
func (r Region) GridRange(sheetID int64) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    r.StartRow,
		EndRowIndex:      r.EndRow,
		StartColumnIndex: r.StartCol,
		EndColumnIndex:   r.EndCol,
	}
}

// DataRows returns the region minus its first row. Query blocks emit their
// header at the anchor row; charts must bind to the rows below it.
func (r Region) DataRows() Region {
	data := r
	data.StartRow++
	return data
}

// Column returns the single-column sub-region at the given offset from the
// region's left edge.
func (r Region) Column(offset int64) Region {
	col := r
	col.StartCol = r.StartCol + offset
	col.EndCol = col.StartCol + 1
	return col
}

// Cell is a single-cell anchor, used for chart overlay positions.
type Cell struct {
	Sheet string
	Row   int64
	Col   int64
}

// Registry maps every logical dashboard region to fixed coordinates. Titles,
// formulas, conditional rules and charts all read from here, so a layout
// change happens in exactly one place.
//
// Summary regions are sized for 12 grouped rows (15 for the for-whom block);
// if the data ever produces more distinct groups than that, the surplus rows
// fall outside the bound chart ranges.
type Registry struct {
	KPILabels Region
	KPIValues Region

	CategoryTitle Region
	PaymentTitle  Region
	BudgetTitle   Region
	ForWhomTitle  Region

	CategorySummary Region
	PaymentSummary  Region
	BudgetStaging   Region
	BudgetTable     Region
	ForWhomSummary  Region

	CategoryChartAnchor Cell
	PaymentChartAnchor  Cell
	ForWhomChartAnchor  Cell
}

// DefaultRegistry returns the dashboard layout.
func DefaultRegistry() Registry {
	return Registry{
		KPILabels: Region{Sheet: SheetDashboard, StartRow: 0, EndRow: 1, StartCol: 0, EndCol: 3},
		KPIValues: Region{Sheet: SheetDashboard, StartRow: 1, EndRow: 2, StartCol: 0, EndCol: 3},

		CategoryTitle: Region{Sheet: SheetDashboard, StartRow: 3, EndRow: 4, StartCol: 0, EndCol: 2},
		PaymentTitle:  Region{Sheet: SheetDashboard, StartRow: 3, EndRow: 4, StartCol: 3, EndCol: 5},
		BudgetTitle:   Region{Sheet: SheetDashboard, StartRow: 18, EndRow: 19, StartCol: 0, EndCol: 4},
		ForWhomTitle:  Region{Sheet: SheetDashboard, StartRow: 18, EndRow: 19, StartCol: 12, EndCol: 14},

		// Header row at the anchor, then up to 12 grouped data rows.
		CategorySummary: Region{Sheet: SheetDashboard, StartRow: 4, EndRow: 17, StartCol: 0, EndCol: 2},
		PaymentSummary:  Region{Sheet: SheetDashboard, StartRow: 4, EndRow: 17, StartCol: 3, EndCol: 5},

		// Staging sits far right of the budget table so the budget block can
		// expand without colliding with its own helper.
		BudgetStaging: Region{Sheet: SheetDashboard, StartRow: 19, EndRow: 32, StartCol: 9, EndCol: 11},
		BudgetTable:   Region{Sheet: SheetDashboard, StartRow: 19, EndRow: 32, StartCol: 0, EndCol: 4},

		// Up to 15 members.
		ForWhomSummary: Region{Sheet: SheetDashboard, StartRow: 19, EndRow: 35, StartCol: 12, EndCol: 14},

		CategoryChartAnchor: Cell{Sheet: SheetDashboard, Row: 1, Col: 7},
		PaymentChartAnchor:  Cell{Sheet: SheetDashboard, Row: 20, Col: 7},
		ForWhomChartAnchor:  Cell{Sheet: SheetDashboard, Row: 35, Col: 7},
	}
}

// VarianceColumn returns the budget table's variance column as a region, for
// the negative-variance conditional rule.
func (r Registry) VarianceColumn() Region {
	v := r.BudgetTable
	v.StartCol = r.BudgetTable.StartCol + 3
	v.EndCol = v.StartCol + 1
	return v
}

// DashboardRegions returns every value-bearing dashboard block, for overlap
// auditing.
func (r Registry) DashboardRegions() map[string]Region {
	return map[string]Region{
		"kpi labels":       r.KPILabels,
		"kpi values":       r.KPIValues,
		"category title":   r.CategoryTitle,
		"payment title":    r.PaymentTitle,
		"budget title":     r.BudgetTitle,
		"for whom title":   r.ForWhomTitle,
		"category summary": r.CategorySummary,
		"payment summary":  r.PaymentSummary,
		"budget staging":   r.BudgetStaging,
		"budget table":     r.BudgetTable,
		"for whom summary": r.ForWhomSummary,
	}
}
