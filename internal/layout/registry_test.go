package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_Anchor(t *testing.T) {
	assert.Equal(t, "Dashboard!A1", Region{Sheet: SheetDashboard, StartRow: 0, StartCol: 0}.Anchor())
	assert.Equal(t, "Dashboard!J20", Region{Sheet: SheetDashboard, StartRow: 19, StartCol: 9}.Anchor())
	assert.Equal(t, "Dashboard!M20", Region{Sheet: SheetDashboard, StartRow: 19, StartCol: 12}.Anchor())
}

func TestRegion_Cols(t *testing.T) {
	staging := DefaultRegistry().BudgetStaging
	assert.Equal(t, "J:K", staging.Cols())
}

func TestRegion_GridRange(t *testing.T) {
	r := Region{Sheet: SheetDashboard, StartRow: 4, EndRow: 17, StartCol: 3, EndCol: 5}
	g := r.GridRange(42)

	assert.Equal(t, int64(42), g.SheetId)
	assert.Equal(t, int64(4), g.StartRowIndex)
	assert.Equal(t, int64(17), g.EndRowIndex)
	assert.Equal(t, int64(3), g.StartColumnIndex)
	assert.Equal(t, int64(5), g.EndColumnIndex)
}

func TestRegion_DataRowsAndColumn(t *testing.T) {
	summary := DefaultRegistry().CategorySummary
	data := summary.DataRows()

	assert.Equal(t, summary.StartRow+1, data.StartRow, "data rows skip the query header")
	assert.Equal(t, summary.EndRow, data.EndRow)

	keys := data.Column(0)
	values := data.Column(1)
	assert.Equal(t, summary.StartCol, keys.StartCol)
	assert.Equal(t, keys.StartCol+1, keys.EndCol)
	assert.Equal(t, keys.EndCol, values.StartCol)
}

func TestDefaultRegistry_Anchors(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, "Dashboard!A1", r.KPILabels.Anchor())
	assert.Equal(t, "Dashboard!A2", r.KPIValues.Anchor())
	assert.Equal(t, "Dashboard!A4", r.CategoryTitle.Anchor())
	assert.Equal(t, "Dashboard!D4", r.PaymentTitle.Anchor())
	assert.Equal(t, "Dashboard!A5", r.CategorySummary.Anchor())
	assert.Equal(t, "Dashboard!D5", r.PaymentSummary.Anchor())
	assert.Equal(t, "Dashboard!A19", r.BudgetTitle.Anchor())
	assert.Equal(t, "Dashboard!A20", r.BudgetTable.Anchor())
	assert.Equal(t, "Dashboard!J20", r.BudgetStaging.Anchor())
	assert.Equal(t, "Dashboard!M19", r.ForWhomTitle.Anchor())
	assert.Equal(t, "Dashboard!M20", r.ForWhomSummary.Anchor())
}

func overlaps(a, b Region) bool {
	return a.StartRow < b.EndRow && b.StartRow < a.EndRow &&
		a.StartCol < b.EndCol && b.StartCol < a.EndCol
}

// Formula blocks expand downward at evaluation time; the registry must keep
// every dashboard block spatially disjoint so no block clobbers another.
func TestDefaultRegistry_NoOverlaps(t *testing.T) {
	regions := DefaultRegistry().DashboardRegions()

	for nameA, a := range regions {
		for nameB, b := range regions {
			if nameA == nameB {
				continue
			}
			assert.False(t, overlaps(a, b), "%s overlaps %s", nameA, nameB)
		}
	}
}

func TestVarianceColumn(t *testing.T) {
	r := DefaultRegistry()
	v := r.VarianceColumn()

	assert.Equal(t, r.BudgetTable.StartCol+3, v.StartCol, "variance is the fourth budget column")
	assert.Equal(t, v.StartCol+1, v.EndCol)
	assert.Equal(t, r.BudgetTable.StartRow, v.StartRow)
	assert.Equal(t, r.BudgetTable.EndRow, v.EndRow)
}

// The chart ranges must cover their summary blocks; grouped rows beyond the
// block height are silently excluded from the chart, so the headroom is the
// only guard.
func TestChartRanges_CoverSummaries(t *testing.T) {
	r := DefaultRegistry()

	require.GreaterOrEqual(t, r.CategorySummary.EndRow-r.CategorySummary.StartRow-1, int64(12),
		"category chart range holds at least 12 grouped rows")
	require.GreaterOrEqual(t, r.PaymentSummary.EndRow-r.PaymentSummary.StartRow-1, int64(12))
	require.GreaterOrEqual(t, r.ForWhomSummary.EndRow-r.ForWhomSummary.StartRow-1, int64(15))
}
