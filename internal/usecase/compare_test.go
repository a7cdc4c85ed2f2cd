package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparisonRow(id int64, price string, offersCount int) ProductComparison {
	row := ProductComparison{ID: id, OffersCount: offersCount}
	if price != "" {
		p := decimal.RequireFromString(price)
		row.LowestPrice = &p
	}
	return row
}

func rowIDs(rows []ProductComparison) []int64 {
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func TestBuildViewSortByPrice(t *testing.T) {
	rows := []ProductComparison{
		comparisonRow(1, "300.00", 2),
		comparisonRow(2, "", 0), // без единой цены
		comparisonRow(3, "100.00", 5),
		comparisonRow(4, "200.00", 1),
	}

	asc := BuildView(rows, SortByPrice, OrderAsc)
	assert.Equal(t, []int64{3, 4, 1, 2}, rowIDs(asc))

	desc := BuildView(rows, SortByPrice, OrderDesc)
	assert.Equal(t, []int64{2, 1, 4, 3}, rowIDs(desc))

	// Исходный срез не перестраивается.
	assert.Equal(t, []int64{1, 2, 3, 4}, rowIDs(rows))
}

func TestBuildViewSortBySuppliers(t *testing.T) {
	rows := []ProductComparison{
		comparisonRow(1, "10.00", 3),
		comparisonRow(2, "10.00", 1),
		comparisonRow(3, "10.00", 7),
	}

	asc := BuildView(rows, SortBySuppliers, OrderAsc)
	assert.Equal(t, []int64{2, 1, 3}, rowIDs(asc))

	desc := BuildView(rows, SortBySuppliers, OrderDesc)
	assert.Equal(t, []int64{3, 1, 2}, rowIDs(desc))
}

func TestBuildViewStableOnTies(t *testing.T) {
	rows := []ProductComparison{
		comparisonRow(1, "50.00", 1),
		comparisonRow(2, "50.00", 1),
		comparisonRow(3, "50.00", 1),
	}

	got := BuildView(rows, SortByPrice, OrderAsc)
	assert.Equal(t, []int64{1, 2, 3}, rowIDs(got))
}

func TestPaginate(t *testing.T) {
	rows := []ProductComparison{
		comparisonRow(1, "", 0),
		comparisonRow(2, "", 0),
		comparisonRow(3, "", 0),
		comparisonRow(4, "", 0),
		comparisonRow(5, "", 0),
	}

	tests := []struct {
		name    string
		page    int
		perPage int
		want    []int64
	}{
		{"first page", 1, 2, []int64{1, 2}},
		{"middle page", 2, 2, []int64{3, 4}},
		{"short last page", 3, 2, []int64{5}},
		{"page beyond range", 4, 2, []int64{}},
		{"zero page disables pagination", 0, 2, []int64{1, 2, 3, 4, 5}},
		{"zero per page disables pagination", 1, 0, []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(rows, tt.page, tt.perPage)
			require.Equal(t, tt.want, rowIDs(got))
		})
	}
}

func TestToggleExpanded(t *testing.T) {
	assert.Equal(t, int64(7), ToggleExpanded(0, 7), "клик по свёрнутой строке раскрывает её")
	assert.Equal(t, int64(0), ToggleExpanded(7, 7), "повторный клик сворачивает")
	assert.Equal(t, int64(3), ToggleExpanded(7, 3), "клик по другой строке переносит раскрытие")
}
