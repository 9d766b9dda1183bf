package planner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitQuantities(t *testing.T) {
	tests := []struct {
		name          string
		items         []SplitItem
		numberOfShips int
		want          [][]int
	}{
		{
			name:          "first item gets remainder on shipment zero",
			items:         []SplitItem{{ProductID: 1, TotalQty: 10}},
			numberOfShips: 3,
			want:          [][]int{{4, 3, 3}},
		},
		{
			name: "second item staggers remainder to shipment one",
			items: []SplitItem{
				{ProductID: 1, TotalQty: 10},
				{ProductID: 2, TotalQty: 10},
			},
			numberOfShips: 3,
			want:          [][]int{{4, 3, 3}, {3, 4, 3}},
		},
		{
			name:          "even split leaves no remainder",
			items:         []SplitItem{{ProductID: 1, TotalQty: 9}},
			numberOfShips: 3,
			want:          [][]int{{3, 3, 3}},
		},
		{
			name:          "single shipment takes everything",
			items:         []SplitItem{{ProductID: 1, TotalQty: 7}},
			numberOfShips: 1,
			want:          [][]int{{7}},
		},
		{
			name:          "restricted to a subset of shipments",
			items:         []SplitItem{{ProductID: 1, TotalQty: 5, TargetShips: []int{1, 3}}},
			numberOfShips: 4,
			want:          [][]int{{0, 3, 0, 2}},
		},
		{
			name:          "empty target set excludes the item",
			items:         []SplitItem{{ProductID: 1, TotalQty: 5, TargetShips: []int{}}},
			numberOfShips: 3,
			want:          [][]int{{0, 0, 0}},
		},
		{
			name:          "out of range targets are dropped",
			items:         []SplitItem{{ProductID: 1, TotalQty: 4, TargetShips: []int{2, 9}}},
			numberOfShips: 3,
			want:          [][]int{{0, 0, 4}},
		},
		{
			name:          "zero quantity allocates nothing",
			items:         []SplitItem{{ProductID: 1, TotalQty: 0}},
			numberOfShips: 2,
			want:          [][]int{{0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitQuantities(tt.items, tt.numberOfShips)
			require.Len(t, got, len(tt.want))
			for i, split := range got {
				assert.Equal(t, tt.want[i], split.Splits, "item %d", i)
			}
		})
	}
}

func TestSplitQuantitiesReconciles(t *testing.T) {
	// Every split sums to its total and spreads within one unit across its
	// targets, for a variety of quantities and positions in the list.
	items := make([]SplitItem, 0, 40)
	for q := 0; q < 40; q++ {
		items = append(items, SplitItem{ProductID: q + 1, TotalQty: q * 3})
	}

	for _, numShips := range []int{1, 2, 3, 5, 12} {
		splits := SplitQuantities(items, numShips)
		for i, split := range splits {
			sum, min, max := 0, items[i].TotalQty, 0
			for _, q := range split.Splits {
				sum += q
				if q < min {
					min = q
				}
				if q > max {
					max = q
				}
			}
			assert.Equal(t, items[i].TotalQty, sum, "item %d ships %d", i, numShips)
			if items[i].TotalQty >= numShips {
				assert.LessOrEqual(t, max-min, 1, "item %d ships %d", i, numShips)
			}
		}
	}
}

func TestNewItemSplit(t *testing.T) {
	price := decimal.NewFromFloat(24.50)

	split, err := NewItemSplit(7, price, 10, []int{4, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 10, split.TotalQty)

	_, err = NewItemSplit(7, price, 10, []int{4, 3, 2})
	assert.Error(t, err)

	_, err = NewItemSplit(7, price, 2, []int{3, -1})
	assert.Error(t, err)
}
