package planner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SplitItem is one selected line to distribute across shipments.
type SplitItem struct {
	ProductID   int             `json:"productId"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalQty    int             `json:"totalQty"`
	TargetShips []int           `json:"targetShips,omitempty"` // nil means all shipments
}

// ItemSplit is the per-shipment allocation computed for one item.
// Splits has one entry per shipment index and always sums to TotalQty.
type ItemSplit struct {
	ProductID int             `json:"productId"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	TotalQty  int             `json:"totalQty"`
	Splits    []int           `json:"splits"`
}

// NewItemSplit validates that the allocation reconciles before constructing.
func NewItemSplit(productID int, unitPrice decimal.Decimal, totalQty int, splits []int) (ItemSplit, error) {
	sum := 0
	for i, q := range splits {
		if q < 0 {
			return ItemSplit{}, fmt.Errorf("product %d: negative allocation %d at shipment %d", productID, q, i)
		}
		sum += q
	}
	if sum != totalQty {
		return ItemSplit{}, fmt.Errorf("product %d: allocations sum to %d, want %d", productID, sum, totalQty)
	}
	return ItemSplit{ProductID: productID, UnitPrice: unitPrice, TotalQty: totalQty, Splits: splits}, nil
}

// SplitQuantities distributes each item's total quantity across its target
// shipments one unit at a time, as close to even as integer division allows.
// The starting shipment is staggered by the item's position in the list so
// that remainder units from many items don't all pile onto shipment 0.
func SplitQuantities(items []SplitItem, numberOfShips int) []ItemSplit {
	if numberOfShips < 1 {
		numberOfShips = 1
	}

	result := make([]ItemSplit, 0, len(items))
	for itemIndex, item := range items {
		splits := make([]int, numberOfShips)

		targets := item.TargetShips
		if targets == nil {
			targets = allShipments(numberOfShips)
		} else {
			targets = inRange(targets, numberOfShips)
		}

		totalQty := item.TotalQty
		if totalQty < 0 {
			totalQty = 0
		}

		if len(targets) > 0 {
			startOffset := itemIndex % len(targets)
			for unit := 0; unit < totalQty; unit++ {
				splits[targets[(startOffset+unit)%len(targets)]]++
			}
		} else {
			// explicit empty target set: item excluded from every shipment
			totalQty = 0
		}

		result = append(result, ItemSplit{
			ProductID: item.ProductID,
			UnitPrice: item.UnitPrice,
			TotalQty:  totalQty,
			Splits:    splits,
		})
	}
	return result
}

func allShipments(n int) []int {
	targets := make([]int, n)
	for i := range targets {
		targets[i] = i
	}
	return targets
}

// inRange drops target indexes outside 0..n-1.
func inRange(targets []int, n int) []int {
	valid := make([]int, 0, len(targets))
	for _, t := range targets {
		if t >= 0 && t < n {
			valid = append(valid, t)
		}
	}
	return valid
}
