package planner

import "github.com/shopspring/decimal"

// ShipmentPlan is the ordered sequence of shipment slots for one order
// generation batch. A slot's date may be empty until the caller fills it.
type ShipmentPlan struct {
	Dates []string `json:"dates"`
}

// NewShipmentPlan generates a plan from the three generating inputs.
// Changing any of them means regenerating the whole plan; manual overrides
// made afterwards survive until then.
func NewShipmentPlan(numberOfShips, shipDay int, start *YearMonth) ShipmentPlan {
	return ShipmentPlan{Dates: GenerateShipDates(numberOfShips, shipDay, start)}
}

// NumShips returns the number of shipment slots.
func (p ShipmentPlan) NumShips() int {
	return len(p.Dates)
}

// Override replaces a single slot's date without touching the others.
func (p ShipmentPlan) Override(index int, date string) {
	if index >= 0 && index < len(p.Dates) {
		p.Dates[index] = date
	}
}

// OrderDraftLine is one product line destined for a single shipment.
type OrderDraftLine struct {
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// OrderDraft holds everything needed to create one shipment's order:
// the header fields plus the non-zero lines allocated to it.
type OrderDraft struct {
	ShipIndex  int              `json:"shipIndex"`
	SeasonID   int              `json:"seasonId"`
	BrandID    int              `json:"brandId"`
	LocationID int              `json:"locationId"`
	ShipDate   string           `json:"shipDate"`
	Notes      string           `json:"notes,omitempty"`
	Lines      []OrderDraftLine `json:"lines"`
}

// BuildOrderDrafts materializes one draft per shipment slot that received
// at least one unit. Slots whose column is all zeros produce no order.
func BuildOrderDrafts(seasonID, brandID, locationID int, notes string, plan ShipmentPlan, splits []ItemSplit) []OrderDraft {
	drafts := make([]OrderDraft, 0, plan.NumShips())
	for s := 0; s < plan.NumShips(); s++ {
		var lines []OrderDraftLine
		for _, split := range splits {
			if s < len(split.Splits) && split.Splits[s] > 0 {
				lines = append(lines, OrderDraftLine{
					ProductID: split.ProductID,
					Quantity:  split.Splits[s],
					UnitPrice: split.UnitPrice,
				})
			}
		}
		if len(lines) == 0 {
			continue
		}
		drafts = append(drafts, OrderDraft{
			ShipIndex:  s,
			SeasonID:   seasonID,
			BrandID:    brandID,
			LocationID: locationID,
			ShipDate:   plan.Dates[s],
			Notes:      notes,
			Lines:      lines,
		})
	}
	return drafts
}
