package kitchen

import (
	"math"

	"github.com/google/uuid"
	"github.com/rasoighar/backend/internal/model"
)

var (
	perishableCategories    = map[string]bool{model.CategoryDairy: true, model.CategoryVegetables: true, model.CategoryFruits: true}
	nonPerishableCategories = map[string]bool{model.CategoryGrains: true, model.CategorySpices: true, model.CategoryLentils: true, model.CategoryOils: true}
)

// WasteFlag marks an inventory item at risk of being wasted, either
// because it sits unused or because there is too much of it.
type WasteFlag struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	CurrentQuantity float64   `json:"currentQuantity"`
	Unit            string    `json:"unit"`
	Threshold       float64   `json:"threshold"`
	Perishable      bool      `json:"perishable"`
	WasteRisk       string    `json:"wasteRisk"`
	Reasons         []string  `json:"reasons"`
	UsagePercentage int       `json:"usagePercentage"`
}

// PredictWaste classifies each item's over/under-stock risk against
// category-dependent thresholds. Items without a threshold carry no
// usage ratio and are never flagged.
//
// The two checks on each branch run in a fixed order (low usage first,
// excess second); when both trigger, the later one's risk value stands.
func PredictWaste(inventory []model.InventoryItem) []WasteFlag {
	flags := []WasteFlag{}

	for _, item := range inventory {
		if item.Threshold <= 0 {
			continue
		}
		usageRatio := item.CurrentQuantity / item.Threshold
		perishable := perishableCategories[item.Category] || item.Perishable

		wasteRisk := "medium"
		var reasons []string

		if perishable {
			if usageRatio < 0.3 {
				wasteRisk = "high"
				reasons = append(reasons, "Low usage - might spoil before use")
			}
			if usageRatio > 2 {
				wasteRisk = "high"
				reasons = append(reasons, "Excess quantity - might not get used before spoiling")
			}
		} else if nonPerishableCategories[item.Category] {
			if usageRatio < 0.1 {
				wasteRisk = "low"
				reasons = append(reasons, "Very low usage - consider if you need this item")
			}
			if usageRatio > 5 {
				wasteRisk = "medium"
				reasons = append(reasons, "Large quantity - might expire before use")
			}
		}
		if len(reasons) == 0 {
			continue
		}

		flags = append(flags, WasteFlag{
			ID:              item.ID,
			Name:            item.Name,
			Category:        item.Category,
			CurrentQuantity: item.CurrentQuantity,
			Unit:            item.Unit,
			Threshold:       item.Threshold,
			Perishable:      perishable,
			WasteRisk:       wasteRisk,
			Reasons:         reasons,
			UsagePercentage: int(math.Round(usageRatio * 100)),
		})
	}
	return flags
}
