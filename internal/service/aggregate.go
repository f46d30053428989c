package service

import (
	"pc-builder-backend/internal/config"
	"pc-builder-backend/internal/database/models"

	"github.com/google/uuid"
)

// totalCostCents sums part price times quantity over a build's items.
// Items whose part is missing a price contribute 0.
func totalCostCents(items []models.BuildItem) int64 {
	var total int64
	for i := range items {
		total += items[i].TotalCostCents()
	}
	return total
}

// totalWattage sums part wattage times quantity over a build's items,
// restricted to CPU+GPU kinds when the scope says so.
func totalWattage(items []models.BuildItem, scope config.WattageScope) int {
	var total int
	for i := range items {
		if scope == config.WattageScopeCpuGpu &&
			items[i].PartKind != models.PartKindCpu && items[i].PartKind != models.PartKindGpu {
			continue
		}
		total += items[i].TotalWattage()
	}
	return total
}

// partsSummary groups a build's items by part kind with counts.
func partsSummary(items []models.BuildItem) map[models.PartKind]int {
	summary := make(map[models.PartKind]int, len(items))
	for i := range items {
		summary[items[i].PartKind]++
	}
	return summary
}

// CanEdit reports whether the actor may mutate or share the build. A logged-in
// actor may edit their own builds and any ownerless build; anonymous callers
// may edit nothing.
func CanEdit(build *models.Build, actorID *uuid.UUID) bool {
	if actorID == nil {
		return false
	}
	return build.UserID == nil || *build.UserID == *actorID
}
