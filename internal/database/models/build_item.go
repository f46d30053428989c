package models

import (
	"github.com/google/uuid"
)

// BuildItem links a build to one catalog part. PartKind is denormalized from
// the part so the single-slot-per-kind invariant can be enforced by the
// unique index on (build_id, part_kind) instead of a check-then-act read.
type BuildItem struct {
	BaseModel
	BuildID  uuid.UUID `json:"build_id" gorm:"type:uuid;not null;uniqueIndex:idx_build_items_slot" validate:"required"`
	PartID   uuid.UUID `json:"part_id" gorm:"type:uuid;not null;index" validate:"required"`
	PartKind PartKind  `json:"part_kind" gorm:"type:varchar(20);not null;uniqueIndex:idx_build_items_slot" validate:"required"`
	Quantity *int      `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Note     string    `json:"note,omitempty" gorm:"type:text"`

	// Relationships
	Build *Build `json:"build,omitempty" gorm:"foreignKey:BuildID;constraint:OnDelete:CASCADE"`
	Part  *Part  `json:"part,omitempty" gorm:"foreignKey:PartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for BuildItem
func (BuildItem) TableName() string {
	return "build_items"
}

// EffectiveQuantity resolves the nil-defaults-to-1 quantity semantics.
func (i *BuildItem) EffectiveQuantity() int {
	if i.Quantity == nil {
		return 1
	}
	return *i.Quantity
}

// TotalCostCents is the item's contribution to the build's total cost.
func (i *BuildItem) TotalCostCents() int64 {
	if i.Part == nil {
		return 0
	}
	return i.Part.PriceCents * int64(i.EffectiveQuantity())
}

// TotalWattage is the item's contribution to the build's total wattage.
func (i *BuildItem) TotalWattage() int {
	if i.Part == nil {
		return 0
	}
	return i.Part.Wattage * i.EffectiveQuantity()
}
