package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Build represents a named collection of at most one part per component kind,
// owned by a user or anonymous.
type Build struct {
	BaseModel
	Name   string     `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	UserID *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`

	// Cached aggregate; authoritative totals are always recomputed from items.
	TotalWattage *int `json:"total_wattage,omitempty"`

	// Sharing state. ShareToken + SharedAt together gate public read access;
	// SharedData is a best-effort copy of the share payload for fallback lookup.
	ShareToken *string    `json:"share_token,omitempty" gorm:"size:1024;index"`
	SharedAt   *time.Time `json:"shared_at,omitempty"`
	SharedData []byte     `json:"-" gorm:"type:text"`

	// Relationships
	User  *User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Items []BuildItem `json:"items,omitempty" gorm:"foreignKey:BuildID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Build
func (Build) TableName() string {
	return "builds"
}

// IsShared reports whether the build has completed the private -> shared transition.
func (b *Build) IsShared() bool {
	return b.ShareToken != nil && *b.ShareToken != "" && b.SharedAt != nil
}

// ParsedSharedData returns the persisted share payload, or false when the blob
// is absent or not valid JSON.
func (b *Build) ParsedSharedData(out interface{}) bool {
	if len(b.SharedData) == 0 {
		return false
	}
	return json.Unmarshal(b.SharedData, out) == nil
}

// OwnerName returns the owner's display name, or the anonymous fallback.
func (b *Build) OwnerName() string {
	if b.User != nil && b.User.Name != "" {
		return b.User.Name
	}
	return AnonymousUserName
}
