package repository

import (
	"time"

	"pc-builder-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PartSort identifies a sort key for catalog listings
type PartSort string

const (
	PartSortDefault   PartSort = ""
	PartSortPriceAsc  PartSort = "price_asc"
	PartSortPriceDesc PartSort = "price_desc"
	PartSortBrandAsc  PartSort = "brand_asc"
	PartSortBrandDesc PartSort = "brand_desc"
)

// IsValid checks if the PartSort is valid
func (s PartSort) IsValid() bool {
	switch s {
	case PartSortDefault, PartSortPriceAsc, PartSortPriceDesc, PartSortBrandAsc, PartSortBrandDesc:
		return true
	}
	return false
}

// PartFilter is the compound filter/sort surface over the part catalog.
// String matches are case-insensitive substrings; price bounds are in cents.
type PartFilter struct {
	Kind          *models.PartKind
	Brand         string
	Name          string
	MinPriceCents *int64
	MaxPriceCents *int64
	Sort          []PartSort
	Limit         int
	Offset        int
}

// PartRepositoryInterface defines the interface for part catalog operations
type PartRepositoryInterface interface {
	Create(part *models.Part) error
	GetByID(id uuid.UUID) (*models.Part, error)
	List(filter PartFilter) ([]models.Part, int64, error)
	Update(part *models.Part) error
	Delete(id uuid.UUID) error
}

// BuildRepositoryInterface defines the interface for build repository operations
type BuildRepositoryInterface interface {
	Create(build *models.Build) error
	GetByID(id uuid.UUID) (*models.Build, error)
	GetWithItems(id uuid.UUID) (*models.Build, error)
	GetAll(limit, offset int) ([]models.Build, int64, error)
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Build, int64, error)
	Update(build *models.Build) error
	Delete(id uuid.UUID) error
	SetShareState(id uuid.UUID, token string, sharedAt time.Time, sharedData []byte) error
	ClearShareState(id uuid.UUID) error
}

// BuildItemRepositoryInterface defines the interface for build item operations.
// AddOrReplacePart runs in a single transaction so the one-slot-per-kind
// invariant cannot be violated by concurrent writers; a non-nil replaced part
// means the slot was already occupied.
type BuildItemRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.BuildItem, error)
	GetByBuild(buildID uuid.UUID) ([]models.BuildItem, error)
	CountByBuild(buildID uuid.UUID) (int64, error)
	AddOrReplacePart(buildID uuid.UUID, part *models.Part) (*models.BuildItem, *models.Part, error)
	DeleteScoped(buildID, itemID uuid.UUID) (*models.BuildItem, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
