package repository

import (
	"pc-builder-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartRepository handles database operations for the part catalog
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create creates a new part
func (r *PartRepository) Create(part *models.Part) error {
	return r.db.Create(part).Error
}

// GetByID retrieves a part by ID
func (r *PartRepository) GetByID(id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// List retrieves parts matching the compound filter with pagination
func (r *PartRepository) List(filter PartFilter) ([]models.Part, int64, error) {
	var parts []models.Part
	var total int64

	query := r.db.Model(&models.Part{})
	if filter.Kind != nil {
		query = query.Where("kind = ?", *filter.Kind)
	}
	if filter.Brand != "" {
		query = query.Where("brand ILIKE ?", "%"+filter.Brand+"%")
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.MinPriceCents != nil {
		query = query.Where("price_cents >= ?", *filter.MinPriceCents)
	}
	if filter.MaxPriceCents != nil {
		query = query.Where("price_cents <= ?", *filter.MaxPriceCents)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ordered := false
	for _, sort := range filter.Sort {
		switch sort {
		case PartSortPriceAsc:
			query = query.Order("price_cents ASC")
			ordered = true
		case PartSortPriceDesc:
			query = query.Order("price_cents DESC")
			ordered = true
		case PartSortBrandAsc:
			query = query.Order("brand ASC")
			ordered = true
		case PartSortBrandDesc:
			query = query.Order("brand DESC")
			ordered = true
		}
	}
	if !ordered {
		query = query.Order("kind ASC").Order("brand ASC").Order("name ASC")
	}

	// Get paginated results
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if err := query.Find(&parts).Error; err != nil {
		return nil, 0, err
	}

	return parts, total, nil
}

// Update updates a part
func (r *PartRepository) Update(part *models.Part) error {
	return r.db.Save(part).Error
}

// Delete deletes a part
func (r *PartRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Part{}, "id = ?", id).Error
}
