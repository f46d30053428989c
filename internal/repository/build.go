package repository

import (
	"time"

	"pc-builder-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildRepository handles database operations for builds
type BuildRepository struct {
	db *gorm.DB
}

// NewBuildRepository creates a new build repository
func NewBuildRepository(db *gorm.DB) *BuildRepository {
	return &BuildRepository{db: db}
}

// Create creates a new build
func (r *BuildRepository) Create(build *models.Build) error {
	return r.db.Create(build).Error
}

// GetByID retrieves a build by ID
func (r *BuildRepository) GetByID(id uuid.UUID) (*models.Build, error) {
	var build models.Build
	err := r.db.First(&build, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &build, nil
}

// GetWithItems retrieves a build with its items, their parts, and the owner
func (r *BuildRepository) GetWithItems(id uuid.UUID) (*models.Build, error) {
	var build models.Build
	err := r.db.
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("build_items.created_at ASC")
		}).
		Preload("Items.Part").
		First(&build, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &build, nil
}

// GetAll retrieves builds newest-first with pagination
func (r *BuildRepository) GetAll(limit, offset int) ([]models.Build, int64, error) {
	var builds []models.Build
	var total int64

	if err := r.db.Model(&models.Build{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&builds).Error
	if err != nil {
		return nil, 0, err
	}

	return builds, total, nil
}

// GetByUserID retrieves builds owned by a user, newest-first, with pagination
func (r *BuildRepository) GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Build, int64, error) {
	var builds []models.Build
	var total int64

	query := r.db.Model(&models.Build{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&builds).Error; err != nil {
		return nil, 0, err
	}

	return builds, total, nil
}

// Update updates a build
func (r *BuildRepository) Update(build *models.Build) error {
	return r.db.Save(build).Error
}

// Delete deletes a build and cascades to its items
func (r *BuildRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.BuildItem{}, "build_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Build{}, "id = ?", id).Error
	})
}

// SetShareState stamps the share token, timestamp and payload copy on the build row
func (r *BuildRepository) SetShareState(id uuid.UUID, token string, sharedAt time.Time, sharedData []byte) error {
	return r.db.Model(&models.Build{}).Where("id = ?", id).Updates(map[string]interface{}{
		"share_token": token,
		"shared_at":   sharedAt,
		"shared_data": sharedData,
	}).Error
}

// ClearShareState reverts the build to the private state
func (r *BuildRepository) ClearShareState(id uuid.UUID) error {
	return r.db.Model(&models.Build{}).Where("id = ?", id).Updates(map[string]interface{}{
		"share_token": nil,
		"shared_at":   nil,
		"shared_data": nil,
	}).Error
}
