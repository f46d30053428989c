package repository

import (
	"errors"

	apperrors "pc-builder-backend/internal/errors"

	"pc-builder-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuildItemRepository handles database operations for build items
type BuildItemRepository struct {
	db *gorm.DB
}

// NewBuildItemRepository creates a new build item repository
func NewBuildItemRepository(db *gorm.DB) *BuildItemRepository {
	return &BuildItemRepository{db: db}
}

// GetByID retrieves a build item by ID with its part
func (r *BuildItemRepository) GetByID(id uuid.UUID) (*models.BuildItem, error) {
	var item models.BuildItem
	err := r.db.Preload("Part").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByBuild retrieves all items of a build with their parts
func (r *BuildItemRepository) GetByBuild(buildID uuid.UUID) ([]models.BuildItem, error) {
	var items []models.BuildItem
	err := r.db.Preload("Part").Where("build_id = ?", buildID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CountByBuild counts the items of a build
func (r *BuildItemRepository) CountByBuild(buildID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.BuildItem{}).Where("build_id = ?", buildID).Count(&count).Error
	return count, err
}

// AddOrReplacePart occupies the slot for the part's kind within one transaction.
// The slot row is locked for the check-then-act sequence, and the unique index
// on (build_id, part_kind) backstops concurrent inserts: a duplicate-key insert
// is retried as a replace. Returns the resulting item and, when the slot was
// already occupied, the part that was displaced.
func (r *BuildItemRepository) AddOrReplacePart(buildID uuid.UUID, part *models.Part) (*models.BuildItem, *models.Part, error) {
	var result models.BuildItem
	var replaced *models.Part

	err := r.db.Transaction(func(tx *gorm.DB) error {
		item, old, err := addOrReplaceInTx(tx, buildID, part)
		if err != nil {
			return err
		}
		result = *item
		replaced = old
		return nil
	})
	if err != nil && isUniqueViolation(err) {
		// Lost the race against a concurrent add of the same kind; the slot
		// exists now, so a second pass takes the replace branch.
		err = r.db.Transaction(func(tx *gorm.DB) error {
			item, old, err := addOrReplaceInTx(tx, buildID, part)
			if err != nil {
				return err
			}
			result = *item
			replaced = old
			return nil
		})
	}
	if err != nil {
		return nil, nil, err
	}
	return &result, replaced, nil
}

func addOrReplaceInTx(tx *gorm.DB, buildID uuid.UUID, part *models.Part) (*models.BuildItem, *models.Part, error) {
	var existing []models.BuildItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Part").
		Where("build_id = ? AND part_kind = ?", buildID, part.Kind).
		Order("created_at ASC").
		Find(&existing).Error
	if err != nil {
		return nil, nil, err
	}

	if len(existing) > 1 {
		// Cannot happen while the unique index holds; refuse to guess which row wins.
		return nil, nil, apperrors.ErrDuplicateSlot
	}

	if len(existing) == 1 {
		item := existing[0]
		oldPart := item.Part
		if err := tx.Model(&models.BuildItem{}).Where("id = ?", item.ID).
			Update("part_id", part.ID).Error; err != nil {
			return nil, nil, err
		}
		item.PartID = part.ID
		item.Part = part
		return &item, oldPart, nil
	}

	item := models.BuildItem{
		BuildID:  buildID,
		PartID:   part.ID,
		PartKind: part.Kind,
	}
	if err := tx.Create(&item).Error; err != nil {
		return nil, nil, err
	}
	item.Part = part
	return &item, nil, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// DeleteScoped deletes an item only when it belongs to the given build,
// returning the deleted item for caller messaging. Cross-build deletion is
// reported as gorm.ErrRecordNotFound.
func (r *BuildItemRepository) DeleteScoped(buildID, itemID uuid.UUID) (*models.BuildItem, error) {
	var item models.BuildItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Part").
			First(&item, "id = ? AND build_id = ?", itemID, buildID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BuildItem{}, "id = ?", item.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
