package service

import (
	"errors"
	"fmt"
	"time"

	"pc-builder-backend/internal/config"
	"pc-builder-backend/internal/database/models"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/logger"
	"pc-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemAction reports how AddOrReplacePart resolved the slot
type ItemAction string

const (
	ItemActionAdded    ItemAction = "added"
	ItemActionReplaced ItemAction = "replaced"
)

// BuildService handles business logic for builds: the single-slot-per-kind
// resolver and the derived aggregates over a build's current items.
type BuildService struct {
	repo         repository.BuildRepositoryInterface
	itemRepo     repository.BuildItemRepositoryInterface
	partRepo     repository.PartRepositoryInterface
	wattageScope config.WattageScope
	validator    *validator.Validate
	log          *logger.Logger
}

// Ensure BuildService implements BuildServiceInterface
var _ BuildServiceInterface = (*BuildService)(nil)

// NewBuildService creates a new BuildService
func NewBuildService(
	repo repository.BuildRepositoryInterface,
	itemRepo repository.BuildItemRepositoryInterface,
	partRepo repository.PartRepositoryInterface,
	wattageScope config.WattageScope,
	validator *validator.Validate,
) *BuildService {
	return &BuildService{
		repo:         repo,
		itemRepo:     itemRepo,
		partRepo:     partRepo,
		wattageScope: wattageScope,
		validator:    validator,
		log:          logger.New(),
	}
}

// CreateBuildRequest represents the payload for creating a build
type CreateBuildRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// BuildResponse represents a build in API responses
type BuildResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Shared    bool       `json:"shared"`
	SharedAt  *time.Time `json:"shared_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// BuildListResponse represents a paginated list of builds
type BuildListResponse struct {
	Builds   []BuildResponse `json:"builds"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// BuildItemResponse represents one occupied slot of a build
type BuildItemResponse struct {
	ID       uuid.UUID       `json:"id"`
	PartKind models.PartKind `json:"part_kind"`
	Quantity int             `json:"quantity"`
	Note     string          `json:"note,omitempty"`
	Part     *PartResponse   `json:"part,omitempty"`
}

// BuildDetailResponse represents a build with its items and derived totals
type BuildDetailResponse struct {
	BuildResponse
	Items        []BuildItemResponse     `json:"items"`
	TotalCost    int64                   `json:"total_cost"`
	TotalWattage int                     `json:"total_wattage"`
	PartsSummary map[models.PartKind]int `json:"parts_summary"`
}

// AddPartResult reports the outcome of an add-or-replace operation
type AddPartResult struct {
	Action      ItemAction        `json:"action"`
	Item        BuildItemResponse `json:"item"`
	OldPartName string            `json:"old_part_name,omitempty"`
	Message     string            `json:"message"`
}

// RemovePartResult reports the outcome of a remove operation
type RemovePartResult struct {
	RemovedPartName string `json:"removed_part_name"`
	Message         string `json:"message"`
}

// Create creates a new build, stamped with the actor as owner when present
func (s *BuildService) Create(req *CreateBuildRequest, actorID *uuid.UUID) (*BuildResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name must not be empty")
	}

	build := &models.Build{
		Name:   req.Name,
		UserID: actorID,
	}
	if err := s.repo.Create(build); err != nil {
		return nil, fmt.Errorf("failed to create build: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"build_id": build.ID,
		"name":     build.Name,
	}).Info("build created")

	resp := s.toResponse(build)
	return &resp, nil
}

// GetAll retrieves builds newest-first with pagination
func (s *BuildService) GetAll(page, pageSize int) (*BuildListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	builds, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get builds: %w", err)
	}

	responses := make([]BuildResponse, len(builds))
	for i := range builds {
		responses[i] = s.toResponse(&builds[i])
	}

	return &BuildListResponse{
		Builds:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID retrieves a build with its items and freshly computed totals
func (s *BuildService) GetByID(id uuid.UUID) (*BuildDetailResponse, error) {
	build, err := s.getWithItems(id)
	if err != nil {
		return nil, err
	}

	detail := &BuildDetailResponse{
		BuildResponse: s.toResponse(build),
		Items:         make([]BuildItemResponse, len(build.Items)),
		TotalCost:     totalCostCents(build.Items),
		TotalWattage:  totalWattage(build.Items, s.wattageScope),
		PartsSummary:  partsSummary(build.Items),
	}
	for i := range build.Items {
		detail.Items[i] = toItemResponse(&build.Items[i])
	}
	return detail, nil
}

// Delete destroys a build and cascades to its items; owner-gated
func (s *BuildService) Delete(id uuid.UUID, actorID *uuid.UUID) error {
	build, err := s.getBuild(id)
	if err != nil {
		return err
	}
	if !CanEdit(build, actorID) {
		return s.denied(build, actorID, "delete")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete build: %w", err)
	}
	s.log.WithField("build_id", id).Warn("build destroyed")
	return nil
}

// AddOrReplacePart adds the part to the build, or replaces the part occupying
// the slot for the same kind. The build item count never grows past one per kind.
func (s *BuildService) AddOrReplacePart(buildID, partID uuid.UUID, actorID *uuid.UUID) (*AddPartResult, error) {
	build, err := s.getBuild(buildID)
	if err != nil {
		return nil, err
	}
	if !CanEdit(build, actorID) {
		return nil, s.denied(build, actorID, "add part")
	}

	part, err := s.partRepo.GetByID(partID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	item, oldPart, err := s.itemRepo.AddOrReplacePart(buildID, part)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateSlot) {
			s.log.WithFields(map[string]interface{}{
				"build_id": buildID,
				"kind":     part.Kind,
			}).Error("data integrity: multiple items occupy one slot")
		}
		return nil, fmt.Errorf("failed to add part to build: %w", err)
	}

	result := &AddPartResult{
		Item: toItemResponse(item),
	}
	if oldPart != nil {
		result.Action = ItemActionReplaced
		result.OldPartName = oldPart.DisplayName()
		result.Message = fmt.Sprintf("%s was replaced with %s.", oldPart.DisplayName(), part.DisplayName())
	} else {
		result.Action = ItemActionAdded
		result.Message = fmt.Sprintf("%s was successfully added to your build.", part.DisplayName())
	}

	s.log.WithFields(map[string]interface{}{
		"build_id": buildID,
		"part_id":  partID,
		"kind":     part.Kind,
		"action":   result.Action,
	}).Info("build slot updated")

	return result, nil
}

// RemovePart deletes one item from the build; cross-build deletion is rejected
func (s *BuildService) RemovePart(buildID, itemID uuid.UUID, actorID *uuid.UUID) (*RemovePartResult, error) {
	build, err := s.getBuild(buildID)
	if err != nil {
		return nil, err
	}
	if !CanEdit(build, actorID) {
		return nil, s.denied(build, actorID, "remove part")
	}

	item, err := s.itemRepo.DeleteScoped(buildID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildItemNotFound
		}
		return nil, fmt.Errorf("failed to remove part: %w", err)
	}

	name := ""
	if item.Part != nil {
		name = item.Part.DisplayName()
	}
	s.log.WithFields(map[string]interface{}{
		"build_id": buildID,
		"item_id":  itemID,
	}).Info("build item removed")

	return &RemovePartResult{
		RemovedPartName: name,
		Message:         fmt.Sprintf("%s was removed from your build.", name),
	}, nil
}

// TotalCost computes the build's total cost in cents from its current items
func (s *BuildService) TotalCost(buildID uuid.UUID) (int64, error) {
	build, err := s.getWithItems(buildID)
	if err != nil {
		return 0, err
	}
	return totalCostCents(build.Items), nil
}

// TotalWattage computes the build's total wattage from its current items
func (s *BuildService) TotalWattage(buildID uuid.UUID) (int, error) {
	build, err := s.getWithItems(buildID)
	if err != nil {
		return 0, err
	}
	return totalWattage(build.Items, s.wattageScope), nil
}

// PartsSummary groups the build's items by part kind with counts
func (s *BuildService) PartsSummary(buildID uuid.UUID) (map[models.PartKind]int, error) {
	build, err := s.getWithItems(buildID)
	if err != nil {
		return nil, err
	}
	return partsSummary(build.Items), nil
}

func (s *BuildService) getBuild(id uuid.UUID) (*models.Build, error) {
	build, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildNotFound
		}
		return nil, fmt.Errorf("failed to get build: %w", err)
	}
	return build, nil
}

func (s *BuildService) getWithItems(id uuid.UUID) (*models.Build, error) {
	build, err := s.repo.GetWithItems(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildNotFound
		}
		return nil, fmt.Errorf("failed to get build: %w", err)
	}
	return build, nil
}

func (s *BuildService) denied(build *models.Build, actorID *uuid.UUID, op string) error {
	s.log.WithFields(map[string]interface{}{
		"build_id": build.ID,
		"actor":    actorID,
		"op":       op,
	}).Warn("unauthorized build mutation attempt")
	if actorID == nil {
		return apperrors.ErrLoginRequired
	}
	return apperrors.ErrNotBuildOwner
}

func (s *BuildService) toResponse(build *models.Build) BuildResponse {
	return BuildResponse{
		ID:        build.ID,
		Name:      build.Name,
		UserID:    build.UserID,
		Shared:    build.IsShared(),
		SharedAt:  build.SharedAt,
		CreatedAt: build.CreatedAt,
	}
}

func toItemResponse(item *models.BuildItem) BuildItemResponse {
	resp := BuildItemResponse{
		ID:       item.ID,
		PartKind: item.PartKind,
		Quantity: item.EffectiveQuantity(),
		Note:     item.Note,
	}
	if item.Part != nil {
		partResp := toPartResponse(item.Part)
		resp.Part = &partResp
	}
	return resp
}
