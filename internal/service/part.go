package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pc-builder-backend/internal/database/models"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartService provides part-catalog business logic
type PartService struct {
	repo      repository.PartRepositoryInterface
	validator *validator.Validate
}

// Ensure PartService implements PartServiceInterface
var _ PartServiceInterface = (*PartService)(nil)

// NewPartService creates a new PartService
func NewPartService(repo repository.PartRepositoryInterface, validator *validator.Validate) *PartService {
	return &PartService{
		repo:      repo,
		validator: validator,
	}
}

// PartListQuery carries the browse/filter/sort parameters for the catalog
type PartListQuery struct {
	Kind     string
	Brand    string
	Name     string
	MinPrice *int64
	MaxPrice *int64
	Sort     []string
	Page     int
	PageSize int
}

// PartResponse represents a single part in API responses
type PartResponse struct {
	ID          uuid.UUID       `json:"id"`
	Kind        models.PartKind `json:"kind"`
	Brand       string          `json:"brand"`
	Name        string          `json:"name"`
	ModelNumber string          `json:"model_number,omitempty"`
	PriceCents  int64           `json:"price_cents"`
	Wattage     int             `json:"wattage"`
	Specs       json.RawMessage `json:"specs,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PartListResponse represents a paginated list of parts
type PartListResponse struct {
	Parts    []PartResponse `json:"parts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreatePartRequest represents the payload for seeding/admin part creation
type CreatePartRequest struct {
	Kind        string          `json:"kind" validate:"required"`
	Brand       string          `json:"brand" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	ModelNumber string          `json:"model_number" validate:"max=100"`
	PriceCents  int64           `json:"price_cents" validate:"gte=0"`
	Wattage     int             `json:"wattage" validate:"gte=0"`
	Specs       json.RawMessage `json:"specs"`
}

// List retrieves parts matching the compound filter with pagination
func (s *PartService) List(query *PartListQuery) (*PartListResponse, error) {
	page := query.Page
	pageSize := query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	filter := repository.PartFilter{
		Brand:         query.Brand,
		Name:          query.Name,
		MinPriceCents: query.MinPrice,
		MaxPriceCents: query.MaxPrice,
		Limit:         pageSize,
		Offset:        (page - 1) * pageSize,
	}

	if query.Kind != "" {
		kind, ok := models.ParsePartKind(query.Kind)
		if !ok {
			return nil, apperrors.ErrInvalidPartKind
		}
		filter.Kind = &kind
	}

	if query.MinPrice != nil && query.MaxPrice != nil && *query.MinPrice > *query.MaxPrice {
		return nil, apperrors.ErrInvalidPriceRange
	}

	for _, raw := range query.Sort {
		sort := repository.PartSort(raw)
		if !sort.IsValid() || sort == repository.PartSortDefault {
			return nil, apperrors.ErrInvalidSortKey
		}
		filter.Sort = append(filter.Sort, sort)
	}

	parts, total, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	responses := make([]PartResponse, len(parts))
	for i := range parts {
		responses[i] = toPartResponse(&parts[i])
	}

	return &PartListResponse{
		Parts:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID retrieves a part by ID
func (s *PartService) GetByID(id uuid.UUID) (*PartResponse, error) {
	part, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	resp := toPartResponse(part)
	return &resp, nil
}

// Create adds a part to the catalog (seeding/admin action)
func (s *PartService) Create(req *CreatePartRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationMessages(err)
	}

	kind, ok := models.ParsePartKind(req.Kind)
	if !ok {
		return nil, apperrors.ErrInvalidPartKind
	}

	if len(req.Specs) > 0 && !json.Valid(req.Specs) {
		return nil, apperrors.NewMalformedInputError("invalid specs document")
	}

	part := &models.Part{
		Kind:        kind,
		Brand:       req.Brand,
		Name:        req.Name,
		ModelNumber: req.ModelNumber,
		PriceCents:  req.PriceCents,
		Wattage:     req.Wattage,
		Specs:       req.Specs,
	}
	if err := s.repo.Create(part); err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	resp := toPartResponse(part)
	return &resp, nil
}

func toPartResponse(part *models.Part) PartResponse {
	return PartResponse{
		ID:          part.ID,
		Kind:        part.Kind,
		Brand:       part.Brand,
		Name:        part.Name,
		ModelNumber: part.ModelNumber,
		PriceCents:  part.PriceCents,
		Wattage:     part.Wattage,
		Specs:       part.Specs,
		CreatedAt:   part.CreatedAt,
	}
}

// validationMessages flattens validator errors into the caller-facing taxonomy
func validationMessages(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, len(verrs))
		for i, fe := range verrs {
			messages[i] = fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
		}
		return apperrors.NewValidationError(messages...)
	}
	return apperrors.NewValidationError(err.Error())
}
