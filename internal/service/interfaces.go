package service

import (
	"encoding/json"

	"pc-builder-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PartServiceInterface defines the interface for part catalog business logic
type PartServiceInterface interface {
	List(query *PartListQuery) (*PartListResponse, error)
	GetByID(id uuid.UUID) (*PartResponse, error)
	Create(req *CreatePartRequest) (*PartResponse, error)
}

// BuildServiceInterface defines the interface for build business logic
type BuildServiceInterface interface {
	Create(req *CreateBuildRequest, actorID *uuid.UUID) (*BuildResponse, error)
	GetAll(page, pageSize int) (*BuildListResponse, error)
	GetByID(id uuid.UUID) (*BuildDetailResponse, error)
	Delete(id uuid.UUID, actorID *uuid.UUID) error
	AddOrReplacePart(buildID, partID uuid.UUID, actorID *uuid.UUID) (*AddPartResult, error)
	RemovePart(buildID, itemID uuid.UUID, actorID *uuid.UUID) (*RemovePartResult, error)
	TotalCost(buildID uuid.UUID) (int64, error)
	TotalWattage(buildID uuid.UUID) (int, error)
	PartsSummary(buildID uuid.UUID) (map[models.PartKind]int, error)
}

// ShareServiceInterface defines the interface for build sharing business logic
type ShareServiceInterface interface {
	CreateShareSnapshot(buildID uuid.UUID, componentsData json.RawMessage, actorID *uuid.UUID) (*ShareResult, error)
	ResolveSharedView(buildID uuid.UUID, token string) (*SharePayload, error)
	Unshare(buildID uuid.UUID, actorID *uuid.UUID) error
}
