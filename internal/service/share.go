package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pc-builder-backend/internal/config"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/logger"
	"pc-builder-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SharePayload is the point-in-time, self-contained representation of a
// build's shareable state. Every field travels on the wire inside the token,
// so a shared view renders without reading the build row.
type SharePayload struct {
	Name         string          `json:"name"`
	Components   json.RawMessage `json:"components"`
	PartsCount   int             `json:"parts_count"`
	TotalCost    int64           `json:"total_cost"`
	TotalWattage int             `json:"total_wattage"`
	CreatedAt    string          `json:"created_at"`
	SharedAt     string          `json:"shared_at"`
	UserName     string          `json:"user_name"`
}

// ShareTokenClaims is the signed wire format of a share token
type ShareTokenClaims struct {
	SharePayload
	jwt.RegisteredClaims
}

// ShareResult is returned from CreateShareSnapshot
type ShareResult struct {
	Token    string       `json:"share_token"`
	ShareURL string       `json:"share_url"`
	Payload  SharePayload `json:"build_data"`
}

// ShareService produces and consumes portable build snapshots. Tokens are
// HMAC-signed (HS256) with a server-held secret; verification is a pure
// function and needs no storage access.
type ShareService struct {
	buildRepo    repository.BuildRepositoryInterface
	secret       []byte
	baseURL      string
	wattageScope config.WattageScope
	now          func() time.Time
	log          *logger.Logger
}

// Ensure ShareService implements ShareServiceInterface
var _ ShareServiceInterface = (*ShareService)(nil)

// NewShareService creates a new ShareService
func NewShareService(buildRepo repository.BuildRepositoryInterface, secret, baseURL string, wattageScope config.WattageScope) *ShareService {
	return &ShareService{
		buildRepo:    buildRepo,
		secret:       []byte(secret),
		baseURL:      baseURL,
		wattageScope: wattageScope,
		now:          time.Now,
		log:          logger.New(),
	}
}

// CreateShareSnapshot captures the build's current aggregate state plus the
// caller-supplied display data into a signed token and share URL. Persisting a
// copy onto the build row is best-effort: its failure never fails the share.
func (s *ShareService) CreateShareSnapshot(buildID uuid.UUID, componentsData json.RawMessage, actorID *uuid.UUID) (*ShareResult, error) {
	build, err := s.buildRepo.GetWithItems(buildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildNotFound
		}
		return nil, fmt.Errorf("failed to get build: %w", err)
	}

	if !CanEdit(build, actorID) {
		if actorID == nil {
			return nil, apperrors.ErrLoginRequired
		}
		return nil, apperrors.ErrNotBuildOwner
	}

	components := componentsData
	if len(components) == 0 {
		components = json.RawMessage(`{}`)
	}
	if !json.Valid(components) {
		return nil, apperrors.ErrInvalidComponentData
	}

	sharedAt := s.now().UTC()
	payload := SharePayload{
		Name:         build.Name,
		Components:   components,
		PartsCount:   len(build.Items),
		TotalCost:    totalCostCents(build.Items),
		TotalWattage: totalWattage(build.Items, s.wattageScope),
		CreatedAt:    build.CreatedAt.UTC().Format(time.RFC3339),
		SharedAt:     sharedAt.Format(time.RFC3339),
		UserName:     build.OwnerName(),
	}

	token, err := s.sign(buildID, payload, sharedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign share token: %w", err)
	}

	// Best-effort cache of the payload for the no-token fallback path.
	data, merr := json.Marshal(payload)
	if merr != nil {
		s.log.WithField("build_id", buildID).Warnf("share payload encoding failed: %v", merr)
	} else if err := s.buildRepo.SetShareState(buildID, token, sharedAt, data); err != nil {
		s.log.WithField("build_id", buildID).Warnf("share state persistence failed: %v", err)
	}

	s.log.WithFields(map[string]interface{}{
		"build_id":    buildID,
		"parts_count": payload.PartsCount,
	}).Info("build shared")

	return &ShareResult{
		Token:    token,
		ShareURL: fmt.Sprintf("%s/builds/%s/shared?token=%s", s.baseURL, buildID, token),
		Payload:  payload,
	}, nil
}

// ResolveSharedView returns the share payload for a build. A valid token is
// authoritative and is decoded without touching the database; otherwise the
// persisted copy keyed by build ID is the fallback. Verification failures are
// recovered locally, never surfaced.
func (s *ShareService) ResolveSharedView(buildID uuid.UUID, token string) (*SharePayload, error) {
	if token != "" {
		if payload, err := s.verify(token); err == nil {
			return payload, nil
		} else {
			s.log.WithField("build_id", buildID).Debugf("share token rejected: %v", err)
		}
	}

	build, err := s.buildRepo.GetByID(buildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSharedViewNotFound
		}
		return nil, fmt.Errorf("failed to get build: %w", err)
	}

	if !build.IsShared() {
		return nil, apperrors.ErrSharedViewNotFound
	}
	var payload SharePayload
	if !build.ParsedSharedData(&payload) {
		return nil, apperrors.ErrSharedViewNotFound
	}
	return &payload, nil
}

// Unshare clears the share token, timestamp and cached payload; owner-gated
func (s *ShareService) Unshare(buildID uuid.UUID, actorID *uuid.UUID) error {
	build, err := s.buildRepo.GetByID(buildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBuildNotFound
		}
		return fmt.Errorf("failed to get build: %w", err)
	}

	if !CanEdit(build, actorID) {
		if actorID == nil {
			return apperrors.ErrLoginRequired
		}
		return apperrors.ErrNotBuildOwner
	}

	if err := s.buildRepo.ClearShareState(buildID); err != nil {
		return fmt.Errorf("failed to clear share state: %w", err)
	}
	s.log.WithField("build_id", buildID).Info("build unshared")
	return nil
}

func (s *ShareService) sign(buildID uuid.UUID, payload SharePayload, sharedAt time.Time) (string, error) {
	claims := ShareTokenClaims{
		SharePayload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  buildID.String(),
			IssuedAt: jwt.NewNumericDate(sharedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *ShareService) verify(tokenString string) (*SharePayload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ShareTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*ShareTokenClaims); ok && token.Valid {
		return &claims.SharePayload, nil
	}
	return nil, fmt.Errorf("invalid token")
}
