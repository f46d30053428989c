package testutils

import (
	"encoding/json"
	"time"

	"pc-builder-backend/internal/database/models"

	"github.com/google/uuid"
)

// PartFactory provides methods to create test Part data
type PartFactory struct{}

// NewPartFactory creates a new PartFactory
func NewPartFactory() *PartFactory {
	return &PartFactory{}
}

// Create creates a test Part with default values
func (f *PartFactory) Create() *models.Part {
	return &models.Part{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Kind:       models.PartKindCpu,
		Brand:      "AMD",
		Name:       "Ryzen 7 7800X3D",
		PriceCents: 44900,
		Wattage:    120,
		Specs:      json.RawMessage(`{"cores":8,"threads":16,"socket":"AM5"}`),
	}
}

// WithKind sets a custom kind for the part
func (f *PartFactory) WithKind(kind models.PartKind) *models.Part {
	part := f.Create()
	part.Kind = kind
	return part
}

// WithPrice sets a custom price and wattage for the part
func (f *PartFactory) WithPrice(priceCents int64, wattage int) *models.Part {
	part := f.Create()
	part.PriceCents = priceCents
	part.Wattage = wattage
	return part
}

// CPU creates a CPU part with the given identity and ratings
func (f *PartFactory) CPU(brand, name string, priceCents int64, wattage int) *models.Part {
	part := f.Create()
	part.Kind = models.PartKindCpu
	part.Brand = brand
	part.Name = name
	part.PriceCents = priceCents
	part.Wattage = wattage
	return part
}

// GPU creates a GPU part with the given identity and ratings
func (f *PartFactory) GPU(brand, name string, priceCents int64, wattage int) *models.Part {
	part := f.Create()
	part.Kind = models.PartKindGpu
	part.Brand = brand
	part.Name = name
	part.PriceCents = priceCents
	part.Wattage = wattage
	part.Specs = json.RawMessage(`{"vram_gb":12}`)
	return part
}

// BuildFactory provides methods to create test Build data
type BuildFactory struct{}

// NewBuildFactory creates a new BuildFactory
func NewBuildFactory() *BuildFactory {
	return &BuildFactory{}
}

// Create creates an anonymous test Build with default values
func (f *BuildFactory) Create() *models.Build {
	return &models.Build{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Build",
	}
}

// WithName sets a custom name for the build
func (f *BuildFactory) WithName(name string) *models.Build {
	build := f.Create()
	build.Name = name
	return build
}

// WithOwner stamps the build with an owner
func (f *BuildFactory) WithOwner(userID uuid.UUID) *models.Build {
	build := f.Create()
	build.UserID = &userID
	return build
}

// WithItems attaches items to the build
func (f *BuildFactory) WithItems(items ...models.BuildItem) *models.Build {
	build := f.Create()
	for i := range items {
		items[i].BuildID = build.ID
	}
	build.Items = items
	return build
}

// BuildItemFactory provides methods to create test BuildItem data
type BuildItemFactory struct{}

// NewBuildItemFactory creates a new BuildItemFactory
func NewBuildItemFactory() *BuildItemFactory {
	return &BuildItemFactory{}
}

// ForPart creates a build item occupying the slot for the given part
func (f *BuildItemFactory) ForPart(buildID uuid.UUID, part *models.Part) *models.BuildItem {
	return &models.BuildItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BuildID:  buildID,
		PartID:   part.ID,
		PartKind: part.Kind,
		Part:     part,
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test User",
		Email:        "test.user@example.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}
