package service_test

import (
	"encoding/json"
	"testing"

	"pc-builder-backend/internal/database/models"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/mocks"
	"pc-builder-backend/internal/repository"
	"pc-builder-backend/internal/service"
	"pc-builder-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PartServiceTestSuite defines the test suite for PartService
type PartServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPartRepo *mocks.MockPartRepositoryInterface
	partService  *service.PartService
	validator    *validator.Validate
	partFactory  *testutils.PartFactory
}

// SetupTest sets up the test suite
func (suite *PartServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPartRepo = mocks.NewMockPartRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.partService = service.NewPartService(suite.mockPartRepo, suite.validator)
	suite.partFactory = testutils.NewPartFactory()
}

// TearDownTest cleans up after each test
func (suite *PartServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestList tests listing parts without filters
func (suite *PartServiceTestSuite) TestList() {
	parts := []models.Part{*suite.partFactory.Create(), *suite.partFactory.WithKind(models.PartKindGpu)}

	suite.mockPartRepo.EXPECT().
		List(gomock.Any()).
		Return(parts, int64(2), nil).
		Times(1)

	response, err := suite.partService.List(&service.PartListQuery{})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Parts, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 50, response.PageSize)
}

// TestListKindAlias tests that kind aliases resolve to the canonical kind
func (suite *PartServiceTestSuite) TestListKindAlias() {
	suite.mockPartRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter repository.PartFilter) ([]models.Part, int64, error) {
			assert.NotNil(suite.T(), filter.Kind)
			assert.Equal(suite.T(), models.PartKindMemory, *filter.Kind)
			return nil, 0, nil
		}).
		Times(1)

	_, err := suite.partService.List(&service.PartListQuery{Kind: "RAM"})

	assert.NoError(suite.T(), err)
}

// TestListInvalidKind tests that an unknown kind is rejected
func (suite *PartServiceTestSuite) TestListInvalidKind() {
	response, err := suite.partService.List(&service.PartListQuery{Kind: "keyboard"})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPartKind)
}

// TestListInvalidPriceRange tests that min above max is rejected
func (suite *PartServiceTestSuite) TestListInvalidPriceRange() {
	min := int64(50000)
	max := int64(10000)

	response, err := suite.partService.List(&service.PartListQuery{MinPrice: &min, MaxPrice: &max})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPriceRange)
}

// TestListInvalidSortKey tests that an unknown sort key is rejected
func (suite *PartServiceTestSuite) TestListInvalidSortKey() {
	response, err := suite.partService.List(&service.PartListQuery{Sort: []string{"wattage_asc"}})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSortKey)
}

// TestListSortKeysForwarded tests that valid sort keys reach the repository in order
func (suite *PartServiceTestSuite) TestListSortKeysForwarded() {
	suite.mockPartRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter repository.PartFilter) ([]models.Part, int64, error) {
			assert.Equal(suite.T(), []repository.PartSort{
				repository.PartSortPriceAsc,
				repository.PartSortBrandDesc,
			}, filter.Sort)
			return nil, 0, nil
		}).
		Times(1)

	_, err := suite.partService.List(&service.PartListQuery{Sort: []string{"price_asc", "brand_desc"}})

	assert.NoError(suite.T(), err)
}

// TestGetByID tests retrieving a part
func (suite *PartServiceTestSuite) TestGetByID() {
	part := suite.partFactory.Create()

	suite.mockPartRepo.EXPECT().GetByID(part.ID).Return(part, nil).Times(1)

	response, err := suite.partService.GetByID(part.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), part.ID, response.ID)
	assert.Equal(suite.T(), part.Brand, response.Brand)
}

// TestGetByIDNotFound tests retrieving a missing part
func (suite *PartServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockPartRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.partService.GetByID(id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPartNotFound)
}

// TestCreatePart tests creating a catalog part
func (suite *PartServiceTestSuite) TestCreatePart() {
	req := &service.CreatePartRequest{
		Kind:       "psu",
		Brand:      "Seasonic",
		Name:       "Focus GX-750",
		PriceCents: 11900,
		Specs:      json.RawMessage(`{"wattage_w":750}`),
	}

	suite.mockPartRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.partService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PartKindPsu, response.Kind)
	assert.Equal(suite.T(), int64(11900), response.PriceCents)
}

// TestCreatePartValidationError tests creating a part with missing fields
func (suite *PartServiceTestSuite) TestCreatePartValidationError() {
	req := &service.CreatePartRequest{Kind: "cpu"}

	response, err := suite.partService.Create(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreatePartInvalidKind tests creating a part with an unknown kind
func (suite *PartServiceTestSuite) TestCreatePartInvalidKind() {
	req := &service.CreatePartRequest{
		Kind:  "keyboard",
		Brand: "Logitech",
		Name:  "G Pro",
	}

	response, err := suite.partService.Create(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPartKind)
}

// TestCreatePartInvalidSpecs tests creating a part with malformed specs JSON
func (suite *PartServiceTestSuite) TestCreatePartInvalidSpecs() {
	req := &service.CreatePartRequest{
		Kind:  "cpu",
		Brand: "AMD",
		Name:  "Ryzen 5 7600",
		Specs: json.RawMessage(`{broken`),
	}

	response, err := suite.partService.Create(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsMalformedInput(err))
}

// TestPartServiceTestSuite runs the test suite
func TestPartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartServiceTestSuite))
}
