package repository

import (
	"testing"
	"time"

	"pc-builder-backend/internal/database/models"
	"pc-builder-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BuildItemRepositoryTestSuite tests the BuildItemRepository
type BuildItemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BuildItemRepository
	buildFactory  *testutils.BuildFactory
	partFactory   *testutils.PartFactory
}

// SetupSuite runs before all tests in the suite
func (suite *BuildItemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBuildItemRepository(suite.baseTestSuite.DB)
	suite.buildFactory = testutils.NewBuildFactory()
	suite.partFactory = testutils.NewPartFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *BuildItemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BuildItemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BuildItemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BuildItemRepositoryTestSuite) create(v interface{}) {
	suite.NoError(suite.baseTestSuite.DB.Create(v).Error)
}

func (suite *BuildItemRepositoryTestSuite) newBuild() *models.Build {
	build := suite.buildFactory.Create()
	suite.create(build)
	return build
}

func (suite *BuildItemRepositoryTestSuite) newPart(part *models.Part) *models.Part {
	suite.create(part)
	return part
}

// TestAddPartToEmptySlot tests the add branch of the slot semantics
func (suite *BuildItemRepositoryTestSuite) TestAddPartToEmptySlot() {
	build := suite.newBuild()
	cpu := suite.newPart(suite.partFactory.Create())

	item, replaced, err := suite.repo.AddOrReplacePart(build.ID, cpu)

	suite.NoError(err)
	suite.Nil(replaced)
	suite.NotNil(item)
	suite.Equal(build.ID, item.BuildID)
	suite.Equal(cpu.ID, item.PartID)
	suite.Equal(models.PartKindCpu, item.PartKind)

	count, err := suite.repo.CountByBuild(build.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestReplacePartInOccupiedSlot tests that a second part of the same kind
// displaces the first while keeping the item row
func (suite *BuildItemRepositoryTestSuite) TestReplacePartInOccupiedSlot() {
	build := suite.newBuild()
	oldCpu := suite.newPart(suite.partFactory.CPU("AMD", "Ryzen 5 7600", 22900, 65))
	newCpu := suite.newPart(suite.partFactory.CPU("Intel", "Core i5-14600K", 31900, 125))

	first, replaced, err := suite.repo.AddOrReplacePart(build.ID, oldCpu)
	suite.NoError(err)
	suite.Nil(replaced)

	second, replaced, err := suite.repo.AddOrReplacePart(build.ID, newCpu)

	suite.NoError(err)
	suite.NotNil(replaced)
	suite.Equal(oldCpu.ID, replaced.ID)
	suite.Equal("Ryzen 5 7600", replaced.Name)
	// The slot row is reused, not recreated
	suite.Equal(first.ID, second.ID)
	suite.Equal(newCpu.ID, second.PartID)

	count, err := suite.repo.CountByBuild(build.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestAddPartsOfDifferentKinds tests that different kinds occupy distinct slots
func (suite *BuildItemRepositoryTestSuite) TestAddPartsOfDifferentKinds() {
	build := suite.newBuild()
	cpu := suite.newPart(suite.partFactory.Create())
	gpu := suite.newPart(suite.partFactory.GPU("NVIDIA", "RTX 4070 Super", 59900, 220))

	_, _, err := suite.repo.AddOrReplacePart(build.ID, cpu)
	suite.NoError(err)
	_, _, err = suite.repo.AddOrReplacePart(build.ID, gpu)
	suite.NoError(err)

	items, err := suite.repo.GetByBuild(build.ID)
	suite.NoError(err)
	suite.Len(items, 2)
}

// TestSlotUniqueIndex tests that the database enforces one item per kind
func (suite *BuildItemRepositoryTestSuite) TestSlotUniqueIndex() {
	build := suite.newBuild()
	cpu := suite.newPart(suite.partFactory.Create())

	_, _, err := suite.repo.AddOrReplacePart(build.ID, cpu)
	suite.NoError(err)

	// A raw insert bypassing the repository must hit the unique index
	dup := &models.BuildItem{
		BaseModel: models.BaseModel{ID: uuid.New()},
		BuildID:   build.ID,
		PartID:    cpu.ID,
		PartKind:  cpu.Kind,
	}
	err = suite.baseTestSuite.DB.Create(dup).Error
	suite.Error(err)
	suite.True(isUniqueViolation(err))
}

// TestGetByBuildOrdering tests that items come back in insertion order with parts
func (suite *BuildItemRepositoryTestSuite) TestGetByBuildOrdering() {
	build := suite.newBuild()
	cpu := suite.newPart(suite.partFactory.Create())
	gpu := suite.newPart(suite.partFactory.GPU("NVIDIA", "RTX 4070 Super", 59900, 220))

	itemFactory := testutils.NewBuildItemFactory()
	cpuItem := itemFactory.ForPart(build.ID, cpu)
	cpuItem.CreatedAt = time.Now().Add(-time.Minute)
	gpuItem := itemFactory.ForPart(build.ID, gpu)
	suite.create(cpuItem)
	suite.create(gpuItem)

	items, err := suite.repo.GetByBuild(build.ID)

	suite.NoError(err)
	suite.Len(items, 2)
	suite.Equal(models.PartKindCpu, items[0].PartKind)
	suite.Equal(models.PartKindGpu, items[1].PartKind)
	suite.NotNil(items[0].Part)
	suite.NotNil(items[1].Part)
}

// TestGetByID tests loading a single item with its part
func (suite *BuildItemRepositoryTestSuite) TestGetByID() {
	build := suite.newBuild()
	cpu := suite.newPart(suite.partFactory.Create())
	item, _, err := suite.repo.AddOrReplacePart(build.ID, cpu)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(item.ID)

	suite.NoError(err)
	suite.Equal(item.ID, retrieved.ID)
	suite.NotNil(retrieved.Part)
	suite.Equal(cpu.ID, retrieved.Part.ID)
}

// TestDeleteScoped tests removing an item within its own build
func (suite *BuildItemRepositoryTestSuite) TestDeleteScoped() {
	build := suite.newBuild()
	cpu := suite.newPart(suite.partFactory.Create())
	item, _, err := suite.repo.AddOrReplacePart(build.ID, cpu)
	suite.NoError(err)

	deleted, err := suite.repo.DeleteScoped(build.ID, item.ID)

	suite.NoError(err)
	suite.NotNil(deleted)
	suite.Equal(item.ID, deleted.ID)
	suite.NotNil(deleted.Part)

	count, err := suite.repo.CountByBuild(build.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestDeleteScopedCrossBuild tests that an item cannot be deleted through
// another build's ID
func (suite *BuildItemRepositoryTestSuite) TestDeleteScopedCrossBuild() {
	build := suite.newBuild()
	otherBuild := suite.newBuild()
	cpu := suite.newPart(suite.partFactory.Create())
	item, _, err := suite.repo.AddOrReplacePart(build.ID, cpu)
	suite.NoError(err)

	deleted, err := suite.repo.DeleteScoped(otherBuild.ID, item.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(deleted)

	// The item survives in its own build
	count, err := suite.repo.CountByBuild(build.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// Run the test suite
func TestBuildItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BuildItemRepositoryTestSuite))
}
