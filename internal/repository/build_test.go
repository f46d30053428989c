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

// BuildRepositoryTestSuite tests the BuildRepository
type BuildRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BuildRepository
	buildFactory  *testutils.BuildFactory
	partFactory   *testutils.PartFactory
	userFactory   *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *BuildRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBuildRepository(suite.baseTestSuite.DB)
	suite.buildFactory = testutils.NewBuildFactory()
	suite.partFactory = testutils.NewPartFactory()
	suite.userFactory = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *BuildRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BuildRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BuildRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BuildRepositoryTestSuite) create(v interface{}) {
	suite.NoError(suite.baseTestSuite.DB.Create(v).Error)
}

// TestCreateAndGetByID tests creating a build and reading it back
func (suite *BuildRepositoryTestSuite) TestCreateAndGetByID() {
	build := suite.buildFactory.WithName("Gaming Rig")

	err := suite.repo.Create(build)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(build.ID)
	suite.NoError(err)
	suite.Equal(build.ID, retrieved.ID)
	suite.Equal("Gaming Rig", retrieved.Name)
	suite.Nil(retrieved.UserID)
}

// TestGetByIDNotFound tests retrieving a non-existent build
func (suite *BuildRepositoryTestSuite) TestGetByIDNotFound() {
	build, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(build)
}

// TestGetWithItems tests eager loading of items, parts and the owner
func (suite *BuildRepositoryTestSuite) TestGetWithItems() {
	user := suite.userFactory.Create()
	suite.create(user)

	build := suite.buildFactory.WithOwner(user.ID)
	suite.create(build)

	cpu := suite.partFactory.CPU("AMD", "Ryzen 5 7600", 22900, 65)
	gpu := suite.partFactory.GPU("NVIDIA", "RTX 4070 Super", 59900, 220)
	suite.create(cpu)
	suite.create(gpu)

	itemFactory := testutils.NewBuildItemFactory()
	cpuItem := itemFactory.ForPart(build.ID, cpu)
	cpuItem.CreatedAt = time.Now().Add(-time.Minute)
	gpuItem := itemFactory.ForPart(build.ID, gpu)
	suite.create(cpuItem)
	suite.create(gpuItem)

	retrieved, err := suite.repo.GetWithItems(build.ID)

	suite.NoError(err)
	suite.NotNil(retrieved.User)
	suite.Equal(user.Name, retrieved.User.Name)
	suite.Len(retrieved.Items, 2)
	// Items come back in insertion order with parts attached
	suite.Equal(models.PartKindCpu, retrieved.Items[0].PartKind)
	suite.NotNil(retrieved.Items[0].Part)
	suite.Equal("Ryzen 5 7600", retrieved.Items[0].Part.Name)
	suite.Equal(models.PartKindGpu, retrieved.Items[1].PartKind)
}

// TestGetAll tests newest-first listing with pagination
func (suite *BuildRepositoryTestSuite) TestGetAll() {
	oldest := suite.buildFactory.WithName("Oldest")
	oldest.CreatedAt = time.Now().Add(-2 * time.Hour)
	middle := suite.buildFactory.WithName("Middle")
	middle.CreatedAt = time.Now().Add(-time.Hour)
	newest := suite.buildFactory.WithName("Newest")
	suite.create(oldest)
	suite.create(middle)
	suite.create(newest)

	builds, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(builds, 2)
	suite.Equal("Newest", builds[0].Name)
	suite.Equal("Middle", builds[1].Name)

	builds, total, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(builds, 1)
	suite.Equal("Oldest", builds[0].Name)
}

// TestGetByUserID tests listing only the given user's builds
func (suite *BuildRepositoryTestSuite) TestGetByUserID() {
	owner := suite.userFactory.Create()
	other := suite.userFactory.WithEmail("other@example.com")
	suite.create(owner)
	suite.create(other)

	suite.create(suite.buildFactory.WithOwner(owner.ID))
	suite.create(suite.buildFactory.WithOwner(owner.ID))
	suite.create(suite.buildFactory.WithOwner(other.ID))
	suite.create(suite.buildFactory.Create())

	builds, total, err := suite.repo.GetByUserID(owner.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(builds, 2)
	for _, b := range builds {
		suite.Equal(owner.ID, *b.UserID)
	}
}

// TestDeleteCascadesToItems tests that deleting a build removes its items
func (suite *BuildRepositoryTestSuite) TestDeleteCascadesToItems() {
	build := suite.buildFactory.Create()
	suite.create(build)

	part := suite.partFactory.Create()
	suite.create(part)
	suite.create(testutils.NewBuildItemFactory().ForPart(build.ID, part))

	err := suite.repo.Delete(build.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(build.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var count int64
	suite.baseTestSuite.DB.Model(&models.BuildItem{}).Where("build_id = ?", build.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// TestSetShareState tests the private -> shared transition
func (suite *BuildRepositoryTestSuite) TestSetShareState() {
	build := suite.buildFactory.Create()
	suite.create(build)

	sharedAt := time.Now().UTC().Truncate(time.Second)
	payload := []byte(`{"name":"Test Build","total_cost_cents":0}`)

	err := suite.repo.SetShareState(build.ID, "signed-token", sharedAt, payload)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(build.ID)
	suite.NoError(err)
	suite.True(retrieved.IsShared())
	suite.Equal("signed-token", *retrieved.ShareToken)
	suite.WithinDuration(sharedAt, *retrieved.SharedAt, time.Second)
	suite.JSONEq(string(payload), string(retrieved.SharedData))
}

// TestClearShareState tests reverting a shared build to private
func (suite *BuildRepositoryTestSuite) TestClearShareState() {
	build := suite.buildFactory.Create()
	suite.create(build)
	suite.NoError(suite.repo.SetShareState(build.ID, "signed-token", time.Now(), []byte(`{}`)))

	err := suite.repo.ClearShareState(build.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(build.ID)
	suite.NoError(err)
	suite.False(retrieved.IsShared())
	suite.Nil(retrieved.ShareToken)
	suite.Nil(retrieved.SharedAt)
	suite.Empty(retrieved.SharedData)
}

// Run the test suite
func TestBuildRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BuildRepositoryTestSuite))
}
