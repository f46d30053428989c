package handlers

import (
	"net/http"
	"testing"

	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/mocks"
	"pc-builder-backend/internal/service"
	"pc-builder-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ShareHandlerTestSuite defines the test suite for ShareHandler
type ShareHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockShareService *mocks.MockShareServiceInterface
	handler          *ShareHandler
	httpSuite        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ShareHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShareService = mocks.NewMockShareServiceInterface(suite.ctrl)

	suite.handler = NewShareHandler(suite.mockShareService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	builds := v1.Group("/builds")
	{
		builds.POST("/:id/share", suite.handler.ShareBuild)
		builds.DELETE("/:id/share", suite.handler.UnshareBuild)
		builds.GET("/:id/shared", suite.handler.GetSharedBuild)
	}
}

// TearDownTest cleans up after each test
func (suite *ShareHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestShareBuild tests creating a share snapshot
func (suite *ShareHandlerTestSuite) TestShareBuild() {
	buildID := uuid.New()

	suite.mockShareService.EXPECT().
		CreateShareSnapshot(buildID, gomock.Any(), gomock.Nil()).
		Return(&service.ShareResult{
			Token:    "signed-token",
			ShareURL: "http://localhost:8080/builds/" + buildID.String() + "/shared?token=signed-token",
			Payload:  service.SharePayload{Name: "Gaming Rig", PartsCount: 2},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/api/v1/builds/"+buildID.String()+"/share",
		map[string]interface{}{"components": map[string]interface{}{"cpu": map[string]interface{}{"name": "Ryzen"}}})

	var response service.ShareResult
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "signed-token", response.Token)
	assert.Contains(suite.T(), response.ShareURL, "/shared?token=")
}

// TestShareBuildWithoutBody tests sharing with no request body
func (suite *ShareHandlerTestSuite) TestShareBuildWithoutBody() {
	buildID := uuid.New()

	suite.mockShareService.EXPECT().
		CreateShareSnapshot(buildID, gomock.Nil(), gomock.Nil()).
		Return(&service.ShareResult{Token: "signed-token"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/api/v1/builds/"+buildID.String()+"/share", nil)

	var response service.ShareResult
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
}

// TestShareBuildNotFound tests sharing a missing build
func (suite *ShareHandlerTestSuite) TestShareBuildNotFound() {
	buildID := uuid.New()

	suite.mockShareService.EXPECT().
		CreateShareSnapshot(buildID, gomock.Any(), gomock.Nil()).
		Return(nil, apperrors.ErrBuildNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/api/v1/builds/"+buildID.String()+"/share", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

// TestShareBuildForbidden tests that a non-owner share surfaces 403
func (suite *ShareHandlerTestSuite) TestShareBuildForbidden() {
	buildID := uuid.New()

	suite.mockShareService.EXPECT().
		CreateShareSnapshot(buildID, gomock.Any(), gomock.Nil()).
		Return(nil, apperrors.ErrNotBuildOwner).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/api/v1/builds/"+buildID.String()+"/share", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "")
}

// TestShareBuildInvalidComponents tests that unusable component data surfaces 400
func (suite *ShareHandlerTestSuite) TestShareBuildInvalidComponents() {
	buildID := uuid.New()

	suite.mockShareService.EXPECT().
		CreateShareSnapshot(buildID, gomock.Any(), gomock.Nil()).
		Return(nil, apperrors.ErrInvalidComponentData).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/api/v1/builds/"+buildID.String()+"/share",
		map[string]interface{}{"components": "not-an-object"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid component data")
}

// TestGetSharedBuild tests resolving a shared view by token
func (suite *ShareHandlerTestSuite) TestGetSharedBuild() {
	buildID := uuid.New()

	suite.mockShareService.EXPECT().
		ResolveSharedView(buildID, "signed-token").
		Return(&service.SharePayload{Name: "Gaming Rig", PartsCount: 2, UserName: "Anonymous"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/builds/"+buildID.String()+"/shared?token=signed-token", nil)

	var response service.SharePayload
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Gaming Rig", response.Name)
	assert.Equal(suite.T(), 2, response.PartsCount)
}

// TestGetSharedBuildNotFound tests resolving a build with no shared view
func (suite *ShareHandlerTestSuite) TestGetSharedBuildNotFound() {
	buildID := uuid.New()

	suite.mockShareService.EXPECT().
		ResolveSharedView(buildID, "").
		Return(nil, apperrors.ErrSharedViewNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/builds/"+buildID.String()+"/shared", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

// TestUnshareBuild tests clearing the share state
func (suite *ShareHandlerTestSuite) TestUnshareBuild() {
	buildID := uuid.New()

	suite.mockShareService.EXPECT().Unshare(buildID, gomock.Nil()).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete,
		"/api/v1/builds/"+buildID.String()+"/share", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestUnshareBuildUnauthorized tests unsharing an owned build anonymously
func (suite *ShareHandlerTestSuite) TestUnshareBuildUnauthorized() {
	buildID := uuid.New()

	suite.mockShareService.EXPECT().
		Unshare(buildID, gomock.Nil()).
		Return(apperrors.ErrLoginRequired).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete,
		"/api/v1/builds/"+buildID.String()+"/share", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "")
}

// TestShareHandlerTestSuite runs the test suite
func TestShareHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShareHandlerTestSuite))
}
