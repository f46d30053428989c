package auth_test

import (
	"net/http"
	"testing"

	"pc-builder-backend/internal/auth"
	"pc-builder-backend/internal/mocks"
	"pc-builder-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// AuthMiddlewareTestSuite defines the test suite for the auth middleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.AuthService
	middleware   *auth.AuthMiddleware
	httpSuite    *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewAuthService(suite.mockUserRepo, "test-secret", validator.New())
	suite.middleware = auth.NewAuthMiddleware(suite.authService)
	suite.httpSuite = testutils.SetupHTTPTest()

	echoActor := func(c *gin.Context) {
		if id := auth.CurrentUserID(c); id != nil {
			c.JSON(http.StatusOK, gin.H{"actor": id.String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"actor": nil})
	}
	suite.httpSuite.Router.GET("/protected", suite.middleware.RequireAuth(), echoActor)
	suite.httpSuite.Router.GET("/open", suite.middleware.OptionalAuth(), echoActor)
}

// TearDownTest cleans up after each test
func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) sessionToken() (string, uuid.UUID) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	user := testutils.NewUserFactory().Create()
	user.PasswordHash = string(hash)

	suite.mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(1)

	session, err := suite.authService.Login(&auth.LoginRequest{Email: user.Email, Password: "hunter22"})
	assert.NoError(suite.T(), err)
	return session.Token, user.ID
}

// TestRequireAuthWithValidToken tests that a valid bearer token passes
func (suite *AuthMiddlewareTestSuite) TestRequireAuthWithValidToken() {
	token, userID := suite.sessionToken()

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil,
		map[string]string{"Authorization": "Bearer " + token})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), userID.String(), response["actor"])
}

// TestRequireAuthWithoutToken tests that a missing header is rejected
func (suite *AuthMiddlewareTestSuite) TestRequireAuthWithoutToken() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/protected", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authentication required")
}

// TestRequireAuthWithMalformedHeader tests a header without the Bearer prefix
func (suite *AuthMiddlewareTestSuite) TestRequireAuthWithMalformedHeader() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil,
		map[string]string{"Authorization": "token abc"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "")
}

// TestOptionalAuthAnonymous tests that anonymous requests pass through
func (suite *AuthMiddlewareTestSuite) TestOptionalAuthAnonymous() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/open", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Nil(suite.T(), response["actor"])
}

// TestOptionalAuthWithToken tests that a valid token sets the actor
func (suite *AuthMiddlewareTestSuite) TestOptionalAuthWithToken() {
	token, userID := suite.sessionToken()

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/open", nil,
		map[string]string{"Authorization": "Bearer " + token})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), userID.String(), response["actor"])
}

// TestOptionalAuthWithGarbageToken tests that a bad token falls back to anonymous
func (suite *AuthMiddlewareTestSuite) TestOptionalAuthWithGarbageToken() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/open", nil,
		map[string]string{"Authorization": "Bearer garbage"})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Nil(suite.T(), response["actor"])
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
