package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	portssvc "github.com/sirisha-padi/EagleBank/internal/core/ports/services"
	"github.com/sirisha-padi/EagleBank/internal/core/services"
	"github.com/sirisha-padi/EagleBank/internal/utils"
)

const testJWTSecret = "test-secret-0123456789"

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvc
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewAuthService(suite.mockUserRepo, services.AuthConfig{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "eagle-bank",
	})
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "correct horse battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{UserID: "usr-1", Email: "ada@example.com", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, userID, err := suite.service.Login(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal("usr-1", userID)
	suite.Require().NotEmpty(token)

	// The issued token must verify against the signing secret and carry the
	// user ID as its subject.
	claims, err := utils.ParseAndValidateJWT(token, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal("usr-1", claims.Subject)
	suite.Equal("eagle-bank", claims.Issuer)
	suite.True(claims.ExpiresAt.After(time.Now()))
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	token, userID, err := suite.service.Login(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Empty(userID)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)

	user := &domain.User{UserID: "usr-1", Email: "ada@example.com", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, userID, err := suite.service.Login(ctx, user.Email, "a wrong guess")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Empty(userID)
	// Wrong password and unknown email are indistinguishable to the caller.
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_TokenNotValidWithOtherSecret() {
	ctx := context.Background()
	password := "correct horse battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{UserID: "usr-1", Email: "ada@example.com", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, _, err := suite.service.Login(ctx, user.Email, password)
	suite.Require().NoError(err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	suite.Require().Error(err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
