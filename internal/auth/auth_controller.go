package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JMaldonado-17/powerfed/config"
	"github.com/JMaldonado-17/powerfed/internal/middleware"
	"github.com/JMaldonado-17/powerfed/internal/user"
	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"github.com/JMaldonado-17/powerfed/pkg/responses"
	"github.com/JMaldonado-17/powerfed/pkg/token"
	"github.com/JMaldonado-17/powerfed/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(userID uint, role string) (string, string, error) {
	accessToken, err := token.GenerateJWT(userID, role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString := utils.GenerateRandomToken(64)
	if refreshTokenString == "" {
		return "", "", fmt.Errorf("refresh token generation failed")
	}

	refreshToken := &user.RefreshToken{
		UserID:    userID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// @Summary      Register a new team account
// @Description  Create a new team-manager account with name, email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Account registration details"
// @Success      201   {object} AuthResponse "Account registered successfully, returns tokens and user info"
// @Failure      400   {object} responses.ErrorResponse "Validation error or invalid input"
// @Failure      409   {object} responses.ErrorResponse "Account with this email already exists"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if _, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email)); err == nil {
		responses.Conflict(c, "Account with this email already exists")
		return
	} else if !apperrors.IsNotFound(err) {
		responses.FromError(c, err)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Error hashing password")
		return
	}

	newUser := &user.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: hashedPassword,
		Role:     user.RoleTeam,
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		responses.FromError(c, err)
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(newUser.ID, newUser.Role)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Account registered successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(newUser),
	})
}

// @Summary      Login
// @Description  Authenticate with email and password, returns access and refresh tokens.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} AuthResponse
// @Failure      400  {object} responses.ErrorResponse
// @Failure      401  {object} responses.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	u, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		// Same message for unknown email and bad password.
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u.ID, u.Role)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	})
}

// @Summary      Refresh access token
// @Description  Exchange a valid refresh token for a new token pair. The used refresh token is rotated.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body  RefreshTokenRequest  true  "Refresh token"
// @Success      200  {object} AuthResponse
// @Failure      401  {object} responses.ErrorResponse
// @Router       /auth/refresh [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	u, err := ac.repo.GetUserByID(stored.UserID)
	if err != nil {
		responses.Unauthorized(c, "User no longer exists")
		return
	}

	// Rotate: the presented token is single-use.
	if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
		responses.FromError(c, err)
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u.ID, u.Role)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Token refreshed", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	})
}

// @Summary      Logout
// @Description  Invalidate the presented refresh token, or all sessions for the user.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  LogoutRequest  true  "Logout options"
// @Success      200  {object} responses.SuccessResponse
// @Failure      401  {object} responses.ErrorResponse
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BindingError(c, err)
		return
	}

	if req.InvalidateAllSessions {
		if err := ac.repo.InvalidateAllRefreshTokensForUser(userID); err != nil {
			responses.FromError(c, err)
			return
		}
	} else if req.RefreshToken != "" {
		if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
			responses.FromError(c, err)
			return
		}
	}

	responses.SendSuccess(c, http.StatusOK, "Logged out", nil)
}

// @Summary      Current account
// @Description  Returns the authenticated account.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} UserResponse
// @Failure      401  {object} responses.ErrorResponse
// @Router       /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", FilterUserRecord(u))
}
