package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/ireporter/internal/models"
	"github.com/shenikar/ireporter/internal/service"
)

const (
	msgUserCreated      = "Create user record"
	msgWrongCredentials = "Wrong credentials"
	msgTokenRefreshed   = "Access token refreshed"
	msgOnlyAdminUsers   = "Only administrators can list users"
)

// @Summary Register a new user
// @Description Create a user account and return an access/refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration request"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), DTOToRegisterInput(input))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserAlreadyExists):
			log.WithError(err).Warn("Username already taken")
			abortWithError(c, http.StatusConflict, fmt.Sprintf("username %s already exists", service.NormalizeUsername(input.Username)))
		case errors.Is(err, service.ErrValidation):
			log.WithError(err).Warn("Validation failed")
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			log.WithError(err).Error("Failed to register user in service")
			abortWithError(c, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Status: http.StatusCreated,
		Data: []RegisteredUser{{
			ID:           result.User.ID,
			Message:      msgUserCreated,
			AccessToken:  result.Tokens.AccessToken,
			RefreshToken: result.Tokens.RefreshToken,
		}},
	})
}

// @Summary Log in
// @Description Verify credentials and return a fresh access/refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Username and password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or unknown user"
// @Failure 401 {object} ErrorResponse "Wrong credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			log.WithError(err).Warn("Login for unknown user")
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("user %s doesn't exist", service.NormalizeUsername(input.Username)))
		case errors.Is(err, service.ErrInvalidCredentials):
			abortWithError(c, http.StatusUnauthorized, msgWrongCredentials)
		default:
			log.WithError(err).Error("Failed to log in user in service")
			abortWithError(c, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Message:      fmt.Sprintf("Logged in as %s", result.User.Username),
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	})
}

// @Summary Refresh access token
// @Description Exchange a refresh token (sent as the bearer token) for a new access token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TokenResponse
// @Failure 401 {object} AuthErrorResponse "Missing or invalid refresh token"
// @Router /auth/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	log := h.logger.WithField("method", "refresh")

	token, problem := bearerToken(c)
	if problem != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, AuthErrorResponse{Msg: problem})
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			log.WithError(err).Warn("Invalid refresh token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, AuthErrorResponse{Msg: msgInvalidToken})
			return
		}
		log.WithError(err).Error("Failed to refresh token in service")
		abortWithError(c, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Message:      msgTokenRefreshed,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	})
}

// @Summary List users
// @Description List every registered user. Administrators only.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UsersResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list users in service")
		abortWithError(c, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	c.JSON(http.StatusOK, UsersResponse{Status: http.StatusOK, Data: ModelsToUserResponses(users)})
}
