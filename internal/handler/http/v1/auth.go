package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/ireporter/internal/models"
	"github.com/shenikar/ireporter/internal/service"
	"github.com/sirupsen/logrus"
)

const currentUserKey = "currentUser"

const (
	msgMissingAuthHeader = "Missing Authorization Header"
	msgBadAuthHeader     = "Bad Authorization header. Expected value 'Bearer <JWT>'"
	msgInvalidToken      = "Invalid or expired token"
)

// bearerToken достает токен из заголовка Authorization: Bearer
func bearerToken(c *gin.Context) (string, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", msgMissingAuthHeader
	}
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", msgBadAuthHeader
	}
	return token, ""
}

// AuthMiddleware - middleware для аутентификации по bearer-токену.
// Пользователь, которому принадлежит токен, кладется в контекст gin.
func AuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, problem := bearerToken(c)
		if problem != "" {
			log.WithField("path", c.FullPath()).Warn(problem)
			c.AbortWithStatusJSON(http.StatusUnauthorized, AuthErrorResponse{Msg: problem})
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.WithError(err).Warn("Invalid access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, AuthErrorResponse{Msg: msgInvalidToken})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRegularUser пропускает только пользователей без прав администратора
func RequireRegularUser(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := currentUser(c); user == nil || user.IsAdmin {
			abortWithError(c, http.StatusUnauthorized, message)
			return
		}
		c.Next()
	}
}

// RequireAdmin пропускает только администраторов
func RequireAdmin(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := currentUser(c); user == nil || !user.IsAdmin {
			abortWithError(c, http.StatusUnauthorized, message)
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
