package middleware

import (
	"net/http"
	"strings"

	"salonbook/internal/auth"
	"salonbook/internal/repository"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	authService *auth.Service
	salonRepo   repository.SalonRepository
}

func NewAuthMiddleware(authService *auth.Service, salonRepo repository.SalonRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		salonRepo:   salonRepo,
	}
}

// OwnerRequired validates the Bearer token and loads the salon it was issued
// to into the context under "salon".
func (m *AuthMiddleware) OwnerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			c.Abort()
			return
		}

		salonID, err := m.authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		salon, err := m.salonRepo.GetByID(c.Request.Context(), salonID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "salon not found"})
			c.Abort()
			return
		}

		c.Set("salon", salon)
		c.Next()
	}
}
