// Package auth provides JWT issuance and password hashing for salon accounts.
package auth

import (
	"errors"
	"time"

	"salonbook/internal/config"
	"salonbook/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidToken indicates the token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired indicates the token has expired
	ErrTokenExpired = errors.New("token expired")
)

// Service provides authentication functionality
type Service struct {
	config *config.Config
}

// NewService creates a new authentication service
func NewService(config *config.Config) *Service {
	return &Service{config: config}
}

// GenerateToken generates a new JWT token for a salon account
func (s *Service) GenerateToken(salon *models.Salon) (string, error) {
	expiration := time.Duration(s.config.Auth.JWTExpiration) * time.Hour

	claims := jwt.MapClaims{
		"salon_id": salon.ID.String(),
		"email":    salon.Email,
		"exp":      time.Now().Add(expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}

// ValidateToken validates a JWT token and returns the salon ID it was issued to
func (s *Service) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	raw, ok := claims["salon_id"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	salonID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return salonID, nil
}

// HashPassword hashes a password using bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// ComparePasswords compares a hashed password with a plain text password
func (s *Service) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GetSalonFromContext retrieves the authenticated salon from the gin context
func GetSalonFromContext(c *gin.Context) *models.Salon {
	salon, exists := c.Get("salon")
	if !exists {
		return nil
	}
	if s, ok := salon.(*models.Salon); ok {
		return s
	}
	return nil
}
