package middleware

import (
	"net/http"
	"strings"
	"time"

	"fleet-compliance-api/config"
	"fleet-compliance-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Username string `json:"sub"`
	jwt.RegisteredClaims
}

// Auth is the access-control gate. Three capability levels, strictly
// ordered: anonymous (register, login) < authenticated (reads, search,
// analytics, document upload) < administrator (mutations, export).
type Auth struct {
	cfg *config.Config
}

func NewAuth(cfg *config.Config) *Auth {
	return &Auth{cfg: cfg}
}

// GenerateToken issues a signed JWT for a given user
func (a *Auth) GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.cfg.JWTSecret)
}

// AuthRequired validates the JWT, loads the account fresh from the store and
// injects it into the context. Fails closed: 401 when no credential or an
// invalid/expired one is presented, 400 when the account is inactive.
func (a *Auth) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return a.cfg.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.Where("username = ?", claims.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			c.Abort()
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
			c.Abort()
			return
		}
		c.Set("user", &user)
		c.Next()
	}
}

// AdminRequired enforces the administrator flag. Must run after AuthRequired.
func (a *Auth) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not an administrator"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated account from the context
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get("user")
	if !exists {
		return nil
	}
	return val.(*models.User)
}
