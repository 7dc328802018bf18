package middleware

import (
	"fmt"
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// Context locals set by the auth middleware
const (
	// LocalUserID is the authenticated user's ID
	LocalUserID = "userID"
	// LocalUserRole is the authenticated user's role
	LocalUserRole = "userRole"
)

// DefaultTokenTTL is how long issued tokens stay valid
const DefaultTokenTTL = 24 * time.Hour

// Claims is the JWT payload carried by issued tokens
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a bearer token for the user
func IssueToken(secret []byte, user *models.User, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Auth returns a middleware that rejects requests without a valid bearer
// token. 401 is the only signal the client's session layer needs; it reacts
// with a session-wide invalidation.
func Auth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c, "missing bearer token")
		}

		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			return unauthorized(c, "invalid or expired token")
		}

		var userID uint
		if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil {
			return unauthorized(c, "invalid token subject")
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserRole, claims.Role)
		return c.Next()
	}
}

// RequireAdmin returns a middleware that limits a route to administrators
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRole).(string)
		if role != models.UserRoleAdmin.String() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "administrator access required",
			})
		}
		return c.Next()
	}
}

// UserID returns the authenticated user's ID from the request context
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalUserID).(uint)
	return id
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
