package middleware

import (
	"net/http"
	"strings"

	"github.com/decluttit/trade-service/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

// ActorAuth validates the session token issued by the auth collaborator
// and exposes a typed ActorContext to handlers. Token issuance itself
// lives outside this service.
func ActorAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		userID, _ := claims["sub"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing subject"})
			return
		}

		actor := domain.ActorContext{
			UserID: userID,
			Role:   domain.RoleUser,
		}
		if level, ok := claims["verification_level"].(string); ok {
			actor.VerificationLevel = domain.VerificationLevel(level)
		}
		if role, ok := claims["role"].(string); ok && role == string(domain.RoleArbitrator) {
			actor.Role = domain.RoleArbitrator
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// Actor returns the ActorContext stored by ActorAuth.
func Actor(c *gin.Context) domain.ActorContext {
	value, exists := c.Get(actorKey)
	if !exists {
		return domain.ActorContext{}
	}
	actor, _ := value.(domain.ActorContext)
	return actor
}
