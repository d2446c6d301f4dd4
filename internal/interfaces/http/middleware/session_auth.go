package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"cardwallet.backend/internal/domain/entities"
	"cardwallet.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer session ids
	BearerPrefix = "Bearer "
	// EntityIDKey is the context key for the acting entity id
	EntityIDKey = "entityId"
	// EntityTypeKey is the context key for the acting entity type
	EntityTypeKey = "entityType"
	// ClientIDKey is the context key for the entity's client id
	ClientIDKey = "clientId"
	// StoreIDKey is the context key for the entity's store id
	StoreIDKey = "storeId"
)

// SessionAuthMiddleware resolves the bearer session id against the redis
// session store and plants the acting identity in the gin context. Each
// authenticated request slides the session TTL forward.
func SessionAuthMiddleware(sessions *redis.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "session_invalid",
				"message": "Authorization header is required",
			})
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "session_invalid",
				"message": "Invalid authorization format. Use: Bearer <session id>",
			})
			return
		}

		sessionID := strings.TrimPrefix(authHeader, BearerPrefix)
		data, err := sessions.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "session_invalid",
				"message": "Session expired or unknown",
			})
			return
		}

		_ = sessions.ExtendSession(c.Request.Context(), sessionID)

		c.Set(EntityIDKey, data.EntityID)
		c.Set(EntityTypeKey, data.EntityType)
		c.Set(ClientIDKey, data.ClientID)
		c.Set(StoreIDKey, data.StoreID)

		c.Next()
	}
}

// GetEntityID gets the acting entity id from context
func GetEntityID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(EntityIDKey)
	if !exists {
		return 0, false
	}
	return v.(int64), true
}

// GetEntityType gets the acting entity type from context
func GetEntityType(c *gin.Context) (string, bool) {
	v, exists := c.Get(EntityTypeKey)
	if !exists {
		return "", false
	}
	return v.(string), true
}

// GetClientID gets the entity's client id from context
func GetClientID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ClientIDKey)
	if !exists {
		return 0, false
	}
	return v.(int64), true
}

// GetStoreID gets the entity's store id from context
func GetStoreID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(StoreIDKey)
	if !exists {
		return 0, false
	}
	return v.(int64), true
}

// RequireEntityType restricts a route to the given entity types.
func RequireEntityType(types ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entityType, ok := GetEntityType(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "session_invalid",
				"message": "Not authenticated",
			})
			return
		}

		for _, t := range types {
			if entityType == t {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    "forbidden",
			"message": "Insufficient permissions",
		})
	}
}

// RequireAdmin restricts a route to the admin entity types.
func RequireAdmin() gin.HandlerFunc {
	return RequireEntityType(entities.EntityTypeSuperAdmin, entities.EntityTypeCompanyAdmin, entities.EntityTypeStoreAdmin)
}
