package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/pkg/utils"
)

const (
	identityKey = "identity"
	tokenKey    = "access_token"
)

// IdentityResolver turns a bearer token into the session identity.
type IdentityResolver interface {
	CurrentUser(ctx context.Context, token string) (dm.Identity, error)
}

// JWTAuthMiddleware resolves the identity once per request; handlers read
// it with CurrentIdentity.
func JWTAuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.HandleServiceError(c, utils.AuthError("Falta la cabecera de autorización", nil))
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		identity, err := resolver.CurrentUser(c.Request.Context(), tokenString)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Set(tokenKey, tokenString)
		c.Next()
	}
}

// CurrentIdentity is the zero Identity outside authenticated routes.
func CurrentIdentity(c *gin.Context) dm.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(dm.Identity); ok {
			return identity
		}
	}
	return dm.Identity{}
}

func AccessToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
