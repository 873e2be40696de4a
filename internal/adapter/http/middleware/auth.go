package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/domain/workflow"
	"bidtrack/internal/usecase/interfaces"
	"bidtrack/pkg/response"
)

const actorKey = "actor"

// RequireAuth validates the bearer token and resolves the acting user.
//
// The users table is authoritative for role and name; the token claims are a
// fallback for tokens minted before the user document existed. Lookup errors
// fall back to claims too, a read hiccup must not lock everyone out.
func RequireAuth(verifier interfaces.ITokenVerifier, users interfaces.IUserRepository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("UNAUTHORIZED", "Authorization header is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("UNAUTHORIZED", "Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}

		user, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("UNAUTHORIZED", "Invalid token"))
			return
		}

		stored, err := users.GetByUID(c.Request.Context(), user.UID)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("uid", user.UID).Msg("user lookup failed, using token claims")
		case stored.UID != "":
			user = stored
		}

		if !entities.ValidRole(user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error("FORBIDDEN", "Unknown role"))
			return
		}

		SetActor(c, workflow.Actor{UID: user.UID, Name: user.Name, Role: user.Role})
		c.Next()
	}
}

// SetActor stores the resolved actor on the request context.
func SetActor(c *gin.Context, actor workflow.Actor) {
	c.Set(actorKey, actor)
}

// ActorFrom returns the authenticated actor set by RequireAuth. Handlers call
// this only on routes behind the middleware, so the value is always present.
func ActorFrom(c *gin.Context) workflow.Actor {
	v, _ := c.Get(actorKey)
	actor, _ := v.(workflow.Actor)
	return actor
}
