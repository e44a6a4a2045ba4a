package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	"github.com/youssefhammani/file-rouge-final/internal/repository"
)

type actorKeyType string

const actorKey actorKeyType = "actor"

// Auth validates a Bearer JWT using the provided HMAC secret, resolves the
// subject to a stored user and attaches the Actor (id + role) to the request
// context. Expiry is enforced by the jwt parser. The role comes from the user
// record, not the token, so role changes take effect immediately.
func Auth(hmacSecret []byte, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				unauthorized(w, "Not authorized to access this route")
				return
			}
			tokenStr := strings.TrimSpace(ah[len("Bearer "):])
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return hmacSecret, nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, "Not authorized to access this route")
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, "Not authorized to access this route")
				return
			}
			sub, _ := claims["sub"].(string)
			uid, err := uuid.Parse(sub)
			if err != nil {
				unauthorized(w, "Not authorized to access this route")
				return
			}

			var u models.User
			if err := users.GetByID(r.Context(), uid, &u); err != nil {
				unauthorized(w, "Not authorized to access this route")
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, models.Actor{ID: u.ID, Role: u.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to the given roles. Must run after Auth.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActor(r.Context())
			if !ok {
				unauthorized(w, "Not authorized to access this route")
				return
			}
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeJSONError(w, http.StatusForbidden, "Role "+string(actor.Role)+" is not authorized to access this route")
		})
	}
}

// GetActor returns the identity attached by Auth.
func GetActor(ctx context.Context) (models.Actor, bool) {
	if v := ctx.Value(actorKey); v != nil {
		if a, ok := v.(models.Actor); ok {
			return a, true
		}
	}
	return models.Actor{}, false
}

// WithActor returns a context carrying the actor. Exposed for handler tests.
func WithActor(ctx context.Context, a models.Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

func unauthorized(w http.ResponseWriter, msg string) {
	writeJSONError(w, http.StatusUnauthorized, msg)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg})
}
