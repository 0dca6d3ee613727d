package middleware

import (
	"context"
	"net/http"
	"strings"

	"ecommerce-api/internal/authz"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware validates JWT tokens and places the verified actor, with
// its role flags, on the request context. It only authenticates; policy
// decisions happen in the services after the target resource is resolved.
func AuthMiddleware(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug("Missing authorization header")
				RespondWithError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Debug("Invalid authorization header format")
				RespondWithError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})

			if err != nil {
				logger.Debug("Token validation failed", zap.Error(err))
				if err == jwt.ErrTokenExpired {
					RespondWithError(w, http.StatusUnauthorized, "token expired")
				} else {
					RespondWithError(w, http.StatusUnauthorized, "invalid token")
				}
				return
			}

			if !token.Valid {
				logger.Debug("Invalid token")
				RespondWithError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				logger.Error("Failed to extract claims from token")
				RespondWithError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			userIDStr, ok := claims["user_id"].(string)
			if !ok {
				logger.Error("Missing user_id in token claims")
				RespondWithError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				logger.Error("Malformed user_id in token claims", zap.Error(err))
				RespondWithError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			actor := authz.Actor{
				ID:         userID,
				IsAdmin:    boolClaim(claims, "is_admin"),
				IsSupplier: boolClaim(claims, "is_supplier"),
				IsCustomer: boolClaim(claims, "is_customer"),
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)

			logger.Debug("User authenticated",
				zap.String("user_id", userID.String()),
				zap.Bool("is_admin", actor.IsAdmin),
				zap.Bool("is_supplier", actor.IsSupplier),
				zap.Bool("is_customer", actor.IsCustomer),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func boolClaim(claims jwt.MapClaims, key string) bool {
	v, ok := claims[key].(bool)
	return ok && v
}

// GetActor extracts the authenticated actor from the request context
func GetActor(ctx context.Context) (authz.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(authz.Actor)
	return actor, ok
}
