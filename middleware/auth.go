package middleware

import (
	"context"
	"net/http"
	"strings"

	"catdogeats/client"
	"catdogeats/models"
	"catdogeats/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// ClaimsFrom returns the authenticated user's claims
func ClaimsFrom(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

// AuthMiddleware verifies bearer tokens, attaches the claims to the context and
// forwards the token to backend calls made with that context
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.")
				return
			}

			claims, err := utils.ParseJWT(secret, parts[1])
			if err != nil {
				utils.WriteError(w, http.StatusUnauthorized, "로그인이 만료되었습니다. 다시 로그인해주세요.")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			ctx = client.WithToken(ctx, parts[1])
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SellerMiddleware ensures that the user is a seller (or an admin)
func SellerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok || (claims.Role != models.RoleSeller && claims.Role != models.RoleAdmin) {
			utils.WriteError(w, http.StatusForbidden, "판매자만 이용할 수 있습니다.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
