package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultMockUserID is the fixed identity attached to every request when no
// other resolver is configured. The seed step guarantees a matching user row.
const DefaultMockUserID = "11111111-1111-4111-8111-111111111111"

var secretKey string

func SetSecretKey(key string) {
	secretKey = key
}

func GetSecretKey() string {
	return secretKey
}

// IdentityResolver extracts the caller's user id from a request. It is the
// single seam between the deployed mock identity and real token verification.
type IdentityResolver func(ctx *gin.Context) (string, bool)

var resolver IdentityResolver = MockIdentity(DefaultMockUserID)

func SetIdentityResolver(r IdentityResolver) {
	resolver = r
}

// Protect annotates the request with the resolved user id under "userId".
// Route handlers read it back with ctx.GetString("userId").
func Protect() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId, ok := resolver(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authenticated"})
			ctx.Abort()
			return
		}
		ctx.Set("userId", userId)
		ctx.Next()
	}
}

// MockIdentity attaches a fixed user id to every request without checking any
// credential. This is the deployed behavior; swap in BearerIdentity to verify
// real tokens instead.
func MockIdentity(userId string) IdentityResolver {
	return func(ctx *gin.Context) (string, bool) {
		return userId, true
	}
}

// BearerIdentity verifies an HS256 bearer token and resolves the "id" claim.
func BearerIdentity(secret string) IdentityResolver {
	return func(ctx *gin.Context) (string, bool) {
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader == "" {
			return "", false
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", false
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return "", false
		}

		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().Unix() > int64(exp) {
				return "", false
			}
		}

		id, ok := claims["id"].(string)
		if !ok || id == "" {
			return "", false
		}
		return id, true
	}
}
