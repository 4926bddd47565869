package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	userRepo "weddinghub/database/repository/user"
	"weddinghub/models"
	"weddinghub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextUserKey is the gin context key holding the authenticated *models.User.
const ContextUserKey = "authUser"

// authCacheTTL bounds how long a cached auth record serves requests before
// the database is consulted again.
const authCacheTTL = 5 * time.Minute

// cachedAuth is the subset of the account stored in the auth cache.
type cachedAuth struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      models.Role        `json:"role"`
	Tier      models.PackageTier `json:"tier,omitempty"`
	TokenHash string             `json:"tokenHash"`
}

// JWTAuthMiddleware validates the bearer token, checks its hash against the
// stored session, and puts the account on the context. A Redis cache fronts
// the account lookup; misses and revocations fall through to the database.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			return
		}
		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)

		if u := lookupCached(userID, tokenHash); u != nil {
			c.Set(ContextUserKey, u)
			c.Next()
			return
		}

		u, err := users.GetByID(userID)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Account not found"})
			return
		}
		if u.TokenHash == "" || u.TokenHash != tokenHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session revoked, sign in again"})
			return
		}

		storeCached(u)
		c.Set(ContextUserKey, u)
		c.Next()
	}
}

// lookupCached returns the cached account when present and the token hash
// still matches. Cache errors are treated as misses.
func lookupCached(userID, tokenHash string) *models.User {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	raw, err := utils.GetAuthCacheClient().Get(ctx, utils.AuthCachePrefix+userID).Result()
	if err != nil {
		return nil
	}
	var ca cachedAuth
	if err := json.Unmarshal([]byte(raw), &ca); err != nil {
		return nil
	}
	if ca.TokenHash != tokenHash {
		return nil
	}
	return &models.User{
		ID: ca.ID, Name: ca.Name, Email: ca.Email,
		Role: ca.Role, VendorPackage: ca.Tier, TokenHash: ca.TokenHash,
	}
}

func storeCached(u *models.User) {
	raw, err := json.Marshal(cachedAuth{
		ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Tier: u.VendorPackage, TokenHash: u.TokenHash,
	})
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+u.ID, raw, authCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth record", zap.String("userId", u.ID), zap.Error(err))
	}
}

// CurrentUser pulls the authenticated account off the context. Handlers
// behind JWTAuthMiddleware can assume it is present.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUserKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
