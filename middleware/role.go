package middleware

import (
	"net/http"

	"weddinghub/models"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects requests from accounts without the given role. Must run
// after JWTAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || u.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "This operation requires a " + string(role) + " account",
			})
			return
		}
		c.Next()
	}
}

// RequireVendorFeature rejects vendor requests whose subscription tier lacks
// the feature selected by pick.
func RequireVendorFeature(pick func(models.FeatureSet) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.IsVendor() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "This operation requires a vendor account",
			})
			return
		}
		if !pick(models.TierFeatures(u.VendorPackage)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "This feature is not available on your plan",
			})
			return
		}
		c.Next()
	}
}
