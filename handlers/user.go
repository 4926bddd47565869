package handlers

import (
	"net/http"

	"weddinghub/middleware"
	"weddinghub/models"
	userSvc "weddinghub/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the account, vendor catalog, and planning endpoints.
type UserHandler struct {
	Svc userSvc.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userSvc.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// Signup handles POST /user/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var in userSvc.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.Svc.RegisterUser(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "auth": resp})
}

// Signin handles POST /user/signin.
func (h *UserHandler) Signin(c *gin.Context) {
	var in userSvc.SigninInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.Svc.SignIn(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "auth": resp})
}

// Signout handles POST /user/signout.
func (h *UserHandler) Signout(c *gin.Context) {
	if err := h.Svc.SignOut(middleware.CurrentUser(c).ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signed out"})
}

// Profile handles GET /user/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.Svc.GetProfile(middleware.CurrentUser(c).ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// UpdateProfile handles PUT /user/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var in userSvc.ProfileUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.UpdateProfile(middleware.CurrentUser(c).ID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// DeleteAccount handles DELETE /user.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	if err := h.Svc.DeleteAccount(middleware.CurrentUser(c).ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted"})
}

// ListVendors handles GET /user/vendors, the public vendor directory.
func (h *UserHandler) ListVendors(c *gin.Context) {
	vendors, err := h.Svc.ListVendors(c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vendors": vendors})
}

// GetVendor handles GET /user/vendors/:id, one public vendor profile.
func (h *UserHandler) GetVendor(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !u.IsVendor() {
		respondServiceError(c, userSvc.NotFoundError{ID: c.Param("id")})
		return
	}
	u.PasswordHash = ""
	u.TokenHash = ""
	u.FCMToken = ""
	c.JSON(http.StatusOK, gin.H{"success": true, "vendor": u})
}

// SetupVendor handles PUT /user/vendor/setup.
func (h *UserHandler) SetupVendor(c *gin.Context) {
	var in userSvc.VendorSetupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.SetupVendor(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// SetUnavailableDates handles PUT /user/vendor/unavailable-dates.
func (h *UserHandler) SetUnavailableDates(c *gin.Context) {
	var in struct {
		Dates []string `json:"dates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.SetUnavailableDates(middleware.CurrentUser(c), in.Dates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// AddService handles POST /user/vendor/services.
func (h *UserHandler) AddService(c *gin.Context) {
	var in userSvc.ServiceDetailInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.AddService(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": u})
}

// UpdateService handles PUT /user/vendor/services/:serviceId.
func (h *UserHandler) UpdateService(c *gin.Context) {
	var in userSvc.ServiceDetailInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.UpdateService(middleware.CurrentUser(c), c.Param("serviceId"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// RemoveService handles DELETE /user/vendor/services/:serviceId.
func (h *UserHandler) RemoveService(c *gin.Context) {
	u, err := h.Svc.RemoveService(middleware.CurrentUser(c), c.Param("serviceId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// AddPackage handles POST /user/vendor/packages.
func (h *UserHandler) AddPackage(c *gin.Context) {
	var in userSvc.PackageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.AddPackage(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": u})
}

// UpdatePackage handles PUT /user/vendor/packages/:packageId.
func (h *UserHandler) UpdatePackage(c *gin.Context) {
	var in userSvc.PackageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.UpdatePackage(middleware.CurrentUser(c), c.Param("packageId"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// RemovePackage handles DELETE /user/vendor/packages/:packageId.
func (h *UserHandler) RemovePackage(c *gin.Context) {
	u, err := h.Svc.RemovePackage(middleware.CurrentUser(c), c.Param("packageId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// Features handles GET /user/vendor/features, the caller's unlocked feature
// set.
func (h *UserHandler) Features(c *gin.Context) {
	u := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"tier":     u.VendorPackage,
		"features": models.TierFeatures(u.VendorPackage),
	})
}
