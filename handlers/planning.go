package handlers

import (
	"net/http"
	"strconv"

	"weddinghub/middleware"
	"weddinghub/models"
	userSvc "weddinghub/services/user"
	"weddinghub/utils"

	"github.com/gin-gonic/gin"
)

// PlanningHandler exposes the customer planning endpoints: tasks and
// invitation settings.
type PlanningHandler struct {
	Svc userSvc.UserService
}

// NewPlanningHandler creates a PlanningHandler.
func NewPlanningHandler(svc userSvc.UserService) *PlanningHandler {
	return &PlanningHandler{Svc: svc}
}

func pathIndex(c *gin.Context, name string) (int, bool) {
	i, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid index", c.Param(name))
		return 0, false
	}
	return i, true
}

// AddTask handles POST /user/tasks.
func (h *PlanningHandler) AddTask(c *gin.Context) {
	var in userSvc.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.AddTask(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "tasks": u.Tasks})
}

// UpdateTask handles PUT /user/tasks/:index.
func (h *PlanningHandler) UpdateTask(c *gin.Context) {
	index, ok := pathIndex(c, "index")
	if !ok {
		return
	}
	var in userSvc.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.UpdateTask(middleware.CurrentUser(c), index, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": u.Tasks})
}

// RemoveTask handles DELETE /user/tasks/:index.
func (h *PlanningHandler) RemoveTask(c *gin.Context) {
	index, ok := pathIndex(c, "index")
	if !ok {
		return
	}

	u, err := h.Svc.RemoveTask(middleware.CurrentUser(c), index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": u.Tasks})
}

// AddSubtask handles POST /user/tasks/:index/subtasks.
func (h *PlanningHandler) AddSubtask(c *gin.Context) {
	index, ok := pathIndex(c, "index")
	if !ok {
		return
	}
	var in struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.AddSubtask(middleware.CurrentUser(c), index, in.Title)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "tasks": u.Tasks})
}

// ToggleSubtask handles PATCH /user/tasks/:index/subtasks/:subIndex.
func (h *PlanningHandler) ToggleSubtask(c *gin.Context) {
	index, ok := pathIndex(c, "index")
	if !ok {
		return
	}
	subIndex, ok := pathIndex(c, "subIndex")
	if !ok {
		return
	}

	u, err := h.Svc.ToggleSubtask(middleware.CurrentUser(c), index, subIndex)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": u.Tasks})
}

// RemoveSubtask handles DELETE /user/tasks/:index/subtasks/:subIndex.
func (h *PlanningHandler) RemoveSubtask(c *gin.Context) {
	index, ok := pathIndex(c, "index")
	if !ok {
		return
	}
	subIndex, ok := pathIndex(c, "subIndex")
	if !ok {
		return
	}

	u, err := h.Svc.RemoveSubtask(middleware.CurrentUser(c), index, subIndex)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": u.Tasks})
}

// SetInvitationSetting handles PUT /invitations/settings.
func (h *PlanningHandler) SetInvitationSetting(c *gin.Context) {
	var in models.InvitationSetting
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.Svc.SetInvitationSetting(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invitationSetting": u.InvitationSetting})
}

// GetInvitationSetting handles GET /invitations/settings.
func (h *PlanningHandler) GetInvitationSetting(c *gin.Context) {
	setting, err := h.Svc.GetInvitationSetting(middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invitationSetting": setting})
}
