package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/petpal-backend/internal/http/response"
	"github.com/yungbote/petpal-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// POST /user
// body: { "email", "nickname", "password"?, "bio"?, "avatar"?, "google_registered"? }
func (uh *UserHandler) CreateOrGet(c *gin.Context) {
	var req struct {
		Email            *string   `json:"email" binding:"required"`
		Nickname         *string   `json:"nickname" binding:"required"`
		Password         string    `json:"password"`
		Bio              string    `json:"bio"`
		GoogleRegistered *intField `json:"google_registered"`
	}
	if !bindJSON(c, &req) {
		return
	}
	in := services.RegisterInput{
		Email:    *req.Email,
		Nickname: *req.Nickname,
		Password: req.Password,
		Bio:      req.Bio,
	}
	if req.GoogleRegistered != nil {
		in.GoogleRegistered = req.GoogleRegistered.Int()
	}
	id, err := uh.userService.CreateOrGet(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, id)
}

// GET /user/by-email?email=
func (uh *UserHandler) ByEmail(c *gin.Context) {
	email, ok := c.GetQuery("email")
	if !ok {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errMissingQuery("email"))
		return
	}
	id, err := uh.userService.IDByEmail(c.Request.Context(), email)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, id)
}

// GET /profile/:user_id
func (uh *UserHandler) ProfileByID(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	p, err := uh.userService.ProfileByID(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	if p == nil {
		response.RespondOK(c, gin.H{})
		return
	}
	response.RespondOK(c, p)
}

// POST /progress
// body: { "user_id" | "id", "learning_progress" }
func (uh *UserHandler) UpdateProgress(c *gin.Context) {
	var req struct {
		UserID           *intField `json:"user_id"`
		ID               *intField `json:"id"`
		LearningProgress *string   `json:"learning_progress" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	userID := req.UserID
	if userID == nil {
		userID = req.ID
	}
	if userID == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errMissingField("user_id"))
		return
	}
	if err := uh.userService.UpdateProgress(c.Request.Context(), userID.Int64(), *req.LearningProgress); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, true)
}

// GET /notifications/:user_id
func (uh *UserHandler) Notifications(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	enabled, err := uh.userService.Notifications(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user_id": userID, "enabled": enabled})
}

// POST /notifications
// body: { "user_id", "enabled"? }
func (uh *UserHandler) SetNotifications(c *gin.Context) {
	var req struct {
		UserID  *intField `json:"user_id" binding:"required"`
		Enabled *intField `json:"enabled"`
	}
	if !bindJSON(c, &req) {
		return
	}
	enabled := 1
	if req.Enabled != nil {
		enabled = req.Enabled.Int()
	}
	userID := req.UserID.Int64()
	if err := uh.userService.SetNotifications(c.Request.Context(), userID, enabled); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, userID)
}

// GET /achievements/:user_id
func (uh *UserHandler) Achievements(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	achievements, err := uh.userService.Achievements(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user_id": userID, "achievements": achievements})
}

// POST /achievements
// body: { "id", "achievements" }
func (uh *UserHandler) SetAchievements(c *gin.Context) {
	var req struct {
		ID           *intField `json:"id" binding:"required"`
		Achievements *string   `json:"achievements" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := uh.userService.SetAchievements(c.Request.Context(), req.ID.Int64(), *req.Achievements); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, true)
}

// GET /debug-users
func (uh *UserHandler) DebugUsers(c *gin.Context) {
	users, err := uh.userService.DebugUsers(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, users)
}
