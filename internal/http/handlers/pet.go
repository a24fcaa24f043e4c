package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/petpal-backend/internal/domain/pet"
	"github.com/yungbote/petpal-backend/internal/http/response"
	"github.com/yungbote/petpal-backend/internal/observability"
	"github.com/yungbote/petpal-backend/internal/services"
)

// PetHandler serves the caller-scoped profile and pet stats.
type PetHandler struct {
	profiles services.ProfileService
	pets     services.PetService
	metrics  *observability.Metrics
}

func NewPetHandler(profiles services.ProfileService, pets services.PetService, metrics *observability.Metrics) *PetHandler {
	return &PetHandler{profiles: profiles, pets: pets, metrics: metrics}
}

// GET /profile
func (ph *PetHandler) Profile(c *gin.Context) {
	p, err := ph.profiles.Get(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, p)
}

// POST /profile
// body: { "id", "name", "bio"?, "google_registered"?, "level"?, "learning_progress"? }
func (ph *PetHandler) SetProfile(c *gin.Context) {
	var req struct {
		ID               *intField `json:"id" binding:"required"`
		Name             *string   `json:"name" binding:"required"`
		Bio              *string   `json:"bio"`
		GoogleRegistered *intField `json:"google_registered"`
		Level            *intField `json:"level"`
		LearningProgress *string   `json:"learning_progress"`
	}
	if !bindJSON(c, &req) {
		return
	}
	p := pet.DefaultProfile()
	p.ID = req.ID.Int64()
	p.Name = *req.Name
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.GoogleRegistered != nil {
		p.GoogleRegistered = req.GoogleRegistered.Int()
	}
	if req.Level != nil {
		p.Level = req.Level.Int()
	}
	if req.LearningProgress != nil {
		p.LearningProgress = *req.LearningProgress
	}
	out, err := ph.profiles.Set(c.Request.Context(), p)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /petstats
func (ph *PetHandler) Stats(c *gin.Context) {
	s, err := ph.pets.Stats(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, s)
}

// POST /petstats
// body: { "score", "hunger" }
func (ph *PetHandler) SetStats(c *gin.Context) {
	var req struct {
		Score  *intField `json:"score" binding:"required"`
		Hunger *intField `json:"hunger" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	s, err := ph.pets.SetStats(c.Request.Context(), pet.Stats{Score: req.Score.Int(), Hunger: req.Hunger.Int()})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	ph.metrics.IncPetUpdate("set")
	response.RespondOK(c, s)
}

type deltaRequest struct {
	Delta *intField `json:"delta" binding:"required"`
}

// POST /score
func (ph *PetHandler) AddScore(c *gin.Context) {
	var req deltaRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := ph.pets.AddScore(c.Request.Context(), req.Delta.Int())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	ph.metrics.IncPetUpdate("score")
	response.RespondOK(c, v)
}

// POST /hunger
func (ph *PetHandler) AddHunger(c *gin.Context) {
	var req deltaRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := ph.pets.AddHunger(c.Request.Context(), req.Delta.Int())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	ph.metrics.IncPetUpdate("hunger")
	response.RespondOK(c, v)
}

// POST /reset
func (ph *PetHandler) Reset(c *gin.Context) {
	s, err := ph.pets.Reset(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	ph.metrics.IncPetUpdate("reset")
	response.RespondOK(c, s)
}
