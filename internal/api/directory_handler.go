package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plague-community-hub/internal/filter"
	"github.com/plague-community-hub/internal/metrics"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/mutation"
	"github.com/plague-community-hub/internal/notify"
	"github.com/plague-community-hub/internal/service"
	"github.com/rs/zerolog"
)

// DirectoryHandler handles member directory endpoints
type DirectoryHandler struct {
	services *service.Services
	notifier
	log zerolog.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(services *service.Services, queue *notify.Queue, log zerolog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		services: services,
		notifier: notifier{queue: queue},
		log:      log.With().Str("handler", "directory").Logger(),
	}
}

// memberView is a member with its profile card statistics
type memberView struct {
	models.Member
	Stats metrics.MemberStats `json:"stats"`
}

// ListMembers handles GET /v1/members
func (h *DirectoryHandler) ListMembers(c *gin.Context) {
	criteria := filter.MemberCriteria{
		SearchQuery: c.Query("q"),
		Skill:       c.Query("skill"),
		Workgroup:   models.WorkgroupType(c.Query("workgroup")),
	}
	if criteria.Workgroup != "" && !criteria.Workgroup.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown workgroup"})
		return
	}

	members := h.services.Directory.Members(criteria)
	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"count":   len(members),
	})
}

// GetMember handles GET /v1/members/:id
func (h *DirectoryHandler) GetMember(c *gin.Context) {
	m, err := h.services.Directory.Member(c.Param("id"))
	if err != nil {
		queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberView{Member: m, Stats: metrics.ForMember(m)})
}

// Endorse handles POST /v1/members/:id/skills/:skill/endorse
func (h *DirectoryHandler) Endorse(c *gin.Context) {
	m, err := h.services.Directory.Endorse(c.Param("id"), c.Param("skill"))
	if err != nil {
		h.fail(c, err, nil)
		return
	}
	h.succeed(c, http.StatusOK, m, notify.KindSuccess, "ENDORSEMENT_TRANSMITTED.")
}

// profileRequest is the body of PUT /v1/profile
type profileRequest struct {
	Skills       []models.Skill         `json:"skills"`
	Workgroups   []models.WorkgroupType `json:"workgroups"`
	LearningMode bool                   `json:"learningMode"`
}

// SaveProfile handles PUT /v1/profile
func (h *DirectoryHandler) SaveProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile body"})
		return
	}

	m, err := h.services.Directory.SaveProfile(mutation.ProfileEdit{
		Skills:       sanitizeSkills(req.Skills),
		Workgroups:   req.Workgroups,
		LearningMode: req.LearningMode,
	})
	if err != nil {
		h.fail(c, err, messages{
			models.ErrUnauthenticated: "Login to access profile",
			models.ErrSkillExists:     "SKILL_ALREADY_LOGGED.",
		})
		return
	}
	h.succeed(c, http.StatusOK, m, notify.KindSuccess, "SWAMP_ID_SYNCED. IDENTITY_SECURED.")
}
