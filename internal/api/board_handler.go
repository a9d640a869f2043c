package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plague-community-hub/internal/filter"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/mutation"
	"github.com/plague-community-hub/internal/notify"
	"github.com/plague-community-hub/internal/service"
	"github.com/plague-community-hub/internal/session"
	"github.com/rs/zerolog"
)

// BoardHandler handles mission board endpoints
type BoardHandler struct {
	services *service.Services
	notifier
	log zerolog.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(services *service.Services, queue *notify.Queue, log zerolog.Logger) *BoardHandler {
	return &BoardHandler{
		services: services,
		notifier: notifier{queue: queue},
		log:      log.With().Str("handler", "board").Logger(),
	}
}

// ListProjects handles GET /v1/projects
func (h *BoardHandler) ListProjects(c *gin.Context) {
	query := filter.ProjectQuery{
		Status: models.ProjectStatus(c.Query("status")),
		Title:  c.Query("title"),
		Sort:   filter.ProjectSort(c.Query("sort")),
	}
	if query.Status != "" && !query.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: Proposal, Live, Ended"})
		return
	}
	if !filter.ValidSorts[query.Sort] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be one of: recent, votes, enlisted"})
		return
	}

	projects := h.services.Board.Projects(query)
	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

// GetProject handles GET /v1/projects/:id
func (h *BoardHandler) GetProject(c *gin.Context) {
	p, err := h.services.Board.Project(c.Param("id"))
	if err != nil {
		queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProject handles POST /v1/projects
func (h *BoardHandler) CreateProject(c *gin.Context) {
	form, ok := h.bindForm(c, mutation.NewProposalForm())
	if !ok {
		return
	}
	form.ID = ""

	p, err := h.services.Board.SaveProject(form.Patch())
	if err != nil {
		h.fail(c, err, messages{
			models.ErrUnauthenticated: "Authenticate to log a proposal.",
			models.ErrUnauthorized:    "Only Representatives and Elders may log proposals.",
		})
		return
	}
	h.succeed(c, http.StatusCreated, p, notify.KindSuccess, "PROPOSAL_LOGGED. MISSION_AWAITING_REVIEWS.")
}

var editMessages = messages{
	models.ErrUnauthenticated: "Authenticate to modify operations.",
	models.ErrUnauthorized:    "Only the operation's Elder may modify it.",
}

// UpdateProject handles PUT /v1/projects/:id
func (h *BoardHandler) UpdateProject(c *gin.Context) {
	if err := session.RequireLogin(h.services.Session.Current()); err != nil {
		h.fail(c, err, editMessages)
		return
	}

	existing, err := h.services.Board.Project(c.Param("id"))
	if err != nil {
		h.fail(c, err, nil)
		return
	}

	// absent fields keep their current values
	form, ok := h.bindForm(c, mutation.FormFromProject(existing))
	if !ok {
		return
	}
	form.ID = existing.ID

	p, err := h.services.Board.SaveProject(form.Patch())
	if err != nil {
		h.fail(c, err, editMessages)
		return
	}
	h.succeed(c, http.StatusOK, p, notify.KindSuccess, "OPERATION_MODIFIED. INTEL_UPDATED.")
}

func (h *BoardHandler) bindForm(c *gin.Context, form mutation.ProposalForm) (mutation.ProposalForm, bool) {
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Debug().Err(err).Msg("Rejected proposal form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proposal form"})
		return form, false
	}
	return sanitizeForm(form), true
}

// Upvote handles POST /v1/projects/:id/upvote
func (h *BoardHandler) Upvote(c *gin.Context) {
	p, err := h.services.Board.ToggleUpvote(c.Param("id"))
	if err != nil {
		h.fail(c, err, messages{models.ErrUnauthenticated: "Authenticate to cast your vote."})
		return
	}

	msg := "VOTE_RETRACTED."
	if s := h.services.Session.Current(); s.Member != nil && p.HasUpvoter(s.Member.ID) {
		msg = "VOTE_CAST."
	}
	h.succeed(c, http.StatusOK, p, notify.KindInfo, msg)
}

// Enlist handles POST /v1/projects/:id/enlist
func (h *BoardHandler) Enlist(c *gin.Context) {
	p, err := h.services.Board.Enlist(c.Param("id"))
	if err != nil {
		h.fail(c, err, messages{
			models.ErrUnauthenticated: "Authenticate your wallet to enlist in missions.",
			models.ErrAlreadyEnlisted: "You are already enlisted for this operation.",
			models.ErrOperationEnded:  "This operation has already ended.",
		})
		return
	}
	h.succeed(c, http.StatusOK, p, notify.KindSuccess, "ENLISTMENT COMPLETE. PREPARE FOR DEPLOYMENT.")
}

// Voters handles GET /v1/projects/:id/voters
func (h *BoardHandler) Voters(c *gin.Context) {
	h.roster(c, service.RosterVoters)
}

// Enlisted handles GET /v1/projects/:id/enlisted
func (h *BoardHandler) Enlisted(c *gin.Context) {
	h.roster(c, service.RosterEnlisted)
}

func (h *BoardHandler) roster(c *gin.Context, kind service.RosterKind) {
	members, err := h.services.Board.Roster(c.Param("id"), kind)
	if err != nil {
		queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"kind":    kind,
		"members": members,
		"count":   len(members),
	})
}
