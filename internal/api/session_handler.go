package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/notify"
	"github.com/plague-community-hub/internal/service"
	"github.com/rs/zerolog"
)

// SessionHandler handles login state endpoints
type SessionHandler struct {
	services *service.Services
	notifier
	log zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(services *service.Services, queue *notify.Queue, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		services: services,
		notifier: notifier{queue: queue},
		log:      log.With().Str("handler", "session").Logger(),
	}
}

// GetSession handles GET /v1/session
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Session.Current())
}

// Login handles POST /v1/session
func (h *SessionHandler) Login(c *gin.Context) {
	s, err := h.services.Session.Login()
	if err != nil {
		h.fail(c, err, messages{models.ErrUnauthenticated: "No swamp identity available."})
		return
	}
	h.succeed(c, http.StatusOK, s, notify.KindSuccess, fmt.Sprintf("Welcome back, %s.", s.Member.Name))
}

// Logout handles DELETE /v1/session
func (h *SessionHandler) Logout(c *gin.Context) {
	h.succeed(c, http.StatusOK, h.services.Session.Logout(), notify.KindInfo, "Disconnected from the swamp.")
}
