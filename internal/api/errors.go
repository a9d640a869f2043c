package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/notify"
)

// statusFor maps a service error to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, models.ErrAlreadyEnlisted), errors.Is(err, models.ErrOperationEnded):
		return http.StatusConflict
	case errors.Is(err, models.ErrMemberNotFound),
		errors.Is(err, models.ErrSkillNotFound),
		errors.Is(err, models.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, models.ErrSkillExists):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messages overrides the toast text for specific errors of one command
type messages map[error]string

func (m messages) lookup(err error) string {
	for target, msg := range m {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// commandResponse is the body of every mutating endpoint
type commandResponse struct {
	Data         any                  `json:"data,omitempty"`
	Error        string               `json:"error,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// notifier pushes toasts and writes command responses
type notifier struct {
	queue *notify.Queue
}

func (n notifier) push(kind notify.Kind, msg string) *notify.Notification {
	if n.queue == nil || msg == "" {
		return nil
	}
	note := n.queue.Push(kind, msg)
	return &note
}

// succeed writes data with a success toast
func (n notifier) succeed(c *gin.Context, status int, data any, kind notify.Kind, msg string) {
	c.JSON(status, commandResponse{Data: data, Notification: n.push(kind, msg)})
}

// fail writes err with an error toast. Server errors never leak their text.
func (n notifier) fail(c *gin.Context, err error, msgs messages) {
	status := statusFor(err)
	msg := msgs.lookup(err)
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	c.JSON(status, commandResponse{Error: msg, Notification: n.push(notify.KindError, msg)})
}

// queryError writes a plain error body for read endpoints
func queryError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
