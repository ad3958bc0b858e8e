package handlers

import (
	"net/http"

	"github.com/birikimsoft/defter_backend/internal/notify"
	"github.com/gin-gonic/gin"
)

// notificationHandler serves the buffered rate-tier notices.
type notificationHandler struct {
	notices *notify.Center
}

func registerNotificationRoutes(rg *gin.RouterGroup, notices *notify.Center) {
	h := &notificationHandler{notices: notices}
	rg.GET("/notifications", h.drainNotifications)
}

// drainNotifications returns and clears the pending notices; each notice is
// delivered to exactly one poll.
func (h *notificationHandler) drainNotifications(c *gin.Context) {
	notices := h.notices.Drain()
	if notices == nil {
		notices = []notify.Notice{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notices})
}
