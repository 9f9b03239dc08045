package handler

import (
	"net/http"

	"github.com/AlexZinkM/wallet-session/internal/model"
	"github.com/AlexZinkM/wallet-session/internal/notify"
)

// NotificationHandler hands queued notifications to the view
type NotificationHandler struct {
	queue *notify.Queue
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(queue *notify.Queue) *NotificationHandler {
	return &NotificationHandler{queue: queue}
}

// List handles GET /notifications
// @Summary      Take notifications
// @Description  Returns queued notifications, oldest first, and removes them from the queue
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  model.NotificationsResponse
// @Router       /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, model.NotificationsResponse{
		Notifications: h.queue.Drain(),
	})
}
