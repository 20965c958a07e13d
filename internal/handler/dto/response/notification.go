package response

import (
	"time"

	"stayhub/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

func FromNotification(n *notification.Notification) *NotificationResponse {
	var resp NotificationResponse
	if err := copier.Copy(&resp, n); err != nil {
		resp = NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Link:      n.Link,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return &resp
}

func FromNotifications(list []*notification.Notification) []*NotificationResponse {
	result := make([]*NotificationResponse, len(list))
	for i, n := range list {
		result[i] = FromNotification(n)
	}
	return result
}
