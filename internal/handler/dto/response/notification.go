package response

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Summary   string     `json:"summary"`
	EntityID  *uuid.UUID `json:"entity_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
}

type UnseenCountsResponse struct {
	Bookings int64 `json:"bookings"`
	Reviews  int64 `json:"reviews"`
	Contacts int64 `json:"contacts"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:        v.ID,
		Kind:      v.Kind,
		Summary:   v.Summary,
		EntityID:  v.EntityID,
		CreatedAt: v.CreatedAt,
	}
}

func FromNotificationViews(views []*queries.NotificationView) *NotificationListResponse {
	notifications := make([]*NotificationResponse, 0, len(views))
	for _, v := range views {
		notifications = append(notifications, FromNotificationView(v))
	}
	return &NotificationListResponse{Notifications: notifications}
}

func FromUnseenCounts(v *queries.UnseenCountsView) *UnseenCountsResponse {
	return &UnseenCountsResponse{Bookings: v.Bookings, Reviews: v.Reviews, Contacts: v.Contacts}
}
