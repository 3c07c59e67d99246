package response

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type ActivityLogResponse struct {
	ID         uuid.UUID  `json:"id"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	ActorName  *string    `json:"actor_name,omitempty"`
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	EntityID   *uuid.UUID `json:"entity_id,omitempty"`
	Detail     string     `json:"detail,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ActivityLogListResponse struct {
	Logs       []*ActivityLogResponse `json:"logs"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

func FromActivityLogView(v *queries.ActivityLogView) *ActivityLogResponse {
	return &ActivityLogResponse{
		ID:         v.ID,
		ActorID:    v.ActorID,
		ActorName:  v.ActorName,
		Action:     v.Action,
		EntityType: v.EntityType,
		EntityID:   v.EntityID,
		Detail:     v.Detail,
		CreatedAt:  v.CreatedAt,
	}
}

func FromActivityLogViews(views []*queries.ActivityLogView, next *queries.Cursor) *ActivityLogListResponse {
	logs := make([]*ActivityLogResponse, 0, len(views))
	for _, v := range views {
		logs = append(logs, FromActivityLogView(v))
	}
	resp := &ActivityLogListResponse{Logs: logs}
	if next != nil && next.After != "" {
		resp.NextCursor = &next.After
	}
	return resp
}
