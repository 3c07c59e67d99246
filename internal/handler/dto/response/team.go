package response

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type TeamMemberResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TeamListResponse struct {
	Members []*TeamMemberResponse `json:"members"`
}

func FromTeamMemberView(v *queries.TeamMemberView) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:          v.ID,
		Email:       v.Email,
		FullName:    v.FullName,
		Role:        v.Role,
		Permissions: v.Permissions,
		LastLogin:   v.LastLogin,
		CreatedAt:   v.CreatedAt,
	}
}

func FromTeamMemberViews(views []*queries.TeamMemberView) *TeamListResponse {
	members := make([]*TeamMemberResponse, 0, len(views))
	for _, v := range views {
		members = append(members, FromTeamMemberView(v))
	}
	return &TeamListResponse{Members: members}
}
