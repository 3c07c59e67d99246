package response

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecentBookingResponse struct {
	ID         uuid.UUID `json:"id"`
	GuestName  string    `json:"guest_name"`
	RoomName   string    `json:"room_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

type DashboardResponse struct {
	TotalRooms      int64                    `json:"total_rooms"`
	AvailableRooms  int64                    `json:"available_rooms"`
	BookingsByState map[string]int64         `json:"bookings_by_status"`
	PendingBookings int64                    `json:"pending_bookings"`
	TotalReviews    int64                    `json:"total_reviews"`
	AverageRating   float64                  `json:"average_rating"`
	Revenue         *int64                   `json:"revenue,omitempty"`
	RecentBookings  []*RecentBookingResponse `json:"recent_bookings"`
}

func FromDashboardView(v *queries.DashboardView) *DashboardResponse {
	recent := make([]*RecentBookingResponse, 0, len(v.RecentBookings))
	for i := range v.RecentBookings {
		rb := v.RecentBookings[i]
		recent = append(recent, &RecentBookingResponse{
			ID:         rb.ID,
			GuestName:  rb.GuestName,
			RoomName:   rb.RoomName,
			CheckIn:    rb.CheckIn,
			CheckOut:   rb.CheckOut,
			Status:     rb.Status,
			TotalPrice: rb.TotalPrice,
			CreatedAt:  rb.CreatedAt,
		})
	}
	return &DashboardResponse{
		TotalRooms:      v.TotalRooms,
		AvailableRooms:  v.AvailableRooms,
		BookingsByState: v.BookingsByState,
		PendingBookings: v.PendingBookings,
		TotalReviews:    v.TotalReviews,
		AverageRating:   v.AverageRating,
		Revenue:         v.Revenue,
		RecentBookings:  recent,
	}
}
