package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	RoomNumber    string     `json:"room_number"`
	PricePerNight int64      `json:"price_per_night"`
	Capacity      int32      `json:"capacity"`
	RoomType      string     `json:"room_type"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"image_url"`
	Features      []string   `json:"features"`
	Status        string     `json:"status"`
	TakenFrom     *time.Time `json:"taken_from,omitempty"`
	TakenUntil    *time.Time `json:"taken_until,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomName        string     `json:"room_name"`
	RoomNumber      string     `json:"room_number"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	GuestName       string     `json:"guest_name"`
	GuestEmail      string     `json:"guest_email"`
	GuestPhone      string     `json:"guest_phone,omitempty"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        time.Time  `json:"check_out"`
	Status          string     `json:"status"`
	TotalPrice      int64      `json:"total_price"`
	SpecialRequests *string    `json:"special_requests,omitempty"`
	EmailSent       bool       `json:"email_sent"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReviewView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	ReviewerName string     `json:"reviewer_name"`
	Content      string     `json:"content"`
	Rating       int32      `json:"rating"`
	ImageURL     *string    `json:"image_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ReviewStatsView struct {
	Total   int64   `json:"total"`
	Average float64 `json:"average"`
}

type EventView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"is_active"`
}

type TeamMemberView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ActivityLogView struct {
	ID         uuid.UUID  `json:"id"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	ActorName  *string    `json:"actor_name,omitempty"`
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	EntityID   *uuid.UUID `json:"entity_id,omitempty"`
	Detail     string     `json:"detail,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Summary   string     `json:"summary"`
	EntityID  *uuid.UUID `json:"entity_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type UnseenCountsView struct {
	Bookings int64 `json:"bookings"`
	Reviews  int64 `json:"reviews"`
	Contacts int64 `json:"contacts"`
}

type RecentBookingView struct {
	ID         uuid.UUID `json:"id"`
	GuestName  string    `json:"guest_name"`
	RoomName   string    `json:"room_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

type DashboardView struct {
	TotalRooms      int64               `json:"total_rooms"`
	AvailableRooms  int64               `json:"available_rooms"`
	BookingsByState map[string]int64    `json:"bookings_by_status"`
	PendingBookings int64               `json:"pending_bookings"`
	TotalReviews    int64               `json:"total_reviews"`
	AverageRating   float64             `json:"average_rating"`
	Revenue         *int64              `json:"revenue,omitempty"`
	RecentBookings  []RecentBookingView `json:"recent_bookings"`
}
