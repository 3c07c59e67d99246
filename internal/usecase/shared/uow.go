package shared

import (
	"context"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/event"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/review"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/room"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Events() EventRepository
	Users() UserRepository
	Permissions() PermissionRepository
	ActivityLogs() ActivityLogRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	RoomAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	PermissionsByUser(ctx context.Context, userID uuid.UUID) (user.PermissionSet, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error
	Delete(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, bk *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, status booking.Status) error
	UpdateEmailSent(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, sent bool) error
	Delete(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) error
}

type EventRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, ev *event.Event) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, ev *event.Event) error
	Delete(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateRole(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, role user.Role) error
	Deactivate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type PermissionRepository interface {
	Grant(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, p user.Permission, grantedBy uuid.UUID) error
	Revoke(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, p user.Permission) error
}

type ActivityLogRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, entry ActivityEntry) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, kind, summary string, entityID *uuid.UUID) (uuid.UUID, error)
	MarkSeen(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, kind string) error
}

// ActivityEntry is the write model for the admin audit trail.
type ActivityEntry struct {
	ActorID    *uuid.UUID
	Action     string
	EntityType string
	EntityID   *uuid.UUID
	Detail     string
}
