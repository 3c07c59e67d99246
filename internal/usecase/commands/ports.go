package commands

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/mail"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/notify"
)

// Notification kinds mirror the back-office badge buckets.
const (
	NotificationKindBooking = "booking"
	NotificationKindReview  = "review"
	NotificationKindContact = "contact"
)

// Mailer enqueues outbound mail jobs; actual SMTP delivery happens in a
// separate consumer.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, msg mail.BookingConfirmation) error
	SendContactMessage(ctx context.Context, msg mail.ContactMessage) error
}

// Notifier fans out admin notifications to connected back-office sessions.
type Notifier interface {
	Publish(ctx context.Context, evt notify.Event) error
}

// ImageUploader stores a base64-encoded image and returns its public URL.
type ImageUploader interface {
	UploadBase64(ctx context.Context, base64Image, publicID string) (string, error)
}
