package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidStayRange = errors.New("check-out must be after check-in")
	ErrCheckInPast      = errors.New("check-in cannot be in the past")
	ErrEmptyGuestName   = errors.New("guest name cannot be empty")
	ErrInvalidGuestMail = errors.New("guest email is invalid")
)

// StayRange is a half-open [checkIn, checkOut) pair of calendar dates.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time, now time.Time) (StayRange, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)

	if !checkOut.After(checkIn) {
		return StayRange{}, ErrInvalidStayRange
	}
	if checkIn.Before(truncateToDate(now)) {
		return StayRange{}, ErrCheckInPast
	}

	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayRange rebuilds a range from stored dates without the
// not-in-the-past rule, which only applies at submission time.
func ReconstructStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{checkIn: truncateToDate(checkIn), checkOut: truncateToDate(checkOut)}
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

func (s StayRange) Nights() int64 {
	return int64(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

var guestEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type GuestContact struct {
	name  string
	email string
	phone string
}

func NewGuestContact(name, email, phone string) (GuestContact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return GuestContact{}, ErrEmptyGuestName
	}
	if !guestEmailRegex.MatchString(email) {
		return GuestContact{}, ErrInvalidGuestMail
	}

	return GuestContact{
		name:  name,
		email: email,
		phone: strings.TrimSpace(phone),
	}, nil
}

func (g GuestContact) Name() string  { return g.name }
func (g GuestContact) Email() string { return g.email }
func (g GuestContact) Phone() string { return g.phone }

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) SpecialRequests {
	return SpecialRequests{value: strings.TrimSpace(value)}
}

func (r SpecialRequests) String() string {
	return r.value
}

func (r SpecialRequests) IsEmpty() bool {
	return r.value == ""
}
