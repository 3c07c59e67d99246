package booking

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// CanTransitionTo enforces the guest lifecycle: pending → confirmed →
// checked_in → checked_out, with cancellation allowed from any
// non-terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() || s == next {
		return false
	}
	if next == StatusCancelled {
		return !s.IsTerminal()
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusCheckedIn
	case StatusCheckedIn:
		return next == StatusCheckedOut
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
