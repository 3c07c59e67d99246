package room

type Status string

const (
	StatusAvailable Status = "available"
	StatusTaken     Status = "taken"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusTaken:
		return true
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

type RoomType string

const (
	TypeRoom  RoomType = "room"
	TypeSuite RoomType = "suite"
)

func (t RoomType) String() string {
	return string(t)
}

func (t RoomType) IsValid() bool {
	switch t {
	case TypeRoom, TypeSuite:
		return true
	default:
		return false
	}
}

func NewRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}
