package user

type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsBackOffice reports whether the role may enter the admin area at all.
func (r Role) IsBackOffice() bool {
	return r == RoleStaff || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Permission is a single back-office capability. Capabilities form one flat
// set granted and revoked per member and checked uniformly by the permission
// middleware.
type Permission string

const (
	PermissionViewRevenue    Permission = "view_revenue"
	PermissionManageTeam     Permission = "manage_team"
	PermissionManageRooms    Permission = "manage_rooms"
	PermissionManageBookings Permission = "manage_bookings"
	PermissionManageReviews  Permission = "manage_reviews"
	PermissionManageGallery  Permission = "manage_gallery"
)

func (p Permission) String() string {
	return string(p)
}

func (p Permission) IsValid() bool {
	switch p {
	case PermissionViewRevenue, PermissionManageTeam, PermissionManageRooms,
		PermissionManageBookings, PermissionManageReviews, PermissionManageGallery:
		return true
	default:
		return false
	}
}

func NewPermission(s string) (Permission, error) {
	p := Permission(s)
	if !p.IsValid() {
		return "", ErrInvalidPermission
	}
	return p, nil
}

type PermissionSet map[Permission]struct{}

func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

func (s PermissionSet) Grant(p Permission) {
	s[p] = struct{}{}
}

func (s PermissionSet) Revoke(p Permission) {
	delete(s, p)
}

func (s PermissionSet) List() []Permission {
	out := make([]Permission, 0, len(s))
	for _, p := range allPermissions {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

var allPermissions = []Permission{
	PermissionViewRevenue,
	PermissionManageTeam,
	PermissionManageRooms,
	PermissionManageBookings,
	PermissionManageReviews,
	PermissionManageGallery,
}

// Allows reports whether a user with the given role and grants may use the
// capability. Admins pass every check; staff need an explicit grant.
func Allows(role Role, grants PermissionSet, p Permission) bool {
	if role == RoleAdmin {
		return true
	}
	if role != RoleStaff {
		return false
	}
	return grants.Has(p)
}
