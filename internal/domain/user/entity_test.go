//go:build unit

package user_test

import (
	"testing"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

func TestNewUser(t *testing.T) {
	actual, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	require.NotNil(t, actual)

	email, _ := user.NewEmail("guest@example.com")
	expected := user.NewUser(email, "hashed_password", "Test Guest", user.RoleGuest)

	if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
		t.Errorf("User mismatch (-want +got):\n%s", diff)
	}

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, "guest@example.com", actual.Email().Value())
	assert.Equal(t, user.RoleGuest, actual.Role())
	assert.True(t, actual.IsActive())
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "staff@laposh.example.com"},
		{name: "trims whitespace", input: "  staff@laposh.example.com  "},
		{name: "missing at sign", input: "staff.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "staff@", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "staff@laposh.example.com", email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", pw.Value())
}

func TestRole(t *testing.T) {
	t.Run("parsing", func(t *testing.T) {
		for _, valid := range []string{"guest", "staff", "admin"} {
			role, err := user.NewRole(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, role.String())
		}

		_, err := user.NewRole("superuser")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("back office access", func(t *testing.T) {
		assert.False(t, user.RoleGuest.IsBackOffice())
		assert.True(t, user.RoleStaff.IsBackOffice())
		assert.True(t, user.RoleAdmin.IsBackOffice())
	})
}

func TestAllows(t *testing.T) {
	granted := user.NewPermissionSet(user.PermissionManageBookings)

	cases := []struct {
		name    string
		role    user.Role
		grants  user.PermissionSet
		perm    user.Permission
		allowed bool
	}{
		{name: "admin passes without grants", role: user.RoleAdmin, grants: user.NewPermissionSet(), perm: user.PermissionManageTeam, allowed: true},
		{name: "admin passes revenue check", role: user.RoleAdmin, grants: user.NewPermissionSet(), perm: user.PermissionViewRevenue, allowed: true},
		{name: "staff with grant", role: user.RoleStaff, grants: granted, perm: user.PermissionManageBookings, allowed: true},
		{name: "staff without grant", role: user.RoleStaff, grants: granted, perm: user.PermissionManageRooms, allowed: false},
		{name: "staff with empty grants", role: user.RoleStaff, grants: user.NewPermissionSet(), perm: user.PermissionManageBookings, allowed: false},
		{name: "guest never allowed", role: user.RoleGuest, grants: granted, perm: user.PermissionManageBookings, allowed: false},
		{name: "guest revenue denied", role: user.RoleGuest, grants: user.NewPermissionSet(user.PermissionViewRevenue), perm: user.PermissionViewRevenue, allowed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, user.Allows(tc.role, tc.grants, tc.perm))
		})
	}
}

func TestPermissionSet(t *testing.T) {
	set := user.NewPermissionSet(user.PermissionManageRooms)

	assert.True(t, set.Has(user.PermissionManageRooms))
	assert.False(t, set.Has(user.PermissionManageGallery))

	set.Grant(user.PermissionManageGallery)
	assert.True(t, set.Has(user.PermissionManageGallery))

	set.Revoke(user.PermissionManageRooms)
	assert.False(t, set.Has(user.PermissionManageRooms))

	// List keeps the canonical permission ordering regardless of grant order.
	set.Grant(user.PermissionViewRevenue)
	assert.Equal(t, []user.Permission{user.PermissionViewRevenue, user.PermissionManageGallery}, set.List())
}

func TestNewPermission(t *testing.T) {
	for _, valid := range []string{"view_revenue", "manage_team", "manage_rooms", "manage_bookings", "manage_reviews", "manage_gallery"} {
		p, err := user.NewPermission(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, p.String())
	}

	_, err := user.NewPermission("manage_everything")
	assert.ErrorIs(t, err, user.ErrInvalidPermission)
}
