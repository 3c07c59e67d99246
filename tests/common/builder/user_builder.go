//go:build unit || e2e

package builder

import (
	"time"

	domuser "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/password"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID          uuid.UUID
	Email       string
	Password    string
	FullName    string
	Role        string
	Permissions []string
	IsActive    bool
	CreatedAt   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "guest@example.com",
		Password:  "password123",
		FullName:  "Test Guest",
		Role:      "guest",
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	hashed, err := password.HashPassword(b.Password)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, hashed, b.FullName, domuser.Role(b.Role)), nil
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    b.Email,
		Password: b.Password,
		FullName: b.FullName,
	}
}

func (b *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          b.ID,
		Email:       b.Email,
		FullName:    b.FullName,
		Role:        b.Role,
		Permissions: b.Permissions,
		IsActive:    b.IsActive,
	}
}

func (b *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:       b.ID,
		Email:    b.Email,
		FullName: b.FullName,
		Role:     b.Role,
	}
}

// HashedPassword returns the bcrypt hash the read store would hand back
// alongside the view during login.
func (b *UserBuilder) HashedPassword() string {
	hashed, err := password.HashPassword(b.Password)
	if err != nil {
		panic(err)
	}
	return hashed
}
