//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/jwt"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"
	queriesmock "github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/mock/queries"
	sharedmock "github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newJWTService() *jwt.Service {
	return jwt.NewService("test-secret-key", 15*time.Minute, 7*24*time.Hour)
}

type authMocks struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	users     *sharedmock.MockUserRepository
	readStore *queriesmock.MockUserReadStore
}

func newAuthMocks(ctrl *gomock.Controller) *authMocks {
	m := &authMocks{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
		readStore: queriesmock.NewMockUserReadStore(ctrl),
	}
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	return m
}

func (m *authMocks) newCommands(svc *jwt.Service) commands.AuthCommands {
	return commands.NewAuthCommands(m.uow, m.readStore, svc)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newJWTService()

	t.Run("success: returns token pair and updates last login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder()
		view := b.BuildAuthorizedView()
		m.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(view, b.HashedPassword(), nil)
		m.users.EXPECT().UpdateLastLogin(ctx, gomock.Any(), view.ID).Return(nil)

		result, err := m.newCommands(svc).Login(ctx, b.BuildLoginRequestDTO())
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, view.ID, result.UserID)
		assert.NotEmpty(t, result.TokenPair.AccessToken)
		assert.NotEmpty(t, result.TokenPair.RefreshToken)

		claims, err := svc.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("error: unknown email looks like a bad password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder()
		m.readStore.EXPECT().FindByEmail(ctx, b.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := m.newCommands(svc).Login(ctx, b.BuildLoginRequestDTO())
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder()
		view := b.BuildAuthorizedView()
		hashed := b.HashedPassword()

		b.Password = "wrong-password"
		m.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(view, hashed, nil)

		_, err := m.newCommands(svc).Login(ctx, b.BuildLoginRequestDTO())
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.IsActive = false })
		view := b.BuildAuthorizedView()
		m.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(view, b.HashedPassword(), nil)

		_, err := m.newCommands(svc).Login(ctx, b.BuildLoginRequestDTO())
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("last login update failure does not fail login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder()
		view := b.BuildAuthorizedView()
		m.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(view, b.HashedPassword(), nil)
		m.users.EXPECT().UpdateLastLogin(ctx, gomock.Any(), view.ID).
			Return(infra.WrapRepoErr("write failed", assert.AnError))

		result, err := m.newCommands(svc).Login(ctx, b.BuildLoginRequestDTO())
		require.NoError(t, err)
		require.NotNil(t, result)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newJWTService()

	t.Run("success: new users are guests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder()
		createdID := uuid.New()
		m.users.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error) {
				assert.Equal(t, b.Email, params.Email)
				assert.Equal(t, "guest", params.Role)
				return createdID, nil
			})

		result, err := m.newCommands(svc).Register(ctx, b.BuildRegisterRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, createdID, result.UserID)
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder()
		m.users.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey))

		_, err := m.newCommands(svc).Register(ctx, b.BuildRegisterRequestDTO())
		require.ErrorIs(t, err, commands.ErrEmailAlreadyTaken)
	})

	t.Run("error: weak password rejected before hashing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.Password = "short" })

		_, err := m.newCommands(svc).Register(ctx, b.BuildRegisterRequestDTO())
		require.Error(t, err)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newJWTService()

	issueRefresh := func(t *testing.T, userID uuid.UUID) string {
		t.Helper()
		token, err := svc.GenerateRefreshToken(userID, user.RoleGuest)
		require.NoError(t, err)
		return token
	}

	t.Run("success: rotates the pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder()
		view := b.BuildAuthorizedView()
		token := issueRefresh(t, view.ID)

		m.readStore.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		pair, err := m.newCommands(svc).RefreshToken(ctx, token)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("error: access token is not accepted as refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder()
		view := b.BuildAuthorizedView()
		accessToken, err := svc.GenerateAccessToken(view.ID, user.RoleGuest)
		require.NoError(t, err)

		_, err = m.newCommands(svc).RefreshToken(ctx, accessToken)
		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		_, err := m.newCommands(svc).RefreshToken(ctx, "not-a-jwt")
		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: user deactivated since issue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAuthMocks(ctrl)

		b := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.IsActive = false })
		view := b.BuildAuthorizedView()
		token := issueRefresh(t, view.ID)

		m.readStore.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := m.newCommands(svc).RefreshToken(ctx, token)
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
