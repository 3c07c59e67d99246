//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/repository"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"
	repositorymock "github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRoomWriteQueries, *mockDBTX, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: room created",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, tx *mockDBTX, id uuid.UUID) {
				mock.EXPECT().CreateRoom(ctx, tx, gomock.Any()).Return(id, nil)
			},
			expectedError: false,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, tx *mockDBTX, _ uuid.UUID) {
				mock.EXPECT().CreateRoom(ctx, tx, gomock.Any()).
					Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate room number",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, tx *mockDBTX, _ uuid.UUID) {
				mock.EXPECT().CreateRoom(ctx, tx, gomock.Any()).
					Return(uuid.Nil, &pgconn.PgError{Code: "23505"})
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRoomRepository(mockQueries)

			rm, err := builder.NewRoomBuilder().BuildDomain()
			require.NoError(t, err)

			expectedID := uuid.New()
			tc.setupMock(mockQueries, mockDB, expectedID)

			actualID, actualError := repo.Create(ctx, mockDB, rm)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, expectedID, actualID)
			}
		})
	}
}

func TestRoomRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRoomWriteQueries, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: room updated",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, tx *mockDBTX) {
				mock.EXPECT().UpdateRoom(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			expectedError: false,
		},
		{
			name: "error: no rows affected maps to not found",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, tx *mockDBTX) {
				mock.EXPECT().UpdateRoom(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, tx *mockDBTX) {
				mock.EXPECT().UpdateRoom(ctx, tx, gomock.Any()).
					Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRoomRepository(mockQueries)

			rm, err := builder.NewRoomBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Update(ctx, mockDB, rm)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestRoomRepository_Delete(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRoomWriteQueries, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: room deleted",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, tx *mockDBTX) {
				mock.EXPECT().DeleteRoom(ctx, tx, roomID).Return(int64(1), nil)
			},
			expectedError: false,
		},
		{
			name: "error: room not found",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, tx *mockDBTX) {
				mock.EXPECT().DeleteRoom(ctx, tx, roomID).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: room still referenced by bookings",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, tx *mockDBTX) {
				mock.EXPECT().DeleteRoom(ctx, tx, roomID).
					Return(int64(0), &pgconn.PgError{Code: "23503"})
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRoomRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Delete(ctx, mockDB, roomID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
