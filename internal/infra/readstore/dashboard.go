package readstore

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
)

type DashboardViewQueries interface {
	CountRooms(ctx context.Context, db sqlc.DBTX) (sqlc.CountRoomsRow, error)
	CountBookingsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountBookingsByStatusRow, error)
	ReviewRatingStats(ctx context.Context, db sqlc.DBTX) (sqlc.ReviewRatingStatsRow, error)
	SumRevenue(ctx context.Context, db sqlc.DBTX) (int64, error)
	RecentBookings(ctx context.Context, db sqlc.DBTX, limit int64) ([]sqlc.RecentBookingsRow, error)
}

type DashboardReadStore struct {
	queries DashboardViewQueries
	db      sqlc.DBTX
}

func NewDashboardReadStore(queries *sqlc.Queries, db sqlc.DBTX) *DashboardReadStore {
	return &DashboardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DashboardReadStore) RoomCounts(ctx context.Context) (int64, int64, error) {
	row, err := r.queries.CountRooms(ctx, r.db)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return row.Total, row.Available, nil
}

func (r *DashboardReadStore) BookingCountsByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.queries.CountBookingsByStatus(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *DashboardReadStore) ReviewStats(ctx context.Context) (*queries.ReviewStatsView, error) {
	row, err := r.queries.ReviewRatingStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load review stats", err)
	}
	return &queries.ReviewStatsView{Total: row.Total, Average: row.Average}, nil
}

func (r *DashboardReadStore) Revenue(ctx context.Context) (int64, error) {
	revenue, err := r.queries.SumRevenue(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum revenue", err)
	}
	return revenue, nil
}

func (r *DashboardReadStore) RecentBookings(ctx context.Context, limit int32) ([]queries.RecentBookingView, error) {
	rows, err := r.queries.RecentBookings(ctx, r.db, int64(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent bookings", err)
	}

	result := make([]queries.RecentBookingView, len(rows))
	for i, row := range rows {
		result[i] = queries.RecentBookingView{
			ID:         row.ID,
			GuestName:  row.GuestName,
			RoomName:   row.RoomName,
			CheckIn:    pgconv.DateFromPgtype(row.CheckIn),
			CheckOut:   pgconv.DateFromPgtype(row.CheckOut),
			Status:     row.Status,
			TotalPrice: row.TotalPrice,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
