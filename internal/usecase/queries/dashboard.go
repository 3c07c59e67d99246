package queries

import (
	"context"
)

const recentBookingsLimit = 5

type DashboardQueries interface {
	// Snapshot aggregates the back-office landing metrics. Revenue is only
	// populated when the caller holds the view_revenue permission.
	Snapshot(ctx context.Context, includeRevenue bool) (*DashboardView, error)
}

type DashboardViewRepo interface {
	RoomCounts(ctx context.Context) (total, available int64, err error)
	BookingCountsByStatus(ctx context.Context) (map[string]int64, error)
	ReviewStats(ctx context.Context) (*ReviewStatsView, error)
	Revenue(ctx context.Context) (int64, error)
	RecentBookings(ctx context.Context, limit int32) ([]RecentBookingView, error)
}

type dashboardQueriesImpl struct {
	repo DashboardViewRepo
}

func NewDashboardQueries(repo DashboardViewRepo) DashboardQueries {
	return &dashboardQueriesImpl{repo: repo}
}

func (q *dashboardQueriesImpl) Snapshot(ctx context.Context, includeRevenue bool) (*DashboardView, error) {
	totalRooms, availableRooms, err := q.repo.RoomCounts(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := q.repo.BookingCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	reviewStats, err := q.repo.ReviewStats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := q.repo.RecentBookings(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{
		TotalRooms:      totalRooms,
		AvailableRooms:  availableRooms,
		BookingsByState: byStatus,
		PendingBookings: byStatus["pending"],
		TotalReviews:    reviewStats.Total,
		AverageRating:   reviewStats.Average,
		RecentBookings:  recent,
	}

	if includeRevenue {
		revenue, err := q.repo.Revenue(ctx)
		if err != nil {
			return nil, err
		}
		view.Revenue = &revenue
	}

	return view, nil
}
