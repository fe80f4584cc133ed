package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/goleak"

	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeStatsRepo struct {
	mu     sync.Mutex
	since  []time.Time
	counts map[time.Time]int64
	top    []models.EventReferralCount
	recent []models.RecentReferral
	months []models.MonthlyCount
	err    error
	calls  int
}

func (f *fakeStatsRepo) CountReferrals(_ context.Context, _ string, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.since = append(f.since, since)
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[since], nil
}

func (f *fakeStatsRepo) TopEvents(context.Context, string, int) ([]models.EventReferralCount, error) {
	return f.top, nil
}

func (f *fakeStatsRepo) RecentReferrals(context.Context, string, int) ([]models.RecentReferral, error) {
	return f.recent, nil
}

func (f *fakeStatsRepo) MonthlyBreakdown(context.Context, string, *time.Location) ([]models.MonthlyCount, error) {
	return f.months, nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func TestPeriodStarts(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// Sunday 20:00 UTC is already Monday 01:30 in Kolkata.
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, kolkata), WeekStart(now, kolkata))
	assert.Equal(t, time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC), WeekStart(now, time.UTC))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, kolkata), MonthStart(now, kolkata))

	wed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), WeekStart(wed, time.UTC))
}

func TestStatsZeroReferrals(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{}, nil, StatsOptions{})

	got, err := svc.ForLead(context.Background(), bson.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Zero(t, got.TotalReferrals)
	assert.Zero(t, got.ThisMonth)
	assert.Zero(t, got.ThisWeek)
	assert.NotNil(t, got.TopEvents)
	assert.NotNil(t, got.RecentReferrals)
	assert.NotNil(t, got.MonthlyBreakdown)
	assert.Empty(t, got.TopEvents)
}

func TestStatsCounts(t *testing.T) {
	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	repo := &fakeStatsRepo{
		counts: map[time.Time]int64{
			{}: 12,
			MonthStart(now, time.UTC): 4,
			WeekStart(now, time.UTC):  1,
		},
		top:    []models.EventReferralCount{{EventID: bson.NewObjectID(), EventTitle: "Hack Night", Count: 7}},
		months: []models.MonthlyCount{{Month: "2025-05", Count: 8}, {Month: "2025-06", Count: 4}},
	}
	svc := NewStatsService(repo, nil, StatsOptions{Location: time.UTC})
	svc.now = func() time.Time { return now }

	got, err := svc.ForLead(context.Background(), "lead")
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.TotalReferrals)
	assert.Equal(t, int64(4), got.ThisMonth)
	assert.Equal(t, int64(1), got.ThisWeek)
	assert.Equal(t, repo.top, got.TopEvents)
	assert.Equal(t, "2025-05", got.MonthlyBreakdown[0].Month)
	assert.NotNil(t, got.RecentReferrals)
}

func TestStatsFailure(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{err: errBoom}, nil, StatsOptions{})

	_, err := svc.ForLead(context.Background(), "lead")
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.ErrorIs(t, err, errBoom)
}

func TestStatsCached(t *testing.T) {
	repo := &fakeStatsRepo{}
	c := &memCache{data: map[string][]byte{}}
	svc := NewStatsService(repo, c, StatsOptions{CacheTTL: time.Minute})

	_, err := svc.ForLead(context.Background(), "lead")
	require.NoError(t, err)
	assert.Equal(t, 3, repo.calls)
	assert.Contains(t, c.data, "stats:referrals:lead")

	got, err := svc.ForLead(context.Background(), "lead")
	require.NoError(t, err)
	assert.Equal(t, 3, repo.calls)
	assert.NotNil(t, got.TopEvents)

	svc.Invalidate(context.Background(), "lead")
	assert.NotContains(t, c.data, "stats:referrals:lead")
}
