package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/cache"
	"ctc-webbase/internal/logger"
	"ctc-webbase/internal/models"
	repo "ctc-webbase/internal/repository"
)

type StatsOptions struct {
	Location    *time.Location
	CacheTTL    time.Duration
	RecentLimit int
	TopEvents   int
}

type StatsService struct {
	stats repo.ReferralStatsRepository
	cache cache.Cache
	opts  StatsOptions
	now   func() time.Time
	log   *zap.Logger
}

func NewStatsService(stats repo.ReferralStatsRepository, c cache.Cache, opts StatsOptions) *StatsService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 10
	}
	if opts.TopEvents <= 0 {
		opts.TopEvents = 5
	}
	if c == nil {
		c = cache.Nop{}
	}
	return &StatsService{stats: stats, cache: c, opts: opts, now: time.Now, log: logger.New("stats")}
}

// MonthStart is midnight on the first of t's month in loc.
func MonthStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// WeekStart is midnight on the Monday of t's ISO week in loc.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// ForLead computes the dashboard numbers of one technical lead. The
// queries run concurrently and the first failure cancels the rest.
func (s *StatsService) ForLead(ctx context.Context, leadID string) (*dto.ReferralStats, error) {
	key := "stats:referrals:" + leadID
	var cached dto.ReferralStats
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.Warn("stats cache read failed", zap.Error(err))
	} else if ok {
		return &cached, nil
	}

	now := s.now()
	out := &dto.ReferralStats{
		TopEvents:        []models.EventReferralCount{},
		RecentReferrals:  []models.RecentReferral{},
		MonthlyBreakdown: []models.MonthlyCount{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalReferrals, err = s.stats.CountReferrals(gctx, leadID, time.Time{})
		return err
	})
	g.Go(func() (err error) {
		out.ThisMonth, err = s.stats.CountReferrals(gctx, leadID, MonthStart(now, s.opts.Location))
		return err
	})
	g.Go(func() (err error) {
		out.ThisWeek, err = s.stats.CountReferrals(gctx, leadID, WeekStart(now, s.opts.Location))
		return err
	})
	g.Go(func() error {
		rows, err := s.stats.TopEvents(gctx, leadID, s.opts.TopEvents)
		if err == nil && rows != nil {
			out.TopEvents = rows
		}
		return err
	})
	g.Go(func() error {
		rows, err := s.stats.RecentReferrals(gctx, leadID, s.opts.RecentLimit)
		if err == nil && rows != nil {
			out.RecentReferrals = rows
		}
		return err
	})
	g.Go(func() error {
		rows, err := s.stats.MonthlyBreakdown(gctx, leadID, s.opts.Location)
		if err == nil && rows != nil {
			out.MonthlyBreakdown = rows
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Internal(err)
	}

	if s.opts.CacheTTL > 0 {
		if err := s.cache.Set(ctx, key, out, s.opts.CacheTTL); err != nil {
			s.log.Warn("stats cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

// Invalidate drops the cached numbers of a lead.
func (s *StatsService) Invalidate(ctx context.Context, leadID string) {
	if err := s.cache.Delete(ctx, "stats:referrals:"+leadID); err != nil {
		s.log.Warn("stats cache delete failed", zap.Error(err))
	}
}
