package service

import (
	"ailearn_backend/internal/util"
	"ailearn_backend/pkg/kvstore"
	"context"
	"fmt"
	"strconv"
	"time"
)

// activityWindowDays is the size of the rolling window, today included.
const activityWindowDays = 7

// ActivitySummary is derived from the raw per-day log on every read.
type ActivitySummary struct {
	TodaySeconds     int64 `json:"todaySeconds"`
	Last7DaysSeconds int64 `json:"last7DaysSeconds"`
}

// ActivityService accumulates per-day learning seconds keyed by local
// calendar date and derives rolling-window summaries.
type ActivityService struct {
	Store kvstore.Store
}

func NewActivityService(store kvstore.Store) *ActivityService {
	return &ActivityService{Store: store}
}

// DateKey renders t's local calendar date as a zero-padded YYYY-MM-DD key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func activityKey(userKey, dateKey string) string {
	return "progress:" + userKey + ":activity:" + dateKey
}

// RecordActivity adds secondsElapsed to today's accumulator. Additive, so
// overlapping ticks for the same day merge instead of overwriting. Zero is a
// no-op; negative durations are rejected.
func (s *ActivityService) RecordActivity(ctx context.Context, userKey string, secondsElapsed int64) error {
	if userKey == "" || secondsElapsed < 0 {
		return util.ErrInvalidIdentifier
	}
	if secondsElapsed == 0 {
		return nil
	}
	s.Store.IncrBy(ctx, activityKey(userKey, DateKey(time.Now())), secondsElapsed)
	return nil
}

// ActivityLogFor reads the raw per-day entries of the rolling window ending
// at now. Absent days are omitted from the map.
func (s *ActivityService) ActivityLogFor(ctx context.Context, userKey string, now time.Time) map[string]string {
	log := make(map[string]string, activityWindowDays)
	for i := 0; i < activityWindowDays; i++ {
		dk := DateKey(now.AddDate(0, 0, -i))
		if v, ok := s.Store.Get(ctx, activityKey(userKey, dk)); ok {
			log[dk] = v
		}
	}
	return log
}

// ActivitySummaryFor derives the summary for a user as of now.
func (s *ActivityService) ActivitySummaryFor(ctx context.Context, userKey string, now time.Time) ActivitySummary {
	return ComputeActivitySummary(s.ActivityLogFor(ctx, userKey, now), now)
}

// ComputeActivitySummary reduces a raw activity log to today's total and the
// rolling 7-day total, both relative to now. It never fails: a nil log and
// entries that do not parse as non-negative integers count as zero.
func ComputeActivitySummary(log map[string]string, now time.Time) ActivitySummary {
	var summary ActivitySummary
	if len(log) == 0 {
		return summary
	}

	today := DateKey(now)
	for i := 0; i < activityWindowDays; i++ {
		dk := DateKey(now.AddDate(0, 0, -i))
		raw, ok := log[dk]
		if !ok {
			continue
		}
		seconds, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || seconds < 0 {
			continue
		}
		summary.Last7DaysSeconds += seconds
		if dk == today {
			summary.TodaySeconds = seconds
		}
	}
	return summary
}

// FormatDuration renders seconds as the two most significant non-zero units
// of hours, minutes and seconds. Zero or negative input renders as "0m".
func FormatDuration(totalSeconds int64) string {
	if totalSeconds <= 0 {
		return "0m"
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 && len(parts) < 2 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 && len(parts) < 2 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	out := parts[0]
	if len(parts) == 2 {
		out += " " + parts[1]
	}
	return out
}
