package service

import (
	"ailearn_backend/internal/util"
	"ailearn_backend/pkg/kvstore"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyZeroPads(t *testing.T) {
	d := time.Date(2024, 3, 5, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-03-05", DateKey(d))
}

func TestRecordActivityAccumulates(t *testing.T) {
	store := kvstore.NewMemoryStore()
	svc := NewActivityService(store)
	ctx := context.Background()

	require.NoError(t, svc.RecordActivity(ctx, "7", 60))
	require.NoError(t, svc.RecordActivity(ctx, "7", 30))

	summary := svc.ActivitySummaryFor(ctx, "7", time.Now())
	assert.Equal(t, int64(90), summary.TodaySeconds)
	assert.Equal(t, int64(90), summary.Last7DaysSeconds)
}

func TestRecordActivityValidation(t *testing.T) {
	store := kvstore.NewMemoryStore()
	svc := NewActivityService(store)
	ctx := context.Background()

	assert.ErrorIs(t, svc.RecordActivity(ctx, "", 10), util.ErrInvalidIdentifier)
	assert.ErrorIs(t, svc.RecordActivity(ctx, "7", -1), util.ErrInvalidIdentifier)

	// Zero is accepted but writes nothing.
	require.NoError(t, svc.RecordActivity(ctx, "7", 0))
	assert.Equal(t, 0, store.Len())
}

func TestComputeActivitySummaryWindow(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)
	log := map[string]string{
		"2024-01-01": "100",
		"2024-01-02": "200",
	}

	summary := ComputeActivitySummary(log, now)
	assert.Equal(t, int64(200), summary.TodaySeconds)
	assert.Equal(t, int64(300), summary.Last7DaysSeconds)
}

func TestComputeActivitySummaryExcludesOutsideWindow(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	log := map[string]string{
		"2024-01-04": "50", // 6 days back, inside the window
		"2024-01-03": "75", // 7 days back, outside
		"2024-01-10": "25",
	}

	summary := ComputeActivitySummary(log, now)
	assert.Equal(t, int64(25), summary.TodaySeconds)
	assert.Equal(t, int64(75), summary.Last7DaysSeconds)
}

func TestComputeActivitySummaryNilAndMalformed(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)

	assert.Equal(t, ActivitySummary{}, ComputeActivitySummary(nil, now))

	log := map[string]string{
		"2024-01-02": "not-a-number",
		"2024-01-01": "-5",
		"2023-12-31": "40",
	}
	summary := ComputeActivitySummary(log, now)
	assert.Equal(t, int64(0), summary.TodaySeconds)
	assert.Equal(t, int64(40), summary.Last7DaysSeconds)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "0m", FormatDuration(-5))
	assert.Equal(t, "45s", FormatDuration(45))
	assert.Equal(t, "1m", FormatDuration(60))
	assert.Equal(t, "1m 30s", FormatDuration(90))
	assert.Equal(t, "1h 2m", FormatDuration(3725)) // the 5s is dropped
	assert.Equal(t, "2h", FormatDuration(7200))
	assert.Equal(t, "1h 5s", FormatDuration(3605))
}

func TestActivityLabels(t *testing.T) {
	assert.Equal(t, "No recent activity", activityLabel(ActivitySummary{}))
	assert.Equal(t, "5m today, 1h 10m this week",
		activityLabel(ActivitySummary{TodaySeconds: 300, Last7DaysSeconds: 4200}))
}
