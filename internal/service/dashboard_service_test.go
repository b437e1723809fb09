package service

import (
	"ailearn_backend/pkg/kvstore"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(curriculum *fakeCurriculum) *DashboardService {
	store := kvstore.NewMemoryStore()
	return NewDashboardService(
		NewProgressService(store, curriculum),
		NewActivityService(store),
	)
}

func TestDashboardFallsBackWithoutCurriculum(t *testing.T) {
	svc := newTestDashboard(&fakeCurriculum{})

	dash := svc.GetCourseDashboard(context.Background(), "7", "ai-engineering")

	assert.Equal(t, 0, dash.OverallProgress)
	assert.Equal(t, 0, dash.ModulesCompleted)

	require.Len(t, dash.ProgressData, 4)
	assert.Equal(t, "Python", dash.ProgressData[0].Name)
	assert.Equal(t, "Generative AI", dash.ProgressData[3].Name)
	for _, bar := range dash.ProgressData {
		assert.Equal(t, 0, bar.Progress)
	}

	require.Len(t, dash.CompletionData, 3)
	assert.Equal(t, 0, dash.CompletionData[0].Value)
	assert.Equal(t, 0, dash.CompletionData[1].Value)
	assert.Equal(t, 100, dash.CompletionData[2].Value)
}

func TestDashboardComposesProgressAndActivity(t *testing.T) {
	curriculum := &fakeCurriculum{
		modules: map[string][]ModuleInfo{
			"aiml-engineering": {
				{ID: "m1", Title: "Python", Order: 1},
				{ID: "m2", Title: "MLOps", Order: 2},
			},
		},
		lessons: map[string][]string{
			"m1": {"l1"},
			"m2": {"l2", "l3"},
		},
	}
	svc := newTestDashboard(curriculum)
	ctx := context.Background()

	require.NoError(t, svc.Progress.SaveLessonProgress(ctx, "7", "aiml-engineering", "m1", "l1", true))
	require.NoError(t, svc.Activity.RecordActivity(ctx, "7", 3725))

	dash := svc.GetCourseDashboard(ctx, "7", "aiml-engineering")

	assert.Equal(t, 50, dash.OverallProgress)
	assert.Equal(t, 1, dash.ModulesCompleted)
	assert.Equal(t, 2, dash.TotalModules)
	assert.Equal(t, int64(3725), dash.Activity.TodaySeconds)
	assert.Equal(t, "1h 2m", dash.ActivityToday)
	assert.Equal(t, "1h 2m", dash.ActivityWeek)
	assert.NotEmpty(t, dash.Quote.Text)

	require.Len(t, dash.ProgressData, 4)
	assert.Equal(t, SubjectProgress{Name: "Python", Progress: 100}, dash.ProgressData[0])
	assert.Equal(t, SubjectProgress{Name: "MLOps", Progress: 0}, dash.ProgressData[3])
}

func TestQuoteOfTheDayIsDeterministic(t *testing.T) {
	day := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)
	assert.Equal(t, QuoteOfTheDay(day), QuoteOfTheDay(day.Add(5*time.Hour)))
}
