package service

import (
	"ailearn_backend/internal/util"
	"ailearn_backend/pkg/kvstore"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCurriculum struct {
	modules map[string][]ModuleInfo
	lessons map[string][]string
}

func (f *fakeCurriculum) ModulesForCourse(_ context.Context, courseID string) ([]ModuleInfo, error) {
	return f.modules[courseID], nil
}

func (f *fakeCurriculum) LessonIDsForModule(_ context.Context, moduleID string) ([]string, error) {
	return f.lessons[moduleID], nil
}

func newTestProgress(curriculum *fakeCurriculum) *ProgressService {
	return NewProgressService(kvstore.NewMemoryStore(), curriculum)
}

func lessonIDs(n int, prefix string) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + string(rune('a'+i))
	}
	return ids
}

func TestSaveAndReadLessonCompletion(t *testing.T) {
	svc := newTestProgress(&fakeCurriculum{})
	ctx := context.Background()

	assert.False(t, svc.IsLessonCompleted(ctx, "7", "ai-engineering", "m1", "l1"))

	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "ai-engineering", "m1", "l1", true))
	assert.True(t, svc.IsLessonCompleted(ctx, "7", "ai-engineering", "m1", "l1"))

	// Repeating the write leaves the same state.
	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "ai-engineering", "m1", "l1", true))
	assert.True(t, svc.IsLessonCompleted(ctx, "7", "ai-engineering", "m1", "l1"))

	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "ai-engineering", "m1", "l1", false))
	assert.False(t, svc.IsLessonCompleted(ctx, "7", "ai-engineering", "m1", "l1"))
}

func TestSaveLessonProgressRejectsEmptyIdentifiers(t *testing.T) {
	svc := newTestProgress(&fakeCurriculum{})
	ctx := context.Background()

	assert.ErrorIs(t, svc.SaveLessonProgress(ctx, "", "c", "m", "l", true), util.ErrInvalidIdentifier)
	assert.ErrorIs(t, svc.SaveLessonProgress(ctx, "7", "", "m", "l", true), util.ErrInvalidIdentifier)
	assert.ErrorIs(t, svc.SaveLessonProgress(ctx, "7", "c", "", "l", true), util.ErrInvalidIdentifier)
	assert.ErrorIs(t, svc.SaveLessonProgress(ctx, "7", "c", "m", "", true), util.ErrInvalidIdentifier)
}

func TestCompletionIsScopedPerUserAndLesson(t *testing.T) {
	svc := newTestProgress(&fakeCurriculum{})
	ctx := context.Background()

	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m", "l1", true))

	assert.True(t, svc.IsLessonCompleted(ctx, "7", "c", "m", "l1"))
	assert.False(t, svc.IsLessonCompleted(ctx, "8", "c", "m", "l1"))
	assert.False(t, svc.IsLessonCompleted(ctx, "7", "c", "m", "l2"))
	assert.False(t, svc.IsLessonCompleted(ctx, "7", "c", "m2", "l1"))
}

func TestModuleProgressRoundsHalfUp(t *testing.T) {
	curriculum := &fakeCurriculum{lessons: map[string][]string{
		"m1": lessonIDs(3, "l"),
	}}
	svc := newTestProgress(curriculum)
	ctx := context.Background()

	mp := svc.GetModuleProgress(ctx, "7", "c", "m1")
	assert.Equal(t, 0, mp.Progress)

	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m1", "la", true))
	mp = svc.GetModuleProgress(ctx, "7", "c", "m1")
	assert.Equal(t, 33, mp.Progress) // 1/3 = 33.33
	assert.Equal(t, 1, mp.CompletedCount)
	assert.Equal(t, 3, mp.TotalLessons)

	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m1", "lb", true))
	mp = svc.GetModuleProgress(ctx, "7", "c", "m1")
	assert.Equal(t, 67, mp.Progress) // 2/3 = 66.67

	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m1", "lc", true))
	mp = svc.GetModuleProgress(ctx, "7", "c", "m1")
	assert.Equal(t, 100, mp.Progress)
}

func TestModuleProgressHalfRoundsUp(t *testing.T) {
	curriculum := &fakeCurriculum{lessons: map[string][]string{
		"m1": lessonIDs(8, "l"),
	}}
	svc := newTestProgress(curriculum)
	ctx := context.Background()

	// 1/8 = 12.5, must round up to 13.
	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m1", "la", true))
	assert.Equal(t, 13, svc.GetModuleProgress(ctx, "7", "c", "m1").Progress)
}

func TestModuleWithNoLessonsIsZero(t *testing.T) {
	svc := newTestProgress(&fakeCurriculum{lessons: map[string][]string{}})

	mp := svc.GetModuleProgress(context.Background(), "7", "c", "empty")
	assert.Equal(t, 0, mp.Progress)
	assert.Equal(t, 0, mp.TotalLessons)
}

func TestCourseProgressAveragesModulesEqually(t *testing.T) {
	curriculum := &fakeCurriculum{
		modules: map[string][]ModuleInfo{
			"c": {
				{ID: "m1", Title: "Python", Order: 1},
				{ID: "m2", Title: "Deep Learning", Order: 2},
			},
		},
		lessons: map[string][]string{
			"m1": lessonIDs(2, "p"),
			"m2": lessonIDs(10, "d"),
		},
	}
	svc := newTestProgress(curriculum)
	ctx := context.Background()

	// Complete all of m1, none of m2: modules weigh equally regardless of
	// lesson counts, so the course is (100+0)/2 = 50.
	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m1", "pa", true))
	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m1", "pb", true))

	assert.Equal(t, 50, svc.GetCourseProgress(ctx, "7", "c"))
}

func TestCourseProgressNoModulesIsZero(t *testing.T) {
	svc := newTestProgress(&fakeCurriculum{})
	assert.Equal(t, 0, svc.GetCourseProgress(context.Background(), "7", "missing"))
}

func TestAllModuleProgressFollowsDisplayOrder(t *testing.T) {
	curriculum := &fakeCurriculum{
		modules: map[string][]ModuleInfo{
			"c": {
				{ID: "m2", Title: "Second", Order: 2},
				{ID: "m1", Title: "First", Order: 1},
			},
		},
	}
	svc := newTestProgress(curriculum)

	all := svc.GetAllModuleProgress(context.Background(), "7", "c")
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
}

func TestDashboardProgressDataKeepsStableSubjects(t *testing.T) {
	curriculum := &fakeCurriculum{
		modules: map[string][]ModuleInfo{
			"aiml-engineering": {
				{ID: "m1", Title: "Python", Order: 1},
			},
		},
		lessons: map[string][]string{"m1": lessonIDs(1, "l")},
	}
	svc := newTestProgress(curriculum)
	ctx := context.Background()

	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "aiml-engineering", "m1", "la", true))

	series := svc.GetDashboardProgressData(ctx, "7", "aiml-engineering")
	require.Len(t, series, 4)
	assert.Equal(t, SubjectProgress{Name: "Python", Progress: 100}, series[0])
	// Subjects without modules still chart at zero.
	assert.Equal(t, SubjectProgress{Name: "Machine Learning", Progress: 0}, series[1])
	assert.Equal(t, SubjectProgress{Name: "Deep Learning", Progress: 0}, series[2])
	assert.Equal(t, SubjectProgress{Name: "MLOps", Progress: 0}, series[3])
}

func TestDashboardProgressDataNilWithoutModules(t *testing.T) {
	svc := newTestProgress(&fakeCurriculum{})
	assert.Nil(t, svc.GetDashboardProgressData(context.Background(), "7", "aiml-engineering"))
}

func TestCompletionStatusSumsToExactlyHundred(t *testing.T) {
	// Three modules, one per bucket: exact thirds do not divide 100, so the
	// reconciliation has to top one bucket up.
	curriculum := &fakeCurriculum{
		modules: map[string][]ModuleInfo{
			"c": {
				{ID: "m1", Title: "A", Order: 1},
				{ID: "m2", Title: "B", Order: 2},
				{ID: "m3", Title: "C", Order: 3},
			},
		},
		lessons: map[string][]string{
			"m1": lessonIDs(1, "a"),
			"m2": lessonIDs(2, "b"),
			"m3": lessonIDs(1, "c"),
		},
	}
	svc := newTestProgress(curriculum)
	ctx := context.Background()

	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m1", "aa", true)) // completed
	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m2", "ba", true)) // in progress

	slices := svc.GetCompletionStatus(ctx, "7", "c")
	require.Len(t, slices, 3)

	total := 0
	for _, s := range slices {
		total += s.Value
	}
	assert.Equal(t, 100, total)

	// Equal remainders resolve in favor of the earlier bucket.
	assert.Equal(t, StatusCompleted, slices[0].Name)
	assert.Equal(t, 34, slices[0].Value)
	assert.Equal(t, 33, slices[1].Value)
	assert.Equal(t, 33, slices[2].Value)
}

func TestCompletionStatusColorsAndBuckets(t *testing.T) {
	curriculum := &fakeCurriculum{
		modules: map[string][]ModuleInfo{
			"c": {
				{ID: "m1", Title: "A", Order: 1},
				{ID: "m2", Title: "B", Order: 2},
			},
		},
		lessons: map[string][]string{
			"m1": lessonIDs(1, "a"),
			"m2": lessonIDs(1, "b"),
		},
	}
	svc := newTestProgress(curriculum)
	ctx := context.Background()

	require.NoError(t, svc.SaveLessonProgress(ctx, "7", "c", "m1", "aa", true))

	slices := svc.GetCompletionStatus(ctx, "7", "c")
	require.Len(t, slices, 3)
	assert.Equal(t, StatusSlice{Name: StatusCompleted, Value: 50, Color: "#10b981"}, slices[0])
	assert.Equal(t, StatusSlice{Name: StatusInProgress, Value: 0, Color: "#3b82f6"}, slices[1])
	assert.Equal(t, StatusSlice{Name: StatusNotStarted, Value: 50, Color: "#6b7280"}, slices[2])
}

func TestCompletionStatusNilWithoutModules(t *testing.T) {
	svc := newTestProgress(&fakeCurriculum{})
	assert.Nil(t, svc.GetCompletionStatus(context.Background(), "7", "c"))
}

func TestApportion(t *testing.T) {
	assert.Equal(t, []int{34, 33, 33}, apportion([]int{1, 1, 1}, 3))
	assert.Equal(t, []int{100, 0, 0}, apportion([]int{1, 0, 0}, 1))
	assert.Equal(t, []int{0, 0, 100}, apportion([]int{0, 0, 7}, 7))
	assert.Equal(t, []int{29, 57, 14}, apportion([]int{2, 4, 1}, 7))
}
