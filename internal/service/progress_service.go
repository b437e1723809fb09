package service

import (
	"ailearn_backend/internal/util"
	"ailearn_backend/pkg/kvstore"
	"ailearn_backend/pkg/logger"
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ModuleInfo is the slice of curriculum data the aggregator needs: identity,
// display title and ordering.
type ModuleInfo struct {
	ID    string
	Title string
	Order int
}

// CurriculumResolver supplies module and lesson listings for a course. The
// content service implements it against the database; tests use a fake.
type CurriculumResolver interface {
	ModulesForCourse(ctx context.Context, courseID string) ([]ModuleInfo, error)
	LessonIDsForModule(ctx context.Context, moduleID string) ([]string, error)
}

// ModuleProgress is derived on read and never persisted.
type ModuleProgress struct {
	CourseID       string `json:"courseId"`
	ModuleID       string `json:"moduleId"`
	Name           string `json:"name"`
	CompletedCount int    `json:"completedCount"`
	TotalLessons   int    `json:"totalLessons"`
	Progress       int    `json:"progress"` // 0..100
}

// SubjectProgress is one bar of the dashboard progress chart.
type SubjectProgress struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// StatusSlice is one slice of the completion pie chart. Values are
// percentages of the course's module count and always sum to 100.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

const (
	completionValueDone    = "1"
	completionValueNotDone = "0"

	StatusCompleted  = "Completed"
	StatusInProgress = "In Progress"
	StatusNotStarted = "Not Started"

	ColorCompleted  = "#10b981"
	ColorInProgress = "#3b82f6"
	ColorNotStarted = "#6b7280"
)

// dashboardSubjects fixes the chart categories per course so dashboards
// always render the same bars, with zeros where no progress exists yet.
var dashboardSubjects = map[string][]string{
	"ai-engineering":   {"Python", "ML", "Deep Learning", "Generative AI"},
	"aiml-engineering": {"Python", "Machine Learning", "Deep Learning", "MLOps"},
}

// ProgressService records per-lesson completion and derives module and
// course level percentages on read. All read paths degrade to zero values;
// only write paths reject bad input.
type ProgressService struct {
	Store      kvstore.Store
	Curriculum CurriculumResolver
}

func NewProgressService(store kvstore.Store, curriculum CurriculumResolver) *ProgressService {
	return &ProgressService{Store: store, Curriculum: curriculum}
}

func completionKey(userKey, courseID, moduleID, lessonID string) string {
	return "progress:" + userKey + ":completion:" + courseID + ":" + moduleID + ":" + lessonID
}

// IsLessonCompleted reports whether the lesson has been marked complete.
// Absent records read as not completed, never as an error.
func (s *ProgressService) IsLessonCompleted(ctx context.Context, userKey, courseID, moduleID, lessonID string) bool {
	v, ok := s.Store.Get(ctx, completionKey(userKey, courseID, moduleID, lessonID))
	return ok && v == completionValueDone
}

// SaveLessonProgress durably records a completion flag. Idempotent: writing
// the same value twice leaves the same observable state.
func (s *ProgressService) SaveLessonProgress(ctx context.Context, userKey, courseID, moduleID, lessonID string, completed bool) error {
	if userKey == "" || courseID == "" || moduleID == "" || lessonID == "" {
		return util.ErrInvalidIdentifier
	}

	value := completionValueNotDone
	if completed {
		value = completionValueDone
	}
	s.Store.Set(ctx, completionKey(userKey, courseID, moduleID, lessonID), value)
	return nil
}

// GetModuleProgress counts completions across the module's lesson list and
// derives the rounded percentage. A module with no known lessons is 0%.
func (s *ProgressService) GetModuleProgress(ctx context.Context, userKey, courseID, moduleID string) ModuleProgress {
	mp := ModuleProgress{CourseID: courseID, ModuleID: moduleID}

	lessonIDs, err := s.Curriculum.LessonIDsForModule(ctx, moduleID)
	if err != nil {
		logger.Log.Debug("lesson lookup failed, reporting zero progress",
			zap.String("module", moduleID), zap.Error(err))
		return mp
	}

	mp.TotalLessons = len(lessonIDs)
	for _, lessonID := range lessonIDs {
		if s.IsLessonCompleted(ctx, userKey, courseID, moduleID, lessonID) {
			mp.CompletedCount++
		}
	}
	mp.Progress = roundPercent(mp.CompletedCount, mp.TotalLessons)
	return mp
}

// GetAllModuleProgress returns one entry per module of the course in display
// order.
func (s *ProgressService) GetAllModuleProgress(ctx context.Context, userKey, courseID string) []ModuleProgress {
	modules, err := s.Curriculum.ModulesForCourse(ctx, courseID)
	if err != nil {
		logger.Log.Debug("module lookup failed, reporting no progress",
			zap.String("course", courseID), zap.Error(err))
		return nil
	}

	sort.SliceStable(modules, func(i, j int) bool { return modules[i].Order < modules[j].Order })

	result := make([]ModuleProgress, 0, len(modules))
	for _, m := range modules {
		mp := s.GetModuleProgress(ctx, userKey, courseID, m.ID)
		mp.Name = m.Title
		result = append(result, mp)
	}
	return result
}

// GetCourseProgress averages module percentages with equal weight per module
// and rounds only the final result. A course with no modules is 0%.
func (s *ProgressService) GetCourseProgress(ctx context.Context, userKey, courseID string) int {
	modules := s.GetAllModuleProgress(ctx, userKey, courseID)
	if len(modules) == 0 {
		return 0
	}

	sum := 0
	for _, mp := range modules {
		sum += mp.Progress
	}
	return roundHalfUp(float64(sum) / float64(len(modules)))
}

// GetDashboardProgressData maps the course's fixed chart subjects to their
// current progress, emitting zeros for subjects without matching modules so
// the category set stays stable. Returns nil when the course has no modules
// at all; the dashboard adapter substitutes its fallback series then.
func (s *ProgressService) GetDashboardProgressData(ctx context.Context, userKey, courseID string) []SubjectProgress {
	modules := s.GetAllModuleProgress(ctx, userKey, courseID)
	if len(modules) == 0 {
		return nil
	}

	subjects, ok := dashboardSubjects[courseID]
	if !ok {
		// Courses outside the stock curricula chart every module.
		series := make([]SubjectProgress, 0, len(modules))
		for _, mp := range modules {
			series = append(series, SubjectProgress{Name: mp.Name, Progress: mp.Progress})
		}
		return series
	}

	series := make([]SubjectProgress, 0, len(subjects))
	for _, subject := range subjects {
		entry := SubjectProgress{Name: subject}
		for _, mp := range modules {
			if strings.EqualFold(mp.Name, subject) {
				entry.Progress = mp.Progress
				break
			}
		}
		series = append(series, entry)
	}
	return series
}

// GetCompletionStatus partitions the course's modules into Completed /
// In Progress / Not Started and expresses each bucket as a percentage of the
// module count. Rounding is reconciled by the largest-remainder method so the
// three slices always sum to exactly 100. Returns nil when the course has no
// modules.
func (s *ProgressService) GetCompletionStatus(ctx context.Context, userKey, courseID string) []StatusSlice {
	modules := s.GetAllModuleProgress(ctx, userKey, courseID)
	if len(modules) == 0 {
		return nil
	}

	var completed, inProgress, notStarted int
	for _, mp := range modules {
		switch {
		case mp.Progress == 100:
			completed++
		case mp.Progress > 0:
			inProgress++
		default:
			notStarted++
		}
	}

	values := apportion([]int{completed, inProgress, notStarted}, len(modules))
	return []StatusSlice{
		{Name: StatusCompleted, Value: values[0], Color: ColorCompleted},
		{Name: StatusInProgress, Value: values[1], Color: ColorInProgress},
		{Name: StatusNotStarted, Value: values[2], Color: ColorNotStarted},
	}
}

// roundPercent derives round-half-up(100*completed/total), clamped to 0..100.
func roundPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := roundHalfUp(100 * float64(completed) / float64(total))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// apportion distributes 100 percentage points across counts out of total
// using the largest-remainder method. Ties go to the earlier bucket, which
// keeps the result deterministic.
func apportion(counts []int, total int) []int {
	values := make([]int, len(counts))
	remainders := make([]int, len(counts))
	assigned := 0
	for i, c := range counts {
		values[i] = (100 * c) / total
		remainders[i] = (100 * c) % total
		assigned += values[i]
	}

	for leftover := 100 - assigned; leftover > 0; leftover-- {
		best := 0
		for i := 1; i < len(remainders); i++ {
			if remainders[i] > remainders[best] {
				best = i
			}
		}
		values[best]++
		remainders[best] = -1
	}
	return values
}
