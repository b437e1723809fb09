package service

import (
	"context"
	"time"
)

// Quote is the daily motivational line shown on the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var dailyQuotes = []Quote{
	{"The best way to predict the future is to invent it.", "Alan Kay"},
	{"Learning never exhausts the mind.", "Leonardo da Vinci"},
	{"What I cannot create, I do not understand.", "Richard Feynman"},
	{"An investment in knowledge pays the best interest.", "Benjamin Franklin"},
	{"Simplicity is the soul of efficiency.", "Austin Freeman"},
	{"Programs must be written for people to read.", "Harold Abelson"},
	{"The only way to learn a new programming language is by writing programs in it.", "Dennis Ritchie"},
}

// CourseDashboard bundles everything the course dashboard page renders in a
// single response.
type CourseDashboard struct {
	CourseID         string            `json:"courseId"`
	OverallProgress  int               `json:"overallProgress"`
	ModulesCompleted int               `json:"modulesCompleted"`
	TotalModules     int               `json:"totalModules"`
	ProgressData     []SubjectProgress `json:"progressData"`
	CompletionData   []StatusSlice     `json:"completionData"`
	Activity         ActivitySummary   `json:"activity"`
	ActivityToday    string            `json:"activityToday"`
	ActivityWeek     string            `json:"activityWeek"`
	Quote            Quote             `json:"quote"`
}

// DashboardService adapts progress and activity reads into chart-ready
// payloads. When a course has no curriculum data at all it substitutes fixed
// fallback series so the charts still render.
type DashboardService struct {
	Progress *ProgressService
	Activity *ActivityService
}

func NewDashboardService(progress *ProgressService, activity *ActivityService) *DashboardService {
	return &DashboardService{Progress: progress, Activity: activity}
}

// FallbackProgressSeries is the bar chart shown before any curriculum data
// exists: the course's stock subjects, all at zero.
func FallbackProgressSeries(courseID string) []SubjectProgress {
	subjects, ok := dashboardSubjects[courseID]
	if !ok {
		subjects = dashboardSubjects["aiml-engineering"]
	}
	series := make([]SubjectProgress, 0, len(subjects))
	for _, s := range subjects {
		series = append(series, SubjectProgress{Name: s})
	}
	return series
}

// FallbackCompletionSeries is the pie chart shown before any curriculum data
// exists: everything not started.
func FallbackCompletionSeries() []StatusSlice {
	return []StatusSlice{
		{Name: StatusCompleted, Value: 0, Color: ColorCompleted},
		{Name: StatusInProgress, Value: 0, Color: ColorInProgress},
		{Name: StatusNotStarted, Value: 100, Color: ColorNotStarted},
	}
}

// QuoteOfTheDay rotates through the quote list by calendar day, so every
// user sees the same quote on the same date.
func QuoteOfTheDay(now time.Time) Quote {
	return dailyQuotes[now.YearDay()%len(dailyQuotes)]
}

// GetCourseDashboard assembles the dashboard for one course.
func (s *DashboardService) GetCourseDashboard(ctx context.Context, userKey, courseID string) *CourseDashboard {
	now := time.Now()
	modules := s.Progress.GetAllModuleProgress(ctx, userKey, courseID)

	dash := &CourseDashboard{
		CourseID:        courseID,
		OverallProgress: s.Progress.GetCourseProgress(ctx, userKey, courseID),
		TotalModules:    len(modules),
		Activity:        s.Activity.ActivitySummaryFor(ctx, userKey, now),
		Quote:           QuoteOfTheDay(now),
	}
	for _, mp := range modules {
		if mp.Progress == 100 {
			dash.ModulesCompleted++
		}
	}

	dash.ActivityToday = FormatDuration(dash.Activity.TodaySeconds)
	dash.ActivityWeek = FormatDuration(dash.Activity.Last7DaysSeconds)

	if dash.ProgressData = s.Progress.GetDashboardProgressData(ctx, userKey, courseID); dash.ProgressData == nil {
		dash.ProgressData = FallbackProgressSeries(courseID)
	}
	if dash.CompletionData = s.Progress.GetCompletionStatus(ctx, userKey, courseID); dash.CompletionData == nil {
		dash.CompletionData = FallbackCompletionSeries()
	}
	return dash
}
