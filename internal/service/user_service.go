package service

import (
	"ailearn_backend/internal/model"
	"ailearn_backend/internal/repository"
	"ailearn_backend/internal/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// AdminUserView is one row of the admin user list: the account plus its
// recent learning activity.
type AdminUserView struct {
	model.User
	TodaySeconds     int64  `json:"todaySeconds"`
	Last7DaysSeconds int64  `json:"last7DaysSeconds"`
	ActivityLabel    string `json:"activityLabel"`
}

// PlatformStats are the headline counters of the admin dashboard.
type PlatformStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalCourses  int64 `json:"totalCourses"`
	TotalModules  int64 `json:"totalModules"`
	TotalProjects int64 `json:"totalProjects"`
}

type UserService struct {
	UserRepo    *repository.UserRepository
	CourseRepo  *repository.CourseRepository
	ModuleRepo  *repository.ModuleRepository
	ProjectRepo *repository.ProjectRepository
	Activity    *ActivityService
}

func NewUserService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	moduleRepo *repository.ModuleRepository,
	projectRepo *repository.ProjectRepository,
	activity *ActivityService,
) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		CourseRepo:  courseRepo,
		ModuleRepo:  moduleRepo,
		ProjectRepo: projectRepo,
		Activity:    activity,
	}
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) UpdateProfile(id uint, name, avatar string) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}
	return user, s.UserRepo.Update(user)
}

func (s *UserService) Touch(id uint) error {
	return s.UserRepo.UpdateLastSeen(id)
}

// AwardXP adds experience and recomputes the level, one level per 1000 XP.
func (s *UserService) AwardXP(id uint, delta int) error {
	if delta <= 0 {
		return nil
	}
	if err := s.UserRepo.UpdateXP(id, delta); err != nil {
		return err
	}
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}
	level := user.XP/1000 + 1
	if level != user.Level {
		user.Level = level
		return s.UserRepo.Update(user)
	}
	return nil
}

// ListUsers pages through accounts for the admin console, each enriched with
// the user's activity summary from the progress store.
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int, search string) ([]AdminUserView, int64, error) {
	users, total, err := s.UserRepo.FindPage(page, pageSize, search)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	views := make([]AdminUserView, 0, len(users))
	for i := range users {
		summary := s.Activity.ActivitySummaryFor(ctx, users[i].ProgressKey(), now)
		views = append(views, AdminUserView{
			User:             users[i],
			TodaySeconds:     summary.TodaySeconds,
			Last7DaysSeconds: summary.Last7DaysSeconds,
			ActivityLabel:    activityLabel(summary),
		})
	}
	return views, total, nil
}

// SetDisabled flips the account's disabled flag. Admins cannot disable
// themselves; the controller enforces that.
func (s *UserService) SetDisabled(id uint, disabled bool) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	user.Disabled = disabled
	return user, s.UserRepo.Update(user)
}

func (s *UserService) SetRole(id uint, role model.UserRole) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	return user, s.UserRepo.Update(user)
}

func (s *UserService) GetStats() (*PlatformStats, error) {
	stats := &PlatformStats{}
	var err error
	if stats.TotalUsers, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalCourses, err = s.CourseRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalModules, err = s.ModuleRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalProjects, err = s.ProjectRepo.Count(); err != nil {
		return nil, err
	}
	return stats, nil
}

func activityLabel(summary ActivitySummary) string {
	if summary.Last7DaysSeconds == 0 {
		return "No recent activity"
	}
	return FormatDuration(summary.TodaySeconds) + " today, " +
		FormatDuration(summary.Last7DaysSeconds) + " this week"
}
