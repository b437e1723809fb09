package service

import (
	"ailearn_backend/internal/model"
	"ailearn_backend/internal/repository"
	"ailearn_backend/internal/util"
	"ailearn_backend/pkg/logger"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentService owns the curriculum: courses, modules, lessons and quizzes.
// It also backs the progress aggregator's curriculum lookups.
type ContentService struct {
	CourseRepo *repository.CourseRepository
	ModuleRepo *repository.ModuleRepository
	LessonRepo *repository.LessonRepository
	QuizRepo   *repository.QuizRepository
	Storage    *StorageService
}

func NewContentService(
	courseRepo *repository.CourseRepository,
	moduleRepo *repository.ModuleRepository,
	lessonRepo *repository.LessonRepository,
	quizRepo *repository.QuizRepository,
	storage *StorageService,
) *ContentService {
	return &ContentService{
		CourseRepo: courseRepo,
		ModuleRepo: moduleRepo,
		LessonRepo: lessonRepo,
		QuizRepo:   quizRepo,
		Storage:    storage,
	}
}

// ModulesForCourse implements CurriculumResolver.
func (s *ContentService) ModulesForCourse(ctx context.Context, courseID string) ([]ModuleInfo, error) {
	modules, err := s.ModuleRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}
	infos := make([]ModuleInfo, 0, len(modules))
	for _, m := range modules {
		infos = append(infos, ModuleInfo{ID: m.ID, Title: m.Title, Order: m.Order})
	}
	return infos, nil
}

// LessonIDsForModule implements CurriculumResolver.
func (s *ContentService) LessonIDsForModule(ctx context.Context, moduleID string) ([]string, error) {
	lessons, err := s.LessonRepo.FindByModule(moduleID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(lessons))
	for _, l := range lessons {
		ids = append(ids, l.ID)
	}
	return ids, nil
}

func (s *ContentService) GetCourses() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *ContentService) GetCourse(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *ContentService) CreateCourse(course *model.Course) error {
	return s.CourseRepo.Create(course)
}

func (s *ContentService) GetModules(courseID string) ([]model.CourseModule, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}
	return s.ModuleRepo.FindByCourse(courseID)
}

func (s *ContentService) GetModule(id string) (*model.CourseModule, error) {
	module, err := s.ModuleRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrModuleNotFound
	}
	return module, err
}

func (s *ContentService) CreateModule(module *model.CourseModule) error {
	if _, err := s.GetCourse(module.CourseID); err != nil {
		return err
	}
	return s.ModuleRepo.Create(module)
}

func (s *ContentService) UpdateModule(module *model.CourseModule) error {
	return s.ModuleRepo.Update(module)
}

func (s *ContentService) DeleteModule(id string) error {
	if _, err := s.GetModule(id); err != nil {
		return err
	}
	return s.ModuleRepo.Delete(id)
}

func (s *ContentService) GetLessons(moduleID string) ([]model.Lesson, error) {
	if _, err := s.GetModule(moduleID); err != nil {
		return nil, err
	}
	return s.LessonRepo.FindByModule(moduleID)
}

func (s *ContentService) GetLesson(id string) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	return lesson, err
}

func (s *ContentService) CreateLesson(lesson *model.Lesson) error {
	if _, err := s.GetModule(lesson.ModuleID); err != nil {
		return err
	}
	return s.LessonRepo.Create(lesson)
}

func (s *ContentService) UpdateLesson(lesson *model.Lesson) error {
	return s.LessonRepo.Update(lesson)
}

func (s *ContentService) DeleteLesson(id string) error {
	if _, err := s.GetLesson(id); err != nil {
		return err
	}
	return s.LessonRepo.Delete(id)
}

// AttachLessonVideo stores an uploaded video for a lesson and records its
// probed duration. Probe failures are tolerated; the upload still succeeds
// with a zero duration.
func (s *ContentService) AttachLessonVideo(ctx context.Context, lessonID, localPath, filename string) (*model.Lesson, error) {
	lesson, err := s.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}

	duration := 0.0
	if info, err := util.GetVideoInfo(localPath); err != nil {
		logger.Log.Warn("video probe failed",
			zap.String("lesson", lessonID), zap.Error(err))
	} else {
		duration = info.Duration
	}

	url, err := s.Storage.SaveVideo(ctx, localPath, filename)
	if err != nil {
		return nil, err
	}

	lesson.VideoURL = url
	lesson.VideoDuration = duration
	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// GetQuiz loads the quiz stored under the subject/module pair.
func (s *ContentService) GetQuiz(subjectID, moduleID string) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(model.QuizID(subjectID, moduleID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

// SaveQuiz upserts the quiz for its subject/module pair.
func (s *ContentService) SaveQuiz(quiz *model.Quiz) error {
	if quiz.SubjectID == "" || quiz.ModuleID == "" {
		return util.ErrInvalidIdentifier
	}
	quiz.ID = model.QuizID(quiz.SubjectID, quiz.ModuleID)
	return s.QuizRepo.Save(quiz)
}

func (s *ContentService) DeleteQuiz(subjectID, moduleID string) error {
	return s.QuizRepo.Delete(model.QuizID(subjectID, moduleID))
}
