package service

import (
	"ailearn_backend/internal/model"
	"ailearn_backend/internal/repository"
	"ailearn_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// xpPerProjectShare is awarded when a student publishes a project.
const xpPerProjectShare = 50

type ProjectService struct {
	ProjectRepo *repository.ProjectRepository
	Users       *UserService
}

func NewProjectService(projectRepo *repository.ProjectRepository, users *UserService) *ProjectService {
	return &ProjectService{ProjectRepo: projectRepo, Users: users}
}

func (s *ProjectService) Create(project *model.Project) error {
	if err := s.ProjectRepo.Create(project); err != nil {
		return err
	}
	if project.IsPublic {
		return s.Users.AwardXP(project.UserID, xpPerProjectShare)
	}
	return nil
}

func (s *ProjectService) Get(id string) (*model.Project, error) {
	project, err := s.ProjectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProjectNotFound
	}
	return project, err
}

func (s *ProjectService) ListPublic() ([]model.Project, error) {
	return s.ProjectRepo.FindPublic()
}

func (s *ProjectService) ListByUser(userID uint) ([]model.Project, error) {
	return s.ProjectRepo.FindByUser(userID)
}

// Update applies changes to a project the caller owns. Admins may edit any
// project.
func (s *ProjectService) Update(project *model.Project, callerID uint, callerRole model.UserRole) error {
	existing, err := s.Get(project.ID)
	if err != nil {
		return err
	}
	if existing.UserID != callerID && callerRole != model.Admin {
		return util.ErrPermissionDenied
	}
	project.UserID = existing.UserID
	return s.ProjectRepo.Update(project)
}

func (s *ProjectService) Delete(id string, callerID uint, callerRole model.UserRole) error {
	existing, err := s.Get(id)
	if err != nil {
		return err
	}
	if existing.UserID != callerID && callerRole != model.Admin {
		return util.ErrPermissionDenied
	}
	return s.ProjectRepo.Delete(id)
}

func (s *ProjectService) Upvote(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.ProjectRepo.Upvote(id)
}
