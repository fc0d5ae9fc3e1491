// Package project holds the business operations on projects. It forwards to
// the data access layer and turns "no such row" outcomes into NotFoundError.
package project

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/obra/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	FetchAllProjects(ctx context.Context) ([]models.Project, error)
	FetchProjectByID(ctx context.Context, id int) (models.Project, error)
	FetchCategories(ctx context.Context) ([]models.Category, error)

	// Write operations
	AddProject(ctx context.Context, project *models.Project) (*models.Project, error)
	ModifyProjectDetails(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id int) error

	// Child collections
	AddMaterial(ctx context.Context, material *models.Material) (*models.Material, error)
	AddStep(ctx context.Context, step *models.Step) (*models.Step, error)
	AddCategory(ctx context.Context, name string) (*models.Category, error)
	AssignCategory(ctx context.Context, projectID, categoryID int) error
}

// Dao defines the data access methods needed by the project service.
// *database.ProjectDao satisfies it.
type Dao interface {
	FetchByID(ctx context.Context, id int) (models.Project, bool, error)
	FetchAll(ctx context.Context) ([]models.Project, error)
	Insert(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)

	AddMaterial(ctx context.Context, material *models.Material) (*models.Material, error)
	AddStep(ctx context.Context, step *models.Step) (*models.Step, error)
	AddCategory(ctx context.Context, name string) (*models.Category, error)
	FetchAllCategories(ctx context.Context) ([]models.Category, error)
	AssignCategory(ctx context.Context, projectID, categoryID int) (bool, error)
}

type service struct {
	dao Dao
}

// NewService creates a new project service
func NewService(dao Dao) Service {
	return &service{dao: dao}
}

// AddProject stores a new project. Field validation is left to the store.
func (s *service) AddProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	return s.dao.Insert(ctx, project)
}

func (s *service) FetchAllProjects(ctx context.Context) ([]models.Project, error) {
	return s.dao.FetchAll(ctx)
}

// FetchProjectByID returns the full aggregate or a *NotFoundError
func (s *service) FetchProjectByID(ctx context.Context, id int) (models.Project, error) {
	project, found, err := s.dao.FetchByID(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	if !found {
		return models.Project{}, notFound(id)
	}
	return project, nil
}

// ModifyProjectDetails overwrites the scalar fields of an existing project
func (s *service) ModifyProjectDetails(ctx context.Context, project *models.Project) error {
	ok, err := s.dao.Update(ctx, project)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(project.ID)
	}
	return nil
}

func (s *service) DeleteProject(ctx context.Context, id int) error {
	ok, err := s.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(id)
	}
	return nil
}

func (s *service) AddMaterial(ctx context.Context, material *models.Material) (*models.Material, error) {
	if err := s.requireProject(ctx, material.ProjectID); err != nil {
		return nil, err
	}
	return s.dao.AddMaterial(ctx, material)
}

func (s *service) AddStep(ctx context.Context, step *models.Step) (*models.Step, error) {
	if err := s.requireProject(ctx, step.ProjectID); err != nil {
		return nil, err
	}
	return s.dao.AddStep(ctx, step)
}

func (s *service) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	return s.dao.AddCategory(ctx, name)
}

func (s *service) FetchCategories(ctx context.Context) ([]models.Category, error) {
	return s.dao.FetchAllCategories(ctx)
}

// AssignCategory links a category to a project. Assigning a category the
// project already has is not an error.
func (s *service) AssignCategory(ctx context.Context, projectID, categoryID int) error {
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.dao.AssignCategory(ctx, projectID, categoryID); err != nil {
		return fmt.Errorf("failed to assign category %d: %w", categoryID, err)
	}
	return nil
}

// requireProject checks existence up front so a missing project is reported
// as NotFoundError instead of a store-specific foreign key failure
func (s *service) requireProject(ctx context.Context, id int) error {
	_, err := s.FetchProjectByID(ctx, id)
	return err
}
