package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/danielsolis/portfolio-site-backend/errs"
	"github.com/danielsolis/portfolio-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindByCategory returns a category's projects in insertion order
func (r *ProjectRepo) FindByCategory(categoryID uint) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("category_id = ?", categoryID).Order("id").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByTitle returns the project with the given title, or NotFound
func (r *ProjectRepo) FindByTitle(title string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("title = ?", title).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database. A duplicate title surfaces as
// a conflict, never as a raw driver error.
func (r *ProjectRepo) Add(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewAlreadyExists("project title")
		}
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// Update saves all fields of an existing project in place
func (r *ProjectRepo) Update(project *models.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewAlreadyExists("project title")
		}
		return errs.NewDatabaseError("update", "project", err)
	}
	return nil
}

// Delete removes a project by id. Deleting an absent id reports NotFound
// rather than silent success.
func (r *ProjectRepo) Delete(id uint) error {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return errs.NewDatabaseError("delete", "project", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
