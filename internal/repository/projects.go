package repository

import (
	"errors"
	"strings"

	"github.com/collablab-dev/collablab/internal/models"
	"gorm.io/gorm"
)

// ProjectInput is the client-supplied part of a project. The owner id is
// always stamped server-side from the authenticated user.
type ProjectInput struct {
	Title                string
	Description          string
	SkillsRequired       []string
	ExpectedContribution string
	Duration             string
	Tags                 []string
	Visibility           string
}

// ProjectFilter narrows the public listing. Query matches title, description
// and tags case-insensitively; Tag requires exact membership. Both combine.
type ProjectFilter struct {
	Query string
	Tag   string
}

type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func (s *ProjectStore) Create(ownerID uint, in ProjectInput) (*models.Project, error) {
	if in.Visibility == "" {
		in.Visibility = models.VisibilityPublic
	}

	project := models.Project{
		OwnerID:              ownerID,
		Title:                in.Title,
		Description:          in.Description,
		SkillsRequired:       in.SkillsRequired,
		ExpectedContribution: in.ExpectedContribution,
		Duration:             in.Duration,
		Tags:                 in.Tags,
		Visibility:           in.Visibility,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// List returns public projects, newest first. Text and tag matching runs here
// rather than in SQL so the semantics over the JSON-encoded tag slices are
// the same on every database backend.
func (s *ProjectStore) List(filter ProjectFilter) ([]models.Project, error) {
	var projects []models.Project

	err := s.db.
		Where("visibility = ?", models.VisibilityPublic).
		Order("created_at DESC").
		Find(&projects).Error

	if err != nil {
		return nil, err
	}

	if filter.Query == "" && filter.Tag == "" {
		return projects, nil
	}

	matched := make([]models.Project, 0, len(projects))

	for _, p := range projects {
		if matchesFilter(p, filter) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

func matchesFilter(p models.Project, filter ProjectFilter) bool {
	if filter.Tag != "" {
		found := false
		for _, tag := range p.Tags {
			if tag == filter.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!tagsContain(p.Tags, q) {
			return false
		}
	}

	return true
}

func tagsContain(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Get returns a project regardless of visibility: direct links to private
// projects are deliberately allowed even though listings hide them.
func (s *ProjectStore) Get(id uint) (*models.Project, error) {
	var project models.Project

	err := s.db.First(&project, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &project, nil
}

// Update replaces every client-supplied field, not just the changed ones.
func (s *ProjectStore) Update(id, ownerID uint, in ProjectInput) (*models.Project, error) {
	project, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if project.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	if in.Visibility == "" {
		in.Visibility = models.VisibilityPublic
	}

	project.Title = in.Title
	project.Description = in.Description
	project.SkillsRequired = in.SkillsRequired
	project.ExpectedContribution = in.ExpectedContribution
	project.Duration = in.Duration
	project.Tags = in.Tags
	project.Visibility = in.Visibility

	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes the project together with every saved-project and
// collaboration-request row that references it. The cascade runs in one
// transaction; the collections have no foreign keys between them.
func (s *ProjectStore) Delete(id, ownerID uint) error {
	project, err := s.Get(id)

	if err != nil {
		return err
	}

	if project.OwnerID != ownerID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(project).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.SavedProject{}).Error; err != nil {
			return err
		}

		return tx.Where("project_id = ?", id).Delete(&models.CollaborationRequest{}).Error
	})
}
