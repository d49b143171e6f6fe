package repository

import (
	"errors"
	"io"

	"github.com/collablab-dev/collablab/internal/documents"
	"github.com/collablab-dev/collablab/internal/models"
	"gorm.io/gorm"
)

// RequestStore owns collaboration requests and their uploaded documents.
// Every operation except Apply is scoped to the parent project's owner.
type RequestStore struct {
	db   *gorm.DB
	docs *documents.Store
}

func NewRequestStore(db *gorm.DB, docs *documents.Store) *RequestStore {
	return &RequestStore{db: db, docs: docs}
}

// Apply submits an application to a public project. Private and missing
// projects are indistinguishable to the applicant.
func (s *RequestStore) Apply(projectID, applicantID uint, message, portfolioURL, filename string, document io.Reader) (*models.CollaborationRequest, error) {
	var project models.Project

	err := s.db.First(&project, projectID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if project.Visibility == models.VisibilityPrivate {
		return nil, ErrNotFound
	}

	path, err := s.docs.Save(filename, document)

	if err != nil {
		return nil, err
	}

	request := models.CollaborationRequest{
		ProjectID:    projectID,
		ApplicantID:  applicantID,
		Message:      message,
		PortfolioURL: portfolioURL,
		DocumentPath: path,
		Status:       models.StatusPending,
	}

	if err := s.db.Create(&request).Error; err != nil {
		// Do not leave the upload orphaned on disk.
		s.docs.Remove(path)
		return nil, err
	}

	return &request, nil
}

// ListForProject returns a project's applications, newest first, to the
// project owner only.
func (s *RequestStore) ListForProject(projectID, ownerID uint) ([]models.CollaborationRequest, error) {
	if err := s.checkProjectOwner(projectID, ownerID); err != nil {
		return nil, err
	}

	var requests []models.CollaborationRequest

	err := s.db.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}

// Document returns the stored path of an application's upload after checking
// that the requester owns the parent project.
func (s *RequestStore) Document(requestID, ownerID uint) (string, error) {
	request, err := s.getOwned(requestID, ownerID)

	if err != nil {
		return "", err
	}

	if !s.docs.Exists(request.DocumentPath) {
		return "", ErrNotFound
	}

	return request.DocumentPath, nil
}

// SetStatus transitions an application. Any transition between recognized
// statuses is allowed, including out of a terminal state.
func (s *RequestStore) SetStatus(requestID, ownerID uint, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	request, err := s.getOwned(requestID, ownerID)

	if err != nil {
		return err
	}

	return s.db.Model(request).Update("status", status).Error
}

func (s *RequestStore) getOwned(requestID, ownerID uint) (*models.CollaborationRequest, error) {
	var request models.CollaborationRequest

	err := s.db.First(&request, requestID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.checkProjectOwner(request.ProjectID, ownerID); err != nil {
		return nil, err
	}

	return &request, nil
}

func (s *RequestStore) checkProjectOwner(projectID, ownerID uint) error {
	var project models.Project

	err := s.db.First(&project, projectID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if project.OwnerID != ownerID {
		return ErrForbidden
	}

	return nil
}
