package repository

import (
	"errors"

	"github.com/collablab-dev/collablab/internal/models"
	"gorm.io/gorm"
)

type SavedStore struct {
	db *gorm.DB
}

func NewSavedStore(db *gorm.DB) *SavedStore {
	return &SavedStore{db: db}
}

// Save records the bookmark once; re-saving is a no-op success. The project
// id is not validated here, so a stale bookmark is possible and tolerated.
func (s *SavedStore) Save(userID, projectID uint) error {
	var existing models.SavedProject

	err := s.db.Where("user_id = ? AND project_id = ?", userID, projectID).First(&existing).Error

	if err == nil {
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	saved := models.SavedProject{UserID: userID, ProjectID: projectID}

	if err := s.db.Create(&saved).Error; err != nil {
		// A concurrent save can win the race between the lookup and the
		// insert; the unique (user_id, project_id) index rejects ours and
		// the bookmark exists either way.
		recheck := s.db.Where("user_id = ? AND project_id = ?", userID, projectID).First(&existing).Error
		if recheck == nil {
			return nil
		}
		return err
	}

	return nil
}

// ListProjects resolves the user's bookmarks to projects, silently dropping
// any that no longer exist.
func (s *SavedStore) ListProjects(userID uint) ([]models.Project, error) {
	var saved []models.SavedProject

	if err := s.db.Where("user_id = ?", userID).Find(&saved).Error; err != nil {
		return nil, err
	}

	if len(saved) == 0 {
		return []models.Project{}, nil
	}

	ids := make([]uint, 0, len(saved))

	for _, record := range saved {
		ids = append(ids, record.ProjectID)
	}

	var projects []models.Project

	if err := s.db.Where("id IN ?", ids).Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}
