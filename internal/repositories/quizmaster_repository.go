package repositories

import (
	"sync"

	"github.com/mroshb/quizmaster_bot/internal/models"
	"github.com/mroshb/quizmaster_bot/pkg/errors"
	"gorm.io/gorm"
)

// QuizMasterRepository persists the set of authorized quizmaster user IDs.
// A single mutex guards the read-check-write sequence in Add and Remove so
// that two near-simultaneous admin commands cannot race on the same row.
type QuizMasterRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewQuizMasterRepository(db *gorm.DB) *QuizMasterRepository {
	return &QuizMasterRepository{db: db}
}

// Add inserts userID into the registry. Returns false if it was already
// present; the operation is idempotent either way.
func (r *QuizMasterRepository) Add(userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var existing models.QuizMaster
	result := r.db.First(&existing, "user_id = ?", userID)
	if result.Error == nil {
		return false, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to look up quizmaster")
	}

	if err := r.db.Create(&models.QuizMaster{UserID: userID}).Error; err != nil {
		return false, errors.Wrap(err, errors.ErrCodeInternalError, "failed to add quizmaster")
	}
	return true, nil
}

// Remove deletes userID from the registry. Returns false if it was not
// present.
func (r *QuizMasterRepository) Remove(userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var existing models.QuizMaster
	result := r.db.First(&existing, "user_id = ?", userID)
	if result.Error == gorm.ErrRecordNotFound {
		return false, nil
	}
	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to look up quizmaster")
	}

	if err := r.db.Delete(&models.QuizMaster{}, "user_id = ?", userID).Error; err != nil {
		return false, errors.Wrap(err, errors.ErrCodeInternalError, "failed to remove quizmaster")
	}
	return true, nil
}

// List returns all authorized user IDs ordered by user_id.
func (r *QuizMasterRepository) List() ([]int64, error) {
	var ids []int64
	result := r.db.Model(&models.QuizMaster{}).Order("user_id").Pluck("user_id", &ids)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list quizmasters")
	}
	return ids, nil
}

// IsQuizMaster reports whether userID is in the registry.
func (r *QuizMasterRepository) IsQuizMaster(userID int64) (bool, error) {
	var count int64
	result := r.db.Model(&models.QuizMaster{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check quizmaster")
	}
	return count > 0, nil
}
