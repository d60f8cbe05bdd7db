// services/bird_service.go - Bird and training persistence
package services

import (
	"errors"

	"github.com/wallasazevedo60-ux/canta-liga/models"
	"github.com/wallasazevedo60-ux/canta-liga/schema"

	"gorm.io/gorm"
)

type BirdService struct {
	db *gorm.DB
}

func NewBirdService(db *gorm.DB) *BirdService {
	return &BirdService{db: db}
}

// GetBird returns the bird or nil when it does not exist. Absence is not an
// error at this layer; handlers decide how to report it.
func (s *BirdService) GetBird(id uint) (*models.Bird, error) {
	var bird models.Bird
	if err := s.db.First(&bird, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bird, nil
}

// GetBirdsByOwner lists a breeder's roster.
func (s *BirdService) GetBirdsByOwner(ownerID uint) ([]models.Bird, error) {
	var birds []models.Bird
	err := s.db.Where("owner_id = ?", ownerID).Find(&birds).Error
	return birds, err
}

// CreateBird registers a bird for the given owner. OwnerID always comes from
// the session identity, never from client input.
func (s *BirdService) CreateBird(ownerID uint, in *schema.InsertBird) (*models.Bird, error) {
	bird := models.Bird{
		OwnerID:    ownerID,
		Name:       in.Name,
		Species:    in.Species,
		RingNumber: in.RingNumber,
		PhotoURL:   in.PhotoURL,
		Notes:      in.Notes,
	}
	if err := s.db.Create(&bird).Error; err != nil {
		return nil, err
	}
	return &bird, nil
}

// UpdateBird applies a partial update and returns the updated row.
func (s *BirdService) UpdateBird(id uint, in *schema.BirdUpdate) (*models.Bird, error) {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Species != nil {
		updates["species"] = *in.Species
	}
	if in.RingNumber != nil {
		updates["ring_number"] = *in.RingNumber
	}
	if in.PhotoURL != nil {
		updates["photo_url"] = *in.PhotoURL
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Bird{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var bird models.Bird
	if err := s.db.First(&bird, id).Error; err != nil {
		return nil, err
	}
	return &bird, nil
}

// DeleteBird hard-deletes the bird row. Dependent trainings and enrollments
// are NOT removed and will reference a nonexistent bird afterwards; that
// matches the current product behavior and is pinned by tests.
func (s *BirdService) DeleteBird(id uint) error {
	return s.db.Delete(&models.Bird{}, id).Error
}

// GetTrainingsByBird lists a bird's practice log, newest first.
func (s *BirdService) GetTrainingsByBird(birdID uint) ([]models.Training, error) {
	var trainings []models.Training
	err := s.db.Where("bird_id = ?", birdID).Order("date DESC").Find(&trainings).Error
	return trainings, err
}

// CreateTraining appends a practice session. Trainings have no update or
// delete path.
func (s *BirdService) CreateTraining(in *schema.InsertTraining) (*models.Training, error) {
	training := models.Training{
		BirdID:    in.BirdID,
		Date:      in.Date,
		Type:      in.Type,
		Duration:  in.Duration,
		SongCount: in.SongCount,
		Notes:     in.Notes,
	}
	if err := s.db.Create(&training).Error; err != nil {
		return nil, err
	}
	return &training, nil
}
