// services/tournament_service.go - Tournament, enrollment and ranking persistence
package services

import (
	"errors"

	"github.com/wallasazevedo60-ux/canta-liga/models"
	"github.com/wallasazevedo60-ux/canta-liga/schema"

	"gorm.io/gorm"
)

const rankingLimit = 50

type TournamentService struct {
	db *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{db: db}
}

// GetTournament returns the tournament or nil when it does not exist.
func (s *TournamentService) GetTournament(id uint) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := s.db.First(&tournament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tournament, nil
}

// GetTournaments lists all tournaments with their organizer attached,
// newest date first. Public read.
func (s *TournamentService) GetTournaments() ([]models.Tournament, error) {
	var tournaments []models.Tournament
	err := s.db.Preload("Organizer").Order("date DESC").Find(&tournaments).Error
	return tournaments, err
}

// CreateTournament creates a tournament for the given organizer. OrganizerID
// always comes from the session identity.
func (s *TournamentService) CreateTournament(organizerID uint, in *schema.InsertTournament) (*models.Tournament, error) {
	status := in.Status
	if status == "" {
		status = models.StatusOpen
	}
	tournament := models.Tournament{
		OrganizerID: organizerID,
		Name:        in.Name,
		Location:    in.Location,
		Date:        in.Date,
		Description: in.Description,
		EntryFee:    in.EntryFee,
		Prizes:      in.Prizes,
		Status:      status,
	}
	if err := s.db.Create(&tournament).Error; err != nil {
		return nil, err
	}
	return &tournament, nil
}

// CreateEnrollment registers a bird in a tournament. Duplicate enrollments of
// the same bird are allowed; no uniqueness constraint exists.
func (s *TournamentService) CreateEnrollment(tournamentID, birdID uint) (*models.Enrollment, error) {
	enrollment := models.Enrollment{
		TournamentID: tournamentID,
		BirdID:       birdID,
		Paid:         false,
		Score:        0,
		Rank:         nil,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GetEnrollmentsByTournament lists a tournament's enrollments.
func (s *TournamentService) GetEnrollmentsByTournament(tournamentID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("tournament_id = ?", tournamentID).Find(&enrollments).Error
	return enrollments, err
}

// UpdateResults applies a batch of score/rank updates. Each row is its own
// unit of work: when one update fails, rows applied before it stay applied.
// Whether that partial application is acceptable is an open product
// question; until it is decided the behavior is kept as-is and documented.
func (s *TournamentService) UpdateResults(entries []schema.ResultEntry) error {
	for _, e := range entries {
		rank := e.Rank
		err := s.db.Model(&models.Enrollment{}).
			Where("id = ?", e.EnrollmentID).
			Updates(map[string]interface{}{"score": e.Score, "rank": rank}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// GetRankings aggregates enrollment scores per bird across all tournaments:
// sum of scores, joined with bird and owner names, highest total first,
// capped at rankingLimit rows.
func (s *TournamentService) GetRankings() ([]models.RankingEntry, error) {
	var entries []models.RankingEntry
	err := s.db.Table("enrollments").
		Select("birds.name AS bird_name, users.name AS owner_name, birds.species AS species, SUM(enrollments.score) AS total_score").
		Joins("JOIN birds ON birds.id = enrollments.bird_id").
		Joins("JOIN users ON users.id = birds.owner_id").
		Group("birds.id, users.id, birds.name, users.name, birds.species").
		Order("SUM(enrollments.score) DESC").
		Limit(rankingLimit).
		Scan(&entries).Error
	return entries, err
}
