// models/models.go - Core Models (User in user.go, Session in session.go)
package models

import (
	"time"
)

// Tournament statuses. Transitions are not guarded anywhere; the column only
// ever holds one of these three values because the insert shape rejects others.
const (
	StatusOpen      = "open"
	StatusClosed    = "closed"
	StatusCompleted = "completed"
)

// Bird is a songbird registered by a breeder.
type Bird struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OwnerID    uint      `json:"owner_id" gorm:"not null;index"`
	Owner      *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name       string    `json:"name" gorm:"not null;size:100"`
	Species    string    `json:"species" gorm:"not null;size:100"` // Coleiro, Papa-capim, Trinca-ferro...
	RingNumber string    `json:"ring_number,omitempty" gorm:"size:50"`
	PhotoURL   string    `json:"photo_url,omitempty" gorm:"size:500"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`

	Trainings   []Training   `json:"trainings,omitempty" gorm:"foreignKey:BirdID"`
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:BirdID"`
}

// Training is one logged practice session for a bird. Append-only.
type Training struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BirdID    uint      `json:"bird_id" gorm:"not null;index"`
	Bird      *Bird     `json:"bird,omitempty" gorm:"foreignKey:BirdID"`
	Date      time.Time `json:"date" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null;size:50"` // free-text category
	Duration  int       `json:"duration" gorm:"not null"`     // seconds
	SongCount int       `json:"song_count" gorm:"default:0"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
}

// Tournament is a competition created by an organizer.
type Tournament struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrganizerID uint      `json:"organizer_id" gorm:"not null;index"`
	Organizer   *User     `json:"organizer,omitempty" gorm:"foreignKey:OrganizerID"`
	Name        string    `json:"name" gorm:"not null;size:200"`
	Location    string    `json:"location" gorm:"not null;size:200"`
	Date        time.Time `json:"date" gorm:"not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	EntryFee    int       `json:"entry_fee" gorm:"default:0"` // minor currency units
	Prizes      string    `json:"prizes,omitempty" gorm:"type:text"` // free-form JSON
	Status      string    `json:"status" gorm:"default:'open';size:20"`
	CreatedAt   time.Time `json:"created_at"`

	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:TournamentID"`
}

// Enrollment links a bird to a tournament. A bird may enroll in the same
// tournament more than once; no uniqueness constraint exists. Append-only.
type Enrollment struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	TournamentID uint        `json:"tournament_id" gorm:"not null;index"`
	Tournament   *Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID"`
	BirdID       uint        `json:"bird_id" gorm:"not null;index"`
	Bird         *Bird       `json:"bird,omitempty" gorm:"foreignKey:BirdID"`
	Paid         bool        `json:"paid" gorm:"default:false"`
	Score        int         `json:"score" gorm:"default:0"` // songs counted
	Rank         *int        `json:"rank"`                   // final placement, nil until results
	CreatedAt    time.Time   `json:"created_at"`
}

// RankingEntry is the read-side aggregate for the public ranking view.
type RankingEntry struct {
	BirdName   string `json:"birdName"`
	OwnerName  string `json:"ownerName"`
	TotalScore int    `json:"totalScore"`
	Species    string `json:"species"`
}

func (Bird) TableName() string {
	return "birds"
}

func (Training) TableName() string {
	return "trainings"
}

func (Tournament) TableName() string {
	return "tournaments"
}

func (Enrollment) TableName() string {
	return "enrollments"
}
