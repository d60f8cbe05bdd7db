// schema/schema.go - Shared insert shapes and validation
//
// Single source of truth for the fields clients may supply on create/update.
// Server handlers parse request bodies into these shapes and the API client
// sends them, so both sides validate identically. Server-assigned fields
// (id, created_at) and identity-derived fields (owner_id, organizer_id) are
// deliberately absent; handlers inject identity from the session.
package schema

import (
	"time"

	"github.com/wallasazevedo60-ux/canta-liga/models"
)

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// InsertUser is the registration shape.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

func (u *InsertUser) Validate() error {
	if u.Username == "" {
		return invalid("username", "username is required")
	}
	if u.Password == "" {
		return invalid("password", "password is required")
	}
	if u.Name == "" {
		return invalid("name", "name is required")
	}
	switch u.Role {
	case "", models.RoleBreeder, models.RoleOrganizer, models.RoleAdmin:
	default:
		return invalid("role", "role must be breeder, organizer or admin")
	}
	return nil
}

// InsertBird is the bird creation shape. OwnerID comes from the session.
type InsertBird struct {
	Name       string `json:"name"`
	Species    string `json:"species"`
	RingNumber string `json:"ring_number,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func (b *InsertBird) Validate() error {
	if b.Name == "" {
		return invalid("name", "bird name is required")
	}
	if b.Species == "" {
		return invalid("species", "species is required")
	}
	return nil
}

// BirdUpdate is the partial update shape for a bird. Nil fields are left
// untouched. OwnerID is immutable and therefore not part of the shape.
type BirdUpdate struct {
	Name       *string `json:"name,omitempty"`
	Species    *string `json:"species,omitempty"`
	RingNumber *string `json:"ring_number,omitempty"`
	PhotoURL   *string `json:"photo_url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (b *BirdUpdate) Validate() error {
	if b.Name != nil && *b.Name == "" {
		return invalid("name", "bird name cannot be empty")
	}
	if b.Species != nil && *b.Species == "" {
		return invalid("species", "species cannot be empty")
	}
	return nil
}

// InsertTraining is the practice-session shape, produced by the stopwatch
// widget plus the form fields around it.
type InsertTraining struct {
	BirdID    uint      `json:"bird_id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Duration  int       `json:"duration"` // seconds
	SongCount int       `json:"song_count"`
	Notes     string    `json:"notes,omitempty"`
}

func (t *InsertTraining) Validate() error {
	if t.BirdID == 0 {
		return invalid("bird_id", "bird_id is required")
	}
	if t.Date.IsZero() {
		return invalid("date", "date is required")
	}
	if t.Type == "" {
		return invalid("type", "training type is required")
	}
	if t.Duration < 0 {
		return invalid("duration", "duration cannot be negative")
	}
	if t.SongCount < 0 {
		return invalid("song_count", "song count cannot be negative")
	}
	return nil
}

// InsertTournament is the tournament creation shape. OrganizerID comes from
// the session.
type InsertTournament struct {
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	EntryFee    int       `json:"entry_fee"`
	Prizes      string    `json:"prizes,omitempty"` // free-form JSON
	Status      string    `json:"status,omitempty"`
}

func (t *InsertTournament) Validate() error {
	if t.Name == "" {
		return invalid("name", "tournament name is required")
	}
	if t.Location == "" {
		return invalid("location", "location is required")
	}
	if t.Date.IsZero() {
		return invalid("date", "date is required")
	}
	if t.EntryFee < 0 {
		return invalid("entry_fee", "entry fee cannot be negative")
	}
	switch t.Status {
	case "", models.StatusOpen, models.StatusClosed, models.StatusCompleted:
	default:
		return invalid("status", "status must be open, closed or completed")
	}
	return nil
}

// EnrollRequest is the body of POST /api/tournaments/:id/enroll.
type EnrollRequest struct {
	BirdID uint `json:"birdId"`
}

func (e *EnrollRequest) Validate() error {
	if e.BirdID == 0 {
		return invalid("birdId", "birdId is required")
	}
	return nil
}

// ResultEntry is one row of a tournament results batch.
type ResultEntry struct {
	EnrollmentID uint `json:"enrollmentId"`
	Score        int  `json:"score"`
	Rank         int  `json:"rank"`
}

// ValidateResults checks a results batch before any row is applied.
func ValidateResults(entries []ResultEntry) error {
	if len(entries) == 0 {
		return invalid("results", "results cannot be empty")
	}
	for _, e := range entries {
		if e.EnrollmentID == 0 {
			return invalid("enrollmentId", "enrollmentId is required")
		}
	}
	return nil
}
