// services/session_service.go - Server-side session lifecycle
package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/wallasazevedo60-ux/canta-liga/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionService owns the create/resolve/destroy lifecycle of login
// sessions. It is injected into the middleware and handlers rather than
// living as process-global state, so multiple instances can share the same
// backing table.
type SessionService struct {
	db  *gorm.DB
	ttl time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

func NewSessionService(db *gorm.DB, ttl time.Duration) *SessionService {
	return &SessionService{
		db:   db,
		ttl:  ttl,
		stop: make(chan struct{}),
	}
}

// Create issues a new session for the user.
func (s *SessionService) Create(userID uint) (*models.Session, error) {
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Resolve maps a session id back to its user. Expired sessions are removed
// on sight and reported as not found.
func (s *SessionService) Resolve(id string) (*models.User, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	var session models.Session
	if err := s.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		s.db.Delete(&models.Session{}, "id = ?", id)
		return nil, ErrSessionNotFound
	}
	var user models.User
	if err := s.db.First(&user, session.UserID).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	return &user, nil
}

// Destroy removes a session. Destroying an unknown id is not an error.
func (s *SessionService) Destroy(id string) error {
	return s.db.Delete(&models.Session{}, "id = ?", id).Error
}

// StartCleanup launches the background sweep that removes expired sessions.
func (s *SessionService) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.sweep(); err != nil {
					log.Printf("session cleanup: %v", err)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the cleanup sweep.
func (s *SessionService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *SessionService) sweep() error {
	res := s.db.Delete(&models.Session{}, "expires_at < ?", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("session cleanup: removed %d expired sessions", res.RowsAffected)
	}
	return nil
}
