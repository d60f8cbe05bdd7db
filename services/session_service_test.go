package services

import (
	"testing"
	"time"

	"github.com/wallasazevedo60-ux/canta-liga/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Username: "criador", Password: "x", Name: "A"}
	require.NoError(t, db.Create(&user).Error)

	svc := NewSessionService(db, time.Hour)
	defer svc.Stop()

	session, err := svc.Create(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	got, err := svc.Resolve(session.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	require.NoError(t, svc.Destroy(session.ID))
	_, err = svc.Resolve(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestResolveUnknownOrEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db, time.Hour)
	defer svc.Stop()

	_, err := svc.Resolve("")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Resolve("not-a-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestResolveExpiredSessionIsRemoved(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Username: "criador", Password: "x", Name: "A"}
	require.NoError(t, db.Create(&user).Error)

	// Negative TTL creates a session that is already expired.
	svc := NewSessionService(db, -time.Minute)
	defer svc.Stop()

	session, err := svc.Create(user.ID)
	require.NoError(t, err)

	_, err = svc.Resolve(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Where("id = ?", session.ID).Count(&count).Error)
	assert.Zero(t, count, "expired session row should be deleted on resolve")
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Username: "criador", Password: "x", Name: "A"}
	require.NoError(t, db.Create(&user).Error)

	expired := NewSessionService(db, -time.Minute)
	live := NewSessionService(db, time.Hour)
	defer expired.Stop()
	defer live.Stop()

	_, err := expired.Create(user.ID)
	require.NoError(t, err)
	keep, err := live.Create(user.ID)
	require.NoError(t, err)

	require.NoError(t, live.sweep())

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = live.Resolve(keep.ID)
	assert.NoError(t, err)
}

func TestDestroyUnknownSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db, time.Hour)
	defer svc.Stop()

	assert.NoError(t, svc.Destroy("never-existed"))
}
