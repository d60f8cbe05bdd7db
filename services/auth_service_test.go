package services

import (
	"strings"
	"testing"

	"github.com/wallasazevedo60-ux/canta-liga/models"
	"github.com/wallasazevedo60-ux/canta-liga/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(&schema.InsertUser{
		Username: "criador",
		Password: "segredo123",
		Name:     "João Criador",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleBreeder, user.Role, "role defaults to breeder")

	// Stored credential is hashed, never the raw password.
	assert.NotEqual(t, "segredo123", user.Password)
	assert.Contains(t, user.Password, ".")

	got, err := svc.Authenticate("criador", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(&schema.InsertUser{Username: "criador", Password: "x", Name: "A"})
	require.NoError(t, err)

	_, err = svc.Register(&schema.InsertUser{Username: "criador", Password: "y", Name: "B"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "no second row for the duplicate")
}

func TestRegisterExplicitRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(&schema.InsertUser{
		Username: "organizador",
		Password: "x",
		Name:     "Carlos",
		Role:     models.RoleOrganizer,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleOrganizer, user.Role)
	assert.True(t, user.IsOrganizer())
}

func TestAuthenticateFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(&schema.InsertUser{Username: "criador", Password: "certa", Name: "A"})
	require.NoError(t, err)

	_, err = svc.Authenticate("criador", "errada")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Authenticate("ninguem", "certa")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticateLegacyPlaintext(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	// Seed rows store the password as plain text with no "." separator.
	seed := models.User{Username: "criador", Password: "123", Name: "João", Role: models.RoleBreeder}
	require.NoError(t, db.Create(&seed).Error)

	got, err := svc.Authenticate("criador", "123")
	require.NoError(t, err)
	assert.Equal(t, seed.ID, got.ID)

	_, err = svc.Authenticate("criador", "1234")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestHashPasswordFormat(t *testing.T) {
	hashed, err := HashPassword("abc")
	require.NoError(t, err)

	parts := strings.SplitN(hashed, ".", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], scryptKeyLen*2, "key is hex encoded")
	assert.Len(t, parts[1], saltBytes*2, "salt is hex encoded")

	// A fresh salt every time.
	again, err := HashPassword("abc")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again)

	assert.True(t, verifyPassword(hashed, "abc"))
	assert.False(t, verifyPassword(hashed, "abd"))
}

func TestGetUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(&schema.InsertUser{Username: "criador", Password: "x", Name: "A"})
	require.NoError(t, err)

	got, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "criador", got.Username)

	_, err = svc.GetUser(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
