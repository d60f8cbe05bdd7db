// services/auth_service.go - Credential verification and registration
package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/wallasazevedo60-ux/canta-liga/models"
	"github.com/wallasazevedo60-ux/canta-liga/schema"

	"golang.org/x/crypto/scrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// scrypt parameters matching the stored credential format "hexkey.hexsalt".
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a new user with a hashed password. The username must be
// unused; the role comes from the insert shape and defaults to breeder.
func (s *AuthService) Register(in *schema.InsertUser) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("username = ?", in.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleBreeder
	}

	user := models.User{
		Username: in.Username,
		Password: hashed,
		Name:     in.Name,
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies a username/password pair and returns the user.
// Callers are expected to collapse ErrUserNotFound and ErrWrongPassword into
// one generic message before exposing them.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if !verifyPassword(user.Password, password) {
		return nil, ErrWrongPassword
	}
	return &user, nil
}

// GetUser returns a user by id; absence is ErrUserNotFound.
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// HashPassword derives an scrypt key from the password with a fresh random
// salt and encodes both as "hexkey.hexsalt".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)
	key, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + saltHex, nil
}

// verifyPassword supports two credential variants:
//
//   - Hashed: "hexkey.hexsalt", verified by re-deriving the key with the
//     stored salt and comparing in constant time.
//   - Legacy: no "." separator, compared as plain text. This branch exists
//     only for seed rows (see database.Seed); Register always stores the
//     hashed variant, so production input never creates a legacy credential.
//     Known weakness, kept deliberately for bootstrap compatibility.
func verifyPassword(stored, supplied string) bool {
	if !strings.Contains(stored, ".") {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
	}

	parts := strings.SplitN(stored, ".", 2)
	storedKey, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	derived, err := scrypt.Key([]byte(supplied), []byte(parts[1]), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(storedKey, derived) == 1
}
