package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fluxion-io/fluxion/modules/core/domain/aggregates/user"
)

type UserService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Create registers a user and returns the created record together with the
// plaintext API key. The key is shown exactly once; only its digest is stored.
func (s *UserService) Create(ctx context.Context, tenantID uuid.UUID, email, displayName, password string) (user.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", err
	}
	apiKey, err := generateAPIKey()
	if err != nil {
		return user.User{}, "", err
	}
	created, err := s.repo.Create(ctx, user.New(tenantID, email, displayName, string(hash), DigestAPIKey(apiKey)))
	if err != nil {
		return user.User{}, "", err
	}
	return created, apiKey, nil
}

func (s *UserService) CheckPassword(u user.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(password)) == nil
}

// DigestAPIKey is the canonical key -> stored-digest mapping. Keys are looked
// up by digest so the plaintext never touches the database.
func DigestAPIKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}

func generateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "fxk_" + hex.EncodeToString(buf), nil
}
