package service

import (
	"errors"
	"strconv"
	"sync"

	"vocabdeck/internal/repository"
)

// ErrOwnerTaken is returned when another chat already owns the bot
var ErrOwnerTaken = errors.New("bot already has an owner")

// AuthService gates the bot to the single learner who knows the password
type AuthService struct {
	// serialises the owner check and claim
	mu          sync.Mutex
	store       repository.KeyValueStore
	botPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(store repository.KeyValueStore, botPassword string) *AuthService {
	return &AuthService{
		store:       store,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.botPassword
}

func (s *AuthService) owner() (int64, bool, error) {
	raw, found, err := s.store.Get(repository.KeyBotOwner)
	if err != nil || !found {
		return 0, false, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return id, true, nil
}

// IsAuthorized checks if user is the owner
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	id, ok, err := s.owner()
	if err != nil {
		return false, err
	}
	return ok && id == userID, nil
}

// AuthorizeUser makes user the owner unless someone else already is
func (s *AuthService) AuthorizeUser(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok, err := s.owner()
	if err != nil {
		return err
	}
	if ok {
		if id == userID {
			return nil
		}
		return ErrOwnerTaken
	}
	return s.store.Set(repository.KeyBotOwner, strconv.FormatInt(userID, 10))
}
