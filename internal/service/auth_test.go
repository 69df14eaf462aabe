package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"vocabdeck/internal/repository"
	"vocabdeck/internal/repository/memory"
	"vocabdeck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_CheckPassword(t *testing.T) {
	tests := []struct {
		name           string
		botPassword    string
		inputPassword  string
		expectedResult bool
	}{
		{
			name:           "correct password",
			botPassword:    "secret123",
			inputPassword:  "secret123",
			expectedResult: true,
		},
		{
			name:           "incorrect password",
			botPassword:    "secret123",
			inputPassword:  "wrong",
			expectedResult: false,
		},
		{
			name:           "empty password",
			botPassword:    "secret123",
			inputPassword:  "",
			expectedResult: false,
		},
		{
			name:           "case sensitive",
			botPassword:    "Secret123",
			inputPassword:  "secret123",
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(memory.New(), tt.botPassword)

			result := service.CheckPassword(tt.inputPassword)

			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestAuthService_IsAuthorized(t *testing.T) {
	tests := []struct {
		name         string
		stored       map[string]string
		userID       int64
		expectedAuth bool
	}{
		{name: "owner", stored: map[string]string{repository.KeyBotOwner: "123"}, userID: 123, expectedAuth: true},
		{name: "someone else", stored: map[string]string{repository.KeyBotOwner: "123"}, userID: 456, expectedAuth: false},
		{name: "no owner yet", stored: nil, userID: 123, expectedAuth: false},
		{name: "garbled owner", stored: map[string]string{repository.KeyBotOwner: "abc"}, userID: 123, expectedAuth: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(memory.NewWith(tt.stored), "password")

			authorized, err := service.IsAuthorized(tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAuth, authorized)
		})
	}
}

func TestAuthService_IsAuthorized_StoreError(t *testing.T) {
	store := new(testutil.MockKVStore)
	store.On("Get", repository.KeyBotOwner).Return("", false, errors.New("connection refused"))
	service := NewAuthService(store, "password")

	_, err := service.IsAuthorized(123)

	assert.Error(t, err)
	store.AssertExpectations(t)
}

func TestAuthService_AuthorizeUser(t *testing.T) {
	store := memory.New()
	service := NewAuthService(store, "password")

	require.NoError(t, service.AuthorizeUser(123))
	require.NoError(t, service.AuthorizeUser(123))
	err := service.AuthorizeUser(456)

	assert.ErrorIs(t, err, ErrOwnerTaken)
	assert.Equal(t, 1, store.Writes())
	ok, _ := service.IsAuthorized(123)
	assert.True(t, ok)
}

func TestAuthService_AuthorizeUser_Concurrent(t *testing.T) {
	store := memory.New()
	service := NewAuthService(store, "password")

	var owners atomic.Int32
	var wg sync.WaitGroup
	for i := int64(1); i <= 8; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			if service.AuthorizeUser(userID) == nil {
				owners.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), owners.Load())
	assert.Equal(t, 1, store.Writes())
}
