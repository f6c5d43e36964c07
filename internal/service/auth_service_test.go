package service

import (
	"testing"
	"time"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(userRepo *fakeUserRepo) AuthService {
	return NewAuthService(userRepo, "test-secret", 15*time.Minute, 24*time.Hour)
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo)

	registered, err := svc.Register(dto.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", registered.Role)
	assert.NotEmpty(t, registered.AccessToken)

	loggedIn, err := svc.Login(dto.LoginRequest{Email: "jane@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	claims, err := svc.ParseToken(loggedIn.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)

	// Login records the timestamp.
	user, err := userRepo.FindByID(registered.UserID)
	require.NoError(t, err)
	assert.NotNil(t, user.LastLoginAt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(&model.User{Email: "jane@example.com", PasswordHash: "x"}))

	_, err := svc.Register(dto.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := newTestAuthService(newFakeUserRepo(&model.User{
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}))

	_, err = svc.Login(dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginSuspendedAccount(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := newTestAuthService(newFakeUserRepo(&model.User{
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		IsActive:     false,
	}))

	_, err = svc.Login(dto.LoginRequest{Email: "jane@example.com", Password: "correct-password"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefreshWithGarbageToken(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Refresh("not.a.token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	userRepo := newFakeUserRepo()
	issuer := NewAuthService(userRepo, "secret-one", time.Minute, time.Hour)
	verifier := NewAuthService(userRepo, "secret-two", time.Minute, time.Hour)

	resp, err := issuer.Register(dto.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	_, err = verifier.ParseToken(resp.AccessToken)
	assert.Error(t, err)
}
