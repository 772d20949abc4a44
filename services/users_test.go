package services

import (
	"testing"

	"github.com/plateful-app/backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerInput(username string) RegisterInput {
	return RegisterInput{
		Username:  username,
		Email:     username + "@Example.COM",
		FirstName: "Test",
		LastName:  "User",
		Password:  "s3cret-pass",
	}
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	user, err := service.Register(registerInput("alice"))
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	// domain is lowercased on the way in
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))

	stored, err := db.UserRepo().FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	_, err := service.Register(registerInput("alice"))
	require.NoError(t, err)

	dup := registerInput("alice")
	dup.Email = "other@example.com"
	_, err = service.Register(dup)
	require.Error(t, err)
	assert.Equal(t, 409, errs.StatusOf(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	_, err := service.Register(registerInput("alice"))
	require.NoError(t, err)

	dup := registerInput("alice2")
	dup.Email = "ALICE@example.com"
	_, err = service.Register(dup)
	require.Error(t, err)
	assert.Equal(t, 409, errs.StatusOf(err))
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"empty username", func(in *RegisterInput) { in.Username = "" }},
		{"username with spaces", func(in *RegisterInput) { in.Username = "bad user" }},
		{"username with slash", func(in *RegisterInput) { in.Username = "bad/user" }},
		{"empty email", func(in *RegisterInput) { in.Email = "" }},
		{"empty first name", func(in *RegisterInput) { in.FirstName = "" }},
		{"empty last name", func(in *RegisterInput) { in.LastName = "" }},
		{"short password", func(in *RegisterInput) { in.Password = "short" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := registerInput("alice")
			tc.mutate(&input)
			_, err := service.Register(input)
			require.Error(t, err)
			assert.Equal(t, 400, errs.StatusOf(err))
		})
	}
}
