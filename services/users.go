package services

import (
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/errs"
	"github.com/plateful-app/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the registration payload.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// UserService covers account registration. Token issuance lives with
// the external auth collaborator, not here.
type UserService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewUserService(db database.Database) UserService {
	return UserService{
		db:     db,
		logger: log.With().Str("serviceName", "userService").Logger(),
	}
}

// Register validates the payload, hashes the password and creates the
// account. Username charset and email casing follow the same rules the
// original site enforced.
func (s UserService) Register(input RegisterInput) (*models.User, error) {
	if err := models.ValidateUsername(input.Username); err != nil {
		return nil, errs.NewInvalidFieldError("username", err.Error())
	}
	if input.Email == "" {
		return nil, errs.NewMissingRequiredFieldError("email")
	}
	if input.FirstName == "" {
		return nil, errs.NewMissingRequiredFieldError("first_name")
	}
	if input.LastName == "" {
		return nil, errs.NewMissingRequiredFieldError("last_name")
	}
	if len(input.Password) < 8 {
		return nil, errs.NewInvalidFieldError("password", "must be at least 8 characters")
	}
	email := models.NormalizeEmail(input.Email)

	if existing, err := s.db.UserRepo().FindByUsername(input.Username); err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	} else if existing != nil {
		return nil, errs.NewAlreadyExists("username")
	}
	if existing, err := s.db.UserRepo().FindByEmail(email); err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	} else if existing != nil {
		return nil, errs.NewAlreadyExists("email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("hashing password failed", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
	}
	if err := s.db.UserRepo().Add(user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}
	s.logger.Info().Str("username", user.Username).Msg("User registered")
	return user, nil
}
