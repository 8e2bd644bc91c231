package service

import (
	"context"

	"shareit/internal/database"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type UserService struct {
	db     *database.DB
	logger zerolog.Logger
}

func NewUserService(db *database.DB, logger *zerolog.Logger) *UserService {
	return &UserService{db: db, logger: componentLogger(logger, "user-service")}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.db.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{What: "user", ID: userID}
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, user models.User) (*models.User, error) {
	if isBlank(user.Name) || isBlank(user.Email) {
		return nil, &ValidationError{Msg: "name and email are required"}
	}
	if err := s.checkEmailFree(ctx, user.Email, 0); err != nil {
		return nil, err
	}

	if err := s.db.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("user created")
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, userID int64, patch models.UserPatch) (*models.User, error) {
	if patch.Name != nil && isBlank(*patch.Name) || patch.Email != nil && isBlank(*patch.Email) {
		return nil, &ValidationError{Msg: "name and email must not be blank"}
	}
	if patch.Email != nil {
		if err := s.checkEmailFree(ctx, *patch.Email, userID); err != nil {
			return nil, err
		}
	}

	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{What: "user", ID: userID}
	}

	patch.Apply(user)
	if err := s.db.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	return s.db.DeleteUser(ctx, userID)
}

// checkEmailFree rejects an email already held by a different user.
func (s *UserService) checkEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return &AlreadyExistsError{Msg: "user with this email already exists"}
	}
	return nil
}
