package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/wtwr-app/wtwr-backend/internal/domain/entity"
	"github.com/wtwr-app/wtwr-backend/internal/domain/repository"
	"github.com/wtwr-app/wtwr-backend/internal/errs"
	"github.com/wtwr-app/wtwr-backend/pkg/helpers"
)

// UserService implements the user domain operations. Each operation wraps a
// persistence call and translates its sentinel errors into classified
// errors; that translation happens here and nowhere else.
type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Avatar   string
	Email    string
	Password string
}

// Register creates a user with a hashed password. Duplicate emails are a
// Conflict; the unique index on email is the source of truth.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hashing failed")
		}
		return nil, errs.NewInternalServer()
	}
	u := &entity.User{
		Name:     in.Name,
		Avatar:   in.Avatar,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errs.NewConflict("Email already exists")
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create user failed")
		}
		return nil, errs.NewInternalServer()
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", errs.NewUnauthorized("Incorrect email or password")
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("lookup user by email failed")
		}
		return "", errs.NewInternalServer()
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", errs.NewUnauthorized("Incorrect email or password")
	}
	token, _, err := s.JWT.GenerateToken(u.ID.Hex())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("token signing failed")
		}
		return "", errs.NewInternalServer()
	}
	return token, nil
}

// GetProfile returns the user behind an authenticated identity.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, s.classifyUserErr(err)
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name   string
	Avatar string
}

// UpdateProfile updates name and avatar of the authenticated user.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.UpdateProfile(ctx, userID, in.Name, in.Avatar)
	if err != nil {
		return nil, s.classifyUserErr(err)
	}
	return u, nil
}

func (s *UserService) classifyUserErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return errs.NewNotFound("User not found")
	case errors.Is(err, repository.ErrInvalidID):
		return errs.NewBadRequest("Invalid user id")
	default:
		if s.Logger != nil {
			s.Logger.WithError(err).Error("user persistence failure")
		}
		return errs.NewInternalServer()
	}
}
