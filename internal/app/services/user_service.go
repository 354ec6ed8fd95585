package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/akademia/akademia/internal/app/models"
	"github.com/akademia/akademia/internal/app/repositories"
	"github.com/akademia/akademia/internal/pkg/apperrors"
	"github.com/akademia/akademia/internal/pkg/filestorage"
)

// UserService handles public profiles and owner-gated profile mutation
type UserService interface {
	GetPublicProfile(ctx context.Context, userID int64) (*models.PublicProfile, error)
	UpdateSkills(ctx context.Context, callerID, targetID int64, habilidades []string) (*models.PublicProfile, error)
	UpdatePhoto(ctx context.Context, callerID, targetID int64, fileHeader *multipart.FileHeader) (string, error)
}

type userService struct {
	userRepo repositories.IUserRepository
	storage  filestorage.FileStorage
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, storage filestorage.FileStorage, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// GetPublicProfile returns the outward view of an ACTIVE user. Accounts that
// have not completed verification are indistinguishable from missing ones.
func (s *userService) GetPublicProfile(ctx context.Context, userID int64) (*models.PublicProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if user.Status != models.StatusAtivo {
		return nil, apperrors.ErrUserNotFound
	}

	profile := user.PublicProfile()
	return &profile, nil
}

// UpdateSkills replaces the skills list on the caller's own profile
func (s *userService) UpdateSkills(ctx context.Context, callerID, targetID int64, habilidades []string) (*models.PublicProfile, error) {
	if callerID != targetID {
		return nil, apperrors.NewForbiddenError("cannot edit another user's profile")
	}

	if err := s.userRepo.UpdateHabilidades(ctx, targetID, habilidades); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error updating skills: %w", err)
	}

	return s.GetPublicProfile(ctx, targetID)
}

// UpdatePhoto stores the uploaded file and points the caller's profile at it
func (s *userService) UpdatePhoto(ctx context.Context, callerID, targetID int64, fileHeader *multipart.FileHeader) (string, error) {
	if callerID != targetID {
		return "", apperrors.NewForbiddenError("cannot change another user's photo")
	}

	if fileHeader == nil {
		return "", apperrors.NewValidationError("no file was uploaded")
	}

	filename, err := s.storage.SaveFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("error saving photo: %w", err)
	}

	if err := s.userRepo.UpdateFotoPerfil(ctx, targetID, filename); err != nil {
		// The row vanished under us; do not leave an orphan file behind
		if delErr := s.storage.DeleteFile(filename); delErr != nil {
			s.logger.Warn().Err(delErr).Str("filename", filename).Msg("Failed to clean up orphan photo")
		}
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("error updating photo reference: %w", err)
	}

	return filename, nil
}
