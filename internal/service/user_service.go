package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"wisely_backend/internal/model"
	"wisely_backend/internal/repository"
)

type UserService struct {
	Users   *repository.UserRepository
	Storage *StorageService
}

func NewUserService(users *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{Users: users, Storage: storage}
}

func (s *UserService) Get(userID string) (*model.User, error) {
	return s.Users.FindByID(userID)
}

// UpdateAvatar stores the uploaded image and points the user's profile at
// it. The filename is derived from the user id so re-uploads replace the
// old object.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, reader io.Reader, size int64, originalName, contentType string) (string, error) {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".png"
	}
	filename := fmt.Sprintf("avatars/%s_%d%s", userID, time.Now().Unix(), ext)

	url, err := s.Storage.Upload(ctx, filename, reader, size, contentType)
	if err != nil {
		return "", err
	}

	if err := s.Users.UpdateProfileImage(userID, url); err != nil {
		return "", err
	}

	return url, nil
}
