package service

import (
	"context"
	"strings"

	"wisely_backend/internal/identity"
	"wisely_backend/internal/model"
	"wisely_backend/internal/repository"
)

type AuthService struct {
	Users    *repository.UserRepository
	Sessions *SessionService
	Provider identity.Provider
}

func NewAuthService(users *repository.UserRepository, sessions *SessionService, provider identity.Provider) *AuthService {
	return &AuthService{
		Users:    users,
		Sessions: sessions,
		Provider: provider,
	}
}

// Login verifies the ID token against the identity provider exactly once,
// upserts the user row keyed by the provider's subject id and opens a
// session. Returns the user and the signed session cookie value.
func (s *AuthService) Login(ctx context.Context, idToken string) (*model.User, string, error) {
	ident, err := s.Provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, "", err
	}

	firstName, lastName := splitName(ident.Name)
	user := &model.User{
		ID:              ident.Subject,
		Email:           ident.Email,
		FirstName:       firstName,
		LastName:        lastName,
		ProfileImageURL: ident.Picture,
	}

	if err := s.Users.Upsert(user); err != nil {
		return nil, "", err
	}

	token, err := s.Sessions.Create(ctx, ident.Subject)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) {
	s.Sessions.Destroy(ctx, token)
}

func (s *AuthService) CurrentUser(userID string) (*model.User, error) {
	return s.Users.FindByID(userID)
}

// splitName breaks a display name into first name and the rest.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
