package services

import (
	"context"
	"errors"
	"time"

	"fashion-store/models"
	"fashion-store/repositories"
	"fashion-store/utils"
)

// UserStore is the account collection behind AuthService.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
	GetUserWithProfile(ctx context.Context, userID string) (*models.UserWithProfile, error)
}

type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users UserStore, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     "customer",
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	profile := &models.UserProfile{
		UserID:   user.ID,
		FullName: req.FullName,
		Phone:    req.Phone,
	}
	if err := s.users.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return s.loginResponse(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return s.loginResponse(ctx, user)
}

func (s *AuthService) loginResponse(ctx context.Context, user *models.User) (*models.LoginResponse, error) {
	token, err := utils.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	userWithProfile, err := s.users.GetUserWithProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *userWithProfile,
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.UserWithProfile, error) {
	return s.users.GetUserWithProfile(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) error {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	profile.FullName = req.FullName
	profile.Phone = req.Phone
	profile.Address = req.Address

	return s.users.UpdateProfile(ctx, profile)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	valid, err := utils.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !valid {
		return ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, hashedPassword)
}
