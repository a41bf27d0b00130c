// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/researchsync/researchsync/internal/auth"
	"github.com/researchsync/researchsync/internal/config"
	"github.com/researchsync/researchsync/internal/domain"
	"github.com/researchsync/researchsync/internal/model"
	"github.com/researchsync/researchsync/internal/notify"
	"github.com/researchsync/researchsync/internal/repository"
)

// UserService owns account registration and login, and serves as the
// identity lookup the collaboration workflows resolve emails and ids
// against.
type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	notifier       notify.Notifier
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	notifier notify.Notifier,
	cfg *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		notifier:       notifier,
		config:         cfg,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	Email           string         `json:"email" validate:"required,email"`
	FirstName       string         `json:"first_name" validate:"required"`
	LastName        string         `json:"last_name"`
	UserType        model.UserType `json:"user_type"`
	Password        string         `json:"password" validate:"required,min=8"`
	ConfirmPassword string         `json:"confirm_password" validate:"required,eqfield=Password"`
}

type RegisterOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates an account, stores the argon2 password hash and sends a
// verification email. The verification email is best-effort like every
// other notification.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("checking existing email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	userType := input.UserType
	if userType == "" {
		userType = model.UserTypeStudent
	}

	verificationToken := uuid.NewString()
	user := &model.User{
		Email:             input.Email,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		UserType:          userType,
		PasswordHash:      hashedPassword,
		Verified:          false,
		VerificationToken: &verificationToken,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	verificationURL := fmt.Sprintf("%s/api/auth/verify?token=%s", s.config.BaseURL, verificationToken)
	s.notifier.Notify(ctx, notify.KindAccountVerification, user, notify.Payload{
		VerificationURL: verificationURL,
	})

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &RegisterOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Authenticate verifies credentials and returns a session token. Lookup
// failures and bad passwords both come back as ErrInvalidCredentials so the
// response does not reveal whether the account exists.
func (s *UserService) Authenticate(ctx context.Context, input LoginInput) (*RegisterOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &RegisterOutput{User: user, Token: token}, nil
}

// VerifyEmail redeems a verification token and marks the account verified.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrInvalidVerificationToken
	}

	user, err := s.repo.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidVerificationToken
		}
		return err
	}

	if user.Verified {
		return domain.ErrAlreadyVerified
	}

	user.Verified = true
	user.VerificationToken = nil

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}
