package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const minBcryptCost = 10

type AuthUseCase interface {
	Signup(ctx context.Context, username, email, password string) (*entity.User, error)
	// Login checks credentials only; no session or token is issued.
	Login(ctx context.Context, username, password string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	bcryptCost int
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, bcryptCost int, logger *logger.Logger) AuthUseCase {
	if bcryptCost < minBcryptCost {
		bcryptCost = minBcryptCost
	}
	if bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.MaxCost
	}
	return &authUseCase{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (uc *authUseCase) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if missing := missingValues("username", username, "email", email, "password", password); len(missing) > 0 {
		return nil, MissingFields(missing...)
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Info("[AUTH] Registered user %s", user.ID)
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if missing := missingValues("username", username, "password", password); len(missing) > 0 {
		return nil, MissingFields(missing...)
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}

	user.Password = ""
	return user, nil
}

// missingValues takes name/value pairs and returns the names whose value is
// empty.
func missingValues(pairs ...string) []string {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			missing = append(missing, pairs[i])
		}
	}
	return missing
}
