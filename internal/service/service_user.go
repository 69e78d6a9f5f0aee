package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown user, so that branch costs as much as a wrong password.
const dummyPassword = "not-a-real-password"

// userService is the concrete UserService. Plaintext passwords only ever
// reach the hasher; they are never stored or logged.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	dummyOnce sync.Once
	dummyHash string

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// Register creates a viewer account.
//
// Returns the stored user (without its hash) or:
//   - [validators.ValidationErrors] for rule violations, including a taken
//     username;
//   - an error wrapping [ErrStore] when the store fails.
func (u *userService) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, reg); err != nil {
		return models.User{}, err
	}
	username := strings.TrimSpace(reg.Username)

	_, err := u.userRepository.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return models.User{}, usernameTaken()
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*userService.Register").Msg("failed to check username")
		return models.User{}, storeError(err)
	}

	hash, err := u.hasher.Hash(reg.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("failed to hash password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleViewer,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		// lost a race with a concurrent registration
		return models.User{}, usernameTaken()
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("failed to create user")
		return models.User{}, storeError(err)
	}

	log.Info().Str("func", "*userService.Register").Int64("user_id", created.UserID).Str("username", created.Username).Msg("user registered")
	created.PasswordHash = ""
	return created, nil
}

// Authenticate checks credentials and returns the matching user.
//
// Both an unknown username and a wrong password yield
// [ErrInvalidCredentials]; the accompanying [ErrUserNotFound] or
// [ErrWrongPassword] tells them apart for callers that need to.
func (u *userService) Authenticate(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}
	username := strings.TrimSpace(creds.Username)

	user, err := u.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		u.hasher.Verify(creds.Password, u.dummy())
		log.Debug().Str("func", "*userService.Authenticate").Str("username", username).Msg("unknown username")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrUserNotFound)
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Authenticate").Msg("failed to find user")
		return models.User{}, storeError(err)
	}

	if !u.hasher.Verify(creds.Password, user.PasswordHash) {
		log.Debug().Str("func", "*userService.Authenticate").Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrWrongPassword)
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangeRole sets the role of targetUserID on behalf of actor. The guard
// decides first; nothing is written on a denial.
func (u *userService) ChangeRole(ctx context.Context, actor models.Session, targetUserID int64, role models.Role) error {
	log := logger.FromContext(ctx)

	req := guard.ForSession(actor, guard.ChangeUserRole)
	req.TargetUserID = targetUserID
	req.RequestedRole = role

	if decision := guard.Decide(req); !decision.Allowed {
		log.Warn().
			Str("func", "*userService.ChangeRole").
			Int64("actor_id", actor.UserID).
			Int64("target_id", targetUserID).
			Str("reason", string(decision.Reason)).
			Msg("role change denied")

		switch decision.Reason {
		case guard.ReasonCannotChangeOwnRole:
			return validators.ValidationErrors{validators.NewValidationError(validators.FieldRole, validators.RuleSelf)}
		case guard.ReasonInvalidRole:
			return validators.ValidationErrors{validators.NewValidationError(validators.FieldRole, validators.RuleInvalid)}
		default:
			return UnauthorizedError{Reason: decision.Reason}
		}
	}

	err := u.userRepository.UpdateUserRole(ctx, targetUserID, role)
	if errors.Is(err, store.ErrUserNotFound) {
		return NotFoundError{Entity: EntityUser, ID: targetUserID}
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.ChangeRole").Int64("target_id", targetUserID).Msg("failed to update role")
		return storeError(err)
	}

	log.Info().
		Str("func", "*userService.ChangeRole").
		Int64("actor_id", actor.UserID).
		Int64("target_id", targetUserID).
		Str("role", role.String()).
		Msg("user role changed")
	return nil
}

// ListUsers returns all users ordered by username, without password hashes.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("failed to list users")
		return nil, storeError(err)
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// EnsureAdmin creates an admin account named username unless that username
// already exists. An existing account is left exactly as it is. Empty
// credentials make it a no-op.
func (u *userService) EnsureAdmin(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if username == "" && password == "" {
		return nil
	}

	reg := models.Registration{Username: username, Password: password, ConfirmPassword: password}
	if err := u.validator.Validate(ctx, reg); err != nil {
		return fmt.Errorf("invalid bootstrap admin credentials: %w", err)
	}
	username = strings.TrimSpace(username)

	_, err := u.userRepository.FindUserByUsername(ctx, username)
	if err == nil {
		log.Info().Str("func", "*userService.EnsureAdmin").Str("username", username).Msg("bootstrap admin already exists")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return storeError(err)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return nil
	}
	if err != nil {
		return storeError(err)
	}

	log.Info().Str("func", "*userService.EnsureAdmin").Int64("user_id", created.UserID).Str("username", username).Msg("bootstrap admin created")
	return nil
}

// dummy returns the lazily computed hash of dummyPassword. A hashing
// failure leaves it empty, which Verify rejects without work.
func (u *userService) dummy() string {
	u.dummyOnce.Do(func() {
		hash, err := u.hasher.Hash(dummyPassword)
		if err != nil {
			u.logger.Err(err).Str("func", "*userService.dummy").Msg("failed to hash dummy password")
			return
		}
		u.dummyHash = hash
	})
	return u.dummyHash
}

func usernameTaken() error {
	return validators.ValidationErrors{validators.NewValidationError(validators.FieldUsername, validators.RuleTaken)}
}
