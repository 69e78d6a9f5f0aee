package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. Password hashes are read and written but never logged.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts the user and fills in the assigned id.
//
// Error handling:
//   - unique constraint on username → [ErrUsernameAlreadyExists];
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if r.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already exists")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("username", user.Username).
			Stringer("class", r.classify(err)).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.builder(), where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user models.User
		role string
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.Username, &user.PasswordHash, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Stringer("class", r.classify(err)).Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	user.Role = models.Role(role)

	return user, nil
}

// UpdateUserRole sets the role of one user. Last write wins.
func (r *userRepository) UpdateUserRole(ctx context.Context, userID int64, role models.Role) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserRoleQuery(r.builder(), userID, role)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserRole").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUserRole").
			Int64("user_id", userID).
			Stringer("class", r.classify(err)).
			Msg("failed to update user role")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListUsers returns every user ordered by username.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Stringer("class", r.classify(err)).Msg("failed to list users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		var (
			user models.User
			role string
		)
		if err = rows.Scan(&user.UserID, &user.Username, &user.PasswordHash, &role); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		user.Role = models.Role(role)
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// CountUsersByRole returns the number of users holding each role present
// in the table. Roles nobody holds are absent from the map.
func (r *userRepository) CountUsersByRole(ctx context.Context) (map[models.Role]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersByRoleQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsersByRole").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsersByRole").Stringer("class", r.classify(err)).Msg("failed to count users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.Role]int64, len(models.Roles))
	for rows.Next() {
		var (
			role  string
			count int64
		)
		if err = rows.Scan(&role, &count); err != nil {
			log.Err(err).Str("func", "*userRepository.CountUsersByRole").Msg("failed to scan count row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts[models.Role(role)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}
