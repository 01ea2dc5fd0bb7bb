package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fashion-store/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING created_at, updated_at
	`
	user.ID = uuid.NewString()
	err := r.db.QueryRow(ctx, query, user.ID, user.Email, user.Password, user.Role, time.Now()).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE email = $1`

	var u models.User
	err := r.db.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE id = $1`

	var u models.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, full_name, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`
	_, err := r.db.Exec(ctx, query, profile.UserID, profile.FullName, profile.Phone, profile.Address, time.Now())
	return err
}

func (r *UserRepository) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `SELECT user_id, full_name, phone, address, created_at, updated_at FROM user_profiles WHERE user_id = $1`

	var p models.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.FullName, &p.Phone, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `UPDATE user_profiles SET full_name = $1, phone = $2, address = $3, updated_at = $4 WHERE user_id = $5`
	_, err := r.db.Exec(ctx, query, profile.FullName, profile.Phone, profile.Address, time.Now(), profile.UserID)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, hashedPassword, time.Now(), userID)
	return err
}

func (r *UserRepository) GetUserWithProfile(ctx context.Context, userID string) (*models.UserWithProfile, error) {
	query := `
		SELECT u.id, u.email, u.role, u.created_at, u.updated_at,
		       COALESCE(p.full_name, ''), COALESCE(p.phone, ''), COALESCE(p.address, '')
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE u.id = $1
	`

	var u models.UserWithProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		&u.FullName, &u.Phone, &u.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
