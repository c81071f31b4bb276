package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"aihub/internal/domain"
)

const userColumns = `id, email, password_hash, salt, name, role, image, phone,
		job_title, organization, created_at, updated_at`

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Salt, u.Name, u.Role,
		nullIfEmpty(u.Image), nullIfEmpty(u.Phone), nullIfEmpty(u.JobTitle),
		nullIfEmpty(u.Organization), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE users SET
			email = $2, name = $3, image = $4, phone = $5, job_title = $6,
			organization = $7, updated_at = $8
		WHERE id = $1
	`, u.ID, u.Email, u.Name, nullIfEmpty(u.Image), nullIfEmpty(u.Phone),
		nullIfEmpty(u.JobTitle), nullIfEmpty(u.Organization), u.UpdatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id, role string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`, id, role)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var image, phone, jobTitle, organization sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Salt, &u.Name, &u.Role,
		&image, &phone, &jobTitle, &organization, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	u.Image = image.String
	u.Phone = phone.String
	u.JobTitle = jobTitle.String
	u.Organization = organization.String
	return u, nil
}
