package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"aihub/internal/domain"
)

const registrationColumns = `id, event_id, full_name, email, phone, organization,
		role, organization_type, suggestions, status, created_at, updated_at`

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	query := `
		INSERT INTO registrations (` + registrationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		reg.ID, reg.EventID, reg.FullName, reg.Email, nullIfEmpty(reg.Phone),
		reg.Organization, nullIfEmpty(reg.Role), nullIfEmpty(reg.OrganizationType),
		nullIfEmpty(reg.Suggestions), reg.Status, reg.CreatedAt, reg.UpdatedAt)
	return err
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE id = $1`, id)
	return scanRegistration(row)
}

func (r *registrationRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Registration, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE event_id = $1 AND email = $2`,
		eventID, email)
	return scanRegistration(row)
}

func (r *registrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+registrationColumns+`
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at DESC
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = 'confirmed'`,
		eventID).Scan(&count)
	return count, err
}

func (r *registrationRepository) Update(ctx context.Context, reg *domain.Registration) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE registrations SET
			full_name = $2, email = $3, phone = $4, organization = $5, role = $6,
			organization_type = $7, suggestions = $8, status = $9, updated_at = $10
		WHERE id = $1
	`, reg.ID, reg.FullName, reg.Email, nullIfEmpty(reg.Phone), reg.Organization,
		nullIfEmpty(reg.Role), nullIfEmpty(reg.OrganizationType),
		nullIfEmpty(reg.Suggestions), reg.Status, reg.UpdatedAt)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *registrationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *registrationRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&count)
	return count, err
}

func scanRegistration(row interface{ Scan(...any) error }) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var phone, role, orgType, suggestions sql.NullString
	err := row.Scan(&reg.ID, &reg.EventID, &reg.FullName, &reg.Email, &phone,
		&reg.Organization, &role, &orgType, &suggestions, &reg.Status,
		&reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	reg.Phone = phone.String
	reg.Role = role.String
	reg.OrganizationType = orgType.String
	reg.Suggestions = suggestions.String
	return reg, nil
}
