package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"aihub/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, m.ID, m.Name, m.Email, nullIfEmpty(m.Subject), m.Message, m.IsRead, m.CreatedAt)
	return err
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contact_messages WHERE id = $1
	`, id)
	return scanContact(row)
}

func (r *contactRepository) List(ctx context.Context, unreadOnly bool) ([]*domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contact_messages
	`
	if unreadOnly {
		query += " WHERE is_read = FALSE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *contactRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count)
	return count, err
}

func (r *contactRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE`).Scan(&count)
	return count, err
}

func scanContact(row interface{ Scan(...any) error }) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{}
	var subject sql.NullString
	err := row.Scan(&m.ID, &m.Name, &m.Email, &subject, &m.Message, &m.IsRead, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	m.Subject = subject.String
	return m, nil
}
