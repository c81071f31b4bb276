package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"aihub/internal/domain"
)

type newsletterRepository struct {
	DB *sql.DB
}

func NewNewsletterRepository(db *sql.DB) domain.NewsletterRepository {
	return &newsletterRepository{DB: db}
}

func (r *newsletterRepository) Create(ctx context.Context, s *domain.NewsletterSubscriber) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO newsletter_subscribers (id, email, name, is_active, subscribed_at)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID, s.Email, nullIfEmpty(s.Name), s.IsActive, s.SubscribedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *newsletterRepository) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, email, name, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers WHERE email = $1
	`, email)
	return scanSubscriber(row)
}

func (r *newsletterRepository) List(ctx context.Context) ([]*domain.NewsletterSubscriber, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, email, name, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers
		ORDER BY subscribed_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]*domain.NewsletterSubscriber, 0)
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *newsletterRepository) Update(ctx context.Context, s *domain.NewsletterSubscriber) error {
	var unsubscribedAt sql.NullTime
	if s.UnsubscribedAt != nil {
		unsubscribedAt = sql.NullTime{Time: *s.UnsubscribedAt, Valid: true}
	}
	result, err := r.DB.ExecContext(ctx, `
		UPDATE newsletter_subscribers SET name = $2, is_active = $3, unsubscribed_at = $4
		WHERE id = $1
	`, s.ID, nullIfEmpty(s.Name), s.IsActive, unsubscribedAt)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *newsletterRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM newsletter_subscribers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *newsletterRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM newsletter_subscribers WHERE is_active = TRUE`).Scan(&count)
	return count, err
}

func scanSubscriber(row interface{ Scan(...any) error }) (*domain.NewsletterSubscriber, error) {
	s := &domain.NewsletterSubscriber{}
	var name sql.NullString
	var unsubscribedAt sql.NullTime
	err := row.Scan(&s.ID, &s.Email, &name, &s.IsActive, &s.SubscribedAt, &unsubscribedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.Name = name.String
	if unsubscribedAt.Valid {
		s.UnsubscribedAt = &unsubscribedAt.Time
	}
	return s, nil
}
