package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"aihub/internal/domain"
)

type collaborationRepository struct {
	DB *sql.DB
}

func NewCollaborationRepository(db *sql.DB) domain.CollaborationRepository {
	return &collaborationRepository{DB: db}
}

func (r *collaborationRepository) Create(ctx context.Context, req *domain.CollaborationRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO collaboration_requests
			(id, type, name, organization, email, phone, title, description, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, req.ID, req.Type, req.Name, req.Organization, req.Email,
		nullIfEmpty(req.Phone), req.Title, req.Description, req.IsRead, req.CreatedAt)
	return err
}

func (r *collaborationRepository) GetByID(ctx context.Context, id string) (*domain.CollaborationRequest, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, type, name, organization, email, phone, title, description, is_read, created_at
		FROM collaboration_requests WHERE id = $1
	`, id)
	return scanCollaboration(row)
}

func (r *collaborationRepository) List(ctx context.Context) ([]*domain.CollaborationRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, type, name, organization, email, phone, title, description, is_read, created_at
		FROM collaboration_requests
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := make([]*domain.CollaborationRequest, 0)
	for rows.Next() {
		req, err := scanCollaboration(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *collaborationRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE collaboration_requests SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *collaborationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM collaboration_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *collaborationRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM collaboration_requests`).Scan(&count)
	return count, err
}

func (r *collaborationRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM collaboration_requests WHERE is_read = FALSE`).Scan(&count)
	return count, err
}

func scanCollaboration(row interface{ Scan(...any) error }) (*domain.CollaborationRequest, error) {
	req := &domain.CollaborationRequest{}
	var phone sql.NullString
	err := row.Scan(&req.ID, &req.Type, &req.Name, &req.Organization, &req.Email,
		&phone, &req.Title, &req.Description, &req.IsRead, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	req.Phone = phone.String
	return req, nil
}
