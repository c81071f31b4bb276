package postgres

import (
	"context"
	"database/sql"
	"errors"

	"aihub/internal/domain"
)

const teamColumns = `id, member_key, name, email, image, organization, role_title,
		bio, is_core_member, exec_role, sort_order, created_at, updated_at`

type teamRepository struct {
	DB *sql.DB
}

func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &teamRepository{DB: db}
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.TeamMember, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+teamColumns+`
		FROM team_members
		ORDER BY is_core_member DESC, sort_order ASC, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *teamRepository) GetByKey(ctx context.Context, memberKey string) (*domain.TeamMember, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM team_members WHERE member_key = $1`, memberKey)
	return scanTeamMember(row)
}

func scanTeamMember(row interface{ Scan(...any) error }) (*domain.TeamMember, error) {
	m := &domain.TeamMember{}
	var email, image, organization, roleTitle, bio, execRole sql.NullString
	err := row.Scan(&m.ID, &m.MemberKey, &m.Name, &email, &image, &organization,
		&roleTitle, &bio, &m.IsCoreMember, &execRole, &m.SortOrder,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	m.Email = email.String
	m.Image = image.String
	m.Organization = organization.String
	m.RoleTitle = roleTitle.String
	m.Bio = bio.String
	m.ExecRole = execRole.String
	return m, nil
}
