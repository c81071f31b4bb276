package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"aihub/internal/domain"
)

const eventColumns = `id, slug, title_vi, title_en, type, subtitle_vi, subtitle_en,
		description_vi, description_en, target_audience_vi, target_audience_en,
		date, start_time, end_time, venue_name_vi, venue_name_en, venue_address,
		venue_city, venue_google_maps_url, registration_deadline, registration_url,
		qr_code_url, banner_image, status, max_attendees, is_featured, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`
	_, err := r.DB.ExecContext(ctx, query, eventArgs(e)...)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrConflict
		}
		return err
	}
	if len(e.Agenda) > 0 {
		if err := r.insertAgenda(ctx, e.ID, e.Agenda); err != nil {
			return fmt.Errorf("insert agenda: %w", err)
		}
	}
	return nil
}

func eventArgs(e *domain.Event) []any {
	return []any{
		e.ID, e.Slug, e.Title.Vi, e.Title.En, e.Type,
		nullIfEmpty(bilingualVi(e.Subtitle)), nullIfEmpty(bilingualEn(e.Subtitle)),
		e.Description.Vi, e.Description.En,
		nullIfEmpty(bilingualVi(e.TargetAudience)), nullIfEmpty(bilingualEn(e.TargetAudience)),
		e.Date, e.StartTime, e.EndTime,
		e.Venue.Name.Vi, e.Venue.Name.En, e.Venue.Address, e.Venue.City,
		nullIfEmpty(e.Venue.GoogleMapsURL), nullIfEmpty(e.RegistrationDeadline),
		nullIfEmpty(e.RegistrationURL), nullIfEmpty(e.QRCodeURL), nullIfEmpty(e.BannerImage),
		e.Status, nullIntPtr(e.MaxAttendees), e.IsFeatured, e.CreatedAt, e.UpdatedAt,
	}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return r.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE slug = $1`, slug)
}

func (r *eventRepository) getOne(ctx context.Context, query, arg string) (*domain.Event, error) {
	row := r.DB.QueryRowContext(ctx, query, arg)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	agenda, err := r.listAgenda(ctx, e.ID)
	if err != nil {
		return nil, fmt.Errorf("list agenda: %w", err)
	}
	e.Agenda = agenda
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var conds []string
	var args []any
	n := 1
	if filter.Status != "" && filter.Status != "all" {
		conds = append(conds, fmt.Sprintf("status = $%d", n))
		args = append(args, filter.Status)
		n++
	}
	if filter.FeaturedOnly {
		conds = append(conds, "is_featured = TRUE")
		conds = append(conds, "status IN ('published', 'upcoming')")
	}
	if filter.UpcomingOnly {
		conds = append(conds, fmt.Sprintf("date >= $%d", n))
		args = append(args, todayDate())
		n++
		conds = append(conds, "status IN ('published', 'upcoming')")
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if filter.UpcomingOnly {
		query += " ORDER BY date ASC"
	} else {
		query += " ORDER BY date DESC"
	}
	if filter.Limit > 0 {
		query += " LIMIT " + strconv.Itoa(filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, e := range events {
		agenda, err := r.listAgenda(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("list agenda: %w", err)
		}
		e.Agenda = agenda
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events SET
			slug = $2, title_vi = $3, title_en = $4, type = $5,
			subtitle_vi = $6, subtitle_en = $7, description_vi = $8, description_en = $9,
			target_audience_vi = $10, target_audience_en = $11,
			date = $12, start_time = $13, end_time = $14,
			venue_name_vi = $15, venue_name_en = $16, venue_address = $17, venue_city = $18,
			venue_google_maps_url = $19, registration_deadline = $20, registration_url = $21,
			qr_code_url = $22, banner_image = $23, status = $24, max_attendees = $25,
			is_featured = $26, updated_at = $27
		WHERE id = $1
	`
	// Same column order as Create, minus created_at.
	args := eventArgs(e)[:27]
	args[26] = e.UpdatedAt
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrConflict
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) ReplaceAgenda(ctx context.Context, eventID string, items []domain.AgendaItem) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM event_agenda_items WHERE event_id = $1`, eventID); err != nil {
		return err
	}
	return r.insertAgenda(ctx, eventID, items)
}

func (r *eventRepository) insertAgenda(ctx context.Context, eventID string, items []domain.AgendaItem) error {
	for i := range items {
		item := &items[i]
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.EventID = eventID
		_, err := r.DB.ExecContext(ctx, `
			INSERT INTO event_agenda_items
				(id, event_id, sort_order, title_vi, title_en, description_vi, description_en, time_slot)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, item.ID, eventID, item.SortOrder, item.Title.Vi, item.Title.En,
			nullIfEmpty(bilingualVi(item.Description)), nullIfEmpty(bilingualEn(item.Description)),
			nullIfEmpty(item.TimeSlot))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *eventRepository) listAgenda(ctx context.Context, eventID string) ([]domain.AgendaItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, event_id, sort_order, title_vi, title_en, description_vi, description_en, time_slot
		FROM event_agenda_items
		WHERE event_id = $1
		ORDER BY sort_order ASC
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.AgendaItem, 0)
	for rows.Next() {
		var item domain.AgendaItem
		var descVi, descEn, timeSlot sql.NullString
		if err := rows.Scan(&item.ID, &item.EventID, &item.SortOrder,
			&item.Title.Vi, &item.Title.En, &descVi, &descEn, &timeSlot); err != nil {
			return nil, err
		}
		item.Description = bilingualPtr(descVi, descEn)
		item.TimeSlot = timeSlot.String
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

// scanEvent reads one event row from a row scanner.
func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var subVi, subEn, audVi, audEn sql.NullString
	var mapsURL, deadline, regURL, qrURL, banner sql.NullString
	var maxAttendees sql.NullInt64
	err := row.Scan(
		&e.ID, &e.Slug, &e.Title.Vi, &e.Title.En, &e.Type,
		&subVi, &subEn, &e.Description.Vi, &e.Description.En, &audVi, &audEn,
		&e.Date, &e.StartTime, &e.EndTime,
		&e.Venue.Name.Vi, &e.Venue.Name.En, &e.Venue.Address, &e.Venue.City,
		&mapsURL, &deadline, &regURL, &qrURL, &banner,
		&e.Status, &maxAttendees, &e.IsFeatured, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Subtitle = bilingualPtr(subVi, subEn)
	e.TargetAudience = bilingualPtr(audVi, audEn)
	e.Venue.GoogleMapsURL = mapsURL.String
	e.RegistrationDeadline = deadline.String
	e.RegistrationURL = regURL.String
	e.QRCodeURL = qrURL.String
	e.BannerImage = banner.String
	if maxAttendees.Valid {
		v := int(maxAttendees.Int64)
		e.MaxAttendees = &v
	}
	return e, nil
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

func bilingualVi(b *domain.Bilingual) string {
	if b == nil {
		return ""
	}
	return b.Vi
}

func bilingualEn(b *domain.Bilingual) string {
	if b == nil {
		return ""
	}
	return b.En
}

func bilingualPtr(vi, en sql.NullString) *domain.Bilingual {
	if !vi.Valid && !en.Valid {
		return nil
	}
	if vi.String == "" && en.String == "" {
		return nil
	}
	return &domain.Bilingual{Vi: vi.String, En: en.String}
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullIntPtr(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
