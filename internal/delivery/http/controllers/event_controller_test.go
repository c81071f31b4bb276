package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listErr         error
	listResult      []*domain.Event
	lastListFilter  domain.EventFilter
	getBySlugErr    error
	getBySlugResult *domain.Event
	getByIDErr      error
	getByIDResult   *domain.Event
	createErr       error
	createResult    *domain.Event
	lastCreated     *domain.Event
	updateErr       error
	updateResult    *domain.Event
	lastUpdated     *domain.Event
	deleteErr       error
	lastDeletedID   string
	seedErr         error
	seedResult      []string
}

func (f *fakeEventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lastListFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeEventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if f.getBySlugErr != nil {
		return nil, f.getBySlugErr
	}
	return f.getBySlugResult, nil
}

func (f *fakeEventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDResult, nil
}

func (f *fakeEventService) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	f.lastCreated = event
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	event.ID = "event-created"
	return event, nil
}

func (f *fakeEventService) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	f.lastUpdated = event
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateResult != nil {
		return f.updateResult, nil
	}
	return event, nil
}

func (f *fakeEventService) Delete(ctx context.Context, id string) error {
	f.lastDeletedID = id
	return f.deleteErr
}

func (f *fakeEventService) SeedIfEmpty(ctx context.Context) ([]string, error) {
	if f.seedErr != nil {
		return nil, f.seedErr
	}
	return f.seedResult, nil
}

func TestEventController_List(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		checkFilter func(t *testing.T, filter domain.EventFilter)
	}{
		{
			name:       "no filters",
			query:      "",
			wantStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.EventFilter) {
				assert.Equal(t, domain.EventFilter{}, filter)
			},
		},
		{
			name:       "featured and limit",
			query:      "?featured=true&limit=3",
			wantStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.EventFilter) {
				assert.True(t, filter.FeaturedOnly)
				assert.Equal(t, 3, filter.Limit)
			},
		},
		{
			name:       "upcoming defaults limit to 10",
			query:      "?upcoming=true",
			wantStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.EventFilter) {
				assert.True(t, filter.UpcomingOnly)
				assert.Equal(t, 10, filter.Limit)
			},
		},
		{
			name:       "status upcoming selects the upcoming listing",
			query:      "?status=upcoming&limit=10",
			wantStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.EventFilter) {
				assert.Empty(t, filter.Status, "upcoming is not passed through as a stored-status filter")
				assert.True(t, filter.UpcomingOnly)
				assert.Equal(t, 10, filter.Limit)
			},
		},
		{
			name:       "featured defaults limit to 3",
			query:      "?featured=true",
			wantStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.EventFilter) {
				assert.True(t, filter.FeaturedOnly)
				assert.Equal(t, 3, filter.Limit)
			},
		},
		{
			name:       "status all",
			query:      "?status=all",
			wantStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.EventFilter) {
				assert.Equal(t, "all", filter.Status)
			},
		},
		{
			name:       "invalid status filter",
			query:      "?status=archived",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid limit",
			query:      "?limit=zero",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative limit",
			query:      "?limit=-1",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/api/events"+tt.query, nil)
			rr := httptest.NewRecorder()

			ctrl.List(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.checkFilter != nil {
				tt.checkFilter(t, fake.lastListFilter)
			}
			if tt.wantStatus == http.StatusOK {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.Nil(t, envelope.Error)
				assert.NotNil(t, envelope.Data, "nil slice is rendered as an empty array")
			}
		})
	}
}

func TestEventController_GetBySlug(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeEventService{
			getBySlugResult: &domain.Event{ID: "event-1", Slug: "ai-summit", Title: domain.Bilingual{En: "AI Summit"}},
		}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/api/events/ai-summit", nil)
		req.SetPathValue("slug", "ai-summit")
		rr := httptest.NewRecorder()

		ctrl.GetBySlug(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		data, ok := envelope.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ai-summit", data["slug"])
	})

	t.Run("not found", func(t *testing.T) {
		fake := &fakeEventService{getBySlugErr: domain.ErrNotFound}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/api/events/missing", nil)
		req.SetPathValue("slug", "missing")
		rr := httptest.NewRecorder()

		ctrl.GetBySlug(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})
}

func TestEventController_Create(t *testing.T) {
	validBody := `{"slug":"ai-summit","title":{"vi":"Hội nghị AI","en":"AI Summit"},"type":"conference","description":{"vi":"","en":"desc"},"date":"2025-09-01"}`

	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		check          func(t *testing.T, fake *fakeEventService)
	}{
		{
			name:       "success defaults to draft",
			body:       validBody,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, fake *fakeEventService) {
				assert.Equal(t, domain.EventStatusDraft, fake.lastCreated.Status)
			},
		},
		{
			name:           "bad slug",
			body:           `{"slug":"AI Summit!","title":{"en":"x"},"type":"conference","date":"2025-09-01"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "slug must contain",
		},
		{
			name:           "bad date",
			body:           `{"slug":"ai-summit","title":{"en":"x"},"type":"conference","date":"01/09/2025"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "YYYY-MM-DD",
		},
		{
			name:           "bad type",
			body:           `{"slug":"ai-summit","title":{"en":"x"},"type":"meetup","date":"2025-09-01"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "type must be one of",
		},
		{
			name: "agenda title required",
			body: `{"slug":"ai-summit","title":{"en":"x"},"type":"conference","date":"2025-09-01",` +
				`"agenda":[{"title":{"vi":"","en":""}}]}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "agenda[0].title",
		},
		{
			name:           "slug taken",
			body:           validBody,
			fakeErr:        domain.ErrSlugTaken,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "slug already exists",
		},
		{
			name:           "service error",
			body:           validBody,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{createErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				if tt.check != nil {
					tt.check(t, fake)
				}
			} else {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestEventController_Update_agendaSortOrder(t *testing.T) {
	fake := &fakeEventService{}
	ctrl := NewEventController(testLogger, fake)
	body := `{"slug":"ai-summit","title":{"en":"AI Summit"},"type":"conference","date":"2025-09-01",` +
		`"agenda":[{"title":{"en":"Opening"}},{"title":{"en":"Panel"}}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/events/event-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", "event-1")
	rr := httptest.NewRecorder()

	ctrl.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, fake.lastUpdated)
	assert.Equal(t, "event-1", fake.lastUpdated.ID)
	require.Len(t, fake.lastUpdated.Agenda, 2)
	assert.Equal(t, 0, fake.lastUpdated.Agenda[0].SortOrder, "sort order follows array position")
	assert.Equal(t, 1, fake.lastUpdated.Agenda[1].SortOrder)
}

func TestEventController_Seed(t *testing.T) {
	fake := &fakeEventService{seedResult: []string{"event-1", "event-2"}}
	ctrl := NewEventController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPost, "/api/events/seed", nil)
	rr := httptest.NewRecorder()

	ctrl.Seed(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Len(t, data["created"], 2)
}
