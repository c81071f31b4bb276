package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aihub/internal/delivery/http/helpers"
	"aihub/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	registerErr         error
	registerResult      *domain.Registration
	lastRegisterEventID string
	lastApplicant       domain.Applicant
	checkErr            error
	checkResult         *domain.RegistrationCheck
	lastCheckEmail      string
	countErr            error
	countResult         int
	listErr             error
	listResult          []*domain.Registration
	updateStatusErr     error
	updateStatusResult  *domain.Registration
	lastUpdateStatus    string
	deleteErr           error
	lastDeleteID        string
}

func (f *fakeRegistrationService) Register(ctx context.Context, eventID string, applicant domain.Applicant) (*domain.Registration, error) {
	f.lastRegisterEventID = eventID
	f.lastApplicant = applicant
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.registerResult != nil {
		return f.registerResult, nil
	}
	return &domain.Registration{ID: "reg-created", EventID: eventID, Email: applicant.Email,
		Status: domain.RegistrationStatusConfirmed}, nil
}

func (f *fakeRegistrationService) Check(ctx context.Context, eventID, email string) (*domain.RegistrationCheck, error) {
	f.lastCheckEmail = email
	if f.checkErr != nil {
		return nil, f.checkErr
	}
	if f.checkResult != nil {
		return f.checkResult, nil
	}
	return &domain.RegistrationCheck{Registered: false}, nil
}

func (f *fakeRegistrationService) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countResult, nil
}

func (f *fakeRegistrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeRegistrationService) UpdateStatus(ctx context.Context, id, status string) (*domain.Registration, error) {
	f.lastUpdateStatus = status
	if f.updateStatusErr != nil {
		return nil, f.updateStatusErr
	}
	if f.updateStatusResult != nil {
		return f.updateStatusResult, nil
	}
	return &domain.Registration{ID: id, Status: status}, nil
}

func (f *fakeRegistrationService) Delete(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func TestRegistrationController_Register(t *testing.T) {
	validBody := `{"fullName":"Nguyen Van A","email":"A@Example.com","organization":"VNU","organizationType":"university"}`

	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		check          func(t *testing.T, fake *fakeRegistrationService)
	}{
		{
			name:       "success",
			body:       validBody,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, fake *fakeRegistrationService) {
				assert.Equal(t, "event-1", fake.lastRegisterEventID)
				assert.Equal(t, "a@example.com", fake.lastApplicant.Email, "email is lowercased")
				assert.Equal(t, domain.OrgTypeUniversity, fake.lastApplicant.OrganizationType)
			},
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing fields",
			body:           `{"email":"a@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "fullName is required",
		},
		{
			name:           "bad email format",
			body:           `{"fullName":"A","email":"not-an-email","organization":"VNU","organizationType":"university"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid email format",
		},
		{
			name:           "bad organization type",
			body:           `{"fullName":"A","email":"a@example.com","organization":"VNU","organizationType":"ngo"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "organizationType must be one of",
		},
		{
			name:           "unknown field rejected",
			body:           `{"fullName":"A","email":"a@example.com","organization":"VNU","organizationType":"university","status":"confirmed"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "event not found",
			body:           validBody,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:           "registration closed",
			body:           validBody,
			fakeErr:        domain.ErrRegistrationClosed,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "closed",
		},
		{
			name:           "deadline passed",
			body:           validBody,
			fakeErr:        domain.ErrDeadlinePassed,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "deadline",
		},
		{
			name:           "already registered",
			body:           validBody,
			fakeErr:        domain.ErrAlreadyRegistered,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "already registered",
		},
		{
			name:           "fully booked",
			body:           validBody,
			fakeErr:        domain.ErrFullyBooked,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "fully booked",
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
			fake := &fakeRegistrationService{registerErr: tt.fakeErr}
			ctrl := NewRegistrationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/api/events/event-1/registrations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", "event-1")
			rr := httptest.NewRecorder()

			ctrl.Register(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be a valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				if tt.check != nil {
					tt.check(t, fake)
				}
			} else {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestRegistrationController_Check(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		fake := &fakeRegistrationService{
			checkResult: &domain.RegistrationCheck{Registered: true, Status: domain.RegistrationStatusConfirmed},
		}
		ctrl := NewRegistrationController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/api/events/event-1/registrations/check?email=A@Example.com", nil)
		req.SetPathValue("eventID", "event-1")
		rr := httptest.NewRecorder()

		ctrl.Check(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "a@example.com", fake.lastCheckEmail, "email query is lowercased")
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		data, ok := envelope.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, data["registered"])
		assert.Equal(t, domain.RegistrationStatusConfirmed, data["status"])
	})

	t.Run("missing email query", func(t *testing.T) {
		ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{})
		req := httptest.NewRequest(http.MethodGet, "/api/events/event-1/registrations/check", nil)
		req.SetPathValue("eventID", "event-1")
		rr := httptest.NewRecorder()

		ctrl.Check(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRegistrationController_Count(t *testing.T) {
	fake := &fakeRegistrationService{countResult: 17}
	ctrl := NewRegistrationController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/api/events/event-1/registrations/count", nil)
	req.SetPathValue("eventID", "event-1")
	rr := httptest.NewRecorder()

	ctrl.Count(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(17), data["count"])
}

func TestRegistrationController_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		status     string
		fakeErr    error
		wantStatus int
	}{
		{name: "success", id: "reg-1", status: "cancelled", wantStatus: http.StatusOK},
		{name: "missing status", id: "reg-1", status: "", wantStatus: http.StatusBadRequest},
		{name: "invalid status", id: "reg-1", status: "approved", fakeErr: domain.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "not found", id: "missing", status: "cancelled", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegistrationService{updateStatusErr: tt.fakeErr}
			ctrl := NewRegistrationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPatch, "/api/admin/registrations/"+tt.id+"/status?status="+tt.status, nil)
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()

			ctrl.UpdateStatus(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
