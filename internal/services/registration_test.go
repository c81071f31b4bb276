package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aihub/internal/domain"
)

type fakeRegRepo struct {
	regs      []*domain.Registration
	err       error
	countErr  error
	updateErr error
	nextID    int
}

func newFakeRegRepo() *fakeRegRepo {
	return &fakeRegRepo{nextID: 1}
}

func (f *fakeRegRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if f.err != nil {
		return f.err
	}
	if reg.ID == "" {
		reg.ID = fmt.Sprintf("reg-%d", f.nextID)
		f.nextID++
	}
	cp := *reg
	f.regs = append(f.regs, &cp)
	return nil
}

func (f *fakeRegRepo) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.regs {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegRepo) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.regs {
		if r.EventID == eventID && r.Email == email {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Registration
	for _, r := range f.regs {
		if r.EventID == eventID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRegRepo) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, r := range f.regs {
		if r.EventID == eventID && r.Status == domain.RegistrationStatusConfirmed {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegRepo) Update(ctx context.Context, reg *domain.Registration) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, r := range f.regs {
		if r.ID == reg.ID {
			cp := *reg
			f.regs[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRegRepo) Delete(ctx context.Context, id string) error {
	for i, r := range f.regs {
		if r.ID == id {
			f.regs = append(f.regs[:i], f.regs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRegRepo) CountAll(ctx context.Context) (int, error) {
	return len(f.regs), nil
}

type fakeEmailService struct {
	confirmations []*domain.RegistrationConfirmationEmailData
	notifications []*domain.ContactNotificationEmailData
	err           error
}

func (f *fakeEmailService) SendContactNotification(ctx context.Context, data *domain.ContactNotificationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.notifications = append(f.notifications, data)
	return nil
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.confirmations = append(f.confirmations, data)
	return nil
}

func validApplicant() domain.Applicant {
	return domain.Applicant{
		FullName:         "Nguyen Van A",
		Email:            "a@example.com",
		Organization:     "VNU",
		OrganizationType: domain.OrgTypeUniversity,
	}
}

func newRegistrationServiceAt(
	eventRepo domain.EventRepository,
	regRepo domain.RegistrationRepository,
	emails domain.EmailService,
	policy domain.RegistrationPolicy,
	now time.Time,
) domain.RegistrationService {
	svc := NewRegistrationService(eventRepo, regRepo, emails, policy, slog.Default(), testTimeout).(*registrationService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRegistrationService_Register_gate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	openEvent := func() *domain.Event {
		return &domain.Event{
			ID:     "e1",
			Slug:   "open",
			Title:  domain.Bilingual{En: "Open Event"},
			Status: domain.EventStatusPublished,
			Date:   "2025-07-01",
		}
	}

	tests := []struct {
		name    string
		event   *domain.Event
		policy  domain.RegistrationPolicy
		setup   func(regs *fakeRegRepo)
		wantErr error
	}{
		{
			name:    "event not found",
			event:   nil,
			policy:  domain.DefaultRegistrationPolicy(),
			wantErr: domain.ErrNotFound,
		},
		{
			name: "stored past",
			event: func() *domain.Event {
				e := openEvent()
				e.Status = domain.EventStatusPast
				return e
			}(),
			policy:  domain.DefaultRegistrationPolicy(),
			wantErr: domain.ErrRegistrationClosed,
		},
		{
			name: "stored cancelled",
			event: func() *domain.Event {
				e := openEvent()
				e.Status = domain.EventStatusCancelled
				return e
			}(),
			policy:  domain.DefaultRegistrationPolicy(),
			wantErr: domain.ErrRegistrationClosed,
		},
		{
			name: "ended event still open on stored status",
			event: func() *domain.Event {
				e := openEvent()
				e.Date = "2025-06-01"
				e.EndTime = "17:00"
				return e
			}(),
			policy:  domain.DefaultRegistrationPolicy(),
			wantErr: nil,
		},
		{
			name: "ended event closed under effective status",
			event: func() *domain.Event {
				e := openEvent()
				e.Date = "2025-06-01"
				e.EndTime = "17:00"
				return e
			}(),
			policy:  domain.RegistrationPolicy{UseEffectiveStatus: true, AllowReactivationOverCapacity: true},
			wantErr: domain.ErrRegistrationClosed,
		},
		{
			name: "deadline passed",
			event: func() *domain.Event {
				e := openEvent()
				e.RegistrationDeadline = "2025-06-14"
				return e
			}(),
			policy:  domain.DefaultRegistrationPolicy(),
			wantErr: domain.ErrDeadlinePassed,
		},
		{
			name: "deadline day still open",
			event: func() *domain.Event {
				e := openEvent()
				e.RegistrationDeadline = "2025-06-15"
				return e
			}(),
			policy:  domain.DefaultRegistrationPolicy(),
			wantErr: nil,
		},
		{
			name:   "already registered",
			event:  openEvent(),
			policy: domain.DefaultRegistrationPolicy(),
			setup: func(regs *fakeRegRepo) {
				regs.regs = append(regs.regs, &domain.Registration{
					ID: "reg-old", EventID: "e1", Email: "a@example.com",
					Status: domain.RegistrationStatusConfirmed,
				})
			},
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name: "fully booked",
			event: func() *domain.Event {
				e := openEvent()
				one := 1
				e.MaxAttendees = &one
				return e
			}(),
			policy: domain.DefaultRegistrationPolicy(),
			setup: func(regs *fakeRegRepo) {
				regs.regs = append(regs.regs, &domain.Registration{
					ID: "reg-old", EventID: "e1", Email: "b@example.com",
					Status: domain.RegistrationStatusConfirmed,
				})
			},
			wantErr: domain.ErrFullyBooked,
		},
		{
			name: "cancelled rows do not count toward capacity",
			event: func() *domain.Event {
				e := openEvent()
				one := 1
				e.MaxAttendees = &one
				return e
			}(),
			policy: domain.DefaultRegistrationPolicy(),
			setup: func(regs *fakeRegRepo) {
				regs.regs = append(regs.regs, &domain.Registration{
					ID: "reg-old", EventID: "e1", Email: "b@example.com",
					Status: domain.RegistrationStatusCancelled,
				})
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := newFakeEventRepo()
			if tt.event != nil {
				events.events = []*domain.Event{tt.event}
			}
			regs := newFakeRegRepo()
			if tt.setup != nil {
				tt.setup(regs)
			}
			svc := newRegistrationServiceAt(events, regs, &fakeEmailService{}, tt.policy, now)

			reg, err := svc.Register(ctx, "e1", validApplicant())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.RegistrationStatusConfirmed, reg.Status)
			assert.Equal(t, "a@example.com", reg.Email)
		})
	}
}

func TestRegistrationService_Register_normalizesEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	events := newFakeEventRepo()
	events.events = []*domain.Event{{ID: "e1", Status: domain.EventStatusPublished, Date: "2025-07-01"}}
	regs := newFakeRegRepo()
	regs.regs = append(regs.regs, &domain.Registration{
		ID: "reg-1", EventID: "e1", Email: "a@example.com",
		Status: domain.RegistrationStatusConfirmed,
	})
	svc := newRegistrationServiceAt(events, regs, &fakeEmailService{}, domain.DefaultRegistrationPolicy(), now)

	applicant := validApplicant()
	applicant.Email = "  A@Example.COM "
	_, err := svc.Register(ctx, "e1", applicant)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered, "duplicate check is case- and space-insensitive")
}

func TestRegistrationService_Register_reactivation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cancelled := func() *domain.Registration {
		return &domain.Registration{
			ID:               "reg-1",
			EventID:          "e1",
			FullName:         "Old Name",
			Email:            "a@example.com",
			Phone:            "0123",
			Organization:     "Old Org",
			Role:             "Old Role",
			OrganizationType: domain.OrgTypeTechCompany,
			Suggestions:      "old notes",
			Status:           domain.RegistrationStatusCancelled,
		}
	}

	t.Run("reactivates in place and keeps sparse fields", func(t *testing.T) {
		events := newFakeEventRepo()
		events.events = []*domain.Event{{ID: "e1", Status: domain.EventStatusPublished, Date: "2025-07-01"}}
		regs := newFakeRegRepo()
		regs.regs = append(regs.regs, cancelled())
		emails := &fakeEmailService{}
		svc := newRegistrationServiceAt(events, regs, emails, domain.DefaultRegistrationPolicy(), now)

		reg, err := svc.Register(ctx, "e1", validApplicant())
		require.NoError(t, err)
		assert.Equal(t, "reg-1", reg.ID, "no second row for the same pair")
		assert.Len(t, regs.regs, 1)
		assert.Equal(t, domain.RegistrationStatusConfirmed, reg.Status)
		assert.Equal(t, "Nguyen Van A", reg.FullName)
		assert.Equal(t, "VNU", reg.Organization)
		assert.Equal(t, domain.OrgTypeUniversity, reg.OrganizationType)
		// Optional fields left blank on resubmission keep their old values.
		assert.Equal(t, "0123", reg.Phone)
		assert.Equal(t, "Old Role", reg.Role)
		assert.Equal(t, "old notes", reg.Suggestions)
		assert.Len(t, emails.confirmations, 1)
	})

	t.Run("bypasses capacity by default", func(t *testing.T) {
		one := 1
		events := newFakeEventRepo()
		events.events = []*domain.Event{{ID: "e1", Status: domain.EventStatusPublished, Date: "2025-07-01", MaxAttendees: &one}}
		regs := newFakeRegRepo()
		regs.regs = append(regs.regs,
			cancelled(),
			&domain.Registration{ID: "reg-2", EventID: "e1", Email: "b@example.com", Status: domain.RegistrationStatusConfirmed},
		)
		svc := newRegistrationServiceAt(events, regs, &fakeEmailService{}, domain.DefaultRegistrationPolicy(), now)

		reg, err := svc.Register(ctx, "e1", validApplicant())
		require.NoError(t, err)
		assert.Equal(t, domain.RegistrationStatusConfirmed, reg.Status)
	})

	t.Run("respects capacity when bypass is off", func(t *testing.T) {
		one := 1
		events := newFakeEventRepo()
		events.events = []*domain.Event{{ID: "e1", Status: domain.EventStatusPublished, Date: "2025-07-01", MaxAttendees: &one}}
		regs := newFakeRegRepo()
		regs.regs = append(regs.regs,
			cancelled(),
			&domain.Registration{ID: "reg-2", EventID: "e1", Email: "b@example.com", Status: domain.RegistrationStatusConfirmed},
		)
		policy := domain.RegistrationPolicy{UseEffectiveStatus: false, AllowReactivationOverCapacity: false}
		svc := newRegistrationServiceAt(events, regs, &fakeEmailService{}, policy, now)

		_, err := svc.Register(ctx, "e1", validApplicant())
		assert.ErrorIs(t, err, domain.ErrFullyBooked)
	})
}

func TestRegistrationService_Register_emailBestEffort(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	events := newFakeEventRepo()
	events.events = []*domain.Event{{ID: "e1", Status: domain.EventStatusPublished, Date: "2025-07-01"}}
	regs := newFakeRegRepo()
	emails := &fakeEmailService{err: errors.New("ses down")}
	svc := newRegistrationServiceAt(events, regs, emails, domain.DefaultRegistrationPolicy(), now)

	reg, err := svc.Register(ctx, "e1", validApplicant())
	require.NoError(t, err, "a failed confirmation email does not fail the registration")
	assert.NotEmpty(t, reg.ID)
}

func TestRegistrationService_Check(t *testing.T) {
	ctx := context.Background()
	regs := newFakeRegRepo()
	regs.regs = append(regs.regs, &domain.Registration{
		ID: "reg-1", EventID: "e1", Email: "a@example.com",
		Status: domain.RegistrationStatusConfirmed,
	})
	svc := newRegistrationServiceAt(newFakeEventRepo(), regs, nil, domain.DefaultRegistrationPolicy(), time.Now())

	check, err := svc.Check(ctx, "e1", "A@Example.com")
	require.NoError(t, err)
	assert.True(t, check.Registered)
	assert.Equal(t, domain.RegistrationStatusConfirmed, check.Status)

	check, err = svc.Check(ctx, "e1", "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, check.Registered)
	assert.Empty(t, check.Status)
}

func TestRegistrationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	regs := newFakeRegRepo()
	regs.regs = append(regs.regs, &domain.Registration{
		ID: "reg-1", EventID: "e1", Email: "a@example.com",
		Status: domain.RegistrationStatusConfirmed,
	})
	svc := newRegistrationServiceAt(newFakeEventRepo(), regs, nil, domain.DefaultRegistrationPolicy(), now)

	_, err := svc.UpdateStatus(ctx, "reg-1", "approved")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, "missing", domain.RegistrationStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	reg, err := svc.UpdateStatus(ctx, "reg-1", domain.RegistrationStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusCancelled, reg.Status)
	assert.Equal(t, now, reg.UpdatedAt)
}
