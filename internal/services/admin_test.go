package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aihub/internal/domain"
)

type fakeCollaborationRepo struct {
	requests []*domain.CollaborationRequest
	err      error
	nextID   int
}

func newFakeCollaborationRepo() *fakeCollaborationRepo {
	return &fakeCollaborationRepo{nextID: 1}
}

func (f *fakeCollaborationRepo) Create(ctx context.Context, req *domain.CollaborationRequest) error {
	if f.err != nil {
		return f.err
	}
	if req.ID == "" {
		req.ID = fmt.Sprintf("collab-%d", f.nextID)
		f.nextID++
	}
	cp := *req
	f.requests = append(f.requests, &cp)
	return nil
}

func (f *fakeCollaborationRepo) GetByID(ctx context.Context, id string) (*domain.CollaborationRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCollaborationRepo) List(ctx context.Context) ([]*domain.CollaborationRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.CollaborationRequest, 0, len(f.requests))
	for _, r := range f.requests {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCollaborationRepo) MarkRead(ctx context.Context, id string) error {
	for _, r := range f.requests {
		if r.ID == id {
			r.IsRead = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCollaborationRepo) Delete(ctx context.Context, id string) error {
	for i, r := range f.requests {
		if r.ID == id {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCollaborationRepo) CountAll(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.requests), nil
}

func (f *fakeCollaborationRepo) CountUnread(ctx context.Context) (int, error) {
	n := 0
	for _, r := range f.requests {
		if !r.IsRead {
			n++
		}
	}
	return n, nil
}

func TestAdminService_DashboardStats(t *testing.T) {
	ctx := context.Background()

	contacts := newFakeContactRepo()
	contacts.messages = []*domain.ContactMessage{
		{ID: "msg-1", IsRead: true},
		{ID: "msg-2"},
		{ID: "msg-3"},
	}
	subscribers := newFakeNewsletterRepo()
	subscribers.subs = []*domain.NewsletterSubscriber{
		{ID: "sub-1", IsActive: true},
		{ID: "sub-2", IsActive: false},
	}
	events := newFakeEventRepo()
	events.events = []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	regs := newFakeRegRepo()
	regs.regs = []*domain.Registration{{ID: "reg-1"}}
	users := newFakeUserRepo()
	users.users = []*domain.User{{ID: "user-1"}}
	collabs := newFakeCollaborationRepo()
	collabs.requests = []*domain.CollaborationRequest{
		{ID: "collab-1", IsRead: true},
		{ID: "collab-2"},
	}

	svc := NewAdminService(contacts, subscribers, events, regs, users, collabs, testTimeout)

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Contacts.Total)
	assert.Equal(t, 2, stats.Contacts.Unread)
	assert.Equal(t, 1, stats.Subscribers, "only active subscribers count")
	assert.Equal(t, 2, stats.Events)
	assert.Equal(t, 1, stats.Registrations)
	assert.Equal(t, 1, stats.Users)
	assert.Equal(t, 2, stats.Collaborations.Total)
	assert.Equal(t, 1, stats.Collaborations.Unread)
}

func TestAdminService_DashboardStats_repoError(t *testing.T) {
	ctx := context.Background()

	contacts := newFakeContactRepo()
	contacts.err = fmt.Errorf("db down")
	svc := NewAdminService(contacts, newFakeNewsletterRepo(), newFakeEventRepo(), newFakeRegRepo(), newFakeUserRepo(), newFakeCollaborationRepo(), testTimeout)

	_, err := svc.DashboardStats(ctx)
	assert.Error(t, err)
}
