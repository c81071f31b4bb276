package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aihub/internal/domain"
)

type fakeNewsletterRepo struct {
	subs   []*domain.NewsletterSubscriber
	err    error
	nextID int
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{nextID: 1}
}

func (f *fakeNewsletterRepo) Create(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	if f.err != nil {
		return f.err
	}
	for _, cur := range f.subs {
		if cur.Email == sub.Email {
			return domain.ErrConflict
		}
	}
	if sub.ID == "" {
		sub.ID = fmt.Sprintf("sub-%d", f.nextID)
		f.nextID++
	}
	cp := *sub
	f.subs = append(f.subs, &cp)
	return nil
}

func (f *fakeNewsletterRepo) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.subs {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNewsletterRepo) List(ctx context.Context) ([]*domain.NewsletterSubscriber, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.NewsletterSubscriber, 0, len(f.subs))
	for _, s := range f.subs {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeNewsletterRepo) Update(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	for i, cur := range f.subs {
		if cur.ID == sub.ID {
			cp := *sub
			f.subs[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNewsletterRepo) Delete(ctx context.Context, id string) error {
	for i, s := range f.subs {
		if s.ID == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNewsletterRepo) CountActive(ctx context.Context) (int, error) {
	n := 0
	for _, s := range f.subs {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

func TestNewsletterService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh subscription", func(t *testing.T) {
		repo := newFakeNewsletterRepo()
		svc := NewNewsletterService(repo, testTimeout)

		sub, err := svc.Subscribe(ctx, " Reader@Example.COM ", "Reader")
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", sub.Email)
		assert.True(t, sub.IsActive)
		assert.False(t, sub.SubscribedAt.IsZero())
	})

	t.Run("active duplicate", func(t *testing.T) {
		repo := newFakeNewsletterRepo()
		repo.subs = []*domain.NewsletterSubscriber{
			{ID: "sub-1", Email: "reader@example.com", IsActive: true},
		}
		svc := NewNewsletterService(repo, testTimeout)

		_, err := svc.Subscribe(ctx, "reader@example.com", "")
		assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	})

	t.Run("reactivates inactive subscriber", func(t *testing.T) {
		unsubAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		repo := newFakeNewsletterRepo()
		repo.subs = []*domain.NewsletterSubscriber{
			{ID: "sub-1", Email: "reader@example.com", Name: "Old Name", IsActive: false, UnsubscribedAt: &unsubAt},
		}
		svc := NewNewsletterService(repo, testTimeout)

		sub, err := svc.Subscribe(ctx, "reader@example.com", "New Name")
		require.NoError(t, err)
		assert.Equal(t, "sub-1", sub.ID, "no duplicate row")
		assert.Len(t, repo.subs, 1)
		assert.True(t, sub.IsActive)
		assert.Nil(t, sub.UnsubscribedAt)
		assert.Equal(t, "New Name", sub.Name)
	})

	t.Run("blank name keeps the old one on reactivation", func(t *testing.T) {
		repo := newFakeNewsletterRepo()
		repo.subs = []*domain.NewsletterSubscriber{
			{ID: "sub-1", Email: "reader@example.com", Name: "Old Name", IsActive: false},
		}
		svc := NewNewsletterService(repo, testTimeout)

		sub, err := svc.Subscribe(ctx, "reader@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "Old Name", sub.Name)
	})
}

func TestNewsletterService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNewsletterRepo()
	repo.subs = []*domain.NewsletterSubscriber{{ID: "sub-1", Email: "reader@example.com"}}
	svc := NewNewsletterService(repo, testTimeout)

	require.NoError(t, svc.Delete(ctx, "sub-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "sub-1"), domain.ErrNotFound)
}
