package memrepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

const recentReferralsLimit = 10

type Users struct {
	store *Store
}

func (r *Users) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	defer r.store.lock(ctx)()
	for _, u := range r.store.data.users {
		if u.ID == user.ID || u.Email == user.Email || u.ReferralCode == user.ReferralCode {
			return nil, fmt.Errorf("user %s: %w", user.Email, domain.ErrConflict)
		}
	}
	u := *user
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	u.RecentReferrals = append([]uuid.UUID{}, user.RecentReferrals...)
	r.store.data.users[u.ID] = u
	return &u, nil
}

func (r *Users) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	defer r.store.lock(ctx)()
	u, ok := r.store.data.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

func (r *Users) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.Get(ctx, id)
}

func (r *Users) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	defer r.store.lock(ctx)()
	for _, u := range r.store.data.users {
		if u.ReferralCode == code {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("referral code %s: %w", code, domain.ErrNotFound)
}

func (r *Users) ListActiveVerified(ctx context.Context) ([]uuid.UUID, error) {
	defer r.store.lock(ctx)()
	var users []domain.User
	for _, u := range r.store.data.users {
		if u.KYCStatus == domain.KYCVerified && !u.IsSuspended {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids, nil
}

func (r *Users) update(ctx context.Context, id uuid.UUID, fn func(u *domain.User) error) error {
	defer r.store.lock(ctx)()
	u, ok := r.store.data.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	if err := fn(&u); err != nil {
		return err
	}
	r.store.data.users[id] = u
	return nil
}

func (r *Users) SetKYCStatus(ctx context.Context, id uuid.UUID, status domain.KYCStatus) error {
	return r.update(ctx, id, func(u *domain.User) error {
		u.KYCStatus = status
		return nil
	})
}

func (r *Users) SetSuspended(ctx context.Context, id uuid.UUID, reason string) error {
	return r.update(ctx, id, func(u *domain.User) error {
		u.IsSuspended = true
		u.SuspensionReason = reason
		u.SuspensionCount++
		return nil
	})
}

func (r *Users) ClearSuspended(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, id, func(u *domain.User) error {
		u.IsSuspended = false
		u.SuspensionReason = ""
		return nil
	})
}

func (r *Users) SetReferrer(ctx context.Context, id, referrerID uuid.UUID) error {
	return r.update(ctx, id, func(u *domain.User) error {
		if u.ReferrerID != nil {
			return fmt.Errorf("user %s already referred: %w", id, domain.ErrConflict)
		}
		ref := referrerID
		u.ReferrerID = &ref
		return nil
	})
}

func (r *Users) PushRecentReferral(ctx context.Context, id, referredID uuid.UUID) error {
	return r.update(ctx, id, func(u *domain.User) error {
		recent := append([]uuid.UUID{referredID}, u.RecentReferrals...)
		if len(recent) > recentReferralsLimit {
			recent = recent[:recentReferralsLimit]
		}
		u.RecentReferrals = recent
		return nil
	})
}

type Referrals struct {
	store *Store
}

func (r *Referrals) Create(ctx context.Context, edge *domain.ReferralEdge) error {
	defer r.store.lock(ctx)()
	for _, e := range r.store.data.referrals {
		if e.ReferredUserID == edge.ReferredUserID {
			return fmt.Errorf("referral of %s: %w", edge.ReferredUserID, domain.ErrConflict)
		}
	}
	r.store.data.referrals[edge.ID] = *edge
	return nil
}

func (r *Referrals) GetByReferredForUpdate(ctx context.Context, referredUserID uuid.UUID) (*domain.ReferralEdge, error) {
	defer r.store.lock(ctx)()
	for _, e := range r.store.data.referrals {
		if e.ReferredUserID == referredUserID {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("referral of %s: %w", referredUserID, domain.ErrNotFound)
}

func (r *Referrals) MarkRewarded(ctx context.Context, id uuid.UUID) error {
	defer r.store.lock(ctx)()
	e, ok := r.store.data.referrals[id]
	if !ok || e.RewardCredited {
		return fmt.Errorf("referral %s already rewarded: %w", id, domain.ErrConflict)
	}
	e.RewardCredited = true
	r.store.data.referrals[id] = e
	return nil
}

func (r *Referrals) CountSince(ctx context.Context, referrerID uuid.UUID, since time.Time) (int, error) {
	defer r.store.lock(ctx)()
	n := 0
	for _, e := range r.store.data.referrals {
		if e.ReferrerID == referrerID && !e.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}
