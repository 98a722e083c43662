package member

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// FakeRepository keeps members in memory for controller and service tests.
// Setting Err makes every operation fail with that error, simulating a
// store-level failure.
type FakeRepository struct {
	Members []Member
	Err     error
	lock    sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Members: make([]Member, 0, 10)}
}

func (r *FakeRepository) FindAll(ctx context.Context) ([]Member, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	members := make([]Member, len(r.Members))
	copy(members, r.Members)
	sort.Slice(members, func(i, j int) bool { return members[i].Surname < members[j].Surname })
	return members, nil
}

func (r *FakeRepository) FindByID(ctx context.Context, id uuid.UUID) (m Member, ok bool, err error) {
	if r.Err != nil {
		return m, false, r.Err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, m := range r.Members {
		if m.ID == id {
			return m, true, nil
		}
	}
	return m, false, nil
}

func (r *FakeRepository) Save(ctx context.Context, m Member) error {
	if r.Err != nil {
		return r.Err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Members = append(r.Members, m)
	return nil
}

func (r *FakeRepository) Update(ctx context.Context, m Member) error {
	if r.Err != nil {
		return r.Err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Members {
		if r.Members[ix].ID == m.ID {
			r.Members[ix] = m
		}
	}
	return nil
}

func (r *FakeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	members := r.Members[:0]
	for _, m := range r.Members {
		if m.ID != id {
			members = append(members, m)
		}
	}
	r.Members = members
	return nil
}
