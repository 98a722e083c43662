package course

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// FakeRepository keeps courses in memory for controller and service tests.
type FakeRepository struct {
	Courses []Course
	Err     error
	lock    sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Courses: make([]Course, 0, 10)}
}

func (r *FakeRepository) FindAll(ctx context.Context) ([]Course, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	courses := make([]Course, len(r.Courses))
	copy(courses, r.Courses)
	sort.Slice(courses, func(i, j int) bool { return courses[i].Name < courses[j].Name })
	return courses, nil
}

func (r *FakeRepository) FindByID(ctx context.Context, id uuid.UUID) (c Course, ok bool, err error) {
	if r.Err != nil {
		return c, false, r.Err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, c := range r.Courses {
		if c.ID == id {
			return c, true, nil
		}
	}
	return c, false, nil
}

func (r *FakeRepository) Save(ctx context.Context, c Course) error {
	if r.Err != nil {
		return r.Err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Courses = append(r.Courses, c)
	return nil
}

func (r *FakeRepository) Update(ctx context.Context, c Course) error {
	if r.Err != nil {
		return r.Err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Courses {
		if r.Courses[ix].ID == c.ID {
			r.Courses[ix] = c
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
	courses := r.Courses[:0]
	for _, c := range r.Courses {
		if c.ID != id {
			courses = append(courses, c)
		}
	}
	r.Courses = courses
	return nil
}
