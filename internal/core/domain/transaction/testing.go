package transaction

import (
	"context"

	"gymme/internal/core/domain/course"
	"gymme/internal/core/domain/member"
)

type FakeRepositoryProvider struct {
	MemberRepository *member.FakeRepository
	CourseRepository *course.FakeRepository
}

func NewFakeRepositoryProvider() *FakeRepositoryProvider {
	return &FakeRepositoryProvider{
		MemberRepository: member.NewFakeRepository(),
		CourseRepository: course.NewFakeRepository(),
	}
}

func (p *FakeRepositoryProvider) Members() member.Repository {
	return p.MemberRepository
}

func (p *FakeRepositoryProvider) Courses() course.Repository {
	return p.CourseRepository
}

// FakeManager runs the unit of work immediately against the fake provider,
// normalizing failures the way real managers do. BeginError simulates a
// failure to open the transaction boundary.
type FakeManager struct {
	Provider   *FakeRepositoryProvider
	BeginError error
	DoCalls    int
}

func NewFakeManager(provider *FakeRepositoryProvider) *FakeManager {
	return &FakeManager{Provider: provider}
}

func (m *FakeManager) Do(ctx context.Context, code Code) error {
	m.DoCalls++
	if m.BeginError != nil {
		return NewError(m.BeginError.Error(), m.BeginError)
	}
	if err := code(ctx, m.Provider); err != nil {
		return NewError(err.Error(), err)
	}
	return nil
}
