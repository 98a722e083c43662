package controller

import (
	"sync"

	"gymme/internal/core/domain/course"
	"gymme/internal/core/domain/member"
)

// FakeView records every callback for assertions in controller tests.
type FakeView struct {
	ShownMembers   [][]member.Member
	ShownCourses   [][]course.Course
	Errors         []string
	AddedMembers   []member.Member
	UpdatedMembers []member.Member
	DeletedMembers []member.Member
	AddedCourses   []course.Course
	UpdatedCourses []course.Course
	DeletedCourses []course.Course
	lock           sync.Mutex
}

func NewFakeView() *FakeView {
	return &FakeView{}
}

func (v *FakeView) ShowMembers(members []member.Member) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.ShownMembers = append(v.ShownMembers, members)
}

func (v *FakeView) ShowCourses(courses []course.Course) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.ShownCourses = append(v.ShownCourses, courses)
}

func (v *FakeView) ShowError(message string) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.Errors = append(v.Errors, message)
}

func (v *FakeView) MemberAdded(m member.Member) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.AddedMembers = append(v.AddedMembers, m)
}

func (v *FakeView) MemberUpdated(m member.Member) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.UpdatedMembers = append(v.UpdatedMembers, m)
}

func (v *FakeView) MemberDeleted(m member.Member) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.DeletedMembers = append(v.DeletedMembers, m)
}

func (v *FakeView) CourseAdded(c course.Course) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.AddedCourses = append(v.AddedCourses, c)
}

func (v *FakeView) CourseUpdated(c course.Course) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.UpdatedCourses = append(v.UpdatedCourses, c)
}

func (v *FakeView) CourseDeleted(c course.Course) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.DeletedCourses = append(v.DeletedCourses, c)
}

func (v *FakeView) LastError() string {
	v.lock.Lock()
	defer v.lock.Unlock()
	if len(v.Errors) == 0 {
		return ""
	}
	return v.Errors[len(v.Errors)-1]
}
