package controller

import (
	"gymme/internal/core/domain/course"
	"gymme/internal/core/domain/member"
)

// View is the callback interface the controller reports outcomes to. It
// is implemented by the presentation layer; the core never depends on a
// concrete UI. Implementations are expected to clear any previously
// shown error when a confirmation or listing callback arrives.
type View interface {
	ShowMembers(members []member.Member)
	ShowCourses(courses []course.Course)
	ShowError(message string)

	MemberAdded(m member.Member)
	MemberUpdated(m member.Member)
	MemberDeleted(m member.Member)

	CourseAdded(c course.Course)
	CourseUpdated(c course.Course)
	CourseDeleted(c course.Course)
}
