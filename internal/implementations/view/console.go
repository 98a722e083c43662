package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gymme/internal/core/domain/course"
	"gymme/internal/core/domain/member"
)

const DATE_LAYOUT = "2006-01-02"

// ConsoleView renders controller callbacks as plain text. Errors go to
// a separate writer so they stay visible when stdout is piped.
type ConsoleView struct {
	out io.Writer
	err io.Writer
}

func NewConsoleView(out io.Writer, err io.Writer) *ConsoleView {
	return &ConsoleView{out: out, err: err}
}

func (v *ConsoleView) ShowMembers(members []member.Member) {
	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSURNAME\tNAME\tDATE OF BIRTH")
	for _, m := range members {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Surname, m.Name, m.DateOfBirth.Format(DATE_LAYOUT))
	}
	w.Flush()
}

func (v *ConsoleView) ShowCourses(courses []course.Course) {
	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSUBSCRIBERS")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%d\n", c.ID, c.Name, len(c.Subscribers))
	}
	w.Flush()
}

func (v *ConsoleView) ShowError(message string) {
	fmt.Fprintln(v.err, "ERROR:", message)
}

func (v *ConsoleView) MemberAdded(m member.Member) {
	fmt.Fprintf(v.out, "Added member %s %s (%s)\n", m.Name, m.Surname, m.ID)
}

func (v *ConsoleView) MemberUpdated(m member.Member) {
	fmt.Fprintf(v.out, "Updated member %s %s (%s)\n", m.Name, m.Surname, m.ID)
}

func (v *ConsoleView) MemberDeleted(m member.Member) {
	fmt.Fprintf(v.out, "Deleted member %s %s (%s)\n", m.Name, m.Surname, m.ID)
}

func (v *ConsoleView) CourseAdded(c course.Course) {
	fmt.Fprintf(v.out, "Added course %s (%s)\n", c.Name, c.ID)
}

func (v *ConsoleView) CourseUpdated(c course.Course) {
	fmt.Fprintf(v.out, "Updated course %s (%s)\n", c.Name, c.ID)
}

func (v *ConsoleView) CourseDeleted(c course.Course) {
	fmt.Fprintf(v.out, "Deleted course %s (%s)\n", c.Name, c.ID)
}
