package controller

import (
	"context"
	"fmt"

	"gymme/internal/core/domain/course"
	e "gymme/internal/core/domain/errors"
	"gymme/internal/core/domain/logging"
	"gymme/internal/core/domain/member"
	"gymme/internal/core/domain/transaction"
)

// GymController sequences one unit of work per use case. Existence checks
// run inside the transaction, next to the write they guard, so there is
// no window between check and write. A failed precondition is a business
// outcome reported through View.ShowError without aborting the
// transaction; only store-level failures surface as *transaction.Error
// and become a generic error message.
type GymController struct {
	log     logging.Logger
	manager transaction.Manager
	view    View
}

func New(log logging.Logger, manager transaction.Manager, view View) *GymController {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if manager == nil {
		panic(e.NewNilArgumentError("manager"))
	}
	if view == nil {
		panic(e.NewNilArgumentError("view"))
	}
	return &GymController{log: log, manager: manager, view: view}
}

func (c *GymController) AllMembers(ctx context.Context) {
	var members []member.Member
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		var err error
		members, err = provider.Members().FindAll(ctx)
		return err
	})
	if err != nil {
		logging.Error(ctx, c.log, err)
		c.view.ShowError(err.Error())
		return
	}
	c.view.ShowMembers(members)
}

func (c *GymController) AllCourses(ctx context.Context) {
	var courses []course.Course
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		var err error
		courses, err = provider.Courses().FindAll(ctx)
		return err
	})
	if err != nil {
		logging.Error(ctx, c.log, err)
		c.view.ShowError(err.Error())
		return
	}
	c.view.ShowCourses(courses)
}

func (c *GymController) AddMember(ctx context.Context, m member.Member) {
	if err := m.Validate(); err != nil {
		c.view.ShowError(err.Error())
		return
	}
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		members := provider.Members()
		_, ok, err := members.FindByID(ctx, m.ID)
		if err != nil {
			return err
		}
		if ok {
			c.view.ShowError(fmt.Sprintf("A member with id %s already exists", m.ID))
			return nil
		}
		if err := members.Save(ctx, m); err != nil {
			return err
		}
		c.view.MemberAdded(m)
		return nil
	})
	if err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("memberID", m.ID))
		c.view.ShowError(err.Error())
	}
}

func (c *GymController) UpdateMember(ctx context.Context, m member.Member) {
	if err := m.Validate(); err != nil {
		c.view.ShowError(err.Error())
		return
	}
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		members := provider.Members()
		_, ok, err := members.FindByID(ctx, m.ID)
		if err != nil {
			return err
		}
		if !ok {
			c.view.ShowError(fmt.Sprintf("Member with id %s does not exist", m.ID))
			return nil
		}
		if err := members.Update(ctx, m); err != nil {
			return err
		}
		c.view.MemberUpdated(m)
		return nil
	})
	if err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("memberID", m.ID))
		c.view.ShowError(err.Error())
	}
}

func (c *GymController) DeleteMember(ctx context.Context, m member.Member) {
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		members := provider.Members()
		_, ok, err := members.FindByID(ctx, m.ID)
		if err != nil {
			return err
		}
		if !ok {
			c.view.ShowError(fmt.Sprintf("Member with id %s does not exist", m.ID))
			return nil
		}
		if err := members.DeleteByID(ctx, m.ID); err != nil {
			return err
		}
		c.view.MemberDeleted(m)
		return nil
	})
	if err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("memberID", m.ID))
		c.view.ShowError(err.Error())
	}
}

func (c *GymController) AddCourse(ctx context.Context, crs course.Course) {
	if err := crs.Validate(); err != nil {
		c.view.ShowError(err.Error())
		return
	}
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		courses := provider.Courses()
		_, ok, err := courses.FindByID(ctx, crs.ID)
		if err != nil {
			return err
		}
		if ok {
			c.view.ShowError(fmt.Sprintf("A course with id %s already exists", crs.ID))
			return nil
		}
		if err := courses.Save(ctx, crs); err != nil {
			return err
		}
		c.view.CourseAdded(crs)
		return nil
	})
	if err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("courseID", crs.ID))
		c.view.ShowError(err.Error())
	}
}

func (c *GymController) UpdateCourse(ctx context.Context, crs course.Course) {
	if err := crs.Validate(); err != nil {
		c.view.ShowError(err.Error())
		return
	}
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		courses := provider.Courses()
		_, ok, err := courses.FindByID(ctx, crs.ID)
		if err != nil {
			return err
		}
		if !ok {
			c.view.ShowError(fmt.Sprintf("Course with id %s does not exist", crs.ID))
			return nil
		}
		if err := courses.Update(ctx, crs); err != nil {
			return err
		}
		c.view.CourseUpdated(crs)
		return nil
	})
	if err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("courseID", crs.ID))
		c.view.ShowError(err.Error())
	}
}

func (c *GymController) DeleteCourse(ctx context.Context, crs course.Course) {
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		courses := provider.Courses()
		_, ok, err := courses.FindByID(ctx, crs.ID)
		if err != nil {
			return err
		}
		if !ok {
			c.view.ShowError(fmt.Sprintf("Course with id %s does not exist", crs.ID))
			return nil
		}
		if err := courses.DeleteByID(ctx, crs.ID); err != nil {
			return err
		}
		c.view.CourseDeleted(crs)
		return nil
	})
	if err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("courseID", crs.ID))
		c.view.ShowError(err.Error())
	}
}

// AddSubscriber subscribes a member to a course. The course, the member
// and the subscription state are all checked inside the transaction.
func (c *GymController) AddSubscriber(ctx context.Context, crs course.Course, m member.Member) {
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		courses := provider.Courses()
		stored, ok, err := courses.FindByID(ctx, crs.ID)
		if err != nil {
			return err
		}
		if !ok {
			c.view.ShowError(fmt.Sprintf("Course with id %s does not exist", crs.ID))
			return nil
		}
		storedMember, ok, err := provider.Members().FindByID(ctx, m.ID)
		if err != nil {
			return err
		}
		if !ok {
			c.view.ShowError(fmt.Sprintf("Member with id %s does not exist", m.ID))
			return nil
		}
		if stored.IsSubscribed(m.ID) {
			c.view.ShowError(fmt.Sprintf("Member with id %s is already subscribed to course %s", m.ID, stored.Name))
			return nil
		}
		updated := stored.Subscribe(storedMember)
		if err := courses.Update(ctx, updated); err != nil {
			return err
		}
		c.view.CourseUpdated(updated)
		return nil
	})
	if err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("courseID", crs.ID), logging.Entry("memberID", m.ID))
		c.view.ShowError(err.Error())
	}
}

// RemoveSubscriber unsubscribes a member from a course.
func (c *GymController) RemoveSubscriber(ctx context.Context, crs course.Course, m member.Member) {
	err := c.manager.Do(ctx, func(ctx context.Context, provider transaction.RepositoryProvider) error {
		courses := provider.Courses()
		stored, ok, err := courses.FindByID(ctx, crs.ID)
		if err != nil {
			return err
		}
		if !ok {
			c.view.ShowError(fmt.Sprintf("Course with id %s does not exist", crs.ID))
			return nil
		}
		if !stored.IsSubscribed(m.ID) {
			c.view.ShowError(fmt.Sprintf("Member with id %s is not subscribed to course %s", m.ID, stored.Name))
			return nil
		}
		updated := stored.Unsubscribe(m.ID)
		if err := courses.Update(ctx, updated); err != nil {
			return err
		}
		c.view.CourseUpdated(updated)
		return nil
	})
	if err != nil {
		logging.Error(ctx, c.log, err, logging.Entry("courseID", crs.ID), logging.Entry("memberID", m.ID))
		c.view.ShowError(err.Error())
	}
}
