package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"gymme/internal/app/deps"
	"gymme/internal/core/controller"
	"gymme/internal/core/domain/course"
	dl "gymme/internal/core/domain/logging"
	"gymme/internal/core/domain/member"
	"gymme/internal/implementations/view"
)

const usage = `Commands:
  members                                        list members
  courses                                        list courses
  add-member <name> <surname> <yyyy-mm-dd>       add a member
  update-member <id> <name> <surname> <yyyy-mm-dd>
  del-member <id>                                delete a member
  add-course <name>                              add a course
  update-course <id> <name>                      replace a course
  del-course <id>                                delete a course
  sub <course-id> <member-id>                    subscribe a member
  unsub <course-id> <member-id>                  unsubscribe a member
  help                                           show this message
  quit                                           exit`

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	consoleView := view.NewConsoleView(os.Stdout, os.Stderr)
	gym := controller.New(deps.Logger, deps.Manager, consoleView)

	deps.Logger.Info(
		context.Background(),
		"Gym console has started.",
		dl.Entry("store", deps.Config.Store),
	)
	fmt.Println(usage)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" {
			return
		}
		run(gym, args)
	}
}

func run(gym *controller.GymController, args []string) {
	ctx := context.Background()
	switch args[0] {
	case "help":
		fmt.Println(usage)
	case "members":
		gym.AllMembers(ctx)
	case "courses":
		gym.AllCourses(ctx)
	case "add-member":
		if len(args) != 4 {
			fmt.Println("usage: add-member <name> <surname> <yyyy-mm-dd>")
			return
		}
		dateOfBirth, err := time.Parse(view.DATE_LAYOUT, args[3])
		if err != nil {
			fmt.Println("invalid date of birth:", args[3])
			return
		}
		gym.AddMember(ctx, member.Member{
			ID:          uuid.New(),
			Name:        args[1],
			Surname:     args[2],
			DateOfBirth: dateOfBirth,
		})
	case "update-member":
		if len(args) != 5 {
			fmt.Println("usage: update-member <id> <name> <surname> <yyyy-mm-dd>")
			return
		}
		id, ok := parseID(args[1])
		if !ok {
			return
		}
		dateOfBirth, err := time.Parse(view.DATE_LAYOUT, args[4])
		if err != nil {
			fmt.Println("invalid date of birth:", args[4])
			return
		}
		gym.UpdateMember(ctx, member.Member{
			ID:          id,
			Name:        args[2],
			Surname:     args[3],
			DateOfBirth: dateOfBirth,
		})
	case "del-member":
		if len(args) != 2 {
			fmt.Println("usage: del-member <id>")
			return
		}
		id, ok := parseID(args[1])
		if !ok {
			return
		}
		gym.DeleteMember(ctx, member.Member{ID: id})
	case "add-course":
		if len(args) != 2 {
			fmt.Println("usage: add-course <name>")
			return
		}
		gym.AddCourse(ctx, course.Course{ID: uuid.New(), Name: args[1]})
	case "update-course":
		if len(args) != 3 {
			fmt.Println("usage: update-course <id> <name>")
			return
		}
		id, ok := parseID(args[1])
		if !ok {
			return
		}
		gym.UpdateCourse(ctx, course.Course{ID: id, Name: args[2]})
	case "del-course":
		if len(args) != 2 {
			fmt.Println("usage: del-course <id>")
			return
		}
		id, ok := parseID(args[1])
		if !ok {
			return
		}
		gym.DeleteCourse(ctx, course.Course{ID: id})
	case "sub", "unsub":
		if len(args) != 3 {
			fmt.Printf("usage: %s <course-id> <member-id>\n", args[0])
			return
		}
		courseID, ok := parseID(args[1])
		if !ok {
			return
		}
		memberID, ok := parseID(args[2])
		if !ok {
			return
		}
		crs := course.Course{ID: courseID}
		m := member.Member{ID: memberID}
		if args[0] == "sub" {
			gym.AddSubscriber(ctx, crs, m)
		} else {
			gym.RemoveSubscriber(ctx, crs, m)
		}
	default:
		fmt.Println("unknown command:", args[0])
	}
}

func parseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		fmt.Println("invalid id:", raw)
		return uuid.UUID{}, false
	}
	return id, true
}
