package main

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/kateder/internal/app"
	"github.com/shrimpsizemoose/kateder/internal/gateway"
	"github.com/shrimpsizemoose/kateder/internal/models"
	"github.com/shrimpsizemoose/kateder/internal/workflow"
)

const workspaceHelp = `Commands:
courses - list your courses
add - create a course
edit <id> - edit a course
del <id> - delete a course
open <id> - open a course
stats <id> - course statistics
students - list all registered students
logout - end the session
quit - leave`

const courseHelp = `Commands:
materials | mat.add | mat.edit <id> | mat.del <id>
assignments | asg.add | asg.edit <id> | asg.del <id>
subs <assignment-id> - list submissions
grade <submission-id> - grade a submission
students | student.add | student.del <id>
stats - course statistics
seed [n] - generate demo data (admin only)
seed.stats - seeded-data statistics (admin only)
back - return to the course list`

var errQuit = errors.New("quit")

type cli struct {
	service *app.Service
	term    *terminal
}

func newCLI(service *app.Service, term *terminal) *cli {
	return &cli{service: service, term: term}
}

// Run alternates between the login screen and the workspace. The guard
// decides which one may open; a 401 anywhere drops the session and the
// next iteration lands back on login.
func (c *cli) Run() error {
	c.term.say("kateder — teacher client")

	for {
		var err error
		if c.service.Guard.RequireSession() {
			err = c.workspace()
		} else {
			err = c.loginScreen()
		}

		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// show prints a failure to the user. The expired-session sentinel stays
// silent: the credential is already gone and the run loop will route to
// login on its own.
func (c *cli) show(err error) {
	if err == nil || errors.Is(err, gateway.ErrSessionExpired) {
		return
	}
	c.term.say("Error: %v", err)
}

func (c *cli) loginScreen() error {
	if !c.service.Guard.RequireAnonymous() {
		return nil
	}

	ctx := context.Background()
	for {
		switch cmd := c.term.prompt("login> (login/register/quit)"); cmd {
		case "login":
			if c.login(ctx) {
				return nil
			}
		case "register":
			if c.register(ctx) {
				return nil
			}
		case "quit":
			return errQuit
		default:
			c.term.say("Type login, register or quit.")
		}
	}
}

func (c *cli) login(ctx context.Context) bool {
	creds := models.Credentials{
		Email:    c.term.prompt("Email"),
		Password: c.term.prompt("Password"),
	}
	if err := creds.Validate(); err != nil {
		c.term.say("Enter email and password.")
		return false
	}

	if _, err := c.service.Gateway.Login(ctx, creds); err != nil {
		c.show(err)
		return false
	}
	return true
}

func (c *cli) register(ctx context.Context) bool {
	reg := models.Registration{
		Email:    c.term.prompt("Email"),
		Password: c.term.prompt("Password"),
		FullName: c.term.prompt("Full name"),
		Role:     "teacher",
	}
	if err := reg.Validate(); err != nil {
		c.term.say("Email, a password of 6+ characters and a full name are required.")
		return false
	}

	if _, err := c.service.Gateway.Register(ctx, reg); err != nil {
		c.show(err)
		return false
	}

	c.term.say("Registered, logging in...")
	_, err := c.service.Gateway.Login(ctx, models.Credentials{Email: reg.Email, Password: reg.Password})
	if err != nil {
		c.show(err)
		return false
	}
	return true
}

func (c *cli) workspace() error {
	ctx := context.Background()

	user, err := c.service.Gateway.CurrentUser(ctx)
	if err != nil {
		c.show(err)
		if errors.Is(err, gateway.ErrSessionExpired) {
			return nil
		}
		return err
	}
	c.term.say("Signed in as %s", user.FullName)

	flow := workflow.NewCourseFlow(c.service.Gateway, c.term, c.term)

	actions := workflow.NewDispatcher()
	actions.Register("courses", func(ctx context.Context, _ string) error {
		return flow.List(ctx)
	})
	actions.Register("add", func(ctx context.Context, _ string) error {
		return c.courseForm(ctx, flow, flow.StartCreate())
	})
	actions.Register("edit", func(ctx context.Context, id string) error {
		draft, err := flow.StartEdit(ctx, id)
		if err != nil || draft == nil {
			return err
		}
		return c.courseForm(ctx, flow, draft)
	})
	actions.Register("del", flow.Remove)
	actions.Register("stats", flow.Stats)
	actions.Register("students", func(ctx context.Context, _ string) error {
		students, err := c.service.Gateway.AllStudents(ctx)
		if err != nil {
			return err
		}
		c.term.RenderStudents(students)
		return nil
	})
	actions.Register("open", func(ctx context.Context, id string) error {
		return c.courseScreen(ctx, id)
	})

	c.show(flow.List(ctx))

	for {
		if !c.service.Guard.RequireSession() {
			return nil
		}

		cmd, id := splitCommand(c.term.prompt("kateder>"))
		switch cmd {
		case "":
			continue
		case "help":
			c.term.say(workspaceHelp)
		case "logout":
			if err := c.service.Session.Clear(); err != nil {
				logger.Error.Printf("Failed to erase credential on logout: %v", err)
			}
			return nil
		case "quit":
			return errQuit
		default:
			if !actions.Known(cmd) {
				c.term.say("Unknown command, try help.")
				continue
			}
			c.show(actions.Dispatch(ctx, cmd, id))
		}
	}
}

func (c *cli) courseForm(ctx context.Context, flow *workflow.CourseFlow, draft *models.CourseDraft) error {
	draft.Title = c.term.promptDefault("Title", draft.Title)
	draft.Description = c.term.promptDefault("Description", draft.Description)
	return flow.Submit(ctx, *draft)
}

func (c *cli) courseScreen(ctx context.Context, courseID string) error {
	if courseID == "" {
		c.term.say("Course id required: open <id>")
		return nil
	}

	course, err := c.service.Gateway.Course(ctx, courseID)
	if err != nil {
		return err
	}
	c.term.say("Course: %s", course.Title)

	gw := c.service.Gateway
	materials := workflow.NewMaterialFlow(gw, c.term, c.term, courseID)
	assignments := workflow.NewAssignmentFlow(gw, c.term, c.term, courseID)
	students := workflow.NewStudentFlow(gw, c.term, c.term, courseID)
	submissions := workflow.NewSubmissionFlow(gw, c.term)
	courses := workflow.NewCourseFlow(gw, c.term, c.term)

	// The submissions list is scoped to whichever assignment was opened
	// last; grading needs that context.
	var currentAssignment string

	actions := workflow.NewDispatcher()
	actions.Register("materials", func(ctx context.Context, _ string) error {
		return materials.List(ctx)
	})
	actions.Register("mat.add", func(ctx context.Context, _ string) error {
		return c.materialForm(ctx, materials, materials.StartCreate())
	})
	actions.Register("mat.edit", func(ctx context.Context, id string) error {
		draft, err := materials.StartEdit(ctx, id)
		if err != nil || draft == nil {
			return err
		}
		return c.materialForm(ctx, materials, draft)
	})
	actions.Register("mat.del", materials.Remove)

	actions.Register("assignments", func(ctx context.Context, _ string) error {
		return assignments.List(ctx)
	})
	actions.Register("asg.add", func(ctx context.Context, _ string) error {
		return c.assignmentForm(ctx, assignments, assignments.StartCreate())
	})
	actions.Register("asg.edit", func(ctx context.Context, id string) error {
		draft, err := assignments.StartEdit(ctx, id)
		if err != nil || draft == nil {
			return err
		}
		return c.assignmentForm(ctx, assignments, draft)
	})
	actions.Register("asg.del", assignments.Remove)

	actions.Register("subs", func(ctx context.Context, id string) error {
		if id == "" {
			c.term.say("Assignment id required: subs <id>")
			return nil
		}
		if err := submissions.List(ctx, id); err != nil {
			return err
		}
		currentAssignment = id
		return nil
	})
	actions.Register("grade", func(ctx context.Context, id string) error {
		if currentAssignment == "" {
			c.term.say("Open submissions first: subs <assignment-id>")
			return nil
		}
		score := c.term.prompt("Score")
		comment := c.term.prompt("Comment")
		return submissions.Grade(ctx, currentAssignment, id, score, comment)
	})

	actions.Register("students", func(ctx context.Context, _ string) error {
		return students.List(ctx)
	})
	actions.Register("student.add", func(ctx context.Context, _ string) error {
		enrollment := students.StartAdd()
		enrollment.Email = c.term.prompt("Student email")
		return students.Submit(ctx, *enrollment)
	})
	actions.Register("student.del", students.Remove)

	actions.Register("stats", func(ctx context.Context, _ string) error {
		return courses.Stats(ctx, courseID)
	})

	actions.Register("seed", func(ctx context.Context, arg string) error {
		count := 10
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				c.term.say("Record count not understood: seed [n]")
				return nil
			}
			count = n
		}
		report, err := gw.GenerateMockData(ctx, courseID, count)
		if err != nil {
			return err
		}
		c.term.say("%s (%d created)", report.Message, report.Created)
		return nil
	})
	actions.Register("seed.stats", func(ctx context.Context, _ string) error {
		raw, err := gw.MockStatistics(ctx, courseID)
		if err != nil {
			return err
		}
		c.term.say("%s", string(raw))
		return nil
	})

	c.show(materials.List(ctx))
	c.show(assignments.List(ctx))

	for {
		if !c.service.Guard.RequireSession() {
			return nil
		}

		cmd, id := splitCommand(c.term.prompt(course.Title + ">"))
		switch cmd {
		case "":
			continue
		case "help":
			c.term.say(courseHelp)
		case "back":
			return nil
		case "quit":
			return errQuit
		default:
			if !actions.Known(cmd) {
				c.term.say("Unknown command, try help.")
				continue
			}
			c.show(actions.Dispatch(ctx, cmd, id))
		}
	}
}

func (c *cli) materialForm(ctx context.Context, flow *workflow.MaterialFlow, draft *models.MaterialDraft) error {
	draft.Title = c.term.promptDefault("Title", draft.Title)
	draft.Content = c.term.promptDefault("Content", draft.Content)

	current := ""
	if draft.FileURL != nil {
		current = *draft.FileURL
	}
	if url := c.term.promptDefault("File URL", current); url != "" {
		draft.FileURL = &url
	}

	order := c.term.promptDefault("Order", strconv.Itoa(draft.OrderNumber))
	if n, err := strconv.Atoi(order); err == nil {
		draft.OrderNumber = n
	}

	return flow.Submit(ctx, *draft)
}

func (c *cli) assignmentForm(ctx context.Context, flow *workflow.AssignmentFlow, draft *models.AssignmentDraft) error {
	draft.Title = c.term.promptDefault("Title", draft.Title)
	draft.Description = c.term.promptDefault("Description", draft.Description)

	score := c.term.promptDefault("Max score", strconv.Itoa(draft.MaxScore))
	if n, err := strconv.Atoi(score); err == nil {
		draft.MaxScore = n
	}

	current := ""
	if draft.Deadline != nil {
		current = draft.Deadline.Format("2006-01-02 15:04")
	}
	if raw := c.term.promptDefault("Deadline (YYYY-MM-DD HH:MM, empty for none)", current); raw != "" {
		deadline, err := time.ParseInLocation("2006-01-02 15:04", raw, time.UTC)
		if err != nil {
			c.term.say("Deadline not understood, leaving it as is.")
		} else {
			draft.Deadline = &deadline
		}
	}

	return flow.Submit(ctx, *draft)
}

func splitCommand(line string) (cmd, id string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], fields[1]
}
