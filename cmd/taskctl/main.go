// Command taskctl is a terminal client for the task tracker API. It keeps the
// session token in a local file, so the login survives between invocations —
// the same state machine the web client runs: token present means the task
// views are available, a rejected token drops back to login.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/pkg/client"
)

const usage = `usage: taskctl <command> [arguments]

commands:
  register <username> <password>   create an account
  login    <username> <password>   log in and store the session token
  logout                           revoke the token and clear the session
  list                             list your tasks
  add      <title> [description]   create a task
  done     <id>                    mark a task complete
  update   <id> [flags]            update a task (see taskctl update -h)
  delete   <id>                    delete a task

environment:
  TASKS_API_URL       API base URL (default http://localhost:8080)
  TASKS_SESSION_FILE  session token path (default under the user config dir)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "taskctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		if len(rest) != 2 {
			return errors.New("register needs <username> <password>")
		}
		user, err := c.Register(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("registered %s (%s)\n", user.Username, user.ID)
		return nil

	case "login":
		if len(rest) != 2 {
			return errors.New("login needs <username> <password>")
		}
		if err := c.Login(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Println("logged in")
		return nil

	case "logout":
		if err := c.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "list":
		tasks, err := c.Tasks(ctx)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println("no tasks")
			return nil
		}
		for _, t := range tasks {
			mark := " "
			if t.IsComplete {
				mark = "x"
			}
			fmt.Printf("[%s] %s  %s", mark, t.ID, t.Title)
			if t.Description != "" {
				fmt.Printf("  — %s", t.Description)
			}
			fmt.Println()
		}
		return nil

	case "add":
		if len(rest) < 1 {
			return errors.New("add needs <title> [description]")
		}
		description := ""
		if len(rest) > 1 {
			description = rest[1]
		}
		task, err := c.CreateTask(ctx, rest[0], description)
		if err != nil {
			return err
		}
		fmt.Printf("created %s\n", task.ID)
		return nil

	case "done":
		if len(rest) != 1 {
			return errors.New("done needs <id>")
		}
		return markDone(ctx, c, rest[0])

	case "update":
		return updateCmd(ctx, c, rest)

	case "delete":
		if len(rest) != 1 {
			return errors.New("delete needs <id>")
		}
		if err := c.DeleteTask(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func newClient() (*client.Client, error) {
	baseURL := os.Getenv("TASKS_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	sessionPath := os.Getenv("TASKS_SESSION_FILE")
	if sessionPath == "" {
		var err error
		sessionPath, err = client.DefaultSessionPath()
		if err != nil {
			return nil, err
		}
	}

	return client.New(baseURL, client.NewSession(sessionPath)), nil
}

// markDone fetches the task first: updates are whole-record overwrites, so the
// current title and description must be carried along.
func markDone(ctx context.Context, c *client.Client, id string) error {
	task, err := findTask(ctx, c, id)
	if err != nil {
		return err
	}
	if _, err := c.UpdateTask(ctx, task.ID, task.Title, task.Description, true); err != nil {
		return err
	}
	fmt.Println("done")
	return nil
}

func updateCmd(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	title := fs.String("title", "", "new title (defaults to current)")
	description := fs.String("desc", "", "new description (defaults to current)")
	complete := fs.Bool("complete", false, "mark complete")
	reopen := fs.Bool("reopen", false, "mark not complete")

	if len(args) < 1 {
		return errors.New("update needs <id>")
	}
	id := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *complete && *reopen {
		return errors.New("-complete and -reopen are mutually exclusive")
	}

	task, err := findTask(ctx, c, id)
	if err != nil {
		return err
	}

	newTitle := task.Title
	if *title != "" {
		newTitle = *title
	}
	newDescription := task.Description
	if *description != "" {
		newDescription = *description
	}
	isComplete := task.IsComplete
	if *complete {
		isComplete = true
	}
	if *reopen {
		isComplete = false
	}

	updated, err := c.UpdateTask(ctx, id, newTitle, newDescription, isComplete)
	if err != nil {
		return err
	}
	fmt.Printf("updated %s\n", updated.ID)
	return nil
}

func findTask(ctx context.Context, c *client.Client, id string) (*client.Task, error) {
	tasks, err := c.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("task %s not found", id)
}
