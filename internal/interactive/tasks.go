package interactive

import (
	"context"
	"errors"
	"strconv"
	"toolbox/internal/tasks"
)

type tasksMenu struct {
	prompt  *Prompt
	manager tasks.Manager
}

// RunTasks runs the task manager menu until the user exits or the input ends.
func RunTasks(ctx context.Context, prompt *Prompt, manager tasks.Manager) error {
	menu := tasksMenu{prompt: prompt, manager: manager}
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		prompt.Println("\n=== Task Manager ===")
		prompt.Println("1. Create Task")
		prompt.Println("2. View Tasks")
		prompt.Println("3. Update Task")
		prompt.Println("4. Delete Task")
		prompt.Println("5. Exit")

		choice, err := prompt.Ask("Enter your choice (1-5)")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = menu.create(ctx)
		case "2":
			err = menu.view(ctx)
		case "3":
			err = menu.update(ctx)
		case "4":
			err = menu.delete(ctx)
		case "5":
			prompt.Println("👋 Exiting Task Manager. Goodbye!")
			return nil
		default:
			prompt.Println("⚠️ Invalid choice, please try again.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// askID returns ok = false when the answer is not a number, the message has
// already been printed in that case.
func (m tasksMenu) askID(query string) (id int64, ok bool, err error) {
	answer, err := m.prompt.Ask(query)
	if err != nil {
		return 0, false, err
	}
	id, err = strconv.ParseInt(answer, 10, 64)
	if err != nil {
		m.prompt.Println("⚠️ Invalid input. Task ID must be a number.")
		return 0, false, nil
	}
	return id, true, nil
}

func (m tasksMenu) create(ctx context.Context) error {
	title, err := m.prompt.Ask("Enter task title")
	if err != nil {
		return err
	}
	description, err := m.prompt.Ask("Enter task description")
	if err != nil {
		return err
	}

	task, err := m.manager.Create(ctx, title, description)
	if errors.Is(err, tasks.ErrEmptyTitle) {
		m.prompt.Println("⚠️ Task title cannot be empty.")
		return nil
	}
	if err != nil {
		m.prompt.Println("❌", err)
		return nil
	}
	m.prompt.Println("✅ Task created successfully!")
	m.prompt.Println(task)
	return nil
}

func (m tasksMenu) view(ctx context.Context) error {
	list, err := m.manager.List(ctx)
	if err != nil {
		m.prompt.Println("❌", err)
		return nil
	}
	if len(list) == 0 {
		m.prompt.Println("⚠️ No tasks available.")
		return nil
	}
	m.prompt.Println("\n📋 Task List:")
	RenderTasks(m.prompt.Writer(), list)
	return nil
}

func (m tasksMenu) update(ctx context.Context) error {
	id, ok, err := m.askID("Enter task ID to update")
	if err != nil || !ok {
		return err
	}
	title, err := m.prompt.Ask("Enter new title")
	if err != nil {
		return err
	}
	description, err := m.prompt.Ask("Enter new description")
	if err != nil {
		return err
	}

	task, err := m.manager.Update(ctx, id, title, description)
	switch {
	case errors.Is(err, tasks.ErrTaskNotFound):
		m.prompt.Println("❌ Task not found!")
	case errors.Is(err, tasks.ErrEmptyTitle):
		m.prompt.Println("⚠️ Task title cannot be empty.")
	case err != nil:
		m.prompt.Println("❌", err)
	default:
		m.prompt.Println("✅ Task updated successfully!")
		m.prompt.Println(task)
	}
	return nil
}

func (m tasksMenu) delete(ctx context.Context) error {
	id, ok, err := m.askID("Enter task ID to delete")
	if err != nil || !ok {
		return err
	}

	err = m.manager.Delete(ctx, id)
	switch {
	case errors.Is(err, tasks.ErrTaskNotFound):
		m.prompt.Println("❌ Task not found!")
	case err != nil:
		m.prompt.Println("❌", err)
	default:
		m.prompt.Println("🗑️ Task deleted successfully!")
	}
	return nil
}
