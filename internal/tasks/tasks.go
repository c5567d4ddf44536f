package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"toolbox/internal/components/assert"
	"toolbox/internal/components/chrono"
	"toolbox/internal/components/telemetry"
	"toolbox/internal/tasks/db"
	"toolbox/pkg/migrations"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("toolbox.internal.tasks")

const (
	report_db_query   = "db.query"
	report_task_count = "task.count"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title is empty")
)

type Task struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Task) String() string {
	return fmt.Sprintf("[%d] %s - %s", t.ID, t.Title, t.Description)
}

// Manager keeps tasks in an sqlite database. IDs start at 1 and are never
// reused, even after the task holding them is deleted.
type Manager struct {
	database *sql.DB
	qry      *db.Queries
	makeTx   db.MakeTx
	clock    chrono.API
	tel      telemetry.API
}

// NewManager opens a fresh in-memory store, its tasks are gone once Close is
// called or the process exits.
func NewManager(ctx context.Context, clock chrono.API, tel telemetry.API) (Manager, error) {
	database, err := migrations.OpenAndMigrateDB(ctx, db.Schema, migrations.MemoryPath)
	if err != nil {
		return Manager{}, err
	}
	return NewManagerFromDB(database, clock, tel), nil
}

// NewManagerFromDB uses an already migrated database.
func NewManagerFromDB(database *sql.DB, clock chrono.API, tel telemetry.API) Manager {
	assert.NotNil(database)
	assert.NotNil(clock)
	assert.NotNil(tel)

	return Manager{
		database: database,
		qry:      db.New(database),
		makeTx:   db.NewMakeTx(database),
		clock:    clock,
		tel:      telemetry.NewScopedAPI("tasks", tel),
	}
}

func (m Manager) Close() error {
	return m.database.Close()
}

func (m Manager) toTask(row db.Task) Task {
	loc := m.clock.Location()
	return Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		CreatedAt:   time.UnixMilli(row.CreatedAt).In(loc),
		UpdatedAt:   time.UnixMilli(row.UpdatedAt).In(loc),
	}
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

func (m Manager) reportCount(ctx context.Context) {
	count, err := m.qry.GetTaskCount(ctx)
	if err != nil {
		m.tel.ReportBroken(report_db_query, err, "GetTaskCount")
		return
	}
	m.tel.ReportCount(report_task_count, count)
}

func (m Manager) Create(ctx context.Context, title, description string) (Task, error) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()

	title, err := normalizeTitle(title)
	if err != nil {
		return Task{}, err
	}

	now := m.clock.Now().UnixMilli()
	row, err := m.qry.CreateTask(ctx, db.CreateTaskParams{
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		m.tel.ReportBroken(report_db_query, err, "CreateTask", title)
		return Task{}, fmt.Errorf("create task: %w", err)
	}
	span.SetAttributes(attribute.Int64("task.id", row.ID))

	m.reportCount(ctx)
	return m.toTask(row), nil
}

// List returns every task ordered by id.
func (m Manager) List(ctx context.Context) ([]Task, error) {
	rows, err := m.qry.ListTasks(ctx)
	if err != nil {
		m.tel.ReportBroken(report_db_query, err, "ListTasks")
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]Task, len(rows))
	for i, row := range rows {
		out[i] = m.toTask(row)
	}
	return out, nil
}

func (m Manager) Get(ctx context.Context, id int64) (Task, error) {
	row, err := m.qry.GetTask(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Task{}, ErrTaskNotFound
	}
	if err != nil {
		m.tel.ReportBroken(report_db_query, err, "GetTask", id)
		return Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return m.toTask(row), nil
}

// Update replaces the title and description of a task and returns the
// updated task.
func (m Manager) Update(ctx context.Context, id int64, title, description string) (Task, error) {
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("task.id", id))

	title, err := normalizeTitle(title)
	if err != nil {
		return Task{}, err
	}

	tx, discard, commit, err := m.makeTx(ctx)
	if err != nil {
		m.tel.ReportBroken(report_db_query, err, "BeginTx")
		return Task{}, fmt.Errorf("update task %d: %w", id, err)
	}
	defer discard()

	affected, err := tx.UpdateTask(ctx, db.UpdateTaskParams{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(description),
		UpdatedAt:   m.clock.Now().UnixMilli(),
	})
	if err != nil {
		m.tel.ReportBroken(report_db_query, err, "UpdateTask", id)
		return Task{}, fmt.Errorf("update task %d: %w", id, err)
	}
	if affected == 0 {
		return Task{}, ErrTaskNotFound
	}

	row, err := tx.GetTask(ctx, id)
	if err != nil {
		m.tel.ReportBroken(report_db_query, err, "GetTask", id)
		return Task{}, fmt.Errorf("update task %d: %w", id, err)
	}

	err = commit()
	if err != nil {
		m.tel.ReportBroken(report_db_query, err, "Commit")
		return Task{}, fmt.Errorf("update task %d: %w", id, err)
	}
	return m.toTask(row), nil
}

func (m Manager) Delete(ctx context.Context, id int64) error {
	affected, err := m.qry.DeleteTask(ctx, id)
	if err != nil {
		m.tel.ReportBroken(report_db_query, err, "DeleteTask", id)
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	m.reportCount(ctx)
	return nil
}
