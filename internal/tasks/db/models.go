package db

type Task struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   int64
	UpdatedAt   int64
}
