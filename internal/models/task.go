package models

import (
	"time"

	"github.com/rossipedia/Forgery/schema"
)

// TaskStatus workflow state of a Task, stored by name
type TaskStatus int64

const (
	StatusOpen TaskStatus = iota
	StatusInProgress
	StatusDone
)

var taskStatusNames = [...]string{"Open", "InProgress", "Done"}

func (s TaskStatus) String() string {
	if s < 0 || int(s) >= len(taskStatusNames) {
		return "TaskStatus(?)"
	}
	return taskStatusNames[s]
}

func (s TaskStatus) Ordinal() int64 { return int64(s) }

func (TaskStatus) Members() []TaskStatus {
	return []TaskStatus{StatusOpen, StatusInProgress, StatusDone}
}

func (TaskStatus) EnumSaveStrategy() schema.EnumSaveStrategy { return schema.EnumString }

// Task a to-do item of the Tasks table
type Task struct {
	Id          int32
	Name        string
	IsDone      bool
	Description string
	DueDate     time.Time
	Status      TaskStatus
	Created     time.Time
	Modified    time.Time
}

func (Task) Describe(t *schema.Table[Task]) {
	t.Table = "Tasks"
	t.Fields(
		schema.NewField("Id", func(m *Task) *int32 { return &m.Id }, schema.Key, schema.Identity),
		schema.NewField("Name", func(m *Task) *string { return &m.Name }),
		schema.NewField("IsDone", func(m *Task) *bool { return &m.IsDone }),
		schema.NewField("Description", func(m *Task) *string { return &m.Description }),
		schema.NewField("DueDate", func(m *Task) *time.Time { return &m.DueDate }),
		schema.NewEnumField("Status", func(m *Task) *TaskStatus { return &m.Status }),
		schema.NewField("Created", func(m *Task) *time.Time { return &m.Created }, schema.CreatedTimestamp),
		schema.NewField("Modified", func(m *Task) *time.Time { return &m.Modified }, schema.ModifiedTimestamp),
	)
}
