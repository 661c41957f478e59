// Package home covers the Home app: the authenticated user's tasks and task lists.
//
// Home accepts personal access tokens only, so clients for it are built with
// BasicCredentials.
package home

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

const basePath = "/home/v2/me"

// Task filters accepted by list calls.
const (
	FilterIncomplete = "incomplete"
	FilterComplete   = "complete"
	FilterDueToday   = "due_today"
	FilterUpcoming   = "upcoming"
)

// TaskIncludes are the related resources a task request may include.
var TaskIncludes = []string{"assignee", "created_by", "repeating_task", "task_list"}

// TaskListIncludes are the related resources a task list request may include.
var TaskListIncludes = []string{"collaborators", "created_by"}

type TaskAttributes struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	DueAt       string `json:"due_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
	Position    *int   `json:"position,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// TaskWriteAttributes create or update a task. Title is required on create.
type TaskWriteAttributes struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	DueAt       string `json:"due_at,omitempty"`
	TaskListID  string `json:"task_list_id,omitempty"`
	AssigneeID  string `json:"assignee_id,omitempty"`
}

type TaskListAttributes struct {
	Title      string `json:"title,omitempty"`
	ColorName  string `json:"color_name,omitempty"`
	Position   *int   `json:"position,omitempty"`
	ArchivedAt string `json:"archived_at,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// TaskListWriteAttributes create or update a task list. Title is required on create.
type TaskListWriteAttributes struct {
	Title     string `json:"title,omitempty"`
	ColorName string `json:"color_name,omitempty"`
}

type (
	Task         = resources.Entity[TaskAttributes]
	TaskList     = resources.Entity[TaskListAttributes]
	Collaborator = resources.Entity[resources.Attributes]
)

// Service groups the Home app endpoints.
type Service struct {
	tasks     *resources.Resource[TaskAttributes]
	taskLists *resources.Resource[TaskListAttributes]
}

// New returns the Home app bound to client.
func New(client resources.Requester) *Service {
	return &Service{
		tasks:     resources.New[TaskAttributes](client, "Task", basePath+"/tasks", resources.WithIncludes(TaskIncludes...)),
		taskLists: resources.New[TaskListAttributes](client, "TaskList", basePath+"/task_lists", resources.WithIncludes(TaskListIncludes...)),
	}
}

func (s *Service) ListTasks(ctx context.Context, opts *resources.ListOptions) (*resources.Document[[]Task], error) {
	return s.tasks.List(ctx, opts)
}

func (s *Service) GetTask(ctx context.Context, taskID string, opts *resources.GetOptions) (*resources.Document[Task], error) {
	return s.tasks.Get(ctx, taskID, opts)
}

func (s *Service) CreateTask(ctx context.Context, attributes TaskWriteAttributes) (*resources.Document[Task], error) {
	if attributes.Title == "" {
		return nil, &resources.ValidationError{Field: "title", Reason: "is required"}
	}
	return s.tasks.Create(ctx, attributes)
}

func (s *Service) UpdateTask(ctx context.Context, taskID string, attributes TaskWriteAttributes) (*resources.Document[Task], error) {
	return s.tasks.Update(ctx, taskID, attributes)
}

func (s *Service) DeleteTask(ctx context.Context, taskID string) error {
	return s.tasks.Delete(ctx, taskID)
}

func (s *Service) ListTaskLists(ctx context.Context, opts *resources.ListOptions) (*resources.Document[[]TaskList], error) {
	return s.taskLists.List(ctx, opts)
}

func (s *Service) GetTaskList(ctx context.Context, taskListID string, opts *resources.GetOptions) (*resources.Document[TaskList], error) {
	return s.taskLists.Get(ctx, taskListID, opts)
}

func (s *Service) CreateTaskList(ctx context.Context, attributes TaskListWriteAttributes) (*resources.Document[TaskList], error) {
	if attributes.Title == "" {
		return nil, &resources.ValidationError{Field: "title", Reason: "is required"}
	}
	return s.taskLists.Create(ctx, attributes)
}

func (s *Service) UpdateTaskList(ctx context.Context, taskListID string, attributes TaskListWriteAttributes) (*resources.Document[TaskList], error) {
	return s.taskLists.Update(ctx, taskListID, attributes)
}

func (s *Service) DeleteTaskList(ctx context.Context, taskListID string) error {
	return s.taskLists.Delete(ctx, taskListID)
}

// ListTaskListTasks lists the tasks of one task list.
func (s *Service) ListTaskListTasks(ctx context.Context, taskListID string, opts *resources.ListOptions) (*resources.Document[[]Task], error) {
	return resources.Under[TaskAttributes](s.taskLists, "Task", "task_list_id", taskListID, "tasks", resources.WithIncludes(TaskIncludes...)).List(ctx, opts)
}

// ListCollaborators lists the people sharing one task list.
func (s *Service) ListCollaborators(ctx context.Context, taskListID string, opts *resources.ListOptions) (*resources.Document[[]Collaborator], error) {
	return resources.Under[resources.Attributes](s.taskLists, "Collaborator", "task_list_id", taskListID, "collaborators").List(ctx, opts)
}
