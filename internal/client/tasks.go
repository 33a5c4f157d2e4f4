// ABOUTME: Team task endpoints backing the kanban board
// ABOUTME: CRUD over /teams/{id}/tasks

package client

import (
	"context"
	"net/http"
	"strconv"
)

// TaskInput is the payload for creating or updating a task. Pointer fields
// distinguish "leave unchanged" from "set to zero value" on update.
type TaskInput struct {
	Title        string  `json:"title,omitempty"`
	Description  string  `json:"description,omitempty"`
	Status       string  `json:"status,omitempty"`
	Priority     string  `json:"priority,omitempty"`
	Color        string  `json:"color,omitempty"`
	AssignedToID *int    `json:"assigned_to_id,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
}

func taskPath(teamID int) string {
	return "/teams/" + strconv.Itoa(teamID) + "/tasks"
}

// Tasks lists a team's tasks
func (c *Client) Tasks(ctx context.Context, teamID int) ([]Task, error) {
	var out []Task
	if err := c.do(ctx, http.MethodGet, taskPath(teamID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask adds a task to a team's board
func (c *Client) CreateTask(ctx context.Context, teamID int, input *TaskInput) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPost, taskPath(teamID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask updates task fields, including status moves between columns
func (c *Client) UpdateTask(ctx context.Context, teamID, taskID int, input *TaskInput) (*Task, error) {
	var out Task
	path := taskPath(teamID) + "/" + strconv.Itoa(taskID)
	if err := c.do(ctx, http.MethodPut, path, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task from the board
func (c *Client) DeleteTask(ctx context.Context, teamID, taskID int) error {
	path := taskPath(teamID) + "/" + strconv.Itoa(taskID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
