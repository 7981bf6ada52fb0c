package domain

import "time"

// Status is the project lifecycle state.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusOnHold    Status = "on_hold"
)

// Project is a civil-contracting project. ClientID references a client
// record by id; the reference is not enforced and deleting a project does
// not cascade.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClientID    string    `json:"clientId"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Budget      float64   `json:"budget"`
	Status      Status    `json:"status"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p Project) RecordID() string { return p.ID }

// CreateInput carries the caller-supplied fields for a new project.
type CreateInput struct {
	Name        string  `json:"name" binding:"required"`
	ClientID    string  `json:"clientId"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
	Status      Status  `json:"status"`
	Location    string  `json:"location"`
}

// UpdateInput carries a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name        *string  `json:"name"`
	ClientID    *string  `json:"clientId"`
	Description *string  `json:"description"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Budget      *float64 `json:"budget"`
	Status      *Status  `json:"status"`
	Location    *string  `json:"location"`
}
