package project

import "fmt"

// Status is the project lifecycle state. Closing is one-way: a closed
// project never reopens, and its findings become read-only.
type Status string

const (
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusClosed, StatusArchived:
		return true
	}
	return false
}

func (s Status) IsActive() bool   { return s == StatusActive }
func (s Status) IsClosed() bool   { return s == StatusClosed }
func (s Status) IsArchived() bool { return s == StatusArchived }

// CanTransitionTo enforces the one-way lifecycle.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusActive:
		return target == StatusClosed || target == StatusArchived
	case StatusClosed:
		return target == StatusArchived
	case StatusArchived:
		return false
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", s)
	}
	return status, nil
}
