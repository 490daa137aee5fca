package finding

import "fmt"

type Status string

const (
	StatusOpen      Status = "open"
	StatusConfirmed Status = "confirmed"
	StatusClosed    Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusConfirmed, StatusClosed:
		return true
	}
	return false
}

func (s Status) IsClosed() bool { return s == StatusClosed }

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid finding status: %s", s)
	}
	return status, nil
}
