package finding

import (
	"fmt"
	"time"

	"shieldtrack/internal/shared/biztime"
)

// Finding is a single security observation recorded against a project. It
// carries no direct client or area reference; its visibility is always
// derived from the owning project.
type Finding struct {
	id          uint
	sid         string
	projectID   uint
	title       string
	description string
	severity    Severity
	status      Status
	closeReason string
	tags        []string
	createdAt   time.Time
	updatedAt   time.Time
	closedAt    *time.Time
}

func NewFinding(sid string, projectID uint, title, description string, severity Severity, tags []string) (*Finding, error) {
	if sid == "" {
		return nil, fmt.Errorf("finding SID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("finding title is required")
	}
	if len(title) > 300 {
		return nil, fmt.Errorf("finding title exceeds maximum length of 300 characters")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid finding severity: %s", severity)
	}

	now := biztime.NowUTC()
	return &Finding{
		sid:         sid,
		projectID:   projectID,
		title:       title,
		description: description,
		severity:    severity,
		status:      StatusOpen,
		tags:        normalizeTags(tags),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructFinding(
	id uint,
	sid string,
	projectID uint,
	title, description string,
	severity Severity,
	status Status,
	closeReason string,
	tags []string,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Finding, error) {
	if id == 0 {
		return nil, fmt.Errorf("finding ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("finding SID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("finding title is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid finding severity: %s", severity)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid finding status: %s", status)
	}

	return &Finding{
		id:          id,
		sid:         sid,
		projectID:   projectID,
		title:       title,
		description: description,
		severity:    severity,
		status:      status,
		closeReason: closeReason,
		tags:        normalizeTags(tags),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		closedAt:    closedAt,
	}, nil
}

func (f *Finding) ID() uint             { return f.id }
func (f *Finding) SID() string          { return f.sid }
func (f *Finding) ProjectID() uint      { return f.projectID }
func (f *Finding) Title() string        { return f.title }
func (f *Finding) Description() string  { return f.description }
func (f *Finding) Severity() Severity   { return f.severity }
func (f *Finding) Status() Status       { return f.status }
func (f *Finding) CloseReason() string  { return f.closeReason }
func (f *Finding) CreatedAt() time.Time { return f.createdAt }
func (f *Finding) UpdatedAt() time.Time { return f.updatedAt }
func (f *Finding) ClosedAt() *time.Time { return f.closedAt }

// Tags returns a copy so callers cannot mutate internal state.
func (f *Finding) Tags() []string {
	out := make([]string, len(f.tags))
	copy(out, f.tags)
	return out
}

func (f *Finding) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("finding ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("finding ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *Finding) UpdateDetails(title, description string, severity Severity, tags []string) error {
	if f.status.IsClosed() {
		return fmt.Errorf("cannot update a closed finding")
	}
	if title == "" {
		return fmt.Errorf("finding title is required")
	}
	if len(title) > 300 {
		return fmt.Errorf("finding title exceeds maximum length of 300 characters")
	}
	if !severity.IsValid() {
		return fmt.Errorf("invalid finding severity: %s", severity)
	}

	f.title = title
	f.description = description
	f.severity = severity
	f.tags = normalizeTags(tags)
	f.updatedAt = biztime.NowUTC()
	return nil
}

// Confirm marks an open finding as verified by an analyst.
func (f *Finding) Confirm() error {
	if f.status.IsClosed() {
		return fmt.Errorf("cannot confirm a closed finding")
	}
	if f.status == StatusConfirmed {
		return nil
	}
	f.status = StatusConfirmed
	f.updatedAt = biztime.NowUTC()
	return nil
}

// Close resolves the finding with a reason. Closing twice is a no-op.
func (f *Finding) Close(reason string) error {
	if f.status.IsClosed() {
		return nil
	}
	if reason == "" {
		return fmt.Errorf("close reason is required")
	}
	if len(reason) > 1000 {
		return fmt.Errorf("close reason exceeds maximum length of 1000 characters")
	}

	now := biztime.NowUTC()
	f.status = StatusClosed
	f.closeReason = reason
	f.closedAt = &now
	f.updatedAt = now
	return nil
}

// normalizeTags dedups while preserving first-seen order and drops empties.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
