package setting

import "context"

// Repository stores the single SMTP settings row. Get returns a not-found
// error until the first Save.
type Repository interface {
	Get(ctx context.Context) (*SMTPSettings, error)
	Save(ctx context.Context, s *SMTPSettings) error
	Update(ctx context.Context, s *SMTPSettings) error
}
