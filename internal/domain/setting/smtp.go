package setting

import (
	"fmt"
	"strings"
	"time"

	"shieldtrack/internal/shared/biztime"
)

// SMTPSettings is the single mail delivery configuration row. Handlers use
// it to send notification and test emails without a process restart.
type SMTPSettings struct {
	id        uint
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
	useTLS    bool
	enabled   bool
	updatedAt time.Time
}

func NewSMTPSettings(host string, port int, username, password, fromName, fromEmail string, useTLS bool) (*SMTPSettings, error) {
	if err := validateSMTP(host, port, fromEmail); err != nil {
		return nil, err
	}

	return &SMTPSettings{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: strings.ToLower(fromEmail),
		useTLS:    useTLS,
		enabled:   true,
		updatedAt: biztime.NowUTC(),
	}, nil
}

func ReconstructSMTPSettings(
	id uint,
	host string,
	port int,
	username, password, fromName, fromEmail string,
	useTLS, enabled bool,
	updatedAt time.Time,
) (*SMTPSettings, error) {
	if id == 0 {
		return nil, fmt.Errorf("settings ID cannot be zero")
	}

	return &SMTPSettings{
		id:        id,
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
		useTLS:    useTLS,
		enabled:   enabled,
		updatedAt: updatedAt,
	}, nil
}

func (s *SMTPSettings) ID() uint             { return s.id }
func (s *SMTPSettings) Host() string         { return s.host }
func (s *SMTPSettings) Port() int            { return s.port }
func (s *SMTPSettings) Username() string     { return s.username }
func (s *SMTPSettings) Password() string     { return s.password }
func (s *SMTPSettings) FromName() string     { return s.fromName }
func (s *SMTPSettings) FromEmail() string    { return s.fromEmail }
func (s *SMTPSettings) UseTLS() bool         { return s.useTLS }
func (s *SMTPSettings) Enabled() bool        { return s.enabled }
func (s *SMTPSettings) UpdatedAt() time.Time { return s.updatedAt }

func (s *SMTPSettings) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("settings ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("settings ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *SMTPSettings) Update(host string, port int, username, password, fromName, fromEmail string, useTLS, enabled bool) error {
	if err := validateSMTP(host, port, fromEmail); err != nil {
		return err
	}

	s.host = host
	s.port = port
	s.username = username
	s.password = password
	s.fromName = fromName
	s.fromEmail = strings.ToLower(fromEmail)
	s.useTLS = useTLS
	s.enabled = enabled
	s.updatedAt = biztime.NowUTC()
	return nil
}

func validateSMTP(host string, port int, fromEmail string) error {
	if host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", port)
	}
	if fromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	if !strings.Contains(fromEmail, "@") {
		return fmt.Errorf("invalid from email format")
	}
	return nil
}
