package wizard

import "fmt"

// SessionError indicates the session is missing, expired, or unreadable.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionError(msg string) error {
	return &SessionError{
		Code:    "sessionError",
		Message: msg,
	}
}

// ConfigError indicates a mutation that cannot apply to the current
// configuration, e.g. adjusting bag count on a cleaning service.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConfigError(msg string) error {
	return &ConfigError{
		Code:    "configError",
		Message: msg,
	}
}
