package config

import "fmt"

const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

// Configuration carries the logger settings resolved from viper.
type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("invalid log level %d", c.Level)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("log time format must not be empty")
	}
	return nil
}
