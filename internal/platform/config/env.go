// Package config binds AUDITDESK_* environment variables to the command
// config structs. Flag parsing stays in the commands; this package only
// covers the env layer underneath it.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from the process environment using its env struct
// tags, applying envDefault values for unset variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("load env config: %w", err)
	}
	return nil
}
