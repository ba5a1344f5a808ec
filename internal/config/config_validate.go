// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package config

import (
	"fmt"

	"github.com/tomtom215/commonground/internal/validation"
)

// Validate checks struct-tag rules on every section, then the cross-field
// rules of the recommendation engine.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if err := c.Recommend.Engine.Validate(); err != nil {
		return fmt.Errorf("recommend.engine.%w", err)
	}

	return c.validateServer()
}

// validateServer checks listener settings that only matter when it runs.
func (c *Config) validateServer() error {
	if !c.Server.Enabled {
		return nil
	}
	if c.Server.WriteTimeout < c.Server.ReadTimeout {
		return fmt.Errorf("server.write_timeout (%s) must not be shorter than server.read_timeout (%s)",
			c.Server.WriteTimeout, c.Server.ReadTimeout)
	}
	return nil
}
