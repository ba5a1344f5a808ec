// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package validation

import (
	"errors"
	"strings"
	"testing"
)

type testServer struct {
	Addr    string `koanf:"addr" validate:"required,hostname_port"`
	Workers int    `koanf:"workers" validate:"min=1,max=64"`
}

type testConfig struct {
	Server  testServer `koanf:"server"`
	Format  string     `koanf:"format" validate:"oneof=json console"`
	Damping float64    `koanf:"damping" validate:"gt=0,lt=1"`
	Tags    []string   `json:"tags" validate:"max=3,dive,reason"`
}

func validTestConfig() testConfig {
	return testConfig{
		Server:  testServer{Addr: "localhost:8080", Workers: 4},
		Format:  "json",
		Damping: 0.85,
		Tags:    []string{"fun", "Worth it"},
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() returned different instances")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	cfg := validTestConfig()
	if err := ValidateStruct(&cfg); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*testConfig)
		field   string
		tag     string
		message string
	}{
		{
			name:    "required nested",
			mutate:  func(c *testConfig) { c.Server.Addr = "" },
			field:   "server.addr",
			tag:     "required",
			message: "server.addr is required",
		},
		{
			name:    "hostname port",
			mutate:  func(c *testConfig) { c.Server.Addr = "localhost" },
			field:   "server.addr",
			tag:     "hostname_port",
			message: "server.addr must be a host:port address",
		},
		{
			name:    "min number",
			mutate:  func(c *testConfig) { c.Server.Workers = 0 },
			field:   "server.workers",
			tag:     "min",
			message: "server.workers must be at least 1",
		},
		{
			name:    "max number",
			mutate:  func(c *testConfig) { c.Server.Workers = 100 },
			field:   "server.workers",
			tag:     "max",
			message: "server.workers must be at most 64",
		},
		{
			name:    "oneof",
			mutate:  func(c *testConfig) { c.Format = "xml" },
			field:   "format",
			tag:     "oneof",
			message: "format must be one of: json console",
		},
		{
			name:    "gt",
			mutate:  func(c *testConfig) { c.Damping = 0 },
			field:   "damping",
			tag:     "gt",
			message: "damping must be greater than 0",
		},
		{
			name:    "lt",
			mutate:  func(c *testConfig) { c.Damping = 1 },
			field:   "damping",
			tag:     "lt",
			message: "damping must be less than 1",
		},
		{
			name:    "max items",
			mutate:  func(c *testConfig) { c.Tags = []string{"a", "b", "c", "d"} },
			field:   "tags",
			tag:     "max",
			message: "tags must be at most 3 items",
		},
		{
			name:    "reason padded",
			mutate:  func(c *testConfig) { c.Tags = []string{" fun"} },
			field:   "tags[0]",
			tag:     "reason",
			message: "tags[0] must be a trimmed tag of at most 64 characters",
		},
		{
			name:    "reason empty",
			mutate:  func(c *testConfig) { c.Tags = []string{"fun", ""} },
			field:   "tags[1]",
			tag:     "reason",
			message: "tags[1] must be a trimmed tag of at most 64 characters",
		},
		{
			name:    "reason too long",
			mutate:  func(c *testConfig) { c.Tags = []string{strings.Repeat("a", 65)} },
			field:   "tags[0]",
			tag:     "reason",
			message: "tags[0] must be a trimmed tag of at most 64 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(&cfg)

			err := ValidateStruct(&cfg)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			var verr *Errors
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *Errors", err)
			}
			fields := verr.Fields()
			if len(fields) != 1 {
				t.Fatalf("len(Fields()) = %d, want 1 (%v)", len(fields), err)
			}
			fe := fields[0]
			if fe.Field() != tt.field {
				t.Errorf("Field() = %q, want %q", fe.Field(), tt.field)
			}
			if fe.Tag() != tt.tag {
				t.Errorf("Tag() = %q, want %q", fe.Tag(), tt.tag)
			}
			if fe.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", fe.Error(), tt.message)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	cfg := validTestConfig()
	cfg.Server.Addr = ""
	cfg.Format = "xml"

	err := ValidateStruct(&cfg)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	want := "server.addr is required; format must be one of: json console"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidateStruct_MinLengthString(t *testing.T) {
	type input struct {
		Name string `json:"name" validate:"min=3"`
	}
	err := ValidateStruct(&input{Name: "ab"})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if want := "name must be at least 3 characters"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrors_Empty(t *testing.T) {
	e := &Errors{}
	if e.Error() != "validation failed" {
		t.Errorf("Error() = %q, want %q", e.Error(), "validation failed")
	}
}
