// ABOUTME: Tests for environment variable expansion in config
// ABOUTME: Validates ${VAR} replacement for set, unset, and mixed patterns

package config

import (
	"testing"
)

func TestExpandEnv_Set(t *testing.T) {
	t.Setenv("TEST_TITLE", "scratch")
	result := expandEnv("${TEST_TITLE}")
	if result != "scratch" {
		t.Errorf("expandEnv = %q; want %q", result, "scratch")
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	result := expandEnv("${DEFINITELY_NOT_SET_12345}")
	if result != "" {
		t.Errorf("expandEnv = %q; want empty for unset var", result)
	}
}

func TestExpandEnv_Mixed(t *testing.T) {
	t.Setenv("MY_LOG_DIR", "/var/tmp")
	result := expandEnv("${MY_LOG_DIR}/tedit.log")
	if result != "/var/tmp/tedit.log" {
		t.Errorf("expandEnv = %q; want %q", result, "/var/tmp/tedit.log")
	}
}

func TestExpandEnv_NoPattern(t *testing.T) {
	result := expandEnv("plain string")
	if result != "plain string" {
		t.Errorf("expandEnv = %q; want %q", result, "plain string")
	}
}

func TestResolveEnvVars_SettingsFields(t *testing.T) {
	t.Setenv("TEST_USER", "ada")
	t.Setenv("TEST_LEVEL", "debug")

	s := &Settings{
		Title:    "${TEST_USER}'s notes",
		LogLevel: "${TEST_LEVEL}",
		LogFile:  "/tmp/${TEST_USER}.log",
	}
	ResolveEnvVars(s)

	if s.Title != "ada's notes" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
	if s.LogFile != "/tmp/ada.log" {
		t.Errorf("LogFile = %q", s.LogFile)
	}
}
