package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chunin-dm/internal/config"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.LoadFrom(map[string]string{})
	s.Require().NoError(err)

	s.Equal("warn", cfg.LogLevel)
	s.Equal(slog.LevelWarn, cfg.Level())
	s.False(cfg.NoColor)
	s.Empty(cfg.Tables)
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := config.LoadFrom(map[string]string{
		"CHUNIN_LOG_LEVEL": "DEBUG",
		"CHUNIN_NO_COLOR":  "true",
		"CHUNIN_TABLES":    "/tmp/tables.yaml",
	})
	s.Require().NoError(err)

	s.Equal(slog.LevelDebug, cfg.Level())
	s.True(cfg.NoColor)
	s.Equal("/tmp/tables.yaml", cfg.Tables)
}

func (s *ConfigTestSuite) TestLevels() {
	testCases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for raw, want := range testCases {
		s.Run(raw, func() {
			cfg, err := config.LoadFrom(map[string]string{"CHUNIN_LOG_LEVEL": raw})
			s.Require().NoError(err)
			s.Equal(want, cfg.Level())
		})
	}
}

func (s *ConfigTestSuite) TestInvalidLevel() {
	_, err := config.LoadFrom(map[string]string{"CHUNIN_LOG_LEVEL": "chatty"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "CHUNIN_LOG_LEVEL")
}

func (s *ConfigTestSuite) TestInvalidBool() {
	_, err := config.LoadFrom(map[string]string{"CHUNIN_NO_COLOR": "maybe"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestLevelFallsBackToWarn() {
	cfg := &config.Config{LogLevel: "nope"}
	s.Equal(slog.LevelWarn, cfg.Level())
}
