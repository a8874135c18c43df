// Package config loads and validates the engine configuration from a YAML
// file plus environment variables.
package config

import (
	"fmt"
	"time"
)

// Config is the fully resolved configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Session   SessionConfig   `yaml:"session"`
	FSRS      FSRSConfig      `yaml:"fsrs"`
	Retention RetentionConfig `yaml:"retention"`
}

// ServerConfig groups HTTP server settings.
type ServerConfig struct {
	Port             string        `yaml:"port"`
	WSWriteTimeout   time.Duration `yaml:"ws_write_timeout"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
	AllowedWSOrigins []string      `yaml:"allowed_ws_origins"`
}

// LLMConfig selects models and pricing for the LLM service.
type LLMConfig struct {
	// Addr is the gRPC address of the LLM service.
	Addr string `yaml:"addr"`

	// TutorModel drives the conversation; UtilityModel serves the cheap
	// side calls (evaluator, detector, transcription).
	TutorModel   string `yaml:"tutor_model"`
	UtilityModel string `yaml:"utility_model"`

	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Prices per million tokens, used for the session cost metric.
	InputPricePerMTok  float64 `yaml:"input_price_per_mtok"`
	OutputPricePerMTok float64 `yaml:"output_price_per_mtok"`
}

// Timeout returns the LLM call deadline.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig holds the session-engine knobs.
type SessionConfig struct {
	MaxTargetPointsPerSession    int           `yaml:"max_target_points_per_session"`
	EvaluatorConfidenceThreshold float64       `yaml:"evaluator_confidence_threshold"`
	EvaluatorRecentMessageWindow int           `yaml:"evaluator_recent_message_window"`
	RabbitholeEnterThreshold     float64       `yaml:"rabbithole_enter_threshold"`
	RabbitholeReturnThreshold    float64       `yaml:"rabbithole_return_threshold"`
	StallThreshold               time.Duration `yaml:"stall_threshold"`
	EnableNotationDetection      bool          `yaml:"enable_notation_detection"`
}

// FSRSConfig holds scheduler overrides; zero values mean model defaults.
type FSRSConfig struct {
	DesiredRetention float64 `yaml:"desired_retention"`
}

// RetentionConfig drives the background cleanup sweep.
type RetentionConfig struct {
	// SweepInterval is how often the cleanup loop runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// StaleSessionTimeout is how long an in_progress session may sit without
	// a heartbeat before the sweep abandons it.
	StaleSessionTimeout time.Duration `yaml:"stale_session_timeout"`

	// EventTTLDays is how long persisted events outlive their session.
	EventTTLDays int `yaml:"event_ttl_days"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			WSWriteTimeout:  10 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		LLM: LLMConfig{
			Addr:               "localhost:50051",
			TutorModel:         "claude-sonnet-4-5",
			UtilityModel:       "claude-haiku-4-5",
			TimeoutSeconds:     60,
			InputPricePerMTok:  3.0,
			OutputPricePerMTok: 15.0,
		},
		Session: SessionConfig{
			MaxTargetPointsPerSession:    10,
			EvaluatorConfidenceThreshold: 0.5,
			EvaluatorRecentMessageWindow: 6,
			RabbitholeEnterThreshold:     0.7,
			RabbitholeReturnThreshold:    0.6,
			StallThreshold:               30 * time.Second,
			EnableNotationDetection:      true,
		},
		FSRS: FSRSConfig{
			DesiredRetention: 0.9,
		},
		Retention: RetentionConfig{
			SweepInterval:       5 * time.Minute,
			StaleSessionTimeout: 30 * time.Minute,
			EventTTLDays:        7,
		},
	}
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.LLM.Addr == "" {
		return fmt.Errorf("llm.addr is required")
	}
	if c.LLM.TutorModel == "" || c.LLM.UtilityModel == "" {
		return fmt.Errorf("llm.tutor_model and llm.utility_model are required")
	}
	if c.Session.MaxTargetPointsPerSession < 1 {
		return fmt.Errorf("session.max_target_points_per_session must be >= 1")
	}
	if t := c.Session.EvaluatorConfidenceThreshold; t < 0 || t > 1 {
		return fmt.Errorf("session.evaluator_confidence_threshold must be in [0,1]")
	}
	if t := c.Session.RabbitholeEnterThreshold; t < 0 || t > 1 {
		return fmt.Errorf("session.rabbithole_enter_threshold must be in [0,1]")
	}
	if t := c.Session.RabbitholeReturnThreshold; t < 0 || t > 1 {
		return fmt.Errorf("session.rabbithole_return_threshold must be in [0,1]")
	}
	if c.Session.EvaluatorRecentMessageWindow < 1 {
		return fmt.Errorf("session.evaluator_recent_message_window must be >= 1")
	}
	if r := c.FSRS.DesiredRetention; r <= 0 || r >= 1 {
		return fmt.Errorf("fsrs.desired_retention must be in (0,1)")
	}
	if c.Retention.SweepInterval <= 0 {
		return fmt.Errorf("retention.sweep_interval must be positive")
	}
	if c.Retention.StaleSessionTimeout <= 0 {
		return fmt.Errorf("retention.stale_session_timeout must be positive")
	}
	return nil
}
