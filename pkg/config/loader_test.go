package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Session.MaxTargetPointsPerSession)
	assert.Equal(t, 0.5, cfg.Session.EvaluatorConfidenceThreshold)
	assert.Equal(t, 0.7, cfg.Session.RabbitholeEnterThreshold)
	assert.Equal(t, 0.6, cfg.Session.RabbitholeReturnThreshold)
	assert.Equal(t, 6, cfg.Session.EvaluatorRecentMessageWindow)
	assert.Equal(t, 30*time.Second, cfg.Session.StallThreshold)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, 0.9, cfg.FSRS.DesiredRetention)
}

func TestLoadOverridesAndEnvExpansion(t *testing.T) {
	t.Setenv("TEST_LLM_ADDR", "llm.internal:50051")

	path := filepath.Join(t.TempDir(), "recollect.yaml")
	content := `
llm:
  addr: ${TEST_LLM_ADDR}
  tutor_model: ${TEST_TUTOR_MODEL:-tutor-large}
session:
  max_target_points_per_session: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "llm.internal:50051", cfg.LLM.Addr)
	assert.Equal(t, "tutor-large", cfg.LLM.TutorModel, "unset env var falls back to default")
	assert.Equal(t, 5, cfg.Session.MaxTargetPointsPerSession)
	// Untouched values keep their defaults.
	assert.Equal(t, 0.5, cfg.Session.EvaluatorConfidenceThreshold)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recollect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  evaluator_confidence_threshold: 1.5\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "evaluator_confidence_threshold")
}
