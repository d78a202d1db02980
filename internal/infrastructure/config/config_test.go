package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := finish(v)
	require.NoError(t, err)

	assert.True(t, cfg.Workflow.StrictVerification)
	assert.Equal(t, RemarksPolicyAny, cfg.Workflow.RemarksPolicy)
	assert.False(t, cfg.Workflow.AllowRework)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.Storage.MaxSizeMB)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WASTEOPS_WORKFLOW_STRICT_VERIFICATION", "false")
	t.Setenv("WASTEOPS_WORKFLOW_REMARKS_POLICY", "participants")
	t.Setenv("WASTEOPS_WORKFLOW_ALLOW_REWORK", "true")
	t.Setenv("WASTEOPS_DATABASE_DRIVER", "sqlite")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.False(t, cfg.Workflow.StrictVerification)
	assert.Equal(t, RemarksPolicyParticipants, cfg.Workflow.RemarksPolicy)
	assert.True(t, cfg.Workflow.AllowRework)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "test", cfg.Server.Mode)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("workflow.remarks_policy", "everyone")

	_, err := finish(v)
	assert.ErrorContains(t, err, "remarks_policy")

	v.Set("workflow.remarks_policy", RemarksPolicyAny)
	v.Set("database.driver", "oracle")
	_, err = finish(v)
	assert.ErrorContains(t, err, "database.driver")
}
