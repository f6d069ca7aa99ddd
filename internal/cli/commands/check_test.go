package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odilint/odilint/internal/cli/config"
	"github.com/odilint/odilint/pkg/check"
)

func TestBuildCheckConfig(t *testing.T) {
	t.Run("project config applies first", func(t *testing.T) {
		cfg := &config.Config{
			Checks: &config.ChecksConfig{
				Disabled: []string{"NF02"},
				Severity: map[string]string{"BF01": "hint"},
				Rules:    map[string]map[string]any{"PK02": {"max": 10}},
			},
		}

		checkCfg := buildCheckConfig(cfg, &CheckOptions{})
		assert.True(t, checkCfg.IsDisabled("NF02"))
		assert.Equal(t, check.SeverityHint, checkCfg.GetSeverity("BF01", check.SeverityError))
		assert.Equal(t, map[string]any{"max": 10}, checkCfg.GetRuleOptions("PK02"))
	})

	t.Run("cli disable adds to project config", func(t *testing.T) {
		cfg := &config.Config{Checks: &config.ChecksConfig{Disabled: []string{"NF02"}}}

		checkCfg := buildCheckConfig(cfg, &CheckOptions{Disable: []string{" DF01 "}})
		assert.True(t, checkCfg.IsDisabled("NF02"))
		assert.True(t, checkCfg.IsDisabled("DF01"))
	})

	t.Run("check filter disables everything else", func(t *testing.T) {
		checkCfg := buildCheckConfig(nil, &CheckOptions{Checks: []string{"PK01"}})

		assert.False(t, checkCfg.IsDisabled("PK01"))
		for _, def := range check.GetAll() {
			if def.ID != "PK01" {
				assert.True(t, checkCfg.IsDisabled(def.ID), "%s should be disabled", def.ID)
			}
		}
	})
}

func TestBuildFilesetConfig(t *testing.T) {
	cfg := &config.Config{
		Checks: &config.ChecksConfig{
			Disabled: []string{"XF01"},
			Severity: map[string]string{"XF02": "info"},
		},
	}

	fsCfg := buildFilesetConfig(cfg, &CheckOptions{Disable: []string{"XF03"}})
	assert.True(t, fsCfg.DisabledRules["XF01"])
	assert.True(t, fsCfg.DisabledRules["XF03"])
	assert.Equal(t, check.SeverityInfo, fsCfg.SeverityOverrides["XF02"])
}
