package wizard_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dailysale/internal/wizard"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := wizard.LoadConfig(filepath.Join(t.TempDir(), "wizard.yaml"))

	require.NoError(t, err)
	assert.Equal(t, wizard.DefaultConfig(), cfg)
}

func TestLoadConfig_OverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wizard.yaml")
	content := "wait_timeout: 20s\nphrases:\n  continue: [\"Next\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := wizard.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, cfg.WaitTimeout)
	assert.Equal(t, []string{"Next"}, cfg.Phrases.Continue)
	assert.Equal(t, "#reward-percentage", cfg.Selectors.RewardPercentage)
	assert.Equal(t, 800*time.Millisecond, cfg.Delays.Step2Settle)
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wizard.yaml")
	cfg := wizard.DefaultConfig()
	cfg.Delays.FinalSettle = 2 * time.Second

	require.NoError(t, cfg.Save(path))
	loaded, err := wizard.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wizard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wait_timeout: [oops"), 0o644))

	_, err := wizard.LoadConfig(path)
	assert.Error(t, err)
}
