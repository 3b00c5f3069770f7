package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorris/wifitester/internal/session"
	"github.com/kmorris/wifitester/internal/settings"
)

func newTestSettingsModel() SettingsModel {
	sess := session.Session{OS: "linux", Interfaces: []string{"wlan0", "eth0"}}
	return NewSettingsModel(settings.Defaults(), sess, nil)
}

func cursorTo(m tea.Model, field int) tea.Model {
	for i := 0; i < field; i++ {
		m = sendKey(m, "j")
	}
	return m
}

func TestSettingsModel_InitialState(t *testing.T) {
	m := newTestSettingsModel()

	assert.Equal(t, 0, m.cursor)
	assert.False(t, m.editing)
	assert.False(t, m.Saved())
	assert.Equal(t, "15", m.scanTimeoutInput.Value())
	assert.Equal(t, "30", m.refreshIntervalInput.Value())
}

func TestSettingsModel_Navigation(t *testing.T) {
	var model tea.Model = newTestSettingsModel()

	model = sendKey(model, "j")
	assert.Equal(t, fieldAutoRefresh, model.(SettingsModel).cursor)

	// Clamp at the last field
	model = cursorTo(model, fieldCount+3)
	assert.Equal(t, fieldInterface, model.(SettingsModel).cursor)

	model = sendKey(model, "k")
	assert.Equal(t, fieldTheme, model.(SettingsModel).cursor)
}

func TestSettingsModel_ToggleBooleans(t *testing.T) {
	var model tea.Model = cursorTo(newTestSettingsModel(), fieldAutoRefresh)

	model = sendSpecialKey(model, tea.KeySpace)
	assert.False(t, model.(SettingsModel).values.AutoRefresh)

	model = sendSpecialKey(model, tea.KeySpace)
	assert.True(t, model.(SettingsModel).values.AutoRefresh)
}

func TestSettingsModel_CycleLogLevel(t *testing.T) {
	var model tea.Model = cursorTo(newTestSettingsModel(), fieldLogLevel)

	// INFO is the default; cycling forward gives WARNING
	model = sendSpecialKey(model, tea.KeyRight)
	assert.Equal(t, settings.LogWarning, model.(SettingsModel).values.LogLevel)

	model = sendSpecialKey(model, tea.KeyLeft)
	assert.Equal(t, settings.LogInfo, model.(SettingsModel).values.LogLevel)

	// Cycling wraps
	model = sendSpecialKey(model, tea.KeyLeft)
	assert.Equal(t, settings.LogDebug, model.(SettingsModel).values.LogLevel)
	model = sendSpecialKey(model, tea.KeyLeft)
	assert.Equal(t, settings.LogError, model.(SettingsModel).values.LogLevel)
}

func TestSettingsModel_CycleInterface(t *testing.T) {
	var model tea.Model = cursorTo(newTestSettingsModel(), fieldInterface)

	// "" (auto) -> wlan0 -> eth0 -> back to auto
	model = sendSpecialKey(model, tea.KeyRight)
	assert.Equal(t, "wlan0", model.(SettingsModel).values.DefaultInterface)

	model = sendSpecialKey(model, tea.KeyRight)
	assert.Equal(t, "eth0", model.(SettingsModel).values.DefaultInterface)

	model = sendSpecialKey(model, tea.KeyRight)
	assert.Equal(t, "", model.(SettingsModel).values.DefaultInterface,
		"auto must persist as empty string")
}

func TestSettingsModel_InterfaceRendersAuto(t *testing.T) {
	m := newTestSettingsModel()
	assert.Contains(t, m.View(), autoInterfaceLabel)
}

func TestSettingsModel_EditIntegerField(t *testing.T) {
	var model tea.Model = newTestSettingsModel()

	model = sendSpecialKey(model, tea.KeyEnter)
	sm := model.(SettingsModel)
	require.True(t, sm.editing)

	// Clear and type a new value
	sm.scanTimeoutInput.SetValue("")
	model = sm
	model = sendKey(model, "4")
	model = sendKey(model, "5")
	model = sendSpecialKey(model, tea.KeyEnter)

	sm = model.(SettingsModel)
	assert.False(t, sm.editing)
	assert.Equal(t, "45", sm.scanTimeoutInput.Value())
}

func TestSettingsModel_ParseNamesOffendingField(t *testing.T) {
	m := newTestSettingsModel()

	m.scanTimeoutInput.SetValue("abc")
	_, err := m.parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan_timeout")

	m.scanTimeoutInput.SetValue("15")
	m.refreshIntervalInput.SetValue("")
	_, err = m.parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh_interval")
}

func TestSettingsModel_SaveRejectsInvalidInput(t *testing.T) {
	m := newTestSettingsModel()
	m.scanTimeoutInput.SetValue("not-a-number")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	sm := updated.(SettingsModel)

	assert.Nil(t, cmd, "invalid input must not quit the dialog")
	assert.False(t, sm.Saved())
	assert.Contains(t, sm.notice, "scan_timeout")
	assert.Equal(t, noticeError, sm.noticeKind)
}

func TestSettingsModel_ResetRequiresConfirmation(t *testing.T) {
	m := newTestSettingsModel()
	m.values.ScanTimeout = 99
	m.scanTimeoutInput.SetValue("99")

	var model tea.Model = m
	model = sendKey(model, "d")
	sm := model.(SettingsModel)
	require.True(t, sm.confirmingReset)
	assert.Contains(t, sm.View(), "Reset all settings")

	// Declining keeps the edited values
	model = sendKey(model, "n")
	sm = model.(SettingsModel)
	assert.False(t, sm.confirmingReset)
	assert.Equal(t, "99", sm.scanTimeoutInput.Value())

	// Confirming reverts everything to defaults
	model = sendKey(model, "d")
	model = sendKey(model, "y")
	sm = model.(SettingsModel)
	assert.False(t, sm.confirmingReset)
	assert.Equal(t, settings.Defaults(), sm.values)
	assert.Equal(t, "15", sm.scanTimeoutInput.Value())
	assert.False(t, sm.Saved(), "reset must not persist anything")
}

func TestSettingsModel_QuitWithoutSaving(t *testing.T) {
	var model tea.Model = newTestSettingsModel()

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	sm := updated.(SettingsModel)

	require.NotNil(t, cmd)
	assert.False(t, sm.Saved())
}

func TestApplyTheme(t *testing.T) {
	defer ApplyTheme(settings.ThemeDark)

	ApplyTheme(settings.ThemeLight)
	assert.Equal(t, lightPalette, active)

	ApplyTheme(settings.ThemeDark)
	assert.Equal(t, darkPalette, active)

	// System maps to dark
	ApplyTheme(settings.ThemeSystem)
	assert.Equal(t, darkPalette, active)
}
