package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kmorris/wifitester/internal/logging"
	"github.com/kmorris/wifitester/internal/session"
	"github.com/kmorris/wifitester/internal/settings"
	"github.com/kmorris/wifitester/internal/version"
)

// Settings field indices, in display order.
const (
	fieldScanTimeout = iota
	fieldAutoRefresh
	fieldRefreshInterval
	fieldShowHidden
	fieldSoundEnabled
	fieldLogLevel
	fieldTheme
	fieldInterface
	fieldCount
)

// autoInterfaceLabel is what the empty default_interface renders as. The
// persisted value stays "", the label exists only at the UI edge.
const autoInterfaceLabel = "Auto"

var logLevelOptions = []settings.LogLevel{
	settings.LogDebug, settings.LogInfo, settings.LogWarning, settings.LogError,
}

var themeOptions = []settings.Theme{
	settings.ThemeDark, settings.ThemeLight, settings.ThemeSystem,
}

// settingsKeyMap defines key bindings for the settings dialog.
type settingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Cycle  key.Binding
	Save   key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k settingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Toggle, k.Cycle, k.Save, k.Reset, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k settingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.Toggle},
		{k.Cycle, k.Save, k.Reset, k.Quit},
	}
}

func newSettingsKeyMap() settingsKeyMap {
	return settingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("←/→", "cycle"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Reset: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "defaults"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SettingsModel is the settings dialog. Edits live in the model until Save;
// quitting without saving discards them.
type SettingsModel struct {
	values settings.Settings
	sess   session.Session
	onSave func(settings.Settings)

	cursor  int
	editing bool // an integer field's textinput has focus

	scanTimeoutInput     textinput.Model
	refreshIntervalInput textinput.Model

	confirmingReset bool

	notice     string
	noticeKind noticeKind

	configPath string
	saved      bool

	help help.Model
	keys settingsKeyMap

	Width  int
	Height int
}

// NewSettingsModel creates the settings dialog seeded with the given values.
// onSave, if non-nil, runs after a successful save with the final settings.
func NewSettingsModel(values settings.Settings, sess session.Session, onSave func(settings.Settings)) SettingsModel {
	scanInput := textinput.New()
	scanInput.CharLimit = 4
	scanInput.Width = 8
	scanInput.SetValue(strconv.Itoa(values.ScanTimeout))

	refreshInput := textinput.New()
	refreshInput.CharLimit = 5
	refreshInput.Width = 8
	refreshInput.SetValue(strconv.Itoa(values.RefreshInterval))

	configPath, err := settings.Path()
	if err != nil {
		configPath = "(unavailable)"
	}

	return SettingsModel{
		values:               values,
		sess:                 sess,
		onSave:               onSave,
		scanTimeoutInput:     scanInput,
		refreshIntervalInput: refreshInput,
		configPath:           configPath,
		help:                 help.New(),
		keys:                 newSettingsKeyMap(),
	}
}

// Init implements tea.Model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Saved reports whether the dialog persisted its settings before exiting.
func (m SettingsModel) Saved() bool {
	return m.saved
}

// Update handles messages and updates the model.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case clearNoticeMsg:
		// Settings notices do not auto-expire; nothing to do.
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirmingReset {
			return m.updateResetModal(msg)
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// updateResetModal handles the reset confirmation modal.
func (m SettingsModel) updateResetModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmingReset = false
		m.applyDefaults()
		m.notice = "Settings reset to defaults. Press s to save them."
		m.noticeKind = noticeInfo
	case "n", "N", "esc":
		m.confirmingReset = false
	}
	return m, nil
}

// applyDefaults reverts every in-memory field to the factory values.
// Nothing is persisted until the user saves.
func (m *SettingsModel) applyDefaults() {
	m.values = settings.Defaults()
	m.scanTimeoutInput.SetValue(strconv.Itoa(m.values.ScanTimeout))
	m.refreshIntervalInput.SetValue(strconv.Itoa(m.values.RefreshInterval))
}

// updateEditing routes keys to the focused integer input.
func (m SettingsModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.editing = false
		m.focusedInput().Blur()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.cursor {
	case fieldScanTimeout:
		m.scanTimeoutInput, cmd = m.scanTimeoutInput.Update(msg)
	case fieldRefreshInterval:
		m.refreshIntervalInput, cmd = m.refreshIntervalInput.Update(msg)
	}
	return m, cmd
}

// focusedInput returns the input under the cursor, defaulting to the scan
// timeout input.
func (m *SettingsModel) focusedInput() *textinput.Model {
	if m.cursor == fieldRefreshInterval {
		return &m.refreshIntervalInput
	}
	return &m.scanTimeoutInput
}

// handleKey processes dialog keys in navigation mode.
func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < fieldCount-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Edit):
		if m.cursor == fieldScanTimeout || m.cursor == fieldRefreshInterval {
			m.editing = true
			return m, m.focusedInput().Focus()
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggleBool()

	case key.Matches(msg, m.keys.Cycle):
		forward := msg.String() == "right" || msg.String() == "l"
		m.cycleField(forward)

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Reset):
		m.confirmingReset = true
	}

	return m, nil
}

// toggleBool flips the boolean under the cursor, if any.
func (m *SettingsModel) toggleBool() {
	switch m.cursor {
	case fieldAutoRefresh:
		m.values.AutoRefresh = !m.values.AutoRefresh
	case fieldShowHidden:
		m.values.ShowHiddenNetworks = !m.values.ShowHiddenNetworks
	case fieldSoundEnabled:
		m.values.SoundEnabled = !m.values.SoundEnabled
	}
}

// cycleField steps the enum or interface selection under the cursor.
func (m *SettingsModel) cycleField(forward bool) {
	step := func(idx, n int) int {
		if forward {
			return (idx + 1) % n
		}
		return (idx - 1 + n) % n
	}

	switch m.cursor {
	case fieldLogLevel:
		idx := 0
		for i, l := range logLevelOptions {
			if l == m.values.LogLevel {
				idx = i
			}
		}
		m.values.LogLevel = logLevelOptions[step(idx, len(logLevelOptions))]

	case fieldTheme:
		idx := 0
		for i, t := range themeOptions {
			if t == m.values.Theme {
				idx = i
			}
		}
		m.values.Theme = themeOptions[step(idx, len(themeOptions))]

	case fieldInterface:
		options := m.interfaceOptions()
		idx := 0
		for i, o := range options {
			if o == m.values.DefaultInterface {
				idx = i
			}
		}
		m.values.DefaultInterface = options[step(idx, len(options))]
	}
}

// interfaceOptions is "" (auto) followed by the session's interfaces.
func (m SettingsModel) interfaceOptions() []string {
	return append([]string{""}, m.sess.Interfaces...)
}

// parse assembles a Settings value from the model, validating the integer
// inputs. The error names the offending setting.
func (m SettingsModel) parse() (settings.Settings, error) {
	s := m.values

	scan, err := strconv.Atoi(strings.TrimSpace(m.scanTimeoutInput.Value()))
	if err != nil {
		return s, fmt.Errorf("scan_timeout must be a whole number of seconds")
	}
	s.ScanTimeout = scan

	refresh, err := strconv.Atoi(strings.TrimSpace(m.refreshIntervalInput.Value()))
	if err != nil {
		return s, fmt.Errorf("refresh_interval must be a whole number of seconds")
	}
	s.RefreshInterval = refresh

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// save validates, persists, applies the theme live, and quits. On a
// validation failure nothing is persisted and the dialog stays open with
// the error on the status line.
func (m SettingsModel) save() (tea.Model, tea.Cmd) {
	parsed, err := m.parse()
	if err != nil {
		m.notice = err.Error()
		m.noticeKind = noticeError
		return m, nil
	}

	if err := parsed.Save(); err != nil {
		m.notice = fmt.Sprintf("Could not save settings: %v", err)
		m.noticeKind = noticeError
		return m, nil
	}

	m.values = parsed
	ApplyTheme(parsed.Theme)
	logging.Info("settings saved", zap.String("path", m.configPath))

	if m.onSave != nil {
		m.onSave(parsed)
	}
	m.saved = true
	return m, tea.Quit
}

// View renders the dialog.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle().Render("⚙ Settings"))
	b.WriteString("\n\n")

	if m.confirmingReset {
		b.WriteString(modalStyle().Render(
			"Reset all settings to defaults?\n\n" +
				"This replaces every value on this screen.\n" +
				"y: reset   n: keep current values"))
		b.WriteString("\n\n")
	}

	for i := 0; i < fieldCount; i++ {
		b.WriteString(m.viewField(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle().Render("System"))
	b.WriteString("\n")
	b.WriteString(m.infoLine("Platform", m.sess.OS))
	b.WriteString(m.infoLine("Version", version.Full()))
	b.WriteString(m.infoLine("Settings file", m.configPath))

	if m.notice != "" {
		b.WriteString("\n")
		if m.noticeKind == noticeError {
			b.WriteString(errorTextStyle().Render(m.notice))
		} else {
			b.WriteString(infoTextStyle().Render(m.notice))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m SettingsModel) infoLine(label, value string) string {
	return fieldLabelStyle().Render(label) + infoTextStyle().Render(value) + "\n"
}

// viewField renders one settings row.
func (m SettingsModel) viewField(i int) string {
	var label, value string

	switch i {
	case fieldScanTimeout:
		label = "Scan timeout (s)"
		value = m.scanTimeoutInput.View()
		if !m.editing || m.cursor != i {
			value = m.scanTimeoutInput.Value()
		}
	case fieldAutoRefresh:
		label = "Auto refresh"
		value = onOff(m.values.AutoRefresh)
	case fieldRefreshInterval:
		label = "Refresh interval (s)"
		value = m.refreshIntervalInput.View()
		if !m.editing || m.cursor != i {
			value = m.refreshIntervalInput.Value()
		}
	case fieldShowHidden:
		label = "Show hidden networks"
		value = onOff(m.values.ShowHiddenNetworks)
	case fieldSoundEnabled:
		label = "Sound"
		value = onOff(m.values.SoundEnabled)
	case fieldLogLevel:
		label = "Log level"
		value = string(m.values.LogLevel)
	case fieldTheme:
		label = "Theme"
		value = string(m.values.Theme)
	case fieldInterface:
		label = "Default interface"
		value = m.values.DefaultInterface
		if value == "" {
			value = autoInterfaceLabel
		}
	}

	line := fieldLabelStyle().Render(label) + fieldValueStyle().Render(value)
	if i == m.cursor {
		return selectedRowStyle().Render("→ ") + line
	}
	return "  " + line
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
