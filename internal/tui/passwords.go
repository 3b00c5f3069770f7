package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kmorris/wifitester/internal/credentials"
	"github.com/kmorris/wifitester/internal/driver"
	"github.com/kmorris/wifitester/internal/logging"
	"github.com/kmorris/wifitester/internal/session"
)

// UI timing. Copy feedback and test status are transient; notices linger a
// little longer since they carry full sentences.
const (
	copyFeedbackDuration = time.Second
	testStatusDuration   = 2 * time.Second
	noticeDuration       = 3 * time.Second
)

// emptyListLabel is shown when the driver returned no profiles.
const emptyListLabel = "No saved WiFi networks found"

// LoadState is the credential list lifecycle.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadLoaded
	LoadFailed
)

// Async messages. Every message carries the generation current when its
// work started; Update drops stale ones.
type credentialsLoadedMsg struct {
	generation int
	entries    []credentials.Entry
	err        error
}

type testResultMsg struct {
	index      int
	generation int
	result     credentials.Result
}

type copyFeedbackExpiredMsg struct {
	index      int
	generation int
}

type testStatusExpiredMsg struct {
	index      int
	generation int
}

type clearNoticeMsg struct {
	seq int
}

// noticeKind selects the status line style.
type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)

// passwordsKeyMap defines key bindings for the passwords dialog.
type passwordsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Copy    key.Binding
	Test    key.Binding
	Refresh key.Binding
	Export  key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k passwordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Copy, k.Test, k.Refresh, k.Export, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k passwordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Copy},
		{k.Test, k.Refresh, k.Export, k.Quit},
	}
}

func newPasswordsKeyMap() passwordsKeyMap {
	return passwordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "show/hide"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Test: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "test"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PasswordsModel is the saved-passwords dialog.
type PasswordsModel struct {
	drv  driver.Driver
	sess session.Session

	state      LoadState
	loadErr    string
	rows       []RowModel
	cursor     int
	generation int // bumped on every load; stale async results are dropped

	exporting   bool
	exportInput textinput.Model

	notice     string
	noticeKind noticeKind
	noticeSeq  int

	spinner spinner.Model
	help    help.Model
	keys    passwordsKeyMap

	Width  int
	Height int
}

// NewPasswordsModel creates the saved-passwords dialog.
func NewPasswordsModel(drv driver.Driver, sess session.Session) PasswordsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle()

	exportInput := textinput.New()
	exportInput.Placeholder = "wifi-passwords.txt"
	exportInput.CharLimit = 255
	exportInput.Width = 50

	// The model starts in Loading: Init cannot mutate the model, so the
	// first load's state transition happens here and Init only launches
	// the fetch for generation 1.
	return PasswordsModel{
		drv:         drv,
		sess:        sess,
		state:       LoadLoading,
		generation:  1,
		exportInput: exportInput,
		spinner:     s,
		help:        help.New(),
		keys:        newPasswordsKeyMap(),
	}
}

// Init starts the first credential load.
func (m PasswordsModel) Init() tea.Cmd {
	return tea.Batch(fetchCmd(m.drv, m.generation), m.spinner.Tick)
}

// startLoad transitions to Loading, bumps the generation, and launches the
// fetch. Rows are cleared immediately so a slow load never shows stale data.
func (m PasswordsModel) startLoad() (PasswordsModel, tea.Cmd) {
	m.state = LoadLoading
	m.rows = nil
	m.cursor = 0
	m.generation++
	return m, tea.Batch(fetchCmd(m.drv, m.generation), m.spinner.Tick)
}

func fetchCmd(d driver.Driver, generation int) tea.Cmd {
	return func() tea.Msg {
		entries, err := credentials.Fetch(context.Background(), d)
		return credentialsLoadedMsg{generation: generation, entries: entries, err: err}
	}
}

func testCmd(d driver.Driver, profile string, index, generation int) tea.Cmd {
	return func() tea.Msg {
		result := credentials.TestConnection(context.Background(), d, profile, credentials.SettleDelay)
		return testResultMsg{index: index, generation: generation, result: result}
	}
}

// expireAfter delivers msg after d.
func expireAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// setNotice replaces the status line and schedules its expiry. The sequence
// number stops an old expiry from clearing a newer notice.
func (m *PasswordsModel) setNotice(kind noticeKind, text string) tea.Cmd {
	m.notice = text
	m.noticeKind = kind
	m.noticeSeq++
	return expireAfter(noticeDuration, clearNoticeMsg{seq: m.noticeSeq})
}

// Update handles messages and updates the model.
func (m PasswordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != LoadLoading && !m.anyTesting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case credentialsLoadedMsg:
		return m.applyLoaded(msg)

	case testResultMsg:
		return m.applyTestResult(msg)

	case copyFeedbackExpiredMsg:
		if msg.generation == m.generation && msg.index < len(m.rows) {
			m.rows[msg.index].CopyFeedback = false
		}
		return m, nil

	case testStatusExpiredMsg:
		if msg.generation == m.generation && msg.index < len(m.rows) {
			row := &m.rows[msg.index]
			if row.TestStatus == TestSucceeded || row.TestStatus == TestFailed {
				row.TestStatus = TestIdle
				row.TestMessage = ""
			}
		}
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.exporting {
			return m.updateExportPrompt(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// applyLoaded finishes a credential load, unless it is stale.
func (m PasswordsModel) applyLoaded(msg credentialsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation {
		logging.Debug("dropping stale load result",
			zap.Int("got", msg.generation),
			zap.Int("want", m.generation),
		)
		return m, nil
	}

	if msg.err != nil {
		m.state = LoadFailed
		m.loadErr = msg.err.Error()
		m.rows = nil
		return m, nil
	}

	m.state = LoadLoaded
	m.loadErr = ""
	m.rows = newRows(msg.entries)
	if m.cursor >= len(m.rows) {
		m.cursor = 0
	}
	return m, nil
}

// applyTestResult lands a connection test outcome on its row.
func (m PasswordsModel) applyTestResult(msg testResultMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || msg.index >= len(m.rows) {
		return m, nil
	}

	row := &m.rows[msg.index]
	if row.TestStatus != TestRunning {
		return m, nil
	}

	if msg.result.Failed() {
		row.TestStatus = TestFailed
	} else {
		row.TestStatus = TestSucceeded
	}
	row.TestMessage = msg.result.Message

	kind := noticeSuccess
	if msg.result.Failed() {
		kind = noticeError
	}
	noticeCmd := m.setNotice(kind, msg.result.Message)

	return m, tea.Batch(
		noticeCmd,
		expireAfter(testStatusDuration, testStatusExpiredMsg{index: msg.index, generation: m.generation}),
	)
}

// handleKey processes dialog keys in normal (non-export) mode.
func (m PasswordsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.rows) {
			row := &m.rows[m.cursor]
			row.PasswordVisible = !row.PasswordVisible
		}

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()

	case key.Matches(msg, m.keys.Test):
		return m.testSelected()

	case key.Matches(msg, m.keys.Refresh):
		if m.state == LoadLoading {
			return m, nil
		}
		model, cmd := m.startLoad()
		return model, cmd

	case key.Matches(msg, m.keys.Export):
		return m.startExport()
	}

	return m, nil
}

// copySelected puts the selected row's password on the clipboard. A row
// without a password is a no-op apart from the notice; the clipboard is
// never touched for it.
func (m PasswordsModel) copySelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.rows) {
		return m, nil
	}
	row := &m.rows[m.cursor]

	if !row.Entry.HasPassword() {
		return m, m.setNotice(noticeInfo, "No password to copy")
	}

	if err := clipboard.WriteAll(*row.Entry.Password); err != nil {
		return m, m.setNotice(noticeError, fmt.Sprintf("Could not copy to clipboard: %v", err))
	}

	row.CopyFeedback = true
	return m, expireAfter(copyFeedbackDuration, copyFeedbackExpiredMsg{index: m.cursor, generation: m.generation})
}

// testSelected launches a connection test for the selected row. The status
// flips to TestRunning here, synchronously, which is also the in-flight
// guard: a second press while running is refused.
func (m PasswordsModel) testSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.rows) {
		return m, nil
	}
	row := &m.rows[m.cursor]

	if row.TestStatus == TestRunning {
		return m, m.setNotice(noticeInfo, "A test is already running for this network")
	}

	row.TestStatus = TestRunning
	row.TestMessage = ""
	return m, tea.Batch(
		testCmd(m.drv, row.Entry.Name, m.cursor, m.generation),
		m.spinner.Tick,
	)
}

// startExport opens the destination prompt, or short-circuits when there is
// nothing to export.
func (m PasswordsModel) startExport() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, m.setNotice(noticeInfo, "No passwords to export")
	}
	m.exporting = true
	m.exportInput.SetValue("")
	m.exportInput.Focus()
	return m, textinput.Blink
}

// updateExportPrompt routes keys to the destination path prompt.
func (m PasswordsModel) updateExportPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exporting = false
		m.exportInput.Blur()
		return m, nil

	case "enter":
		path := strings.TrimSpace(m.exportInput.Value())
		if path == "" {
			return m, nil
		}
		m.exporting = false
		m.exportInput.Blur()

		if err := credentials.ExportFile(path, m.entries()); err != nil {
			return m, m.setNotice(noticeError, fmt.Sprintf("Export failed: %v", err))
		}
		return m, m.setNotice(noticeSuccess, "Passwords exported to: "+path)
	}

	var cmd tea.Cmd
	m.exportInput, cmd = m.exportInput.Update(msg)
	return m, cmd
}

// entries collects the current rows' credentials.
func (m PasswordsModel) entries() []credentials.Entry {
	entries := make([]credentials.Entry, len(m.rows))
	for i, row := range m.rows {
		entries[i] = row.Entry
	}
	return entries
}

// anyTesting reports whether any row has an in-flight test.
func (m PasswordsModel) anyTesting() bool {
	for _, row := range m.rows {
		if row.TestStatus == TestRunning {
			return true
		}
	}
	return false
}

// View renders the dialog.
func (m PasswordsModel) View() string {
	width := contentWidth(m.Width)
	var b strings.Builder

	b.WriteString(titleStyle().Render("🔑 Saved WiFi Passwords"))
	b.WriteString("\n")

	driverName := "none"
	if m.drv != nil {
		driverName = m.drv.Name()
	}
	b.WriteString(subtitleStyle().Render(fmt.Sprintf("driver: %s  capabilities: %s", driverName, driver.Probe(m.drv))))
	b.WriteString("\n\n")

	if warning := m.sess.Warning(); warning != "" {
		b.WriteString(warningBannerStyle().Width(width - 4).Render("⚠ " + warning))
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewBody())
	b.WriteString("\n")

	if m.exporting {
		b.WriteString("\nExport to file (enter to save, esc to cancel):\n")
		b.WriteString(m.exportInput.View())
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		switch m.noticeKind {
		case noticeSuccess:
			b.WriteString(successTextStyle().Render(m.notice))
		case noticeError:
			b.WriteString(errorTextStyle().Render(m.notice))
		default:
			b.WriteString(infoTextStyle().Render(m.notice))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewBody renders the list area for the current load state.
func (m PasswordsModel) viewBody() string {
	switch m.state {
	case LoadLoading:
		return m.spinner.View() + " Loading saved passwords..."

	case LoadFailed:
		return errorTextStyle().Render("Could not load saved passwords: "+m.loadErr) +
			"\n" + infoTextStyle().Render("Press r to retry.")

	case LoadLoaded:
		if len(m.rows) == 0 {
			return infoTextStyle().Render(emptyListLabel)
		}
		var b strings.Builder
		for i, row := range m.rows {
			b.WriteString(row.View(i == m.cursor))
			b.WriteString("\n")
		}
		return b.String()

	default:
		return ""
	}
}
