package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/langlearn/internal/editor"
	"github.com/ytget/langlearn/internal/model"
	"github.com/ytget/langlearn/internal/platform"
	"github.com/ytget/langlearn/internal/vocab"
)

// Focus targets, cycled with tab
const (
	focusList = iota
	focusLanguage
	focusWord
	focusMeaning
	focusCount
)

const (
	listWidth  = 40
	listHeight = 16
)

const helpText = "tab focus · enter select/submit · ctrl+r reset · ctrl+n new · ctrl+o reload · ctrl+s save · ctrl+c quit"

type noticeLevel int

const (
	levelInfo noticeLevel = iota
	levelWarning
	levelError
)

type entryItem struct {
	entry model.Entry
}

func (i entryItem) Title() string       { return i.entry.Label() }
func (i entryItem) Description() string { return i.entry.Meaning }
func (i entryItem) FilterValue() string { return i.entry.Word }

// fileLoadedMsg carries the lines read from the vocabulary file
type fileLoadedMsg struct {
	lines []string
	err   error
}

// fileSavedMsg reports the outcome of a save
type fileSavedMsg struct {
	count int
	err   error
}

// Model is the Bubble Tea model of the terminal driver
type Model struct {
	width, height int

	store  *vocab.Store
	form   *editor.Form
	path   string
	policy vocab.LoadPolicy

	list   list.Model
	inputs []textinput.Model
	focus  int

	notice string
	level  noticeLevel
}

// NewModel creates the terminal driver for store, saving to and reloading
// from path
func NewModel(store *vocab.Store, path string, policy vocab.LoadPolicy) Model {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Teal).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Teal).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Foreground(DimTeal)

	l := list.New(nil, d, listWidth, listHeight)
	l.Title = "Vocabulary"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	// quitting goes through ctrl+c only
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = TitleStyle

	placeholders := []string{"EN", "cat", "a small feline"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		inputs[i] = ti
	}

	m := Model{
		store:  store,
		form:   editor.NewForm(),
		path:   path,
		policy: policy,
		list:   l,
		inputs: inputs,
		focus:  focusList,
	}
	m.refreshItems()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// status bar, help line and pane borders
		m.list.SetSize(listWidth, max(msg.Height-6, 4))
		return m, nil

	case fileLoadedMsg:
		m.applyLoaded(msg)
		return m, nil

	case fileSavedMsg:
		if msg.err != nil {
			m.setNotice(levelError, msg.err.Error())
			return m, nil
		}
		m.resetForm()
		m.setNotice(levelInfo, fmt.Sprintf("saved %d entries to %s", msg.count, m.path))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "ctrl+r", "esc":
			m.resetForm()
			m.setNotice(levelInfo, "form cleared")
			return m, nil
		case "ctrl+n":
			m.store.Clear()
			m.resetForm()
			m.refreshItems()
			m.setNotice(levelInfo, "started a new list")
			return m, nil
		case "ctrl+o":
			return m, m.loadCmd()
		case "ctrl+s":
			return m, m.saveCmd()
		case "enter":
			if m.focus == focusList {
				return m, m.selectCurrent()
			}
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusList {
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	i := m.focus - focusLanguage
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus to target
func (m *Model) setFocus(target int) tea.Cmd {
	m.focus = target
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == target-focusLanguage {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// selectCurrent copies the highlighted entry into the form
func (m *Model) selectCurrent() tea.Cmd {
	index := m.list.Index()
	entry, ok := m.store.At(index)
	if !ok {
		return nil
	}
	m.form.Select(index, entry)
	m.inputs[0].SetValue(entry.Language)
	m.inputs[1].SetValue(entry.Word)
	m.inputs[2].SetValue(entry.Meaning)
	m.setNotice(levelInfo, "editing "+entry.Label())
	return m.setFocus(focusLanguage)
}

// submit adds or updates from the form fields
func (m *Model) submit() {
	m.form.Language = m.inputs[0].Value()
	m.form.Word = m.inputs[1].Value()
	m.form.Meaning = m.inputs[2].Value()
	mode := m.form.Mode()

	entry, err := m.form.Submit(m.store)
	if err != nil {
		level := levelError
		if errors.Is(err, vocab.ErrDuplicateWord) {
			level = levelWarning
		}
		m.setNotice(level, err.Error())
		return
	}

	m.clearInputs()
	m.refreshItems()
	if index := m.store.IndexOf(entry.ID); index >= 0 {
		m.list.Select(index)
	}
	verb := "added "
	if mode == model.SubmitUpdate {
		verb = "updated "
	}
	m.setNotice(levelInfo, verb+entry.Label())
}

func (m *Model) resetForm() {
	m.form.Reset()
	m.clearInputs()
}

func (m *Model) clearInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

// refreshItems rebuilds the list items from the store
func (m *Model) refreshItems() {
	entries := m.store.Entries()
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{entry: entry}
	}
	m.list.SetItems(items)
}

func (m Model) loadCmd() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		lines, err := platform.ReadLines(path)
		return fileLoadedMsg{lines: lines, err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	path := m.path
	lines := m.store.Lines()
	return func() tea.Msg {
		return fileSavedMsg{count: len(lines), err: platform.WriteLines(path, lines)}
	}
}

// applyLoaded replaces the store with freshly read lines
func (m *Model) applyLoaded(msg fileLoadedMsg) {
	if msg.err != nil {
		if errors.Is(msg.err, fs.ErrNotExist) {
			m.setNotice(levelError, "file not found: "+m.path)
			return
		}
		m.setNotice(levelError, msg.err.Error())
		return
	}

	err := m.store.Reload(msg.lines, m.policy)
	var report *vocab.LoadReport
	switch {
	case err == nil:
		m.setNotice(levelInfo, fmt.Sprintf("loaded %d entries from %s", m.store.Len(), m.path))
	case errors.As(err, &report):
		m.setNotice(levelWarning, fmt.Sprintf("loaded %d entries, skipped %d lines (first: %v)",
			report.Loaded, len(report.Rejected), report.Rejected[0]))
	default:
		m.setNotice(levelError, "not loaded: "+err.Error())
		return
	}

	m.resetForm()
	m.refreshItems()
	m.list.Select(0)
}

func (m *Model) setNotice(level noticeLevel, text string) {
	m.level = level
	m.notice = text
}

func (m Model) View() string {
	listStyle, formStyle := PaneStyle, PaneStyle
	if m.focus == focusList {
		listStyle = PaneActiveStyle
	} else {
		formStyle = PaneActiveStyle
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.list.View()),
		formStyle.Render(m.formView()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		panes,
		m.statusView(),
		HelpStyle.Render(helpText),
	)
}

func (m Model) formView() string {
	labels := []string{"Language", "Word", "Meaning"}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.form.Mode().String()))
	b.WriteString("\n\n")
	for i, label := range labels {
		style := LabelStyle
		if m.focus == focusLanguage+i {
			style = LabelActiveStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) statusView() string {
	var notice string
	switch m.level {
	case levelError:
		notice = ErrorStyle.Render(m.notice)
	case levelWarning:
		notice = WarningStyle.Render(m.notice)
	default:
		notice = NoticeStyle.Render(m.notice)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		StatusModeStyle.Render(m.form.Mode().String()),
		StatusBarStyle.Render(fmt.Sprintf("%d entries", m.store.Len())),
		" ",
		notice,
	)
}

// Run starts the terminal driver and blocks until the user quits
func Run(store *vocab.Store, path string, policy vocab.LoadPolicy) error {
	p := tea.NewProgram(NewModel(store, path, policy), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
