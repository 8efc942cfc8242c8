/*
Copyright © 2026 Jesse Redmond
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/jsredmond/grue/internal/session"
	"github.com/jsredmond/grue/internal/vocab"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FAF")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	statusBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F87AF")).
			Padding(0, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))
)

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type gameModel struct {
	app         *session.Session
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	worldName   string
	showList    bool
}

func newGameModel(app *session.Session, worldName string) gameModel {
	ti := textinput.New()
	ti.Placeholder = "What do you want to do?"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	opening := app.Look()

	vp := viewport.New(0, 0)
	vp.SetContent(opening)

	// Configure a minimalist list for autocomplete
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false) // We filter manually
	sugList.SetShowHelp(false)

	return gameModel{
		app:         app,
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		history:     []string{},
		historyIdx:  -1,
		logContent:  opening,
		worldName:   worldName,
	}
}

func (m *gameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *gameModel) updateSuggestions() {
	val := m.textInput.Value()
	var items []list.Item

	defer func() {
		m.suggestions.SetItems(items)
		m.showList = len(items) > 0
		if m.showList {
			h := len(items)
			if h > 10 {
				h = 10
			}
			listHeight := h
			if listHeight > 0 && listHeight < 4 {
				listHeight = 4
			}
			m.suggestions.SetHeight(listHeight)
			m.suggestions.ResetSelected()
		}
	}()

	if val == "" {
		return
	}

	lower := strings.ToLower(val)
	table := m.app.Parser().Vocabulary()

	// The first word completes against verbs, later words against anything
	// the player can currently see.
	if !strings.Contains(lower, " ") {
		for _, surface := range table.Surfaces() {
			entry, _ := table.Lookup(surface)
			if entry.Part != vocab.Verb {
				continue
			}
			if strings.HasPrefix(surface, lower) && len(lower) < len(surface) {
				items = append(items, suggestion(surface+" "))
			}
		}
		return
	}

	idx := strings.LastIndex(val, " ")
	base, prefix := val[:idx+1], lower[idx+1:]
	if prefix == "" {
		return
	}
	view := m.app.View()
	seen := map[string]bool{}
	for _, id := range view.Scope().IDs() {
		obj, ok := view.Object(id)
		if !ok {
			continue
		}
		for _, syn := range obj.Synonyms {
			if seen[syn] || !strings.HasPrefix(syn, prefix) || len(prefix) >= len(syn) {
				continue
			}
			seen[syn] = true
			items = append(items, suggestion(base+syn))
		}
	}
}

func (m *gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else {
				if len(m.history) > 0 {
					if m.historyIdx == -1 {
						m.historyIdx = len(m.history) - 1
					} else if m.historyIdx > 0 {
						m.historyIdx--
					}
					m.textInput.SetValue(m.history[m.historyIdx])
					m.updateSuggestions()
				}
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else {
				if len(m.history) > 0 && m.historyIdx != -1 {
					if m.historyIdx < len(m.history)-1 {
						m.historyIdx++
						m.textInput.SetValue(m.history[m.historyIdx])
					} else {
						m.historyIdx = -1
						m.textInput.SetValue("")
					}
					m.updateSuggestions()
				}
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val != "" {
				// Prevent duplicate history entries
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")
				m.updateSuggestions()

				m.logContent += fmt.Sprintf("\n\n> %s\n", val)
				text, err := m.app.Execute(val)
				if err == session.ErrQuit {
					return m, tea.Quit
				}
				if err != nil {
					m.logContent += fmt.Sprintf("Error: %v", err)
				} else {
					m.logContent += text
				}

				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()
			}
		default:
			// Normal typing
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewportResize()
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)
	m.viewportResize()

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

// viewportResize recomputes the transcript height from the surrounding chrome.
func (m *gameModel) viewportResize() {
	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	statusH := lipgloss.Height(m.renderStatus())
	inputH := 1

	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.suggestions.Height() + 2 // autocompleteStyle borders
	}

	infoH := lipgloss.Height(infoStyle.Render("Dummy"))
	paddingH := 5

	overhead := titleH + statusH + inputH + listAreaHeight + infoH + paddingH + 4

	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}
}

func (m *gameModel) renderStatus() string {
	state := m.app.State()
	view := m.app.View()

	location := string(state.Location)
	if room, ok := view.Room(); ok {
		location = room.Name
	}

	carrying := "nothing"
	if inv := view.Inventory(); len(inv) > 0 {
		var names []string
		for _, id := range inv {
			if obj, ok := view.Object(id); ok {
				names = append(names, obj.Name)
			}
		}
		carrying = strings.Join(names, ", ")
	}

	status := fmt.Sprintf("%s | Score: %d | Moves: %d\nCarrying: %s",
		location, state.Score, state.Moves, carrying)

	return statusBoxStyle.Width(m.width - 4).Render(status)
}

func (m *gameModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf(" grue | %s ", m.worldName))
	statusBox := m.renderStatus()
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	var inputArea string
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", m.textInput.View(), autocompleteStyle.Render(m.suggestions.View()))
	} else {
		inputArea = m.textInput.View()
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		title,
		statusBox,
		logBox,
		"\n",
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)

	return mainView + strings.Repeat("\n", 5)
}

// RunTUI drives the full-screen interface until the player quits.
func RunTUI(app *session.Session, worldName string) error {
	m := newGameModel(app, worldName)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
