package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PanelEntry is one selectable command in the panel.
type PanelEntry struct {
	ID     string
	Label  string
	Detail string
}

func (e PanelEntry) Title() string       { return e.Label }
func (e PanelEntry) Description() string { return e.Detail }
func (e PanelEntry) FilterValue() string { return e.Label }

var panelFrame = lipgloss.NewStyle().Margin(1, 2)

// panelModel is the bubbletea model behind RunPanel.
type panelModel struct {
	list   list.Model
	chosen string
}

func newPanelModel(title string, entries []PanelEntry) panelModel {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}

	l := list.New(items, entryDelegate(), 0, 0)
	l.Title = title
	l.Styles.Title = l.Styles.Title.Background(lipgloss.Color("25"))
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run"))}
	}
	return panelModel{list: l}
}

func entryDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	return d
}

func (m panelModel) Init() tea.Cmd { return nil }

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := panelFrame.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if e, ok := m.list.SelectedItem().(PanelEntry); ok {
				m.chosen = e.ID
			}
			return m, tea.Quit
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m panelModel) View() string {
	return panelFrame.Render(m.list.View())
}

// RunPanel shows the command list full-screen and returns the identifier of
// the chosen entry, or "" when the user quits.
func RunPanel(title string, entries []PanelEntry, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(newPanelModel(title, entries), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running panel: %w", err)
	}
	return final.(panelModel).chosen, nil
}
