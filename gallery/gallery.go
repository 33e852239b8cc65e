package gallery

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jdginn/go-card-reflect/card"
)

var (
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Renderer renders the image at path and reports where the card was written.
type Renderer func(path string) (card.Result, error)

type item struct {
	path   string
	status string
}

func (i item) Title() string {
	return filepath.Base(i.path)
}

func (i item) Description() string {
	if i.status == "" {
		return "enter to render"
	}
	return i.status
}

func (i item) FilterValue() string {
	return i.Title()
}

type renderedMsg struct {
	index  int
	result card.Result
	err    error
}

type model struct {
	list   list.Model
	render Renderer
}

func newModel(paths []string, render Renderer) model {
	items := make([]list.Item, len(paths))
	for i, p := range paths {
		items[i] = item{path: p}
	}
	m := model{list: list.New(items, list.NewDefaultDelegate(), 0, 0), render: render}
	m.list.Title = "Cards"
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "enter" && m.list.FilterState() != list.Filtering {
			return m, m.renderSelected()
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case renderedMsg:
		return m, m.finish(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

func (m *model) renderSelected() tea.Cmd {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return nil
	}
	index := m.list.Index()
	it.status = "rendering..."
	setCmd := m.list.SetItem(index, it)

	render := m.render
	return tea.Batch(setCmd, func() tea.Msg {
		res, err := render(it.path)
		return renderedMsg{index: index, result: res, err: err}
	})
}

func (m *model) finish(msg renderedMsg) tea.Cmd {
	items := m.list.Items()
	if msg.index < 0 || msg.index >= len(items) {
		return nil
	}
	it, ok := items[msg.index].(item)
	if !ok {
		return nil
	}
	if msg.err != nil {
		it.status = errorStyle.Render(msg.err.Error())
	} else {
		it.status = fmt.Sprintf("%s, %s in %s",
			filepath.Base(msg.result.Output),
			humanize.Bytes(uint64(msg.result.Bytes)),
			msg.result.Elapsed.Round(time.Millisecond))
	}
	return m.list.SetItem(msg.index, it)
}

// Run shows the images in paths and renders the selected one on enter.
func Run(paths []string, render Renderer) error {
	p := tea.NewProgram(newModel(paths, render), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running gallery: %w", err)
	}
	return nil
}
