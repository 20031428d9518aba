/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package selector

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/snowman-cli/snowman/pkg/utils"
	"golang.org/x/term"
)

var (
	titleStyle      = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	paginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

const (
	defaultWidth  = 80
	defaultHeight = 20
)

type item struct {
	index int
	title string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return i.title }

type model struct {
	list    list.Model
	choice  int
	aborted bool
}

func newModel(prompt string, items []string) model {
	listItems := make([]list.Item, 0, len(items))
	for i, title := range items {
		listItems = append(listItems, item{index: i, title: title})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(listItems, delegate, defaultWidth, defaultHeight)
	l.Title = prompt
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return model{list: l, choice: -1}
}

// Init opens the filter so typing narrows the list immediately.
func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.aborted = true

			return m, tea.Quit

		case "esc":
			if m.list.FilterState() == list.Unfiltered {
				m.aborted = true

				return m, tea.Quit
			}

		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.index

				return m, tea.Quit
			}

			if m.list.FilterState() != list.Filtering {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.choice >= 0 || m.aborted {
		return ""
	}

	return "\n" + m.list.View()
}

// FuzzySelector is the interactive Selector: a filterable list rendered on the terminal.
type FuzzySelector struct {
	Input      io.Reader
	Output     io.Writer
	IsTerminal func() bool
}

// NewFuzzySelector reads keys from stdin and renders on stderr so stdout stays clean.
func NewFuzzySelector() *FuzzySelector {
	return &FuzzySelector{
		Input:  os.Stdin,
		Output: os.Stderr,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// Choose runs the picker until the user confirms or cancels.
func (s *FuzzySelector) Choose(prompt string, items []string) (int, error) {
	if s.IsTerminal != nil && !s.IsTerminal() {
		return -1, utils.SelectionAborted.WithDetails("cannot prompt for %q: stdin is not a terminal", prompt)
	}

	p := tea.NewProgram(newModel(prompt, items), tea.WithInput(s.Input), tea.WithOutput(s.Output))

	final, err := p.Run()
	if err != nil {
		return -1, utils.SelectionAborted.WithDetails("%v", err)
	}

	fm, ok := final.(model)
	if !ok || fm.aborted || fm.choice < 0 {
		return -1, utils.SelectionAborted.WithDetails("no %s chosen", prompt)
	}

	return fm.choice, nil
}
