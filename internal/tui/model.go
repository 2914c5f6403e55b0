// Package tui implements an interactive terminal browser over organized files.
package tui

import (
	"slices"

	"github.com/Veraticus/sift/internal/common"
	"github.com/Veraticus/sift/internal/model"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Store is the organizer surface the browser drives.
type Store interface {
	Files() []model.OrganizedFile
	Folders() []model.SemanticFolder
	Stats() model.Stats
	SetCategoryFilter(name model.CategoryName) error
	CategoryFilter() model.CategoryName
	SetSearchQuery(query string)
	SearchQuery() string
	Remove(id string) error
}

// Model holds the browser state. Everything shown is read back from the store on render.
type Model struct {
	store     Store
	help      help.Model
	keymap    KeyMap
	search    textinput.Model
	status    string
	cursor    int
	width     int
	height    int
	searching bool
	preview   bool
	quitting  bool
}

// New creates a browser over store.
func New(store Store) Model {
	search := textinput.New()
	search.Placeholder = "name, keyword or content"
	search.Prompt = "/ "
	search.SetValue(store.SearchQuery())

	return Model{
		store:  store,
		keymap: DefaultKeyMap(),
		help:   help.New(),
		search: search,
		width:  80,
		height: 24,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ExitSearch):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keymap.ClearSearch):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.store.SetSearchQuery("")
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearchQuery(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.store.Files())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.NextTab):
		m.switchTab(1)

	case key.Matches(msg, m.keymap.PrevTab):
		m.switchTab(-1)

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keymap.ClearSearch):
		m.search.SetValue("")
		m.store.SetSearchQuery("")
		m.cursor = 0

	case key.Matches(msg, m.keymap.Remove):
		m.removeSelected()

	case key.Matches(msg, m.keymap.Preview):
		m.preview = !m.preview

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// tabs lists the folder filters: "" for all files, then every visible folder.
func (m Model) tabs() []model.CategoryName {
	folders := m.store.Folders()
	tabs := make([]model.CategoryName, 0, len(folders)+1)
	tabs = append(tabs, "")
	for _, f := range folders {
		tabs = append(tabs, f.Name)
	}
	return tabs
}

func (m Model) activeTab(tabs []model.CategoryName) int {
	current := m.store.CategoryFilter()
	for i, t := range tabs {
		if t == current {
			return i
		}
	}
	return 0
}

func (m *Model) switchTab(delta int) {
	tabs := m.tabs()
	next := (m.activeTab(tabs) + delta + len(tabs)) % len(tabs)
	if err := m.store.SetCategoryFilter(tabs[next]); err != nil {
		m.status = common.UserMessage(err)
		return
	}
	m.cursor = 0
	m.status = ""
}

func (m *Model) removeSelected() {
	files := m.store.Files()
	if len(files) == 0 {
		return
	}
	selected := files[min(m.cursor, len(files)-1)]
	if err := m.store.Remove(selected.ID); err != nil {
		m.status = common.UserMessage(err)
		return
	}
	m.status = "Removed " + selected.Name
	if m.cursor >= len(files)-1 && m.cursor > 0 {
		m.cursor--
	}

	// Removing the last file of a hidden-when-empty folder drops its tab.
	if !slices.Contains(m.tabs(), m.store.CategoryFilter()) {
		if err := m.store.SetCategoryFilter(""); err != nil {
			m.status = common.UserMessage(err)
			return
		}
		m.cursor = 0
	}
}

// Selected returns the file under the cursor.
func (m Model) Selected() (model.OrganizedFile, bool) {
	files := m.store.Files()
	if len(files) == 0 {
		return model.OrganizedFile{}, false
	}
	return files[min(m.cursor, len(files)-1)], true
}

// Previewing reports whether the detail pane shows the file's text.
func (m Model) Previewing() bool {
	return m.preview
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searching
}
