package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/Veraticus/sift/internal/extract"
	"github.com/Veraticus/sift/internal/model"
	"github.com/Veraticus/sift/internal/organizer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *organizer.Organizer {
	t.Helper()

	cfg := organizer.DefaultConfig()
	cfg.Workers = 1
	cfg.Registerer = prometheus.NewRegistry()
	store, err := organizer.New(extract.New(extract.Config{}), cfg)
	require.NoError(t, err)

	_, err = store.AddFiles(context.Background(), []organizer.Upload{
		{Name: "budget.txt", Data: []byte("bank investment stock portfolio dividend")},
		{Name: "lecture.txt", Data: []byte("The university student studied for the exam with the professor at school")},
		{Name: "loan.txt", Data: []byte("The bank approved the loan and the mortgage payment")},
	}, nil)
	require.NoError(t, err)
	return store
}

func press(m tea.Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigationAndTabs(t *testing.T) {
	store := newStore(t)
	m := New(store)

	f, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "budget.txt", f.Name)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	f, _ = m.Selected()
	assert.Equal(t, "loan.txt", f.Name, "cursor stops at last file")

	m = press(m, runes("k"))
	f, _ = m.Selected()
	assert.Equal(t, "lecture.txt", f.Name)

	// Tabs: All, Education, Finance, Health, Technology (Others hidden while empty).
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.CategoryEducation, store.CategoryFilter())
	assert.Len(t, store.Files(), 1)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.CategoryFinance, store.CategoryFilter())
	assert.Len(t, store.Files(), 2)

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, model.CategoryName(""), store.CategoryFilter())

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, model.CategoryTechnology, store.CategoryFilter(), "wraps around")
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	store := newStore(t)
	m := New(store)

	m = press(m, runes("/"))
	assert.True(t, m.Searching())

	m = press(m, runes("m"), runes("o"), runes("r"), runes("t"))
	assert.Equal(t, "mort", store.SearchQuery())
	files := store.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "loan.txt", files[0].Name)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Searching())
	assert.Equal(t, "mort", store.SearchQuery(), "enter keeps the query")

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, store.SearchQuery())
	assert.Len(t, store.Files(), 3)

	m = press(m, runes("/"), runes("q"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Searching())
	assert.False(t, m.quitting, "q typed into search does not quit")
	assert.Empty(t, store.SearchQuery())
}

func TestRemove(t *testing.T) {
	store := newStore(t)
	m := New(store)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, runes("d"))
	assert.Len(t, store.AllFiles(), 2)
	assert.Equal(t, "Removed loan.txt", m.status)

	f, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "lecture.txt", f.Name, "cursor moves up after removing the last row")
}

func TestRemoveLastOthersFileResetsFilter(t *testing.T) {
	store := newStore(t)
	_, err := store.AddFiles(context.Background(), []organizer.Upload{
		{Name: "weather.txt", Data: []byte("sunny weather today")},
	}, nil)
	require.NoError(t, err)

	m := New(store)
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, model.CategoryOthers, store.CategoryFilter())
	require.Len(t, store.Files(), 1)

	m = press(m, runes("d"))
	assert.Equal(t, "Removed weather.txt", m.status)
	assert.Equal(t, model.CategoryName(""), store.CategoryFilter())
	assert.Len(t, store.Files(), 3)
	assert.Equal(t, 0, m.activeTab(m.tabs()))

	f, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "budget.txt", f.Name)
	assert.Contains(t, m.View(), "All (3)")
}

func TestPreview(t *testing.T) {
	store := newStore(t)
	_, err := store.AddFiles(context.Background(), []organizer.Upload{
		{Name: "long.txt", Data: []byte(strings.Repeat("ledger ", 800))},
	}, nil)
	require.NoError(t, err)

	m := New(store)
	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.NotContains(t, m.View(), "bank investment stock")

	m = press(m, runes("p"))
	require.True(t, m.Previewing())
	view := m.View()
	assert.Contains(t, view, "bank investment stock")
	assert.NotContains(t, view, "content truncated")

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	f, _ := m.Selected()
	require.Equal(t, "long.txt", f.Name)
	assert.Contains(t, m.View(), "content truncated (5.5 KiB total)")

	m = press(m, runes("p"))
	assert.False(t, m.Previewing())
	assert.NotContains(t, m.View(), "content truncated")
}

func TestQuit(t *testing.T) {
	m := New(newStore(t))
	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, updated.(Model).quitting)
	assert.Empty(t, updated.(Model).View())
}

func TestView(t *testing.T) {
	m := New(newStore(t))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := updated.(Model).View()

	assert.Contains(t, view, "Semantic folders")
	assert.Contains(t, view, "All (3)")
	assert.Contains(t, view, "Finance (2)")
	assert.Contains(t, view, "budget.txt")
	assert.Contains(t, view, "3 files")
	assert.Contains(t, view, "Press / to search")
	assert.NotContains(t, view, "Others")
}
