package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/sift/internal/classification"
	"github.com/Veraticus/sift/internal/cli"
	"github.com/Veraticus/sift/internal/extract"
	"github.com/Veraticus/sift/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(cli.SubtleColor)
	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Underline(true)
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor)
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#404040")).
			Padding(0, 1)
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		cli.FormatTitle("Semantic folders"),
		m.renderTabs(),
		m.renderSearch(),
		m.renderFiles(),
	}
	if detail := m.renderDetail(); detail != "" {
		sections = append(sections, detail)
	}
	if m.status != "" {
		sections = append(sections, cli.FormatInfo(m.status))
	}
	sections = append(sections, m.renderFooter(), m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	tabs := m.tabs()
	active := m.activeTab(tabs)
	counts := make(map[model.CategoryName]int)
	total := 0
	for _, f := range m.store.Folders() {
		counts[f.Name] = len(f.Files)
		total += len(f.Files)
	}

	rendered := make([]string, len(tabs))
	for i, name := range tabs {
		label := fmt.Sprintf("All (%d)", total)
		style := tabStyle
		if name != "" {
			cfg := classification.GetCategoryConfig(name)
			label = fmt.Sprintf("%s %s (%d)", cfg.Icon, cfg.Name, counts[name])
			style = style.Foreground(cli.CategoryColor(cfg.Color))
		}
		if i == active {
			style = activeTabStyle.Foreground(style.GetForeground())
		}
		rendered[i] = style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderSearch() string {
	if m.searching || m.search.Value() != "" {
		return m.search.View()
	}
	return cli.SubtleStyle.Render("Press / to search")
}

func (m Model) renderFiles() string {
	files := m.store.Files()
	if len(files) == 0 {
		return cli.SubtleStyle.Render("No files match.")
	}

	// Keep the cursor visible when the list is taller than the window.
	visible := max(m.height-14, 3)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(files))

	var b strings.Builder
	for i := start; i < end; i++ {
		f := files[i]
		line := fmt.Sprintf("%s  %s", f.Name, cli.RenderCategory(f.Category))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderDetail() string {
	f, ok := m.Selected()
	if !ok {
		return ""
	}
	body := fmt.Sprintf("%s\n%s · %s · %s\n%s",
		cli.BoldStyle.Render(f.Name),
		cli.RenderCategory(f.Category),
		extract.FormatFileSize(f.Size),
		f.Type,
		cli.RenderKeywords(f.Keywords))
	if m.preview {
		body += "\n\n" + renderPreview(f)
	}
	return detailStyle.Width(max(m.width-4, 20)).Render(body)
}

func renderPreview(f model.OrganizedFile) string {
	text, truncated := f.Preview(model.PreviewLimit)
	if strings.TrimSpace(text) == "" {
		return cli.SubtleStyle.Render("(no text content)")
	}
	if truncated {
		text += cli.SubtleStyle.Render(fmt.Sprintf("\n\n... content truncated (%s total)",
			extract.FormatFileSize(int64(len(f.Content)))))
	}
	return text
}

func (m Model) renderFooter() string {
	stats := m.store.Stats()
	return cli.SubtleStyle.Render(fmt.Sprintf("%d files · %s",
		stats.TotalFiles, extract.FormatFileSize(stats.TotalSize)))
}
