package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stackdeck/pkg/source"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// deckEntry is one row of the built-in deck list.
type deckEntry struct {
	Name     string
	Title    string
	Theme    string
	Slides   int
	Sections int
}

// builtinEntries describes every embedded deck. Decks that fail to load
// are left out.
func builtinEntries() []deckEntry {
	var out []deckEntry
	for _, name := range source.Builtins() {
		src, err := source.Builtin(name)
		if err != nil {
			continue
		}
		theme := src.Def.Theme
		if theme == "" {
			theme = "plain"
		}
		out = append(out, deckEntry{
			Name:     name,
			Title:    src.Def.Title,
			Theme:    theme,
			Slides:   len(src.Def.Slides),
			Sections: len(src.Def.Sections()),
		})
	}
	return out
}

// deckTable renders entries as a bordered table. cursor marks the selected
// row; pass -1 for a plain listing.
func deckTable(entries []deckEntry, cursor int) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		mark := "  "
		if i == cursor {
			mark = "▸ "
		}
		rows[i] = []string{mark, e.Name, e.Title, e.Theme, strconv.Itoa(e.Slides)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Deck", "Title", "Theme", "Slides").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case row == cursor:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case col == 3 || col == 4:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// =============================================================================
// deckListModel - Interactive deck selection
// =============================================================================

// deckListModel is the bubbletea model behind the built-in deck picker.
type deckListModel struct {
	Decks    []deckEntry
	Cursor   int
	Selected string
}

func newDeckListModel(decks []deckEntry) deckListModel {
	return deckListModel{Decks: decks}
}

func (m deckListModel) Init() tea.Cmd {
	return nil
}

func (m deckListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Decks)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Decks) > 0 {
			m.Selected = m.Decks[m.Cursor].Name
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m deckListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Deck"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ build  q quit"))
	b.WriteString("\n\n")
	b.WriteString(deckTable(m.Decks, m.Cursor))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Decks))))
	b.WriteString("\n")

	return b.String()
}

// pickDeck runs the picker and returns the chosen deck name, or "" when the
// user quit without choosing.
func pickDeck() (string, error) {
	decks := builtinEntries()
	if len(decks) == 0 {
		return "", fmt.Errorf("no built-in decks available")
	}
	final, err := tea.NewProgram(newDeckListModel(decks)).Run()
	if err != nil {
		return "", fmt.Errorf("deck picker: %w", err)
	}
	return final.(deckListModel).Selected, nil
}
