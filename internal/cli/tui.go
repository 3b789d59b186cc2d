package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
	"github.com/iic-jku/klayout-pin-tool/pkg/pdk"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the "browse" command, an interactive view of a
// technology's pin entries.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <tech>",
		Short: "Browse a technology's pin entries interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateTechName(args[0]); err != nil {
				return err
			}
			tbl, err := c.lookupTable(args[0])
			if err != nil {
				return err
			}
			if len(tbl.PinInfos) == 0 {
				printInfo("Table %s has no pin entries", tbl.TechName)
				return nil
			}

			model := NewPinListModel(tbl)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// =============================================================================
// PinListModel - Interactive pin entry browsing
// =============================================================================

// PinListModel is the bubbletea model for browsing a table's pin entries.
// The cursor row expands inline so the group indirection is visible without
// leaving the list.
type PinListModel struct {
	Table  *pdk.Table
	Cursor int
	Height int
	Offset int
}

// NewPinListModel creates a new pin entry list model.
func NewPinListModel(t *pdk.Table) PinListModel {
	return PinListModel{
		Table:  t,
		Height: 15,
	}
}

func (m PinListModel) Init() tea.Cmd {
	return nil
}

func (m PinListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Table.PinInfos)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PinListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Pin Entries: " + m.Table.TechName))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Table.PinInfos) {
		end = len(m.Table.PinInfos)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		info := m.Table.PinInfos[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			info.ShortLayerName,
			strings.Join(m.Table.LayersOfGroups(info.PinLayers), ", "),
			strings.Join(m.Table.LayersOfGroups(info.LabelLayers), ", "),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "Layer", "Pin Boxes On", "Labels On").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	// Expansion of the current entry, the full resolution picture.
	current := m.Table.PinInfos[m.Cursor]
	b.WriteString(StyleHighlight.Render(current.ShortLayerName))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  related: %s",
		strings.Join(m.Table.LayersOfGroups(current.RelatedLayers), ", "))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Table.PinInfos))))
	b.WriteString("\n")

	return b.String()
}
