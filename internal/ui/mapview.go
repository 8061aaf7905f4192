package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vacmate/internal/envmap"
)

// Grid cell markers produced by mapGrid.
const (
	cellFloor   = '·'
	cellCleaned = '░'
	cellZone    = '▒'
	cellPending = '▓'
	cellChosen  = '█'
	cellRobot   = '@'
)

// mapGrid projects the map state onto a rune grid of the given size. Later
// layers overdraw earlier ones: floor, cleaned regions, zones, robot pose.
// The zone whose ID matches selected is drawn with cellChosen.
func mapGrid(state envmap.MapState, selected string, width, height int) [][]rune {
	if width < 1 || height < 1 {
		return nil
	}

	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = cellFloor
		}
	}

	for _, region := range state.CleanedRegions {
		fillRect(grid, region.Rect, cellCleaned, width, height)
	}

	for _, zone := range state.Zones {
		marker := cellZone
		if zone.Pending {
			marker = cellPending
		}
		if zone.ID == selected {
			marker = cellChosen
		}
		fillRect(grid, zone.Rect, marker, width, height)
	}

	x := cellIndex(state.Pose.X, width)
	y := cellIndex(state.Pose.Y, height)
	grid[y][x] = cellRobot

	return grid
}

// fillRect paints a percentage rect onto the grid, at least one cell wide.
func fillRect(grid [][]rune, r envmap.Rect, marker rune, width, height int) {
	x0 := cellIndex(r.X, width)
	y0 := cellIndex(r.Y, height)
	x1 := cellIndex(r.X+r.Width, width)
	y1 := cellIndex(r.Y+r.Height, height)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			grid[y][x] = marker
		}
	}
}

// cellIndex maps a percentage coordinate to a grid index, clamped in range.
func cellIndex(pct float64, size int) int {
	idx := int(pct / 100 * float64(size))
	if idx < 0 {
		idx = 0
	}
	if idx >= size {
		idx = size - 1
	}
	return idx
}

// renderMap renders the map view: grid on the left, zone list on the right.
func (m Model) renderMap(height int) string {
	styles := m.theme.Styles()

	sidebarWidth := 32
	gridWidth := m.width - sidebarWidth - 6
	if gridWidth < 20 {
		gridWidth = 20
	}
	gridHeight := height - 4
	if gridHeight < 5 {
		gridHeight = 5
	}

	grid := mapGrid(m.mapView.State, m.mapView.Selection.ZoneID, gridWidth, gridHeight)

	var gb strings.Builder
	for i, row := range grid {
		if i > 0 {
			gb.WriteString("\n")
		}
		gb.WriteString(m.renderGridRow(row, styles))
	}

	gridPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Render(gb.String())

	sidebar := m.renderZoneSidebar(sidebarWidth, styles)

	body := lipgloss.JoinHorizontal(lipgloss.Top, gridPanel, "  ", sidebar)

	var banner string
	derived := envmap.Derive(m.mapView.State)
	switch {
	case m.mapView.Scanning:
		banner = styles.InfoText.Render(m.spin.View() + " scanning...")
	case m.mapView.IsOffline():
		banner = styles.DangerText.Render("Map telemetry offline; showing last known map")
	case derived.StaleAfter(m.staleAfter):
		banner = styles.WarningText.Render("Map data is stale (s to rescan)")
	}

	sections := []string{body}
	if banner != "" {
		sections = append(sections, banner)
	}
	if m.adding {
		prompt := styles.AccentText.Render("New zone name: ") + m.zoneName.View()
		sections = append(sections, prompt)
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Height(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderGridRow styles one grid row, coloring each marker type.
func (m Model) renderGridRow(row []rune, styles Styles) string {
	var b strings.Builder
	for _, cell := range row {
		switch cell {
		case cellFloor:
			b.WriteString(styles.FaintText.Render(string(cell)))
		case cellCleaned:
			b.WriteString(styles.SuccessText.Render(string(cell)))
		case cellZone:
			b.WriteString(styles.AccentText.Render(string(cell)))
		case cellPending:
			b.WriteString(styles.WarningText.Render(string(cell)))
		case cellChosen:
			b.WriteString(styles.InfoText.Render(string(cell)))
		case cellRobot:
			b.WriteString(styles.DangerText.Render(string(cell)))
		default:
			b.WriteString(string(cell))
		}
	}
	return b.String()
}

// renderZoneSidebar lists zones with selection and pending markers.
func (m Model) renderZoneSidebar(width int, styles Styles) string {
	var b strings.Builder

	derived := envmap.Derive(m.mapView.State)
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("Zones (%d)", derived.ZoneCount)))
	b.WriteString("\n\n")

	if len(m.mapView.State.Zones) == 0 {
		b.WriteString(styles.MutedText.Render("No zones defined."))
		b.WriteString("\n")
	}

	for i, zone := range m.mapView.State.Zones {
		name := truncate(zone.Name, width-10)
		if name == "" {
			name = zone.ID
		}

		label := name
		if zone.Pending {
			label += " " + styles.WarningText.Render("(pending)")
		}
		if m.mapView.Selection.ZoneID == zone.ID {
			label += " " + styles.InfoText.Render("✓")
		}

		if i == m.zoneIndex {
			b.WriteString(styles.Selected.Render("> " + label))
		} else {
			b.WriteString(styles.Text.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%.1f m² mapped", derived.MappedAreaM2)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d obstacles", derived.ObstacleCount)))
	b.WriteString("\n")

	return lipgloss.NewStyle().Width(width).Render(b.String())
}
