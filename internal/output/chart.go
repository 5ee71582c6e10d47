package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart draws one or more series as a line chart on a character grid
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // X-axis labels
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string
}

const yAxisWidth = 10

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      72,
		Height:     16,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	if width > yAxisWidth+10 {
		c.Width = width
	}
	if height > 2 {
		c.Height = height
	}
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 || c.longestSeries() == 0 {
		return MutedStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		content.WriteString(MutedStyle.Italic(true).Render(c.XAxisLabel))
	}
	if c.ShowLegend {
		content.WriteString("\n\n")
		content.WriteString(c.renderLegend())
	}
	return content.String()
}

func (c *ASCIIChart) longestSeries() int {
	n := 0
	for _, s := range c.Series {
		n = max(n, len(s.Points))
	}
	return n
}

// bounds returns the value range across all series with 10% padding
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if hi-lo == 0 {
		return lo - 1, hi + 1
	}
	padding := (hi - lo) * 0.1
	return lo - padding, hi + padding
}

func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	chartWidth := c.Width - yAxisWidth - 3
	columns := c.longestSeries()

	grid := make([][]rune, c.Height)
	cells := make([][]int, c.Height) // series index per cell, -1 when empty
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", chartWidth))
		cells[i] = make([]int, chartWidth)
		for j := range cells[i] {
			cells[i][j] = -1
		}
	}

	xOf := func(i int) int {
		if columns < 2 {
			return 0
		}
		return int(float64(i) / float64(columns-1) * float64(chartWidth-1))
	}
	yOf := func(v float64) int {
		return c.Height - 1 - int(math.Round((v-minVal)/(maxVal-minVal)*float64(c.Height-1)))
	}

	for idx, series := range c.Series {
		char := seriesChar(idx)
		for i, point := range series.Points {
			x, y := xOf(i), yOf(point)
			if i > 0 {
				drawLine(grid, cells, xOf(i-1), yOf(series.Points[i-1]), x, y, char, idx)
			}
			if inGrid(grid, x, y) {
				grid[y][x] = char
				cells[y][x] = idx
			}
		}
	}

	var out strings.Builder
	for i, row := range grid {
		yValue := maxVal - float64(i)/float64(c.Height-1)*(maxVal-minVal)
		axis := lipgloss.NewStyle().Foreground(ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
		out.WriteString(axis.Render(formatChartValue(yValue)))
		out.WriteString(" │ ")
		for j, r := range row {
			if cells[i][j] < 0 {
				out.WriteRune(r)
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.Series[cells[i][j]].Color)
			out.WriteString(style.Render(string(r)))
		}
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", chartWidth+1))
	out.WriteString("\n")

	if len(c.Labels) > 0 {
		out.WriteString(c.renderXAxisLabels(chartWidth, xOf))
	}
	return out.String()
}

// renderXAxisLabels places up to five labels under their columns without overlap
func (c *ASCIIChart) renderXAxisLabels(chartWidth int, xOf func(int) int) string {
	const maxLabels = 5
	step := max(1, (len(c.Labels)+maxLabels-1)/maxLabels)

	line := []rune(strings.Repeat(" ", chartWidth+8))
	next := 0
	for i := 0; i < len(c.Labels); i += step {
		label := []rune(c.Labels[i])
		x := xOf(i)
		if x < next || x+len(label) > len(line) {
			continue
		}
		copy(line[x:], label)
		next = x + len(label) + 1
	}
	return strings.Repeat(" ", yAxisWidth+3) + MutedStyle.Render(strings.TrimRight(string(line), " ")) + "\n"
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, series.Name))
	}
	return MutedStyle.Render("Legend: ") + strings.Join(items, "  ")
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

func inGrid(grid [][]rune, x, y int) bool {
	return y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y])
}

// drawLine connects two points using Bresenham's algorithm without
// overwriting cells already taken by a series
func drawLine(grid [][]rune, cells [][]int, x0, y0, x1, y1 int, char rune, series int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if inGrid(grid, x, y) && cells[y][x] < 0 {
			grid[y][x] = char
			cells[y][x] = series
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// formatChartValue formats a value for display on the Y-axis
func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
