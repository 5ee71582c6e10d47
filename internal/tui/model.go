// Package tui implements the interactive what-if view: one input of the tax
// year is increased step by step and every regime is recomputed.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/taxgo/tax-calculator/internal/calculation"
	"github.com/taxgo/tax-calculator/internal/domain"
)

// chartSegments is the number of intervals between 0 and the current delta on the chart
const chartSegments = 10

var (
	defaultStep = decimal.NewFromInt(10000)
	minStep     = decimal.NewFromInt(100)
	maxStep     = decimal.NewFromInt(1000000)
	ten         = decimal.NewFromInt(10)
)

// Model is the what-if application state
type Model struct {
	ctx    context.Context
	engine *calculation.CalculationEngine
	config *domain.Configuration

	items   []string
	itemIdx int
	delta   decimal.Decimal
	step    decimal.Decimal

	baseline      *domain.TaxSummary
	current       *domain.TaxSummary
	extrapolation *domain.Extrapolation
	showChart     bool

	keys keyMap
	help help.Model

	width   int
	height  int
	loading bool
	err     error
}

// NewModel creates a what-if model for cfg starting on item. An empty or
// unknown item starts on the first extrapolation item.
func NewModel(ctx context.Context, engine *calculation.CalculationEngine, cfg *domain.Configuration, item string) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	items := calculation.ExtrapolationItems()
	idx := 0
	for i, it := range items {
		if it == item {
			idx = i
		}
	}
	return Model{
		ctx:     ctx,
		engine:  engine,
		config:  cfg,
		items:   items,
		itemIdx: idx,
		delta:   decimal.Zero,
		step:    defaultStep,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
		loading: true,
	}
}

// Item returns the input currently being varied
func (m Model) Item() string { return m.items[m.itemIdx] }

// Delta returns the amount added to the current item
func (m Model) Delta() decimal.Decimal { return m.delta }

// Step returns the amount added or removed per key press
func (m Model) Step() decimal.Decimal { return m.step }

// Current returns the summary for the current item and delta, nil until computed
func (m Model) Current() *domain.TaxSummary { return m.current }

// Err returns the last computation error
func (m Model) Err() error { return m.err }

// Init computes the baseline (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return computeCmd(m.ctx, m.engine, m.config, m.Item(), m.delta)
}

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case computedMsg:
		if msg.Item != m.Item() || !msg.Delta.Equal(m.delta) {
			return m, nil // superseded by a later key press
		}
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.current = msg.Summary
		if msg.Delta.IsZero() {
			m.baseline = msg.Summary
		}
		return m, nil

	case extrapolatedMsg:
		if msg.Item != m.Item() || !msg.Delta.Equal(m.delta) {
			return m, nil
		}
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.extrapolation = msg.Extrapolation
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.itemIdx > 0 {
			m.itemIdx--
			return m.recompute()
		}

	case key.Matches(msg, m.keys.Down):
		if m.itemIdx < len(m.items)-1 {
			m.itemIdx++
			return m.recompute()
		}

	case key.Matches(msg, m.keys.Increase):
		m.delta = m.delta.Add(m.step)
		return m.recompute()

	case key.Matches(msg, m.keys.Decrease):
		if m.delta.IsPositive() {
			m.delta = decimal.Max(decimal.Zero, m.delta.Sub(m.step))
			return m.recompute()
		}

	case key.Matches(msg, m.keys.Coarser):
		m.step = decimal.Min(maxStep, m.step.Mul(ten))

	case key.Matches(msg, m.keys.Finer):
		m.step = decimal.Max(minStep, m.step.Div(ten))

	case key.Matches(msg, m.keys.Reset):
		m.delta = decimal.Zero
		m.step = defaultStep
		return m.recompute()

	case key.Matches(msg, m.keys.Chart):
		m.showChart = !m.showChart
		if m.showChart {
			return m, extrapolateCmd(m.ctx, m.engine, m.config, m.Item(), m.delta)
		}
	}
	return m, nil
}

func (m Model) recompute() (tea.Model, tea.Cmd) {
	m.loading = true
	m.extrapolation = nil
	cmds := []tea.Cmd{computeCmd(m.ctx, m.engine, m.config, m.Item(), m.delta)}
	if m.showChart {
		cmds = append(cmds, extrapolateCmd(m.ctx, m.engine, m.config, m.Item(), m.delta))
	}
	return m, tea.Batch(cmds...)
}

// computeCmd returns a command that computes cfg with item increased by delta
func computeCmd(ctx context.Context, engine *calculation.CalculationEngine, cfg *domain.Configuration, item string, delta decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		summary, err := engine.ComputeWithDelta(ctx, cfg, item, delta)
		return computedMsg{Item: item, Delta: delta, Summary: summary, Err: err}
	}
}

// extrapolateCmd returns a command that computes the series from 0 to delta
func extrapolateCmd(ctx context.Context, engine *calculation.CalculationEngine, cfg *domain.Configuration, item string, delta decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		deltas := calculation.Deltas(decimal.Zero, delta, delta.Div(decimal.NewFromInt(chartSegments)))
		e, err := engine.Extrapolate(ctx, cfg, item, deltas)
		return extrapolatedMsg{Item: item, Delta: delta, Extrapolation: e, Err: err}
	}
}

// Run starts the what-if program on the terminal
func Run(ctx context.Context, engine *calculation.CalculationEngine, cfg *domain.Configuration, item string) error {
	p := tea.NewProgram(NewModel(ctx, engine, cfg, item), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
