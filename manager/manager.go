// SPDX-License-Identifier: MIT
// Package: manager
//
// manager.go: the Manager type and shared precondition helpers.

package manager

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/katalvlaran/datagrid/grid"
)

// Manager derives and checks target grids against one borrowed source grid.
// Source part frequencies must be current (grid.UpdateStatistics).
type Manager struct {
	source *grid.Grid
	src    rand.Source
	rng    *rand.Rand
	logger *zap.Logger
}

// New binds a manager to source. It panics on a nil source.
func New(source *grid.Grid, opts ...Option) *Manager {
	if source == nil {
		panicf("New", ErrSourceNotSet, "nil source")
	}
	c := newConfig(opts...)
	return &Manager{
		source: source,
		src:    c.src,
		rng:    rand.New(c.src),
		logger: c.logger,
	}
}

// Source returns the borrowed source grid.
func (m *Manager) Source() *grid.Grid { return m.source }

// Check verifies that the source grid is internally consistent.
func (m *Manager) Check() error {
	if err := m.source.Check(); err != nil {
		return fmt.Errorf("manager: source: %w", err)
	}
	return nil
}

// sourceAttribute returns the source attribute named name or panics.
func (m *Manager) sourceAttribute(method, name string) *grid.Attribute {
	a := m.source.SearchAttribute(name)
	if a == nil {
		panicf(method, ErrUnknownAttribute, "%q not in source", name)
	}
	return a
}

func requireEmpty(method string, target *grid.Grid) {
	if !target.IsEmpty() {
		panicf(method, ErrTargetNotEmpty, "%d attributes, %d cells", target.AttributeNumber(), target.CellNumber())
	}
}

func requireNoCells(method string, target *grid.Grid) {
	if target.CellNumber() > 0 {
		panicf(method, ErrCellsPresent, "%d cells", target.CellNumber())
	}
}

func requireNoParts(method string, a *grid.Attribute) {
	if a.PartNumber() > 0 {
		panicf(method, ErrPartsPresent, "attribute %q has %d parts", a.Name, a.PartNumber())
	}
}

// addShell appends to target an attribute with the descriptive fields of a
// and no part.
func addShell(target *grid.Grid, a *grid.Attribute) *grid.Attribute {
	out := target.AddAttribute(a.Name, a.Type)
	out.InitialValueNumber = a.InitialValueNumber
	out.GranularizedValueNumber = a.GranularizedValueNumber
	out.Cost = a.Cost
	return out
}

// unitFrequencies returns the frequency of every part of a.
func unitFrequencies(a *grid.Attribute) []int {
	out := make([]int, a.PartNumber())
	for i := range out {
		out[i] = a.Part(i).Frequency
	}
	return out
}

// logShortfall records a realised count below the requested one.
func (m *Manager) logShortfall(op string, a *grid.Attribute, requested, realised int) {
	if realised >= requested {
		return
	}
	m.logger.Debug("part count shortfall",
		zap.String("op", op),
		zap.String("attribute", a.Name),
		zap.Int("requested", requested),
		zap.Int("realised", realised))
}
