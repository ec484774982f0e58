// SPDX-License-Identifier: MIT
// Package: manager
//
// check.go: compatibility of a target grid with the source grid.
//
// A target is compatible when:
//   • its target values equal the source ones;
//   • its granularity does not exceed the source resolution;
//   • its attributes exist in the source, same type, same relative order;
//   • the parts of each attribute are a coarsening of the source parts;
//   • its cells are the aggregation of the source cells under that coarsening.
// Checks never mutate either grid. Failures are returned as *CheckError and
// logged at debug level.

package manager

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/datagrid/grid"
	"github.com/katalvlaran/datagrid/quantile"
)

// CheckDataGrid runs every check. Independent failures are combined with
// multierr; parts are not checked once attributes fail, cells once parts fail.
func (m *Manager) CheckDataGrid(target *grid.Grid) error {
	err := multierr.Combine(
		m.CheckTargetValues(target),
		m.CheckGranularity(target),
	)
	if e := m.CheckAttributes(target); e != nil {
		return multierr.Append(err, e)
	}
	if e := m.CheckParts(target); e != nil {
		return multierr.Append(err, e)
	}
	return multierr.Append(err, m.CheckCells(target))
}

// CheckTargetValues reports whether the target values equal the source ones.
func (m *Manager) CheckTargetValues(target *grid.Grid) error {
	if !slices.Equal(target.TargetValues(), m.source.TargetValues()) {
		return m.fail(ErrTargetValueMismatch, "", "target values %v, source %v",
			target.TargetValues(), m.source.TargetValues())
	}
	return nil
}

// CheckGranularity accepts a target when the source is not granularized, or
// when the target granularity is set and at most the source one. A
// granularized target may hold at most PartileNumber(g, N) intervals per
// continuous attribute.
func (m *Manager) CheckGranularity(target *grid.Grid) error {
	sg, tg := m.source.Granularity(), target.Granularity()
	if sg != 0 && (tg == 0 || tg > sg) {
		return m.fail(ErrGranularityMismatch, "", "target granularity %d, source %d", tg, sg)
	}
	if tg > 0 {
		limit := quantile.PartileNumber(tg, m.source.Frequency())
		for _, a := range target.Attributes() {
			if a.Type == grid.Continuous && a.PartNumber() > limit {
				return m.fail(ErrGranularityMismatch, a.Name, "%d parts exceed %d at granularity %d",
					a.PartNumber(), limit, tg)
			}
		}
	}
	return nil
}

// CheckAttributes reports whether every target attribute exists in the
// source with the same type, in source order.
func (m *Manager) CheckAttributes(target *grid.Grid) error {
	last := -1
	for _, a := range target.Attributes() {
		s := m.source.SearchAttribute(a.Name)
		if s == nil {
			return m.fail(ErrAttributeMismatch, a.Name, "not in source")
		}
		if s.Type != a.Type {
			return m.fail(ErrAttributeMismatch, a.Name, "type %s, source %s", a.Type, s.Type)
		}
		if s.Index() <= last {
			return m.fail(ErrAttributeMismatch, a.Name, "out of source order")
		}
		last = s.Index()
	}
	return nil
}

// CheckParts reports whether the parts of every target attribute form a
// partition of the source parts: each source part inside exactly one target
// part, each target part covering at least one source part.
func (m *Manager) CheckParts(target *grid.Grid) error {
	for _, a := range target.Attributes() {
		s := m.source.SearchAttribute(a.Name)
		if s == nil {
			return m.fail(ErrAttributeMismatch, a.Name, "not in source")
		}
		mp, err := mapParts(s, a)
		if err == nil {
			err = coverage(s, a, mp)
		}
		if err != nil {
			return m.fail(ErrPartMismatch, a.Name, "%v", err)
		}
		if g := a.GarbagePart(); g != grid.NoGarbagePart && g >= a.PartNumber() {
			return m.fail(ErrPartMismatch, a.Name, "garbage part %d of %d", g, a.PartNumber())
		}
	}
	return nil
}

// CheckCells reports whether the target cells are the aggregation of the
// source cells under the part mapping, with matching totals.
func (m *Manager) CheckCells(target *grid.Grid) error {
	srcIndex, mappings, err := m.targetMappings(target)
	if err != nil {
		ce := err.(*CheckError)
		return m.fail(ErrCellMismatch, ce.Attribute, "%s", ce.Detail)
	}
	if !slices.Equal(target.TargetValues(), m.source.TargetValues()) {
		return m.fail(ErrCellMismatch, "", "frequency vectors over different target values")
	}

	expected := grid.New()
	expected.SetTargetValues(m.source.TargetValues())
	for _, a := range target.Attributes() {
		copyParts(a, addShell(expected, a))
	}
	parts := make([]int, target.AttributeNumber())
	for c := 0; c < m.source.CellNumber(); c++ {
		cell := m.source.Cell(c)
		for i := range parts {
			parts[i] = mappings[i][cell.PartAt(srcIndex[i])]
		}
		expected.Cell(expected.LookupOrAddCell(parts)).AddFrequenciesFrom(cell)
	}

	for c := 0; c < target.CellNumber(); c++ {
		cell := target.Cell(c)
		e := expected.LookupCell(cell.Parts())
		if e < 0 {
			if cell.Frequency() != 0 {
				return m.fail(ErrCellMismatch, "", "cell %v has frequency %d, none expected", cell.Parts(), cell.Frequency())
			}
			continue
		}
		if !slices.Equal(cell.Frequencies(), expected.Cell(e).Frequencies()) {
			return m.fail(ErrCellMismatch, "", "cell %v frequencies %v, expected %v",
				cell.Parts(), cell.Frequencies(), expected.Cell(e).Frequencies())
		}
	}
	for c := 0; c < expected.CellNumber(); c++ {
		cell := expected.Cell(c)
		if cell.Frequency() != 0 && target.LookupCell(cell.Parts()) < 0 {
			return m.fail(ErrCellMismatch, "", "missing cell %v with frequency %d", cell.Parts(), cell.Frequency())
		}
	}
	if tf, sf := target.Frequency(), m.source.Frequency(); tf != sf {
		return m.fail(ErrCellMismatch, "", "total frequency %d, source %d", tf, sf)
	}
	return nil
}

// fail logs and returns a CheckError.
func (m *Manager) fail(kind error, attribute, format string, args ...interface{}) error {
	err := &CheckError{Kind: kind, Attribute: attribute, Detail: fmt.Sprintf(format, args...)}
	m.logger.Debug("data grid check failed",
		zap.String("kind", kind.Error()),
		zap.String("attribute", attribute),
		zap.String("detail", err.Detail))
	return err
}
