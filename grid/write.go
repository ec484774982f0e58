// SPDX-License-Identifier: MIT
// Package: grid
//
// write.go: tabular text dump of a grid.

package grid

import (
	"fmt"
	"io"
	"strings"
)

// Write dumps the grid in a tabular text layout: target values, attributes,
// parts and cells.
func (g *Grid) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Data grid\tgranularity=%d\tfrequency=%d\n", g.granularity, g.Frequency())
	if len(g.targetValues) > 0 {
		fmt.Fprintf(&b, "Target values\t%s\n", strings.Join(g.targetValues, "\t"))
	}
	for _, a := range g.attributes {
		fmt.Fprintf(&b, "Attribute\t%s\t%s\tparts=%d\n", a.Name, a.Type, a.PartNumber())
		for i := range a.parts {
			p := &a.parts[i]
			marker := ""
			if i == a.garbage {
				marker = "\tgarbage"
			}
			fmt.Fprintf(&b, "\t%s\t%d%s\n", p.Label(a.Type), p.Frequency, marker)
		}
	}
	fmt.Fprintf(&b, "Cells\t%d\n", len(g.cells))
	for i := range g.cells {
		c := &g.cells[i]
		labels := make([]string, len(c.parts))
		for a, p := range c.parts {
			labels[a] = g.attributes[a].parts[p].Label(g.attributes[a].Type)
		}
		fmt.Fprintf(&b, "\t%s\t%v\n", strings.Join(labels, "\t"), c.freqs)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the Write dump.
func (g *Grid) String() string {
	var b strings.Builder
	_ = g.Write(&b)
	return b.String()
}
