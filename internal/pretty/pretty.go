// Package pretty renders the plate map as fixed-width text.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"platemap-core/plate"
	"platemap-core/selection"
)

// Options control the ASCII rendering.
type Options struct {
	// Wrappers placed around the well label, per mark.
	Start    [2]string
	End      [2]string
	Selected [2]string

	// Removed wells print as this (blank by default, like an emptied cell).
	Removed string

	// Emit the legend and selection summary under the grid.
	Summary bool
}

// DefaultOptions is the look used by `platemap plate`.
var DefaultOptions = Options{
	Start:    [2]string{"(", ")"},
	End:      [2]string{"<", ">"},
	Selected: [2]string{"[", "]"},
	Removed:  "",
	Summary:  true,
}

const (
	cellWidth  = 6
	linePrefix = "# "
)

func decorate(label string, m selection.Mark, o Options) string {
	switch m {
	case selection.StartMark:
		return o.Start[0] + label + o.Start[1]
	case selection.EndMark:
		return o.End[0] + label + o.End[1]
	case selection.Selected:
		return o.Selected[0] + label + o.Selected[1]
	case selection.RemovedMark:
		return o.Removed
	default:
		return label
	}
}

// RenderPlate draws the 8x12 grid for s.
func RenderPlate(s selection.State, o Options) string {
	var b strings.Builder
	marks := s.Map()

	b.WriteString("  ")
	for c := 1; c <= plate.Cols; c++ {
		fmt.Fprintf(&b, "%*d", cellWidth, c)
	}
	b.WriteByte('\n')

	for r := 0; r < plate.Rows; r++ {
		var line strings.Builder
		line.WriteByte(byte('A' + r))
		line.WriteByte(' ')
		for c := 0; c < plate.Cols; c++ {
			cell := decorate(plate.Label(r, c), marks[r][c], o)
			fmt.Fprintf(&line, "%*s", cellWidth, cell)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}

	if o.Summary {
		b.WriteString(summary(s, o))
	}
	return b.String()
}

func summary(s selection.State, o Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%slegend: %sstart%s %send%s %sselected%s, removed wells blank\n", linePrefix,
		o.Start[0], o.Start[1], o.End[0], o.End[1], o.Selected[0], o.Selected[1])
	fmt.Fprintf(&b, "%sphase: %s\n", linePrefix, s.Phase())
	active := plate.Labels(s.Active())
	fmt.Fprintf(&b, "%sselected %d wells: %s\n", linePrefix, len(active), strings.Join(active, " "))
	if removed := plate.Labels(s.Removed()); len(removed) > 0 {
		fmt.Fprintf(&b, "%sremoved: %s\n", linePrefix, strings.Join(removed, " "))
	}
	return b.String()
}

// WritePlate writes RenderPlate(s, o) to w.
func WritePlate(w io.Writer, s selection.State, o Options) error {
	_, err := io.WriteString(w, RenderPlate(s, o))
	return err
}
