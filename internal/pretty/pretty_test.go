package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platemap-core/plate"
	"platemap-core/selection"
)

func scenario() selection.State {
	return selection.State{}.
		Click(plate.MustParse("A1")).
		Click(plate.MustParse("B2")).
		Exclude(plate.MustParse("A2"))
}

func TestRenderPlateGrid(t *testing.T) {
	o := DefaultOptions
	o.Summary = false
	lines := strings.Split(strings.TrimSuffix(RenderPlate(scenario(), o), "\n"), "\n")
	require.Len(t, lines, 1+plate.Rows)

	assert.Equal(t, "       1     2     3     4     5     6     7     8     9    10    11    12", lines[0])
	assert.Equal(t, "A   (A1)          A3    A4    A5    A6    A7    A8    A9   A10   A11   A12", lines[1])
	assert.Equal(t, "B   [B1]  <B2>    B3    B4    B5    B6    B7    B8    B9   B10   B11   B12", lines[2])
	assert.True(t, strings.HasPrefix(lines[8], "H     H1"), lines[8])
}

func TestRenderPlateSummary(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WritePlate(&b, scenario(), DefaultOptions))
	out := b.String()
	assert.Contains(t, out, "# phase: range\n")
	assert.Contains(t, out, "# selected 3 wells: A1 B1 B2\n")
	assert.Contains(t, out, "# removed: A2\n")
	assert.Contains(t, out, "# legend: (start) <end> [selected], removed wells blank\n")
}

func TestRenderEmptyPlate(t *testing.T) {
	out := RenderPlate(selection.State{}, DefaultOptions)
	assert.Contains(t, out, "# phase: empty\n")
	assert.Contains(t, out, "# selected 0 wells: \n")
	assert.NotContains(t, out, "# removed:")
	assert.NotContains(t, out, "[")
}
