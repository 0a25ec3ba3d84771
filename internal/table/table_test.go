package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/quick"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tbl := New(
		Column{Header: "Style"},
		Column{Header: "Frames", Align: AlignRight},
	)
	tbl.AddRow("dots", "10")
	tbl.AddRow("line", "4")

	want := bold + "Style │ Frames" + reset + "\n" +
		"──────┼───────\n" +
		"dots  │     10\n" +
		"line  │      4"
	assert.Equal(t, want, tbl.Render())
	assert.Equal(t, 2, tbl.RowCount())
}

func TestWideGlyphsAlign(t *testing.T) {
	tbl := New(Column{Header: "Sample"}, Column{Header: "Name"})
	tbl.AddRow("⠋⠙⠹", "dots")
	tbl.AddRow("漢字", "wide")
	tbl.AddRow("|", "line")

	for i := range tbl.RowCount() {
		row := tbl.RenderRow(i)
		assert.Equal(t, runewidth.StringWidth(tbl.RenderRow(0)), runewidth.StringWidth(row), row)
		assert.Equal(t, 6, runewidth.StringWidth(strings.Split(row, columnSeparator)[0]), row)
	}
}

func TestRowValues(t *testing.T) {
	tbl := New(Column{Header: "A"}, Column{Header: "B"})
	tbl.AddRow("only")
	tbl.AddRow("x", "y", "dropped")

	assert.Equal(t, "only │  ", tbl.RenderRow(0))
	assert.Equal(t, "x    │ y", tbl.RenderRow(1))
	assert.Empty(t, tbl.RenderRow(2))
	assert.Empty(t, tbl.RenderRow(-1))
}

func TestWidthLimits(t *testing.T) {
	tbl := New(
		Column{Header: "Name", MaxWidth: 8},
		Column{Header: "N", MinWidth: 3},
	)
	tbl.AddRow("a very long pattern name", "1")

	assert.Equal(t, "a ver... │ 1  ", tbl.RenderRow(0))
	assert.Equal(t, "─────────┼────", tbl.RenderSeparator())
}

// TestCellsHaveExactWidth checks that formatted cells always occupy exactly
// the requested number of cells.
func TestCellsHaveExactWidth(t *testing.T) {
	alphabet := []rune("ab ⠋│漢")
	property := func(picks []uint8, width uint8, right bool) bool {
		var b strings.Builder
		for _, p := range picks {
			b.WriteRune(alphabet[int(p)%len(alphabet)])
		}
		value := b.String()
		w := int(width%40) + 4
		align := AlignLeft
		if right {
			align = AlignRight
		}
		return runewidth.StringWidth(formatCell(value, w, align)) == w
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestPrint(t *testing.T) {
	tbl := New(Column{Header: "Color"}, Column{Header: "Sample"})
	tbl.AddRow("red", "text")

	var buf bytes.Buffer
	opts := DefaultPrintOptions()
	opts.HighlightColumn = 1
	opts.HighlightCode = "\033[91m"
	require.NoError(t, tbl.Print(&buf, opts))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 6)
	assert.Empty(t, lines[0])
	assert.Equal(t, "  "+tbl.RenderHeader(), lines[1])
	assert.Equal(t, "  red   │ \033[91mtext  "+reset, lines[3])
	assert.Empty(t, lines[4])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintError(t *testing.T) {
	tbl := New(Column{Header: "A"})
	assert.Error(t, tbl.Print(failingWriter{}, DefaultPrintOptions()))
}
