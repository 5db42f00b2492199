//

package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdrkn/galaxy-interpreter/frame"
)

func TestPresentWritesEscapeSequences(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(Writer(&buf))

	err := term.Present([][]frame.Point{{{X: 1, Y: 2}}})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.Contains(out, clearScreen))
	require.True(t, strings.Contains(out, "3;2H")) // y+1=3, x+1=2
	require.True(t, strings.HasSuffix(out, showCursor))
}

func TestPresentAppliesOffset(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(Writer(&buf), Offset(10, 10))

	err := term.Present([][]frame.Point{{{X: -5, Y: -5}}})
	require.NoError(t, err)
	require.True(t, strings.Contains(buf.String(), "6;6H"))
}

func TestPresentEmptyFrames(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(Writer(&buf))
	require.NoError(t, term.Present(nil))
	require.True(t, strings.Contains(buf.String(), clearScreen))
}
