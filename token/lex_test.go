//

package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexBasics(t *testing.T) {
	toks, err := All(strings.NewReader("ap ap cons 1 ap ap cons 2 3"))
	require.NoError(t, err)
	require.Equal(t, []Token{
		{Kind: KindApp, Line: 1},
		{Kind: KindApp, Line: 1},
		{Kind: KindCons, Line: 1},
		{Kind: KindInt, Line: 1, Int: 1},
		{Kind: KindApp, Line: 1},
		{Kind: KindApp, Line: 1},
		{Kind: KindCons, Line: 1},
		{Kind: KindInt, Line: 1, Int: 2},
		{Kind: KindInt, Line: 1, Int: 3},
	}, toks)
}

func TestLexVarAndBool(t *testing.T) {
	toks, err := All(strings.NewReader(":1029 = x1029\nt f"))
	require.NoError(t, err)
	require.Equal(t, []Token{
		{Kind: KindVar, Line: 1, Var: 1029},
		{Kind: KindAssign, Line: 1},
		{Kind: KindVar, Line: 1, Var: 1029},
		{Kind: KindBool, Line: 2, Bool: true},
		{Kind: KindBool, Line: 2, Bool: false},
	}, toks)
}

func TestLexBlankLinesIgnored(t *testing.T) {
	toks, err := All(strings.NewReader("nil\n\n\ngalaxy"))
	require.NoError(t, err)
	require.Equal(t, []Token{
		{Kind: KindNil, Line: 1},
		{Kind: KindGalaxy, Line: 4},
	}, toks)
}

func TestLexUnknownToken(t *testing.T) {
	_, err := All(strings.NewReader("ap foo"))
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 1, lexErr.Line)
	require.Equal(t, "foo", lexErr.Word)
}
