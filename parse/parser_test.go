//

package parse

import (
	"strings"
	"testing"

	"github.com/renstrom/dedent"
	"github.com/stretchr/testify/require"

	"github.com/mdrkn/galaxy-interpreter/expr"
)

func TestParseSimpleProtocol(t *testing.T) {
	src := dedent.Dedent(`
		:1 = ap ap cons 1 nil
		galaxy = :1
	`)
	cache := expr.NewCache()
	proto, err := Parse(strings.NewReader(src), cache)
	require.NoError(t, err)
	require.Equal(t, uint64(1), proto.Entry)
	bound, ok := proto.Lookup(1)
	require.True(t, ok)
	require.Equal(t, "ap ap cons 1 nil", bound.String())
}

func TestParseMultipleBindingsAndForwardReference(t *testing.T) {
	src := dedent.Dedent(`
		:1 = ap :2 1
		:2 = i
		galaxy = :1
	`)
	cache := expr.NewCache()
	proto, err := Parse(strings.NewReader(src), cache)
	require.NoError(t, err)
	require.Len(t, proto.Bindings, 2)
}

func TestParseMissingAssign(t *testing.T) {
	_, err := Parse(strings.NewReader(":1 ap add 1 2\ngalaxy = :1"), expr.NewCache())
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, MissingAssign, perr.Kind)
}

func TestParseUnexpectedEnd(t *testing.T) {
	_, err := Parse(strings.NewReader(":1 = ap add"), expr.NewCache())
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnexpectedEnd, perr.Kind)
}

func TestParseTestSuiteFile(t *testing.T) {
	src := dedent.Dedent(`
		ap ap add 1 2 = 3
		ap ap mul 2 3 = 6
	`)
	cache := expr.NewCache()
	eqs, err := ParseTestSuite(strings.NewReader(src), cache)
	require.NoError(t, err)
	require.Len(t, eqs, 2)
	require.Equal(t, "ap ap add 1 2", eqs[0].LHS.String())
	require.Equal(t, "3", eqs[0].RHS.String())
}
