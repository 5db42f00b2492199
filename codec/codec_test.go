//

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdrkn/galaxy-interpreter/expr"
)

func TestModulateSmallIntegers(t *testing.T) {
	cases := []struct {
		v    int64
		want string
	}{
		{0, "010"},
		{1, "01100001"},
		{16, "0111000010000"},
		{256, "011110000100000000"},
		{-100, "1011001100100"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ModulateInt(c.v), "modulate(%d)", c.v)
	}
}

func TestDemodulateSmallIntegersRoundTrip(t *testing.T) {
	cache := expr.NewCache()
	for _, v := range []int64{0, 1, 16, 256, -100, 12345, -999999} {
		s := ModulateInt(v)
		n, err := DemodulateFull(s, cache)
		require.NoError(t, err)
		got, ok := n.AsInt()
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}

func TestModulateListRoundTrip(t *testing.T) {
	cache := expr.NewCache()
	// [1, [2, 3], 4]
	inner := expr.App(expr.App(cache.Combinator(expr.TagCons), cache.Int(2)),
		expr.App(expr.App(cache.Combinator(expr.TagCons), cache.Int(3)), cache.Nil()))
	list := expr.App(expr.App(cache.Combinator(expr.TagCons), cache.Int(1)),
		expr.App(expr.App(cache.Combinator(expr.TagCons), inner),
			expr.App(expr.App(cache.Combinator(expr.TagCons), cache.Int(4)), cache.Nil())))

	s, err := Modulate(list)
	require.NoError(t, err)
	require.Equal(t, "1101100001111101100010110110001100110110010000", s)

	decoded, err := DemodulateFull(s, cache)
	require.NoError(t, err)
	require.True(t, expr.Equal(decoded, list))
}

func TestDemodulateTruncatedInput(t *testing.T) {
	cache := expr.NewCache()
	_, err := DemodulateFull("011", cache)
	require.Error(t, err)
	var cerr *CodecError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, TruncatedInput, cerr.Kind)
}

func TestDemodulateTrailingInput(t *testing.T) {
	cache := expr.NewCache()
	_, err := DemodulateFull("010extra", cache)
	require.Error(t, err)
	var cerr *CodecError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, TrailingInput, cerr.Kind)
}

func TestModulateRejectsNonDataShape(t *testing.T) {
	cache := expr.NewCache()
	_, err := Modulate(cache.Combinator(expr.TagAdd))
	require.Error(t, err)
	var cerr *CodecError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, BadTag, cerr.Kind)
}
