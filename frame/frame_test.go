//

package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdrkn/galaxy-interpreter/expr"
)

func cons(cache *expr.Cache, x, y *expr.Node) *expr.Node {
	return expr.App(expr.App(cache.Combinator(expr.TagCons), x), y)
}

func pair(cache *expr.Cache, x, y int64) *expr.Node {
	return cons(cache, cache.Int(x), cache.Int(y))
}

func TestExtractSingleFrameSinglePoint(t *testing.T) {
	cache := expr.NewCache()
	frame := cons(cache, pair(cache, 1, 2), cache.Nil())
	frames := cons(cache, frame, cache.Nil())

	out, err := Extract(frames)
	require.NoError(t, err)
	require.Equal(t, [][]Point{{{X: 1, Y: 2}}}, out)
}

func TestExtractMultipleFrames(t *testing.T) {
	cache := expr.NewCache()
	frame1 := cons(cache, pair(cache, 0, 0), cons(cache, pair(cache, 1, 1), cache.Nil()))
	frame2 := cons(cache, pair(cache, -1, -2), cache.Nil())
	frames := cons(cache, frame1, cons(cache, frame2, cache.Nil()))

	out, err := Extract(frames)
	require.NoError(t, err)
	require.Equal(t, [][]Point{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: -1, Y: -2}},
	}, out)
}

func TestExtractEmptyFrameList(t *testing.T) {
	cache := expr.NewCache()
	out, err := Extract(cache.Nil())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestExtractBadStructure(t *testing.T) {
	cache := expr.NewCache()
	_, err := Extract(cache.Int(5))
	require.Error(t, err)
	var ferr *FrameError
	require.ErrorAs(t, err, &ferr)
}

func TestExtractPointNotAPair(t *testing.T) {
	cache := expr.NewCache()
	frame := cons(cache, cache.Int(9), cache.Nil())
	frames := cons(cache, frame, cache.Nil())
	_, err := Extract(frames)
	require.Error(t, err)
}
