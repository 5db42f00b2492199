//

package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdrkn/galaxy-interpreter/expr"
	"github.com/mdrkn/galaxy-interpreter/frame"
)

type stubEnv map[uint64]*expr.Node

func (e stubEnv) Lookup(v uint64) (*expr.Node, bool) {
	n, ok := e[v]
	return n, ok
}

type nopTransport struct{ called bool }

func (t *nopTransport) Send(string) (string, error) {
	t.called = true
	return "", nil
}

type captureDisplay struct {
	frames [][]frame.Point
}

func (d *captureDisplay) Present(frames [][]frame.Point) error {
	d.frames = frames
	return nil
}

func cons(cache *expr.Cache, x, y *expr.Node) *expr.Node {
	return expr.App(expr.App(cache.Combinator(expr.TagCons), x), y)
}

// entryConst builds a constant function that ignores both its arguments and
// returns Cons(0, Cons(stateOut, Cons(Nil, Nil))): the stub environment from
// spec.md §8 scenario 6.
func entryConst(cache *expr.Cache, stateOut *expr.Node) *expr.Node {
	result := cons(cache, cache.Int(0), cons(cache, stateOut, cons(cache, cache.Nil(), cache.Nil())))
	// ap ap k result = k result (the K combinator discards its second argument).
	k := expr.App(cache.True(), result)
	return expr.App(cache.True(), k)
}

func TestDriverContractScenarioSix(t *testing.T) {
	cache := expr.NewCache()
	stateOut := cache.Int(7)
	entry := entryConst(cache, stateOut)

	env := stubEnv{1: entry}
	transport := &nopTransport{}
	display := &captureDisplay{}
	d := New(cache, env, 1, display, transport)

	newState, data, err := d.Interact(cache.Nil(), cons(cache, cache.Int(0), cache.Int(0)))
	require.NoError(t, err)
	require.False(t, transport.called)
	require.True(t, expr.Equal(newState, stateOut))
	require.True(t, data.IsNil())
}

func TestDriverStepPresentsFrames(t *testing.T) {
	cache := expr.NewCache()
	point := cons(cache, cons(cache, cache.Int(3), cache.Int(4)), cache.Nil())
	frames := cons(cache, point, cache.Nil())
	result := cons(cache, cache.Int(0), cons(cache, cache.Nil(), cons(cache, frames, cache.Nil())))
	k := expr.App(cache.True(), result)
	entry := expr.App(cache.True(), k)

	env := stubEnv{1: entry}
	display := &captureDisplay{}
	d := New(cache, env, 1, display, &nopTransport{})

	_, err := d.Step(cache.Nil(), cache.Nil())
	require.NoError(t, err)
	require.Equal(t, [][]frame.Point{{{X: 3, Y: 4}}}, display.frames)
}
