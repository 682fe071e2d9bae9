package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextCursorSplitFront(t *testing.T) {
	t.Parallel()

	var cur Cursor[rune] = NewTextCursor("héllo")
	r, rest, ok := cur.SplitFront()
	assert.True(t, ok)
	assert.Equal(t, 'h', r)
	assert.Equal(t, 1, rest.Offset())

	r, rest, ok = rest.SplitFront()
	assert.True(t, ok)
	assert.Equal(t, 'é', r)
	// 'é' is two UTF-8 bytes, so the offset advances by 2, not 1.
	assert.Equal(t, 3, rest.Offset())
}

func TestTextCursorSplitAtRejectsMidRune(t *testing.T) {
	t.Parallel()

	cur := NewTextCursor("héllo")
	_, _, ok := cur.SplitAt(2)
	assert.False(t, ok, "splitting inside the two-byte 'é' must fail")

	_, _, ok = cur.SplitAt(3)
	assert.True(t, ok)
}

func TestTextCursorWindow(t *testing.T) {
	t.Parallel()

	cur := NewTextCursor("the quick fox")
	before, after := cur.Window(4, 3)
	assert.Equal(t, "he ", before)
	assert.Equal(t, "qui", after)
}

func TestTextCursorEmoji(t *testing.T) {
	t.Parallel()

	var cur Cursor[rune] = NewTextCursor("a🙂b")
	_, rest, ok := cur.SplitFront()
	assert.True(t, ok)
	r, rest, ok := rest.SplitFront()
	assert.True(t, ok)
	assert.Equal(t, '🙂', r)
	r, _, ok = rest.SplitFront()
	assert.True(t, ok)
	assert.Equal(t, 'b', r)
}

func TestSliceCursor(t *testing.T) {
	t.Parallel()

	var cur Cursor[int] = NewSliceCursor([]int{1, 2, 3, 4})
	prefix, suffix, ok := cur.SplitAt(2)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, materialize(prefix))
	assert.Equal(t, []int{3, 4}, materialize(suffix))
	assert.Equal(t, 2, suffix.Offset())
}

func TestCollectString(t *testing.T) {
	t.Parallel()

	cur := NewTextCursor("remaining")
	_, rest, _ := Cursor[rune](cur).SplitFront()
	assert.Equal(t, "emaining", CollectString(rest))
}
