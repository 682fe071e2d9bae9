package parsekit

import "golang.org/x/exp/constraints"

// Item succeeds and consumes exactly one item iff the cursor's front item
// equals x; otherwise it fails with KindTag and leaves the cursor untouched.
func Item[T comparable](x T) ParserFunc[T, T] {
	return func(cur *Cursor[T]) (T, *Error) {
		entry := *cur
		item, rest, ok := entry.SplitFront()
		if !ok || item != x {
			return zero[T](), newError(entry.Offset(), KindTag)
		}
		*cur = rest
		return item, nil
	}
}

// Subsequence succeeds and consumes len(want) items iff the cursor's prefix
// equals want, item by item. A fixed-length array literal is handled by
// slicing it (arr[:]) before passing it here — the two forms are
// byte-identical in result and error frames.
func Subsequence[T comparable](want []T) ParserFunc[T, []T] {
	n := len(want)
	return func(cur *Cursor[T]) ([]T, *Error) {
		entry := *cur
		got := make([]T, 0, n)
		rest := entry
		for i := range want {
			item, next, ok := rest.SplitFront()
			if !ok {
				return nil, newError(entry.Offset(), KindTag)
			}
			if item != want[i] {
				// Report the offset of the actual mismatch, not the
				// start of the literal, so Alt can tell a near-miss
				// from a miss at the very first item.
				return nil, newError(rest.Offset(), KindTag)
			}
			got = append(got, item)
			rest = next
		}
		*cur = rest
		return got, nil
	}
}

// Literal succeeds and consumes len(s) runes iff the cursor's prefix equals
// s exactly; otherwise it fails with KindTag.
func Literal(s string) ParserFunc[rune, string] {
	want := []rune(s)
	return Map(Subsequence(want), func(rs []rune) string { return string(rs) })
}

// Predicate succeeds and consumes one item iff pred returns true for it.
func Predicate[T any](pred func(T) bool, expected ParserKind) ParserFunc[T, T] {
	return func(cur *Cursor[T]) (T, *Error) {
		entry := *cur
		item, rest, ok := entry.SplitFront()
		if !ok || !pred(item) {
			return zero[T](), newError(entry.Offset(), expected)
		}
		*cur = rest
		return item, nil
	}
}

// OptionFunc succeeds and consumes one item iff f returns a present value
// for it, producing that value's unwrapped payload.
func OptionFunc[T, O any](f func(T) (O, bool)) ParserFunc[T, O] {
	return func(cur *Cursor[T]) (O, *Error) {
		entry := *cur
		item, rest, ok := entry.SplitFront()
		if !ok {
			return zero[O](), newError(entry.Offset(), KindTag)
		}
		out, present := f(item)
		if !present {
			return zero[O](), newError(entry.Offset(), KindTag)
		}
		*cur = rest
		return out, nil
	}
}

// ResultFunc succeeds and consumes one item iff f succeeds for it; an
// error from f is surfaced as a KindTag error with f's error as cause.
func ResultFunc[T, O any](f func(T) (O, error)) ParserFunc[T, O] {
	return func(cur *Cursor[T]) (O, *Error) {
		entry := *cur
		item, rest, ok := entry.SplitFront()
		if !ok {
			return zero[O](), newError(entry.Offset(), KindTag)
		}
		out, err := f(item)
		if err != nil {
			return zero[O](), newExternalError(entry.Offset(), KindTag, err)
		}
		*cur = rest
		return out, nil
	}
}

// Range succeeds and consumes one item iff it falls within [lo, hi]
// (inclusive on both ends).
func Range[T constraints.Ordered](lo, hi T) ParserFunc[T, T] {
	return Predicate(func(item T) bool { return item >= lo && item <= hi }, KindTag)
}

// Take consumes exactly n items and returns them, regardless of what they
// are. It fails with KindTag, leaving the cursor untouched, if fewer than n
// items remain.
//
// Items are counted by SplitFront, not by SplitAt: on a TextCursor, n
// counts runes, not bytes, so Take(1) on a multi-byte scalar consumes
// exactly that one rune rather than failing or splitting it in half.
func Take[T any](n int) ParserFunc[T, []T] {
	return func(cur *Cursor[T]) ([]T, *Error) {
		entry := *cur
		out := make([]T, 0, n)
		rest := entry
		for i := 0; i < n; i++ {
			item, next, ok := rest.SplitFront()
			if !ok {
				return nil, newError(entry.Offset(), KindTag)
			}
			out = append(out, item)
			rest = next
		}
		*cur = rest
		return out, nil
	}
}

// TakeText is Take specialized to text, returning the consumed runes as a
// string instead of a []rune.
func TakeText(n int) ParserFunc[rune, string] {
	return Map(Take[rune](n), func(rs []rune) string { return string(rs) })
}
