package parsekit

// Pair runs first then second, one immediately after the other, and
// succeeds with both outputs. If either fails, the whole thing fails and
// the cursor is left exactly where it started — sequencing is atomic. The
// child's error is forwarded unchanged; it carries its own location.
func Pair[T, A, B any](first Parser[T, A], second Parser[T, B]) ParserFunc[T, *PairContainer[A, B]] {
	return func(cur *Cursor[T]) (*PairContainer[A, B], *Error) {
		entry := *cur
		a, err := first.Parse(cur)
		if err != nil {
			*cur = entry
			return nil, err
		}
		b, err := second.Parse(cur)
		if err != nil {
			*cur = entry
			return nil, err
		}
		return NewPairContainer(a, b), nil
	}
}

// SeparatedPair runs first, then sep, then second, and succeeds with the
// outputs of first and second (sep's output is discarded). Atomic: any
// failure rewinds to the entry position and is forwarded unchanged.
func SeparatedPair[T, A, S, B any](first Parser[T, A], sep Parser[T, S], second Parser[T, B]) ParserFunc[T, *PairContainer[A, B]] {
	return func(cur *Cursor[T]) (*PairContainer[A, B], *Error) {
		entry := *cur
		a, err := first.Parse(cur)
		if err != nil {
			*cur = entry
			return nil, err
		}
		if _, err = sep.Parse(cur); err != nil {
			*cur = entry
			return nil, err
		}
		b, err := second.Parse(cur)
		if err != nil {
			*cur = entry
			return nil, err
		}
		return NewPairContainer(a, b), nil
	}
}

// Preceded runs ignored then main, and succeeds with only main's output.
func Preceded[T, I, O any](ignored Parser[T, I], main Parser[T, O]) ParserFunc[T, O] {
	return func(cur *Cursor[T]) (O, *Error) {
		entry := *cur
		if _, err := ignored.Parse(cur); err != nil {
			*cur = entry
			return zero[O](), err
		}
		out, err := main.Parse(cur)
		if err != nil {
			*cur = entry
			return zero[O](), err
		}
		return out, nil
	}
}

// Terminated runs main then ignored, and succeeds with only main's output.
func Terminated[T, O, I any](main Parser[T, O], ignored Parser[T, I]) ParserFunc[T, O] {
	return func(cur *Cursor[T]) (O, *Error) {
		entry := *cur
		out, err := main.Parse(cur)
		if err != nil {
			*cur = entry
			return zero[O](), err
		}
		if _, err := ignored.Parse(cur); err != nil {
			*cur = entry
			return zero[O](), err
		}
		return out, nil
	}
}

// Delimited runs open, then main, then close, and succeeds with only
// main's output.
func Delimited[T, L, O, R any](open Parser[T, L], main Parser[T, O], close Parser[T, R]) ParserFunc[T, O] {
	return Preceded(open, Terminated(main, close))
}
