package parsekit

// Map runs p and, on success, transforms its output with f. f cannot fail;
// use TryMap when the transform itself can.
func Map[T, A, B any](p Parser[T, A], f func(A) B) ParserFunc[T, B] {
	return func(cur *Cursor[T]) (B, *Error) {
		out, err := p.Parse(cur)
		if err != nil {
			return zero[B](), err
		}
		return f(out), nil
	}
}

// TryMap runs p and, on success, transforms its output with f. If f
// returns an error, the whole parser fails at p's entry offset, with f's
// error wrapped as the cause, and the cursor is rewound past whatever p
// itself consumed.
func TryMap[T, A, B any](p Parser[T, A], f func(A) (B, error)) ParserFunc[T, B] {
	return func(cur *Cursor[T]) (B, *Error) {
		entry := *cur
		out, err := p.Parse(cur)
		if err != nil {
			return zero[B](), err.pushFrame(entry.Offset(), KindTryMap)
		}
		mapped, mapErr := f(out)
		if mapErr != nil {
			*cur = entry
			return zero[B](), newExternalError(entry.Offset(), KindTryMap, mapErr)
		}
		return mapped, nil
	}
}

// Value runs p and, on success, discards its output and returns v.
func Value[T, A, B any](p Parser[T, A], v B) ParserFunc[T, B] {
	return Map(p, func(A) B { return v })
}

// Opt runs p. If p succeeds, Opt succeeds with (output, true). If p fails,
// Opt still succeeds, leaving the cursor untouched, with (zero value,
// false) — Opt itself never fails.
func Opt[T, O any](p Parser[T, O]) ParserFunc[T, Option[O]] {
	return func(cur *Cursor[T]) (Option[O], *Error) {
		entry := *cur
		out, err := p.Parse(cur)
		if err != nil {
			*cur = entry
			return None[O](), nil
		}
		return Some(out), nil
	}
}

// TakeNot succeeds, consuming nothing, iff p fails at the current position —
// a zero-width negative lookahead. It fails with KindTakeNot, also
// consuming nothing, if p succeeds.
func TakeNot[T, O any](p Parser[T, O]) ParserFunc[T, struct{}] {
	return func(cur *Cursor[T]) (struct{}, *Error) {
		entry := *cur
		_, err := p.Parse(cur)
		*cur = entry
		if err == nil {
			return struct{}{}, newError(entry.Offset(), KindTakeNot)
		}
		return struct{}{}, nil
	}
}
