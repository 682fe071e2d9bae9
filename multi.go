package parsekit

// Count runs parse exactly n times and returns every output, in order. It
// fails, consuming nothing, if parse cannot be matched n times in a row.
func Count[T, O any](parse Parser[T, O], n int) ParserFunc[T, []O] {
	return AsInputSlice(NewRepeat(parse).WithBound(Exactly(n)))
}

// Many0 runs parse repeatedly until it fails, collecting every output. It
// never fails itself (zero matches is a valid result); a child parser that
// matches without consuming anything is a bug and aborts the repetition
// with an error instead of looping forever.
func Many0[T, O any](parse Parser[T, O]) ParserFunc[T, []O] {
	return AsInputSlice(NewRepeat(parse))
}

// Many1 is Many0 but requires at least one match.
func Many1[T, O any](parse Parser[T, O]) ParserFunc[T, []O] {
	return AsInputSlice(NewRepeat(parse).Min(1))
}

// SeparatedList0 runs parse, then sep followed by parse repeatedly,
// collecting every parse output (sep's outputs are discarded). Zero
// matches is a valid result.
func SeparatedList0[T, O, S any](parse Parser[T, O], sep Parser[T, S]) ParserFunc[T, []O] {
	return func(cur *Cursor[T]) ([]O, *Error) {
		return separatedList(cur, parse, sep, 0)
	}
}

// SeparatedList1 is SeparatedList0 but requires at least one match of
// parse.
func SeparatedList1[T, O, S any](parse Parser[T, O], sep Parser[T, S]) ParserFunc[T, []O] {
	return func(cur *Cursor[T]) ([]O, *Error) {
		return separatedList(cur, parse, sep, 1)
	}
}

func separatedList[T, O, S any](cur *Cursor[T], parse Parser[T, O], sep Parser[T, S], minCount int) ([]O, *Error) {
	entry := *cur
	results := []O{}

	first, err := parse.Parse(cur)
	if err != nil {
		if minCount > 0 {
			*cur = entry
			return nil, err.pushFrame(entry.Offset(), KindRepeat)
		}
		*cur = entry
		return results, nil
	}
	results = append(results, first)

	for {
		before := *cur
		if _, err := sep.Parse(cur); err != nil {
			*cur = before
			return results, nil
		}
		out, err := parse.Parse(cur)
		if err != nil {
			*cur = before
			return results, nil
		}
		results = append(results, out)
	}
}
