package parsekit

// Parser is the contract every primitive, combinator, and user function
// satisfies: an opaque, composable value whose single operation consumes a
// prefix of *cur on success (advancing it to a suffix) and leaves it
// untouched on failure.
type Parser[T any, O any] interface {
	Parse(cur *Cursor[T]) (O, *Error)
}

// ParserFunc adapts a plain function to Parser[T, O], the same way
// http.HandlerFunc adapts a function to http.Handler. Every primitive and
// combinator in this package is built as a ParserFunc.
type ParserFunc[T any, O any] func(cur *Cursor[T]) (O, *Error)

func (f ParserFunc[T, O]) Parse(cur *Cursor[T]) (O, *Error) { return f(cur) }

func zero[O any]() O {
	var z O
	return z
}

// FuncParser adapts a hand-written parsing function into a Parser that
// honors the failure-is-stationary invariant on the caller's behalf: f is
// trusted to advance *cur on success, but if it returns an error the cursor
// is rewound to wherever it stood when FuncParser was entered, regardless
// of what f did to it in the meantime.
func FuncParser[T, O any](f func(cur *Cursor[T]) (O, *Error)) ParserFunc[T, O] {
	return func(cur *Cursor[T]) (O, *Error) {
		entry := *cur
		out, err := f(cur)
		if err != nil {
			*cur = entry
			return zero[O](), err
		}
		return out, nil
	}
}

// ParseText runs p against input from the start, returning the output (or
// error) and whatever text, if any, was left unconsumed.
func ParseText[O any](p Parser[rune, O], input string) (O, *Error, string) {
	var cur Cursor[rune] = NewTextCursor(input)
	out, err := p.Parse(&cur)
	if err != nil {
		return zero[O](), err, input
	}
	return out, nil, CollectString(cur)
}

// ParseSlice runs p against items from the start, returning the output (or
// error) and whatever elements, if any, were left unconsumed.
func ParseSlice[T, O any](p Parser[T, O], items []T) (O, *Error, []T) {
	var cur Cursor[T] = NewSliceCursor(items)
	out, err := p.Parse(&cur)
	if err != nil {
		return zero[O](), err, items
	}
	return out, nil, CollectSlice(cur)
}
