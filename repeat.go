package parsekit

import "errors"

// ErrReducerFailed is the cause wrapped into a Repeat's error when the
// caller's own reducer function rejects an otherwise-successful iteration
// (the bool-returning reducer shape, see Fallible).
var ErrReducerFailed = errors.New("parsekit: reducer failed")

// Bound constrains how many times a Repeat's child parser must and may
// match. Hi of -1 means unbounded.
type Bound struct {
	lo, hi int
}

// Between requires at least lo and at most hi matches.
func Between(lo, hi int) Bound { return Bound{lo: lo, hi: hi} }

// AtLeast requires at least lo matches, with no upper bound.
func AtLeast(lo int) Bound { return Bound{lo: lo, hi: -1} }

// AtMost allows zero to hi matches.
func AtMost(hi int) Bound { return Bound{lo: 0, hi: hi} }

// Exactly requires precisely n matches.
func Exactly(n int) Bound { return Bound{lo: n, hi: n} }

// Repeat wraps a child parser with a repetition bound. On its own it does
// nothing; pair it with Reduce (or the AsInputSlice / AsInputText
// conveniences) to actually fold the repeated outputs into a result.
type Repeat[T, O any] struct {
	parse Parser[T, O]
	bound Bound
}

// NewRepeat builds a Repeat of parse with the default bound (zero or more
// matches — AtLeast(0)).
func NewRepeat[T, O any](parse Parser[T, O]) *Repeat[T, O] {
	return &Repeat[T, O]{parse: parse, bound: AtLeast(0)}
}

// Min requires at least n matches, leaving the upper bound as it was.
func (r *Repeat[T, O]) Min(n int) *Repeat[T, O] {
	r.bound.lo = n
	return r
}

// Max allows at most n matches, leaving the lower bound as it was.
func (r *Repeat[T, O]) Max(n int) *Repeat[T, O] {
	r.bound.hi = n
	return r
}

// WithBound replaces the repetition bound outright.
func (r *Repeat[T, O]) WithBound(b Bound) *Repeat[T, O] {
	r.bound = b
	return r
}

// ReduceFunc folds one child output into an in-progress accumulator. It is
// the single fallible shape every reducer constructor ultimately produces;
// returning a non-nil error fails the whole Repeat, wrapping the error as
// the cause.
type ReduceFunc[O, Acc any] func(acc *Acc, out O) error

// Infallible builds a ReduceFunc from a reducer that cannot itself fail —
// the common case (appending to a slice, summing, building a string).
func Infallible[O, Acc any](f func(acc *Acc, out O)) ReduceFunc[O, Acc] {
	return func(acc *Acc, out O) error {
		f(acc, out)
		return nil
	}
}

// Fallible builds a ReduceFunc from a reducer that signals rejection by
// returning false. A false result aborts the Repeat with ErrReducerFailed
// as the cause.
func Fallible[O, Acc any](f func(acc *Acc, out O) bool) ReduceFunc[O, Acc] {
	return func(acc *Acc, out O) error {
		if !f(acc, out) {
			return ErrReducerFailed
		}
		return nil
	}
}

// Reduce repeatedly applies r's child parser and folds each output into an
// accumulator seeded by newAcc, using reduce. It enforces r's bound
// (failing if fewer than the minimum matches occur) and the no-progress
// guard (an iteration that consumes nothing aborts the loop rather than
// spinning forever), then succeeds with the final accumulator.
func Reduce[T, O, Acc any](r *Repeat[T, O], newAcc func() Acc, reduce ReduceFunc[O, Acc]) ParserFunc[T, Acc] {
	return func(cur *Cursor[T]) (Acc, *Error) {
		entry := *cur
		acc := newAcc()
		count := 0
		for r.bound.hi < 0 || count < r.bound.hi {
			before := *cur
			out, err := r.parse.Parse(cur)
			if err != nil {
				break
			}
			if (*cur).Offset() == before.Offset() {
				// A zero-width match would repeat forever; this is a
				// child parser bug, not a legitimate empty repetition.
				*cur = entry
				e := newError(before.Offset(), KindRepeatIter)
				return zero[Acc](), e.pushFrame(entry.Offset(), KindRepeat)
			}
			if redErr := reduce(&acc, out); redErr != nil {
				iterOffset := before.Offset()
				*cur = entry
				e := newExternalError(iterOffset, KindRepeatIter, redErr)
				return zero[Acc](), e.pushFrame(entry.Offset(), KindRepeat)
			}
			count++
		}
		if count < r.bound.lo {
			*cur = entry
			return zero[Acc](), newError(entry.Offset(), KindRepeat)
		}
		return acc, nil
	}
}

// AsInputSlice is the common-case convenience: repeat r's child parser and
// collect every output into a slice, in order.
func AsInputSlice[T, O any](r *Repeat[T, O]) ParserFunc[T, []O] {
	return Reduce(r, func() []O { return nil }, Infallible(func(acc *[]O, out O) {
		*acc = append(*acc, out)
	}))
}

// AsInputText is AsInputSlice specialized to rune output, concatenating
// the repeated matches into a single string.
func AsInputText[T any](r *Repeat[T, rune]) ParserFunc[T, string] {
	return Reduce(r, func() string { return "" }, Infallible(func(acc *string, out rune) {
		*acc += string(out)
	}))
}
