// Package parsekit implements a minimalistic parser combinators library.
//
// A parser is any value satisfying Parser[T, O]: something that can consume
// a prefix of a Cursor[T] and produce an O, or fail and leave the cursor
// untouched. Primitives (Item, Literal, Predicate, Take, ...) are combined
// with combinators (Map, Opt, Alt, Repeat, Sequence2..Sequence11, ...) to
// build up parsers for arbitrarily complex grammars, one small piece at a
// time.
//
// The library is agnostic to what it parses: Cursor[T] has two built-in
// implementations, one for UTF-8 text (Cursor[rune], byte-indexed but
// scalar-boundary safe) and one for slices of any element type
// (Cursor[T] via SliceCursor[T]). Every combinator in this package is
// written once, against the Cursor[T] interface, and works unchanged over
// either.
package parsekit
