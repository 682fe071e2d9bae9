package parsekit

// SequenceN runs N parsers one after another, in order, and succeeds with
// a TupleN holding every output. Like Pair, sequencing is atomic: any
// parser failing rewinds the cursor to where the sequence started and its
// error is forwarded unchanged.

func Sequence2[T any, A any, B any](p1 Parser[T, A], p2 Parser[T, B]) ParserFunc[T, Tuple2[A, B]] {
	return func(cur *Cursor[T]) (Tuple2[A, B], *Error) {
		entry := *cur
		var out Tuple2[A, B]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple2[A, B]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple2[A, B]{}, err
			}
			out.F2 = v
		}
		return out, nil
	}
}

func Sequence3[T any, A any, B any, C any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C]) ParserFunc[T, Tuple3[A, B, C]] {
	return func(cur *Cursor[T]) (Tuple3[A, B, C], *Error) {
		entry := *cur
		var out Tuple3[A, B, C]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple3[A, B, C]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple3[A, B, C]{}, err
			}
			out.F2 = v
		}
		{
			v, err := p3.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple3[A, B, C]{}, err
			}
			out.F3 = v
		}
		return out, nil
	}
}

func Sequence4[T any, A any, B any, C any, D any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D]) ParserFunc[T, Tuple4[A, B, C, D]] {
	return func(cur *Cursor[T]) (Tuple4[A, B, C, D], *Error) {
		entry := *cur
		var out Tuple4[A, B, C, D]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple4[A, B, C, D]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple4[A, B, C, D]{}, err
			}
			out.F2 = v
		}
		{
			v, err := p3.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple4[A, B, C, D]{}, err
			}
			out.F3 = v
		}
		{
			v, err := p4.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple4[A, B, C, D]{}, err
			}
			out.F4 = v
		}
		return out, nil
	}
}

func Sequence5[T any, A any, B any, C any, D any, E any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E]) ParserFunc[T, Tuple5[A, B, C, D, E]] {
	return func(cur *Cursor[T]) (Tuple5[A, B, C, D, E], *Error) {
		entry := *cur
		var out Tuple5[A, B, C, D, E]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple5[A, B, C, D, E]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple5[A, B, C, D, E]{}, err
			}
			out.F2 = v
		}
		{
			v, err := p3.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple5[A, B, C, D, E]{}, err
			}
			out.F3 = v
		}
		{
			v, err := p4.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple5[A, B, C, D, E]{}, err
			}
			out.F4 = v
		}
		{
			v, err := p5.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple5[A, B, C, D, E]{}, err
			}
			out.F5 = v
		}
		return out, nil
	}
}

func Sequence6[T any, A any, B any, C any, D any, E any, F any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F]) ParserFunc[T, Tuple6[A, B, C, D, E, F]] {
	return func(cur *Cursor[T]) (Tuple6[A, B, C, D, E, F], *Error) {
		entry := *cur
		var out Tuple6[A, B, C, D, E, F]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple6[A, B, C, D, E, F]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple6[A, B, C, D, E, F]{}, err
			}
			out.F2 = v
		}
		{
			v, err := p3.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple6[A, B, C, D, E, F]{}, err
			}
			out.F3 = v
		}
		{
			v, err := p4.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple6[A, B, C, D, E, F]{}, err
			}
			out.F4 = v
		}
		{
			v, err := p5.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple6[A, B, C, D, E, F]{}, err
			}
			out.F5 = v
		}
		{
			v, err := p6.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple6[A, B, C, D, E, F]{}, err
			}
			out.F6 = v
		}
		return out, nil
	}
}

func Sequence7[T any, A any, B any, C any, D any, E any, F any, G any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G]) ParserFunc[T, Tuple7[A, B, C, D, E, F, G]] {
	return func(cur *Cursor[T]) (Tuple7[A, B, C, D, E, F, G], *Error) {
		entry := *cur
		var out Tuple7[A, B, C, D, E, F, G]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple7[A, B, C, D, E, F, G]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple7[A, B, C, D, E, F, G]{}, err
			}
			out.F2 = v
		}
		{
			v, err := p3.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple7[A, B, C, D, E, F, G]{}, err
			}
			out.F3 = v
		}
		{
			v, err := p4.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple7[A, B, C, D, E, F, G]{}, err
			}
			out.F4 = v
		}
		{
			v, err := p5.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple7[A, B, C, D, E, F, G]{}, err
			}
			out.F5 = v
		}
		{
			v, err := p6.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple7[A, B, C, D, E, F, G]{}, err
			}
			out.F6 = v
		}
		{
			v, err := p7.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple7[A, B, C, D, E, F, G]{}, err
			}
			out.F7 = v
		}
		return out, nil
	}
}

func Sequence8[T any, A any, B any, C any, D any, E any, F any, G any, H any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G], p8 Parser[T, H]) ParserFunc[T, Tuple8[A, B, C, D, E, F, G, H]] {
	return func(cur *Cursor[T]) (Tuple8[A, B, C, D, E, F, G, H], *Error) {
		entry := *cur
		var out Tuple8[A, B, C, D, E, F, G, H]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple8[A, B, C, D, E, F, G, H]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple8[A, B, C, D, E, F, G, H]{}, err
			}
			out.F2 = v
		}
		{
			v, err := p3.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple8[A, B, C, D, E, F, G, H]{}, err
			}
			out.F3 = v
		}
		{
			v, err := p4.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple8[A, B, C, D, E, F, G, H]{}, err
			}
			out.F4 = v
		}
		{
			v, err := p5.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple8[A, B, C, D, E, F, G, H]{}, err
			}
			out.F5 = v
		}
		{
			v, err := p6.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple8[A, B, C, D, E, F, G, H]{}, err
			}
			out.F6 = v
		}
		{
			v, err := p7.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple8[A, B, C, D, E, F, G, H]{}, err
			}
			out.F7 = v
		}
		{
			v, err := p8.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple8[A, B, C, D, E, F, G, H]{}, err
			}
			out.F8 = v
		}
		return out, nil
	}
}

func Sequence9[T any, A any, B any, C any, D any, E any, F any, G any, H any, I any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G], p8 Parser[T, H], p9 Parser[T, I]) ParserFunc[T, Tuple9[A, B, C, D, E, F, G, H, I]] {
	return func(cur *Cursor[T]) (Tuple9[A, B, C, D, E, F, G, H, I], *Error) {
		entry := *cur
		var out Tuple9[A, B, C, D, E, F, G, H, I]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
			}
			out.F2 = v
		}
		{
			v, err := p3.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
			}
			out.F3 = v
		}
		{
			v, err := p4.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
			}
			out.F4 = v
		}
		{
			v, err := p5.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
			}
			out.F5 = v
		}
		{
			v, err := p6.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
			}
			out.F6 = v
		}
		{
			v, err := p7.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
			}
			out.F7 = v
		}
		{
			v, err := p8.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
			}
			out.F8 = v
		}
		{
			v, err := p9.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
			}
			out.F9 = v
		}
		return out, nil
	}
}

func Sequence10[T any, A any, B any, C any, D any, E any, F any, G any, H any, I any, J any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G], p8 Parser[T, H], p9 Parser[T, I], p10 Parser[T, J]) ParserFunc[T, Tuple10[A, B, C, D, E, F, G, H, I, J]] {
	return func(cur *Cursor[T]) (Tuple10[A, B, C, D, E, F, G, H, I, J], *Error) {
		entry := *cur
		var out Tuple10[A, B, C, D, E, F, G, H, I, J]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F2 = v
		}
		{
			v, err := p3.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F3 = v
		}
		{
			v, err := p4.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F4 = v
		}
		{
			v, err := p5.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F5 = v
		}
		{
			v, err := p6.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F6 = v
		}
		{
			v, err := p7.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F7 = v
		}
		{
			v, err := p8.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F8 = v
		}
		{
			v, err := p9.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F9 = v
		}
		{
			v, err := p10.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
			}
			out.F10 = v
		}
		return out, nil
	}
}

func Sequence11[T any, A any, B any, C any, D any, E any, F any, G any, H any, I any, J any, K any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G], p8 Parser[T, H], p9 Parser[T, I], p10 Parser[T, J], p11 Parser[T, K]) ParserFunc[T, Tuple11[A, B, C, D, E, F, G, H, I, J, K]] {
	return func(cur *Cursor[T]) (Tuple11[A, B, C, D, E, F, G, H, I, J, K], *Error) {
		entry := *cur
		var out Tuple11[A, B, C, D, E, F, G, H, I, J, K]
		{
			v, err := p1.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F1 = v
		}
		{
			v, err := p2.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F2 = v
		}
		{
			v, err := p3.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F3 = v
		}
		{
			v, err := p4.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F4 = v
		}
		{
			v, err := p5.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F5 = v
		}
		{
			v, err := p6.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F6 = v
		}
		{
			v, err := p7.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F7 = v
		}
		{
			v, err := p8.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F8 = v
		}
		{
			v, err := p9.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F9 = v
		}
		{
			v, err := p10.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F10 = v
		}
		{
			v, err := p11.Parse(cur)
			if err != nil {
				*cur = entry
				return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
			}
			out.F11 = v
		}
		return out, nil
	}
}
