package parsekit

// permuteGeneric is the engine every PermutationN wrapper shares: given n
// parsers and a way to extract/store results by index, it tries each
// not-yet-matched parser against the current position in turn, taking the
// first one (of those remaining) that succeeds, until every parser has
// matched exactly once, in whatever order they actually appeared in the
// input. On failure it reports the furthest-progress error across every
// parser's last attempt, the same policy Alt uses.
func permuteGeneric[T any](cur *Cursor[T], n int, try func(i int, cur *Cursor[T]) (ok bool, err *Error)) *Error {
	entry := *cur
	done := make([]bool, n)
	remaining := n
	for remaining > 0 {
		var errs []*Error
		matched := false
		for i := 0; i < n; i++ {
			if done[i] {
				continue
			}
			ok, err := try(i, cur)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if ok {
				done[i] = true
				remaining--
				matched = true
				break
			}
		}
		if !matched {
			*cur = entry
			return furthestProgress(errs)
		}
	}
	return nil
}

// PermutationN runs n parsers in whatever order they match the input,
// each exactly once, and succeeds with a TupleN in the parsers' DECLARED
// order (not the order they matched in). Like Sequence, it is atomic.

func Permutation2[T any, A any, B any](p1 Parser[T, A], p2 Parser[T, B]) ParserFunc[T, Tuple2[A, B]] {
	return func(cur *Cursor[T]) (Tuple2[A, B], *Error) {
		var out Tuple2[A, B]
		err := permuteGeneric(cur, 2, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple2[A, B]{}, err
		}
		return out, nil
	}
}

func Permutation3[T any, A any, B any, C any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C]) ParserFunc[T, Tuple3[A, B, C]] {
	return func(cur *Cursor[T]) (Tuple3[A, B, C], *Error) {
		var out Tuple3[A, B, C]
		err := permuteGeneric(cur, 3, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			case 2:
				v, e := p3.Parse(c)
				if e != nil {
					return false, e
				}
				out.F3 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple3[A, B, C]{}, err
		}
		return out, nil
	}
}

func Permutation4[T any, A any, B any, C any, D any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D]) ParserFunc[T, Tuple4[A, B, C, D]] {
	return func(cur *Cursor[T]) (Tuple4[A, B, C, D], *Error) {
		var out Tuple4[A, B, C, D]
		err := permuteGeneric(cur, 4, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			case 2:
				v, e := p3.Parse(c)
				if e != nil {
					return false, e
				}
				out.F3 = v
				return true, nil
			case 3:
				v, e := p4.Parse(c)
				if e != nil {
					return false, e
				}
				out.F4 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple4[A, B, C, D]{}, err
		}
		return out, nil
	}
}

func Permutation5[T any, A any, B any, C any, D any, E any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E]) ParserFunc[T, Tuple5[A, B, C, D, E]] {
	return func(cur *Cursor[T]) (Tuple5[A, B, C, D, E], *Error) {
		var out Tuple5[A, B, C, D, E]
		err := permuteGeneric(cur, 5, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			case 2:
				v, e := p3.Parse(c)
				if e != nil {
					return false, e
				}
				out.F3 = v
				return true, nil
			case 3:
				v, e := p4.Parse(c)
				if e != nil {
					return false, e
				}
				out.F4 = v
				return true, nil
			case 4:
				v, e := p5.Parse(c)
				if e != nil {
					return false, e
				}
				out.F5 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple5[A, B, C, D, E]{}, err
		}
		return out, nil
	}
}

func Permutation6[T any, A any, B any, C any, D any, E any, F any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F]) ParserFunc[T, Tuple6[A, B, C, D, E, F]] {
	return func(cur *Cursor[T]) (Tuple6[A, B, C, D, E, F], *Error) {
		var out Tuple6[A, B, C, D, E, F]
		err := permuteGeneric(cur, 6, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			case 2:
				v, e := p3.Parse(c)
				if e != nil {
					return false, e
				}
				out.F3 = v
				return true, nil
			case 3:
				v, e := p4.Parse(c)
				if e != nil {
					return false, e
				}
				out.F4 = v
				return true, nil
			case 4:
				v, e := p5.Parse(c)
				if e != nil {
					return false, e
				}
				out.F5 = v
				return true, nil
			case 5:
				v, e := p6.Parse(c)
				if e != nil {
					return false, e
				}
				out.F6 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple6[A, B, C, D, E, F]{}, err
		}
		return out, nil
	}
}

func Permutation7[T any, A any, B any, C any, D any, E any, F any, G any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G]) ParserFunc[T, Tuple7[A, B, C, D, E, F, G]] {
	return func(cur *Cursor[T]) (Tuple7[A, B, C, D, E, F, G], *Error) {
		var out Tuple7[A, B, C, D, E, F, G]
		err := permuteGeneric(cur, 7, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			case 2:
				v, e := p3.Parse(c)
				if e != nil {
					return false, e
				}
				out.F3 = v
				return true, nil
			case 3:
				v, e := p4.Parse(c)
				if e != nil {
					return false, e
				}
				out.F4 = v
				return true, nil
			case 4:
				v, e := p5.Parse(c)
				if e != nil {
					return false, e
				}
				out.F5 = v
				return true, nil
			case 5:
				v, e := p6.Parse(c)
				if e != nil {
					return false, e
				}
				out.F6 = v
				return true, nil
			case 6:
				v, e := p7.Parse(c)
				if e != nil {
					return false, e
				}
				out.F7 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple7[A, B, C, D, E, F, G]{}, err
		}
		return out, nil
	}
}

func Permutation8[T any, A any, B any, C any, D any, E any, F any, G any, H any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G], p8 Parser[T, H]) ParserFunc[T, Tuple8[A, B, C, D, E, F, G, H]] {
	return func(cur *Cursor[T]) (Tuple8[A, B, C, D, E, F, G, H], *Error) {
		var out Tuple8[A, B, C, D, E, F, G, H]
		err := permuteGeneric(cur, 8, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			case 2:
				v, e := p3.Parse(c)
				if e != nil {
					return false, e
				}
				out.F3 = v
				return true, nil
			case 3:
				v, e := p4.Parse(c)
				if e != nil {
					return false, e
				}
				out.F4 = v
				return true, nil
			case 4:
				v, e := p5.Parse(c)
				if e != nil {
					return false, e
				}
				out.F5 = v
				return true, nil
			case 5:
				v, e := p6.Parse(c)
				if e != nil {
					return false, e
				}
				out.F6 = v
				return true, nil
			case 6:
				v, e := p7.Parse(c)
				if e != nil {
					return false, e
				}
				out.F7 = v
				return true, nil
			case 7:
				v, e := p8.Parse(c)
				if e != nil {
					return false, e
				}
				out.F8 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple8[A, B, C, D, E, F, G, H]{}, err
		}
		return out, nil
	}
}

func Permutation9[T any, A any, B any, C any, D any, E any, F any, G any, H any, I any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G], p8 Parser[T, H], p9 Parser[T, I]) ParserFunc[T, Tuple9[A, B, C, D, E, F, G, H, I]] {
	return func(cur *Cursor[T]) (Tuple9[A, B, C, D, E, F, G, H, I], *Error) {
		var out Tuple9[A, B, C, D, E, F, G, H, I]
		err := permuteGeneric(cur, 9, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			case 2:
				v, e := p3.Parse(c)
				if e != nil {
					return false, e
				}
				out.F3 = v
				return true, nil
			case 3:
				v, e := p4.Parse(c)
				if e != nil {
					return false, e
				}
				out.F4 = v
				return true, nil
			case 4:
				v, e := p5.Parse(c)
				if e != nil {
					return false, e
				}
				out.F5 = v
				return true, nil
			case 5:
				v, e := p6.Parse(c)
				if e != nil {
					return false, e
				}
				out.F6 = v
				return true, nil
			case 6:
				v, e := p7.Parse(c)
				if e != nil {
					return false, e
				}
				out.F7 = v
				return true, nil
			case 7:
				v, e := p8.Parse(c)
				if e != nil {
					return false, e
				}
				out.F8 = v
				return true, nil
			case 8:
				v, e := p9.Parse(c)
				if e != nil {
					return false, e
				}
				out.F9 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple9[A, B, C, D, E, F, G, H, I]{}, err
		}
		return out, nil
	}
}

func Permutation10[T any, A any, B any, C any, D any, E any, F any, G any, H any, I any, J any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G], p8 Parser[T, H], p9 Parser[T, I], p10 Parser[T, J]) ParserFunc[T, Tuple10[A, B, C, D, E, F, G, H, I, J]] {
	return func(cur *Cursor[T]) (Tuple10[A, B, C, D, E, F, G, H, I, J], *Error) {
		var out Tuple10[A, B, C, D, E, F, G, H, I, J]
		err := permuteGeneric(cur, 10, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			case 2:
				v, e := p3.Parse(c)
				if e != nil {
					return false, e
				}
				out.F3 = v
				return true, nil
			case 3:
				v, e := p4.Parse(c)
				if e != nil {
					return false, e
				}
				out.F4 = v
				return true, nil
			case 4:
				v, e := p5.Parse(c)
				if e != nil {
					return false, e
				}
				out.F5 = v
				return true, nil
			case 5:
				v, e := p6.Parse(c)
				if e != nil {
					return false, e
				}
				out.F6 = v
				return true, nil
			case 6:
				v, e := p7.Parse(c)
				if e != nil {
					return false, e
				}
				out.F7 = v
				return true, nil
			case 7:
				v, e := p8.Parse(c)
				if e != nil {
					return false, e
				}
				out.F8 = v
				return true, nil
			case 8:
				v, e := p9.Parse(c)
				if e != nil {
					return false, e
				}
				out.F9 = v
				return true, nil
			case 9:
				v, e := p10.Parse(c)
				if e != nil {
					return false, e
				}
				out.F10 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple10[A, B, C, D, E, F, G, H, I, J]{}, err
		}
		return out, nil
	}
}

func Permutation11[T any, A any, B any, C any, D any, E any, F any, G any, H any, I any, J any, K any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D], p5 Parser[T, E], p6 Parser[T, F], p7 Parser[T, G], p8 Parser[T, H], p9 Parser[T, I], p10 Parser[T, J], p11 Parser[T, K]) ParserFunc[T, Tuple11[A, B, C, D, E, F, G, H, I, J, K]] {
	return func(cur *Cursor[T]) (Tuple11[A, B, C, D, E, F, G, H, I, J, K], *Error) {
		var out Tuple11[A, B, C, D, E, F, G, H, I, J, K]
		err := permuteGeneric(cur, 11, func(i int, c *Cursor[T]) (bool, *Error) {
			switch i {
			case 0:
				v, e := p1.Parse(c)
				if e != nil {
					return false, e
				}
				out.F1 = v
				return true, nil
			case 1:
				v, e := p2.Parse(c)
				if e != nil {
					return false, e
				}
				out.F2 = v
				return true, nil
			case 2:
				v, e := p3.Parse(c)
				if e != nil {
					return false, e
				}
				out.F3 = v
				return true, nil
			case 3:
				v, e := p4.Parse(c)
				if e != nil {
					return false, e
				}
				out.F4 = v
				return true, nil
			case 4:
				v, e := p5.Parse(c)
				if e != nil {
					return false, e
				}
				out.F5 = v
				return true, nil
			case 5:
				v, e := p6.Parse(c)
				if e != nil {
					return false, e
				}
				out.F6 = v
				return true, nil
			case 6:
				v, e := p7.Parse(c)
				if e != nil {
					return false, e
				}
				out.F7 = v
				return true, nil
			case 7:
				v, e := p8.Parse(c)
				if e != nil {
					return false, e
				}
				out.F8 = v
				return true, nil
			case 8:
				v, e := p9.Parse(c)
				if e != nil {
					return false, e
				}
				out.F9 = v
				return true, nil
			case 9:
				v, e := p10.Parse(c)
				if e != nil {
					return false, e
				}
				out.F10 = v
				return true, nil
			case 10:
				v, e := p11.Parse(c)
				if e != nil {
					return false, e
				}
				out.F11 = v
				return true, nil
			}
			panic("unreachable")
		})
		if err != nil {
			return Tuple11[A, B, C, D, E, F, G, H, I, J, K]{}, err
		}
		return out, nil
	}
}
