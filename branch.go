package parsekit

// Alt tries each parser in order and succeeds with the first one that
// does. If all of them fail, Alt fails too: the reported error is whichever
// branch's failure made the furthest progress into the input (ties favor
// the later branch), per furthestProgress.
func Alt[T, O any](parsers ...Parser[T, O]) ParserFunc[T, O] {
	return func(cur *Cursor[T]) (O, *Error) {
		entry := *cur
		errs := make([]*Error, 0, len(parsers))
		for _, p := range parsers {
			*cur = entry
			out, err := p.Parse(cur)
			if err == nil {
				return out, nil
			}
			errs = append(errs, err)
		}
		*cur = entry
		return zero[O](), furthestProgress(errs)
	}
}
