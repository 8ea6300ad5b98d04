package parley

// ControlFlow is the shared quit signal of one interactive loop. The loop
// driver hands the same cell to every dispatch of every iteration; a
// terminal handler at any nesting depth may call Quit to end that loop
// with a payload. Nested loops get their own cells, so quitting an inner
// loop never unwinds an outer one.
//
// The zero value is inert: Quit on it is a no-op. Introspect-mode
// traversals receive inert cells so a misbehaving builder cannot stop a
// live loop while help is being rendered.
type ControlFlow[T any] struct {
	dst **T
}

// Quit asks the owning loop to stop after the current dispatch returns,
// yielding v to the loop's caller. The last call in an iteration wins.
func (c *ControlFlow[T]) Quit(v T) {
	if c.dst != nil {
		*c.dst = &v
	}
}
