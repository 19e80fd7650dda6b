package score

// A cell memoizes one derived value of a node until reset.
type cell[T any] struct {
	v  T
	ok bool
}

func (c *cell[T]) get(f func() T) T {
	if !c.ok {
		c.v = f()
		c.ok = true
	}
	return c.v
}

func (c *cell[T]) set(v T) {
	c.v = v
	c.ok = true
}

func (c *cell[T]) reset() {
	var zero T
	c.v = zero
	c.ok = false
}
