// Package errutil provides small helpers for chaining fallible operations.
package errutil

// Catch runs a sequence of operations, skipping every operation after the
// first failure and retaining its error.
type Catch struct {
	err error
}

func NewCatch() *Catch { return &Catch{} }

func (c *Catch) Exec(f func() error) {
	if c.err != nil {
		return
	}
	c.err = f()
}

func (c *Catch) Error() error { return c.err }
