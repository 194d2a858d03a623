package types

import (
	"github.com/dball/irange/ex"
	"github.com/pkg/errors"
)

// CursorState is the progress of a cursor
type CursorState uint8

// Cursors move NotStarted -> Running -> Finished, and back with Reset
const (
	NotStarted CursorState = iota
	Running
	Finished
)

func (state CursorState) String() string {
	switch state {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	default:
		return "finished"
	}
}

// Cursor lazily walks a snapshot of a range's bounds. It is not safe for
// concurrent use; take one cursor per consumer.
type Cursor struct {
	start   int64
	stop    int64
	step    int64
	current int64
	state   CursorState
}

// hasMore is false once current reaches stop or passes it in the direction of travel
func (c *Cursor) hasMore() bool {
	return c.current != c.stop && (c.current < c.stop) != (c.step < 0)
}

// lastStep is true when one more step would reach or pass stop. Distances are
// taken as unsigned so stepping near the int64 limits never wraps around.
func (c *Cursor) lastStep() bool {
	if c.step > 0 {
		return uint64(c.stop)-uint64(c.current) <= uint64(c.step)
	}
	return uint64(c.current)-uint64(c.stop) <= uint64(-c.step)
}

// Next advances the cursor and reports whether it landed on an element.
// On an empty range the first call already reports false and the cursor
// finishes, so no element is ever observed.
func (c *Cursor) Next() bool {
	switch c.state {
	case NotStarted:
		c.state = Running
		c.current = c.start
		if !c.hasMore() {
			c.state = Finished
			return false
		}
		return true
	case Running:
		if c.lastStep() {
			c.state = Finished
			return false
		}
		c.current += c.step
		return true
	default:
		return false
	}
}

// Current returns the element the cursor is on
func (c *Cursor) Current() (int64, error) {
	switch c.state {
	case Running:
		return c.current, nil
	case NotStarted:
		return 0, ex.Ex{Code: ex.InvalidState, Err: errors.New("enumeration has not started")}
	default:
		return 0, ex.Ex{Code: ex.InvalidState, Err: errors.New("enumeration already finished")}
	}
}

// Reset rewinds the cursor to before the first element
func (c *Cursor) Reset() {
	c.state = NotStarted
}

// State reports the cursor's progress
func (c *Cursor) State() CursorState {
	return c.state
}
