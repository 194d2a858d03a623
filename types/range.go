package types

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/dball/irange/ex"
	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"
)

// Range is the half-open arithmetic progression [start, stop) advanced by step.
// Every derived property is computed from the three bounds in constant time.
// The zero Range has no step; build ranges with NewRange or Upto.
type Range struct {
	start int64
	stop  int64
	step  int64
}

// NewRange builds a range, rejecting a zero step
func NewRange(start, stop, step int64) (Range, error) {
	if step == 0 {
		return Range{}, ex.Ex{
			Code:    ex.InvalidArgument,
			Err:     errors.New("step can not be zero"),
			Context: map[string]interface{}{"start": start, "stop": stop},
		}
	}
	return Range{start: start, stop: stop, step: step}, nil
}

// Upto builds the range [0, stop) with step 1
func Upto(stop int64) Range {
	return Range{stop: stop, step: 1}
}

// Start is the first candidate value
func (r Range) Start() int64 { return r.start }

// Stop is the excluded bound
func (r Range) Stop() int64 { return r.stop }

// Step is never zero
func (r Range) Step() int64 { return r.step }

// vector is +1 for ascending ranges and -1 for descending ones
func (r Range) vector() int64 {
	if r.step < 0 {
		return -1
	}
	return 1
}

// Empty is true when the bounds are equal or the step points away from stop
func (r Range) Empty() bool {
	return r.start == r.stop || (r.start < r.stop) != (r.step > 0)
}

// Count of elements, by truncating division
func (r Range) Count() int64 {
	if r.Empty() {
		return 0
	}
	return (r.stop-r.start-r.vector())/r.step + 1
}

// Sum of the elements as an arithmetic series. start+last is
// 2*start + step*(count-1), so whenever count is odd start+last is even:
// one factor of (start+last)*count is always even, and it is halved before
// multiplying so the product only overflows when the sum itself does.
func (r Range) Sum() int64 {
	if r.Empty() {
		return 0
	}
	count := r.Count()
	last := r.start + r.step*(count-1)
	ends := r.start + last
	if count%2 == 0 {
		return ends * (count >> 1)
	}
	return (ends >> 1) * count
}

// mod is the remainder with the sign of step, so negatives behave like
// mathematical modulo
func (r Range) mod(number int64) int64 {
	return (number%r.step + r.step) % r.step
}

// Contains is true if number is one of the elements
func (r Range) Contains(number int64) bool {
	if r.mod(r.start) != r.mod(number) {
		return false
	}
	vector := r.vector()
	return vector*number >= vector*r.start && vector*number < vector*r.stop
}

// IndexOf returns the index of number, or -1 if it is not an element
func (r Range) IndexOf(number int64) int64 {
	if !r.Contains(number) {
		return -1
	}
	return (number - r.start) / r.step
}

// ElementAt returns the index'th element without iterating
func (r Range) ElementAt(index int64) (int64, error) {
	if r.Empty() {
		return 0, ex.Ex{Code: ex.EmptyRange, Err: errors.New("the range is empty")}
	}
	count := r.Count()
	if index < 0 || index >= count {
		return 0, ex.Ex{
			Code:    ex.IndexOutOfBounds,
			Err:     errors.Errorf("index must be between 0 and %d", count),
			Context: map[string]interface{}{"index": index},
		}
	}
	return r.start + r.step*index, nil
}

// Last returns the final element
func (r Range) Last() (int64, error) {
	return r.ElementAt(r.Count() - 1)
}

// Cursor snapshots the bounds into a fresh cursor
func (r Range) Cursor() *Cursor {
	return &Cursor{start: r.start, stop: r.stop, step: r.step}
}

// Iterate satisfies Ranger
func (r Range) Iterate() Iterator {
	return r.Cursor()
}

// Values yields the elements in order
func (r Range) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		cursor := r.Cursor()
		for cursor.Next() {
			if !yield(cursor.current) {
				return
			}
		}
	}
}

// Seq of a range walks it by index
func (r Range) Seq() Seq {
	return r.SeqFrom(0)
}

// SeqFrom walks a range by index starting at index, without touching the
// elements before it
func (r Range) SeqFrom(index int64) IndexSeq {
	if r.Empty() {
		return IndexSeq{}
	}
	if index < 0 {
		index = 0
	}
	return IndexSeq{Range: r, Index: index}
}

// Equal compares bounds
func (r Range) Equal(that Range) bool {
	return r.start == that.start && r.stop == that.stop && r.step == that.step
}

// ValueEquals compares ranges
func (r Range) ValueEquals(that Value) bool {
	thatRange, valid := that.(Range)
	return valid && r.Equal(thatRange)
}

func (r Range) hashBytes() []byte {
	b := make([]byte, 25)
	b[0] = 'r'
	binary.LittleEndian.PutUint64(b[1:], uint64(r.start))
	binary.LittleEndian.PutUint64(b[9:], uint64(r.stop))
	binary.LittleEndian.PutUint64(b[17:], uint64(r.step))
	return b
}

// Hash fingerprints the bounds
func (r Range) Hash() uint32 {
	return murmur3.Sum32(r.hashBytes())
}

func (r Range) String() string {
	return fmt.Sprintf("Range(start: %d, stop: %d, step: %d)", r.start, r.stop, r.step)
}

// IndexSeq traverses a range from an index onward
type IndexSeq struct {
	Range Range
	Index int64
}

// Count of the elements left in the seq
func (seq IndexSeq) Count() int64 {
	left := seq.Range.Count() - seq.Index
	if left < 0 {
		return 0
	}
	return left
}

// Next of an index seq is empty once the index passes the count
func (seq IndexSeq) Next() (bool, Value, Seq) {
	head, err := seq.Range.ElementAt(seq.Index)
	if err != nil {
		return true, nil, nil
	}
	return false, Integer(head), IndexSeq{Range: seq.Range, Index: seq.Index + 1}
}
