package runtime

import (
	"github.com/benbjohnson/immutable"
	"github.com/dball/irange/ex"
	"github.com/dball/irange/types"
	"github.com/pkg/errors"
)

// Range builds a range from its constraints the way the range builtin reads
// them: (stop), (start stop) or (start stop step)
func Range(constraints ...int64) (types.Range, error) {
	switch len(constraints) {
	case 1:
		return types.Upto(constraints[0]), nil
	case 2:
		return types.NewRange(constraints[0], constraints[1], 1)
	case 3:
		return types.NewRange(constraints[0], constraints[1], constraints[2])
	default:
		return types.Range{}, ex.Ex{
			Code:    ex.InvalidArgument,
			Err:     errors.Errorf("range takes 1 to 3 bounds, got %d", len(constraints)),
			Context: map[string]interface{}{"bounds": constraints},
		}
	}
}

// Take returns as many as n items from the iterator's current position
func Take(itr types.Iterator, n int64) ([]int64, error) {
	if n < 0 {
		return nil, ex.Ex{Code: ex.InvalidArgument, Err: errors.Errorf("can not take %d items", n)}
	}
	var items []int64
	for int64(len(items)) < n && itr.Next() {
		item, err := itr.Current()
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// IntoSlice pours every element of a ranger into a slice
func IntoSlice(r types.Ranger) ([]int64, error) {
	var items []int64
	itr := r.Iterate()
	for itr.Next() {
		item, err := itr.Current()
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// IntoList pours every element of a ranger into an immutable list
func IntoList(r types.Ranger) (types.List, error) {
	imm := immutable.NewList()
	b := immutable.NewListBuilder(imm)
	itr := r.Iterate()
	for itr.Next() {
		item, err := itr.Current()
		if err != nil {
			return types.List{}, err
		}
		b.Append(types.Integer(item))
	}
	return types.List{Imm: b.List()}, nil
}

// Drop skips the first n items of a seqable. Ranges skip by index; anything
// else is walked.
func Drop(coll types.Seqable, n int64) (types.Seq, error) {
	if n < 0 {
		return nil, ex.Ex{Code: ex.InvalidArgument, Err: errors.Errorf("can not drop %d items", n)}
	}
	if r, valid := coll.(types.Range); valid {
		return r.SeqFrom(n), nil
	}
	seq := coll.Seq()
	for i := int64(0); i < n; i++ {
		empty, _, tail := seq.Next()
		if empty {
			break
		}
		seq = tail
	}
	return seq, nil
}

// Nth returns the nth element of a ranger, if any
func Nth(r types.Ranger, n int64) (types.Integer, error) {
	item, err := r.ElementAt(n)
	if err != nil {
		return 0, err
	}
	return types.Integer(item), nil
}

// Count counts a counted value, or walks a ranger that isn't one
func Count(r types.Ranger) int64 {
	if counted, valid := r.(types.Counted); valid {
		return counted.Count()
	}
	var count int64
	itr := r.Iterate()
	for itr.Next() {
		count++
	}
	return count
}

// Last returns the final element of a ranger
func Last(r types.Ranger) (types.Integer, error) {
	count := Count(r)
	if count == 0 {
		return 0, ex.Ex{Code: ex.EmptyRange, Err: errors.New("the range is empty")}
	}
	return Nth(r, count-1)
}
