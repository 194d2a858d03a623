package types

import (
	"hash"

	"github.com/spaolacci/murmur3"
)

// Value - the root type of all values the evaluator handles
type Value interface{}

// Counted - collections that have finite, known size
type Counted interface {
	Count() int64
}

// Seqable - collections that can produce a traversing sequence, or are empty
type Seqable interface {
	Seq() Seq
}

// Seq - a persistent traversal of a sequence
type Seq interface {
	// Next returns a tuple of emptiness, the first item if non-empty, and the tail seq
	Next() (bool, Value, Seq)
}

// Iterator - a stateful, restartable traversal over integers
type Iterator interface {
	// Next advances and reports whether a current value is available
	Next() bool
	// Current is the value the last successful Next landed on
	Current() (int64, error)
	// Reset rewinds to before the first element
	Reset()
}

// Ranger - the capabilities shared by range-like values
type Ranger interface {
	Contains(number int64) bool
	// IndexOf returns -1 when the number is not an element
	IndexOf(number int64) int64
	ElementAt(index int64) (int64, error)
	Iterate() Iterator
}

// HasSimpleValueEquality - is a type which can compare itself to other values
type HasSimpleValueEquality interface {
	ValueEquals(Value) bool
	hashBytes() []byte
}

func hashAnyValue(hash hash.Hash32, value Value) {
	switch cast := value.(type) {
	case HasSimpleValueEquality:
		hash.Write(cast.hashBytes())
	case List:
		hash.Write([]byte("()"))
		itr := cast.Imm.Iterator()
		for !itr.Done() {
			_, v := itr.Next()
			hashAnyValue(hash, v)
		}
	}
}

// Hash computes a murmur3 hash of the given value
func Hash(value Value) uint32 {
	hash := murmur3.New32()
	hashAnyValue(hash, value)
	return hash.Sum32()
}

type hasher struct{}

func (h hasher) Hash(key interface{}) uint32 {
	return Hash(key)
}

func (h hasher) Equal(a, b interface{}) bool {
	return Equals(a, b)
}

// Equals compares values
func Equals(this Value, that Value) bool {
	switch cast := this.(type) {
	case HasSimpleValueEquality:
		return cast.ValueEquals(that)
	case List:
		thatList, valid := that.(List)
		if !valid || cast.Imm.Len() != thatList.Imm.Len() {
			return false
		}
		for i := 0; i < cast.Imm.Len(); i++ {
			if !Equals(cast.Imm.Get(i), thatList.Imm.Get(i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
