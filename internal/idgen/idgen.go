// Package idgen supplies entity id generation as an injectable capability
// so tests can pin ids. The dashboard historically mixed two schemes
// (max+1 and wall-clock timestamps); max+1 is the single contract here.
package idgen

// Generator produces the id for a record about to join a collection.
type Generator interface {
	Next(existing []int64) int64
}

// Sequential assigns max(existing)+1, or 1 for an empty collection. Ids
// only ever move forward: deleting a non-max id leaves a permanent gap.
type Sequential struct{}

func (Sequential) Next(existing []int64) int64 {
	var max int64
	for _, id := range existing {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Fixed always returns the same id. Test use only.
type Fixed int64

func (f Fixed) Next([]int64) int64 { return int64(f) }
