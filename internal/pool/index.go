package pool

import "errors"

// ErrExhausted indicates no unused question exists in any tier.
var ErrExhausted = errors.New("question pool exhausted")

// Index organizes a pool into ordered difficulty buckets and answers
// "fetch an unused question at or near a target tier". It holds only
// read access to the pool: the exclude set is supplied fresh by the
// caller on every Fetch, so repeated calls with the same arguments
// return the same candidate.
type Index struct {
	buckets [NumTiers][]Question
}

// BuildIndex groups the pool's questions by tier, preserving insertion
// order within each bucket. A nil pool fails with ErrEmptyPool.
func BuildIndex(p *Pool) (*Index, error) {
	if p == nil || p.Len() == 0 {
		return nil, ErrEmptyPool
	}

	idx := &Index{}
	for _, q := range p.Questions() {
		b := int(q.Tier - TierMin)
		idx.buckets[b] = append(idx.buckets[b], q)
	}
	return idx, nil
}

// Fetch returns the first unused question at the target tier, or the
// nearest tier with one available. Adjacent tiers are searched outward
// in increasing distance, lower tier first at equal distance. Fails with
// ErrExhausted when every tier is spent.
func (idx *Index) Fetch(target Tier, exclude map[string]bool) (Question, error) {
	target = target.Clamp()

	if q, ok := idx.fromBucket(target, exclude); ok {
		return q, nil
	}
	for dist := Tier(1); dist < Tier(NumTiers); dist++ {
		for _, t := range [2]Tier{target - dist, target + dist} {
			if !t.Valid() {
				continue
			}
			if q, ok := idx.fromBucket(t, exclude); ok {
				return q, nil
			}
		}
	}
	return Question{}, ErrExhausted
}

// Remaining reports how many unused questions are left across all tiers.
func (idx *Index) Remaining(exclude map[string]bool) int {
	n := 0
	for _, bucket := range idx.buckets {
		for _, q := range bucket {
			if !exclude[q.ID] {
				n++
			}
		}
	}
	return n
}

func (idx *Index) fromBucket(t Tier, exclude map[string]bool) (Question, bool) {
	for _, q := range idx.buckets[t-TierMin] {
		if !exclude[q.ID] {
			return q, true
		}
	}
	return Question{}, false
}
