package blockfall

// Randomizer is the source of piece draws. *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// NextQueue holds the upcoming kinds. Every draw is independent and
// uniform over the 7 kinds; there is no bag.
type NextQueue struct {
	kinds []Kind
	size  int
	rng   Randomizer
}

// NewNextQueue returns a queue filled to size.
func NewNextQueue(size int, rng Randomizer) *NextQueue {
	q := &NextQueue{size: size, rng: rng}
	q.Reset()
	return q
}

func (q *NextQueue) draw() Kind {
	return Kinds[q.rng.Intn(len(Kinds))]
}

// Dequeue pops the front kind and appends one fresh draw. An empty queue
// yields a fresh draw instead of failing.
func (q *NextQueue) Dequeue() Kind {
	if len(q.kinds) == 0 {
		q.kinds = append(q.kinds, q.draw())
	}
	k := q.kinds[0]
	q.kinds = append(q.kinds[1:], q.draw())
	return k
}

// Peek returns a copy of the pending kinds, front first.
func (q *NextQueue) Peek() []Kind {
	out := make([]Kind, len(q.kinds))
	copy(out, q.kinds)
	return out
}

func (q *NextQueue) Len() int {
	return len(q.kinds)
}

// Reset discards the pending kinds and refills to size.
func (q *NextQueue) Reset() {
	q.kinds = make([]Kind, 0, q.size+1)
	for i := 0; i < q.size; i++ {
		q.kinds = append(q.kinds, q.draw())
	}
}
