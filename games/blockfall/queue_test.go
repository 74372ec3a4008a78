package blockfall

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQueueFIFO(t *testing.T) {
	rng := &seqRand{seq: []int{int(I), int(O), int(T), int(S), int(Z)}}
	q := NewNextQueue(3, rng)
	require.Equal(t, []Kind{I, O, T}, q.Peek())

	assert.Equal(t, I, q.Dequeue())
	assert.Equal(t, []Kind{O, T, S}, q.Peek())
	assert.Equal(t, O, q.Dequeue())
	assert.Equal(t, []Kind{T, S, Z}, q.Peek())
}

func TestNextQueueLengthIsConstant(t *testing.T) {
	q := NewNextQueue(3, rand.New(rand.NewSource(1)))
	for i := 0; i < 500; i++ {
		q.Dequeue()
		require.Equal(t, 3, q.Len())
	}
}

func TestNextQueuePeekIsCopy(t *testing.T) {
	q := NewNextQueue(3, only(T))
	peek := q.Peek()
	peek[0] = I
	assert.Equal(t, T, q.Peek()[0])
}

func TestNextQueueUnderflowSynthesizes(t *testing.T) {
	q := &NextQueue{size: 3, rng: only(Z)}
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, Z, q.Dequeue())
}

func TestNextQueueUniform(t *testing.T) {
	q := NewNextQueue(3, rand.New(rand.NewSource(42)))
	counts := map[Kind]int{}
	const draws = 70000
	for i := 0; i < draws; i++ {
		counts[q.Dequeue()]++
	}
	for _, k := range Kinds {
		assert.InDelta(t, draws/7, counts[k], draws/7*0.05, "kind %v", k)
	}
}
