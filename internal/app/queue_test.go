package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeQueue_MergesUntilTaken(t *testing.T) {
	q := newChangeQueue()

	q.push([]string{"/p/src/ts/a.ts"})
	q.push(nil)
	q.push([]string{"/p/src/ts/b.ts", "/p/src/ts/a.ts"})

	select {
	case <-q.ready:
	default:
		t.Fatal("queue not signalled")
	}
	assert.Equal(t, []string{"/p/src/ts/a.ts", "/p/src/ts/b.ts"}, q.take())
	assert.Empty(t, q.take())

	select {
	case <-q.ready:
		t.Fatal("queue signalled twice")
	default:
	}
}
