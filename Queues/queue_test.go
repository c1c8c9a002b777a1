package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, err := q.Pop(); err == nil {
		t.Fatal("pop on empty queue should fail")
	} else if e := new(EmptyQueueError); !errors.As(err, &e) {
		t.Fatalf("unexpected error %v", err)
	}
	rg := rand.New(rand.NewSource(0))
	var want []int
	for i := 0; i < 10000; i++ {
		if rg.Intn(3) == 0 && len(want) > 0 {
			if q.Peek() != want[0] {
				t.Fatalf("peek %d, want %d", q.Peek(), want[0])
			}
			v, err := q.Pop()
			if err != nil || v != want[0] {
				t.Fatalf("pop %d %v, want %d", v, err, want[0])
			}
			want = want[1:]
		} else {
			q.Push(i)
			want = append(want, i)
		}
		if q.Size() != uint(len(want)) {
			t.Fatalf("size is %d, want %d", q.Size(), len(want))
		}
	}
	q.Shrink()
	for _, w := range want {
		if v, _ := q.Pop(); v != w {
			t.Fatalf("pop %d after shrink, want %d", v, w)
		}
	}
	if !q.Empty() {
		t.Fatal("queue should be empty")
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[*int](4)
	for i := 0; i < 7; i++ {
		i := i
		q.Push(&i)
	}
	q.Clear()
	if !q.Empty() || q.Peek() != nil {
		t.Fatal("queue should be empty after Clear")
	}
	q.Push(nil)
	if q.Size() != 1 {
		t.Fatalf("size is %d, want 1", q.Size())
	}
}
