package slotq_test

import (
	"fmt"

	"github.com/hupe1980/slotq"
)

func ExampleNew() {
	q := slotq.New[int](3)

	for _, v := range []int{1, 2, 3} {
		if err := q.Enqueue(v); err != nil {
			panic(err)
		}
	}
	if err := q.Enqueue(4); err != nil {
		fmt.Println("full:", err)
	}

	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// full: capacity exceeded: arena full
	// 1
	// 2
	// 3
}

func ExampleList_Splice() {
	a := slotq.NewArena[string](8)
	pending, ready := a.NewList(), a.NewList()

	for _, v := range []string{"a", "b", "c"} {
		if err := pending.Enqueue(v); err != nil {
			panic(err)
		}
	}

	// Move everything from pending into ready without touching the arena.
	run := slotq.Run{First: pending.Front(), Last: pending.Back()}
	if err := pending.Splice(run, ready, slotq.Gap{}); err != nil {
		panic(err)
	}

	fmt.Println("pending:", pending.Len())
	ready.Walk(func(v string) bool {
		fmt.Println(v)
		return true
	})
	// Output:
	// pending: 0
	// a
	// b
	// c
}
