// Command chronon-demo runs a small scenario exercising the engine's main
// features: a flat ping/pong pair, a hierarchical queue, and a mid-run
// suspend/resume of that queue.
package main

import (
	"fmt"

	"github.com/jcderner/chronon/engine"
)

func main() {
	fmt.Println("Starting the simulation...")
	runDemo()
}

func runDemo() {
	mq := engine.NewMainQueue()
	root := mq.Queue()

	p := &pinger{root: root}
	must(engine.NewEvent(root, 0, engine.Zero, p.ping))

	hq, err := engine.NewHierarchicalQueue(root, 0)
	if err != nil {
		panic(err)
	}
	local := hq.AsQueue()
	must(engine.NewEvent(local, 0, mustTime(10), func() {
		fmt.Printf("%v: child 1 fired\n", mq.Clock())
	}))
	must(engine.NewEvent(local, 0, mustTime(20), func() {
		fmt.Printf("%v: child 2 fired\n", mq.Clock())
	}))

	// Suspend the hierarchical queue once, then fire an unrelated root
	// event, then resume: both children should fire exactly residual time
	// after the resume instant, not at their original absolute due times.
	if _, err := hq.Suspend(); err != nil {
		panic(err)
	}
	must(engine.NewEvent(root, 0, mustTime(15), func() {
		fmt.Printf("%v: unrelated root event fired\n", mq.Clock())
		if _, err := hq.Resume(); err != nil {
			panic(err)
		}
	}))

	for mq.Len() > 0 {
		if err := mq.Step(); err != nil && err != engine.ErrOutOfEvents {
			panic(err)
		}
	}
	fmt.Println("Simulation finished.")
}

type pinger struct {
	root *engine.Queue
}

func (p *pinger) ping() {
	fmt.Println("Ping!")
	must(engine.NewEvent(p.root, 0, mustTime(5), p.pong))
}

func (p *pinger) pong() {
	fmt.Println("Pong!")
}

func mustTime(v float64) engine.Time {
	t, err := engine.NewTime(v)
	if err != nil {
		panic(err)
	}
	return t
}

func must(_ *engine.Event, err error) {
	if err != nil {
		panic(err)
	}
}
