package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dfstep/builder"
	"github.com/katalvlaran/dfstep/dfs"
)

// ExampleEngine single-steps the reference lesson graph.
// Graph structure:
//
//	    A
//	   / \
//	  B   C
//	 / \ / \
//	D   E   F
//
// Starting at "A" with the default mark-on-pop policy, the discovery
// order is: A B D E C F
func ExampleEngine() {
	// Bind an engine to the lesson graph.
	eng, err := dfs.New(builder.Lesson())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Seed the run, then pause so we control every step ourselves.
	if err = eng.Start("A"); err != nil {
		fmt.Println("error:", err)
		return
	}
	eng.Pause()

	// Advance one micro-step at a time until the stack is exhausted.
	snap := eng.Snapshot()
	for !snap.Done {
		snap = eng.Step()
	}

	fmt.Println(strings.Join(snap.Visited, " "))

	// Output:
	// A B D E C F
}

// ExampleEngine_markOnPush runs the contrasted policy on the same graph:
// nodes are marked visited when pushed, so siblings are discovered before
// grandchildren.
func ExampleEngine_markOnPush() {
	eng, err := dfs.New(builder.Lesson(), dfs.WithMarkOnPush())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err = eng.Start("A"); err != nil {
		fmt.Println("error:", err)
		return
	}
	eng.Pause()

	snap := eng.Snapshot()
	for !snap.Done {
		snap = eng.Step()
	}

	fmt.Println(strings.Join(snap.Visited, " "))

	// Output:
	// A B C D E F
}
