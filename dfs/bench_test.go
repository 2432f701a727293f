package dfs_test

import (
	"testing"

	"github.com/katalvlaran/dfstep/builder"
	"github.com/katalvlaran/dfstep/dfs"
)

// BenchmarkEngine_Chain2000 measures a full manually-stepped run over a
// linear chain of 2,000 nodes: N0 → N1 → ... → N1999.
// Under mark-on-pop each node costs one discovery step and one backtrack
// re-arrival, so one run is ~2V steps.
func BenchmarkEngine_Chain2000(b *testing.B) {
	// 1. Build the chain once; construction is excluded from the timer.
	g, err := builder.Chain(2000)
	if err != nil {
		b.Fatal(err)
	}

	// 2. One engine, restarted per iteration; Start re-seeds everything.
	eng, err := dfs.New(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	// 3. Drive b.N complete runs by manual stepping.
	for i := 0; i < b.N; i++ {
		_ = eng.Start("N0")
		eng.Pause()
		for snap := eng.Snapshot(); !snap.Done; snap = eng.Step() {
		}
	}
}

// BenchmarkEngine_TreeDepth10 measures a run over a complete binary tree
// of depth 10 (1023 nodes), the branching-heavy counterpart of the chain.
func BenchmarkEngine_TreeDepth10(b *testing.B) {
	g, err := builder.CompleteBinaryTree(10)
	if err != nil {
		b.Fatal(err)
	}

	eng, err := dfs.New(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = eng.Start("T-1")
		eng.Pause()
		for snap := eng.Snapshot(); !snap.Done; snap = eng.Step() {
		}
	}
}

// BenchmarkEngine_Snapshot measures the cost of the copy a renderer pays
// per frame, taken mid-run on the chain graph.
func BenchmarkEngine_Snapshot(b *testing.B) {
	g, err := builder.Chain(2000)
	if err != nil {
		b.Fatal(err)
	}

	eng, err := dfs.New(g)
	if err != nil {
		b.Fatal(err)
	}
	_ = eng.Start("N0")
	eng.Pause()
	// Walk halfway in so visited and stack are populated.
	for i := 0; i < 2000; i++ {
		eng.Step()
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = eng.Snapshot()
	}
}
