package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"rotchess/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	parallel := flag.Bool("parallel", false, "Search root moves concurrently on cloned positions")
	verify := flag.Bool("verify", false, "Compare the divide against the dragontoothmg generator")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.NewPositionFromFEN(*fen, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse FEN: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		if !verifyDivide(pos, *fen, *depth) {
			os.Exit(1)
		}
		return
	}

	if *divide {
		div := divideStrings(board.PerftDivide(pos, *depth))
		keys := maps.Keys(div)
		slices.Sort(keys)
		var sum uint64
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, div[k])
			sum += div[k]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	count := board.Perft
	if *parallel {
		count = parallelPerft
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += count(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// parallelPerft counts each root move's subtree on its own clone.
func parallelPerft(pos *board.Position, depth int) uint64 {
	moves := pos.GenerateMoves()
	if depth <= 1 {
		return uint64(len(moves))
	}
	counts := make([]uint64, len(moves))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			c := pos.Clone()
			c.MakeMove(m)
			counts[i] = board.Perft(c, depth-1)
			return nil
		})
	}
	_ = g.Wait()
	var total uint64
	for _, n := range counts {
		total += n
	}
	return total
}

func divideStrings(div map[board.Move]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(div))
	for m, n := range div {
		out[m.String()] = n
	}
	return out
}

func oracleDivide(b *dragontoothmg.Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		m := m
		undo := b.Apply(m)
		out[m.String()] = oraclePerft(b, depth-1)
		undo()
	}
	return out
}

func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		undo := b.Apply(m)
		n += oraclePerft(b, depth-1)
		undo()
	}
	return n
}

// verifyDivide prints every root move whose count differs from the oracle.
func verifyDivide(pos *board.Position, fen string, depth int) bool {
	ours := divideStrings(board.PerftDivide(pos, depth))
	ob := dragontoothmg.ParseFen(fen)
	theirs := oracleDivide(&ob, depth)

	keys := maps.Keys(ours)
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	ok := true
	for _, k := range keys {
		a, inOurs := ours[k]
		b, inTheirs := theirs[k]
		switch {
		case !inOurs:
			fmt.Printf("%s: missing (oracle %d)\n", k, b)
			ok = false
		case !inTheirs:
			fmt.Printf("%s: extra (ours %d)\n", k, a)
			ok = false
		case a != b:
			fmt.Printf("%s: %d, oracle %d\n", k, a, b)
			ok = false
		}
	}
	if ok {
		fmt.Printf("verified %d root moves at depth %d\n", len(keys), depth)
	}
	return ok
}
