package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"rotchess/board"
	"rotchess/engine"
)

func main() {
	// --- Flags ---
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	movesFlag := flag.String("moves", "", "space separated long algebraic moves to play first")
	depthFlag := flag.Int("depth", 0, "fixed search depth in plies (0 = use the clock)")
	moveTime := flag.Duration("movetime", 0, "time per move")
	clock := flag.Duration("clock", time.Minute, "remaining game time when -movetime is not set")
	inc := flag.Duration("inc", 0, "increment per move")
	repeat := flag.Int("repeat", 1, "number of searches to run")
	ttEntries := flag.Int("tt", engine.DefaultOptions().TTEntries, "transposition table entries (power of two)")
	verbose := flag.Bool("v", false, "log every completed iteration")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag < 0 {
		log.Fatalf("depth must not be negative, got %d", *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := board.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}

	opts := engine.DefaultOptions()
	opts.TTEntries = *ttEntries
	opts.ClearHashEachSearch = true
	if *verbose {
		opts.Logger = log.New(os.Stderr, "", log.Lmicroseconds)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, *depthFlag, *repeat)

	startAll := time.Now()
	for i := 0; i < *repeat; i++ {
		// Fresh position for each run
		pos, err := board.NewPositionFromFEN(fen, nil)
		if err != nil {
			log.Fatalf("invalid -fen: %v", err)
		}
		if *movesFlag != "" {
			if err := pos.ApplyMoves(strings.Fields(*movesFlag)...); err != nil {
				log.Fatalf("invalid -moves: %v", err)
			}
		}
		s, err := engine.NewSearcher(pos, opts)
		if err != nil {
			log.Fatalf("invalid options: %v", err)
		}

		var res engine.Result
		if *depthFlag > 0 {
			res = s.SearchDepth(ctx, *depthFlag)
		} else {
			budget := *moveTime
			if budget == 0 {
				budget = engine.MoveTime(pos, *clock, *inc)
			}
			res = s.FindBestMove(ctx, budget)
		}

		san := "-"
		if res.Move != board.NoMove {
			san = pos.SAN(res.Move)
		}
		fmt.Printf("iteration %d: %s (%s)\n", i+1, res, san)
		if res.Move != board.NoMove {
			pos.MakeMove(res.Move)
		}
		fmt.Printf("status after move: %s\n", pos.GameStatus())
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
