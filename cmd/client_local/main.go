package main

// Renders a scenario file without a server.

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-d/go-termutil"
	"github.com/mortenson/solvedmap/pkg/backend"
	"github.com/mortenson/solvedmap/pkg/frontend"
	"github.com/mortenson/solvedmap/pkg/pathfind"
	"github.com/mortenson/solvedmap/pkg/scenario"
	log "github.com/sirupsen/logrus"
)

func main() {
	withRoute := flag.Bool("route", false, "draw the shortest route")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: client_local [-route] scenario.json")
		os.Exit(2)
	}

	s, err := scenario.LoadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load scenario: %v", err)
	}
	index, err := s.Index()
	if err != nil {
		log.Fatal(err)
	}
	grid, err := backend.RenderGrid(s.Start, s.Target, index)
	if err != nil {
		log.Fatal(err)
	}
	if *withRoute {
		route := pathfind.FindPath(s.Start, s.Target, index)
		if !route.Found {
			log.Warnf("no route from %v to %v", s.Start, s.Target)
		} else {
			log.Infof("route %s (%d moves)", route.Directions(), len(route.Steps)-1)
		}
		grid = pathfind.Overlay(grid, route)
	}

	if !termutil.Isatty(os.Stdout.Fd()) {
		fmt.Print(grid.String())
		return
	}
	if err := frontend.NewView(grid, flag.Arg(0)).Start(); err != nil {
		log.Fatal(err)
	}
}
