package main

// Renders a map on a remote server.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/andrew-d/go-termutil"
	"github.com/mortenson/solvedmap/pkg/backend"
	"github.com/mortenson/solvedmap/pkg/client"
	"github.com/mortenson/solvedmap/pkg/frontend"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

func main() {
	addr := flag.String("addr", ":8888", "server address")
	sx := flag.Int("sx", 0, "start x")
	sy := flag.Int("sy", 0, "start y")
	tx := flag.Int("tx", 0, "target x")
	ty := flag.Int("ty", 0, "target y")
	withRoute := flag.Bool("route", false, "draw the shortest route")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	flag.Parse()

	conn, err := grpc.Dial(*addr, grpc.WithInsecure())
	if err != nil {
		log.Fatalf("can not connect with server %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	start := backend.Coordinate{X: *sx, Y: *sy}
	target := backend.Coordinate{X: *tx, Y: *ty}
	result, err := client.NewMapClient(conn).Render(ctx, start, target, *withRoute)
	if err != nil {
		log.Fatalf("render request failed %v", err)
	}
	log.WithField("request", result.RequestID).Debug("rendered")

	if !termutil.Isatty(os.Stdout.Fd()) {
		fmt.Print(result.Map)
		return
	}
	if err := frontend.NewView(result.Grid(), result.RequestID).Start(); err != nil {
		log.Fatal(err)
	}
}
