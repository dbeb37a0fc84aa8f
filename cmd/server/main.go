package main

import (
	"flag"
	"net"
	"net/http"
	"os"

	"github.com/mortenson/solvedmap/pkg/backend"
	"github.com/mortenson/solvedmap/pkg/scenario"
	"github.com/mortenson/solvedmap/pkg/server"
	"github.com/mortenson/solvedmap/proto"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

func main() {
	grpcAddr := flag.String("grpc", ":8888", "gRPC listen address")
	httpAddr := flag.String("http", "", "HTTP listen address, defaults to :$PORT or :8080")
	scenarioPath := flag.String("scenario", "", "JSON scenario file with the obstacles to serve")
	cacheSize := flag.Int("cache", 256, "number of rendered maps to keep")
	maxCells := flag.Int64("max-cells", 1<<20, "largest viewport area, in cells, a request may render")
	flag.Parse()

	var obstacles []backend.Obstacle
	if *scenarioPath != "" {
		s, err := scenario.LoadFile(*scenarioPath)
		if err != nil {
			log.Fatalf("failed to load scenario: %v", err)
		}
		obstacles = s.Obstacles
	}
	index, err := backend.NewObstacleIndex(obstacles)
	if err != nil {
		log.Fatalf("failed to index obstacles: %v", err)
	}
	mapServer, err := server.NewMapServer(index, *cacheSize, *maxCells)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Infof("serving %d obstacles", index.Len())

	if *httpAddr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
			log.Printf("Defaulting to port %s", port)
		}
		*httpAddr = ":" + port
	}
	go func() {
		log.Fatalln(http.ListenAndServe(*httpAddr, server.NewHTTPHandler(mapServer)))
	}()

	lis, err := net.Listen("tcp", *grpcAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	s := grpc.NewServer()
	proto.RegisterMapServiceServer(s, mapServer)
	log.Printf("listening on %s (grpc) and %s (http)", *grpcAddr, *httpAddr)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
