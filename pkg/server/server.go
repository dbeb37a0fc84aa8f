package server

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/golang/protobuf/ptypes"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mortenson/solvedmap/pkg/backend"
	"github.com/mortenson/solvedmap/pkg/pathfind"
	"github.com/mortenson/solvedmap/proto"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// renderKey identifies a cached render. The index never changes, so the
// endpoints and route flag are enough.
type renderKey struct {
	Start     backend.Coordinate
	Target    backend.Coordinate
	WithRoute bool
}

type rendered struct {
	grid  *backend.Grid
	route pathfind.Route
}

// MapServer renders solved maps for a fixed set of obstacles.
type MapServer struct {
	Index    *backend.ObstacleIndex
	MaxCells int64
	cache    *lru.Cache[renderKey, rendered]
}

// NewMapServer constructs a new map server. cacheSize is the number of
// rendered maps kept in memory, maxCells the largest viewport area served.
func NewMapServer(index *backend.ObstacleIndex, cacheSize int, maxCells int64) (*MapServer, error) {
	if index == nil {
		return nil, fmt.Errorf("obstacle index is nil: %w", backend.ErrInvalidArgument)
	}
	if maxCells <= 0 {
		return nil, fmt.Errorf("max cells must be positive: %w", backend.ErrInvalidArgument)
	}
	cache, err := lru.New[renderKey, rendered](cacheSize)
	if err != nil {
		return nil, err
	}
	return &MapServer{Index: index, MaxCells: maxCells, cache: cache}, nil
}

// checkViewport rejects requests whose padded viewport does not fit the
// wire coordinates or exceeds MaxCells. Bounds are computed in int64 from
// the int32 inputs so nothing here can overflow.
func (s *MapServer) checkViewport(start *proto.Coordinate, target *proto.Coordinate) error {
	minX := int64(min(start.X, target.X)) - backend.Padding
	minY := int64(min(start.Y, target.Y)) - backend.Padding
	maxX := int64(max(start.X, target.X)) + backend.Padding
	maxY := int64(max(start.Y, target.Y)) + backend.Padding
	if minX < math.MinInt32 || minY < math.MinInt32 || maxX > math.MaxInt32 || maxY > math.MaxInt32 {
		return fmt.Errorf("viewport exceeds coordinate range: %w", backend.ErrInvalidArgument)
	}
	rows := maxY - minY + 1
	cols := maxX - minX + 1
	if rows > s.MaxCells/cols {
		return fmt.Errorf("viewport %dx%d exceeds %d cells: %w", cols, rows, s.MaxCells, backend.ErrInvalidArgument)
	}
	return nil
}

// Render implements proto.MapServiceServer.
func (s *MapServer) Render(ctx context.Context, req *proto.RenderRequest) (*proto.RenderResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.Error(codes.Canceled, err.Error())
	}
	resp, err := s.render(req)
	if errors.Is(err, backend.ErrInvalidArgument) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func (s *MapServer) render(req *proto.RenderRequest) (*proto.RenderResponse, error) {
	if req.GetStart() == nil || req.GetTarget() == nil {
		return nil, fmt.Errorf("start and target are required: %w", backend.ErrInvalidArgument)
	}
	// Also bounds the tile map built by pathfind.FindPath.
	if err := s.checkViewport(req.Start, req.Target); err != nil {
		return nil, err
	}
	requestID := req.RequestId
	if requestID == "" {
		requestID = uuid.New().String()
	}
	key := renderKey{
		Start:     proto.GetBackendCoordinate(req.Start),
		Target:    proto.GetBackendCoordinate(req.Target),
		WithRoute: req.WithRoute,
	}
	result, ok := s.cache.Get(key)
	if !ok {
		grid, err := backend.RenderGrid(key.Start, key.Target, s.Index)
		if err != nil {
			return nil, err
		}
		result = rendered{grid: grid}
		if key.WithRoute {
			result.route = pathfind.FindPath(key.Start, key.Target, s.Index)
			result.grid = pathfind.Overlay(grid, result.route)
		}
		s.cache.Add(key, result)
	}
	log.WithFields(log.Fields{
		"request": requestID,
		"start":   key.Start,
		"target":  key.Target,
		"cached":  ok,
	}).Info("rendered map")
	resp := &proto.RenderResponse{
		RequestId:   requestID,
		Map:         result.grid.String(),
		Rows:        int32(result.grid.Rows()),
		Cols:        int32(result.grid.Cols()),
		TopLeft:     proto.GetProtoCoordinate(result.grid.TopLeft),
		BottomRight: proto.GetProtoCoordinate(result.grid.BottomRight),
		RouteFound:  result.route.Found,
		RenderedAt:  ptypes.TimestampNow(),
	}
	if key.WithRoute {
		resp.Route = proto.GetProtoRoute(result.route.Steps)
	}
	return resp, nil
}
