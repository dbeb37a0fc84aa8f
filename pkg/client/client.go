package client

import (
	"context"
	"time"

	"github.com/golang/protobuf/ptypes"
	"github.com/mortenson/solvedmap/pkg/backend"
	"github.com/mortenson/solvedmap/proto"
	"google.golang.org/grpc"
)

// Result is a map rendered by a remote server.
type Result struct {
	RequestID  string
	Map        string
	Viewport   backend.Viewport
	Route      []backend.Coordinate
	RouteFound bool
	RenderedAt time.Time
}

// MapClient requests solved maps from a server.
type MapClient struct {
	Client proto.MapServiceClient
}

// NewMapClient constructs a new map client on top of conn.
func NewMapClient(conn grpc.ClientConnInterface) *MapClient {
	return &MapClient{
		Client: proto.NewMapServiceClient(conn),
	}
}

// Render asks the server for the map between start and target.
func (c *MapClient) Render(ctx context.Context, start backend.Coordinate, target backend.Coordinate, withRoute bool) (*Result, error) {
	resp, err := c.Client.Render(ctx, &proto.RenderRequest{
		Start:     proto.GetProtoCoordinate(start),
		Target:    proto.GetProtoCoordinate(target),
		WithRoute: withRoute,
	})
	if err != nil {
		return nil, err
	}
	result := &Result{
		RequestID:  resp.RequestId,
		Map:        resp.Map,
		Route:      proto.GetBackendRoute(resp.Route),
		RouteFound: resp.RouteFound,
	}
	if resp.TopLeft != nil && resp.BottomRight != nil {
		result.Viewport = backend.Viewport{
			TopLeft:     proto.GetBackendCoordinate(resp.TopLeft),
			BottomRight: proto.GetBackendCoordinate(resp.BottomRight),
		}
	}
	if resp.RenderedAt != nil {
		renderedAt, err := ptypes.Timestamp(resp.RenderedAt)
		if err != nil {
			return nil, err
		}
		result.RenderedAt = renderedAt
	}
	return result, nil
}

// Grid rebuilds the rendered grid from the map text.
func (result *Result) Grid() *backend.Grid {
	grid := &backend.Grid{Viewport: result.Viewport}
	row := []rune{}
	for _, symbol := range result.Map {
		if symbol == '\n' {
			grid.Cells = append(grid.Cells, row)
			row = []rune{}
			continue
		}
		row = append(row, symbol)
	}
	return grid
}
