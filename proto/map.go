package proto

import (
	"context"

	"github.com/golang/protobuf/ptypes/timestamp"
	"google.golang.org/grpc"
)

// Coordinate is a grid position on the wire.
type Coordinate struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// RenderRequest asks for the solved map between two coordinates.
type RenderRequest struct {
	RequestId string      `json:"request_id,omitempty"`
	Start     *Coordinate `json:"start"`
	Target    *Coordinate `json:"target"`
	WithRoute bool        `json:"with_route,omitempty"`
}

func (r *RenderRequest) GetStart() *Coordinate {
	if r == nil {
		return nil
	}
	return r.Start
}

func (r *RenderRequest) GetTarget() *Coordinate {
	if r == nil {
		return nil
	}
	return r.Target
}

// RenderResponse carries a rendered map and, when requested, the route.
type RenderResponse struct {
	RequestId   string               `json:"request_id"`
	Map         string               `json:"map"`
	Rows        int32                `json:"rows"`
	Cols        int32                `json:"cols"`
	TopLeft     *Coordinate          `json:"top_left"`
	BottomRight *Coordinate          `json:"bottom_right"`
	Route       []*Coordinate        `json:"route,omitempty"`
	RouteFound  bool                 `json:"route_found,omitempty"`
	RenderedAt  *timestamp.Timestamp `json:"rendered_at,omitempty"`
}

// MapServiceClient is the client API for MapService.
type MapServiceClient interface {
	Render(ctx context.Context, in *RenderRequest, opts ...grpc.CallOption) (*RenderResponse, error)
}

type mapServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMapServiceClient returns a client that talks json to the server.
func NewMapServiceClient(cc grpc.ClientConnInterface) MapServiceClient {
	return &mapServiceClient{cc}
}

func (c *mapServiceClient) Render(ctx context.Context, in *RenderRequest, opts ...grpc.CallOption) (*RenderResponse, error) {
	out := new(RenderResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	err := c.cc.Invoke(ctx, "/solvedmap.MapService/Render", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MapServiceServer is the server API for MapService.
type MapServiceServer interface {
	Render(context.Context, *RenderRequest) (*RenderResponse, error)
}

// RegisterMapServiceServer registers srv on s.
func RegisterMapServiceServer(s *grpc.Server, srv MapServiceServer) {
	s.RegisterService(&_MapService_serviceDesc, srv)
}

func _MapService_Render_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MapServiceServer).Render(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/solvedmap.MapService/Render",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MapServiceServer).Render(ctx, req.(*RenderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _MapService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "solvedmap.MapService",
	HandlerType: (*MapServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Render",
			Handler:    _MapService_Render_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "solvedmap.proto",
}
