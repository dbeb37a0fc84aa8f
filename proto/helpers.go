package proto

import "github.com/mortenson/solvedmap/pkg/backend"

func GetBackendCoordinate(protoCoordinate *Coordinate) backend.Coordinate {
	return backend.Coordinate{
		X: int(protoCoordinate.X),
		Y: int(protoCoordinate.Y),
	}
}

func GetProtoCoordinate(coordinate backend.Coordinate) *Coordinate {
	return &Coordinate{
		X: int32(coordinate.X),
		Y: int32(coordinate.Y),
	}
}

func GetBackendRoute(protoRoute []*Coordinate) []backend.Coordinate {
	route := make([]backend.Coordinate, 0, len(protoRoute))
	for _, step := range protoRoute {
		route = append(route, GetBackendCoordinate(step))
	}
	return route
}

func GetProtoRoute(route []backend.Coordinate) []*Coordinate {
	protoRoute := make([]*Coordinate, 0, len(route))
	for _, step := range route {
		protoRoute = append(protoRoute, GetProtoCoordinate(step))
	}
	return protoRoute
}
