package proto

import (
	"testing"

	"github.com/mortenson/solvedmap/pkg/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestRouteConversion(t *testing.T) {
	route := []backend.Coordinate{{X: -1, Y: 2}, {X: 0, Y: 2}}
	assert.Equal(t, route, GetBackendRoute(GetProtoRoute(route)))
	assert.Empty(t, GetBackendRoute(nil))
}

func TestJSONCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	data, err := codec.Marshal(&RenderRequest{Start: &Coordinate{X: 1, Y: -1}, Target: &Coordinate{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start": {"x": 1, "y": -1}, "target": {"x": 0, "y": 0}}`, string(data))
}
