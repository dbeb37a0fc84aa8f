package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/mortenson/solvedmap/proto"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	URIMap = "/map/:sx/:sy/:tx/:ty"
	URIWS  = "/ws"
)

// HTTPHandler exposes the map server over plain HTTP and websockets.
type HTTPHandler struct {
	Server   *MapServer
	Upgrader *websocket.Upgrader
	router   *way.Router
}

// NewHTTPHandler builds the routes for s.
func NewHTTPHandler(s *MapServer) *HTTPHandler {
	h := &HTTPHandler{
		Server:   s,
		Upgrader: &websocket.Upgrader{},
		router:   way.NewRouter(),
	}
	h.router.HandleFunc("GET", URIMap, h.HandleMap())
	h.router.HandleFunc("GET", URIWS, h.HandleWebsocket())
	return h
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// HandleMap renders a map as text, e.g. GET /map/0/0/3/4?route=1.
func (h *HTTPHandler) HandleMap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var values [4]int32
		for i, name := range []string{"sx", "sy", "tx", "ty"} {
			value, err := strconv.ParseInt(way.Param(ctx, name), 10, 32)
			if err != nil {
				http.Error(w, "invalid coordinate "+name, http.StatusBadRequest)
				return
			}
			values[i] = int32(value)
		}
		withRoute, _ := strconv.ParseBool(r.URL.Query().Get("route"))
		resp, err := h.Server.Render(ctx, &proto.RenderRequest{
			Start:     &proto.Coordinate{X: values[0], Y: values[1]},
			Target:    &proto.Coordinate{X: values[2], Y: values[3]},
			WithRoute: withRoute,
		})
		if err != nil {
			code := http.StatusInternalServerError
			if status.Code(err) == codes.InvalidArgument {
				code = http.StatusBadRequest
			}
			http.Error(w, err.Error(), code)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Request-Id", resp.RequestId)
		w.Write([]byte(resp.Map))
	}
}

// wsError is sent back on the websocket when a request can not be served.
type wsError struct {
	Error string `json:"error"`
}

// HandleWebsocket answers every RenderRequest message with a RenderResponse.
func (h *HTTPHandler) HandleWebsocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		con, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade err %v", err)
			return
		}
		defer con.Close()
		log.Info("websocket client connected")
		for {
			_, message, err := con.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warnf("websocket read err %v", err)
				}
				return
			}
			var req proto.RenderRequest
			var reply interface{}
			if err := json.Unmarshal(message, &req); err != nil {
				reply = wsError{Error: err.Error()}
			} else if resp, err := h.Server.Render(r.Context(), &req); err != nil {
				reply = wsError{Error: status.Convert(err).Message()}
			} else {
				reply = resp
			}
			if err := con.WriteJSON(reply); err != nil {
				log.Errorf("websocket write err %v", err)
				return
			}
		}
	}
}
