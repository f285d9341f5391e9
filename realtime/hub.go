// Package realtime pushes collection change notifications to socket.io
// clients. A client emits "join-room" with a collection name and then
// receives a "collection-changed" event after every mutation of that
// collection.
package realtime

import (
	"net/http"
	"slices"

	"social-docstore/core"
	"social-docstore/metrics"

	"github.com/sirupsen/logrus"
	"github.com/zishang520/engine.io/v2/types"
	socketio "github.com/zishang520/socket.io/v2/socket"
)

const (
	EventJoinRoom          = "join-room"
	EventCollectionChanged = "collection-changed"
)

// ChangeEvent is the payload of a collection-changed event.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         int    `json:"id"`
	Record     any    `json:"record,omitempty"`
}

var collections = map[string]bool{
	core.CollectionUsuarios:    true,
	core.CollectionPublicacoes: true,
	core.CollectionStorys:      true,
}

type Hub struct {
	io *socketio.Server
}

// NewHub accepts the same origin list as the HTTP CORS layer.
func NewHub(allowedOrigins []string) *Hub {
	opts := socketio.DefaultServerOptions()
	opts.SetPath("/socket.io")
	opts.SetAllowEIO3(true)
	opts.SetCors(&types.Cors{
		Origin:      corsOrigin(allowedOrigins),
		Credentials: true,
	})
	ioo := socketio.NewServer(nil, opts)

	ioo.On("connection", func(clients ...any) {
		socket := clients[0].(*socketio.Socket)
		me := socket.Id()
		log := logrus.WithField("socket_id", me)
		log.Debug("Realtime client connected")

		socket.On(EventJoinRoom, func(datas ...any) {
			if len(datas) == 0 {
				return
			}
			name, ok := datas[0].(string)
			if !ok || !collections[name] {
				log.WithField("room", datas[0]).Warn("Rejected join for unknown collection")
				return
			}
			socket.Join(socketio.Room(name))
			log.WithField("room", name).Debug("Realtime client joined collection")
		})
		socket.On("disconnect", func(datas ...any) {
			socket.RemoveAllListeners("")
			log.Debug("Realtime client disconnected")
		})
	})

	return &Hub{io: ioo}
}

// corsOrigin converts an origin list to the form engine.io expects: a
// single string, or a list of strings.
func corsOrigin(origins []string) any {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return "*"
	}
	if len(origins) == 1 {
		return origins[0]
	}
	list := make([]any, len(origins))
	for i, o := range origins {
		list[i] = o
	}
	return list
}

// Notify emits a change event to every client subscribed to collection.
func (h *Hub) Notify(collection, action string, id int, record any) {
	h.io.To(socketio.Room(collection)).Emit(EventCollectionChanged, ChangeEvent{
		Collection: collection,
		Action:     action,
		ID:         id,
		Record:     record,
	})
	metrics.RealtimeEvents.WithLabelValues(collection).Inc()
}

func (h *Hub) Handler() http.Handler {
	return h.io.ServeHandler(nil)
}

func (h *Hub) Close() {
	h.io.Close(nil)
}
