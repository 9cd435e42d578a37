package server

import (
	"net/http"

	"market-viewer/src/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// directMessage is a reply addressed to one client.
type directMessage struct {
	client  *Client
	message models.MServerMessage
}

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// handleWebsockets is the main Hub loop. It is the only goroutine that touches
// the client set or closes a client's send channel.
func (s *FastAPIServer) handleWebsockets() {
	for {
		select {
		case <-s.quit:
			for client := range s.clients {
				s.drop(client)
			}
			return

		case client := <-s.register:
			s.clients[client] = struct{}{}
			s.connections.Add(1)
			s.Logger.Info("Client %s connected (%d total)", client.id, len(s.clients))
			// Send current state on connect
			s.deliver(client, stateMessage(s.Provider.State()))

		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				s.drop(client)
			}

		case d := <-s.direct:
			if _, ok := s.clients[d.client]; ok {
				s.deliver(d.client, d.message)
			}

		case <-s.changed:
			message := stateMessage(s.Provider.State())
			for client := range s.clients {
				s.deliver(client, message)
			}
		}
	}
}

// deliver queues a message without blocking. A client whose buffer is full is
// disconnected.
func (s *FastAPIServer) deliver(client *Client, message models.MServerMessage) {
	select {
	case client.send <- message:
	default:
		s.Logger.Warning("Client %s too slow, disconnecting", client.id)
		s.drop(client)
	}
}

func (s *FastAPIServer) drop(client *Client) {
	delete(s.clients, client)
	s.connections.Add(-1)
	close(client.send)
}

// -----------------------------------------------------------------------------

// notify is registered with the state provider. It must not block.
func (s *FastAPIServer) notify(models.MPollingState) {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Warning("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		hub:  s,
		conn: conn,
		send: make(chan models.MServerMessage, sendBuffer),
	}

	select {
	case s.register <- client:
	case <-s.quit:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
