package server

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"market-viewer/src/models"

	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	writeWait      = 2 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024 // commands are tiny
	sendBuffer     = 16
)

// Client commands.
const (
	cmdRefresh = "refresh"
	cmdFilter  = "filter"
	cmdUnwatch = "unwatch"
)

// -----------------------------------------------------------------------------
// Client Structure
// -----------------------------------------------------------------------------

// Client is one websocket viewer. After a filter command the client watches
// that category and query, and every state push is followed by the matching
// instruments rendered from the new snapshot.
type Client struct {
	id    string
	hub   *FastAPIServer
	conn  *websocket.Conn
	send  chan models.MServerMessage
	watch atomic.Pointer[models.MClientCommand]
}

// -----------------------------------------------------------------------------
// readPump - decodes commands and watches the connection
// -----------------------------------------------------------------------------

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.quit:
		}
		c.conn.Close()
		c.hub.Logger.Info("Client %s disconnected", c.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.Logger.Info("WebSocket error from %s: %v", c.id, err)
			}
			return
		}

		var cmd models.MClientCommand
		if err := json.Unmarshal(raw, &cmd); err != nil {
			c.hub.Logger.Info("Failed to parse command from %s: %v, disconnecting client", c.id, err)
			return
		}
		c.reply(c.handleCommand(cmd))
	}
}

// -----------------------------------------------------------------------------

// handleCommand answers one command. Unknown commands get an error message
// and leave the connection open.
func (c *Client) handleCommand(cmd models.MClientCommand) models.MServerMessage {
	switch cmd.Command {
	case cmdRefresh:
		if err := c.hub.Provider.RefreshNow(); err != nil {
			return models.MServerMessage{Type: "error", Error: err.Error()}
		}
		return stateMessage(c.hub.Provider.State())

	case cmdFilter:
		c.watch.Store(&cmd)
		return c.instrumentsMessage(cmd, c.hub.Provider.State())

	case cmdUnwatch:
		c.watch.Store(nil)
		return stateMessage(c.hub.Provider.State())
	}
	return models.MServerMessage{Type: "error", Error: fmt.Sprintf("unknown command: %s", cmd.Command)}
}

func (c *Client) instrumentsMessage(cmd models.MClientCommand, st models.MPollingState) models.MServerMessage {
	category, items := c.hub.instruments(st, cmd.Category, cmd.Query)
	return models.MServerMessage{
		Type:        "instruments",
		Category:    category,
		Query:       cmd.Query,
		Instruments: items,
	}
}

// reply routes a direct answer through the hub, which owns the send channel.
func (c *Client) reply(message models.MServerMessage) {
	select {
	case c.hub.direct <- directMessage{client: c, message: message}:
	case <-c.hub.quit:
	}
}

// -----------------------------------------------------------------------------
// writePump - sends queued messages and keeps the connection alive
// -----------------------------------------------------------------------------

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				// Hub closed the channel
				c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.write(message); err != nil {
				c.hub.Logger.Info("Write error for %s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// write sends one message. A state push to a watching client is followed by
// the watched instruments from the current state.
func (c *Client) write(message models.MServerMessage) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(message); err != nil {
		return err
	}

	watch := c.watch.Load()
	if message.Type != "state" || message.State == nil || watch == nil {
		return nil
	}
	follow := c.instrumentsMessage(*watch, c.hub.Provider.State())
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(follow)
}
