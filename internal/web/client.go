package web

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/codefionn/calcpad/internal/consts"
	"github.com/codefionn/calcpad/internal/display"
	"github.com/codefionn/calcpad/internal/keypad"
	"github.com/codefionn/calcpad/internal/logger"
	"github.com/codefionn/calcpad/internal/store"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = consts.BufferSize1KB
)

// Client is one browser page: a WebSocket connection and the calculator
// session it drives. The session is only touched from ReadPump.
type Client struct {
	ID      string
	hub     *Hub
	conn    *websocket.Conn
	send    chan *WebMessage
	session *display.Session
	store   store.Store
	log     *logger.Logger

	sendMu sync.Mutex
	closed bool
}

// NewClient creates a client for session id, restoring its last snapshot
func NewClient(ctx context.Context, id string, hub *Hub, conn *websocket.Conn, st store.Store) *Client {
	client := &Client{
		ID:      id,
		hub:     hub,
		conn:    conn,
		send:    make(chan *WebMessage, 64),
		session: display.NewSession(),
		store:   st,
		log:     logger.Global().WithPrefix("client:" + id),
	}

	if st != nil {
		snap, found, err := st.Load(ctx, id)
		if err != nil {
			client.log.Warn("failed to load snapshot: %v", err)
		} else if found {
			client.session.Restore(snap)
			client.log.Debug("restored %q (%s)", snap.Text, snap.State)
		}
	}

	return client
}

// ReadPump reads key presses from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	first := c.displayMessage(nil)
	first.Session = c.ID
	c.sendResponse(first)

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Error("WebSocket read error: %v", err)
			}
			break
		}

		var msg WebMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.log.Error("Failed to unmarshal message: %v", err)
			c.sendResponse(&WebMessage{Type: MessageTypeError, Error: "invalid message"})
			continue
		}

		c.handleMessage(&msg)
	}
}

// WritePump pumps messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.log.Error("Failed to write message: %v", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(msg *WebMessage) {
	switch msg.Type {
	case MessageTypeKey:
		action, ok := keypad.Lookup(msg.Key)
		if !ok {
			c.sendResponse(&WebMessage{Type: MessageTypeError, Key: msg.Key, Error: "unknown key"})
			return
		}
		accepted := c.session.Apply(action)
		c.persist()
		c.sendDisplay(&accepted)

	case MessageTypeSync:
		c.sendDisplay(nil)

	default:
		c.log.Warn("Unknown message type: %s", msg.Type)
		c.sendResponse(&WebMessage{Type: MessageTypeError, Error: "unknown message type"})
	}
}

func (c *Client) persist() {
	if c.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), consts.Timeout5Seconds)
	defer cancel()
	if err := c.store.Save(ctx, c.ID, c.session.Snapshot()); err != nil {
		c.log.Warn("failed to save snapshot: %v", err)
	}
}

func (c *Client) sendDisplay(accepted *bool) {
	c.sendResponse(c.displayMessage(accepted))
}

func (c *Client) displayMessage(accepted *bool) *WebMessage {
	return &WebMessage{
		Type:     MessageTypeDisplay,
		Text:     c.session.Text(),
		State:    c.session.State().String(),
		Accepted: accepted,
	}
}

// sendResponse queues a message for WritePump, dropping it if the client is
// closed or its queue is full
func (c *Client) sendResponse(msg *WebMessage) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
		c.log.Warn("Client send channel full, dropping message")
	}
}

func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
