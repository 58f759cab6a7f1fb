package hub

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/AdityaSingh6666/Chat-Room/internal/config"
	"github.com/AdityaSingh6666/Chat-Room/pkg/log"
)

// Client is one live websocket connection. Outbound events are queued on a
// buffered channel drained by WritePump; the channel is closed by the hub
// on unregister.
type Client struct {
	ID string

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	cfg  config.WebSocketConfig
}

func NewClient(id string, h *Hub, conn *websocket.Conn, cfg config.WebSocketConfig) *Client {
	return &Client{
		ID:   id,
		hub:  h,
		conn: conn,
		send: make(chan []byte, cfg.SendBuffer),
		cfg:  cfg,
	}
}

// RemoteAddr reports the peer address for logging.
func (c *Client) RemoteAddr() string {
	if c.conn == nil {
		return ""
	}
	return c.conn.RemoteAddr().String()
}

// enqueue offers an event to the client without blocking. A full buffer
// means the peer has stopped draining; the caller drops the client.
func (c *Client) enqueue(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// ReadPump pumps inbound frames to the handler until the connection dies.
// It must be the only reader of the connection. On exit the client is
// unregistered from the hub.
func (c *Client) ReadPump(handle func(*Client, []byte)) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.L().Debug().Str(log.FieldConnID, c.ID).Err(err).Msg("websocket read error")
			}
			break
		}

		handle(c, message)
	}
}

// WritePump drains the send channel to the connection and keeps the peer
// alive with periodic pings. It must be the only writer of the connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
