package socketserver

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/goval-community/homeval/internal/consts"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/logger"
)

// Client pumps frames between one websocket and its session.
type Client struct {
	session  *Session
	conn     *websocket.Conn
	router   *Router
	sessions *SessionManager
	log      *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func newClient(s *Session, conn *websocket.Conn, router *Router, sessions *SessionManager) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		session:  s,
		conn:     conn,
		router:   router,
		sessions: sessions,
		log:      logger.Named("ws"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// ReadPump decodes inbound frames and hands them to the router. When the
// connection ends the session is closed.
func (c *Client) ReadPump() {
	defer func() {
		c.router.CloseSession(c.session)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(consts.MaxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(consts.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(consts.PongWait))
	})

	for {
		kind, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Error("Session %d read error: %v", c.session.ID, err)
			}
			return
		}
		if kind != websocket.BinaryMessage {
			c.log.Debug("Session %d sent a non-binary frame, dropping", c.session.ID)
			continue
		}

		cmd, err := c.sessions.Decode(c.session, frame)
		if err != nil {
			c.log.Warn("Dropping frame: %v", err)
			continue
		}
		c.router.Dispatch(c.session, cmd)
	}
}

// WritePump encodes everything queued on the session outbox. It returns
// once the outbox is closed and drained or a write fails.
func (c *Client) WritePump() {
	go c.pinger()
	defer func() {
		c.cancel()
		c.conn.Close()
	}()

	for {
		cmd, err := c.session.Outbox.Receive(c.ctx)
		if err != nil {
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(consts.WriteWait))
			return
		}

		frame, err := goval.Encode(cmd)
		if err != nil {
			c.log.Error("Session %d dropped command: %v", c.session.ID, err)
			continue
		}

		_ = c.conn.SetWriteDeadline(time.Now().Add(consts.WriteWait))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			c.log.Error("Session %d write failed: %v", c.session.ID, err)
			return
		}
	}
}

// pinger keeps the peer's read deadline moving. WriteControl may run
// alongside WriteMessage.
func (c *Client) pinger() {
	ticker := time.NewTicker(consts.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(consts.WriteWait)); err != nil {
				return
			}
		}
	}
}
