package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// client is a renderer connected over a websocket
type client struct {
	conn *websocket.Conn
	send chan interface{}
}

func (c *client) trySend(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (m *Mux) getGameWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		c := &client{
			conn: conn,
			send: make(chan interface{}, 256),
		}

		m.registerClient(c)
		defer func() {
			m.unregisterClient(c)
			_ = conn.Close()
		}()

		// the renderer gets the current state as soon as it connects
		m.gameMu.Lock()
		state := m.game.State()
		m.gameMu.Unlock()
		c.trySend(stateMessage(state))

		go m.webSocketWriteLoop(c)
		m.webSocketReadLoop(c)
	}
}

func (m *Mux) webSocketWriteLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-c.send:
			if !ok {
				return
			}

			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}
}

// webSocketReadLoop drains the connection so pongs are processed and a
// closed connection is noticed. Commands arrive over the REST endpoint.
func (m *Mux) webSocketReadLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
