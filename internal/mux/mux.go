package mux

import (
	"net/http"
	"ridethebus-server/pkg/ridethebus"
	"ridethebus-server/pkg/wallet"
	"sync"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Mux handles HTTP requests from the renderer client.
// The game engine is single-threaded by contract; gameMu provides the
// command serialization the engine expects from its caller.
type Mux struct {
	*gmux.Router
	version string
	game    *ridethebus.Game
	store   *wallet.Store

	gameMu sync.Mutex

	clientsMu sync.Mutex
	clients   map[*client]bool
}

// NewMux returns a new HTTP mux
func NewMux(version string, game *ridethebus.Game, store *wallet.Store) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		game:    game,
		store:   store,
		clients: make(map[*client]bool),
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodGet).Path("/game").Handler(this.getGame())
	this.Methods(http.MethodPost).Path("/game/command").Handler(this.postGameCommand())
	this.Methods(http.MethodGet).Path("/game/ws").Handler(this.getGameWS())

	go this.fanOutLogs()

	return this
}

// fanOutLogs forwards game log messages to every connected client
func (m *Mux) fanOutLogs() {
	for messages := range m.game.LogChan() {
		m.broadcast(logsMessage(messages))
	}
}

func (m *Mux) registerClient(c *client) {
	m.clientsMu.Lock()
	defer m.clientsMu.Unlock()
	m.clients[c] = true
}

func (m *Mux) unregisterClient(c *client) {
	m.clientsMu.Lock()
	defer m.clientsMu.Unlock()
	delete(m.clients, c)
}

func (m *Mux) broadcast(msg interface{}) {
	m.clientsMu.Lock()
	defer m.clientsMu.Unlock()

	for c := range m.clients {
		if !c.trySend(msg) {
			logrus.Warn("client send buffer is full, dropping message")
		}
	}
}

// saveWallet persists the balance after a state-changing command.
// Persistence is a side effect of this layer, not of the engine.
func (m *Mux) saveWallet(state *ridethebus.State) {
	if err := m.store.Save(state.Balance, state.HighScore); err != nil {
		logrus.WithError(err).WithField("file", m.store.Path()).Error("could not save wallet")
	}
}
