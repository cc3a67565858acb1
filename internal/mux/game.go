package mux

import (
	"net/http"
	"ridethebus-server/pkg/playable"
	"ridethebus-server/pkg/ridethebus"
)

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.gameMu.Lock()
		state := m.game.State()
		m.gameMu.Unlock()

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) postGameCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload playable.PayloadIn
		if !decodeRequest(w, r, &payload) {
			return
		}

		m.gameMu.Lock()
		response, didUpdate, err := m.game.Action(&payload)

		var state *ridethebus.State
		if didUpdate {
			state = m.game.State()
		}
		m.gameMu.Unlock()

		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if didUpdate {
			m.saveWallet(state)
			m.broadcast(stateMessage(state))
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func stateMessage(state *ridethebus.State) *playable.Response {
	return &playable.Response{
		Key:  "state",
		Data: state,
	}
}

func logsMessage(messages []*playable.LogMessage) *playable.Response {
	return &playable.Response{
		Key:  "logs",
		Data: messages,
	}
}
