package mux

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"ridethebus-server/pkg/playable"
	"ridethebus-server/pkg/ridethebus"
)

func TestGetGame(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	var state ridethebus.State
	assertGet(t, ts, "/game", &state, 200)

	a.Equal(ridethebus.StageStart, state.Stage)
	a.Equal(100, state.Balance)
	a.Equal(10, state.DefaultBet)
	a.Equal(0, state.CurrentBet)
	a.Equal(52, state.CardsRemaining)
}

func TestPostGameCommand(t *testing.T) {
	a := assert.New(t)
	m := newTestMux(t)
	ts := httptest.NewServer(m)
	defer ts.Close()

	// rejects malformed payloads
	assertPost(t, ts, "/game/command", "not json", nil, 400)

	var response playable.Response
	assertPost(t, ts, "/game/command", playable.PayloadIn{Action: "startRound"}, &response, 200)
	a.Equal("OK", response.Value)

	var state ridethebus.State
	assertGet(t, ts, "/game", &state, 200)
	a.Equal(ridethebus.StageBetting, state.Stage)

	// a state-changing command persists the wallet
	_, _, err := m.store.Load()
	a.NoError(err)

	// an unknown action is a bad request
	var errResp errorResponse
	assertPost(t, ts, "/game/command", playable.PayloadIn{Action: "dance"}, &errResp, 400)
	a.Equal("unknown action: dance", errResp.Message)

	// a guess out of stage is rejected without changing state
	assertPost(t, ts, "/game/command", playable.PayloadIn{
		Action:         "guessColor",
		AdditionalData: playable.AdditionalData{"color": "red"},
	}, &errResp, 400)
	a.Equal("cannot guess color from stage: betting", errResp.Message)

	assertPost(t, ts, "/game/command", playable.PayloadIn{
		Action:         "placeBet",
		AdditionalData: playable.AdditionalData{"amount": float64(10)},
	}, &response, 200)
	a.Equal("OK", response.Value)

	assertGet(t, ts, "/game", &state, 200)
	a.Equal(ridethebus.StageGuessColor, state.Stage)
	a.Equal(90, state.Balance)
	a.Equal(10, state.CurrentBet)

	// the saved balance reflects the debited bet
	balance, highScore, err := m.store.Load()
	a.NoError(err)
	a.Equal(90, balance)
	a.Equal(100, highScore)
}

func TestGameWS(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/game/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	a.NoError(err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	defer conn.Close()

	// the renderer gets the current state on connect
	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))

	var msg playable.Response
	a.NoError(conn.ReadJSON(&msg))
	a.Equal("state", msg.Key)

	data, ok := msg.Data.(map[string]interface{})
	a.True(ok)
	a.Equal("start", data["stage"])

	// a command over REST pushes fresh state to the socket
	var response playable.Response
	assertPost(t, ts, "/game/command", playable.PayloadIn{Action: "startRound"}, &response, 200)

	a.NoError(conn.ReadJSON(&msg))
	a.Equal("state", msg.Key)

	data, ok = msg.Data.(map[string]interface{})
	a.True(ok)
	a.Equal("betting", data["stage"])
}
