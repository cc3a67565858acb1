package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"ridethebus-server/pkg/ridethebus"
	"ridethebus-server/pkg/wallet"
)

func newTestMux(t *testing.T) *Mux {
	t.Helper()

	game, err := ridethebus.NewGame(logrus.StandardLogger(), ridethebus.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	store := wallet.NewStore(filepath.Join(t.TempDir(), "balance.txt"))
	return NewMux("v-test", game, store)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	resp := assertDo(t, req, respObj, statusCode)
	if resp != nil {
		_ = resp.Body.Close()
	}
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp := assertDo(t, req, respObj, statusCode)
	if resp != nil {
		_ = resp.Body.Close()
	}
}
