package realtime

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"social-docstore/core"
	"social-docstore/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ gateway.Notifier = (*Hub)(nil)

func TestHub_NotifyWithoutSubscribers(t *testing.T) {
	hub := NewHub([]string{"*"})
	defer hub.Close()

	assert.NotPanics(t, func() {
		hub.Notify(core.CollectionStorys, gateway.ActionLiked, 1, core.Story{ID: 1})
	})
}

func TestHub_HandshakeOverPolling(t *testing.T) {
	hub := NewHub([]string{"*"})
	defer hub.Close()

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/socket.io/?EIO=4&transport=polling")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCorsOrigin(t *testing.T) {
	assert.Equal(t, "*", corsOrigin(nil))
	assert.Equal(t, "*", corsOrigin([]string{"http://a.test", "*"}))
	assert.Equal(t, "http://a.test", corsOrigin([]string{"http://a.test"}))
	assert.Equal(t, []any{"http://a.test", "http://b.test"}, corsOrigin([]string{"http://a.test", "http://b.test"}))
}

func TestHub_HandshakeAllowsEveryConfiguredOrigin(t *testing.T) {
	hub := NewHub([]string{"http://a.test", "http://b.test"})
	defer hub.Close()

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/socket.io/?EIO=4&transport=polling", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://b.test")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://b.test", resp.Header.Get("Access-Control-Allow-Origin"))
}
