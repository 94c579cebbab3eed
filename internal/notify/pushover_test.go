package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushoverSend(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = map[string]string{
			"token":    r.PostFormValue("token"),
			"user":     r.PostFormValue("user"),
			"title":    r.PostFormValue("title"),
			"message":  r.PostFormValue("message"),
			"priority": r.PostFormValue("priority"),
		}
		w.Write([]byte(`{"status":1}`))
	}))
	defer srv.Close()

	p := newPushover("user-key", "api-token", srv.URL)
	err := p.Send(context.Background(), "Perfect Order ETB",
		"Perfect Order ETB is in stock\nhttps://example.com/p/1")
	require.NoError(t, err)

	assert.Equal(t, "api-token", form["token"])
	assert.Equal(t, "user-key", form["user"])
	assert.Equal(t, "Perfect Order ETB", form["title"])
	assert.Contains(t, form["message"], "https://example.com/p/1")
	assert.Equal(t, "1", form["priority"])
}

func TestPushoverSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":0,"errors":["user key is invalid"]}`))
	}))
	defer srv.Close()

	p := newPushover("bad", "bad", srv.URL)
	err := p.Send(context.Background(), "title", "message")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestPushoverSendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the port refuses connections

	p := newPushover("user", "token", srv.URL)
	assert.Error(t, p.Send(context.Background(), "title", "message"))
}
