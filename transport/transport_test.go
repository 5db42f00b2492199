//

package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, "01100001", string(body))
		require.Equal(t, "key123", r.URL.Query().Get("apiKey"))
		_, _ = w.Write([]byte("010"))
	}))
	defer srv.Close()

	tr := New(srv.URL, "key123")
	reply, err := tr.Send("01100001")
	require.NoError(t, err)
	require.Equal(t, "010", reply)
}

func TestSendServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	tr := New(srv.URL, "")
	_, err := tr.Send("010")
	require.Error(t, err)
}
