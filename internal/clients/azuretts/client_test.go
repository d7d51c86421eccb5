package azuretts

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *client {
	return &client{
		endpoint:   endpoint,
		key:        "speech-key",
		voice:      "kk-KZ-AigulNeural",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSynthesize(t *testing.T) {
	var gotKey, gotContentType, gotFormat, gotSSML string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		gotContentType = r.Header.Get("Content-Type")
		gotFormat = r.Header.Get("X-Microsoft-OutputFormat")
		body, _ := io.ReadAll(r.Body)
		gotSSML = string(body)
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	audio, err := newTestClient(server.URL).Synthesize(context.Background(), "Сәлем")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, "speech-key", gotKey)
	assert.Equal(t, "application/ssml+xml", gotContentType)
	assert.Equal(t, OutputFormat, gotFormat)
	assert.Contains(t, gotSSML, "<voice name='kk-KZ-AigulNeural'>Сәлем</voice>")
	assert.Contains(t, gotSSML, "xml:lang='kk-KZ'")
}

func TestSynthesizeEscapesText(t *testing.T) {
	var gotSSML string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotSSML = string(body)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Synthesize(context.Background(), `a < b & "c"`)

	require.NoError(t, err)
	assert.Contains(t, gotSSML, "a &lt; b &amp; &quot;c&quot;")
}

func TestSynthesizeStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad key"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Synthesize(context.Background(), "Сәлем")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
}

func TestSynthesizeEmptyAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Synthesize(context.Background(), "Сәлем")

	assert.True(t, errors.Is(err, ErrEmptyAudio))
}
