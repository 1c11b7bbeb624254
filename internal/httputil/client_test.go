package httputil

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respWith(encoding string, body []byte) *http.Response {
	h := http.Header{}
	if encoding != "" {
		h.Set("Content-Encoding", encoding)
	}
	return &http.Response{
		Header: h,
		Body:   io.NopCloser(bytes.NewReader(body)),
	}
}

func TestReadBodyPlain(t *testing.T) {
	got, err := ReadBody(respWith("", []byte("<html>page</html>")))
	require.NoError(t, err)
	assert.Equal(t, "<html>page</html>", string(got))
}

func TestReadBodyGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("<html>gzipped</html>"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	got, err := ReadBody(respWith("gzip", buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "<html>gzipped</html>", string(got))
}

func TestReadBodyBrotli(t *testing.T) {
	var buf bytes.Buffer
	br := brotli.NewWriter(&buf)
	_, err := br.Write([]byte("<html>brotli</html>"))
	require.NoError(t, err)
	require.NoError(t, br.Close())

	got, err := ReadBody(respWith("br", buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "<html>brotli</html>", string(got))
}
