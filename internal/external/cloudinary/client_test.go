package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	t.Run("should post a signed form upload and return the secure url", func(t *testing.T) {
		// given
		var gotPath string
		var gotForm map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path

			require.NoError(t, r.ParseForm())
			gotForm = map[string]string{
				"file":      r.PostFormValue("file"),
				"folder":    r.PostFormValue("folder"),
				"timestamp": r.PostFormValue("timestamp"),
				"api_key":   r.PostFormValue("api_key"),
				"signature": r.PostFormValue("signature"),
			}

			w.Write([]byte(`{"public_id":"custom_shirts/abc","secure_url":"https://res.cloudinary.com/demo/image/upload/custom_shirts/abc.png"}`))
		}))
		defer server.Close()

		client := New(server.URL, "demo", "api_key", "api_secret", nil)
		client.now = func() time.Time { return time.Unix(1712345678, 0) }

		// when
		upload, err := client.Upload(context.Background(), "data:image/png;base64,AAAA", "custom_shirts")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/v1_1/demo/image/upload", gotPath)
		assert.Equal(t, "data:image/png;base64,AAAA", gotForm["file"])
		assert.Equal(t, "custom_shirts", gotForm["folder"])
		assert.Equal(t, "1712345678", gotForm["timestamp"])
		assert.Equal(t, "api_key", gotForm["api_key"])

		sum := sha1.Sum([]byte("folder=custom_shirts&timestamp=1712345678api_secret"))
		assert.Equal(t, hex.EncodeToString(sum[:]), gotForm["signature"])

		assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/custom_shirts/abc.png", upload.SecureURL)
	})

	t.Run("should surface provider error message", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"Invalid image file"}}`))
		}))
		defer server.Close()

		client := New(server.URL, "demo", "api_key", "api_secret", nil)

		// when
		_, err := client.Upload(context.Background(), "not-an-image", "custom_shirts")

		// then
		assert.ErrorContains(t, err, "Invalid image file")
	})
}
