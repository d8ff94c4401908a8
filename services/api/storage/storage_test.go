package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutUsesResponseURL(t *testing.T) {
	var gotAuth, gotType, gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.example/documentos/a.pdf"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "https://fallback.example", "tok", nil)
	obj, err := client.Put(context.Background(), "documentos/a.pdf", []byte("%PDF"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/documentos/a.pdf", obj.URL)
	assert.Equal(t, "documentos/a.pdf", obj.Key)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, "/documentos/a.pdf", gotPath)
	assert.Equal(t, []byte("%PDF"), gotBody)
}

func TestPutFallsBackToBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "https://blob.example/", "", nil)
	obj, err := client.Put(context.Background(), "documentos/b.png", []byte{1}, "")
	require.NoError(t, err)
	assert.Equal(t, "https://blob.example/documentos/b.png", obj.URL)
}

func TestPutRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := New(srv.URL, "", "bad", nil)
	_, err := client.Put(context.Background(), "documentos/c.txt", []byte("x"), "text/plain")
	assert.ErrorContains(t, err, "status 403")
}

func TestPutNotConfigured(t *testing.T) {
	_, err := New("", "", "", nil).Put(context.Background(), "k", nil, "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	key := NewKey("relatorio.final.pdf", now)
	assert.Regexp(t, regexp.MustCompile(`^documentos/1700000000123-[0-9a-f]{8}\.pdf$`), key)

	assert.Regexp(t, regexp.MustCompile(`^documentos/1700000000123-[0-9a-f]{8}\.LEIAME$`), NewKey("LEIAME", now))
	assert.NotEqual(t, NewKey("a.txt", now), NewKey("a.txt", now))
}

func TestDecodeUpload(t *testing.T) {
	data, err := DecodeUpload("data:text/plain;base64,b2zDoQ==")
	require.NoError(t, err)
	assert.Equal(t, "olá", string(data))

	data, err = DecodeUpload("b2zDoQ==")
	require.NoError(t, err)
	assert.Equal(t, "olá", string(data))

	_, err = DecodeUpload("!!!")
	assert.Error(t, err)
}
