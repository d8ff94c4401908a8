// Package storage uploads documents to the blob store.
package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned by Put when no blob API URL was set.
var ErrNotConfigured = errors.New("blob storage is not configured")

// Object is a stored blob.
type Object struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Client talks to the blob API.
type Client struct {
	http    *resty.Client
	apiURL  string
	baseURL string
	logger  *zap.Logger
}

// New returns a client for apiURL. baseURL builds public URLs when the API
// response does not carry one.
func New(apiURL, baseURL, token string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")
	if token != "" {
		httpClient.SetAuthToken(token)
	}
	return &Client{
		http:    httpClient,
		apiURL:  strings.TrimRight(apiURL, "/"),
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

type putResponse struct {
	URL string `json:"url"`
}

// Put stores data under key.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) (Object, error) {
	if c.apiURL == "" {
		return Object{}, ErrNotConfigured
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var out putResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		SetResult(&out).
		Put(c.apiURL + "/" + key)
	if err != nil {
		return Object{}, fmt.Errorf("upload %s: %w", key, err)
	}
	if resp.IsError() {
		c.logger.Error("blob upload rejected",
			zap.String("key", key),
			zap.Int("status_code", resp.StatusCode()),
		)
		return Object{}, fmt.Errorf("upload %s: status %d", key, resp.StatusCode())
	}

	url := out.URL
	if url == "" {
		url = c.baseURL + "/" + key
	}
	c.logger.Info("blob stored", zap.String("key", key), zap.Int("bytes", len(data)))
	return Object{URL: url, Key: key}, nil
}

// NewKey builds documentos/<unix-millis>-<8 random chars>.<ext>. The
// extension is the text after the last dot, or the whole name without one.
func NewKey(fileName string, now time.Time) string {
	ext := fileName
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		ext = fileName[i+1:]
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("documentos/%d-%s.%s", now.UnixMilli(), suffix, ext)
}

// DecodeUpload decodes base64 file data, dropping a data URL prefix if present.
func DecodeUpload(fileData string) ([]byte, error) {
	if strings.HasPrefix(fileData, "data:") {
		if i := strings.Index(fileData, ","); i >= 0 {
			fileData = fileData[i+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode file data: %w", err)
	}
	return data, nil
}
