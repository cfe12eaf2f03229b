// Package cloudinary is a thin client for the Cloudinary upload API.
package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shirtpay/internal/domain/payment"
)

type Client struct {
	BaseURL   string
	CloudName string
	APIKey    string
	APISecret string
	HTTP      *http.Client

	now func() time.Time
}

func New(baseURL, cloudName, apiKey, apiSecret string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		BaseURL:   baseURL,
		CloudName: cloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
		HTTP:      httpClient,
		now:       time.Now,
	}
}

type uploadResp struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends a data URL to the image upload endpoint as a signed
// form-encoded request and returns the hosted secure URL.
func (c *Client) Upload(ctx context.Context, dataURL, folder string) (payment.Upload, error) {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	form := url.Values{}
	form.Set("file", dataURL)
	form.Set("folder", folder)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.APIKey)
	form.Set("signature", c.sign(folder, timestamp))

	uploadURL := fmt.Sprintf("%s/v1_1/%s/image/upload", c.BaseURL, c.CloudName)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return payment.Upload{}, fmt.Errorf("create upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return payment.Upload{}, fmt.Errorf("http upload request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		var envelope errorEnvelope
		_ = json.Unmarshal(raw, &envelope)
		if envelope.Error.Message != "" {
			return payment.Upload{}, fmt.Errorf("cloudinary %s: %s", resp.Status, envelope.Error.Message)
		}
		return payment.Upload{}, fmt.Errorf("cloudinary %s: %s", resp.Status, string(raw))
	}

	var out uploadResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return payment.Upload{}, fmt.Errorf("unmarshal upload response: %w", err)
	}

	return payment.Upload{SecureURL: out.SecureURL}, nil
}

// sign computes the Cloudinary request signature: the SHA-1 hex digest of
// the sorted non-file parameters concatenated with the API secret.
func (c *Client) sign(folder, timestamp string) string {
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", folder, timestamp, c.APISecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
