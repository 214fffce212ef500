package backend

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/chatstack/botadmin/pkg/session"
)

// ErrUnauthorized is returned when the backend rejects the session token. The
// client clears the session before returning it, so a caller seeing this error
// knows the operator has already been logged out.
var ErrUnauthorized = errors.New("backend: unauthorized")

// Config configures the HTTP backend client.
type Config struct {
	// BaseURL is the platform API origin, e.g. https://api.example.com. The
	// dashboard reads it from BACKEND_URL, falling back to its own origin.
	BaseURL    string
	Session    session.Store
	HTTPClient *http.Client
}

// Client talks to the platform backend via its REST endpoints. It injects the
// session bearer token on every request and intercepts 401 responses globally.
type Client struct {
	baseURL string
	session session.Store
	client  *http.Client
}

// NewClient builds a client for the platform backend.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("backend: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// No timeout on purpose: the original dashboard had none, and SSE chat
		// streams outlive any sane request deadline. Callers bound requests
		// via ctx.
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		session: cfg.Session,
		client:  httpClient,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, target any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("backend: encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(ctx, req)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend: http request: %w", err)
	}
	defer resp.Body.Close()
	if err := c.checkStatus(ctx, resp); err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.session == nil {
		return
	}
	if token := c.session.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// checkStatus maps non-2xx responses to errors. 401 clears the session so the
// caller is forced back through login; everything else surfaces the backend's
// `detail` field when present.
func (c *Client) checkStatus(ctx context.Context, resp *http.Response) error {
	if resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		if c.session != nil {
			_ = c.session.Clear(ctx)
		}
		return ErrUnauthorized
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		return fmt.Errorf("backend: remote error %d: %s", resp.StatusCode, payload.Detail)
	}
	return fmt.Errorf("backend: remote error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	return c.do(ctx, http.MethodGet, path, nil, target)
}

func (c *Client) post(ctx context.Context, path string, payload, target any) error {
	return c.do(ctx, http.MethodPost, path, payload, target)
}

func (c *Client) put(ctx context.Context, path string, payload, target any) error {
	return c.do(ctx, http.MethodPut, path, payload, target)
}

func (c *Client) patch(ctx context.Context, path string, payload, target any) error {
	return c.do(ctx, http.MethodPatch, path, payload, target)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// postMultipart uploads a single file part plus string fields.
func (c *Client) postMultipart(ctx context.Context, path, fieldName, fileName string, file io.Reader, fields map[string]string, target any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return fmt.Errorf("backend: create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("backend: copy upload: %w", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("backend: write field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("backend: finalize upload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(ctx, req)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend: http request: %w", err)
	}
	defer resp.Body.Close()
	if err := c.checkStatus(ctx, resp); err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}

// StreamChat posts a message to the streaming chat endpoint and invokes onToken
// for every `data:` chunk until the stream ends or ctx is cancelled. A chunk of
// "[DONE]" terminates the stream without being forwarded.
func (c *Client) StreamChat(ctx context.Context, botID, publicKey, message string, onToken func(string)) error {
	payload := map[string]string{"message": message}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("backend: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat/stream/"+url.PathEscape(botID), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	if publicKey != "" {
		req.Header.Set("X-Bot-Key", publicKey)
	} else {
		c.authorize(ctx, req)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend: http request: %w", err)
	}
	defer resp.Body.Close()
	if err := c.checkStatus(ctx, resp); err != nil {
		return err
	}
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		chunk := strings.TrimPrefix(line, "data: ")
		if chunk == "[DONE]" {
			return nil
		}
		onToken(chunk)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("backend: read stream: %w", err)
	}
	return nil
}
