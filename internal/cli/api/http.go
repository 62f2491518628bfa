package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tianxinyueming/idealyard/internal/dto"
)

// Request describes a single call to the server: method, path relative to the base URL and an optional JSON body.
type Request struct {
	Method string
	Path   string
	Body   any
}

// Response is the raw server answer. Non-2xx statuses are returned as a Response, not as an error.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// TokenSource отдаёт сохранённый auth‑токен.
type TokenSource interface {
	Load() (string, error)
}

// TokenSaver сохраняет auth‑токен.
type TokenSaver interface {
	Save(token string) error
}

// Client отправляет запросы на сервер и прикладывает сохранённый токен.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.SugaredLogger
}

// NewClient creates a transport for baseURL. tokens may be nil, then requests go without a token.
func NewClient(baseURL string, tokens TokenSource, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
		logger:  logger,
	}
}

// Do выполняет запрос. Сетевые ошибки возвращаются как есть.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, c.baseURL+r.Path, body)
	if err != nil {
		return nil, err
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, err := c.tokens.Load(); err == nil && token != "" {
			req.Header.Set(dto.TokenHeader, token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debugw("request failed", "method", r.Method, "path", r.Path, "error", err)
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.logger.Debugw("request done",
		"method", r.Method,
		"path", r.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}

// DecodeEnvelope разбирает тело ответа в общий конверт сервера.
func DecodeEnvelope(resp *Response) (*dto.Envelope, error) {
	if resp == nil {
		return nil, errors.New("nil response")
	}
	var env dto.Envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	return &env, nil
}

// PersistAuthFromResponse извлекает токен из успешного ответа /signin и сохраняет его.
func PersistAuthFromResponse(resp *Response, store TokenSaver) (*dto.SignInData, error) {
	env, err := DecodeEnvelope(resp)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("sign-in rejected: %s", env.Msg)
	}
	var data dto.SignInData
	if err := env.DecodeData(&data); err != nil {
		return nil, fmt.Errorf("decode sign-in data: %w", err)
	}
	if data.Token == "" {
		return nil, errors.New("no auth token in response")
	}
	if err := store.Save(data.Token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}
	return &data, nil
}
