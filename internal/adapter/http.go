package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/voxai-app/voxai/internal/config"
	httphandler "github.com/voxai-app/voxai/internal/handler/http"
	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu             sync.RWMutex
	token          string
	onUnauthorized func()

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// A response middleware watches every reply: a 401 clears the held token
// and fires the OnUnauthorized callback, whichever request produced it.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{logger: logger}

	a.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() == http.StatusUnauthorized {
				a.handleUnauthorized()
			}
			return nil
		})

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) OnUnauthorized(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = fn
}

// handleUnauthorized clears the held token, then fires the registered
// callback outside the lock so the callback can call back into the adapter.
func (h *httpServerAdapter) handleUnauthorized() {
	h.mu.Lock()
	h.token = ""
	fn := h.onUnauthorized
	h.mu.Unlock()

	h.logger.Warn().Str("func", "*httpServerAdapter.handleUnauthorized").Msg("server rejected token")

	if fn != nil {
		fn()
	}
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/auth/register. No token is issued at this stage.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login, stores the returned token via SetToken, and returns
// the token plus the public user projection.
func (h *httpServerAdapter) Login(ctx context.Context, email string, secret string) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Secret: secret}).
		SetResult(&loginResp).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if loginResp.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carried no token")
	}

	h.SetToken(loginResp.Token)
	return loginResp, nil
}

func (h *httpServerAdapter) ListSchemes(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error) {
	req := h.client.R().SetContext(ctx)
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}
	if filter.Keyword != "" {
		req.SetQueryParam("q", filter.Keyword)
	}

	resp, err := req.Get("/api/schemes")
	if err != nil {
		return nil, fmt.Errorf("list schemes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var schemes []models.Scheme
	if err = json.Unmarshal(resp.Body(), &schemes); err != nil {
		return nil, fmt.Errorf("decode schemes response: %w", err)
	}

	return schemes, nil
}

func (h *httpServerAdapter) GetScheme(ctx context.Context, schemeID int64) (models.Scheme, error) {
	var scheme models.Scheme

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&scheme).
		Get("/api/schemes/" + strconv.FormatInt(schemeID, 10))
	if err != nil {
		return models.Scheme{}, fmt.Errorf("get scheme request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Scheme{}, err
	}

	return scheme, nil
}

func (h *httpServerAdapter) CreateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	var created models.Scheme

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(scheme).
		SetResult(&created).
		Post("/api/schemes")
	if err != nil {
		return models.Scheme{}, fmt.Errorf("create scheme request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Scheme{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	var updated models.Scheme

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(scheme).
		SetResult(&updated).
		Put("/api/schemes/" + strconv.FormatInt(scheme.SchemeID, 10))
	if err != nil {
		return models.Scheme{}, fmt.Errorf("update scheme request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Scheme{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteScheme(ctx context.Context, schemeID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/schemes/" + strconv.FormatInt(schemeID, 10))
	if err != nil {
		return fmt.Errorf("delete scheme request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Chat(ctx context.Context, message string) (string, error) {
	var chatResp models.ChatResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChatRequest{Message: message}).
		SetResult(&chatResp).
		Post("/api/chat")
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return chatResp.Reply, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(httphandler.AuthTokenHeader, token)
	}
	return req
}
