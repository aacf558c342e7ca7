package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/filter"
	"github.com/moodlog/mood-journal/internal/service"
	"github.com/moodlog/mood-journal/models"
)

// HTTPClientConfig configures the REST implementation of [ServerAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	// listGeneration numbers ListRecords calls so a fetch that resolves after
	// a newer one started can be recognised and discarded.
	listGeneration atomic.Uint64
}

// recordsPage mirrors the server's list response payload.
type recordsPage struct {
	Scope   access.Scope           `json:"scope"`
	Records []models.JournalRecord `json:"records"`
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
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

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Email: user.Email, Name: user.Name}, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) CreateRecord(ctx context.Context, input service.RecordInput) (models.JournalRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/records")
	if err != nil {
		return models.JournalRecord{}, fmt.Errorf("create record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JournalRecord{}, err
	}

	var record models.JournalRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.JournalRecord{}, fmt.Errorf("decode create record response: %w", err)
	}

	return record, nil
}

func (h *httpServerAdapter) ListRecords(ctx context.Context, scope access.Scope, criteria filter.Criteria) ([]models.JournalRecord, access.Scope, error) {
	generation := h.listGeneration.Add(1)

	records, effective, err := h.fetchRecords(ctx, scope, criteria)
	if err != nil {
		return nil, effective, err
	}

	// A newer fetch started while this one was in flight; its result will
	// arrive with a higher generation, so this payload must not be used.
	if h.listGeneration.Load() != generation {
		return nil, effective, ErrStaleResponse
	}

	return records, effective, nil
}

func (h *httpServerAdapter) DeleteRecord(ctx context.Context, recordID string, scope access.Scope) ([]models.JournalRecord, access.Scope, error) {
	resp, err := h.authedRequest(ctx).Delete("/api/records/" + url.PathEscape(recordID))
	if err != nil {
		return nil, scope, fmt.Errorf("delete record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, scope, err
	}

	// Refetch instead of removing the record from a local copy: the server
	// owns the list and a concurrent writer may have changed it.
	return h.ListRecords(ctx, scope, filter.Criteria{})
}

func (h *httpServerAdapter) GetStats(ctx context.Context, scope access.Scope) (models.ReportCard, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("scope", string(scope)).
		Get("/api/stats")
	if err != nil {
		return models.ReportCard{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReportCard{}, err
	}

	var card models.ReportCard
	if err = json.Unmarshal(resp.Body(), &card); err != nil {
		return models.ReportCard{}, fmt.Errorf("decode stats response: %w", err)
	}

	return card, nil
}

func (h *httpServerAdapter) GetReport(ctx context.Context, scope access.Scope, reportType string) (models.ReportCard, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("scope", string(scope)).
		SetQueryParam("type", reportType).
		Get("/api/report")
	if err != nil {
		return models.ReportCard{}, fmt.Errorf("report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReportCard{}, err
	}

	var card models.ReportCard
	if err = json.Unmarshal(resp.Body(), &card); err != nil {
		return models.ReportCard{}, fmt.Errorf("decode report response: %w", err)
	}

	return card, nil
}

func (h *httpServerAdapter) Summarize(ctx context.Context, scope access.Scope, apiKey string) (string, error) {
	req := h.authedRequest(ctx).SetQueryParam("scope", string(scope))
	if apiKey != "" {
		req.SetHeader("X-Gemini-Key", apiKey)
	}

	resp, err := req.Post("/api/summary")
	if err != nil {
		return "", fmt.Errorf("summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var payload struct {
		Summary string `json:"summary"`
	}
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("decode summary response: %w", err)
	}

	return payload.Summary, nil
}

func (h *httpServerAdapter) ExportCSV(ctx context.Context, scope access.Scope, criteria filter.Criteria) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(recordQueryParams(scope, criteria)).
		Get("/api/records/export")
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) fetchRecords(ctx context.Context, scope access.Scope, criteria filter.Criteria) ([]models.JournalRecord, access.Scope, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(recordQueryParams(scope, criteria)).
		Get("/api/records")
	if err != nil {
		return nil, scope, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, scope, err
	}

	var page recordsPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, scope, fmt.Errorf("decode list records response: %w", err)
	}

	return page.Records, page.Scope, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func recordQueryParams(scope access.Scope, criteria filter.Criteria) map[string]string {
	params := map[string]string{"scope": string(scope)}

	if criteria.Quadrant != "" {
		params["quadrant"] = criteria.Quadrant
	}
	if criteria.StartDate != "" {
		params["start_date"] = criteria.StartDate
	}
	if criteria.EndDate != "" {
		params["end_date"] = criteria.EndDate
	}
	if criteria.NameContains != "" {
		params["name"] = criteria.NameContains
	}
	if criteria.EmailContains != "" {
		params["email"] = criteria.EmailContains
	}

	return params
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
