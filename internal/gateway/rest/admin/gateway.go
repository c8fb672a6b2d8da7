package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"simulator/internal/entities"
	retrierconfig "simulator/pkg/retrier"
	"simulator/pkg/retrier/backoff_adapter"
)

const maxResponseBytes = 1 << 20

const (
	retryInitialInterval = 100 * time.Millisecond
	retryMaxInterval     = 2 * time.Second
	retryMaxElapsedTime  = 5 * time.Second
	retryRandomization   = 0.5
	retryMultiplier      = 2.0
)

// UserFilter -- фильтры списка пользователей. Нулевые значения не
// попадают в запрос.
type UserFilter struct {
	Page    int
	PerPage int
	Status  string // online, offline
	Search  string
}

type OrderFilter struct {
	Page    int
	PerPage int
	Status  string
	UserID  int64
}

type ReportFilter struct {
	Page     int
	PerPage  int
	Status   string
	Priority string
	Type     string
}

// Gateway -- клиент админского REST API.
type Gateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
}

func New(baseURL string, client httpDoer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: retryInitialInterval,
		MaxInterval:     retryMaxInterval,
		MaxElapsedTime:  retryMaxElapsedTime,
		Randomization:   retryRandomization,
		Multiplier:      retryMultiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		baseURL: baseURL,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// isRetryable: повторяем только сетевые сбои и 5xx,
// осмысленные ответы сервера повтор не изменит.
func isRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func (g *Gateway) ListUsers(ctx context.Context, filter UserFilter) (*entities.UserPage, error) {
	query := pageQuery(filter.Page, filter.PerPage)
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var resp usersResponse
	if err := g.get(ctx, "ListUsers", "/admin/users", query, &resp); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("list users: %w: %s", ErrRequestFailed, resp.Error)
	}

	page := &entities.UserPage{
		Users:      make([]entities.AdminUser, 0, len(resp.Users)),
		Pagination: toDomainPagination(resp.Pagination),
	}
	for _, dto := range resp.Users {
		page.Users = append(page.Users, toDomainUser(dto))
	}
	return page, nil
}

func (g *Gateway) ListOrders(ctx context.Context, filter OrderFilter) (*entities.OrderPage, error) {
	query := pageQuery(filter.Page, filter.PerPage)
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.UserID != 0 {
		query.Set("user_id", strconv.FormatInt(filter.UserID, 10))
	}

	var resp ordersResponse
	if err := g.get(ctx, "ListOrders", "/admin/orders", query, &resp); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("list orders: %w: %s", ErrRequestFailed, resp.Error)
	}

	page := &entities.OrderPage{
		Orders:     make([]entities.AdminOrder, 0, len(resp.Orders)),
		Pagination: toDomainPagination(resp.Pagination),
	}
	for _, dto := range resp.Orders {
		page.Orders = append(page.Orders, toDomainOrder(dto))
	}
	return page, nil
}

func (g *Gateway) ListReports(ctx context.Context, filter ReportFilter) (*entities.ReportPage, error) {
	query := pageQuery(filter.Page, filter.PerPage)
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Priority != "" {
		query.Set("priority", filter.Priority)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}

	var resp reportsResponse
	if err := g.get(ctx, "ListReports", "/admin/reports", query, &resp); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("list reports: %w: %s", ErrRequestFailed, resp.Error)
	}

	page := &entities.ReportPage{
		Reports:    make([]entities.Report, 0, len(resp.Reports)),
		Pagination: toDomainPagination(resp.Pagination),
	}
	for _, dto := range resp.Reports {
		page.Reports = append(page.Reports, toDomainReport(dto))
	}
	return page, nil
}

func (g *Gateway) UpdateReportStatus(ctx context.Context, reportID int64, status entities.ReportStatusType, response string) (*entities.Report, error) {
	path := fmt.Sprintf("/admin/reports/%d/status", reportID)
	body := reportStatusRequest{
		Status:        string(status),
		AdminResponse: response,
	}

	var resp reportStatusResponse
	if err := g.post(ctx, "UpdateReportStatus", path, body, &resp); err != nil {
		return nil, fmt.Errorf("update report status: %w", err)
	}
	if !resp.Success || resp.Report == nil {
		if resp.Error != "" {
			return nil, fmt.Errorf("update report status: %w: %s", ErrInvalidStatus, resp.Error)
		}
		return nil, fmt.Errorf("update report status: %w", ErrRequestFailed)
	}

	report := toDomainReport(*resp.Report)
	return &report, nil
}

func (g *Gateway) Config(ctx context.Context) (entities.GameConfig, error) {
	var resp configResponse
	if err := g.get(ctx, "Config", "/admin/config", nil, &resp); err != nil {
		return entities.GameConfig{}, fmt.Errorf("get config: %w", err)
	}
	if resp.Error != "" {
		return entities.GameConfig{}, fmt.Errorf("get config: %w: %s", ErrRequestFailed, resp.Error)
	}
	return toDomainConfig(resp.GameConfig), nil
}

// UpdateConfig отправляет только измененные параметры и возвращает
// примененные изменения вместе с новой конфигурацией.
func (g *Gateway) UpdateConfig(ctx context.Context, params map[string]float64) ([]entities.ConfigChange, entities.GameConfig, error) {
	var resp configUpdateResponse
	if err := g.post(ctx, "UpdateConfig", "/admin/config", params, &resp); err != nil {
		return nil, entities.GameConfig{}, fmt.Errorf("update config: %w", err)
	}
	if !resp.Success {
		if resp.Error != "" {
			return nil, entities.GameConfig{}, fmt.Errorf("update config: %w: %s", ErrRequestFailed, resp.Error)
		}
		return nil, entities.GameConfig{}, fmt.Errorf("update config: %w", ErrRequestFailed)
	}

	changes := make([]entities.ConfigChange, 0, len(resp.UpdatedParams))
	for _, dto := range resp.UpdatedParams {
		changes = append(changes, entities.ConfigChange{
			Param:    dto.Param,
			OldValue: dto.OldValue,
			NewValue: dto.NewValue,
		})
	}
	return changes, toDomainConfig(resp.NewConfig), nil
}

func (g *Gateway) AnalyticsOverview(ctx context.Context, days int) (*entities.AnalyticsOverview, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}

	var resp analyticsResponse
	if err := g.get(ctx, "AnalyticsOverview", "/admin/analytics/overview", query, &resp); err != nil {
		return nil, fmt.Errorf("analytics overview: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("analytics overview: %w: %s", ErrRequestFailed, resp.Error)
	}

	return &entities.AnalyticsOverview{
		PeriodDays:      resp.PeriodDays,
		TotalUsers:      resp.Users.Total,
		OnlineUsers:     resp.Users.Online,
		NewUsersPeriod:  resp.Users.NewPeriod,
		TotalOrders:     resp.Orders.Total,
		CompletedOrders: resp.Orders.Completed,
		CancelledOrders: resp.Orders.Cancelled,
		RevenuePeriod:   resp.RevenuePeriod,
	}, nil
}

func pageQuery(page, perPage int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}
	return query
}

// get ретраит запрос целиком: GET идемпотентен.
func (g *Gateway) get(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	return g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return g.execute(ctx, method, http.MethodGet, path, query, nil, out)
	})
}

func (g *Gateway) post(ctx context.Context, method, path string, body, out interface{}) error {
	return g.execute(ctx, method, http.MethodPost, path, nil, body, out)
}

func (g *Gateway) execute(ctx context.Context, method, httpMethod, path string, query url.Values, body, out interface{}) error {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: marshal request: %w", ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, target, reqBody)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrRequestFailed, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	code := "transport_error"
	if resp != nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	GatewayRequestDuration.WithLabelValues(method, code).Observe(time.Since(start).Seconds())

	if err != nil {
		GatewayErrorsTotal.WithLabelValues(method, "transport").Inc()
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		GatewayErrorsTotal.WithLabelValues(method, "read_body").Inc()
		return fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		GatewayErrorsTotal.WithLabelValues(method, "http_status").Inc()
		return ErrNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		GatewayErrorsTotal.WithLabelValues(method, "http_status").Inc()

		// 5xx считаем временным сбоем, 4xx -- окончательный ответ
		sentinel := ErrRequestFailed
		if resp.StatusCode >= http.StatusInternalServerError {
			sentinel = ErrUnavailable
		}

		var apiErr struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%w: status %d: %s", sentinel, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%w: status %d", sentinel, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		GatewayErrorsTotal.WithLabelValues(method, "decode").Inc()
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}
