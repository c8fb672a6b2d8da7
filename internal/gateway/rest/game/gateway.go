package game

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"simulator/internal/entities"
)

const maxResponseBytes = 1 << 20

// Gateway -- клиент игрового REST API. Ретраев нет намеренно: по UX игры
// неудачный вызов показывается игроку, и он повторяет действие сам.
type Gateway struct {
	baseURL string
	client  httpDoer
}

func New(baseURL string, client httpDoer) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  client,
	}
}

func (g *Gateway) StartShift(ctx context.Context, userID int64) error {
	var resp baseResponse
	err := g.post(ctx, "StartShift", "/api/start_shift", shiftRequest{UserID: userID}, &resp)
	if err != nil {
		return fmt.Errorf("start shift: %w", err)
	}
	if resp.Error != "" {
		return fmt.Errorf("start shift: %w: %s", ErrRejected, resp.Error)
	}
	return nil
}

func (g *Gateway) StopShift(ctx context.Context, userID int64) error {
	var resp baseResponse
	err := g.post(ctx, "StopShift", "/api/stop_shift", shiftRequest{UserID: userID}, &resp)
	if err != nil {
		return fmt.Errorf("stop shift: %w", err)
	}
	if resp.Error != "" {
		return fmt.Errorf("stop shift: %w: %s", ErrRejected, resp.Error)
	}
	return nil
}

func (g *Gateway) AcceptOrder(ctx context.Context, userID int64, orderID string) (*entities.Order, error) {
	var resp acceptResponse
	err := g.post(ctx, "AcceptOrder", "/api/order/accept", acceptRequest{UserID: userID, OrderID: orderID}, &resp)
	if err != nil {
		return nil, fmt.Errorf("accept order %s: %w", orderID, err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("accept order %s: %w: %s", orderID, ErrRejected, resp.Error)
	}
	if resp.Order == nil {
		return nil, fmt.Errorf("accept order %s: %w: empty order", orderID, ErrDecodeResponse)
	}
	return toDomainOrder(resp.Order), nil
}

func (g *Gateway) CancelOrder(ctx context.Context, userID int64, reason string) error {
	var resp baseResponse
	err := g.post(ctx, "CancelOrder", "/api/order/cancel", cancelRequest{UserID: userID, Reason: reason}, &resp)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	if resp.Error != "" {
		return fmt.Errorf("cancel order: %w: %s", ErrRejected, resp.Error)
	}
	return nil
}

func (g *Gateway) PickupOrder(ctx context.Context, userID int64) (*entities.Order, error) {
	var resp pickupResponse
	err := g.post(ctx, "PickupOrder", "/api/order/pickup", shiftRequest{UserID: userID}, &resp)
	if err != nil {
		return nil, fmt.Errorf("pickup order: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("pickup order: %w: %s", ErrRejected, resp.Error)
	}
	if resp.Order == nil {
		return nil, fmt.Errorf("pickup order: %w: empty order", ErrDecodeResponse)
	}
	return toDomainOrder(resp.Order), nil
}

func (g *Gateway) DeliverOrder(ctx context.Context, userID int64) (*entities.DeliveryResult, error) {
	var resp deliverResponse
	err := g.post(ctx, "DeliverOrder", "/api/order/deliver", shiftRequest{UserID: userID}, &resp)
	if err != nil {
		return nil, fmt.Errorf("deliver order: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("deliver order: %w: %s", ErrRejected, resp.Error)
	}

	return &entities.DeliveryResult{
		NewBalance: resp.NewBalance,
		Payout: entities.Payout{
			Total: resp.Payout.Total,
			Bonus: resp.Payout.Bonus,
		},
	}, nil
}

// ReportPosition отправляет позицию и получает серверный вердикт по зонам.
func (g *Gateway) ReportPosition(ctx context.Context, userID int64, pos entities.Position) (entities.ZoneStatus, error) {
	req := positionRequest{
		UserID:   userID,
		Lat:      pos.Lat,
		Lng:      pos.Lng,
		Accuracy: pos.Accuracy,
	}

	var resp positionResponse
	err := g.post(ctx, "ReportPosition", "/api/position", req, &resp)
	if err != nil {
		return entities.ZoneStatus{}, fmt.Errorf("report position: %w", err)
	}
	if resp.Error != "" {
		return entities.ZoneStatus{}, fmt.Errorf("report position: %w: %s", ErrRejected, resp.Error)
	}
	return toDomainZones(resp.Zones), nil
}

// Status запрашивает серверное состояние аккаунта для восстановления сессии.
func (g *Gateway) Status(ctx context.Context, userID int64) (*entities.AccountStatus, error) {
	query := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}

	var resp statusResponse
	err := g.execute(ctx, "Status", http.MethodGet, "/api/status?"+query.Encode(), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("status: %w: %s", ErrRejected, resp.Error)
	}

	return &entities.AccountStatus{
		Balance:     resp.User.Balance,
		ActiveOrder: toDomainOrder(resp.ActiveOrder),
	}, nil
}

func (g *Gateway) post(ctx context.Context, method, path string, body, out interface{}) error {
	return g.execute(ctx, method, http.MethodPost, path, body, out)
}

func (g *Gateway) execute(ctx context.Context, method, httpMethod, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: marshal request: %w", ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, g.baseURL+path, reqBody)
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
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		GatewayErrorsTotal.WithLabelValues(method, "read_body").Inc()
		return fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		GatewayErrorsTotal.WithLabelValues(method, "http_status").Inc()
		// сервер может прислать {error} и с не-2xx статусом
		var apiErr baseResponse
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		GatewayErrorsTotal.WithLabelValues(method, "decode").Inc()
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}
