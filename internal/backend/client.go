package backend

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/trsv-dev/etx-disk-dashboard/internal/config"
	"github.com/trsv-dev/etx-disk-dashboard/internal/errs"
	"github.com/trsv-dev/etx-disk-dashboard/internal/logger"
	"github.com/trsv-dev/etx-disk-dashboard/internal/models"
)

const (
	loginPath   = "/"
	commandPath = "/command"
	healthPath  = "/health"

	// максимальный размер ответа бэкенда (график + таблица)
	maxResponseSize = 32 << 20
)

// HTTPClient Клиент ETX-бэкенда поверх HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient Конструктор, возвращающий клиент бэкенда с нужными настройками.
func NewHTTPClient(cfg *config.BackendConfig) *HTTPClient {
	transport := cleanhttp.DefaultPooledTransport()

	if cfg.Insecure {
		// бэкенд на Flask с ssl_context='adhoc' отдаёт самоподписанный сертификат
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &HTTPClient{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

// Login Проверка учётных данных на бэкенде. При успехе возвращает график, таблицу и пути к файлам.
func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.NavigationPayload, error) {
	const op = "login"

	var resp models.LoginResponse
	if err := c.postJSON(ctx, op, loginPath, creds, &resp); err != nil {
		return nil, err
	}

	if !resp.OK {
		return nil, errs.NewErrRejected(op, resp.Message)
	}

	payload := resp.ToPayload()

	logger.Log.Debug("Бэкенд вернул данные после входа",
		logger.String("username", creds.Username),
		logger.String("ip", creds.IP),
		logger.Int("rows", len(payload.Table)),
		logger.String("png_path", payload.ChartFilePath),
		logger.String("table_path", payload.TableFilePath),
	)

	return payload, nil
}

// SendReminder Отправка команды send_reminder бэкенду.
func (c *HTTPClient) SendReminder(ctx context.Context, req models.ReminderRequest) error {
	op := req.Command

	var resp models.CommandResponse
	if err := c.postJSON(ctx, op, commandPath, req, &resp); err != nil {
		return err
	}

	if !resp.OK {
		return errs.NewErrRejected(op, resp.Message)
	}

	return nil
}

// Health Проверка доступности бэкенда.
func (c *HTTPClient) Health(ctx context.Context) error {
	const op = "health"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return errs.NewErrTransport(op, err)
	}

	var resp models.CommandResponse
	if err = c.do(op, httpReq, &resp); err != nil {
		return err
	}

	if !resp.OK {
		return errs.NewErrRejected(op, resp.Message)
	}

	return nil
}

// postJSON Отправляет body в формате JSON методом POST и декодирует JSON-ответ в out.
func (c *HTTPClient) postJSON(ctx context.Context, op, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return errs.NewErrTransport(op, fmt.Errorf("не удалось сериализовать тело запроса: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return errs.NewErrTransport(op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(op, httpReq, out)
}

// do Выполняет запрос и декодирует JSON-ответ независимо от HTTP-статуса:
// бэкенд отвечает на отказ кодами 400/401 с телом {ok: false, message}.
func (c *HTTPClient) do(op string, httpReq *http.Request, out any) error {
	start := time.Now()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return errs.NewErrTransport(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return errs.NewErrTransport(op, fmt.Errorf("ошибка чтения ответа: %w", err))
	}

	logger.Log.Debug("Ответ бэкенда",
		logger.String("op", op),
		logger.String("url", httpReq.URL.String()),
		logger.Int("status", resp.StatusCode),
		logger.String("duration", time.Since(start).String()),
		logger.Int("size", len(body)),
	)

	if err = json.Unmarshal(body, out); err != nil {
		return errs.NewErrTransport(op, fmt.Errorf("ответ бэкенда не является корректным JSON (HTTP %d): %w", resp.StatusCode, err))
	}

	return nil
}
