package data_handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/trsv-dev/etx-disk-dashboard/internal/api/response"
	"github.com/trsv-dev/etx-disk-dashboard/internal/backend"
	"github.com/trsv-dev/etx-disk-dashboard/internal/errs"
	"github.com/trsv-dev/etx-disk-dashboard/internal/handoff"
	"github.com/trsv-dev/etx-disk-dashboard/internal/inflight"
	"github.com/trsv-dev/etx-disk-dashboard/internal/logger"
	"github.com/trsv-dev/etx-disk-dashboard/internal/models"
	"github.com/trsv-dev/etx-disk-dashboard/internal/view"
)

const (
	NoticeReminderSent       = "Slack reminder sent!"
	NoticeReminderInProgress = "Reminder already in progress"
	NoticeReminderFailed     = "Failed to send reminder: "
	NoticeInvalidBody        = "Invalid request body"

	reasonInvalidResponse = "invalid response from backend"

	// HandoffParam Параметр запроса с идентификатором результата входа.
	HandoffParam = "h"

	maxBodySize = 1 << 20
)

// DataHandler Обработчик страницы данных и действия отправки напоминания.
type DataHandler struct {
	client   backend.Client
	handoff  handoff.Store
	renderer view.Renderer
	guard    *inflight.Guard
}

// NewDataHandler Конструктор DataHandler.
func NewDataHandler(client backend.Client, store handoff.Store, renderer view.Renderer) *DataHandler {
	return &DataHandler{
		client:   client,
		handoff:  store,
		renderer: renderer,
		guard:    inflight.NewGuard(),
	}
}

// DataPage Страница данных. Результат входа забирается из хранилища один раз,
// поэтому повторная загрузка страницы показывает состояние "нет данных".
func (h *DataHandler) DataPage(w http.ResponseWriter, r *http.Request) {
	var payload *models.NavigationPayload

	if id := r.URL.Query().Get(HandoffParam); id != "" {
		p, ok := h.handoff.Take(id)
		if !ok {
			logger.Log.Debug("Результат входа не найден или уже получен", logger.String("id", id))
		}
		payload = p
	}

	v, err := view.NewDataView(payload)
	if err != nil {
		logger.Log.Error("Ошибка подготовки страницы данных", logger.Err(err))
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err = h.renderer.RenderData(&buf, v); err != nil {
		logger.Log.Error("Ошибка отрисовки страницы данных", logger.Err(err))
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	logger.Log.Debug("Страница данных", logger.String("state", v.State.String()), logger.Int("rows", v.RowCount))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// SendReminder Отправка команды напоминания бэкенду с путями к файлам графика и таблицы.
func (h *DataHandler) SendReminder(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		logger.Log.Error("Ошибка чтения тела запроса", logger.Err(err))
		response.ErrorJSON(w, http.StatusBadRequest, NoticeInvalidBody)
		return
	}

	var paths models.ReminderPaths
	if err = json.Unmarshal(body, &paths); err != nil {
		logger.Log.Warn("Неверный формат запроса напоминания", logger.Err(err))
		response.ErrorJSON(w, http.StatusBadRequest, NoticeInvalidBody)
		return
	}

	release, ok := h.guard.TryAcquire(paths.Key())
	if !ok {
		logger.Log.Warn("Повторная отправка напоминания во время выполнения запроса",
			logger.Err(errs.NewErrInFlight(models.CommandSendReminder)),
			logger.Int("in_flight", h.guard.InFlight()))
		response.ReminderJSON(w, http.StatusConflict, false, NoticeReminderInProgress)
		return
	}
	defer release()

	err = h.client.SendReminder(r.Context(), models.NewReminderRequest(paths))

	var ErrRejected *errs.ErrRejected
	var ErrTransport *errs.ErrTransport

	switch {
	case err == nil:
		logger.Log.Info("Напоминание отправлено",
			logger.String("png_path", paths.PNGPath),
			logger.String("table_path", paths.TablePath))
		response.ReminderJSON(w, http.StatusOK, true, NoticeReminderSent)
	case errors.As(err, &ErrRejected):
		logger.Log.Info("Бэкенд отклонил напоминание", logger.String("message", ErrRejected.Message))
		response.ReminderJSON(w, http.StatusOK, false, ErrRejected.Message)
	case errors.As(err, &ErrTransport):
		logger.Log.Error("Ошибка запроса напоминания к бэкенду", logger.Err(err))
		response.ReminderJSON(w, http.StatusBadGateway, false, NoticeReminderFailed+transportReason(ErrTransport.Err))
	default:
		logger.Log.Error("Ошибка отправки напоминания", logger.Err(err))
		response.ReminderJSON(w, http.StatusBadGateway, false, NoticeReminderFailed+transportReason(err))
	}
}

// transportReason Причина ошибки для уведомления пользователя: текст ошибки HTTP-клиента,
// а для ошибок чтения и разбора ответа - фиксированная фраза.
func transportReason(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Error()
	}

	return reasonInvalidResponse
}
