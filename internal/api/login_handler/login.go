package login_handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/trsv-dev/etx-disk-dashboard/internal/backend"
	"github.com/trsv-dev/etx-disk-dashboard/internal/errs"
	"github.com/trsv-dev/etx-disk-dashboard/internal/handoff"
	"github.com/trsv-dev/etx-disk-dashboard/internal/inflight"
	"github.com/trsv-dev/etx-disk-dashboard/internal/logger"
	"github.com/trsv-dev/etx-disk-dashboard/internal/models"
	"github.com/trsv-dev/etx-disk-dashboard/internal/view"
)

const (
	NoticeFieldsRequired = "Username, password and IP address are required"
	NoticeInProgress     = "Login already in progress"
	noticeLoginFailed    = "Login failed: %s"
	noticeRequestFailed  = "Request failed. If using Flask HTTPS adhoc, open %s in the browser and click Proceed once."

	// DataPath Адрес страницы данных.
	DataPath = "/Data"
	// HandoffParam Параметр запроса с идентификатором результата входа.
	HandoffParam = "h"
)

// LoginHandler Обработчик страницы входа.
type LoginHandler struct {
	client    backend.Client
	handoff   handoff.Store
	renderer  view.Renderer
	guard     *inflight.Guard
	healthURL string
}

// NewLoginHandler Конструктор LoginHandler.
func NewLoginHandler(client backend.Client, store handoff.Store, renderer view.Renderer, healthURL string) *LoginHandler {
	return &LoginHandler{
		client:    client,
		handoff:   store,
		renderer:  renderer,
		guard:     inflight.NewGuard(),
		healthURL: healthURL,
	}
}

// LoginPage Пустая форма входа.
func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, view.LoginView{})
}

// Login Отправка учётных данных бэкенду. При успехе - переход на страницу данных,
// при ошибке - форма с уведомлением и сохранёнными значениями полей.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.Log.Error("Ошибка разбора формы входа", logger.Err(err))
		h.render(w, http.StatusBadRequest, view.LoginView{Notice: NoticeFieldsRequired})
		return
	}

	creds := models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
		IP:       r.PostFormValue("ip"),
	}

	form := view.LoginView{Username: creds.Username, Password: creds.Password, IP: creds.IP}

	if err := creds.Validate(); err != nil {
		logger.Log.Debug("Форма входа заполнена не полностью", logger.Err(err))
		form.Notice = NoticeFieldsRequired
		h.render(w, http.StatusBadRequest, form)
		return
	}

	release, ok := h.guard.TryAcquire(creds.Key())
	if !ok {
		logger.Log.Warn("Повторная отправка формы входа во время выполнения запроса",
			logger.Err(errs.NewErrInFlight("login")),
			logger.String("username", creds.Username),
			logger.String("ip", creds.IP),
			logger.Int("in_flight", h.guard.InFlight()))
		form.Notice = NoticeInProgress
		h.render(w, http.StatusConflict, form)
		return
	}
	defer release()

	payload, err := h.client.Login(r.Context(), creds)

	var ErrRejected *errs.ErrRejected
	switch {
	case errors.As(err, &ErrRejected):
		logger.Log.Info("Бэкенд отклонил вход",
			logger.String("username", creds.Username),
			logger.String("ip", creds.IP),
			logger.String("message", ErrRejected.Message))
		form.Notice = fmt.Sprintf(noticeLoginFailed, ErrRejected.Message)
		h.render(w, http.StatusUnauthorized, form)
		return
	case err != nil:
		logger.Log.Error("Ошибка запроса входа к бэкенду", logger.Err(err))
		form.Notice = fmt.Sprintf(noticeRequestFailed, h.healthURL)
		h.render(w, http.StatusBadGateway, form)
		return
	}

	id := h.handoff.Put(payload)

	logger.Log.Info("Успешный вход, переход на страницу данных",
		logger.String("username", creds.Username),
		logger.String("ip", creds.IP))

	http.Redirect(w, r, DataPath+"?"+url.Values{HandoffParam: {id}}.Encode(), http.StatusSeeOther)
}

// render Отрисовывает форму в буфер и только затем пишет статус и тело ответа.
func (h *LoginHandler) render(w http.ResponseWriter, status int, v view.LoginView) {
	var buf bytes.Buffer
	if err := h.renderer.RenderLogin(&buf, v); err != nil {
		logger.Log.Error("Ошибка отрисовки страницы входа", logger.Err(err))
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
