package login_handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/etx-disk-dashboard/internal/backend/mocks"
	"github.com/trsv-dev/etx-disk-dashboard/internal/errs"
	handoffMocks "github.com/trsv-dev/etx-disk-dashboard/internal/handoff/mocks"
	"github.com/trsv-dev/etx-disk-dashboard/internal/logger"
	"github.com/trsv-dev/etx-disk-dashboard/internal/models"
	"github.com/trsv-dev/etx-disk-dashboard/internal/view"
	viewMocks "github.com/trsv-dev/etx-disk-dashboard/internal/view/mocks"
)

const healthURL = "https://127.0.0.1:5000/health"

func init() {
	logger.InitLogger("error", "stdout")
}

func newRenderer(t *testing.T) view.Renderer {
	t.Helper()

	r, err := view.NewTemplateRenderer()
	require.NoError(t, err)

	return r
}

func loginRequest(username, password, ip string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}, "ip": {ip}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

// TestLoginPage Проверяет отрисовку пустой формы входа.
func TestLoginPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewLoginHandler(mocks.NewMockClient(ctrl), handoffMocks.NewMockStore(ctrl), newRenderer(t), healthURL)

	w := httptest.NewRecorder()
	h.LoginPage(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "ETX Login")
	assert.Contains(t, body, `placeholder="IP address"`)
	assert.NotContains(t, body, "data-alert")
}

// TestLogin Проверяет отправку формы входа.
func TestLogin(t *testing.T) {
	creds := models.Credentials{Username: "alice", Password: "s3cret", IP: "10.0.0.5"}
	payload := &models.NavigationPayload{
		Chart:         &models.Chart{},
		Table:         models.Table{},
		ChartFilePath: "/tmp/pie.png",
		TableFilePath: "/tmp/table.csv",
	}

	tests := []struct {
		name         string
		username     string
		password     string
		ip           string
		setupMocks   func(client *mocks.MockClient, store *handoffMocks.MockStore)
		expectedCode int
		location     string
		contains     []string
	}{
		{
			name:     "успешный вход",
			username: creds.Username,
			password: creds.Password,
			ip:       creds.IP,
			setupMocks: func(client *mocks.MockClient, store *handoffMocks.MockStore) {
				client.EXPECT().Login(gomock.Any(), creds).Return(payload, nil).Times(1)
				store.EXPECT().Put(payload).Return("id-1").Times(1)
			},
			expectedCode: http.StatusSeeOther,
			location:     "/Data?h=id-1",
		},
		{
			name:     "бэкенд отклонил вход",
			username: creds.Username,
			password: creds.Password,
			ip:       creds.IP,
			setupMocks: func(client *mocks.MockClient, store *handoffMocks.MockStore) {
				client.EXPECT().Login(gomock.Any(), creds).
					Return(nil, errs.NewErrRejected("login", "Invalid credentials")).Times(1)
				store.EXPECT().Put(gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
			contains:     []string{"Login failed: Invalid credentials", `value="alice"`, `value="s3cret"`, `value="10.0.0.5"`},
		},
		{
			name:     "бэкенд отклонил вход без сообщения",
			username: creds.Username,
			password: creds.Password,
			ip:       creds.IP,
			setupMocks: func(client *mocks.MockClient, store *handoffMocks.MockStore) {
				client.EXPECT().Login(gomock.Any(), creds).
					Return(nil, errs.NewErrRejected("login", "")).Times(1)
				store.EXPECT().Put(gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
			contains:     []string{"Login failed: "},
		},
		{
			name:     "бэкенд недоступен",
			username: creds.Username,
			password: creds.Password,
			ip:       creds.IP,
			setupMocks: func(client *mocks.MockClient, store *handoffMocks.MockStore) {
				client.EXPECT().Login(gomock.Any(), creds).
					Return(nil, errs.NewErrTransport("login", errors.New("connection refused"))).Times(1)
				store.EXPECT().Put(gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadGateway,
			contains: []string{
				"Request failed. If using Flask HTTPS adhoc, open " + healthURL + " in the browser and click Proceed once.",
				`value="alice"`,
				`value="s3cret"`,
			},
		},
		{
			name:     "пустой пароль",
			username: creds.Username,
			password: "",
			ip:       creds.IP,
			setupMocks: func(client *mocks.MockClient, store *handoffMocks.MockStore) {
				client.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().Put(gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
			contains:     []string{NoticeFieldsRequired, `value="alice"`},
		},
		{
			name:     "пустой IP",
			username: creds.Username,
			password: creds.Password,
			ip:       "",
			setupMocks: func(client *mocks.MockClient, store *handoffMocks.MockStore) {
				client.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().Put(gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
			contains:     []string{NoticeFieldsRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			store := handoffMocks.NewMockStore(ctrl)
			tt.setupMocks(client, store)

			h := NewLoginHandler(client, store, newRenderer(t), healthURL)

			w := httptest.NewRecorder()
			h.Login(w, loginRequest(tt.username, tt.password, tt.ip))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, w.Header().Get("Location"))
			}
			for _, s := range tt.contains {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

// TestLoginRejectedKeepsFields Проверяет, что после отказа бэкенда все поля формы сохраняют введённые значения.
func TestLoginRejectedKeepsFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	store := handoffMocks.NewMockStore(ctrl)
	client.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, errs.NewErrRejected("login", "Bad creds")).Times(1)
	store.EXPECT().Put(gomock.Any()).Times(0)

	h := NewLoginHandler(client, store, newRenderer(t), healthURL)

	w := httptest.NewRecorder()
	h.Login(w, loginRequest("alice", "s3cret", "10.0.0.5"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Location"))

	body := w.Body.String()
	assert.Contains(t, body, "Login failed: Bad creds")
	assert.Contains(t, body, `id="username" name="username" type="text" placeholder="Username" value="alice"`)
	assert.Contains(t, body, `id="password" name="password" type="password" placeholder="Password" value="s3cret"`)
	assert.Contains(t, body, `id="ip" name="ip" type="text" placeholder="IP address" value="10.0.0.5"`)
}

// TestLoginInFlight Проверяет, что повторная отправка формы во время выполнения запроса игнорируется.
func TestLoginInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	unblock := make(chan struct{})

	client := mocks.NewMockClient(ctrl)
	store := handoffMocks.NewMockStore(ctrl)
	client.EXPECT().Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.Credentials) (*models.NavigationPayload, error) {
			close(started)
			<-unblock
			return nil, errs.NewErrRejected("login", "Invalid credentials")
		}).Times(1)

	h := NewLoginHandler(client, store, newRenderer(t), healthURL)

	var wg sync.WaitGroup
	first := httptest.NewRecorder()
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.Login(first, loginRequest("alice", "s3cret", "10.0.0.5"))
	}()

	<-started

	second := httptest.NewRecorder()
	h.Login(second, loginRequest("alice", "s3cret", "10.0.0.5"))

	close(unblock)
	wg.Wait()

	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), NoticeInProgress)
	assert.Equal(t, http.StatusUnauthorized, first.Code)
}

// TestLoginRenderError Проверяет ответ при ошибке отрисовки формы.
func TestLoginRenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := viewMocks.NewMockRenderer(ctrl)
	renderer.EXPECT().RenderLogin(gomock.Any(), gomock.Any()).Return(errors.New("broken template")).Times(1)

	h := NewLoginHandler(mocks.NewMockClient(ctrl), handoffMocks.NewMockStore(ctrl), renderer, healthURL)

	w := httptest.NewRecorder()
	h.LoginPage(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
