package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexZinkM/wallet-session/internal/api"
	"github.com/AlexZinkM/wallet-session/internal/crypto"
	"github.com/AlexZinkM/wallet-session/internal/handler"
	"github.com/AlexZinkM/wallet-session/internal/model"
	"github.com/AlexZinkM/wallet-session/internal/notify"
	"github.com/AlexZinkM/wallet-session/internal/session"
	"github.com/AlexZinkM/wallet-session/solana"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signUpBody = `{
	"password": "1234567890",
	"seedPhrase": "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	"accountName": "testaccount",
	"acknowledgedWarning": true,
	"acknowledgedBackup": true
}`

type testServer struct {
	handler http.Handler
	store   *session.Store
	queue   *notify.Queue
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	keystore, err := solana.NewKeystore(t.TempDir(), solana.WithScryptParams(crypto.Params{N: 1 << 10}))
	require.NoError(t, err)

	queue := notify.NewQueue(10)
	store := session.NewStore(keystore, queue, session.WithUnlocker(keystore))
	t.Cleanup(store.Close)

	return &testServer{
		handler: api.SetupRouter(handler.NewSessionHandler(store, nil), handler.NewNotificationHandler(queue)),
		store:   store,
		queue:   queue,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestGetSession(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	snapshot := decode[model.SessionSnapshot](t, rec)
	assert.Equal(t, model.SessionWelcome, snapshot.State)
	assert.True(t, snapshot.ModalOpen)

	rec = s.do(t, http.MethodPost, "/session", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSetStateAndHelp(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/session/state", `{"state":"signup"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SessionSignUp, decode[model.SessionSnapshot](t, rec).State)

	rec = s.do(t, http.MethodPost, "/session/state", `{"state":"nowhere"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/session/state", `{"state":"signedin"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/session/help", `{"open":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[model.SessionSnapshot](t, rec).ModalHelp)

	rec = s.do(t, http.MethodPost, "/session/help", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpValidationFailure(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/session/signup", `{"password":"123456789","seedPhrase":"bar","accountName":"test"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decode[model.ValidationErrorResponse](t, rec)
	assert.Equal(t, "validation_failed", resp.Code)
	assert.Contains(t, resp.Fields, "password")
	assert.Contains(t, resp.Fields, "accountName")
	assert.Contains(t, resp.Fields, "acknowledgedWarning")
	assert.Contains(t, resp.Fields, "acknowledgedBackup")

	assert.Equal(t, model.SessionWelcome, s.store.State().State)
	assert.Equal(t, 0, s.queue.Len())
}

func TestSignUpLockUnlockFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/session/signup", signUpBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[model.SignUpResponse](t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Account)
	assert.Equal(t, "testaccount", resp.Account.Name)
	assert.NotEmpty(t, resp.Account.Address)

	snapshot := s.store.State()
	assert.Equal(t, model.SessionSignedIn, snapshot.State)
	assert.False(t, snapshot.ModalOpen)

	rec = s.do(t, http.MethodGet, "/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	notes := decode[model.NotificationsResponse](t, rec).Notifications
	require.Len(t, notes, 1)
	assert.Contains(t, strings.ToLower(notes[0].Title), "signed up")
	assert.NotEmpty(t, notes[0].ID)

	rec = s.do(t, http.MethodPost, "/session/lock", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SessionLocked, decode[model.SessionSnapshot](t, rec).State)

	rec = s.do(t, http.MethodPost, "/session/unlock", `{"password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/session/unlock", `{"password":"1234567890"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SessionSignedIn, decode[model.SessionSnapshot](t, rec).State)

	rec = s.do(t, http.MethodPost, "/session/signout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	snapshot = decode[model.SessionSnapshot](t, rec)
	assert.Equal(t, model.SessionWelcome, snapshot.State)
	assert.Nil(t, snapshot.Account)
}

func TestSignUpAccountExists(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/session/signup", signUpBody)
	require.Equal(t, http.StatusOK, rec.Code)
	s.store.SignOut()
	s.queue.Drain()

	// same account name again: the keystore refuses to overwrite the wallet file
	rec = s.do(t, http.MethodPost, "/session/signup", signUpBody)
	require.Equal(t, http.StatusConflict, rec.Code)

	resp := decode[model.ErrorResponse](t, rec)
	assert.Equal(t, session.FailureAccountExists, resp.Code)
	assert.Equal(t, session.AccountExistsMessage, resp.Error)

	assert.Equal(t, model.SessionWelcome, s.store.State().State)
	assert.Equal(t, 0, s.queue.Len())
}

type providerFunc func(ctx context.Context, req model.CreateKeyRequest) (*model.Account, error)

func (f providerFunc) CreateKey(ctx context.Context, req model.CreateKeyRequest) (*model.Account, error) {
	return f(ctx, req)
}

func TestSignUpCreationFailure(t *testing.T) {
	provider := providerFunc(func(context.Context, model.CreateKeyRequest) (*model.Account, error) {
		return nil, errors.New("derivation failed")
	})
	queue := notify.NewQueue(10)
	store := session.NewStore(provider, queue)
	t.Cleanup(store.Close)
	router := api.SetupRouter(handler.NewSessionHandler(store, nil), handler.NewNotificationHandler(queue))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/session/signup", strings.NewReader(signUpBody)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[model.ErrorResponse](t, rec)
	assert.Equal(t, session.FailureCreation, resp.Code)
	assert.Equal(t, session.CreationFailedMessage, resp.Error)
	assert.Equal(t, model.SessionWelcome, store.State().State)
}

func TestSignUpDisplayNameWithSpaces(t *testing.T) {
	s := newTestServer(t)

	body := strings.Replace(signUpBody, `"testaccount"`, `"Kontō main"`, 1)
	rec := s.do(t, http.MethodPost, "/session/signup", body)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[model.SignUpResponse](t, rec)
	require.NotNil(t, resp.Account)
	assert.Equal(t, "Kontō main", resp.Account.Name)

	rec = s.do(t, http.MethodPost, "/session/lock", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPost, "/session/unlock", `{"password":"1234567890"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SessionSignedIn, s.store.State().State)
}

func TestLockRequiresSignedIn(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/session/lock", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/session/unlock", `{"password":"1234567890"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestNotificationsEmpty(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notifications":[]}`, rec.Body.String())
}
