package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mikebutak/Locastore/internal/account"
	"github.com/mikebutak/Locastore/internal/middleware"
	"github.com/mikebutak/Locastore/internal/search"
	"github.com/mikebutak/Locastore/internal/session"
)

type fakeGateway struct {
	result     *search.Result
	searchErr  error
	detail     *search.Detail
	detailErr  error
	resolveErr error

	gotLocation string
	gotTerm     string
	gotRadius   float64
}

func (f *fakeGateway) Search(_ context.Context, location, term string, radius float64) (*search.Result, error) {
	f.gotLocation = location
	f.gotTerm = term
	f.gotRadius = radius
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.result, nil
}

func (f *fakeGateway) Details(_ context.Context, id string) (*search.Detail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	d := *f.detail
	return &d, nil
}

func (f *fakeGateway) ResolveWebsite(_ context.Context, d *search.Detail) error {
	if f.resolveErr != nil {
		return f.resolveErr
	}
	d.Website = "https://resolved.example"
	return nil
}

type fakeAccounts struct {
	registerID  string
	registerErr error
	verify      account.VerifyResult

	gotUsername string
}

func (f *fakeAccounts) Register(_ context.Context, username, _ string) (string, error) {
	f.gotUsername = username
	return f.registerID, f.registerErr
}

func (f *fakeAccounts) Verify(_ context.Context, username, _ string) account.VerifyResult {
	f.gotUsername = username
	return f.verify
}

type fakeFavorites struct {
	saveErr error
	list    []search.Summary
	listErr error

	savedUser  string
	saved      []search.Summary
	listedUser string
}

func (f *fakeFavorites) Save(_ context.Context, username string, b search.Summary) error {
	f.savedUser = username
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, b)
	return nil
}

func (f *fakeFavorites) List(_ context.Context, username string) ([]search.Summary, error) {
	f.listedUser = username
	return f.list, f.listErr
}

type testServer struct {
	router *gin.Engine
	store  *session.MemoryStore
}

func newTestServer(t *testing.T, gw *fakeGateway, accounts *fakeAccounts, favs *fakeFavorites) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })

	if gw == nil {
		gw = &fakeGateway{}
	}
	if accounts == nil {
		accounts = &fakeAccounts{}
	}
	if favs == nil {
		favs = &fakeFavorites{}
	}

	h := New(gw, store, accounts, favs, search.NewBlacklist())

	router := gin.New()
	router.Use(middleware.GinSession(middleware.NewSessionMiddleware(store)))
	h.RegisterRoutes(router, middleware.GinRequireUser())

	return &testServer{router: router, store: store}
}

func (ts *testServer) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// seedSession plants a session directly in the store and returns the
// cookie a client would present for it.
func (ts *testServer) seedSession(t *testing.T, mutate func(*session.Session)) *http.Cookie {
	t.Helper()
	sess, err := session.New()
	require.NoError(t, err)
	if mutate != nil {
		mutate(&sess)
	}
	require.NoError(t, ts.store.Create(context.Background(), sess))
	return &http.Cookie{Name: session.CookieName, Value: sess.ID}
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}
