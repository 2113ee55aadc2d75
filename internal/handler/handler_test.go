package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/auth"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/config"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/repository"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/service"
)

const testSecret = "test-secret"

// newTestRouter wires the whole stack on fresh in-memory state.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
		BaseURL:   "http://localhost:8080",
	}

	store := repository.NewMemoryStore()
	carts := repository.NewCartStore()
	catalog := repository.NewCatalog(repository.DefaultProducts())

	svc := service.NewService(store, carts, catalog, nil, log, cfg)
	h := NewHandler(svc, log, cfg.BaseURL)
	return NewRouter(h, []byte(cfg.JWTSecret), log)
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func signupAndLogin(t *testing.T, router *mux.Router, username, password string) string {
	t.Helper()

	rec := doJSON(t, router, "POST", "/signup", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "POST", "/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestBannerAndHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "running", decodeBody(t, rec)["status"])

	rec = doJSON(t, router, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Server is running", decodeBody(t, rec)["message"])
}

func TestSignup_DuplicateRejected(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	body := map[string]string{"username": "alice", "password": "pass123"}
	rec := doJSON(t, router, "POST", "/signup", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, decodeBody(t, rec)["id"])

	rec = doJSON(t, router, "POST", "/signup", "", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// /register is the same identity space as /signup.
	rec = doJSON(t, router, "POST", "/register", "", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	signupAndLogin(t, router, "alice", "pass123")

	rec := doJSON(t, router, "POST", "/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
}

func TestBlogScenario(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := signupAndLogin(t, router, "alice", "pass123")

	rec := doJSON(t, router, "POST", "/posts", token, map[string]string{
		"title": "First Post", "content": "Hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	post := decodeBody(t, rec)["post"].(map[string]interface{})
	postID := post["id"].(string)
	require.Equal(t, "alice", post["author"].(map[string]interface{})["username"])

	rec = doJSON(t, router, "GET", "/posts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listing := decodeBody(t, rec)
	require.Equal(t, float64(1), listing["count"])
	posts := listing["posts"].([]interface{})
	require.Len(t, posts, 1)
	require.Equal(t, "alice", posts[0].(map[string]interface{})["author"].(map[string]interface{})["username"])

	rec = doJSON(t, router, "POST", "/posts/"+postID+"/comments", token, map[string]string{
		"content": "Nice!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	comment := decodeBody(t, rec)["comment"].(map[string]interface{})
	require.Equal(t, "alice", comment["author"].(map[string]interface{})["username"])

	rec = doJSON(t, router, "GET", "/posts/"+postID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(1), decodeBody(t, rec)["count"])

	// The populated post shows the same single comment.
	rec = doJSON(t, router, "GET", "/posts/"+postID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)["post"].(map[string]interface{})
	require.Len(t, got["comments"].([]interface{}), 1)
}

func TestPostValidationAndNotFound(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := signupAndLogin(t, router, "alice", "pass123")

	rec := doJSON(t, router, "POST", "/posts", token, map[string]string{"title": "no content"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, "GET", "/posts/missing-id", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, "GET", "/posts/missing-id/comments", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, "POST", "/posts/missing-id/comments", token, map[string]string{"content": "hi"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartScenario(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := signupAndLogin(t, router, "bob", "pass123")

	rec := doJSON(t, router, "GET", "/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 8)

	rec = doJSON(t, router, "POST", "/cart", token, map[string]int{"productId": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "POST", "/cart", token, map[string]int{"productId": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Len(t, cart, 2)
	require.NotEqual(t, cart[0]["cartItemId"], cart[1]["cartItemId"])

	firstID := cart[0]["cartItemId"].(string)
	rec = doJSON(t, router, "DELETE", "/cart/"+firstID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Len(t, cart, 1)
	require.Equal(t, float64(2), cart[0]["productId"])

	rec = doJSON(t, router, "POST", "/cart", token, map[string]int{"productId": 999})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// No token: 401.
	rec := doJSON(t, router, "POST", "/posts", "", map[string]string{"title": "t", "content": "c"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, "POST", "/cart", "", map[string]int{"productId": 1})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, "GET", "/cart", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Tampered token: 403.
	bad, err := auth.GenerateToken("u1", []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	rec = doJSON(t, router, "POST", "/posts", bad, map[string]string{"title": "t", "content": "c"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Expired token: 403.
	expired, err := auth.GenerateToken("u1", []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	rec = doJSON(t, router, "GET", "/cart", expired, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFeed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := signupAndLogin(t, router, "alice", "pass123")

	rec := doJSON(t, router, "POST", "/posts", token, map[string]string{
		"title": "Feed me", "content": "body",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "GET", "/feed", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/rss+xml")
	require.Contains(t, rec.Body.String(), "<title>Feed me</title>")
}
