package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangNguyenDev3/WanderSphere/internal/config"
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(&config.Config{
		APIBaseURL:         srv.URL + "/api/v1",
		HTTPTimeoutSeconds: 5,
	})
	require.NoError(t, err)
	return client
}

func TestLoginStoresSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "wanderer_1", req.UserName)

		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "abc123", Path: "/"})
		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			Message: "ok",
			User:    models.User{UserID: 7, UserName: "wanderer_1"},
		})
	})
	mux.HandleFunc("GET /api/v1/newsfeed", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_id")
		require.NoError(t, err, "session cookie must ride along automatically")
		assert.Equal(t, "abc123", cookie.Value)
		_ = json.NewEncoder(w).Encode(models.NewsfeedResponse{PostsIDs: []int64{101}})
	})

	client := testClient(t, mux)
	resp, err := client.Login(context.Background(), models.LoginRequest{UserName: "wanderer_1", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.User.UserID)

	ids, err := client.GetNewsfeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, ids)
}

func TestUnauthorizedFiresHookAndMapsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/newsfeed", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := testClient(t, mux)
	hookCalls := 0
	client.SetUnauthorizedHook(func() { hookCalls++ })

	_, err := client.GetNewsfeed(context.Background())
	require.Error(t, err)
	assert.True(t, models.IsUnauthorized(err))
	assert.Equal(t, 1, hookCalls)
}

func TestBackendErrorBodyIsSurfaced(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/posts/99", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "not found", Message: "post does not exist"})
	})

	client := testClient(t, mux)
	_, err := client.GetPost(context.Background(), 99)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "post does not exist", appErr.Message)
}

func TestNetworkFailureMapsToAppError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close() // connection refused from here on

	client, err := New(&config.Config{APIBaseURL: base + "/api/v1", HTTPTimeoutSeconds: 1})
	require.NoError(t, err)

	_, err = client.GetNewsfeed(context.Background())
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NETWORK_ERROR", appErr.Code)
}

func TestSearchUsersEncodesQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/users/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jane doe", r.URL.Query().Get("q"))
		_ = json.NewEncoder(w).Encode(models.SearchUsersResponse{
			Users: []models.User{{UserID: 3, UserName: "jane"}},
		})
	})

	client := testClient(t, mux)
	users, err := client.SearchUsers(context.Background(), "jane doe")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "jane", users[0].UserName)
}

func TestRequestIDHeaderAttached(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/newsfeed", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_ = json.NewEncoder(w).Encode(models.NewsfeedResponse{PostsIDs: []int64{}})
	})

	client := testClient(t, mux)
	_, err := client.GetNewsfeed(context.Background())
	require.NoError(t, err)
}
