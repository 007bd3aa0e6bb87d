package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/infra/remote"
	"github.com/m-mizutani/fixwatch/pkg/utils/testutil"
)

func TestListRepositories(t *testing.T) {
	t.Run("decodes both identifier spellings", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/api/repositories")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":"repo-1","name":"api-server","owner":"acme","url":"u","is_active":true,"created_at":"2025-05-01T09:00:00Z"},
				{"_id":"repo-2","name":"frontend","owner":"acme","url":"u","is_active":false,"created_at":"2025-05-01T09:00:00Z"}
			]`))
		}))
		defer srv.Close()

		client := remote.New(srv.URL)
		repos := gt.R1(client.ListRepositories(context.Background())).NoError(t)

		gt.A(t, repos).Length(2).
			At(0, func(t testing.TB, v *model.RawRepository) {
				gt.V(t, v.ID).Equal("repo-1")
			}).
			At(1, func(t testing.TB, v *model.RawRepository) {
				gt.V(t, v.AltID).Equal("repo-2")
			})
	})

	t.Run("connection failure maps to the network category", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // listening socket is gone

		client := remote.New(srv.URL, remote.WithTimeout(500*time.Millisecond))
		_, err := client.ListRepositories(context.Background())

		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRemoteNetwork))
	})
}

func TestErrorMapping(t *testing.T) {
	serveError := func(code int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(code)
			_, _ = w.Write([]byte(body))
		}))
	}

	t.Run("404 maps to not found with the detail message", func(t *testing.T) {
		srv := serveError(http.StatusNotFound, `{"detail":"Repository not found"}`)
		defer srv.Close()

		client := remote.New(srv.URL)
		_, err := client.GetRepository(context.Background(), "nope")

		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRemoteNotFound))
		gt.S(t, err.Error()).Contains("Repository not found")
	})

	t.Run("message field carries the detail when detail is absent", func(t *testing.T) {
		srv := serveError(http.StatusInternalServerError, `{"message":"database exploded"}`)
		defer srv.Close()

		client := remote.New(srv.URL)
		_, err := client.GetStats(context.Background())

		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRemoteServer))
		gt.S(t, err.Error()).Contains("database exploded")
	})

	t.Run("unparseable error body falls back to the status code", func(t *testing.T) {
		srv := serveError(http.StatusBadGateway, `upstream says no`)
		defer srv.Close()

		client := remote.New(srv.URL)
		_, err := client.ListAllResults(context.Background(), 10)

		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRemoteServer))
		gt.S(t, err.Error()).Contains("502")
	})

	t.Run("400 on trigger means the repository is paused", func(t *testing.T) {
		srv := serveError(http.StatusBadRequest, `{"detail":"Monitoring is paused for this repository"}`)
		defer srv.Close()

		client := remote.New(srv.URL)
		err := client.TriggerMonitoring(context.Background(), "repo-1")

		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRemotePaused))
	})

	t.Run("400 on add means the input was rejected", func(t *testing.T) {
		srv := serveError(http.StatusBadRequest, `{"detail":"Repository already registered"}`)
		defer srv.Close()

		client := remote.New(srv.URL)
		_, err := client.AddRepository(context.Background(), &model.AddRepositoryInput{
			URL:         "https://github.com/acme/api-server",
			AccessToken: "tok",
		})

		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestRequestShape(t *testing.T) {
	t.Run("add posts url and token", func(t *testing.T) {
		var gotBody map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.NoError(t, jsonDecode(r, &gotBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"repo-new","name":"api-server"}`))
		}))
		defer srv.Close()

		client := remote.New(srv.URL)
		repo := gt.R1(client.AddRepository(context.Background(), &model.AddRepositoryInput{
			URL:         "https://github.com/acme/api-server",
			AccessToken: "tok",
		})).NoError(t)

		gt.V(t, repo.ID).Equal("repo-new")
		gt.V(t, gotBody["url"]).Equal("https://github.com/acme/api-server")
		gt.V(t, gotBody["access_token"]).Equal("tok")
	})

	t.Run("result listing forwards the limit", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/api/repositories/repo-1/results")
			gt.V(t, r.URL.Query().Get("limit")).Equal("25")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := remote.New(srv.URL)
		results := gt.R1(client.ListResultsForRepository(context.Background(), "repo-1", 25)).NoError(t)
		gt.A(t, results).Length(0)
	})

	t.Run("update puts the is_active flag", func(t *testing.T) {
		var gotBody map[string]bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPut)
			gt.V(t, r.URL.Path).Equal("/api/repositories/repo-1")
			gt.NoError(t, jsonDecode(r, &gotBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"repo-1","is_active":false}`))
		}))
		defer srv.Close()

		client := remote.New(srv.URL)
		repo := gt.R1(client.UpdateRepository(context.Background(), "repo-1", false)).NoError(t)

		gt.V(t, repo.IsActive).Equal(false)
		gt.V(t, gotBody["is_active"]).Equal(false)
	})
}

func jsonDecode(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

func TestLiveService(t *testing.T) {
	baseURL := testutil.GetEnvOrSkip(t, "TEST_FIXWATCH_API_URL")

	client := remote.New(baseURL)
	ctx := context.Background()

	repos := gt.R1(client.ListRepositories(ctx)).NoError(t)
	t.Logf("live service reports %d repositories", len(repos))

	stats := gt.R1(client.GetStats(ctx)).NoError(t)
	gt.V(t, stats.TotalRepositories >= 0).Equal(true)
}
