package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/fixwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/repository"
	"github.com/m-mizutani/fixwatch/pkg/utils/errutil"
	"github.com/m-mizutani/fixwatch/pkg/utils/logging"
)

// Server is the local HTTP API consumed by the dashboard frontend. It is
// a thin shell over the use case layer; all lifecycle and aggregation
// logic lives there.
type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"detail":"encoding failure"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

type errResponse struct {
	Detail string `json:"detail"`
}

// respondError maps the error taxonomy onto HTTP statuses. Unexpected
// failures are reported through errutil before answering 500.
func respondError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var code int
	switch {
	case errors.Is(err, types.ErrValidationFailed),
		errors.Is(err, types.ErrInvalidState),
		errors.Is(err, types.ErrRemotePaused):
		code = http.StatusBadRequest
	case errors.Is(err, types.ErrRemoteNotFound),
		errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, types.ErrStaleResponse):
		code = http.StatusConflict
	case errors.Is(err, types.ErrRemoteNetwork):
		code = http.StatusBadGateway
	default:
		code = http.StatusInternalServerError
	}

	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), msg, err)
	} else {
		logging.From(r.Context()).Warn(msg, slog.Any("error", err))
	}

	respondJSON(w, code, errResponse{Detail: err.Error()})
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Route("/repositories", func(r chi.Router) {
			r.Get("/", handleListRepositories(uc))
			r.Post("/", handleAddRepository(uc))
			r.Route("/{repoID}", func(r chi.Router) {
				r.Get("/", handleRepositoryDetail(uc))
				r.Put("/", handleUpdateRepository(uc))
				r.Delete("/", handleDeleteRepository(uc))
				r.Post("/monitor", handleTriggerMonitoring(uc))
				r.Get("/status", handleTriggerStatus(uc))
			})
		})
		r.Get("/monitoring/results", handleResults(uc))
		r.Get("/activity", handleActivity(uc))
		r.Get("/stats", handleStats(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func handleListRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := uc.SyncRepositories(ctx); err != nil {
			respondError(w, r, "fail to sync repositories", err)
			return
		}

		repos, err := uc.ListRepositories(ctx)
		if err != nil {
			respondError(w, r, "fail to list repositories", err)
			return
		}

		respondJSON(w, http.StatusOK, toRepoResponses(repos))
	}
}

func handleAddRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			URL         string `json:"url"`
			AccessToken string `json:"access_token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, errResponse{Detail: "invalid request body"})
			return
		}

		repo, err := uc.AddRepository(r.Context(), &model.AddRepositoryInput{
			URL:         req.URL,
			AccessToken: types.AccessToken(req.AccessToken),
		})
		if err != nil {
			respondError(w, r, "fail to add repository", err)
			return
		}

		respondJSON(w, http.StatusCreated, toRepoResponse(repo))
	}
}

func handleRepositoryDetail(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RepoID(chi.URLParam(r, "repoID"))

		detail, err := uc.LoadRepositoryDetail(r.Context(), id)
		if err != nil {
			respondError(w, r, "fail to load repository detail", err)
			return
		}

		respondJSON(w, http.StatusOK, detailResponse{
			Repository: toRepoResponse(detail.Repository),
			Results:    toResultResponses(detail.Results),
		})
	}
}

func handleUpdateRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RepoID(chi.URLParam(r, "repoID"))

		var req struct {
			IsActive *bool `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
			respondJSON(w, http.StatusBadRequest, errResponse{Detail: "is_active is required"})
			return
		}

		repo, err := uc.SetRepositoryActive(r.Context(), id, *req.IsActive)
		if err != nil {
			respondError(w, r, "fail to update repository", err)
			return
		}

		respondJSON(w, http.StatusOK, toRepoResponse(repo))
	}
}

func handleDeleteRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RepoID(chi.URLParam(r, "repoID"))

		if err := uc.RemoveRepository(r.Context(), id); err != nil {
			respondError(w, r, "fail to delete repository", err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"message": "Repository deleted successfully"})
	}
}

func handleTriggerMonitoring(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RepoID(chi.URLParam(r, "repoID"))

		// The run outlives the request; the request context dies with
		// the HTTP response
		ctx := DetachContext(r.Context())

		if err := uc.TriggerMonitoring(ctx, id); err != nil {
			respondError(w, r, "fail to trigger monitoring", err)
			return
		}

		respondJSON(w, http.StatusAccepted, map[string]string{"message": "Monitoring triggered successfully"})
	}
}

func handleTriggerStatus(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RepoID(chi.URLParam(r, "repoID"))

		respondJSON(w, http.StatusOK, map[string]string{
			"phase": string(uc.TriggerPhase(id)),
		})
	}
}

func handleResults(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := uc.SyncRepositories(ctx); err != nil {
			respondError(w, r, "fail to sync repositories", err)
			return
		}
		if err := uc.RefreshResults(ctx); err != nil {
			respondError(w, r, "fail to refresh results", err)
			return
		}

		filter := model.FilterState{
			Status:     queryOrAll(r, "status"),
			Repository: queryOrAll(r, "repository"),
			Search:     r.URL.Query().Get("search"),
		}

		filtered, err := uc.FilteredResults(ctx, filter)
		if err != nil {
			respondError(w, r, "fail to filter results", err)
			return
		}

		counts, err := uc.StatusCounts(ctx)
		if err != nil {
			respondError(w, r, "fail to count results", err)
			return
		}

		all, err := uc.Results(ctx)
		if err != nil {
			respondError(w, r, "fail to list results", err)
			return
		}

		respondJSON(w, http.StatusOK, resultsResponse{
			Results: toResultResponses(filtered),
			Total:   len(all),
			Counts: statusCounts{
				Success: counts[types.ResultStatusSuccess],
				Failure: counts[types.ResultStatusFailure],
				Error:   counts[types.ResultStatusError],
				Unknown: counts[types.ResultStatusUnknown],
			},
		})
	}
}

func handleActivity(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				respondJSON(w, http.StatusBadRequest, errResponse{Detail: "invalid limit"})
				return
			}
			limit = n
		}

		if err := uc.SyncRepositories(ctx); err != nil {
			respondError(w, r, "fail to sync repositories", err)
			return
		}
		if err := uc.RefreshResults(ctx); err != nil {
			respondError(w, r, "fail to refresh results", err)
			return
		}

		entries, err := uc.RecentActivity(ctx, limit)
		if err != nil {
			respondError(w, r, "fail to build activity feed", err)
			return
		}

		respondJSON(w, http.StatusOK, toActivityResponses(entries))
	}
}

func handleStats(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := uc.Stats(r.Context())
		if err != nil {
			respondError(w, r, "fail to fetch stats", err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

func queryOrAll(r *http.Request, key string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return model.FilterAll
}
