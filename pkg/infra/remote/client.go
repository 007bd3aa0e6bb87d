package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/utils/safe"
)

// DefaultTimeout is the fixed ceiling for one remote call. A call that
// exceeds it surfaces as a network error instead of hanging.
const DefaultTimeout = 10 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the HTTP implementation of interfaces.RemoteService. All
// failures are collapsed into the types.ErrRemote* taxonomy: a structured
// error body, a transport-level failure, and anything else each map to
// exactly one category before callers see them.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

var _ interfaces.RemoteService = &Client{}

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

// WithTimeout replaces the default per-call ceiling. No effect when a
// custom HTTPClient is also set.
func WithTimeout(timeout time.Duration) Option {
	return func(x *Client) {
		if timeout <= 0 {
			return
		}
		if httpClient, ok := x.httpClient.(*http.Client); ok {
			httpClient.Timeout = timeout
		}
	}
}

func New(baseURL string, options ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// errorBody is the structured error shape of the monitoring service.
// Either field may carry the message.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// do issues one request and decodes the JSON response into out (when out
// is non-nil). badRequest is the taxonomy error an HTTP 400 maps to; the
// meaning of 400 depends on the endpoint.
func (x *Client) do(ctx context.Context, method, path string, query url.Values, reqBody, out any, badRequest error) error {
	endpoint := x.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body *bytes.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.V("path", path))
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("url", endpoint))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		// No response at all: timeouts, refused connections, DNS failures
		return goerr.Wrap(types.ErrRemoteNetwork, "unable to connect to monitoring service",
			goerr.V("url", endpoint),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return x.mapError(resp, endpoint, badRequest)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerr.Wrap(types.ErrRemoteServer, "failed to decode response",
				goerr.V("url", endpoint),
				goerr.V("cause", err.Error()),
			)
		}
	}

	return nil
}

func (x *Client) mapError(resp *http.Response, endpoint string, badRequest error) error {
	var body errorBody
	msg := fmt.Sprintf("monitoring service returned %d", resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		switch {
		case body.Detail != "":
			msg = body.Detail
		case body.Message != "":
			msg = body.Message
		}
	}

	var kind error
	switch {
	case resp.StatusCode == http.StatusNotFound:
		kind = types.ErrRemoteNotFound
	case resp.StatusCode == http.StatusBadRequest:
		kind = badRequest
	default:
		kind = types.ErrRemoteServer
	}

	return goerr.Wrap(kind, msg,
		goerr.V("url", endpoint),
		goerr.V("status_code", resp.StatusCode),
	)
}

func (x *Client) ListRepositories(ctx context.Context) ([]*model.RawRepository, error) {
	var repos []*model.RawRepository
	if err := x.do(ctx, http.MethodGet, "/api/repositories", nil, nil, &repos, types.ErrRemoteServer); err != nil {
		return nil, err
	}
	return repos, nil
}

func (x *Client) AddRepository(ctx context.Context, input *model.AddRepositoryInput) (*model.RawRepository, error) {
	reqBody := map[string]string{
		"url":          input.URL,
		"access_token": string(input.AccessToken),
	}

	var repo model.RawRepository
	// The service answers 400 for malformed URLs and duplicates
	if err := x.do(ctx, http.MethodPost, "/api/repositories", nil, reqBody, &repo, types.ErrValidationFailed); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (x *Client) GetRepository(ctx context.Context, id types.RepoID) (*model.RawRepository, error) {
	var repo model.RawRepository
	if err := x.do(ctx, http.MethodGet, "/api/repositories/"+url.PathEscape(string(id)), nil, nil, &repo, types.ErrRemoteServer); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (x *Client) UpdateRepository(ctx context.Context, id types.RepoID, isActive bool) (*model.RawRepository, error) {
	reqBody := map[string]bool{"is_active": isActive}

	var repo model.RawRepository
	if err := x.do(ctx, http.MethodPut, "/api/repositories/"+url.PathEscape(string(id)), nil, reqBody, &repo, types.ErrRemoteServer); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (x *Client) DeleteRepository(ctx context.Context, id types.RepoID) error {
	return x.do(ctx, http.MethodDelete, "/api/repositories/"+url.PathEscape(string(id)), nil, nil, nil, types.ErrRemoteServer)
}

func (x *Client) TriggerMonitoring(ctx context.Context, id types.RepoID) error {
	// A 400 here means the repository is paused on the remote side
	return x.do(ctx, http.MethodPost, "/api/repositories/"+url.PathEscape(string(id))+"/monitor", nil, nil, nil, types.ErrRemotePaused)
}

func (x *Client) ListResultsForRepository(ctx context.Context, id types.RepoID, limit int) ([]*model.RawResult, error) {
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}

	var results []*model.RawResult
	if err := x.do(ctx, http.MethodGet, "/api/repositories/"+url.PathEscape(string(id))+"/results", query, nil, &results, types.ErrRemoteServer); err != nil {
		return nil, err
	}
	return results, nil
}

func (x *Client) ListAllResults(ctx context.Context, limit int) ([]*model.RawResult, error) {
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}

	var results []*model.RawResult
	if err := x.do(ctx, http.MethodGet, "/api/monitoring/results", query, nil, &results, types.ErrRemoteServer); err != nil {
		return nil, err
	}
	return results, nil
}

func (x *Client) GetStats(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	if err := x.do(ctx, http.MethodGet, "/api/stats", nil, nil, &stats, types.ErrRemoteServer); err != nil {
		return nil, err
	}
	return &stats, nil
}
