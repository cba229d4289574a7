// Package client is the typed REST client for the console API. The generic
// helpers marshal the params and unmarshal the response, so services avoid
// any boilerplate and get compile-time checked payload types.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"reflect"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v3"

	"github.com/itaas-cloud/vsphere-console-sdk/internal/common/core"
	"github.com/itaas-cloud/vsphere-console-sdk/pkg/config"
)

type Token string

func (t Token) String() string {
	return string(t)
}

type Client struct {
	HttpClient *http.Client
	BaseURL    *url.URL
	AuthToken  Token

	RetryMode    core.RetryMode
	RetryMaxTime time.Duration
}

// APIError is a non-2xx response from the console. The backend reports
// failures as {"detail": "..."}; Detail carries that message when present.
// A 404 unwraps to core.ErrNotFound so callers can errors.Is it.
type APIError struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error: %s - %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("API error: %s", e.Status)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return core.ErrNotFound
	}
	return nil
}

func New(config *config.Config) (*Client, error) {
	if config.Url == "" {
		return nil, errors.New("url is required")
	}

	baseURL, err := url.Parse(config.Url)
	if err != nil {
		return nil, core.ErrFailedToParseURL.WithArgs(err)
	}

	baseURL.Path = path.Join(baseURL.Path, "api")

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: config.InsecureSkipVerify,
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}

	client := &Client{
		HttpClient:   httpClient,
		BaseURL:      baseURL,
		RetryMode:    config.RetryMode,
		RetryMaxTime: config.RetryMaxTime,
	}

	if config.Token != "" {
		client.AuthToken = Token(config.Token)
	} else if config.Username != "" && config.Password != "" {
		token, err := client.authenticate(config.Username, config.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to authenticate: %w", err)
		}
		client.AuthToken = token
	}

	return client, nil
}

func (c *Client) authenticate(username, password string) (Token, error) {
	authURL := *c.BaseURL
	authURL.Path = path.Join(strings.TrimSuffix(c.BaseURL.Path, "api"), "auth/login")

	payload := map[string]string{
		"username": username,
		"password": password,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", core.ErrFailedToMarshalParams.WithArgs(err)
	}

	req, err := http.NewRequest(http.MethodPost, authURL.String(), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", core.ErrFailedToMakeRequest.WithArgs(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return "", core.ErrFailedToDoRequest.WithArgs(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to authenticate: %s", string(body))
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_token" {
			return Token(cookie.Value), nil
		}
	}

	return "", fmt.Errorf("no auth token found")
}

func (c *Client) do(ctx context.Context, method, endpoint string, params map[string]any, result any) error {
	reqURL := *c.BaseURL
	reqURL.Path = path.Join(reqURL.Path, endpoint)
	// The backend routes collections with a trailing slash and redirects
	// without one; preserve it so POSTs are not downgraded on redirect.
	if strings.HasSuffix(endpoint, "/") {
		reqURL.Path += "/"
	}

	var jsonData []byte
	bodyRequest := params != nil && (method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch)
	if bodyRequest {
		var err error
		jsonData, err = json.Marshal(params)
		if err != nil {
			return core.ErrFailedToMarshalParams.WithArgs(err)
		}
	} else if params != nil {
		q := reqURL.Query()
		for k, v := range params {
			q.Add(k, fmt.Sprintf("%v", v))
		}
		reqURL.RawQuery = q.Encode()
	}

	attempt := func() error {
		var reqBody io.Reader
		if bodyRequest {
			reqBody = bytes.NewReader(jsonData)
		}

		req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
		if err != nil {
			return backoff.Permanent(core.ErrFailedToMakeRequest.WithArgs(err))
		}

		req.Header.Set("Accept", "application/json")
		if reqBody != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.AuthToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.AuthToken.String())
		}

		resp, err := c.HttpClient.Do(req)
		if err != nil {
			// Transport failures are retryable.
			return core.ErrFailedToDoRequest.WithArgs(err)
		}
		defer resp.Body.Close()

		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(core.ErrFailedToReadResponseBody.WithArgs(err))
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := newAPIError(resp, bodyBytes)
			if resp.StatusCode >= 500 {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}

		if result != nil && len(bodyBytes) > 0 {
			if err := json.Unmarshal(bodyBytes, result); err != nil {
				return backoff.Permanent(core.ErrFailedToUnmarshalResponse.WithArgs(
					fmt.Sprintf("%v, body: %s", err, string(bodyBytes))))
			}
		}

		return nil
	}

	return c.retry(ctx, attempt)
}

func (c *Client) retry(ctx context.Context, attempt func() error) error {
	if c.RetryMode != core.Backoff {
		err := attempt()
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			return permanent.Err
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.RetryMaxTime

	return backoff.Retry(attempt, backoff.WithContext(policy, ctx))
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		apiErr.Detail = detail.Detail
	} else if len(body) > 0 {
		apiErr.Detail = string(body)
	}

	return apiErr
}

// Download fetches a binary endpoint (the spreadsheet export) and returns
// the payload together with the filename from Content-Disposition, empty
// when the server does not suggest one.
func (c *Client) Download(ctx context.Context, endpoint string) ([]byte, string, error) {
	reqURL := *c.BaseURL
	reqURL.Path = path.Join(reqURL.Path, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, "", core.ErrFailedToMakeRequest.WithArgs(err)
	}
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken.String())
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, "", core.ErrFailedToDoRequest.WithArgs(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", core.ErrFailedToReadResponseBody.WithArgs(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", newAPIError(resp, bodyBytes)
	}

	filename := ""
	if disposition := resp.Header.Get("Content-Disposition"); disposition != "" {
		if _, fields, err := mime.ParseMediaType(disposition); err == nil {
			filename = fields["filename"]
		}
	}

	return bodyBytes, filename, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]any, result any) error {
	return c.do(ctx, http.MethodGet, endpoint, params, result)
}

func TypedGet[P any, R any](ctx context.Context, c *Client, endpoint string, params P, result *R) error {
	paramsMap, err := toParamsMap(params)
	if err != nil {
		return err
	}
	return c.get(ctx, endpoint, paramsMap, result)
}

func (c *Client) post(ctx context.Context, endpoint string, params map[string]any, result any) error {
	return c.do(ctx, http.MethodPost, endpoint, params, result)
}

func TypedPost[P any, R any](ctx context.Context, c *Client, endpoint string, params P, result *R) error {
	paramsMap, err := toParamsMap(params)
	if err != nil {
		return err
	}
	return c.post(ctx, endpoint, paramsMap, result)
}

func (c *Client) put(ctx context.Context, endpoint string, params map[string]any, result any) error {
	return c.do(ctx, http.MethodPut, endpoint, params, result)
}

func TypedPut[P any, R any](ctx context.Context, c *Client, endpoint string, params P, result *R) error {
	paramsMap, err := toParamsMap(params)
	if err != nil {
		return err
	}
	return c.put(ctx, endpoint, paramsMap, result)
}

func (c *Client) delete(ctx context.Context, endpoint string, params map[string]any, result any) error {
	return c.do(ctx, http.MethodDelete, endpoint, params, result)
}

func TypedDelete[P any, R any](ctx context.Context, c *Client, endpoint string, params P, result *R) error {
	paramsMap, err := toParamsMap(params)
	if err != nil {
		return err
	}
	return c.delete(ctx, endpoint, paramsMap, result)
}

func toParamsMap[P any](params P) (map[string]any, error) {
	var paramsMap map[string]any

	if !reflect.ValueOf(params).IsZero() {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, core.ErrFailedToMarshalParams.WithArgs(err)
		}
		if err := json.Unmarshal(data, &paramsMap); err != nil {
			return nil, core.ErrFailedToUnmarshalParams.WithArgs(err)
		}
	}

	return paramsMap, nil
}
