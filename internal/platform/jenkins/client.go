package jenkins

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/imamik/kscaffold/internal/config"
)

// Client is the CI API used by the provisioner and the get-pipeline command.
type Client interface {
	// CreatePipeline creates the job appName in folder from an XML job definition.
	CreatePipeline(ctx context.Context, folder, appName, document string) error
	// GetPipeline returns the raw XML job definition. Non-2xx responses are
	// not errors; the body is returned as is.
	GetPipeline(ctx context.Context, folder, appName string) (string, error)
}

// RealClient implements Client over HTTP.
type RealClient struct {
	baseURL    string
	user       string
	token      string
	httpClient *http.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// NewRealClient creates a client for the CI server described by settings.
// timeout bounds each request; zero means no limit.
func NewRealClient(settings config.CISettings, timeout time.Duration, opts ...ClientOption) (*RealClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = timeout
	if settings.InsecureSkipTLSVerify {
		transport := hc.Transport.(*http.Transport)
		// #nosec G402
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	c := &RealClient{
		baseURL:    strings.TrimRight(settings.URL, "/"),
		user:       settings.User,
		token:      settings.Token,
		httpClient: hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreatePipeline implements Client.
func (c *RealClient) CreatePipeline(ctx context.Context, folder, appName, document string) error {
	endpoint := fmt.Sprintf("%s%s/createItem?%s", c.baseURL, jobPath(folder), url.Values{"name": {appName}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(document))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/xml")
	req.SetBasicAuth(c.user, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to create pipeline %s/%s: %w", folder, appName, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method:     req.Method,
			URL:        req.URL.Redacted(),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// GetPipeline implements Client.
func (c *RealClient) GetPipeline(ctx context.Context, folder, appName string) (string, error) {
	endpoint := fmt.Sprintf("%s%s/config.xml", c.baseURL, jobPath(folder, appName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.user, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get pipeline %s/%s: %w", folder, appName, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read pipeline %s/%s: %w", folder, appName, err)
	}
	return string(body), nil
}

// jobPath maps a slash separated item path such as "team/sub" to the
// CI server's URL form "/job/team/job/sub".
func jobPath(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		for _, segment := range strings.Split(part, "/") {
			if segment == "" {
				continue
			}
			b.WriteString("/job/")
			b.WriteString(url.PathEscape(segment))
		}
	}
	return b.String()
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
