// Package yourei looks up example sentences on yourei.jp.
package yourei

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/jisho-examples/internal/domain"
)

const (
	// DefaultBaseURL is the page prefix a percent-encoded word is appended to.
	DefaultBaseURL = "https://yourei.jp/"

	// DefaultTimeout matches the lookup.timeout config default.
	DefaultTimeout = 15 * time.Second
)

// Provider fetches example sentences from yourei.jp.
// It performs exactly one GET per lookup and never retries.
type Provider struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides the page prefix (for testing or mirrors).
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) { p.baseURL = baseURL }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) { p.httpClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(p *Provider) { p.userAgent = ua }
}

// NewProvider creates a Provider pointing at DefaultBaseURL.
func NewProvider(logger *slog.Logger, opts ...Option) *Provider {
	p := &Provider{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        logger.With("adapter", "yourei"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PageURL returns the lookup page for word. The word's UTF-8 bytes are
// escaped as a query component, so a space becomes "+".
func (p *Provider) PageURL(word string) string {
	base := p.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.QueryEscape(word)
}

// FetchSentence returns the first example sentence for word with furigana
// removed, or domain.Sentinel when the page has no sentence.
// Only transport failures are returned as errors; an unexpected status or
// unparseable page degrades to domain.Sentinel.
func (p *Provider) FetchSentence(ctx context.Context, word string) (string, error) {
	reqURL := p.PageURL(word)

	p.log.DebugContext(ctx, "yourei request", slog.String("word", word), slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("yourei: create request: %w", err)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "yourei request failed", slog.String("word", word), slog.String("error", err.Error()))
		return "", fmt.Errorf("yourei: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.WarnContext(ctx, "yourei unexpected status",
			slog.String("word", word),
			slog.Int("status", resp.StatusCode),
		)
	}

	sentence, err := extractSentence(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		p.log.WarnContext(ctx, "yourei page not parsed", slog.String("word", word), slog.String("error", err.Error()))
		return domain.Sentinel, nil
	}

	p.log.DebugContext(ctx, "yourei response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Bool("found", sentence != domain.Sentinel),
	)

	return sentence, nil
}
