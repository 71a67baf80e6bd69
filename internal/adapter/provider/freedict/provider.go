package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/textscanner/internal/domain"
	"github.com/heartmarshall/textscanner/internal/provider"
)

const (
	// DefaultBaseURL is the public FreeDictionary API.
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

	serviceName = "dictionary"
)

// Provider fetches definitions from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProviderWithURL creates a Provider against a custom base URL.
func NewProviderWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// FetchDefinition looks up a single word.
// Returns nil, nil when the word is unknown: HTTP 404, or a payload without
// entry[0].meanings[0].definitions[0].
func (p *Provider) FetchDefinition(ctx context.Context, word string) (*provider.Definition, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, domain.NewUpstreamError(serviceName, "Failed to fetch definition", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    "Failed to fetch definition",
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, "Failed to fetch definition", fmt.Errorf("read body: %w", err))
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, domain.NewUpstreamError(serviceName, "Failed to fetch definition", fmt.Errorf("decode json: %w", err))
	}

	def := firstDefinition(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("entries", len(entries)),
		slog.Bool("found", def != nil),
	)

	return def, nil
}

// firstDefinition picks entry[0].meanings[0].definitions[0]. Any missing
// level means the word is treated as not found.
func firstDefinition(entries []apiEntry) *provider.Definition {
	if len(entries) == 0 {
		return nil
	}
	entry := entries[0]
	if len(entry.Meanings) == 0 {
		return nil
	}
	meaning := entry.Meanings[0]
	if len(meaning.Definitions) == 0 {
		return nil
	}
	def := meaning.Definitions[0]
	if strings.TrimSpace(def.Definition) == "" {
		return nil
	}

	return &provider.Definition{
		Text:         def.Definition,
		PartOfSpeech: meaning.PartOfSpeech,
		Example:      def.Example,
	}
}
