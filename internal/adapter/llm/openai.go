package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"paraqa/internal/domain"
	"paraqa/internal/port"
)

const (
	// DefaultModel is used when the config does not name one.
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds a single chat completion call.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxTokens caps the generated answer length.
	DefaultMaxTokens = 1000

	// defaultSystemPrompt is the persona given to the model. The
	// original corpus is Portuguese, hence the bilingual template.
	defaultSystemPrompt = "Você é um assistente especializado que responde perguntas com base no contexto fornecido."

	// userTemplate pairs the concatenated context with the query.
	userTemplate = "Contexto:\n%s\n\nPergunta: %s\nPor favor, responda com base apenas no contexto fornecido."

	// EmptyAnswerFallback substitutes for a response with no content.
	EmptyAnswerFallback = "Não foi possível gerar uma resposta."
)

// ErrNotConfigured is returned by the unconfigured variant; callers are
// expected to branch on Available instead of hitting it.
var ErrNotConfigured = errors.New("synthesizer not configured: no API key available")

// Options configure the OpenAI-backed synthesizer.
type Options struct {
	Model        string
	SystemPrompt string
	MaxTokens    int
}

// New reads the API key from the named environment variable and returns
// the configured synthesizer, or the unconfigured variant when no key
// is present. Absence of a credential is a valid state, not an error.
func New(apiKeyEnv string, opts Options) port.Synthesizer {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return Unconfigured{}
	}
	return newOpenAISynthesizer(apiKey, opts)
}

// OpenAISynthesizer generates answers with the OpenAI chat API.
type OpenAISynthesizer struct {
	client       openai.Client
	model        string
	systemPrompt string
	maxTokens    int
	timeout      time.Duration
}

func newOpenAISynthesizer(apiKey string, opts Options) *OpenAISynthesizer {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.SystemPrompt == "" {
		opts.SystemPrompt = defaultSystemPrompt
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &OpenAISynthesizer{
		client:       openai.NewClient(option.WithAPIKey(apiKey)),
		model:        opts.Model,
		systemPrompt: opts.SystemPrompt,
		maxTokens:    opts.MaxTokens,
		timeout:      DefaultTimeout,
	}
}

func (s *OpenAISynthesizer) Available() bool { return true }

// SetTimeout overrides the per-call timeout.
func (s *OpenAISynthesizer) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// Answer submits the query and the chunk contents (in ranked order,
// joined by blank lines) to the chat API and returns the first choice's
// text, or EmptyAnswerFallback when the service returns no content.
func (s *OpenAISynthesizer) Answer(ctx context.Context, query string, chunks []domain.Chunk, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	contents := make([]string, len(chunks))
	for i, chunk := range chunks {
		contents[i] = chunk.Content
	}
	contextBlock := strings.Join(contents, "\n\n")

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(s.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userTemplate, contextBlock, query)),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(s.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return EmptyAnswerFallback, nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Unconfigured is the no-credential variant of the synthesizer.
type Unconfigured struct{}

func (Unconfigured) Available() bool { return false }

func (Unconfigured) Answer(context.Context, string, []domain.Chunk, float64) (string, error) {
	return "", ErrNotConfigured
}
