package ai

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"go.uber.org/zap"
)

// DefaultModel is used when no model is configured
const DefaultModel = "gpt-5-mini"

const defaultMaxOutputTokens = 4000

// Request is a single instruction sent to the model. A nil Schema asks for plain text.
type Request struct {
	Name         string
	Instructions string
	Input        string
	Schema       map[string]any
}

// Completer sends one request and returns the raw model text
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Options configures the OpenAI backed gateway
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Client is the AI content gateway. The underlying transport is built on
// first use; a failed build is remembered and returned on every later call.
type Client struct {
	opts   Options
	logger *zap.Logger

	mu        sync.Mutex
	completer Completer
	initErr   error
}

// NewClient creates a gateway that connects lazily
func NewClient(opts Options, logger *zap.Logger) *Client {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return &Client{opts: opts, logger: logger}
}

// NewClientWithCompleter creates a gateway over an existing transport
func NewClientWithCompleter(c Completer, logger *zap.Logger) *Client {
	return &Client{completer: c, logger: logger}
}

func (c *Client) transport() (Completer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initErr != nil {
		return nil, c.initErr
	}
	if c.completer != nil {
		return c.completer, nil
	}

	if c.opts.APIKey == "" {
		c.initErr = &ConfigError{Reason: "OPENAI_API_KEY is not set"}
		c.logger.Error("AI features disabled", zap.Error(c.initErr))
		return nil, c.initErr
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(c.opts.APIKey)}
	if c.opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(c.opts.BaseURL))
	}
	client := openai.NewClient(reqOpts...)
	c.completer = &responsesCompleter{client: &client, model: c.opts.Model}
	return c.completer, nil
}

// complete runs a request and returns the trimmed text
func (c *Client) complete(ctx context.Context, req Request) (string, error) {
	t, err := c.transport()
	if err != nil {
		return "", err
	}

	text, err := t.Complete(ctx, req)
	if err != nil {
		c.logger.Error("AI request failed",
			zap.String("op", req.Name),
			zap.Error(err),
		)
		return "", fmt.Errorf("%s: %w", req.Name, err)
	}
	return text, nil
}

// completeJSON runs a structured request and decodes the answer into out
func (c *Client) completeJSON(ctx context.Context, req Request, out any) error {
	text, err := c.complete(ctx, req)
	if err != nil {
		return err
	}
	if err := decodeModelJSON(text, out); err != nil {
		c.logger.Warn("AI returned undecodable JSON",
			zap.String("op", req.Name),
			zap.Int("len", len(text)),
			zap.Error(err),
		)
		return &ShapeError{Op: req.Name, Detail: err.Error()}
	}
	return nil
}

type responsesCompleter struct {
	client *openai.Client
	model  string
}

func (r *responsesCompleter) Complete(ctx context.Context, req Request) (string, error) {
	params := responses.ResponseNewParams{
		Model:           r.model,
		MaxOutputTokens: openai.Int(defaultMaxOutputTokens),
		Instructions:    openai.String(req.Instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(req.Input, responses.EasyInputMessageRoleUser),
			},
		},
	}
	if req.Schema != nil {
		params.Text = responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:   req.Name,
					Schema: req.Schema,
					Strict: openai.Bool(true),
					Type:   "json_schema",
				},
			},
		}
	}

	resp, err := r.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", errors.New("empty response")
	}
	return resp.OutputText(), nil
}
