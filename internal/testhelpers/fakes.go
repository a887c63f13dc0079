package testhelpers

import (
	"context"
	"errors"
)

// ScriptedCompleter plays back queued responses in order and records the
// prompts it received. With Err set every call fails, which exercises the
// fallback paths.
type ScriptedCompleter struct {
	Responses []string
	Err       error
	Prompts   []string
}

func (c *ScriptedCompleter) Complete(_ context.Context, prompt string) (string, error) {
	c.Prompts = append(c.Prompts, prompt)
	if c.Err != nil {
		return "", c.Err
	}
	if len(c.Responses) == 0 {
		return "", errors.New("scripted completer: no responses left")
	}
	response := c.Responses[0]
	c.Responses = c.Responses[1:]
	return response, nil
}

// FailingEmbedder simulates an unavailable hosted embedding model.
type FailingEmbedder struct {
	Calls int
}

func (e *FailingEmbedder) Name() string            { return "failing" }
func (e *FailingEmbedder) Prepare([]string) error  { return nil }
func (e *FailingEmbedder) Dimension() int          { return 0 }
func (e *FailingEmbedder) Embed(context.Context, string) ([]float64, error) {
	e.Calls++
	return nil, errors.New("embedding model unavailable")
}
