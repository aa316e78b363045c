package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ascendquiz/ascendquiz/internal/store"
)

// loggingProvider records every request as an LLM event so `llm list`
// and `llm view` can show what was sent and what came back.
type loggingProvider struct {
	inner  Provider
	events store.EventRepo
}

// WithLogging wraps a Provider with event recording.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &loggingProvider{inner: p, events: repo}
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed write must not fail the generation itself.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

// renderRequest flattens a request into the readable transcript stored
// on the event.
func renderRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n" + req.System + "\n\n")
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
