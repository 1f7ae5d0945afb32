package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/macproducts/routergen/internal/common"
	"github.com/macproducts/routergen/internal/llm"
)

// GenerateRouter implements llm.RouterGenerator. The drawing is attached
// inline as a PDF part next to the instruction prompt; the call blocks until
// the model responds or the configured timeout elapses. Cancellation is not
// retried; a timeout surfaces as a failure result.
func (c *Client) GenerateRouter(ctx context.Context, req llm.GenerateRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	if len(req.PDF) == 0 {
		return "", common.InvalidInputError("no drawing attached")
	}
	if req.Quantity < 1 {
		return "", common.InvalidInputErrorf("quantity must be positive, got %d", req.Quantity)
	}

	c.logger.Info("llm.generate.start",
		"req_id", rid,
		"session_id", common.SessionIDFromContext(ctx),
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"pdf_bytes", len(req.PDF),
		"filename", req.Filename,
		"quantity", req.Quantity,
	)

	ctx, cancel := common.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	prompt := llm.BuildPrompt(c.kb, req.Quantity, time.Now())
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(req.PDF, "application/pdf"),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.cfg.Temperature),
		TopP:            genai.Ptr(c.cfg.TopP),
		TopK:            genai.Ptr(c.cfg.TopK),
		MaxOutputTokens: c.cfg.MaxOutputTokens,
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.Model, contents, cfg)
	if err != nil {
		c.logger.Error("llm.generate.call_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.UpstreamError("gemini generate", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		c.logger.Error("llm.generate.empty_response",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.UpstreamError("empty response from model", nil)
	}

	c.logger.Info("llm.generate.ok",
		"req_id", rid,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
