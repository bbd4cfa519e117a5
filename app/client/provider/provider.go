package provider

import (
	"context"

	"aidesk/app/config"

	"github.com/samber/do"
)

// Attachment is a binary payload sent to the model alongside the prompt text.
type Attachment struct {
	MimeType string
	Data     []byte
}

// Gateway is the single capability consumed from an LLM vendor: given a
// prompt and optional attachments, return free-form text.
type Gateway interface {
	Complete(ctx context.Context, prompt string, attachments []Attachment) (string, error)
}

func New(di *do.Injector) (Gateway, error) {
	appCtx := do.MustInvoke[context.Context](di)
	cfg := do.MustInvoke[*config.Config](di)

	switch cfg.AI.Vendor {
	case "gemini":
		return NewGemini(appCtx, cfg.AI.Gemini)
	default:
		return NewOpenAI(cfg.AI.OpenAI), nil
	}
}
