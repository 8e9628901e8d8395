package ai

import "context"

// AI is the external completion service. It knows nothing about FAQs,
// businesses or HTTP.
type AI interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) Result
}

// Result is either a completion text or the reason the call failed.
type Result struct {
	Text string
	Err  error
}

func Success(text string) Result { return Result{Text: text} }

func Failure(err error) Result { return Result{Err: err} }

func (r Result) OK() bool { return r.Err == nil }
