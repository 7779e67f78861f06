package collect

import (
	"context"

	"hwscan/internal/record"
	"hwscan/internal/runner"
)

// fact describes one platform-specific field: the shell command producing
// it and an optional parser for successful output. Textual facts (nil
// parse) degrade to "Not available" on command failure; numeric facts
// degrade to "Unknown" on either command failure or unparsable output,
// preserving the failed-vs-unparsable distinction for textual fields.
type fact struct {
	key     string
	command string
	parse   func(text string) (any, bool)
}

// runFacts executes a fact table in order. Every attempted field ends up
// in the record, holding either a value or a sentinel.
func (c *Collector) runFacts(ctx context.Context, rec *record.Record, facts []fact) {
	for _, f := range facts {
		res := c.runner.Output(ctx, f.command)

		if f.parse == nil {
			rec.Set(f.key, res.OrSentinel())
			continue
		}
		if !res.OK {
			rec.Set(f.key, runner.Unknown)
			continue
		}
		v, ok := f.parse(res.Text)
		if !ok {
			rec.Set(f.key, runner.Unknown)
			continue
		}
		rec.Set(f.key, v)
	}
}
