package pipeline

import (
	"context"

	"github.com/spf13/afero"

	"github.com/backmassage/coursegen/internal/check"
	"github.com/backmassage/coursegen/internal/config"
	"github.com/backmassage/coursegen/internal/outline"
)

// PlanResult is what a run would produce, without producing it.
type PlanResult struct {
	Requests []outline.Request `yaml:"requests" json:"requests"`
	Tally    outline.Tally     `yaml:"tally" json:"tally"`
}

// Plan walks the outline exactly like [Run] but against a dry-run resolver
// and collects the generation requests instead of writing pages. Existing
// section folders are still looked up so reuse is reflected in the result.
func Plan(ctx context.Context, cfg *config.Config, fs afero.Fs) (PlanResult, error) {
	var res PlanResult

	if err := check.RequireOutline(fs, cfg.Outline); err != nil {
		return res, err
	}
	lines, err := outline.ReadLines(fs, cfg.Outline)
	if err != nil {
		return res, err
	}

	walker := outline.NewWalker(NewFolderResolver(fs, cfg.OutputDir, true))
	res.Requests = []outline.Request{}
	res.Tally, err = walker.Walk(ctx, lines, func(req outline.Request) error {
		res.Requests = append(res.Requests, req)
		return nil
	})
	return res, err
}
