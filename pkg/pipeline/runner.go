package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/onionring/pkg/counttree"
	"github.com/matzehuels/onionring/pkg/render/ring/layout"
	"github.com/matzehuels/onionring/pkg/render/ring/sink"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// results between runs. Multiple goroutines can safely use the same
// Runner with different inputs and options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, stage events are
// discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Logger: logger}
}

// Result holds everything a completed pipeline run produced.
type Result struct {
	Tree      *counttree.Tree
	Layout    layout.Layout
	Artifacts map[string][]byte
	Stats     Stats
}

// Stats records per-stage timing and output size for a run.
type Stats struct {
	BuildTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
	WedgeCount int
}

// Execute runs the complete build → layout → render pipeline.
func (r *Runner) Execute(input Input, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Build the count tree
	buildStart := time.Now()
	tree, err := r.BuildTree(input)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Tree = tree
	result.Stats.BuildTime = time.Since(buildStart)

	opts.Logger.Info("built count tree",
		"depth", tree.Depth(),
		"total", tree.GrandTotal(),
		"duration", result.Stats.BuildTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := r.ComputeLayout(tree, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.WedgeCount = len(l.Wedges)

	opts.Logger.Info("computed layout",
		"rings", l.Rings,
		"wedges", len(l.Wedges),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildTree resolves the input into a balanced count tree.
func (r *Runner) BuildTree(input Input) (*counttree.Tree, error) {
	return input.buildTree()
}

// ComputeLayout turns a count tree into a ring layout using the
// layout-related options.
func (r *Runner) ComputeLayout(tree *counttree.Tree, opts Options) (layout.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Layout{}, err
	}
	return layout.Build(tree, opts.layoutOptions()...)
}

// Render produces one artifact per requested format, keyed by format
// name.
func (r *Runner) Render(l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			var svgOpts []sink.SVGOption
			if opts.ShortLabels {
				svgOpts = append(svgOpts, sink.WithSVGShortLabels())
			}
			artifacts[format] = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			pngOpts := []sink.PNGOption{sink.WithPNGScale(opts.PNGScale)}
			if opts.ShortLabels {
				pngOpts = append(pngOpts, sink.WithPNGShortLabels())
			}
			data, err := sink.RenderPNG(l, pngOpts...)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatJSON:
			data, err := sink.RenderJSON(l, sink.WithJSONIndent())
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		default:
			if err := ValidateFormat(format); err != nil {
				return nil, err
			}
		}
	}
	return artifacts, nil
}

// applyLogger keeps an explicit per-options logger if the caller set
// one, otherwise uses the runner's.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
