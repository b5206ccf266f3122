// Package pipeline provides the layout pipeline shared by the CLI and the
// HTTP API.
//
// The pipeline has two stages:
//
//  1. Layout: compute a layered layout of a graph with the Sugiyama engine
//  2. Render: turn the layout into output formats (JSON, DOT, SVG)
//
// Both stages are cached through a [cache.Cache]; keys are derived from the
// content hash of the input and the options that affect the output. The
// package also applies pane insertion requests for the layout tree engine.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Formats: []string{"svg"}}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	layout, err := runner.GenerateLayout(ctx, g, opts)
//	artifacts, err := runner.Render(ctx, layout, opts)
//
// # Configuration
//
// [LoadConfig] reads a TOML file with [layout], [cache] and [server] tables.
// See [Config].
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacklayout/pkg/cache"
	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/graph"
	"github.com/matzehuels/stacklayout/pkg/sugiyama"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains the configuration of one pipeline run.
// This struct supports JSON serialization for API requests and TOML for the
// [layout] table of the config file.
//
// Zero geometry values mean "use the engine default".
type Options struct {
	NodeWidth    float64 `json:"node_width,omitempty" toml:"node_width"`
	NodeHeight   float64 `json:"node_height,omitempty" toml:"node_height"`
	LayerSpacing float64 `json:"layer_spacing,omitempty" toml:"layer_spacing"`
	NodeSpacing  float64 `json:"node_spacing,omitempty" toml:"node_spacing"`

	// Render options
	Formats  []string `json:"formats,omitempty" toml:"formats"`
	Detailed bool     `json:"detailed,omitempty" toml:"detailed"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty" toml:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// GraphHash is the content hash of the input graph.
	GraphHash string

	// Layout is the computed layout.
	Layout graph.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Crossings  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero geometry with the engine defaults, renders JSON
// when no format is given, and installs a discarding logger.
func (o *Options) SetDefaults() {
	def := sugiyama.DefaultOptions()
	if o.NodeWidth == 0 {
		o.NodeWidth = def.NodeWidth
	}
	if o.NodeHeight == 0 {
		o.NodeHeight = def.NodeHeight
	}
	if o.LayerSpacing == 0 {
		o.LayerSpacing = def.LayerSpacing
	}
	if o.NodeSpacing == 0 {
		o.NodeSpacing = def.NodeSpacing
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks geometry and formats.
func (o *Options) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"node_width", o.NodeWidth},
		{"node_height", o.NodeHeight},
		{"layer_spacing", o.LayerSpacing},
		{"node_spacing", o.NodeSpacing},
	} {
		if f.value < 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be a non-negative number, got %v", f.name, f.value)
		}
	}
	return ValidateFormats(o.Formats)
}

// ValidateAndSetDefaults applies defaults and validates. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// Geometry returns the engine options.
func (o *Options) Geometry() sugiyama.Options {
	return sugiyama.Options{
		NodeWidth:    o.NodeWidth,
		NodeHeight:   o.NodeHeight,
		LayerSpacing: o.LayerSpacing,
		NodeSpacing:  o.NodeSpacing,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		NodeWidth:    o.NodeWidth,
		NodeHeight:   o.NodeHeight,
		LayerSpacing: o.LayerSpacing,
		NodeSpacing:  o.NodeSpacing,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Detailed: o.Detailed,
	}
}
