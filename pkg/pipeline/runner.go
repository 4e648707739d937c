package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gridboard/gridboard/pkg/cache"
	"github.com/gridboard/gridboard/pkg/definition"
	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/observability"
	"github.com/gridboard/gridboard/pkg/render/sink"
)

// Runner executes the pipeline with artifact caching. It is stateless apart
// from its cache and logger; the same Runner can serve multiple goroutines
// with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Definition is the parsed dashboard definition.
	Definition *definition.Definition

	// DefinitionHash is the content hash of the definition source.
	DefinitionHash string

	// Body is the assembled dashboard document.
	Body grid.Body

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHits lists the formats served from the cache.
	CacheHits map[string]bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WidgetCount int
	LoadTime    time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// Execute runs the complete load, build and render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		CacheHits: make(map[string]bool),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Path)
	def, source, err := r.load(opts)
	observability.Pipeline().OnLoadComplete(ctx, opts.Path, time.Since(loadStart), err)
	if err != nil {
		return nil, err
	}
	result.Definition = def
	result.DefinitionHash = cache.Hash(source)
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Debug("loaded definition",
		"title", def.Title,
		"rows", len(def.Rows),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, len(def.BodyInput().Widgets))
	body, err := r.Build(def, opts.Region)
	observability.Pipeline().OnBuildComplete(ctx, len(body.Widgets), time.Since(buildStart), err)
	if err != nil {
		return nil, err
	}
	result.Body = body
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.WidgetCount = len(body.Widgets)

	r.Logger.Info("built dashboard body",
		"widgets", result.Stats.WidgetCount,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	var renderErr error
	for _, format := range opts.Formats {
		artifact, hit, err := r.renderCached(ctx, result, opts, format)
		if err != nil {
			renderErr = err
			break
		}
		result.Artifacts[format] = artifact
		result.CacheHits[format] = hit
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, renderErr)
	if renderErr != nil {
		return nil, renderErr
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build assembles the body for a parsed definition. The region argument
// overrides the definition's own region when non-empty.
func (r *Runner) Build(def *definition.Definition, region string) (grid.Body, error) {
	if region == "" {
		region = def.Region
	}
	return grid.BuildBody(def.BodyInput(), grid.Env{Region: region})
}

// load resolves the definition from source bytes or a file path and returns
// the parsed definition along with the raw source used for hashing.
func (r *Runner) load(opts Options) (*definition.Definition, []byte, error) {
	if opts.Path != "" {
		def, err := definition.Load(opts.Path)
		if err != nil {
			return nil, nil, err
		}
		// Hash the normalized parse input, not the path, so moving the
		// file does not invalidate the cache.
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, nil, err
		}
		return def, data, nil
	}
	def, err := definition.Parse(opts.Source)
	if err != nil {
		return nil, nil, err
	}
	return def, opts.Source, nil
}

// renderCached renders one format, consulting the artifact cache first.
func (r *Runner) renderCached(ctx context.Context, result *Result, opts Options, format string) ([]byte, bool, error) {
	key := cache.ArtifactKey(result.DefinitionHash, cache.ArtifactKeyOpts{
		Format:  format,
		Region:  opts.Region,
		Compact: opts.Compact,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			r.Logger.Debug("artifact cache hit", "format", format)
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	artifact, err := r.render(result, opts, format)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, artifact, 0); err != nil {
		// Cache failures degrade to uncached operation.
		r.Logger.Warn("artifact cache write failed", "format", format, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(artifact))
	}
	return artifact, false, nil
}

// render produces one artifact from the built body.
func (r *Runner) render(result *Result, opts Options, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		var jsonOpts []sink.JSONOption
		if opts.Compact {
			jsonOpts = append(jsonOpts, sink.WithJSONCompact())
		}
		return sink.RenderJSON(result.Body, jsonOpts...)
	case FormatText:
		return []byte(sink.RenderText(result.Body)), nil
	case FormatDOT:
		return []byte(sink.TreeDOT(r.tree(result))), nil
	case FormatSVG:
		return sink.RenderSVG(sink.TreeDOT(r.tree(result)))
	}
	return nil, ValidateFormat(format)
}

// tree rebuilds the normalized widget tree for structural formats. Building
// is cheap and keeps Result free of engine internals.
func (r *Runner) tree(result *Result) grid.Widget {
	in := result.Definition.BodyInput()
	rows := in.Widgets
	if len(rows) > 0 && rows[0].Kind() != grid.KindRow {
		rows = []grid.Widget{grid.NewRow(in.Widgets...)}
	}
	return grid.NewColumn(rows...)
}
