package navigation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
)

// DefaultMetadataKey is the store key the navigation tree is written under
// when the caller does not configure one.
const DefaultMetadataKey = "navigation"

// Sink is the metadata store the finished tree is written into. It is a
// collaborator owned by the caller; internal/store implementations satisfy
// it.
type Sink interface {
	Put(ctx context.Context, key string, value []byte) error
}

// Options configures a navigation build. All fields are optional.
type Options struct {
	// MetadataKey is the store key for the resulting tree. Defaults to
	// DefaultMetadataKey.
	MetadataKey string

	// UsePermalinks selects clean (extensionless, trailing-slash) URLs
	// instead of literal file paths.
	UsePermalinks bool

	// NavIndex maps canonical paths to explicit sort indices, consulted for
	// nodes without a page-level override.
	NavIndex map[string]int

	// SortBy breaks ties between nodes with equal effective indices.
	SortBy TiebreakFunc

	// ExcludePatterns remove matching pages from navigation.
	ExcludePatterns []Pattern

	// RootPath scopes the stored tree to one section's children. "/" (the
	// default) keeps the full tree.
	RootPath string
}

func (o Options) mode() Mode {
	if o.UsePermalinks {
		return ModeClean
	}
	return ModeLiteral
}

func (o Options) metadataKey() string {
	if o.MetadataKey == "" {
		return DefaultMetadataKey
	}
	return o.MetadataKey
}

func (o Options) rootPath() string {
	if o.RootPath == "" {
		return "/"
	}
	return o.RootPath
}

// Result is the outcome of one build pass.
type Result struct {
	// Tree is the (possibly section-scoped) forest written to the store.
	Tree []*Node

	// Full is the complete unextracted forest; breadcrumbs are resolved
	// against it regardless of section scoping.
	Full []*Node

	Pages    int
	Excluded int
	Depth    int
	Duration time.Duration
}

// Build runs the full navigation pass over the supplied page mapping:
// exclusion filter, tree construction, sorting, section extraction, then
// per-page URL and breadcrumb annotation against the full tree.
//
// Build is pure with respect to its collaborators: it touches no store and
// records no metrics. It mutates the supplied pages only by writing their
// URL and Breadcrumbs annotations. Panics from caller-supplied predicates
// or comparators propagate unchanged.
func Build(pages map[string]*Page, opts Options) *Result {
	start := time.Now()
	mode := opts.mode()

	// Map iteration order is unspecified; fix it for deterministic output.
	paths := make([]string, 0, len(pages))
	for p := range pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	included := make([]string, 0, len(paths))
	excluded := 0
	for _, p := range paths {
		if IsExcluded(p, pages[p], opts.ExcludePatterns) {
			excluded++
			continue
		}
		included = append(included, p)
	}

	full := BuildTree(included, pages, mode)
	SortTree(full, opts.NavIndex, opts.SortBy)
	scoped := ExtractSection(opts.rootPath(), full)

	// Every original page gets its annotations, excluded ones included;
	// their breadcrumb search simply ends at the deepest matching ancestor.
	for _, p := range paths {
		page := pages[p]
		if page == nil {
			continue
		}
		page.URL = ResolvePageURL(p, mode)
		page.Breadcrumbs = ResolveBreadcrumbs(page.URL, full)
	}

	return &Result{
		Tree:     scoped,
		Full:     full,
		Pages:    len(paths),
		Excluded: excluded,
		Depth:    TreeDepth(full),
		Duration: time.Since(start),
	}
}

// Builder wraps Build with the store sink and metrics recorder, forming the
// build-pipeline step the host invokes once per pass.
type Builder struct {
	opts Options
	sink Sink
	rec  metrics.Recorder
}

// NewBuilder creates a Builder. sink may be nil (tree is not persisted);
// rec may be nil (no metrics).
func NewBuilder(opts Options, sink Sink, rec metrics.Recorder) *Builder {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Builder{opts: opts, sink: sink, rec: rec}
}

// Run executes one build pass and writes the resulting tree to the sink
// under the configured metadata key. It returns exactly one completion
// outcome: the result and nil, or nil and the error.
func (b *Builder) Run(ctx context.Context, pages map[string]*Page) (*Result, error) {
	res := Build(pages, b.opts)

	b.rec.SetPages(res.Pages)
	b.rec.SetExcluded(res.Excluded)
	b.rec.SetTreeDepth(res.Depth)

	if b.sink != nil {
		data, err := json.Marshal(res.Tree)
		if err != nil {
			b.rec.IncBuildOutcome(metrics.OutcomeFailed)
			return nil, fmt.Errorf("marshal navigation tree: %w", err)
		}
		if err := b.sink.Put(ctx, b.opts.metadataKey(), data); err != nil {
			b.rec.IncBuildOutcome(metrics.OutcomeFailed)
			return nil, fmt.Errorf("store navigation tree under %q: %w", b.opts.metadataKey(), err)
		}
	}

	b.rec.ObserveBuildDuration(res.Duration)
	b.rec.IncBuildOutcome(metrics.OutcomeSuccess)
	slog.Debug("Navigation build pass complete",
		logfields.Pages(res.Pages),
		logfields.Excluded(res.Excluded),
		logfields.Depth(res.Depth),
		logfields.StoreKey(b.opts.metadataKey()),
		logfields.DurationMS(float64(res.Duration.Milliseconds())))
	return res, nil
}
