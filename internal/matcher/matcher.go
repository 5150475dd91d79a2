// Package matcher implements the shapeshift engine: it flattens source and
// target values, embeds their leaf keys, greedily pairs target keys with the
// most similar unused source keys, and rebuilds a value shaped like the
// target.
package matcher

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/HumanAssisted/shapeshift-go/internal/apptype"
	"github.com/HumanAssisted/shapeshift-go/internal/embeddings"
	"github.com/HumanAssisted/shapeshift-go/internal/flatten"
	"github.com/HumanAssisted/shapeshift-go/internal/metrics"
	"github.com/HumanAssisted/shapeshift-go/internal/similarity"
)

// Engine maps source values onto target templates by embedding similarity of
// their flattened key paths. Configuration is fixed at construction; a single
// Engine is safe for concurrent Shapeshift calls.
type Engine struct {
	provider  embeddings.Provider
	threshold float64
	cache     *embeddings.CachingProvider // non-nil only when caching is enabled
}

// NewEngine builds an Engine from cfg, constructing the embedding provider
// and optional cache/dimension wrappers.
func NewEngine(cfg *Config) (*Engine, error) {
	provider, err := embeddings.New(cfg.Provider, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, err
	}
	var cache *embeddings.CachingProvider
	if cfg.CacheURL != "" {
		cache, err = embeddings.WrapWithCache(provider, cfg.CacheURL)
		if err != nil {
			return nil, err
		}
		provider = cache
	}
	if cfg.EmbeddingDims > 0 {
		provider = embeddings.WrapToDims(provider, cfg.EmbeddingDims, "")
	}
	return &Engine{provider: provider, threshold: cfg.Threshold, cache: cache}, nil
}

// NewEngineWithProvider builds an Engine around an already-constructed
// provider. Used by tests and by callers with custom provider stacks.
func NewEngineWithProvider(provider embeddings.Provider, threshold float64) *Engine {
	return &Engine{provider: provider, threshold: threshold}
}

// Provider returns the engine's embedding provider.
func (e *Engine) Provider() embeddings.Provider { return e.provider }

// Threshold returns the configured acceptance threshold.
func (e *Engine) Threshold() float64 { return e.threshold }

// Close releases the embedding cache, if one was configured.
func (e *Engine) Close() error {
	if e.cache != nil {
		return e.cache.Close()
	}
	return nil
}

// Shapeshift maps the fields of source onto the shape of target. Every target
// leaf is populated with the value of the most similar unused source leaf
// whose similarity clears the threshold, or null otherwise. Matching is a
// greedy one-pass process in target traversal order: once a source key is
// claimed, later target keys that prefer it get null instead of falling back
// to their next-best candidate. Only a provider failure makes the call error;
// it then fails atomically with no partial result.
func (e *Engine) Shapeshift(ctx context.Context, source, target any) (*apptype.TransformResult, error) {
	done := metrics.TimeShapeshift(e.provider.Name())
	var success bool
	defer func() { done(success) }()

	sourceFlat, sourceKeys := flatten.Flatten(source)
	_, targetKeys := flatten.Flatten(target)

	sourceEmb, targetEmb, err := e.embedBoth(ctx, sourceKeys, targetKeys)
	if err != nil {
		return nil, err
	}

	result := make(map[string]any)
	used := make(map[string]struct{}, len(sourceKeys))
	for i, targetKey := range targetKeys {
		idx := closestMatch(targetEmb[i], sourceEmb, e.threshold)
		if idx < 0 {
			flatten.Insert(result, targetKey, nil)
			continue
		}
		sourceKey := sourceKeys[idx]
		if _, taken := used[sourceKey]; taken {
			// First claim wins; no fallback to the next-best source key.
			flatten.Insert(result, targetKey, nil)
			continue
		}
		flatten.Insert(result, targetKey, sourceFlat[sourceKey])
		used[sourceKey] = struct{}{}
	}

	success = true
	return &apptype.TransformResult{
		Result: result,
		DebugInfo: apptype.Diagnostics{
			SourceKeys:       sourceKeys,
			TargetKeys:       targetKeys,
			SourceEmbeddings: sourceEmb,
			TargetEmbeddings: targetEmb,
		},
	}, nil
}

// embedBoth requests the two key batches concurrently. Each batch's response
// order is the request order, so vector i still corresponds to key i.
func (e *Engine) embedBoth(ctx context.Context, sourceKeys, targetKeys []string) ([][]float32, [][]float32, error) {
	var sourceEmb, targetEmb [][]float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sourceEmb, err = e.embed(gctx, sourceKeys)
		if err != nil {
			return fmt.Errorf("embed source keys: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		targetEmb, err = e.embed(gctx, targetKeys)
		if err != nil {
			return fmt.Errorf("embed target keys: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sourceEmb, targetEmb, nil
}

func (e *Engine) embed(ctx context.Context, keys []string) ([][]float32, error) {
	done := metrics.TimeEmbed(e.provider.Name())
	vecs, err := e.provider.Embed(ctx, keys)
	done(err == nil)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(keys) {
		return nil, fmt.Errorf("provider %s returned %d vectors for %d keys", e.provider.Name(), len(vecs), len(keys))
	}
	return vecs, nil
}

// closestMatch returns the index of the candidate most similar to vec, or -1
// when no candidate clears the threshold. Ties keep the earliest candidate.
func closestMatch(vec []float32, candidates [][]float32, threshold float64) int {
	best := -1
	bestScore := 0.0
	for i, c := range candidates {
		score := similarity.Cosine(vec, c)
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 || bestScore < threshold {
		return -1
	}
	return best
}
