package embeddings

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"

	_ "github.com/tursodatabase/go-libsql"
)

// CachingProvider wraps a Provider with a libSQL-backed vector cache so
// repeated keys skip the network. Cache entries are namespaced by provider
// name and dimensionality.
type CachingProvider struct {
	base Provider
	db   *sql.DB
}

const cacheSchema = `CREATE TABLE IF NOT EXISTS embedding_cache (
	provider TEXT NOT NULL,
	dims INTEGER NOT NULL,
	text TEXT NOT NULL,
	vector BLOB NOT NULL,
	PRIMARY KEY (provider, dims, text)
)`

// WrapWithCache opens (or creates) the cache database at url and returns a
// caching wrapper around base. The caller owns Close.
func WrapWithCache(base Provider, url string) (*CachingProvider, error) {
	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("open embedding cache %s: %w", url, err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize embedding cache schema: %w", err)
	}
	return &CachingProvider{base: base, db: db}, nil
}

func (p *CachingProvider) Name() string    { return p.base.Name() }
func (p *CachingProvider) Dimensions() int { return p.base.Dimensions() }

// Close releases the cache database.
func (p *CachingProvider) Close() error { return p.db.Close() }

func (p *CachingProvider) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return [][]float32{}, nil
	}
	out := make([][]float32, len(inputs))
	missIdx := make([]int, 0)
	missTexts := make([]string, 0)
	for i, in := range inputs {
		vec, err := p.lookup(ctx, in)
		if err != nil {
			return nil, err
		}
		if vec != nil {
			out[i] = vec
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, in)
	}
	if len(missTexts) == 0 {
		return out, nil
	}
	vecs, err := p.base.Embed(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(missTexts) {
		return nil, fmt.Errorf("%s returned %d vectors for %d inputs", p.base.Name(), len(vecs), len(missTexts))
	}
	for j, vec := range vecs {
		out[missIdx[j]] = vec
		if err := p.store(ctx, missTexts[j], vec); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (p *CachingProvider) lookup(ctx context.Context, text string) ([]float32, error) {
	var blob []byte
	err := p.db.QueryRowContext(ctx,
		"SELECT vector FROM embedding_cache WHERE provider = ? AND dims = ? AND text = ?",
		p.base.Name(), p.base.Dimensions(), text).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("embedding cache lookup: %w", err)
	}
	vec, err := decodeVector(blob)
	if err != nil {
		return nil, fmt.Errorf("embedding cache entry for %q: %w", text, err)
	}
	return vec, nil
}

func (p *CachingProvider) store(ctx context.Context, text string, vec []float32) error {
	_, err := p.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO embedding_cache (provider, dims, text, vector) VALUES (?, ?, ?, ?)",
		p.base.Name(), p.base.Dimensions(), text, encodeVector(vec))
	if err != nil {
		return fmt.Errorf("embedding cache store: %w", err)
	}
	return nil
}

// encodeVector packs a vector as little-endian float32 bits.
func encodeVector(vec []float32) []byte {
	out := make([]byte, len(vec)*4)
	for i, f := range vec {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

func decodeVector(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("invalid vector blob size %d", len(blob))
	}
	vec := make([]float32, len(blob)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4 : (i+1)*4]))
	}
	return vec, nil
}
