package apptype

// TransformResult is the outcome of a shapeshift call: a value shaped like
// the target, populated from the source where a similar enough key was found,
// plus the diagnostics describing how the pairing was derived.
type TransformResult struct {
	Result    any         `json:"result"`
	DebugInfo Diagnostics `json:"debug_info"`
}

// Diagnostics captures the flattened key lists and the embedding batches for
// one call, in traversal order (vector i corresponds to key i).
type Diagnostics struct {
	SourceKeys       []string    `json:"source_keys"`
	TargetKeys       []string    `json:"target_keys"`
	SourceEmbeddings [][]float32 `json:"source_embeddings"`
	TargetEmbeddings [][]float32 `json:"target_embeddings"`
}
