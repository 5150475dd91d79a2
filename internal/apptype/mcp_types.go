package apptype

// ShapeshiftArgs represents the arguments for the shapeshift tool
type ShapeshiftArgs struct {
	Source any `json:"source" jsonschema:"The source object whose values should be carried over."`
	Target any `json:"target" jsonschema:"The target template whose shape the result should take."`
}

// HealthArgs represents the arguments for the health_check tool
type HealthArgs struct{}

// HealthResult reports engine configuration and status
type HealthResult struct {
	Status    string  `json:"status"`
	Provider  string  `json:"provider"`
	Dims      int     `json:"dims"`
	Threshold float64 `json:"threshold"`
}
