package input

// CollectorBuilderOption is a functional option for configuring a Collector.
type CollectorBuilderOption func(*collectorImpl)

// WithBindings replaces the default key and mouse bindings.
// Nil maps are replaced with empty ones.
//
// Parameters:
//   - b: the bindings to use
//
// Returns:
//   - CollectorBuilderOption: option function to apply
func WithBindings(b Bindings) CollectorBuilderOption {
	return func(c *collectorImpl) {
		if b.Keys == nil {
			b.Keys = map[uint32]Action{}
		}
		if b.MouseButtons == nil {
			b.MouseButtons = map[uint32]Action{}
		}
		c.bindings = b
	}
}
