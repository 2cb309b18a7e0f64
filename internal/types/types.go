package types

// PageConfig holds per-route options.
type PageConfig struct {
	TextExport bool
	Unlisted   bool
}

type PageOption func(*PageConfig)

// WithTextExport makes static export also write index.txt for the route.
func WithTextExport() PageOption {
	return func(c *PageConfig) {
		c.TextExport = true
	}
}

// WithUnlisted keeps the route out of the projects index.
func WithUnlisted() PageOption {
	return func(c *PageConfig) {
		c.Unlisted = true
	}
}

func NewPageConfig(opts ...PageOption) PageConfig {
	var c PageConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
