package consolefmt

// FormatOption configures Format.
type FormatOption func(*formatConfig)

type formatConfig struct {
	rescan bool
}

// WithRescan makes %s, %d, %i and %f substitutions part of the remaining
// input, so specifiers and escapes inside a substituted string are expanded
// too. This mirrors the browser console. Without it the substitution is
// spliced in verbatim.
func WithRescan(enabled bool) FormatOption {
	return func(cfg *formatConfig) {
		cfg.rescan = enabled
	}
}

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	noColor  bool
	hardWrap bool
}

// WithColor enables or disables SGR output. Disabled output is plain text.
func WithColor(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.noColor = !enabled
	}
}

// WithHardWrap breaks words longer than the render width.
func WithHardWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.hardWrap = enabled
	}
}
