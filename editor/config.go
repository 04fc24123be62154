package editor

import "github.com/iw2rmb/promptweight/weight"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	WrapMode     WrapMode
	TabWidth     int

	KeyMap KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly     bool
	ScrollPolicy ScrollPolicy

	Clipboard   Clipboard
	Highlighter Highlighter

	// OnChange is called after every update that changed the buffer version.
	OnChange func(ChangeEvent)

	// Weight configures the weight keys. WeightSource, when set, is consulted
	// on every key press instead, so hosts can swap the config at runtime.
	Weight       weight.Config
	WeightSource func() weight.Config
}

func (c Config) weightConfig() weight.Config {
	if c.WeightSource != nil {
		return c.WeightSource()
	}
	return c.Weight
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Weight == (weight.Config{}) {
		cfg.Weight = weight.DefaultConfig()
	}
	return cfg
}
