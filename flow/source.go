package flow

import "image"

// Source supplies the number of sections and the number of items in
// each. The engine pulls from it during Recompute only; queries never
// touch it.
type Source interface {
	Sections() int
	Items(section int) int
}

// Config carries the optional per-property override callbacks. Every
// field may be nil; a nil callback, or one reporting ok == false, falls
// back to the engine-wide default for that property. All callbacks are
// invoked synchronously during Recompute.
type Config struct {
	// ItemSize sizes a single item. Without it every item takes the
	// engine's ItemSize.
	ItemSize func(section, item int) (size image.Point, ok bool)

	Insets      func(section int) (Insets, bool)
	LineSpacing func(section int) (int, bool)
	ItemSpacing func(section int) (int, bool)
	Alignment   func(section int) (Alignment, bool)
	RowLimit    func(section int) (int, bool)

	// HeaderSize and FooterSize override the engine-wide reference
	// sizes. Only the extent along the scroll axis is honored; the
	// block always spans the container across it. A zero extent means
	// the section has no such block.
	HeaderSize func(section int) (image.Point, bool)
	FooterSize func(section int) (image.Point, bool)
}

// Sizes is a Source built from literal item sizes, one slice per
// section. Wire its ItemSize method into Config.ItemSize to use the
// listed sizes. Mostly useful in tests and examples.
type Sizes [][]image.Point

func (s Sizes) Sections() int {
	return len(s)
}

func (s Sizes) Items(section int) int {
	return len(s[section])
}

func (s Sizes) ItemSize(section, item int) (image.Point, bool) {
	return s[section][item], true
}
