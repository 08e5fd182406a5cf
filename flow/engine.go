// Package flow computes the two-dimensional placement of rectangular
// items grouped into ordered sections. Items wrap into lines along the
// axis orthogonal to the scroll direction, every line is aligned within
// the leftover cross-axis space, and each section may carry a header, a
// footer and a cap on the number of visible lines.
//
// The engine is a pure geometry library: it renders nothing and owns no
// widget state. A host (see the widget package for a Gio one) calls
// Recompute whenever its data or bounds change and answers paint and
// hit-test questions from the resulting caches. All coordinates are
// integer pixels.
package flow

import (
	"image"
	"log"

	"gioui.org/layout"
)

// Debug enables logging of recoverable configuration errors, such as an
// alignment that does not match the scroll axis. Layout proceeds either
// way.
var Debug = false

type path struct {
	kind    Kind
	section int
	index   int
}

// Engine computes and caches the placement of every cell, header and
// footer. Configure the exported fields, then call Recompute; queries
// are answered from the caches built by the most recent Recompute.
//
// The engine is single-threaded by contract: the host must not overlap
// queries with a Recompute in flight, and Recompute must not be
// reentered from a Source or Config callback.
type Engine struct {
	// Axis is the scroll direction. Lines stack along it; items run
	// across it.
	Axis layout.Axis
	// Source supplies section and item counts. Without one the layout
	// is empty.
	Source Source
	// Config supplies optional per-section overrides for the defaults
	// below.
	Config Config

	// Layout-wide defaults, used where Config has no override.
	ItemSize    image.Point
	Insets      Insets
	LineSpacing int
	ItemSpacing int
	Alignment   Alignment
	RowLimit    int
	// HeaderSize and FooterSize are reference sizes: a non-zero extent
	// along the scroll axis gives every section a header or footer of
	// that extent, spanning the container across it.
	HeaderSize image.Point
	FooterSize image.Point

	size     image.Point
	sections []*section
	// The two caches every query is served from: the flat list in
	// layout order for rect scans, and the keyed map for identity
	// lookups. Both are rebuilt wholesale and replaced atomically at
	// the end of Recompute.
	all    []*Attributes
	lookup map[path]*Attributes

	computing bool
}

// NewEngine returns an engine with vertical scrolling and a 50x50
// default item size.
func NewEngine(src Source) *Engine {
	return &Engine{
		Axis:     layout.Vertical,
		Source:   src,
		ItemSize: image.Pt(50, 50),
	}
}

// Recompute rebuilds the whole layout for a container of the given
// size. The previous layout is discarded; nothing is updated
// incrementally. It panics when reentered from a provider callback.
func (e *Engine) Recompute(size image.Point) {
	if e.computing {
		panic("flow: Recompute reentered from a provider callback")
	}
	e.computing = true
	defer func() { e.computing = false }()

	e.size = size
	containerCross := crossExtent(e.Axis, size)

	var sections []*section
	if e.Source != nil {
		for i := 0; i < e.Source.Sections(); i++ {
			if s := e.buildSection(i, containerCross); s != nil {
				sections = append(sections, s)
			}
		}
	}

	all := make([]*Attributes, 0, len(sections))
	lookup := make(map[path]*Attributes)
	collect := func(a *Attributes) {
		all = append(all, a)
		lookup[path{a.Kind, a.Section, a.Index}] = a
	}

	cur := 0
	for _, s := range sections {
		cur = s.position(e.Axis, cur, containerCross)
		if s.header != nil {
			collect(s.header)
		}
		for _, ln := range s.visibleLines() {
			for _, it := range ln.items {
				collect(it)
			}
		}
		if s.footer != nil {
			collect(s.footer)
		}
	}

	e.sections = sections
	e.all = all
	e.lookup = lookup
}

// buildSection pulls the section's configuration and item sizes and
// runs the wrap pass. It returns nil for a section with no items and no
// header or footer: such sections are omitted from the layout entirely.
func (e *Engine) buildSection(idx, containerCross int) *section {
	insets := resolve(e.Config.Insets, idx, e.Insets)
	s := &section{
		index:       idx,
		insets:      insets,
		lineSpacing: resolve(e.Config.LineSpacing, idx, e.LineSpacing),
		itemSpacing: resolve(e.Config.ItemSpacing, idx, e.ItemSpacing),
		alignment:   e.alignmentFor(idx),
		rowLimit:    resolve(e.Config.RowLimit, idx, e.RowLimit),
		capacity:    max(containerCross-insets.cross(e.Axis), 0),
	}

	if main := mainExtent(e.Axis, resolve(e.Config.HeaderSize, idx, e.HeaderSize)); main > 0 {
		s.header = &Attributes{Kind: Header, Section: idx, Size: axisPt(e.Axis, main, containerCross)}
	}
	if main := mainExtent(e.Axis, resolve(e.Config.FooterSize, idx, e.FooterSize)); main > 0 {
		s.footer = &Attributes{Kind: Footer, Section: idx, Size: axisPt(e.Axis, main, containerCross)}
	}

	for j := 0; j < e.Source.Items(idx); j++ {
		size := e.ItemSize
		if e.Config.ItemSize != nil {
			if sz, ok := e.Config.ItemSize(idx, j); ok {
				size = sz
			}
		}
		s.pack(e.Axis, &Attributes{Kind: Cell, Section: idx, Index: j, Size: size})
	}
	s.closeLast()

	if s.empty() {
		return nil
	}
	return s
}

// alignmentFor resolves the section's alignment and normalizes it to
// the family matching the scroll axis.
func (e *Engine) alignmentFor(idx int) Alignment {
	a := resolve(e.Config.Alignment, idx, e.Alignment)
	norm, remapped := a.normalize(e.Axis)
	if remapped && Debug {
		log.Printf("flow: section %d: alignment %s does not fit %s scrolling, using %s", idx, a, e.Axis, norm)
	}
	return norm
}

func resolve[T any](cb func(int) (T, bool), section int, def T) T {
	if cb != nil {
		if v, ok := cb(section); ok {
			return v
		}
	}
	return def
}

// ContentExtent returns the size of the whole layout: the sum of every
// section's extent along the scroll axis, and the container's fixed
// extent across it.
func (e *Engine) ContentExtent() image.Point {
	main := 0
	for _, s := range e.sections {
		main += s.extent
	}
	return axisPt(e.Axis, main, crossExtent(e.Axis, e.size))
}

// AttributesIn returns the attributes of every cell, header and footer
// whose frame intersects r, in layout order. Items dropped by a row
// limit are absent.
func (e *Engine) AttributesIn(r image.Rectangle) []Attributes {
	var hits []Attributes
	for _, a := range e.all {
		if a.Frame.Overlaps(r) {
			hits = append(hits, *a)
		}
	}
	return hits
}

// ItemAttributes returns the attributes of one item. The second return
// is false for an index that was never packed: out of range, or beyond
// the section's row limit.
func (e *Engine) ItemAttributes(section, item int) (Attributes, bool) {
	return e.find(path{Cell, section, item})
}

// HeaderAttributes returns the attributes of a section's header, if it
// has one.
func (e *Engine) HeaderAttributes(section int) (Attributes, bool) {
	return e.find(path{Header, section, 0})
}

// FooterAttributes returns the attributes of a section's footer, if it
// has one.
func (e *Engine) FooterAttributes(section int) (Attributes, bool) {
	return e.find(path{Footer, section, 0})
}

func (e *Engine) find(p path) (Attributes, bool) {
	a, ok := e.lookup[p]
	if !ok {
		return Attributes{}, false
	}
	return *a, true
}
