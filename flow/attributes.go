package flow

import "image"

// Kind tells what kind of layout element an Attributes describes.
type Kind uint8

const (
	Cell Kind = iota
	Header
	Footer
)

func (k Kind) String() string {
	switch k {
	case Cell:
		return "cell"
	case Header:
		return "header"
	case Footer:
		return "footer"
	}
	return "unknown"
}

// Attributes is the computed geometry of one cell, header or footer.
// Identity (Kind, Section, Index) never changes once packed; the frame
// is assigned during the position pass. Queries return copies, so a
// caller can not corrupt the engine's caches.
type Attributes struct {
	Kind    Kind
	Section int
	// Index is the item's position within its section. It is always
	// zero for headers and footers.
	Index int
	Size  image.Point
	Frame image.Rectangle
}
