package core

// Kind is the cell variant tag. Solid kinds carry no extra data;
// KindPyramid carries a four-entry face color array.
type Kind uint8

const (
	KindNone Kind = iota // zero value, no cell
	KindDark             // solid dark block
	KindSea              // solid sea block
	KindPyramid
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDark:
		return "dark"
	case KindSea:
		return "sea"
	case KindPyramid:
		return "pyramid"
	default:
		return "unknown"
	}
}

// FaceColor is a pyramid face requirement: the color the neighboring
// content on that side must have.
type FaceColor uint8

const (
	FaceNone FaceColor = iota // no neighbor wanted on this side
	FaceDark
	FaceSea
)

// String returns a human-readable name for the face color.
func (f FaceColor) String() string {
	switch f {
	case FaceNone:
		return "none"
	case FaceDark:
		return "dark"
	case FaceSea:
		return "sea"
	default:
		return "unknown"
	}
}

// Face indexes one of a pyramid's four oriented sides.
type Face int

const (
	FaceTop Face = iota
	FaceBottom
	FaceLeft
	FaceRight
)

// Opposite returns the neighbor-side face that points back at this
// cell: checking a pyramid's top face means looking at the cell above,
// whose bottom face is the one facing us.
func (f Face) Opposite() Face {
	switch f {
	case FaceTop:
		return FaceBottom
	case FaceBottom:
		return FaceTop
	case FaceLeft:
		return FaceRight
	default:
		return FaceLeft
	}
}

// Offset returns the unit translation toward this face's neighbor.
func (f Face) Offset() Delta {
	switch f {
	case FaceTop:
		return Delta{DX: 0, DY: -1}
	case FaceBottom:
		return Delta{DX: 0, DY: 1}
	case FaceLeft:
		return Delta{DX: -1, DY: 0}
	default:
		return Delta{DX: 1, DY: 0}
	}
}

// Faces is a pyramid's per-side color requirement array, indexed by Face.
type Faces [4]FaceColor

// Requires returns true if any face requires the given color.
func (fs Faces) Requires(c FaceColor) bool {
	for _, f := range fs {
		if f == c {
			return true
		}
	}
	return false
}

// Cell is one grid-occupying unit. Its shape (Kind and Faces) is fixed
// at creation; only Pos and Selected change during play.
type Cell struct {
	Kind     Kind
	Faces    Faces // meaningful only for KindPyramid
	Pos      Coord
	Origin   Coord // position at level load, used for revert
	Selected bool
}

// NewSolid creates a solid cell of the given kind at pos.
func NewSolid(kind Kind, pos Coord) *Cell {
	return &Cell{Kind: kind, Pos: pos, Origin: pos}
}

// NewPyramid creates a pyramid cell with the given face requirements.
func NewPyramid(pos Coord, faces Faces) *Cell {
	return &Cell{Kind: KindPyramid, Faces: faces, Pos: pos, Origin: pos}
}

// SameShape reports whether two cells carry the same kind tag and,
// for pyramids, identical face arrays.
func (c *Cell) SameShape(other *Cell) bool {
	if c.Kind != other.Kind {
		return false
	}
	if c.Kind == KindPyramid {
		return c.Faces == other.Faces
	}
	return true
}
