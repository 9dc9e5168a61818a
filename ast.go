package globre

type nodeKind int

const (
	nodeLiteral     nodeKind = iota + 1 // run of literal characters
	nodeAnyChar                         // ?
	nodeStar                            // *
	nodeDoubleStar                      // ** occupying a whole segment
	nodeClass                           // [...] or [!...]
	nodeAlternation                     // {a,b,...}
	nodeSeparator                       // / inside an alternation branch
)

// charRange is one class member; single characters have Lo == Hi.
type charRange struct {
	Lo, Hi rune
}

// node is one element of a segment. Nodes are plain values held in slices,
// not a linked structure, so a parsed pattern is freed as a handful of
// allocations. Span records where in the source the node came from.
type node struct {
	Kind     nodeKind
	Lit      string      // nodeLiteral
	Negated  bool        // nodeClass
	Set      []charRange // nodeClass
	Branches [][]node    // nodeAlternation; branches may hold nodeSeparator
	Span     span
}

// patternAST is the parsed form of a pattern: path segments in order. The
// separators between top-level segments are implicit in the slice structure.
// Empty segments are legal and mean consecutive or edge separators.
type patternAST struct {
	segments [][]node
}

// isDoubleStarSegment reports whether seg is a ** occupying a whole segment,
// the only position where ** keeps its recursive meaning.
func isDoubleStarSegment(seg []node) bool {
	return len(seg) == 1 && seg[0].Kind == nodeDoubleStar
}
