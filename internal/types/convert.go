package types

// Kind is the value of the row-kind discriminator column.
type Kind string

const (
	KindVertex Kind = "v"
	KindFace   Kind = "f"
	KindTotal  Kind = "total"
)

// ParseKind converts a raw discriminator cell to a Kind.
// The match is exact and case-sensitive; unknown values report false.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindVertex, KindFace, KindTotal:
		return Kind(s), true
	default:
		return "", false
	}
}

// String returns a readable name for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindFace:
		return "face"
	case KindTotal:
		return "total"
	default:
		return "unknown(" + string(k) + ")"
	}
}
