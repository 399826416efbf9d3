package authz

// Verb classifies what a request wants to do with a resource. HTTP methods
// collapse into three verbs; safe methods are all READ.
type Verb uint8

const (
	VerbRead Verb = iota
	VerbWrite
	VerbDelete
)

func (v Verb) String() string {
	switch v {
	case VerbRead:
		return "read"
	case VerbWrite:
		return "write"
	case VerbDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// VerbForMethod maps an HTTP method onto a verb. Unknown methods are treated
// as writes so nothing mutating slips through as safe.
func VerbForMethod(method string) Verb {
	switch method {
	case "GET", "HEAD", "OPTIONS":
		return VerbRead
	case "DELETE":
		return VerbDelete
	default:
		return VerbWrite
	}
}
