package launcher

// Accepted argument counts: a bare demo name, or a demo name followed by
// the six demo parameters.
const (
	argsNameOnly   = 1
	argsWithParams = 7
)

// Request is one dispatch request built from the raw process arguments.
type Request struct {
	EntryName string
	Args      []string // nil when no parameters are forwarded
}

// Shape reports whether args has an accepted count and, if so, builds the
// Request for it.
func Shape(args []string) (Request, bool) {
	if len(args) != argsNameOnly && len(args) != argsWithParams {
		return Request{}, false
	}
	return newRequest(args), true
}

// newRequest takes args[0] as the entry name and forwards the rest only
// when at least two parameters follow it; a lone parameter is dropped.
func newRequest(args []string) Request {
	req := Request{EntryName: args[0]}
	if len(args) >= 3 {
		req.Args = make([]string, len(args)-1)
		copy(req.Args, args[1:])
	}
	return req
}
