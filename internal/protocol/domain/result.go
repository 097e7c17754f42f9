package domain

// ResultKind identifies how a decoded response is displayed.
type ResultKind int

const (
	ResultScalar ResultKind = iota
	ResultList
	ResultMap
	ResultError
)

// String returns the kind name.
func (k ResultKind) String() string {
	switch k {
	case ResultScalar:
		return "scalar"
	case ResultList:
		return "list"
	case ResultMap:
		return "map"
	default:
		return "error"
	}
}

// Result is the display-ready outcome of one request.
type Result struct {
	Kind      ResultKind
	Action    Action
	RequestID string
	Scalar    Value
	List      []Node
	Map       *Object
	Error     string
}

// NewResult classifies a decoded response node.
func NewResult(action Action, requestID string, node Node) *Result {
	r := &Result{Action: action, RequestID: requestID}
	if msg, ok := node.ErrorMessage(); ok {
		r.Kind = ResultError
		r.Error = msg
		return r
	}

	switch node.Kind {
	case NodeList:
		r.Kind = ResultList
		r.List = node.Items
	case NodeObject:
		r.Kind = ResultMap
		r.Map = node.Fields
	default:
		r.Kind = ResultScalar
		r.Scalar = node.Scalar
	}
	return r
}

// Node converts r back into a response node.
func (r *Result) Node() Node {
	switch r.Kind {
	case ResultList:
		return ListNode(r.List...)
	case ResultMap:
		return ObjectNode(r.Map)
	case ResultError:
		return ObjectNode(NewObject().Set("error", ScalarNode(StringValue(r.Error))))
	default:
		return ScalarNode(r.Scalar)
	}
}
