package catalog

import "strings"

// Resource is the only collection the catalog API exposes to this tool.
const Resource = "products"

// Op identifies what an invocation asks for.
type Op int

const (
	// OpUnrecognized covers every invocation no other rule matches.
	OpUnrecognized Op = iota
	// OpUnknownRoute is a GET against anything other than products or products/<id>.
	OpUnknownRoute
	OpList
	OpFetch
	OpCreate
	OpDelete
)

var opNames = map[Op]string{
	OpUnrecognized: "unrecognized",
	OpUnknownRoute: "unknown-route",
	OpList:         "list",
	OpFetch:        "fetch",
	OpCreate:       "create",
	OpDelete:       "delete",
}

func (o Op) String() string {
	return opNames[o]
}

// Command is a classified invocation.
type Command struct {
	Op Op
	// ID is set for OpFetch and OpDelete.
	ID string
	// Title, Price and Category are the raw OpCreate arguments.
	Title    string
	Price    string
	Category string
}

// Classify maps positional arguments onto a Command. Rules are checked in
// order and the first match wins.
func Classify(args []string) Command {
	verb, resource := arg(args, 0), arg(args, 1)

	switch {
	case verb == "GET" && resource == Resource:
		return Command{Op: OpList}
	case verb == "GET" && isItemPath(resource):
		return Command{Op: OpFetch, ID: itemID(resource)}
	case verb == "GET":
		return Command{Op: OpUnknownRoute}
	case verb == "POST" && resource == Resource:
		return Command{
			Op:       OpCreate,
			Title:    arg(args, 2),
			Price:    arg(args, 3),
			Category: arg(args, 4),
		}
	case verb == "DELETE" && isItemPath(resource):
		return Command{Op: OpDelete, ID: itemID(resource)}
	}
	return Command{Op: OpUnrecognized}
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func isItemPath(resource string) bool {
	return strings.HasPrefix(resource, Resource+"/")
}

// itemID returns the second slash-separated segment: "products/7/x" yields "7".
func itemID(resource string) string {
	parts := strings.Split(resource, "/")
	return parts[1]
}
