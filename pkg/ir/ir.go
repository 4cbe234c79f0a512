// Package ir holds the intermediate representation of a generated Elm
// module: the named declarations the generator renders, already mapped to
// Elm types, decoder expressions and encoder expressions.
package ir

// Module is one complete generated Elm module.
type Module struct {
	// Name is the dotted Elm module name, e.g. "Api" or "Foo.Bar".
	Name string
	// Title and Version come from the spec info block, for the header doc.
	Title   string
	Version string

	Aliases  []Alias
	Enums    []Enum
	Requests []Request
}

// Alias is a component schema rendered as a type alias. Record aliases carry
// fields; plain aliases carry a single mapped type.
type Alias struct {
	Name     string
	IsRecord bool
	Fields   []Field

	// For non-record aliases
	Type    string
	Decoder string
	Encoder string
}

// Field is one record field of an alias.
type Field struct {
	// WireName is the JSON member name; ElmName the record accessor.
	WireName string
	ElmName  string
	Type     string
	Decoder  string
	Encoder  string
	Optional bool
}

// Enum is a string-enum component schema rendered as a custom type.
type Enum struct {
	Name     string
	Variants []EnumVariant
}

// EnumVariant pairs an Elm constructor with its wire string.
type EnumVariant struct {
	Name  string
	Value string
}

// Request is one HTTP operation rendered as a Cmd-producing function. The
// expression fields are pre-built Elm source so the template stays flat.
type Request struct {
	FunctionName string
	Method       string
	// Signature is the full type annotation after the function name.
	Signature string
	// Args are the space-joined argument names matching Signature.
	Args string
	// URLExpr builds the request URL from baseUrl and path arguments.
	URLExpr string
	// BodyExpr is the Http.Body expression, e.g. Http.emptyBody.
	BodyExpr string
	// ExpectExpr is the Http.Expect expression for the response.
	ExpectExpr string
	// Todo marks a stubbed operation rendered as Debug.todo.
	Todo        bool
	TodoMessage string
}
