package elm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/lawik/elm-open-api-cli/pkg/ir"
	"github.com/lawik/elm-open-api-cli/pkg/utils"
)

// builder walks a decoded document and accumulates the module IR plus
// ordered warnings.
type builder struct {
	doc      *openapi3.T
	todos    bool
	warnings []string
}

func (b *builder) warnf(format string, args ...any) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

// rawJSON is the passthrough mapping for schemas the generator cannot
// express as a concrete Elm type.
func rawJSON() (string, string, string) {
	return "Json.Encode.Value", "Json.Decode.value", "identity"
}

// exprs maps a schema to its Elm type, decoder expression and encoder
// expression. where names the schema location for warnings.
func (b *builder) exprs(sr *openapi3.SchemaRef, where string) (typ, dec, enc string) {
	if sr == nil {
		return rawJSON()
	}
	if sr.Ref != "" {
		name := refSchemaName(sr.Ref)
		if name == "" {
			b.warnf("%s: unresolvable reference %s, passing through raw JSON", where, sr.Ref)
			return rawJSON()
		}
		pascal := utils.ToPascalCase(name)
		return pascal, utils.ToCamelCase(name) + "Decoder", "encode" + pascal
	}
	s := sr.Value
	if s == nil {
		return rawJSON()
	}
	if len(s.OneOf) > 0 || len(s.AnyOf) > 0 || len(s.AllOf) > 0 {
		b.warnf("%s: oneOf/anyOf/allOf schemas are passed through as raw JSON", where)
		return rawJSON()
	}

	switch {
	case s.Type != nil && s.Type.Is(openapi3.TypeString):
		typ, dec, enc = "String", "Json.Decode.string", "Json.Encode.string"
	case s.Type != nil && s.Type.Is(openapi3.TypeInteger):
		typ, dec, enc = "Int", "Json.Decode.int", "Json.Encode.int"
	case s.Type != nil && s.Type.Is(openapi3.TypeNumber):
		typ, dec, enc = "Float", "Json.Decode.float", "Json.Encode.float"
	case s.Type != nil && s.Type.Is(openapi3.TypeBoolean):
		typ, dec, enc = "Bool", "Json.Decode.bool", "Json.Encode.bool"
	case s.Type != nil && s.Type.Is(openapi3.TypeArray):
		it, id, ie := b.exprs(s.Items, where)
		typ = "List " + paren(it)
		dec = "Json.Decode.list " + paren(id)
		enc = "Json.Encode.list " + paren(ie)
	case s.Type != nil && s.Type.Is(openapi3.TypeObject):
		if len(s.Properties) > 0 {
			b.warnf("%s: inline object schemas are passed through as raw JSON", where)
		}
		return rawJSON()
	default:
		return rawJSON()
	}

	if s.Nullable {
		typ = "Maybe " + paren(typ)
		dec = "Json.Decode.nullable " + paren(dec)
		enc = "maybeEncode " + paren(enc)
	}
	return typ, dec, enc
}

// paren wraps compound expressions so they can appear as arguments.
func paren(expr string) string {
	if strings.ContainsAny(expr, " (") && !strings.HasPrefix(expr, "(") {
		return "(" + expr + ")"
	}
	return expr
}

// apply builds a function application, dropping identity.
func apply(fn, arg string) string {
	if fn == "identity" {
		return arg
	}
	return fn + " " + arg
}

func refSchemaName(ref string) string {
	if name, ok := strings.CutPrefix(ref, "#/components/schemas/"); ok {
		return name
	}
	// External refs or non-component pointers: best-effort last segment
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

// buildComponents converts component schemas into aliases and enums, in
// sorted name order.
func (b *builder) buildComponents() (aliases []ir.Alias, enums []ir.Enum) {
	if b.doc.Components == nil || b.doc.Components.Schemas == nil {
		return nil, nil
	}
	names := make([]string, 0, len(b.doc.Components.Schemas))
	for name := range b.doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sr := b.doc.Components.Schemas[name]
		pascal := utils.ToPascalCase(name)
		if pascal == "" {
			b.warnf("schema %q: cannot derive a type name, skipped", name)
			continue
		}
		s := sr.Value

		if s != nil && s.Type != nil && s.Type.Is(openapi3.TypeString) && len(s.Enum) > 0 {
			enums = append(enums, b.buildEnum(pascal, s))
			continue
		}

		if s != nil && s.Type != nil && s.Type.Is(openapi3.TypeObject) && len(s.Properties) > 0 {
			aliases = append(aliases, b.buildRecord(name, pascal, s))
			continue
		}

		typ, dec, enc := b.exprs(sr, "schema "+name)
		aliases = append(aliases, ir.Alias{Name: pascal, Type: typ, Decoder: dec, Encoder: enc})
	}
	return aliases, enums
}

func (b *builder) buildEnum(pascal string, s *openapi3.Schema) ir.Enum {
	enum := ir.Enum{Name: pascal}
	for _, raw := range s.Enum {
		value := fmt.Sprint(raw)
		variant := pascal + utils.ToPascalCase(value)
		if variant == pascal {
			variant = pascal + "Empty"
		}
		enum.Variants = append(enum.Variants, ir.EnumVariant{Name: variant, Value: value})
	}
	return enum
}

func (b *builder) buildRecord(name, pascal string, s *openapi3.Schema) ir.Alias {
	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	props := make([]string, 0, len(s.Properties))
	for p := range s.Properties {
		props = append(props, p)
	}
	sort.Strings(props)

	alias := ir.Alias{Name: pascal, IsRecord: true}
	for _, prop := range props {
		where := fmt.Sprintf("schema %s.%s", name, prop)
		typ, dec, enc := b.exprs(s.Properties[prop], where)

		elmName := utils.ToCamelCase(prop)
		if elmName == "" || isElmKeyword(elmName) {
			elmName = elmName + "field"
		}

		field := ir.Field{WireName: prop, ElmName: elmName, Optional: !required[prop]}
		if field.Optional {
			field.Type = "Maybe " + paren(typ)
			field.Decoder = fmt.Sprintf("optionalField %q %s", prop, paren(dec))
			field.Encoder = apply("maybeEncode "+paren(enc), "value."+elmName)
		} else {
			field.Type = typ
			field.Decoder = fmt.Sprintf("Json.Decode.field %q %s", prop, paren(dec))
			field.Encoder = apply(enc, "value."+elmName)
		}
		alias.Fields = append(alias.Fields, field)
	}
	return alias
}

// methodOrder fixes the per-path operation order for deterministic output.
var methodOrder = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD", "TRACE"}

func operationsOf(item *openapi3.PathItem) map[string]*openapi3.Operation {
	return map[string]*openapi3.Operation{
		"GET": item.Get, "POST": item.Post, "PUT": item.Put, "PATCH": item.Patch,
		"DELETE": item.Delete, "OPTIONS": item.Options, "HEAD": item.Head, "TRACE": item.Trace,
	}
}

// buildRequests converts every operation into a request function, walking
// paths in sorted order and methods in a fixed order.
func (b *builder) buildRequests() []ir.Request {
	if b.doc.Paths == nil {
		return nil
	}
	pathMap := b.doc.Paths.Map()
	paths := make([]string, 0, len(pathMap))
	for p := range pathMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var requests []ir.Request
	for _, path := range paths {
		item := pathMap[path]
		if item == nil {
			continue
		}
		ops := operationsOf(item)
		for _, method := range methodOrder {
			op := ops[method]
			if op == nil {
				continue
			}
			if req, ok := b.buildRequest(method, path, item, op); ok {
				requests = append(requests, req)
			}
		}
	}
	return requests
}

func (b *builder) buildRequest(method, path string, item *openapi3.PathItem, op *openapi3.Operation) (ir.Request, bool) {
	where := method + " " + path

	fname := utils.ToCamelCase(op.OperationID)
	if fname == "" {
		fname = utils.ToCamelCase(method + " " + path)
		b.warnf("%s: missing operationId, using derived name %q", where, fname)
	}

	req := ir.Request{FunctionName: fname, Method: method}

	argTypes := []string{"String"}
	argNames := []string{"baseUrl"}
	pathConv := map[string]string{}

	for _, pr := range mergeParameters(item.Parameters, op.Parameters) {
		if pr == nil || pr.Value == nil {
			continue
		}
		p := pr.Value
		switch p.In {
		case openapi3.ParameterInPath:
			arg := utils.ToCamelCase(p.Name)
			if arg == "" || isElmKeyword(arg) || isReservedArg(arg) {
				arg = arg + "_"
			}
			typ, conv := b.paramType(p, where)
			argTypes = append(argTypes, typ)
			argNames = append(argNames, arg)
			pathConv[p.Name] = conv(arg)
		default:
			b.warnf("%s: %s parameter %q is not generated", where, p.In, p.Name)
		}
	}

	req.URLExpr = b.urlExpr(path, pathConv, where)

	// Request body: only JSON bodies are expressible
	if op.RequestBody != nil && op.RequestBody.Value != nil {
		rb := op.RequestBody.Value
		if media, ok := rb.Content["application/json"]; ok {
			typ, _, enc := b.exprs(media.Schema, where+" request body")
			argTypes = append(argTypes, typ)
			argNames = append(argNames, "body")
			req.BodyExpr = "Http.jsonBody (" + apply(enc, "body") + ")"
		} else {
			cts := contentTypes(rb.Content)
			msg := fmt.Sprintf("%s: request body content %s is not supported", where, strings.Join(cts, ", "))
			if !b.todos {
				b.warnf("%s, operation skipped", msg)
				return ir.Request{}, false
			}
			b.warnf("%s, emitting Debug.todo stub", msg)
			req.Todo = true
			req.TodoMessage = fname + ": unsupported request body"
		}
	} else {
		req.BodyExpr = "Http.emptyBody"
	}

	respType, expect := b.responseExpect(op, where)
	req.ExpectExpr = expect

	argTypes = append(argTypes, "(Result Http.Error "+paren(respType)+" -> msg)", "Cmd msg")
	argNames = append(argNames, "toMsg")
	req.Signature = strings.Join(argTypes, " -> ")
	req.Args = strings.Join(argNames, " ")
	return req, true
}

// mergeParameters overlays operation parameters on path-item parameters,
// keyed by (location, name) with the operation winning.
func mergeParameters(base, over openapi3.Parameters) openapi3.Parameters {
	merged := make(openapi3.Parameters, 0, len(base)+len(over))
	seen := make(map[string]bool)
	for _, pr := range over {
		if pr != nil && pr.Value != nil {
			seen[string(pr.Value.In)+"\x00"+pr.Value.Name] = true
		}
		merged = append(merged, pr)
	}
	for _, pr := range base {
		if pr != nil && pr.Value != nil && seen[string(pr.Value.In)+"\x00"+pr.Value.Name] {
			continue
		}
		merged = append(merged, pr)
	}
	return merged
}

// paramType maps a path parameter to an Elm argument type and a conversion
// from the argument to a URL string.
func (b *builder) paramType(p *openapi3.Parameter, where string) (string, func(string) string) {
	var s *openapi3.Schema
	if p.Schema != nil {
		s = p.Schema.Value
	}
	switch {
	case s != nil && s.Type != nil && s.Type.Is(openapi3.TypeInteger):
		return "Int", func(arg string) string { return "String.fromInt " + arg }
	case s != nil && s.Type != nil && s.Type.Is(openapi3.TypeNumber):
		return "Float", func(arg string) string { return "String.fromFloat " + arg }
	case s != nil && s.Type != nil && s.Type.Is(openapi3.TypeBoolean):
		return "Bool", func(arg string) string {
			return fmt.Sprintf("(if %s then \"true\" else \"false\")", arg)
		}
	case s == nil || s.Type == nil || s.Type.Is(openapi3.TypeString):
		return "String", func(arg string) string { return arg }
	default:
		b.warnf("%s: path parameter %q has a non-scalar schema, treating as String", where, p.Name)
		return "String", func(arg string) string { return arg }
	}
}

// urlExpr turns a path template into an Elm expression concatenating
// baseUrl, literal segments and converted path arguments.
func (b *builder) urlExpr(path string, conv map[string]string, where string) string {
	parts := []string{"baseUrl"}
	rest := path
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			if rest != "" {
				parts = append(parts, strconv.Quote(rest))
			}
			break
		}
		if open > 0 {
			parts = append(parts, strconv.Quote(rest[:open]))
		}
		end := strings.Index(rest, "}")
		if end < open {
			parts = append(parts, strconv.Quote(rest[open:]))
			break
		}
		name := rest[open+1 : end]
		if expr, ok := conv[name]; ok {
			parts = append(parts, paren(expr))
		} else {
			b.warnf("%s: path parameter %q is not declared, kept literally", where, name)
			parts = append(parts, strconv.Quote("{"+name+"}"))
		}
		rest = rest[end+1:]
	}
	return strings.Join(parts, " ++ ")
}

// responseExpect picks the success response (200, 201, then any 2xx) and
// maps it to an Elm type and Http.Expect expression.
func (b *builder) responseExpect(op *openapi3.Operation, where string) (string, string) {
	var resp *openapi3.Response
	code := ""
	if op.Responses != nil {
		m := op.Responses.Map()
		for _, c := range []string{"200", "201"} {
			if rr, ok := m[c]; ok && rr != nil && rr.Value != nil {
				resp, code = rr.Value, c
				break
			}
		}
		if resp == nil {
			codes := make([]string, 0, len(m))
			for c := range m {
				codes = append(codes, c)
			}
			sort.Strings(codes)
			for _, c := range codes {
				if len(c) == 3 && c[0] == '2' && m[c] != nil && m[c].Value != nil {
					resp, code = m[c].Value, c
					break
				}
			}
		}
	}

	if resp == nil || code == "204" || len(resp.Content) == 0 {
		return "()", "Http.expectWhatever toMsg"
	}
	if media, ok := resp.Content["application/json"]; ok {
		typ, dec, _ := b.exprs(media.Schema, where+" response")
		return typ, "Http.expectJson toMsg " + paren(dec)
	}
	b.warnf("%s: response content %s is decoded as a raw String", where, strings.Join(contentTypes(resp.Content), ", "))
	return "String", "Http.expectString toMsg"
}

func contentTypes(content openapi3.Content) []string {
	cts := make([]string, 0, len(content))
	for ct := range content {
		cts = append(cts, ct)
	}
	sort.Strings(cts)
	return cts
}

var elmKeywords = map[string]bool{
	"if": true, "then": true, "else": true, "case": true, "of": true,
	"let": true, "in": true, "type": true, "module": true, "where": true,
	"import": true, "exposing": true, "as": true, "port": true,
}

func isElmKeyword(s string) bool { return elmKeywords[s] }

func isReservedArg(s string) bool {
	return s == "baseUrl" || s == "toMsg" || s == "body"
}
