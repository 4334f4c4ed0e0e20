package php

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// FunctionKind identifies the syntactic form of a function-like unit.
type FunctionKind int

const (
	// KindUnknown is the zero value and never produced by the parser.
	KindUnknown FunctionKind = iota
	KindFunction
	KindMethod
	KindClosure
	KindArrowFunction
)

func (k FunctionKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindClosure:
		return "closure"
	case KindArrowFunction:
		return "arrow function"
	default:
		return "unknown"
	}
}

// FunctionLike is a named function, method, closure or arrow function.
type FunctionLike struct {
	Kind FunctionKind

	// Name is empty for closures and arrow functions.
	Name string

	// Node is the declaration node itself.
	Node *sitter.Node

	// Body is the compound statement (or the expression of an arrow function).
	// It is nil for abstract and interface methods.
	Body *sitter.Node

	StartLine int
	EndLine   int
}

// functionKinds maps grammar node kinds to function-like kinds. Older grammar
// releases name closures anonymous_function_creation_expression.
var functionKinds = map[string]FunctionKind{
	"function_definition":                    KindFunction,
	"method_declaration":                     KindMethod,
	"anonymous_function":                     KindClosure,
	"anonymous_function_creation_expression": KindClosure,
	"arrow_function":                         KindArrowFunction,
}

// IsFunctionLike reports whether node is the declaration of a function-like unit.
func IsFunctionLike(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	_, ok := functionKinds[node.Kind()]
	return ok
}

// IsClassLike reports whether node declares a class-like scope whose members
// are analyzed on their own.
func IsClassLike(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind() {
	case "class_declaration", "anonymous_class", "interface_declaration",
		"trait_declaration", "enum_declaration":
		return true
	}
	return false
}

func newFunctionLike(node *sitter.Node, source []byte) (FunctionLike, bool) {
	kind, ok := functionKinds[node.Kind()]
	if !ok {
		return FunctionLike{}, false
	}

	unit := FunctionLike{
		Kind:      kind,
		Node:      node,
		Body:      node.ChildByFieldName("body"),
		StartLine: int(node.StartPosition().Row) + 1,
		EndLine:   int(node.EndPosition().Row) + 1,
	}

	if kind == KindFunction || kind == KindMethod {
		unit.Name = extractNodeText(node.ChildByFieldName("name"), source)
	}

	if unit.Body == nil && kind == KindClosure {
		unit.Body = findChildByType(node, "compound_statement")
	}

	return unit, true
}
