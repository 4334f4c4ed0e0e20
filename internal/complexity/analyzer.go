// Package complexity computes the cognitive complexity of PHP function-like units.
//
// Based on https://www.sonarsource.com/docs/CognitiveComplexity.pdf
//
// A Cognitive Complexity score has 3 rules:
//   - B1. Ignore structures that allow multiple statements to be readably shorthanded into one
//   - B2. Increment (add one) for each break in the linear flow of the code
//   - B3. Increment when flow-breaking structures are nested
package complexity

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/codestandard/internal/php"
)

// ComplexityAnalyzer scores a single function-like unit.
type ComplexityAnalyzer interface {
	Analyze(unit php.FunctionLike) int
}

// Analyzer computes cognitive complexity over tree-sitter PHP syntax trees.
type Analyzer struct{}

// NewAnalyzer creates a new cognitive complexity analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze returns the cognitive complexity of unit. Constructs the analyzer
// does not recognize cost nothing.
func (a *Analyzer) Analyze(unit php.FunctionLike) int {
	s := &scorer{}
	s.visit(unit.Body, 0)
	return s.total
}

// nestingTypes add 1 + nesting and deepen nesting for their bodies.
var nestingTypes = map[string]bool{
	"for_statement":          true,
	"foreach_statement":      true,
	"while_statement":        true,
	"do_statement":           true,
	"switch_statement":       true,
	"match_expression":       true,
	"catch_clause":           true,
	"conditional_expression": true,
}

// logicalOperators maps each logical operator spelling to its kind. The
// keyword and symbol spellings of the same operator form one sequence.
var logicalOperators = map[string]string{
	"&&":  "&&",
	"and": "&&",
	"||":  "||",
	"or":  "||",
	"xor": "xor",
}

type scorer struct {
	total int
}

func (s *scorer) visit(node *sitter.Node, nesting int) {
	if node == nil {
		return
	}

	// Nested units are scored on their own.
	if php.IsFunctionLike(node) || php.IsClassLike(node) {
		return
	}

	kind := node.Kind()
	switch {
	case kind == "if_statement":
		s.visitIf(node, nesting)
	case nestingTypes[kind]:
		s.total += 1 + nesting
		s.visitStructure(node, nesting)
	case kind == "augmented_assignment_expression" && operator(node) == "??=":
		s.total += 1 + nesting
		s.visitStructure(node, nesting)
	case isLogical(node):
		s.visitLogicalSequence(node, nesting)
	default:
		s.visitChildren(node, nesting)
	}
}

func (s *scorer) visitChildren(node *sitter.Node, nesting int) {
	for i := 0; i < int(node.ChildCount()); i++ {
		s.visit(node.Child(uint(i)), nesting)
	}
}

// visitStructure visits the body-like children of a flow-breaking structure one
// level deeper and everything else (conditions, loop headers) at the current level.
// Children are classified by field name because "for (...): ... endfor;" tags
// every statement of its body with the body field.
func (s *scorer) visitStructure(node *sitter.Node, nesting int) {
	isAssignment := node.Kind() == "augmented_assignment_expression"

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		switch node.FieldNameForChild(uint32(i)) {
		case "body", "alternative":
			s.visit(child, nesting+1)
		case "right":
			if isAssignment {
				s.visit(child, nesting+1)
			} else {
				s.visit(child, nesting)
			}
		default:
			s.visit(child, nesting)
		}
	}
}

// visitIf scores an if statement together with its elseif and else branches.
// An else whose body is itself an if statement is scored as an elseif.
func (s *scorer) visitIf(node *sitter.Node, nesting int) {
	s.total += 1 + nesting

	condition := node.ChildByFieldName("condition")
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		switch {
		case child.Kind() == "else_if_clause":
			s.total += 1 + nesting
			s.visitStructure(child, nesting)
		case child.Kind() == "else_clause":
			s.visitElse(child, nesting)
		case php.SameNode(child, condition):
			s.visit(child, nesting)
		default:
			s.visit(child, nesting+1)
		}
	}
}

func (s *scorer) visitElse(node *sitter.Node, nesting int) {
	body := node.ChildByFieldName("body")
	if body != nil && body.Kind() == "if_statement" {
		s.visitIf(body, nesting)
		return
	}

	s.total++
	s.visitChildren(node, nesting+1)
}

// visitLogicalSequence scores a run of logical operators once, plus once more
// for every change of operator kind. Parenthesized groups start new runs.
func (s *scorer) visitLogicalSequence(node *sitter.Node, nesting int) {
	var operators []string
	var operands []*sitter.Node
	flattenLogical(node, &operators, &operands)

	s.total++
	for i := 1; i < len(operators); i++ {
		if operators[i] != operators[i-1] {
			s.total++
		}
	}

	for _, operand := range operands {
		s.visit(operand, nesting)
	}
}

func flattenLogical(node *sitter.Node, operators *[]string, operands *[]*sitter.Node) {
	if !isLogical(node) {
		*operands = append(*operands, node)
		return
	}

	flattenLogical(node.ChildByFieldName("left"), operators, operands)
	*operators = append(*operators, logicalOperators[operator(node)])
	flattenLogical(node.ChildByFieldName("right"), operators, operands)
}

func isLogical(node *sitter.Node) bool {
	if node == nil || node.Kind() != "binary_expression" {
		return false
	}
	_, ok := logicalOperators[operator(node)]
	return ok
}

// operator returns the lower-cased operator token of a binary or assignment expression.
func operator(node *sitter.Node) string {
	if op := node.ChildByFieldName("operator"); op != nil {
		return strings.ToLower(op.Kind())
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child != nil && !child.IsNamed() {
			return strings.ToLower(child.Kind())
		}
	}
	return ""
}
