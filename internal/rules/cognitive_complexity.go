package rules

import (
	"fmt"

	"github.com/mvp-joe/codestandard/internal/complexity"
	"github.com/mvp-joe/codestandard/internal/php"
)

// DefaultMaximumCognitiveComplexity is used when no maximum is configured.
const DefaultMaximumCognitiveComplexity = 8

// CognitiveComplexityRuleName identifies FunctionLikeCognitiveComplexity in reports.
const CognitiveComplexityRuleName = "function_like_cognitive_complexity"

// FunctionLikeCognitiveComplexity reports functions, methods, closures and
// arrow functions whose cognitive complexity exceeds a maximum.
type FunctionLikeCognitiveComplexity struct {
	analyzer complexity.ComplexityAnalyzer
	maximum  int
}

// NewFunctionLikeCognitiveComplexity creates the rule. A nil analyzer selects
// the tree-sitter analyzer.
func NewFunctionLikeCognitiveComplexity(analyzer complexity.ComplexityAnalyzer, maximum int) *FunctionLikeCognitiveComplexity {
	if analyzer == nil {
		analyzer = complexity.NewAnalyzer()
	}
	return &FunctionLikeCognitiveComplexity{
		analyzer: analyzer,
		maximum:  maximum,
	}
}

func (r *FunctionLikeCognitiveComplexity) Name() string {
	return CognitiveComplexityRuleName
}

// Maximum returns the highest score that is not reported.
func (r *FunctionLikeCognitiveComplexity) Maximum() int {
	return r.maximum
}

// ProcessNode returns the diagnostic messages for a single unit: none when
// its score is within the maximum, otherwise exactly one.
func (r *FunctionLikeCognitiveComplexity) ProcessNode(unit php.FunctionLike) []string {
	score := r.analyzer.Analyze(unit)
	if score <= r.maximum {
		return nil
	}

	message := fmt.Sprintf(
		"Cognitive complexity for \"%s\" is %d, keep it under %d",
		resolveFunctionName(unit),
		score,
		r.maximum,
	)
	return []string{message}
}

func (r *FunctionLikeCognitiveComplexity) Check(file *php.File) []Diagnostic {
	var diagnostics []Diagnostic
	for _, unit := range file.FunctionLikes() {
		for _, message := range r.ProcessNode(unit) {
			diagnostics = append(diagnostics, Diagnostic{
				Rule:     r.Name(),
				Message:  message,
				FilePath: file.Path,
				Line:     unit.StartLine,
			})
		}
	}
	return diagnostics
}

func resolveFunctionName(unit php.FunctionLike) string {
	switch unit.Kind {
	case php.KindFunction, php.KindMethod:
		return unit.Name + "()"
	case php.KindClosure:
		return "closure"
	case php.KindArrowFunction:
		return "arrow function"
	}

	panic(fmt.Sprintf("unreachable: unsupported function-like kind %d", unit.Kind))
}
