package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/codestandard/internal/php"
)

// Test Plan for FunctionLikeCognitiveComplexity:
// - No message when the score equals the maximum
// - Exactly one message when the score exceeds the maximum
// - Message names functions and methods as "name()", closures as "closure",
//   arrow functions as "arrow function"
// - A nil analyzer selects the tree-sitter analyzer
// - Check reports file path and start line for every violating unit
// - An unknown function-like kind is unreachable and panics

type fixedAnalyzer int

func (f fixedAnalyzer) Analyze(php.FunctionLike) int { return int(f) }

func TestProcessNode_Threshold(t *testing.T) {
	t.Parallel()

	unit := php.FunctionLike{Kind: php.KindFunction, Name: "process"}

	atMaximum := NewFunctionLikeCognitiveComplexity(fixedAnalyzer(8), 8)
	assert.Empty(t, atMaximum.ProcessNode(unit))

	aboveMaximum := NewFunctionLikeCognitiveComplexity(fixedAnalyzer(9), 8)
	assert.Equal(t,
		[]string{`Cognitive complexity for "process()" is 9, keep it under 8`},
		aboveMaximum.ProcessNode(unit))
}

func TestProcessNode_Names(t *testing.T) {
	t.Parallel()

	rule := NewFunctionLikeCognitiveComplexity(fixedAnalyzer(3), 2)

	testCases := []struct {
		unit     php.FunctionLike
		expected string
	}{
		{php.FunctionLike{Kind: php.KindFunction, Name: "helper"}, `Cognitive complexity for "helper()" is 3, keep it under 2`},
		{php.FunctionLike{Kind: php.KindMethod, Name: "run"}, `Cognitive complexity for "run()" is 3, keep it under 2`},
		{php.FunctionLike{Kind: php.KindClosure}, `Cognitive complexity for "closure" is 3, keep it under 2`},
		{php.FunctionLike{Kind: php.KindArrowFunction}, `Cognitive complexity for "arrow function" is 3, keep it under 2`},
	}

	for _, tc := range testCases {
		t.Run(tc.unit.Kind.String(), func(t *testing.T) {
			assert.Equal(t, []string{tc.expected}, rule.ProcessNode(tc.unit))
		})
	}
}

func TestProcessNode_UnknownKindPanics(t *testing.T) {
	t.Parallel()

	rule := NewFunctionLikeCognitiveComplexity(fixedAnalyzer(10), 1)
	assert.Panics(t, func() {
		rule.ProcessNode(php.FunctionLike{})
	})
}

func TestCheck_ReportsViolatingUnits(t *testing.T) {
	t.Parallel()

	source := `<?php
class Importer
{
    public function import(array $rows): void
    {
        foreach ($rows as $row) {
            if ($row['active']) {
                if ($row['valid'] && $row['fresh'] || $row['forced']) {
                    $this->store($row);
                }
            }
        }
    }

    public function store(array $row): void
    {
        echo $row['id'];
    }
}
`
	file, err := php.NewParser().Parse(context.Background(), "src/Importer.php", []byte(source))
	require.NoError(t, err)
	defer file.Close()

	rule := NewFunctionLikeCognitiveComplexity(nil, 5)
	assert.Equal(t, CognitiveComplexityRuleName, rule.Name())
	assert.Equal(t, 5, rule.Maximum())

	diagnostics := rule.Check(file)
	require.Len(t, diagnostics, 1)

	// foreach 1 + if 2 + if 3 + mixed boolean sequence 2
	assert.Equal(t, Diagnostic{
		Rule:     CognitiveComplexityRuleName,
		Message:  `Cognitive complexity for "import()" is 8, keep it under 5`,
		FilePath: "src/Importer.php",
		Line:     4,
	}, diagnostics[0])
}
