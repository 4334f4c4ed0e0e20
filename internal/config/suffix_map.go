package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mvp-joe/codestandard/internal/fixer"
)

// SuffixMap is an ordered parent-type-to-suffix table as written in YAML.
//
// Two shapes are accepted:
//
//	parent_types_to_suffixes:      parent_types_to_suffixes:
//	  - "*Command"                   "*Mapper": Mapper
//	  - "*Mapper": Mapper            0: "*Command"
//
// A bare pattern (a sequence item or an integer key) is an auto entry whose
// suffix is derived from the pattern. A later entry for the same pattern
// replaces the earlier one in place.
type SuffixMap fixer.SuffixRules

// UnmarshalYAML decodes the table in document order.
func (m *SuffixMap) UnmarshalYAML(node *yaml.Node) error {
	rules := fixer.SuffixRules{}

	add := func(rule fixer.SuffixRule) {
		rules = rules.Merge(fixer.SuffixRules{rule})
	}

	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				pattern, err := scalarString(item)
				if err != nil {
					return err
				}
				add(fixer.NewAutoRule(pattern))
			case yaml.MappingNode:
				pairs, err := decodePairs(item)
				if err != nil {
					return err
				}
				for _, rule := range pairs {
					add(rule)
				}
			default:
				return fmt.Errorf("%w: line %d: expected a pattern or a pattern: suffix item", ErrInvalidSuffixMap, item.Line)
			}
		}
	case yaml.MappingNode:
		pairs, err := decodePairs(node)
		if err != nil {
			return err
		}
		for _, rule := range pairs {
			add(rule)
		}
	default:
		return fmt.Errorf("%w: line %d: expected a sequence or a mapping", ErrInvalidSuffixMap, node.Line)
	}

	*m = SuffixMap(rules)
	return nil
}

// decodePairs reads a mapping. Integer keys mark auto entries.
func decodePairs(node *yaml.Node) (fixer.SuffixRules, error) {
	var rules fixer.SuffixRules
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: pattern must be a scalar", ErrInvalidSuffixMap, key.Line)
		}

		valueText, err := scalarString(value)
		if err != nil {
			return nil, err
		}

		if key.ShortTag() == "!!int" {
			rules = append(rules, fixer.NewAutoRule(valueText))
			continue
		}
		rules = append(rules, fixer.SuffixRule{Pattern: key.Value, Suffix: valueText})
	}
	return rules, nil
}

func scalarString(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return "", fmt.Errorf("%w: line %d: expected a string", ErrInvalidSuffixMap, node.Line)
	}
	return node.Value, nil
}
