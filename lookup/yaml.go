package lookup

import (
	"fmt"
	"iter"

	commonerrors "github.com/amp-labs/seqkit/errors"
	"github.com/amp-labs/seqkit/tuple"
	"gopkg.in/yaml.v3"
)

const (
	mergeTag = "!!merge"
	nullTag  = "!!null"
)

// FromYAML exposes a YAML mapping node as an ordered, scan-only Source of
// scalar keys and values. Document order and duplicate keys are preserved
// (the first duplicate wins on lookup), which a decode into map[string]string
// would lose. Document nodes are unwrapped and aliases resolved.
//
// Merge keys (<<) are expanded: the merged pairs follow the mapping's own
// pairs, so explicit keys override merged ones, and with a sequence of
// mappings the earlier mapping wins. Null values (~, null or an empty value)
// come back as the empty string.
//
// The node must be a mapping whose keys and values are all scalars. Every
// offending entry is reported, joined into one error wrapping
// errors.ErrWrongType. A nil node yields a nil Source and no error.
func FromYAML(node *yaml.Node) (Source[string, string], error) {
	if node == nil {
		return nil, nil
	}

	node = resolve(node)

	// An empty input decodes to a zero Node.
	if node.Kind == 0 {
		return FromPairs[string, string](), nil
	}

	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return FromPairs[string, string](), nil
		}

		node = resolve(node.Content[0])
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a YAML mapping at line %d, found %s",
			commonerrors.ErrWrongType, node.Line, kindName(node.Kind))
	}

	var errs commonerrors.Collection

	pairs := mappingPairs(node, &errs, make(map[*yaml.Node]bool))

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return FromPairs(pairs...), nil
}

// ParseYAML decodes an in-memory YAML document and passes it to FromYAML.
func ParseYAML(data []byte) (Source[string, string], error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", commonerrors.ErrMalformedValue, err)
	}

	return FromYAML(&doc)
}

// YAMLPairs yields the scalar pairs of a mapping node in the order FromYAML
// would hold them, skipping anything that is not a scalar pair. Use it with
// FromSeq2 when partial records are acceptable.
func YAMLPairs(node *yaml.Node) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if node == nil {
			return
		}

		root := resolve(node)
		if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
			root = resolve(root.Content[0])
		}

		if root.Kind != yaml.MappingNode {
			return
		}

		for _, pair := range mappingPairs(root, nil, make(map[*yaml.Node]bool)) {
			if !yield(pair.Unpack()) {
				return
			}
		}
	}
}

// mappingPairs flattens a mapping node into scalar pairs, own pairs first and
// merged pairs after. Offending entries are added to errs, or skipped when
// errs is nil. visiting breaks alias cycles through merge keys.
func mappingPairs(
	node *yaml.Node, errs *commonerrors.Collection, visiting map[*yaml.Node]bool,
) []tuple.Tuple2[string, string] {
	if visiting[node] {
		return nil
	}

	visiting[node] = true
	defer delete(visiting, node)

	var (
		own    = make([]tuple.Tuple2[string, string], 0, len(node.Content)/2) //nolint:mnd
		merged []tuple.Tuple2[string, string]
	)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		value := resolve(node.Content[i+1])

		if key.Kind == yaml.ScalarNode && key.ShortTag() == mergeTag {
			merged = append(merged, mergedPairs(value, errs, visiting)...)

			continue
		}

		if key.Kind != yaml.ScalarNode {
			report(errs, fmt.Errorf("%w: key at line %d is a %s, not a scalar",
				commonerrors.ErrWrongType, key.Line, kindName(key.Kind)))

			continue
		}

		if value.Kind != yaml.ScalarNode {
			report(errs, fmt.Errorf("%w: value of %q at line %d is a %s, not a scalar",
				commonerrors.ErrWrongType, key.Value, value.Line, kindName(value.Kind)))

			continue
		}

		own = append(own, tuple.NewTuple2(key.Value, scalarValue(value)))
	}

	return append(own, merged...)
}

func mergedPairs(
	value *yaml.Node, errs *commonerrors.Collection, visiting map[*yaml.Node]bool,
) []tuple.Tuple2[string, string] {
	switch value.Kind { //nolint:exhaustive
	case yaml.MappingNode:
		return mappingPairs(value, errs, visiting)
	case yaml.SequenceNode:
		var out []tuple.Tuple2[string, string]

		for _, item := range value.Content {
			item = resolve(item)

			if item.Kind != yaml.MappingNode {
				report(errs, fmt.Errorf("%w: merge at line %d includes a %s, not a mapping",
					commonerrors.ErrWrongType, item.Line, kindName(item.Kind)))

				continue
			}

			out = append(out, mappingPairs(item, errs, visiting)...)
		}

		return out
	default:
		report(errs, fmt.Errorf("%w: merge at line %d is a %s, not a mapping",
			commonerrors.ErrWrongType, value.Line, kindName(value.Kind)))

		return nil
	}
}

func scalarValue(node *yaml.Node) string {
	if node.ShortTag() == nullTag {
		return ""
	}

	return node.Value
}

func report(errs *commonerrors.Collection, err error) {
	if errs != nil {
		errs.Add(err)
	}
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
