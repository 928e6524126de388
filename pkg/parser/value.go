package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

// maxValueDepth bounds how deep decoded documents are walked. Anything nested
// deeper is dropped from the tree.
const maxValueDepth = 64

// ValueType tags the variant held by a Value.
type ValueType int

const (
	ValueNull ValueType = iota
	ValueBool
	ValueNumber
	ValueString
	ValueArray
	ValueObject
)

// Field is one key/value member of an object, kept in document order.
type Field struct {
	Key   string
	Value Value
}

// Value is a decoded structured document. Scalars keep their textual form in Str.
type Value struct {
	Type   ValueType
	Str    string
	Fields []Field
	Items  []Value
}

// String builds a string leaf.
func String(s string) Value { return Value{Type: ValueString, Str: s} }

// Object builds an object value from fields in the given order.
func Object(fields ...Field) Value { return Value{Type: ValueObject, Fields: fields} }

// Array builds an array value.
func Array(items ...Value) Value { return Value{Type: ValueArray, Items: items} }

func isBracketed(trimmed string) bool {
	return (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"))
}

// decodeStructured decodes bracketed text as strict JSON, falling back to JSON5.
func decodeStructured(trimmed string) (Value, bool) {
	if !isBracketed(trimmed) {
		return Value{}, false
	}

	if gjson.Valid(trimmed) {
		return fromGJSON(gjson.Parse(trimmed), 0), true
	}

	var doc interface{}
	if err := json5.Unmarshal([]byte(trimmed), &doc); err != nil {
		return Value{}, false
	}
	switch doc.(type) {
	case map[string]interface{}, []interface{}:
		return fromInterface(doc, 0), true
	}
	return Value{}, false
}

// decodeYAMLMapping decodes text as a YAML mapping document with at least two
// entries. Single "a: b" lines are too common in prose to count.
func decodeYAMLMapping(text string) (Value, bool) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return Value{}, false
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Value{}, false
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode || len(root.Content)/2 < 2 {
		return Value{}, false
	}

	return fromYAML(root, 0), true
}

func fromGJSON(r gjson.Result, depth int) Value {
	if depth > maxValueDepth {
		return Value{}
	}

	switch r.Type {
	case gjson.String:
		return String(r.Str)
	case gjson.Number:
		return Value{Type: ValueNumber, Str: r.Raw}
	case gjson.True, gjson.False:
		return Value{Type: ValueBool, Str: r.Raw}
	case gjson.JSON:
		if r.IsObject() {
			v := Value{Type: ValueObject}
			r.ForEach(func(key, value gjson.Result) bool {
				v.Fields = append(v.Fields, Field{Key: key.String(), Value: fromGJSON(value, depth+1)})
				return true
			})
			return v
		}
		if r.IsArray() {
			v := Value{Type: ValueArray}
			r.ForEach(func(_, value gjson.Result) bool {
				v.Items = append(v.Items, fromGJSON(value, depth+1))
				return true
			})
			return v
		}
	}
	return Value{}
}

// fromInterface converts a generic decode result. Map keys are sorted because
// map iteration order is random.
func fromInterface(in interface{}, depth int) Value {
	if depth > maxValueDepth {
		return Value{}
	}

	switch t := in.(type) {
	case string:
		return String(t)
	case bool:
		return Value{Type: ValueBool, Str: fmt.Sprint(t)}
	case []interface{}:
		v := Value{Type: ValueArray}
		for _, item := range t {
			v.Items = append(v.Items, fromInterface(item, depth+1))
		}
		return v
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		v := Value{Type: ValueObject}
		for _, k := range keys {
			v.Fields = append(v.Fields, Field{Key: k, Value: fromInterface(t[k], depth+1)})
		}
		return v
	case nil:
		return Value{}
	}
	return Value{Type: ValueNumber, Str: fmt.Sprint(in)}
}

func fromYAML(n *yaml.Node, depth int) Value {
	if n == nil || depth > maxValueDepth {
		return Value{}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Value{}
		}
		return fromYAML(n.Content[0], depth+1)
	case yaml.AliasNode:
		// not expanded, the anchored node is walked where it is defined
		return Value{}
	case yaml.MappingNode:
		v := Value{Type: ValueObject}
		for i := 0; i+1 < len(n.Content); i += 2 {
			v.Fields = append(v.Fields, Field{Key: n.Content[i].Value, Value: fromYAML(n.Content[i+1], depth+1)})
		}
		return v
	case yaml.SequenceNode:
		v := Value{Type: ValueArray}
		for _, item := range n.Content {
			v.Items = append(v.Items, fromYAML(item, depth+1))
		}
		return v
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str", "!!binary":
			return String(n.Value)
		case "!!bool":
			return Value{Type: ValueBool, Str: n.Value}
		case "!!int", "!!float":
			return Value{Type: ValueNumber, Str: n.Value}
		case "!!null":
			return Value{}
		default:
			// timestamps and custom tags are not plain strings
			return Value{Type: ValueNumber, Str: n.Value}
		}
	}
	return Value{}
}
