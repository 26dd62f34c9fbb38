// Copyright (c) 2026, Papersynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the record as an ordered YAML mapping node.
func (r *Record) MarshalYAML() (any, error) {
	return toNode(r)
}

func toNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case *Record:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, k := range x.Keys() {
			c, err := toNode(x.list.Values[i])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, c)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		// tuples of scalars read better inline
		if allScalars(x) {
			n.Style = yaml.FlowStyle
		}
		for i, e := range x {
			c, err := toNode(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	case float64:
		s, err := formatFloat(x)
		if err != nil {
			return nil, err
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}, nil
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(x)}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(x)}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x, Style: yaml.DoubleQuotedStyle}, nil
	}
	return nil, fmt.Errorf("document: unsupported value of type %T", v)
}

func allScalars(s []any) bool {
	for _, e := range s {
		switch e.(type) {
		case *Record, []any:
			return false
		}
	}
	return true
}

// UnmarshalYAML decodes a YAML mapping node into the record, keeping key order.
func (r *Record) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("document: line %d: expected a YAML mapping", n.Line)
	}
	r.list.Reset()
	return fromMapping(n, r)
}

func fromMapping(n *yaml.Node, r *Record) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.Kind != yaml.ScalarNode {
			return fmt.Errorf("document: line %d: mapping keys must be scalars", kn.Line)
		}
		if kn.Tag == "!!merge" {
			return fmt.Errorf("document: line %d: merge keys are not supported", kn.Line)
		}
		v, err := fromNode(vn)
		if err != nil {
			return fmt.Errorf("%s: %w", kn.Value, err)
		}
		if err := r.Add(kn.Value, v); err != nil {
			return fmt.Errorf("document: line %d: duplicate key %q", kn.Line, kn.Value)
		}
	}
	return nil
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.MappingNode:
		c := NewRecord()
		return c, fromMapping(n, c)
	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for i, cn := range n.Content {
			e, err := fromNode(cn)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			s = append(s, e)
		}
		return s, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int":
			var i int
			err := n.Decode(&i)
			return i, err
		case "!!float":
			var f float64
			err := n.Decode(&f)
			return f, err
		case "!!bool":
			var b bool
			err := n.Decode(&b)
			return b, err
		case "!!str":
			return n.Value, nil
		case "!!null":
			return nil, fmt.Errorf("document: line %d: null values are not supported", n.Line)
		}
		return nil, fmt.Errorf("document: line %d: unsupported scalar tag %s", n.Line, n.ShortTag())
	}
	return nil, fmt.Errorf("document: line %d: unsupported YAML node", n.Line)
}
