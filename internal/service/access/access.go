// Package access implements permission node sets. A node is a dotted
// name such as "tusk.help.all"; "*" grants everything and "tusk.*" grants
// every node below "tusk".
package access

import (
	"sort"
	"strings"
)

type Set struct {
	nodes map[string]struct{}
}

func NewSet(nodes ...string) *Set {
	s := &Set{nodes: make(map[string]struct{}, len(nodes))}
	for _, n := range nodes {
		s.Grant(n)
	}
	return s
}

// All returns a set holding every permission.
func All() *Set {
	return NewSet("*")
}

func (s *Set) Grant(node string) {
	node = strings.ToLower(strings.TrimSpace(node))
	if node == "" {
		return
	}
	s.nodes[node] = struct{}{}
}

// Has reports whether node is granted directly or through a wildcard parent.
func (s *Set) Has(node string) bool {
	node = strings.ToLower(strings.TrimSpace(node))
	if node == "" {
		return true
	}
	if _, ok := s.nodes["*"]; ok {
		return true
	}
	if _, ok := s.nodes[node]; ok {
		return true
	}

	for i := strings.LastIndex(node, "."); i > 0; i = strings.LastIndex(node[:i], ".") {
		if _, ok := s.nodes[node[:i]+".*"]; ok {
			return true
		}
	}
	return false
}

// Nodes returns the granted nodes, sorted.
func (s *Set) Nodes() []string {
	out := make([]string, 0, len(s.nodes))
	for n := range s.nodes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
