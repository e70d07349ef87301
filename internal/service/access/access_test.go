package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Has(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		check string
		want  bool
	}{
		{name: "empty node always granted", nodes: nil, check: "", want: true},
		{name: "exact", nodes: []string{"home.set"}, check: "home.set", want: true},
		{name: "case insensitive", nodes: []string{"Home.Set"}, check: "home.SET", want: true},
		{name: "missing", nodes: []string{"home.set"}, check: "home.del", want: false},
		{name: "global wildcard", nodes: []string{"*"}, check: "tusk.admin", want: true},
		{name: "parent wildcard", nodes: []string{"tusk.*"}, check: "tusk.help.all", want: true},
		{name: "nested wildcard", nodes: []string{"tusk.help.*"}, check: "tusk.help.all", want: true},
		{name: "wildcard does not match sibling", nodes: []string{"tusk.help.*"}, check: "tusk.admin", want: false},
		{name: "wildcard does not match itself", nodes: []string{"tusk.*"}, check: "tusk", want: false},
		{name: "prefix is not a wildcard", nodes: []string{"tusk"}, check: "tusk.admin", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSet(tt.nodes...).Has(tt.check))
		})
	}
}

func TestSet_Nodes(t *testing.T) {
	s := NewSet("tusk.help", " ", "Tusk.Admin")
	s.Grant("home.set")

	assert.Equal(t, []string{"home.set", "tusk.admin", "tusk.help"}, s.Nodes())
	assert.True(t, All().Has("anything.at.all"))
}
