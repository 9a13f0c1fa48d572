// Copyright © 2026 The eolint authors

package pyast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree models:
//
//	class Acct:
//	    def __init__(self, n):
//	        self.n = n.strip()
func sampleTree() *Module {
	call := &Call{
		Func: &Attribute{Value: &Name{Id: "n"}, Attr: "strip"},
	}
	assign := &Assign{
		Targets: []Expr{&Attribute{Value: &Name{Id: "self"}, Attr: "n"}},
		Value:   call,
	}
	init := &FuncDef{
		Name:   "__init__",
		Params: []*Param{{Name: "self"}, {Name: "n"}},
		Body:   []Stmt{assign},
	}
	cls := &ClassDef{Name: "Acct", Body: []Stmt{init}}
	return &Module{Body: []Stmt{cls}}
}

func kind(n Node) string { return fmt.Sprintf("%T", n) }

func TestChildren_SourceOrder(t *testing.T) {
	cls := &ClassDef{
		Name:       "Acct",
		Decorators: []Expr{&Name{Id: "dataclass"}},
		Bases:      []Expr{&Name{Id: "ABC"}},
		Keywords:   []*Keyword{{Arg: "metaclass", Value: &Name{Id: "Meta"}}},
		Body:       []Stmt{&Pass{}},
	}
	kids := Children(cls)
	require.Len(t, kids, 4)
	assert.Equal(t, "*pyast.Name", kind(kids[0]))
	assert.Equal(t, "*pyast.Name", kind(kids[1]))
	assert.Equal(t, "*pyast.Keyword", kind(kids[2]))
	assert.Equal(t, "*pyast.Pass", kind(kids[3]))
}

func TestChildren_NilFieldsOmitted(t *testing.T) {
	ann := &AnnAssign{Target: &Name{Id: "x"}, Annotation: &Name{Id: "int"}}
	assert.Len(t, Children(ann), 2)

	ret := &Return{}
	assert.Empty(t, Children(ret))
}

func TestChildren_Leaves(t *testing.T) {
	for _, n := range []Node{
		&Name{Id: "x"},
		&Constant{Kind: ConstNone, Text: "None"},
		&Pass{},
		&Import{Names: []*Alias{{Name: "os"}}},
		&FromImport{Module: "abc", Names: []*Alias{{Name: "ABC"}}},
	} {
		assert.Empty(t, Children(n), "%T", n)
	}
}

func TestChildren_CompoundStatements(t *testing.T) {
	w := &With{
		Items: []*WithItem{{Context: &Name{Id: "open"}, Vars: &Name{Id: "fh"}}},
		Body:  []Stmt{&Pass{}},
	}
	kids := Children(w)
	require.Len(t, kids, 2)
	assert.Equal(t, "*pyast.WithItem", kind(kids[0]))
	assert.Len(t, Children(kids[0]), 2)

	tr := &Try{
		Body:     []Stmt{&Pass{}},
		Handlers: []*ExceptHandler{{Type: &Name{Id: "ValueError"}, Body: []Stmt{&Pass{}}}},
		Final:    []Stmt{&Pass{}},
	}
	kids = Children(tr)
	require.Len(t, kids, 3)
	assert.Equal(t, "*pyast.ExceptHandler", kind(kids[1]))
	assert.Len(t, Children(kids[1]), 2)
}

func TestChildren_Comprehension(t *testing.T) {
	comp := &Comp{
		Kind: CompList,
		Elt:  &Name{Id: "x"},
		Clauses: []*CompClause{{
			Target: &Name{Id: "x"},
			Iter:   &Name{Id: "xs"},
			Ifs:    []Expr{&Name{Id: "keepable"}},
		}},
	}
	kids := Children(comp)
	require.Len(t, kids, 2)
	assert.Equal(t, "*pyast.CompClause", kind(kids[1]))
	assert.Len(t, Children(kids[1]), 3)
}

func TestWalk_PreOrder(t *testing.T) {
	var kinds []string
	Walk(sampleTree(), func(n Node) bool {
		kinds = append(kinds, kind(n))
		return true
	})
	assert.Equal(t, []string{
		"*pyast.Module",
		"*pyast.ClassDef",
		"*pyast.FuncDef",
		"*pyast.Assign",
		"*pyast.Attribute", // self.n target
		"*pyast.Name",      // self
		"*pyast.Call",
		"*pyast.Attribute", // n.strip
		"*pyast.Name",      // n
	}, kinds)
}

func TestWalk_SkipChildren(t *testing.T) {
	var kinds []string
	Walk(sampleTree(), func(n Node) bool {
		kinds = append(kinds, kind(n))
		_, isFunc := n.(*FuncDef)
		return !isFunc
	})
	assert.Equal(t, []string{"*pyast.Module", "*pyast.ClassDef", "*pyast.FuncDef"}, kinds)
}

func TestWalk_NilRoot(t *testing.T) {
	called := false
	Walk(nil, func(Node) bool { called = true; return true })
	assert.False(t, called)
}

func TestConstant_Predicates(t *testing.T) {
	assert.True(t, (&Constant{Kind: ConstNone}).IsNone())
	assert.True(t, (&Constant{Kind: ConstTrue}).IsTrue())
	assert.False(t, (&Constant{Kind: ConstStr, Text: "None"}).IsNone())
}

func TestLoc_String(t *testing.T) {
	assert.Equal(t, "3:7", Loc{Line: 3, Col: 7}.String())
}
