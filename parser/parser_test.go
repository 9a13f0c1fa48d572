// Copyright © 2026 The eolint authors

package parser

import (
	"testing"

	"github.com/eolint/eolint/pyast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseModule(t *testing.T, source string) *pyast.Module {
	t.Helper()
	mod, err := Parse([]byte(source))
	require.NoError(t, err)
	return mod
}

func TestParse_ClassDef(t *testing.T) {
	source := `class Account(Asset, metaclass=Meta):
    pass
`
	mod := parseModule(t, source)
	require.Len(t, mod.Body, 1)
	cls, ok := mod.Body[0].(*pyast.ClassDef)
	require.True(t, ok)
	assert.Equal(t, "Account", cls.Name)
	assert.Equal(t, 1, cls.Line)
	assert.Equal(t, 0, cls.Col)
	require.Len(t, cls.Bases, 1)
	base, ok := cls.Bases[0].(*pyast.Name)
	require.True(t, ok)
	assert.Equal(t, "Asset", base.Id)
	require.Len(t, cls.Keywords, 1)
	assert.Equal(t, "metaclass", cls.Keywords[0].Arg)
	require.Len(t, cls.Body, 1)
	_, ok = cls.Body[0].(*pyast.Pass)
	assert.True(t, ok)
}

func TestParse_DecoratedFuncDef(t *testing.T) {
	source := `@staticmethod
@functools.wraps(f)
def size(a, b=1, *args, **kwargs) -> int:
    return a
`
	mod := parseModule(t, source)
	fn, ok := mod.Body[0].(*pyast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "size", fn.Name)
	require.Len(t, fn.Decorators, 2)
	_, ok = fn.Decorators[0].(*pyast.Name)
	assert.True(t, ok)
	_, ok = fn.Decorators[1].(*pyast.Call)
	assert.True(t, ok)

	require.Len(t, fn.Params, 4)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "b", fn.Params[1].Name)
	require.NotNil(t, fn.Params[1].Default)
	assert.Equal(t, "*", fn.Params[2].Star)
	assert.Equal(t, "**", fn.Params[3].Star)
	require.NotNil(t, fn.Returns)
}

func TestParse_AssignForms(t *testing.T) {
	source := `x = 1
y: int = 2
z += 3
a = b = 4
p, q = 5, 6
`
	mod := parseModule(t, source)
	require.Len(t, mod.Body, 5)

	assign, ok := mod.Body[0].(*pyast.Assign)
	require.True(t, ok)
	require.Len(t, assign.Targets, 1)

	ann, ok := mod.Body[1].(*pyast.AnnAssign)
	require.True(t, ok)
	require.NotNil(t, ann.Annotation)
	require.NotNil(t, ann.Value)

	aug, ok := mod.Body[2].(*pyast.AugAssign)
	require.True(t, ok)
	assert.Equal(t, "+", aug.Op)

	chained, ok := mod.Body[3].(*pyast.Assign)
	require.True(t, ok)
	assert.Len(t, chained.Targets, 2)

	multi, ok := mod.Body[4].(*pyast.Assign)
	require.True(t, ok)
	require.Len(t, multi.Targets, 1)
	tup, ok := multi.Targets[0].(*pyast.Tuple)
	require.True(t, ok)
	assert.Len(t, tup.Elts, 2)
}

func TestParse_CallAttributeChain(t *testing.T) {
	mod := parseModule(t, "obj.parts.append(item, depth=2)\n")
	stmt, ok := mod.Body[0].(*pyast.ExprStmt)
	require.True(t, ok)
	call, ok := stmt.X.(*pyast.Call)
	require.True(t, ok)
	attr, ok := call.Func.(*pyast.Attribute)
	require.True(t, ok)
	assert.Equal(t, "append", attr.Attr)
	inner, ok := attr.Value.(*pyast.Attribute)
	require.True(t, ok)
	assert.Equal(t, "parts", inner.Attr)
	root, ok := inner.Value.(*pyast.Name)
	require.True(t, ok)
	assert.Equal(t, "obj", root.Id)
	require.Len(t, call.Args, 1)
	require.Len(t, call.Keywords, 1)
	assert.Equal(t, "depth", call.Keywords[0].Arg)
}

func TestParse_Constants(t *testing.T) {
	mod := parseModule(t, "v = (None, True, False, 1, 2.5, 'txt')\n")
	assign := mod.Body[0].(*pyast.Assign)
	tup, ok := assign.Value.(*pyast.Tuple)
	require.True(t, ok)
	require.Len(t, tup.Elts, 6)
	kinds := []pyast.ConstKind{
		pyast.ConstNone, pyast.ConstTrue, pyast.ConstFalse,
		pyast.ConstInt, pyast.ConstFloat, pyast.ConstStr,
	}
	for i, want := range kinds {
		c, ok := tup.Elts[i].(*pyast.Constant)
		require.True(t, ok, "element %d", i)
		assert.Equal(t, want, c.Kind, "element %d", i)
	}
}

func TestParse_CompoundStatements(t *testing.T) {
	source := `if ready:
    go()
elif maybe:
    wait()
else:
    halt()

while alive:
    tick()

for item in items:
    keep(item)
`
	mod := parseModule(t, source)
	require.Len(t, mod.Body, 3)

	cond, ok := mod.Body[0].(*pyast.If)
	require.True(t, ok)
	require.Len(t, cond.Else, 1)
	elif, ok := cond.Else[0].(*pyast.If)
	require.True(t, ok)
	assert.Len(t, elif.Else, 1)

	_, ok = mod.Body[1].(*pyast.While)
	assert.True(t, ok)
	loop, ok := mod.Body[2].(*pyast.For)
	require.True(t, ok)
	_, ok = loop.Target.(*pyast.Name)
	assert.True(t, ok)
}

func TestParse_ForTupleTarget(t *testing.T) {
	source := `for key, value in pairs:
    keep(key, value)
`
	mod := parseModule(t, source)
	loop, ok := mod.Body[0].(*pyast.For)
	require.True(t, ok)
	tup, ok := loop.Target.(*pyast.Tuple)
	require.True(t, ok)
	assert.Len(t, tup.Elts, 2)
	iter, ok := loop.Iter.(*pyast.Name)
	require.True(t, ok)
	assert.Equal(t, "pairs", iter.Id)
}

func TestParse_MembershipOutsideLoop(t *testing.T) {
	// `in` is still a comparison operator outside loop targets.
	mod := parseModule(t, "found = x in items\n")
	assign := mod.Body[0].(*pyast.Assign)
	cmp, ok := assign.Value.(*pyast.Compare)
	require.True(t, ok)
	assert.Equal(t, []string{"in"}, cmp.Ops)

	mod = parseModule(t, "missing = x not in items\n")
	cmp = mod.Body[0].(*pyast.Assign).Value.(*pyast.Compare)
	assert.Equal(t, []string{"not in"}, cmp.Ops)
}

func TestParse_WithStatement(t *testing.T) {
	source := `with open(path) as fh, lock:
    fh.write(data)
`
	mod := parseModule(t, source)
	w, ok := mod.Body[0].(*pyast.With)
	require.True(t, ok)
	require.Len(t, w.Items, 2)
	_, ok = w.Items[0].Context.(*pyast.Call)
	assert.True(t, ok)
	vars, ok := w.Items[0].Vars.(*pyast.Name)
	require.True(t, ok)
	assert.Equal(t, "fh", vars.Id)
	assert.Nil(t, w.Items[1].Vars)
	require.Len(t, w.Body, 1)
}

func TestParse_TryExceptElseFinally(t *testing.T) {
	source := `try:
    risky()
except ValueError as err:
    handle(err)
except:
    pass
else:
    celebrate()
finally:
    close()
`
	mod := parseModule(t, source)
	tr, ok := mod.Body[0].(*pyast.Try)
	require.True(t, ok)
	require.Len(t, tr.Body, 1)
	require.Len(t, tr.Handlers, 2)
	typ, ok := tr.Handlers[0].Type.(*pyast.Name)
	require.True(t, ok)
	assert.Equal(t, "ValueError", typ.Id)
	assert.Equal(t, "err", tr.Handlers[0].Name)
	assert.Nil(t, tr.Handlers[1].Type)
	require.Len(t, tr.Else, 1)
	require.Len(t, tr.Final, 1)
}

func TestParse_TryFinallyOnly(t *testing.T) {
	source := `try:
    risky()
finally:
    close()
`
	mod := parseModule(t, source)
	tr := mod.Body[0].(*pyast.Try)
	assert.Empty(t, tr.Handlers)
	require.Len(t, tr.Final, 1)
}

func TestParse_TryWithoutHandlers(t *testing.T) {
	_, err := Parse([]byte("try:\n    pass\n"))
	require.Error(t, err)
}

func TestParse_Comprehensions(t *testing.T) {
	mod := parseModule(t, "squares = [x * x for x in nums if x > 0]\n")
	comp, ok := mod.Body[0].(*pyast.Assign).Value.(*pyast.Comp)
	require.True(t, ok)
	assert.Equal(t, pyast.CompList, comp.Kind)
	_, ok = comp.Elt.(*pyast.BinOp)
	assert.True(t, ok)
	require.Len(t, comp.Clauses, 1)
	require.Len(t, comp.Clauses[0].Ifs, 1)

	mod = parseModule(t, "index = {k: v for k, v in pairs}\n")
	comp = mod.Body[0].(*pyast.Assign).Value.(*pyast.Comp)
	assert.Equal(t, pyast.CompDict, comp.Kind)
	require.NotNil(t, comp.Value)
	_, ok = comp.Clauses[0].Target.(*pyast.Tuple)
	assert.True(t, ok)

	mod = parseModule(t, "letters = {c for c in word}\n")
	comp = mod.Body[0].(*pyast.Assign).Value.(*pyast.Comp)
	assert.Equal(t, pyast.CompSet, comp.Kind)

	mod = parseModule(t, "gen = (n for n in nums)\n")
	comp = mod.Body[0].(*pyast.Assign).Value.(*pyast.Comp)
	assert.Equal(t, pyast.CompGen, comp.Kind)
}

func TestParse_GeneratorArgument(t *testing.T) {
	mod := parseModule(t, "total = sum(x * x for x in nums)\n")
	call, ok := mod.Body[0].(*pyast.Assign).Value.(*pyast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	comp, ok := call.Args[0].(*pyast.Comp)
	require.True(t, ok)
	assert.Equal(t, pyast.CompGen, comp.Kind)
}

func TestParse_NestedClassAndMethods(t *testing.T) {
	source := `class Outer:
    def __init__(self, name):
        self.name = name

    class Inner:
        pass
`
	mod := parseModule(t, source)
	outer := mod.Body[0].(*pyast.ClassDef)
	require.Len(t, outer.Body, 2)
	fn, ok := outer.Body[0].(*pyast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "__init__", fn.Name)
	inner, ok := outer.Body[1].(*pyast.ClassDef)
	require.True(t, ok)
	assert.Equal(t, "Inner", inner.Name)
}

func TestParse_ImportForms(t *testing.T) {
	source := `import os.path as osp
from typing import Protocol, Optional as Opt
`
	mod := parseModule(t, source)
	imp, ok := mod.Body[0].(*pyast.Import)
	require.True(t, ok)
	require.Len(t, imp.Names, 1)
	assert.Equal(t, "os.path", imp.Names[0].Name)
	assert.Equal(t, "osp", imp.Names[0].AsName)

	from, ok := mod.Body[1].(*pyast.FromImport)
	require.True(t, ok)
	assert.Equal(t, "typing", from.Module)
	require.Len(t, from.Names, 2)
	assert.Equal(t, "Opt", from.Names[1].AsName)
}

func TestParse_InlineSuite(t *testing.T) {
	mod := parseModule(t, "class Marker: pass\n")
	cls := mod.Body[0].(*pyast.ClassDef)
	require.Len(t, cls.Body, 1)
	_, ok := cls.Body[0].(*pyast.Pass)
	assert.True(t, ok)
}

func TestParse_Errors(t *testing.T) {
	for _, source := range []string{
		"def broken(:\n",
		"class:\n    pass\n",
		"x = = 1\n",
	} {
		_, err := Parse([]byte(source))
		assert.Error(t, err, "source %q", source)
	}
}

func TestParseFile_ErrorNamesFile(t *testing.T) {
	_, err := ParseFile("broken.py", []byte("def broken(:\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.py")
}
