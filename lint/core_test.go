// Copyright © 2026 The eolint authors

package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- nonull ---

func TestNoNull_Assignment(t *testing.T) {
	diags := lintRule(t, RuleNoNull, "x = None\n")
	require.Len(t, diags, 1)
	assert.Equal(t, EO005, diags[0].Code)
	assert.Equal(t, 1, diags[0].Pos.Line)
}

func TestNoNull_DefaultAndReturn(t *testing.T) {
	source := `def fallback(value=None):
    return None
`
	diags := lintRule(t, RuleNoNull, source)
	assert.Len(t, diags, 2)
}

func TestNoNull_Comparison(t *testing.T) {
	source := `if value is None:
    pass
`
	diags := lintRule(t, RuleNoNull, source)
	assert.Len(t, diags, 1)
}

func TestNoNull_Clean(t *testing.T) {
	assertNoDiags(t, lintRule(t, RuleNoNull, "x = 0\ny = False\nz = ''\n"))
}

func TestNoNull_InsideCompoundStatements(t *testing.T) {
	// Loop, with and try bodies are traversed like any other suite.
	source := `for item in items:
    keep(None)

with open(path) as fh:
    fh.write(None)

try:
    risky()
except ValueError:
    fallback = None
`
	diags := lintRule(t, RuleNoNull, source)
	assert.Len(t, diags, 3)
}

func TestNoNull_InsideComprehension(t *testing.T) {
	diags := lintRule(t, RuleNoNull, "gaps = [x for x in xs if x is None]\n")
	require.Len(t, diags, 1)
	assert.Equal(t, EO005, diags[0].Code)
}

// --- constructor ---

func TestConstructor_PureAssignments(t *testing.T) {
	source := `class Point:
    def __init__(self, x, y):
        self.x = x
        self.y = y
`
	assertNoDiags(t, lintRule(t, RuleConstructor, source))
}

func TestConstructor_PassOnly(t *testing.T) {
	source := `class Marker:
    def __init__(self):
        pass
`
	assertNoDiags(t, lintRule(t, RuleConstructor, source))
}

func TestConstructor_ComputedValue(t *testing.T) {
	source := `class Point:
    def __init__(self, x):
        self.x = x * 2
`
	diags := lintRule(t, RuleConstructor, source)
	require.Len(t, diags, 1)
	assert.Equal(t, EO006, diags[0].Code)
	assert.Equal(t, 3, diags[0].Pos.Line)
}

func TestConstructor_CallInBody(t *testing.T) {
	source := `class Session:
    def __init__(self, url):
        self.url = url
        self._dial()
`
	diags := lintRule(t, RuleConstructor, source)
	require.Len(t, diags, 1)
	assert.Equal(t, 4, diags[0].Pos.Line)
}

func TestConstructor_FirstViolationOnly(t *testing.T) {
	// Two offending statements, one report: the first.
	source := `class Point:
    def __init__(self, x):
        self.x = x * 2
        self.y = x + 1
`
	diags := lintRule(t, RuleConstructor, source)
	require.Len(t, diags, 1)
	assert.Equal(t, 3, diags[0].Pos.Line)
}

func TestConstructor_NonReceiverTarget(t *testing.T) {
	source := `class Point:
    def __init__(self, x):
        local = x
`
	diags := lintRule(t, RuleConstructor, source)
	require.Len(t, diags, 1)
}

func TestConstructor_OtherMethodsIgnored(t *testing.T) {
	source := `class Point:
    def _shift(self, dx):
        self.x = self.x + dx
`
	assertNoDiags(t, lintRule(t, RuleConstructor, source))
}

// --- getters ---

func TestGetterSetter_ThreeForms(t *testing.T) {
	source := `class Person:
    def get_name(self):
        return self.name

    def set_name(self, name):
        self.name = name

    def getName(self):
        return self.name

    def getter(self):
        return self.name
`
	diags := lintRule(t, RuleGetterSetter, source)
	require.Len(t, diags, 3)
	for _, d := range diags {
		assert.Equal(t, EO007, d.Code)
	}
}

func TestGetterSetter_BareGetAndSet(t *testing.T) {
	source := `class Box:
    def get(self):
        return self.v

    def set(self, v):
        self.v = v
`
	diags := lintRule(t, RuleGetterSetter, source)
	assert.Len(t, diags, 2)
}

func TestGetterSetter_NoCamelBoundary(t *testing.T) {
	// "geta" and "settle" have no upper-case boundary after the verb.
	source := `class Box:
    def geta(self):
        return self.v

    def settle(self):
        return self.v
`
	assertNoDiags(t, lintRule(t, RuleGetterSetter, source))
}

func TestGetterSetter_PrivateAndFunctionSkipped(t *testing.T) {
	source := `class Box:
    def _get_v(self):
        return self.v

def get_config():
    pass
`
	assertNoDiags(t, lintRule(t, RuleGetterSetter, source))
}

// --- mutable, declaration level ---

func TestMutable_DataclassWithoutFrozen(t *testing.T) {
	source := `@dataclass
class Point:
    x: int
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
	assert.Equal(t, EO008, diags[0].Code)
	assert.Contains(t, diags[0].Message, "Point")
	assert.Equal(t, 2, diags[0].Pos.Line)
}

func TestMutable_DataclassFrozen(t *testing.T) {
	source := `@dataclass(frozen=True)
class Point:
    x: int
`
	assertNoDiags(t, lintRule(t, RuleMutable, source))
}

func TestMutable_DataclassFrozenFalse(t *testing.T) {
	source := `@dataclass(frozen=False)
class Point:
    x: int
`
	diags := lintRule(t, RuleMutable, source)
	assert.Len(t, diags, 1)
}

func TestMutable_ClassAttributeLiteral(t *testing.T) {
	source := `class Registry:
    entries = []
    table = {}
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 2)
	assertHasDiag(t, diags, "'entries'")
	assertHasDiag(t, diags, "'table'")
}

func TestMutable_ClassAttributeConstructor(t *testing.T) {
	source := `class Registry:
    entries = list()
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
}

func TestMutable_ImmutableAttributesClean(t *testing.T) {
	source := `class Registry:
    limit = 10
    name = "registry"
    pair = (1, 2)
`
	assertNoDiags(t, lintRule(t, RuleMutable, source))
}
