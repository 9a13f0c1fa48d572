// Copyright © 2026 The eolint authors

package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutation_MutatingCallOnField(t *testing.T) {
	source := `class Basket:
    def __init__(self, items):
        self.items = items

    def _toss(self, item):
        self.items.append(item)
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
	assert.Equal(t, EO008, diags[0].Code)
	assert.Contains(t, diags[0].Message, "Mutating method 'append'")
	assert.Contains(t, diags[0].Message, "'items'")
	assert.Equal(t, 6, diags[0].Pos.Line)
}

func TestMutation_ReassignmentOfField(t *testing.T) {
	source := `class Basket:
    def __init__(self, items):
        self.items = items

    def _reset(self):
        self.items = []
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "mutated outside __init__")
	assert.Contains(t, diags[0].Message, "'items'")
}

func TestMutation_AugmentedAssignment(t *testing.T) {
	source := `class Tally:
    def __init__(self, count):
        self.count = count

    def _bump(self):
        self.count += 1
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'count'")
}

func TestMutation_TupleTargets(t *testing.T) {
	source := `class Pair:
    def __init__(self, a, b):
        self.a, self.b = a, b

    def _swap(self):
        self.a, self.b = self.b, self.a
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 2)
	assertHasDiag(t, diags, "'a'")
	assertHasDiag(t, diags, "'b'")
}

func TestMutation_ChainedAttributePath(t *testing.T) {
	source := `class Wrap:
    def __init__(self, container):
        self.container = container

    def _wipe(self):
        self.container.data.clear()
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Mutating method 'clear'")
	assert.Contains(t, diags[0].Message, "'container.data'")
}

func TestMutation_InitializerExempt(t *testing.T) {
	// Establishing state inside the initializer is not mutation, even
	// through a mutating call.
	source := `class Basket:
    def __init__(self, items):
        self.items = items
        self.items.append(0)
`
	assertNoDiags(t, lintRule(t, RuleMutable, source))
}

func TestMutation_StaticMethodExempt(t *testing.T) {
	source := `class Basket:
    def __init__(self, items):
        self.items = items

    @staticmethod
    def _scrub(self):
        self.items.clear()
`
	assertNoDiags(t, lintRule(t, RuleMutable, source))
}

func TestMutation_UnestablishedFieldIgnored(t *testing.T) {
	source := `class Basket:
    def __init__(self, items):
        self.items = items

    def _label(self):
        self.tag = "spare"
        self.extras.append(1)
`
	assertNoDiags(t, lintRule(t, RuleMutable, source))
}

func TestMutation_NonMutatingCallIgnored(t *testing.T) {
	source := `class Basket:
    def __init__(self, items):
        self.items = items

    def _peek(self):
        return self.items.index(0)
`
	assertNoDiags(t, lintRule(t, RuleMutable, source))
}

func TestMutation_CustomReceiverName(t *testing.T) {
	// The receiver is whatever the first parameter is called, per method.
	source := `class Node:
    def __init__(self, links):
        self.links = links

    def _prune(node):
        node.links.pop()
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'links'")
}

func TestMutation_MethodDeclaredBeforeInitializer(t *testing.T) {
	// Field collection runs over the initializer first, so declaration
	// order inside the class does not matter.
	source := `class Log:
    def _wipe(self):
        self.entries.clear()

    def __init__(self, entries):
        self.entries = entries
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'entries'")
}

func TestMutation_LoopBodyMutation(t *testing.T) {
	source := `class Basket:
    def __init__(self, items):
        self.items = items

    def _drain(self):
        for item in self.items:
            self.items.remove(item)
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Mutating method 'remove'")
	assert.Contains(t, diags[0].Message, "'items'")
}

func TestMutation_WithBlockMutation(t *testing.T) {
	source := `class Journal:
    def __init__(self, entries):
        self.entries = entries

    def _rotate(self, path):
        with open(path) as fh:
            self.entries.clear()
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'entries'")
}

func TestMutation_ConditionalMutationFound(t *testing.T) {
	// The tracker walks nested statements inside method bodies.
	source := `class Basket:
    def __init__(self, items):
        self.items = items

    def _tidy(self, keep):
        if not keep:
            self.items.clear()
`
	diags := lintRule(t, RuleMutable, source)
	require.Len(t, diags, 1)
}
