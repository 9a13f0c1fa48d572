// Copyright © 2026 The eolint authors

// Package pyast defines the syntax tree for the Python subset that eolint
// analyzes. The node set is closed: every node kind the engine can receive
// is a struct in this package, so rule dispatch is an exhaustive type
// switch rather than reflective inspection.
//
// Trees are produced by the parser package and consumed read-only by the
// lint package. Nodes are never mutated after construction.
package pyast

import "fmt"

// Loc records the source position of a node. Line is 1-based, Col is the
// 0-based column offset within the line.
type Loc struct {
	Line int
	Col  int
}

// Position returns the receiver, satisfying the Node interface for every
// struct that embeds Loc.
func (l Loc) Position() Loc { return l }

func (l Loc) String() string { return fmt.Sprintf("%d:%d", l.Line, l.Col) }

// Node is one syntax tree node.
type Node interface {
	Position() Loc
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Module is the root of a parsed source file.
type Module struct {
	Loc
	Body []Stmt
}

// ClassDef is a class declaration.
type ClassDef struct {
	Loc
	Name       string
	Bases      []Expr
	Keywords   []*Keyword // metaclass=..., etc.
	Decorators []Expr
	Body       []Stmt
}

// FuncDef is a function or method declaration. Whether it is a method is
// decided by context (enclosing class) and its first parameter.
type FuncDef struct {
	Loc
	Name       string
	Params     []*Param
	Decorators []Expr
	Returns    Expr // optional -> annotation
	Body       []Stmt
}

// Param is a single formal parameter of a FuncDef.
type Param struct {
	Loc
	Name       string
	Star       string // "", "*" or "**"
	Annotation Expr
	Default    Expr
}

// Assign is `targets... = value`. Chained assignment (a = b = v) carries
// all left-hand sides in Targets.
type Assign struct {
	Loc
	Targets []Expr
	Value   Expr
}

// AnnAssign is an annotated assignment `target: ann = value`; Value may be
// nil for a bare declaration.
type AnnAssign struct {
	Loc
	Target     Expr
	Annotation Expr
	Value      Expr
}

// AugAssign is an augmented assignment such as `target += value`. Op holds
// the operator without the trailing "=" (e.g. "+").
type AugAssign struct {
	Loc
	Target Expr
	Op     string
	Value  Expr
}

// ExprStmt is an expression evaluated for effect as a statement.
type ExprStmt struct {
	Loc
	X Expr
}

// Pass is the no-op placeholder statement.
type Pass struct {
	Loc
}

// Return is a return statement; Value may be nil.
type Return struct {
	Loc
	Value Expr
}

// If is a conditional with optional else/elif chain in Else.
type If struct {
	Loc
	Cond Expr
	Body []Stmt
	Else []Stmt
}

// While is a while loop.
type While struct {
	Loc
	Cond Expr
	Body []Stmt
}

// For is a for loop over an iterable.
type For struct {
	Loc
	Target Expr
	Iter   Expr
	Body   []Stmt
}

// With is a with statement with one or more context items.
type With struct {
	Loc
	Items []*WithItem
	Body  []Stmt
}

// WithItem is one `expr [as target]` clause of a with statement.
type WithItem struct {
	Loc
	Context Expr
	Vars    Expr // optional `as` target, nil when absent
}

// Try is a try statement. Else and Final may be nil.
type Try struct {
	Loc
	Body     []Stmt
	Handlers []*ExceptHandler
	Else     []Stmt
	Final    []Stmt
}

// ExceptHandler is one except clause of a Try.
type ExceptHandler struct {
	Loc
	Type Expr   // nil for a bare except
	Name string // `as` binding, "" when absent
	Body []Stmt
}

// Assert is an assert statement with optional message.
type Assert struct {
	Loc
	Test Expr
	Msg  Expr
}

// Raise is a raise statement; Exc may be nil for a bare re-raise.
type Raise struct {
	Loc
	Exc  Expr
	From Expr
}

// Import is `import a.b as c, d`.
type Import struct {
	Loc
	Names []*Alias
}

// FromImport is `from mod import name as alias, ...`.
type FromImport struct {
	Loc
	Module string
	Names  []*Alias
}

// Alias is one imported name with an optional binding name.
type Alias struct {
	Name   string
	AsName string
}

// Name is a bare identifier reference.
type Name struct {
	Loc
	Id string
}

// Attribute is `Value.Attr`.
type Attribute struct {
	Loc
	Value Expr
	Attr  string
}

// Call is a call expression with positional and keyword arguments.
type Call struct {
	Loc
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

// Keyword is one `name=value` argument. Arg is empty for `**kwargs`.
type Keyword struct {
	Loc
	Arg   string
	Value Expr
}

// ConstKind discriminates literal constants.
type ConstKind int

const (
	ConstNone ConstKind = iota
	ConstTrue
	ConstFalse
	ConstInt
	ConstFloat
	ConstStr
)

// Constant is a literal constant. Text preserves the source spelling
// (string constants hold their unquoted value).
type Constant struct {
	Loc
	Kind ConstKind
	Text string
}

// IsNone reports whether the constant is the None sentinel.
func (c *Constant) IsNone() bool { return c.Kind == ConstNone }

// IsTrue reports whether the constant is the literal True.
func (c *Constant) IsTrue() bool { return c.Kind == ConstTrue }

// List is a list display `[a, b]`.
type List struct {
	Loc
	Elts []Expr
}

// Tuple is a tuple display or a bare expression list target.
type Tuple struct {
	Loc
	Elts []Expr
}

// Set is a set display `{a, b}`.
type Set struct {
	Loc
	Elts []Expr
}

// Dict is a dict display; Keys and Values are parallel.
type Dict struct {
	Loc
	Keys   []Expr
	Values []Expr
}

// Starred is `*value` in a target or argument list.
type Starred struct {
	Loc
	Value Expr
}

// CompKind discriminates comprehension forms.
type CompKind int

const (
	CompList CompKind = iota
	CompSet
	CompDict
	CompGen
)

// Comp is a comprehension or generator expression. Value holds the dict
// value expression for CompDict and is nil otherwise.
type Comp struct {
	Loc
	Kind    CompKind
	Elt     Expr
	Value   Expr
	Clauses []*CompClause
}

// CompClause is one `for target in iter [if cond]...` clause of a Comp.
type CompClause struct {
	Loc
	Target Expr
	Iter   Expr
	Ifs    []Expr
}

// BinOp is a binary arithmetic expression.
type BinOp struct {
	Loc
	Left  Expr
	Op    string
	Right Expr
}

// BoolOp is an `and`/`or` chain.
type BoolOp struct {
	Loc
	Op     string
	Values []Expr
}

// UnaryOp is a unary expression (`-x`, `not x`, `~x`).
type UnaryOp struct {
	Loc
	Op      string
	Operand Expr
}

// Compare is a comparison chain `left op c1 op c2 ...`.
type Compare struct {
	Loc
	Left        Expr
	Ops         []string
	Comparators []Expr
}

// Subscript is `Value[Index]`.
type Subscript struct {
	Loc
	Value Expr
	Index Expr
}

func (*Module) stmtNode()     {}
func (*ClassDef) stmtNode()   {}
func (*FuncDef) stmtNode()    {}
func (*Assign) stmtNode()     {}
func (*AnnAssign) stmtNode()  {}
func (*AugAssign) stmtNode()  {}
func (*ExprStmt) stmtNode()   {}
func (*Pass) stmtNode()       {}
func (*Return) stmtNode()     {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*For) stmtNode()        {}
func (*With) stmtNode()       {}
func (*Try) stmtNode()        {}
func (*Assert) stmtNode()     {}
func (*Raise) stmtNode()      {}
func (*Import) stmtNode()     {}
func (*FromImport) stmtNode() {}

func (*Name) exprNode()      {}
func (*Attribute) exprNode() {}
func (*Call) exprNode()      {}
func (*Keyword) exprNode()   {}
func (*Constant) exprNode()  {}
func (*List) exprNode()      {}
func (*Tuple) exprNode()     {}
func (*Set) exprNode()       {}
func (*Dict) exprNode()      {}
func (*Starred) exprNode()   {}
func (*Comp) exprNode()      {}
func (*BinOp) exprNode()     {}
func (*BoolOp) exprNode()    {}
func (*UnaryOp) exprNode()   {}
func (*Compare) exprNode()   {}
func (*Subscript) exprNode() {}
