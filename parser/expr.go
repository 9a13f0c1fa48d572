// Copyright © 2026 The eolint authors

package parser

import (
	"strings"

	"github.com/eolint/eolint/parser/token"
	"github.com/eolint/eolint/pyast"
)

// parseTest parses a single expression at the lowest precedence level the
// subset supports (an `or` chain, optionally wrapped in a conditional
// expression).
func (p *parser) parseTest() (pyast.Expr, error) {
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	// Conditional expression `a if cond else b`, modeled as a three-value
	// BoolOp so all branches stay reachable for the rules.
	if p.at(token.NAME, "if") {
		t := p.cur()
		p.next()
		cond, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.NAME, "else"); err != nil {
			return nil, err
		}
		alt, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		return &pyast.BoolOp{Loc: p.loc(t), Op: "if", Values: []pyast.Expr{e, cond, alt}}, nil
	}
	return e, nil
}

func (p *parser) parseOr() (pyast.Expr, error) {
	e, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if !p.at(token.NAME, "or") {
		return e, nil
	}
	op := &pyast.BoolOp{Loc: e.Position(), Op: "or", Values: []pyast.Expr{e}}
	for p.accept(token.NAME, "or") {
		v, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		op.Values = append(op.Values, v)
	}
	return op, nil
}

func (p *parser) parseAnd() (pyast.Expr, error) {
	e, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	if !p.at(token.NAME, "and") {
		return e, nil
	}
	op := &pyast.BoolOp{Loc: e.Position(), Op: "and", Values: []pyast.Expr{e}}
	for p.accept(token.NAME, "and") {
		v, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		op.Values = append(op.Values, v)
	}
	return op, nil
}

func (p *parser) parseNot() (pyast.Expr, error) {
	if t := p.cur(); t.Type == token.NAME && t.Text == "not" {
		p.next()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &pyast.UnaryOp{Loc: p.loc(t), Op: "not", Operand: operand}, nil
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (pyast.Expr, error) {
	left, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	var ops []string
	var comparators []pyast.Expr
	for {
		op, ok := p.comparisonOp()
		if !ok {
			break
		}
		right, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		comparators = append(comparators, right)
	}
	if len(ops) == 0 {
		return left, nil
	}
	return &pyast.Compare{Loc: left.Position(), Left: left, Ops: ops, Comparators: comparators}, nil
}

// comparisonOp consumes a comparison operator when present, folding the
// two-word forms `is not` and `not in`.
func (p *parser) comparisonOp() (string, bool) {
	t := p.cur()
	if t.Type == token.OP {
		switch t.Text {
		case "==", "!=", "<", ">", "<=", ">=":
			p.next()
			return t.Text, true
		}
		return "", false
	}
	if t.Type != token.NAME {
		return "", false
	}
	switch t.Text {
	case "is":
		p.next()
		if p.accept(token.NAME, "not") {
			return "is not", true
		}
		return "is", true
	case "in":
		if p.noIn {
			return "", false
		}
		p.next()
		return "in", true
	case "not":
		if !p.noIn && p.peek().Type == token.NAME && p.peek().Text == "in" {
			p.next()
			p.next()
			return "not in", true
		}
	}
	return "", false
}

func (p *parser) parseArith() (pyast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		if t.Type != token.OP || (t.Text != "+" && t.Text != "-" && t.Text != "|" && t.Text != "&" && t.Text != "^") {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &pyast.BinOp{Loc: left.Position(), Left: left, Op: t.Text, Right: right}
	}
}

func (p *parser) parseTerm() (pyast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		if t.Type != token.OP {
			return left, nil
		}
		switch t.Text {
		case "*", "/", "//", "%", "@", "<<", ">>":
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &pyast.BinOp{Loc: left.Position(), Left: left, Op: t.Text, Right: right}
	}
}

func (p *parser) parseUnary() (pyast.Expr, error) {
	if t := p.cur(); t.Type == token.OP && (t.Text == "-" || t.Text == "+" || t.Text == "~") {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &pyast.UnaryOp{Loc: p.loc(t), Op: t.Text, Operand: operand}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (pyast.Expr, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.at(token.OP, "**") {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &pyast.BinOp{Loc: base.Position(), Left: base, Op: "**", Right: exp}, nil
	}
	return base, nil
}

// parsePostfix parses an atom followed by any run of call, attribute and
// subscript trailers.
func (p *parser) parsePostfix() (pyast.Expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(token.OP, "("):
			call := &pyast.Call{Loc: e.Position(), Func: e}
			p.next()
			if err := p.parseCallArgs(call); err != nil {
				return nil, err
			}
			e = call
		case p.at(token.OP, "."):
			p.next()
			attr, err := p.expect(token.NAME, "")
			if err != nil {
				return nil, err
			}
			e = &pyast.Attribute{Loc: e.Position(), Value: e, Attr: attr.Text}
		case p.at(token.OP, "["):
			p.next()
			idx, err := p.parseSubscriptIndex()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.OP, "]"); err != nil {
				return nil, err
			}
			e = &pyast.Subscript{Loc: e.Position(), Value: e, Index: idx}
		default:
			return e, nil
		}
	}
}

func (p *parser) parseCallArgs(call *pyast.Call) error {
	for !p.at(token.OP, ")") {
		t := p.cur()
		switch {
		case p.accept(token.OP, "**"):
			v, err := p.parseTest()
			if err != nil {
				return err
			}
			call.Keywords = append(call.Keywords, &pyast.Keyword{Loc: p.loc(t), Value: v})
		case p.accept(token.OP, "*"):
			v, err := p.parseTest()
			if err != nil {
				return err
			}
			call.Args = append(call.Args, &pyast.Starred{Loc: p.loc(t), Value: v})
		case t.Type == token.NAME && !token.IsKeyword(t.Text) &&
			p.peek().Type == token.OP && p.peek().Text == "=":
			p.next()
			p.next() // =
			v, err := p.parseTest()
			if err != nil {
				return err
			}
			call.Keywords = append(call.Keywords, &pyast.Keyword{Loc: p.loc(t), Arg: t.Text, Value: v})
		default:
			v, err := p.parseTest()
			if err != nil {
				return err
			}
			if p.at(token.NAME, "for") {
				// Bare generator argument: any(x > 0 for x in xs).
				clauses, err := p.parseCompClauses()
				if err != nil {
					return err
				}
				v = &pyast.Comp{Loc: v.Position(), Kind: pyast.CompGen, Elt: v, Clauses: clauses}
			}
			call.Args = append(call.Args, v)
		}
		if !p.accept(token.OP, ",") {
			break
		}
	}
	_, err := p.expect(token.OP, ")")
	return err
}

// parseSubscriptIndex parses a subscript expression, tolerating simple
// slices by folding them into a Tuple of their present parts.
func (p *parser) parseSubscriptIndex() (pyast.Expr, error) {
	t := p.cur()
	var parts []pyast.Expr
	sliced := false
	for {
		if p.at(token.OP, ":") {
			sliced = true
			p.next()
			if p.at(token.OP, "]") {
				break
			}
			continue
		}
		if p.at(token.OP, "]") {
			break
		}
		e, err := p.parseTestlist()
		if err != nil {
			return nil, err
		}
		parts = append(parts, e)
		if !p.at(token.OP, ":") {
			break
		}
	}
	if !sliced && len(parts) == 1 {
		return parts[0], nil
	}
	return &pyast.Tuple{Loc: p.loc(t), Elts: parts}, nil
}

func (p *parser) parseAtom() (pyast.Expr, error) {
	t := p.cur()
	switch t.Type {
	case token.NAME:
		switch t.Text {
		case "None":
			p.next()
			return &pyast.Constant{Loc: p.loc(t), Kind: pyast.ConstNone, Text: "None"}, nil
		case "True":
			p.next()
			return &pyast.Constant{Loc: p.loc(t), Kind: pyast.ConstTrue, Text: "True"}, nil
		case "False":
			p.next()
			return &pyast.Constant{Loc: p.loc(t), Kind: pyast.ConstFalse, Text: "False"}, nil
		case "lambda":
			return p.parseLambda()
		}
		if token.IsKeyword(t.Text) {
			return nil, p.errorf("unexpected keyword %q", t.Text)
		}
		p.next()
		return &pyast.Name{Loc: p.loc(t), Id: t.Text}, nil
	case token.NUMBER:
		p.next()
		kind := pyast.ConstInt
		if strings.ContainsAny(t.Text, ".eE") && !strings.HasPrefix(t.Text, "0x") && !strings.HasPrefix(t.Text, "0X") {
			kind = pyast.ConstFloat
		}
		return &pyast.Constant{Loc: p.loc(t), Kind: kind, Text: t.Text}, nil
	case token.STRING:
		p.next()
		text := t.Text
		// Adjacent string literals concatenate.
		for p.at(token.STRING, "") {
			text += p.next().Text
		}
		return &pyast.Constant{Loc: p.loc(t), Kind: pyast.ConstStr, Text: text}, nil
	case token.OP:
		switch t.Text {
		case "(":
			p.next()
			if p.accept(token.OP, ")") {
				return &pyast.Tuple{Loc: p.loc(t)}, nil
			}
			e, err := p.parseTargetList()
			if err != nil {
				return nil, err
			}
			if p.at(token.NAME, "for") {
				clauses, err := p.parseCompClauses()
				if err != nil {
					return nil, err
				}
				e = &pyast.Comp{Loc: p.loc(t), Kind: pyast.CompGen, Elt: e, Clauses: clauses}
			}
			if _, err := p.expect(token.OP, ")"); err != nil {
				return nil, err
			}
			return e, nil
		case "[":
			p.next()
			lst := &pyast.List{Loc: p.loc(t)}
			for !p.at(token.OP, "]") {
				e, err := p.parseStarredOrTest()
				if err != nil {
					return nil, err
				}
				if len(lst.Elts) == 0 && p.at(token.NAME, "for") {
					clauses, err := p.parseCompClauses()
					if err != nil {
						return nil, err
					}
					if _, err := p.expect(token.OP, "]"); err != nil {
						return nil, err
					}
					return &pyast.Comp{Loc: p.loc(t), Kind: pyast.CompList, Elt: e, Clauses: clauses}, nil
				}
				lst.Elts = append(lst.Elts, e)
				if !p.accept(token.OP, ",") {
					break
				}
			}
			if _, err := p.expect(token.OP, "]"); err != nil {
				return nil, err
			}
			return lst, nil
		case "{":
			return p.parseBraced()
		}
	}
	return nil, p.errorf("unexpected token %q", t.Text)
}

// parseBraced parses a dict or set display.
func (p *parser) parseBraced() (pyast.Expr, error) {
	t := p.next() // {
	if p.accept(token.OP, "}") {
		return &pyast.Dict{Loc: p.loc(t)}, nil
	}
	first, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if p.at(token.NAME, "for") {
		clauses, err := p.parseCompClauses()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.OP, "}"); err != nil {
			return nil, err
		}
		return &pyast.Comp{Loc: p.loc(t), Kind: pyast.CompSet, Elt: first, Clauses: clauses}, nil
	}
	if p.accept(token.OP, ":") {
		d := &pyast.Dict{Loc: p.loc(t)}
		v, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if p.at(token.NAME, "for") {
			clauses, err := p.parseCompClauses()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.OP, "}"); err != nil {
				return nil, err
			}
			return &pyast.Comp{Loc: p.loc(t), Kind: pyast.CompDict, Elt: first, Value: v, Clauses: clauses}, nil
		}
		d.Keys = append(d.Keys, first)
		d.Values = append(d.Values, v)
		for p.accept(token.OP, ",") {
			if p.at(token.OP, "}") {
				break
			}
			k, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.OP, ":"); err != nil {
				return nil, err
			}
			v, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			d.Keys = append(d.Keys, k)
			d.Values = append(d.Values, v)
		}
		if _, err := p.expect(token.OP, "}"); err != nil {
			return nil, err
		}
		return d, nil
	}
	set := &pyast.Set{Loc: p.loc(t), Elts: []pyast.Expr{first}}
	for p.accept(token.OP, ",") {
		if p.at(token.OP, "}") {
			break
		}
		e, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		set.Elts = append(set.Elts, e)
	}
	if _, err := p.expect(token.OP, "}"); err != nil {
		return nil, err
	}
	return set, nil
}

// parseCompClauses parses one or more `for target in iter [if cond]...`
// comprehension clauses. Clause expressions are or-chains, so a trailing
// `if` starts a filter rather than a conditional expression.
func (p *parser) parseCompClauses() ([]*pyast.CompClause, error) {
	var clauses []*pyast.CompClause
	for p.at(token.NAME, "for") {
		t := p.next()
		target, err := p.parseLoopTarget()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.NAME, "in"); err != nil {
			return nil, err
		}
		iter, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		clause := &pyast.CompClause{Loc: p.loc(t), Target: target, Iter: iter}
		for p.accept(token.NAME, "if") {
			cond, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			clause.Ifs = append(clause.Ifs, cond)
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

// parseLambda parses a lambda expression; the body is kept, the formals
// are consumed without being modeled (no rule inspects them).
func (p *parser) parseLambda() (pyast.Expr, error) {
	t := p.next() // lambda
	for !p.at(token.OP, ":") && !p.at(token.NEWLINE, "") && !p.at(token.EOF, "") {
		p.next()
	}
	if _, err := p.expect(token.OP, ":"); err != nil {
		return nil, err
	}
	body, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	return &pyast.UnaryOp{Loc: p.loc(t), Op: "lambda", Operand: body}, nil
}
