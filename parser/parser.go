// Copyright © 2026 The eolint authors

// Package parser builds pyast syntax trees from Python source text. It is
// a hand-written recursive-descent parser over the token package's stream,
// covering the subset of the language the lint rules inspect: class and
// function declarations with decorators, the assignment forms, calls,
// attribute access, literals, and the common simple and compound
// statements. Constructs outside the subset are a parse error rather than
// a silent skip, so the caller can report the file instead of producing
// misleading diagnostics.
package parser

import (
	"fmt"
	"strings"

	"github.com/eolint/eolint/parser/token"
	"github.com/eolint/eolint/pyast"
)

// Parse parses source text into a module tree.
func Parse(src []byte) (*pyast.Module, error) {
	return ParseFile("", src)
}

// ParseFile parses source text, using filename in error messages.
func ParseFile(filename string, src []byte) (*pyast.Module, error) {
	if filename == "" {
		filename = "<source>"
	}
	toks, err := token.NewScanner(filename, src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{file: filename, toks: toks}
	return p.parseModule()
}

type parser struct {
	file string
	toks []*token.Token
	pos  int

	// noIn suppresses `in` as a comparison operator while a for-loop or
	// comprehension target is being parsed, so the target ends where the
	// loop's own `in` begins.
	noIn bool
}

func (p *parser) cur() *token.Token  { return p.toks[p.pos] }
func (p *parser) peek() *token.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) next() *token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) at(typ token.Type, text string) bool {
	t := p.cur()
	return t.Type == typ && (text == "" || t.Text == text)
}

// accept consumes the current token when it matches and reports whether it
// did.
func (p *parser) accept(typ token.Type, text string) bool {
	if p.at(typ, text) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(typ token.Type, text string) (*token.Token, error) {
	if !p.at(typ, text) {
		want := text
		if want == "" {
			want = typ.String()
		}
		return nil, p.errorf("expected %q, found %q", want, p.cur().Text)
	}
	return p.next(), nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s:%d: %s", p.file, p.cur().Line, fmt.Sprintf(format, args...))
}

func (p *parser) loc(t *token.Token) pyast.Loc { return pyast.Loc{Line: t.Line, Col: t.Col} }

func (p *parser) parseModule() (*pyast.Module, error) {
	mod := &pyast.Module{Loc: pyast.Loc{Line: 1, Col: 0}}
	for !p.at(token.EOF, "") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		mod.Body = append(mod.Body, stmt...)
	}
	return mod, nil
}

// parseStatement parses one statement, which may be a compound statement
// or a semicolon-joined run of simple statements.
func (p *parser) parseStatement() ([]pyast.Stmt, error) {
	t := p.cur()
	if t.Type == token.OP && t.Text == "@" {
		s, err := p.parseDecorated()
		if err != nil {
			return nil, err
		}
		return []pyast.Stmt{s}, nil
	}
	if t.Type == token.NAME {
		switch t.Text {
		case "class":
			s, err := p.parseClassDef(nil)
			if err != nil {
				return nil, err
			}
			return []pyast.Stmt{s}, nil
		case "def":
			s, err := p.parseFuncDef(nil)
			if err != nil {
				return nil, err
			}
			return []pyast.Stmt{s}, nil
		case "if":
			s, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			return []pyast.Stmt{s}, nil
		case "while":
			s, err := p.parseWhile()
			if err != nil {
				return nil, err
			}
			return []pyast.Stmt{s}, nil
		case "for":
			s, err := p.parseFor()
			if err != nil {
				return nil, err
			}
			return []pyast.Stmt{s}, nil
		case "with":
			s, err := p.parseWith()
			if err != nil {
				return nil, err
			}
			return []pyast.Stmt{s}, nil
		case "try":
			s, err := p.parseTry()
			if err != nil {
				return nil, err
			}
			return []pyast.Stmt{s}, nil
		}
	}
	return p.parseSimpleLine()
}

// parseSimpleLine parses simple statements separated by semicolons and
// terminated by NEWLINE.
func (p *parser) parseSimpleLine() ([]pyast.Stmt, error) {
	var stmts []pyast.Stmt
	for {
		s, err := p.parseSimpleStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if !p.accept(token.OP, ";") {
			break
		}
		if p.at(token.NEWLINE, "") {
			break
		}
	}
	if _, err := p.expect(token.NEWLINE, ""); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *parser) parseSimpleStmt() (pyast.Stmt, error) {
	t := p.cur()
	if t.Type == token.NAME {
		switch t.Text {
		case "pass":
			p.next()
			return &pyast.Pass{Loc: p.loc(t)}, nil
		case "return":
			p.next()
			ret := &pyast.Return{Loc: p.loc(t)}
			if !p.at(token.NEWLINE, "") && !p.at(token.OP, ";") {
				v, err := p.parseTestlist()
				if err != nil {
					return nil, err
				}
				ret.Value = v
			}
			return ret, nil
		case "assert":
			p.next()
			test, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			a := &pyast.Assert{Loc: p.loc(t), Test: test}
			if p.accept(token.OP, ",") {
				msg, err := p.parseTest()
				if err != nil {
					return nil, err
				}
				a.Msg = msg
			}
			return a, nil
		case "raise":
			p.next()
			r := &pyast.Raise{Loc: p.loc(t)}
			if !p.at(token.NEWLINE, "") && !p.at(token.OP, ";") {
				exc, err := p.parseTest()
				if err != nil {
					return nil, err
				}
				r.Exc = exc
				if p.accept(token.NAME, "from") {
					from, err := p.parseTest()
					if err != nil {
						return nil, err
					}
					r.From = from
				}
			}
			return r, nil
		case "import":
			return p.parseImport()
		case "from":
			return p.parseFromImport()
		case "break", "continue", "del", "global", "nonlocal":
			// Parsed as opaque no-ops beyond their own line; the rules do
			// not inspect them.
			p.next()
			for !p.at(token.NEWLINE, "") && !p.at(token.OP, ";") && !p.at(token.EOF, "") {
				p.next()
			}
			return &pyast.Pass{Loc: p.loc(t)}, nil
		}
	}
	return p.parseExprStmt()
}

func (p *parser) parseImport() (pyast.Stmt, error) {
	t := p.next() // import
	imp := &pyast.Import{Loc: p.loc(t)}
	for {
		name, err := p.parseDottedName()
		if err != nil {
			return nil, err
		}
		alias := &pyast.Alias{Name: name}
		if p.accept(token.NAME, "as") {
			as, err := p.expect(token.NAME, "")
			if err != nil {
				return nil, err
			}
			alias.AsName = as.Text
		}
		imp.Names = append(imp.Names, alias)
		if !p.accept(token.OP, ",") {
			break
		}
	}
	return imp, nil
}

func (p *parser) parseFromImport() (pyast.Stmt, error) {
	t := p.next() // from
	mod, err := p.parseDottedName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NAME, "import"); err != nil {
		return nil, err
	}
	fi := &pyast.FromImport{Loc: p.loc(t), Module: mod}
	if p.accept(token.OP, "*") {
		fi.Names = append(fi.Names, &pyast.Alias{Name: "*"})
		return fi, nil
	}
	paren := p.accept(token.OP, "(")
	for {
		name, err := p.expect(token.NAME, "")
		if err != nil {
			return nil, err
		}
		alias := &pyast.Alias{Name: name.Text}
		if p.accept(token.NAME, "as") {
			as, err := p.expect(token.NAME, "")
			if err != nil {
				return nil, err
			}
			alias.AsName = as.Text
		}
		fi.Names = append(fi.Names, alias)
		if !p.accept(token.OP, ",") {
			break
		}
	}
	if paren {
		if _, err := p.expect(token.OP, ")"); err != nil {
			return nil, err
		}
	}
	return fi, nil
}

func (p *parser) parseDottedName() (string, error) {
	first, err := p.expect(token.NAME, "")
	if err != nil {
		return "", err
	}
	parts := []string{first.Text}
	for p.accept(token.OP, ".") {
		next, err := p.expect(token.NAME, "")
		if err != nil {
			return "", err
		}
		parts = append(parts, next.Text)
	}
	return strings.Join(parts, "."), nil
}

// parseExprStmt parses an expression statement or one of the assignment
// forms, distinguished by the token that follows the first expression
// list.
func (p *parser) parseExprStmt() (pyast.Stmt, error) {
	t := p.cur()
	first, err := p.parseTargetList()
	if err != nil {
		return nil, err
	}

	// Annotated assignment: target ':' annotation ['=' value]
	if p.at(token.OP, ":") && !p.at(token.OP, ":=") {
		p.next()
		ann, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		aa := &pyast.AnnAssign{Loc: p.loc(t), Target: first, Annotation: ann}
		if p.accept(token.OP, "=") {
			v, err := p.parseTestlist()
			if err != nil {
				return nil, err
			}
			aa.Value = v
		}
		return aa, nil
	}

	// Augmented assignment: target op= value
	if cur := p.cur(); cur.Type == token.OP && len(cur.Text) >= 2 &&
		strings.HasSuffix(cur.Text, "=") && cur.Text != "==" && cur.Text != "!=" &&
		cur.Text != "<=" && cur.Text != ">=" && cur.Text != ":=" {
		op := p.next().Text
		v, err := p.parseTestlist()
		if err != nil {
			return nil, err
		}
		return &pyast.AugAssign{Loc: p.loc(t), Target: first, Op: strings.TrimSuffix(op, "="), Value: v}, nil
	}

	// Plain or chained assignment.
	if p.at(token.OP, "=") {
		targets := []pyast.Expr{first}
		var value pyast.Expr
		for p.accept(token.OP, "=") {
			v, err := p.parseTargetList()
			if err != nil {
				return nil, err
			}
			if p.at(token.OP, "=") {
				targets = append(targets, v)
				continue
			}
			value = v
		}
		return &pyast.Assign{Loc: p.loc(t), Targets: targets, Value: value}, nil
	}

	return &pyast.ExprStmt{Loc: p.loc(t), X: first}, nil
}

// parseTargetList parses an expression list that may appear on either side
// of an assignment, including starred elements and bare tuples.
func (p *parser) parseTargetList() (pyast.Expr, error) {
	first, err := p.parseStarredOrTest()
	if err != nil {
		return nil, err
	}
	if !p.at(token.OP, ",") {
		return first, nil
	}
	elts := []pyast.Expr{first}
	for p.accept(token.OP, ",") {
		if p.at(token.NEWLINE, "") || p.at(token.OP, "=") || p.at(token.OP, ")") ||
			p.at(token.OP, "]") || p.at(token.OP, ";") || p.at(token.EOF, "") {
			break // trailing comma
		}
		e, err := p.parseStarredOrTest()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	return &pyast.Tuple{Loc: first.Position(), Elts: elts}, nil
}

func (p *parser) parseStarredOrTest() (pyast.Expr, error) {
	if t := p.cur(); t.Type == token.OP && t.Text == "*" {
		p.next()
		v, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		return &pyast.Starred{Loc: p.loc(t), Value: v}, nil
	}
	return p.parseTest()
}

// parseTestlist parses `test {',' test}` producing a Tuple for more than
// one element.
func (p *parser) parseTestlist() (pyast.Expr, error) {
	return p.parseTargetList()
}

func (p *parser) parseDecorated() (pyast.Stmt, error) {
	var decorators []pyast.Expr
	for p.at(token.OP, "@") {
		p.next()
		d, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, d)
		if _, err := p.expect(token.NEWLINE, ""); err != nil {
			return nil, err
		}
	}
	switch {
	case p.at(token.NAME, "class"):
		return p.parseClassDef(decorators)
	case p.at(token.NAME, "def"):
		return p.parseFuncDef(decorators)
	}
	return nil, p.errorf("expected class or def after decorators")
}

func (p *parser) parseClassDef(decorators []pyast.Expr) (pyast.Stmt, error) {
	t := p.next() // class
	name, err := p.expect(token.NAME, "")
	if err != nil {
		return nil, err
	}
	cls := &pyast.ClassDef{Loc: p.loc(t), Name: name.Text, Decorators: decorators}
	if p.accept(token.OP, "(") {
		for !p.at(token.OP, ")") {
			if p.at(token.NAME, "") && p.peek().Type == token.OP && p.peek().Text == "=" {
				kwTok := p.next()
				p.next() // =
				v, err := p.parseTest()
				if err != nil {
					return nil, err
				}
				cls.Keywords = append(cls.Keywords, &pyast.Keyword{Loc: p.loc(kwTok), Arg: kwTok.Text, Value: v})
			} else {
				base, err := p.parseTest()
				if err != nil {
					return nil, err
				}
				cls.Bases = append(cls.Bases, base)
			}
			if !p.accept(token.OP, ",") {
				break
			}
		}
		if _, err := p.expect(token.OP, ")"); err != nil {
			return nil, err
		}
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	cls.Body = body
	return cls, nil
}

func (p *parser) parseFuncDef(decorators []pyast.Expr) (pyast.Stmt, error) {
	t := p.next() // def
	name, err := p.expect(token.NAME, "")
	if err != nil {
		return nil, err
	}
	fn := &pyast.FuncDef{Loc: p.loc(t), Name: name.Text, Decorators: decorators}
	if _, err := p.expect(token.OP, "("); err != nil {
		return nil, err
	}
	for !p.at(token.OP, ")") {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, param)
		if !p.accept(token.OP, ",") {
			break
		}
	}
	if _, err := p.expect(token.OP, ")"); err != nil {
		return nil, err
	}
	if p.accept(token.OP, "->") {
		ret, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		fn.Returns = ret
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

func (p *parser) parseParam() (*pyast.Param, error) {
	star := ""
	if p.accept(token.OP, "**") {
		star = "**"
	} else if p.accept(token.OP, "*") {
		star = "*"
		if p.at(token.OP, ",") || p.at(token.OP, ")") {
			// bare * keyword-only marker
			return &pyast.Param{Loc: p.loc(p.cur()), Star: "*"}, nil
		}
	}
	name, err := p.expect(token.NAME, "")
	if err != nil {
		return nil, err
	}
	param := &pyast.Param{Loc: p.loc(name), Name: name.Text, Star: star}
	if p.accept(token.OP, ":") {
		ann, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		param.Annotation = ann
	}
	if p.accept(token.OP, "=") {
		def, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		param.Default = def
	}
	return param, nil
}

func (p *parser) parseIf() (pyast.Stmt, error) {
	t := p.next() // if or elif
	cond, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	stmt := &pyast.If{Loc: p.loc(t), Cond: cond, Body: body}
	if p.at(token.NAME, "elif") {
		nested, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		stmt.Else = []pyast.Stmt{nested}
	} else if p.accept(token.NAME, "else") {
		els, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
	}
	return stmt, nil
}

func (p *parser) parseWhile() (pyast.Stmt, error) {
	t := p.next() // while
	cond, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return &pyast.While{Loc: p.loc(t), Cond: cond, Body: body}, nil
}

func (p *parser) parseFor() (pyast.Stmt, error) {
	t := p.next() // for
	target, err := p.parseLoopTarget()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NAME, "in"); err != nil {
		return nil, err
	}
	iter, err := p.parseTestlist()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return &pyast.For{Loc: p.loc(t), Target: target, Iter: iter, Body: body}, nil
}

// parseLoopTarget parses a for-loop target list with `in` suppressed as a
// comparison operator, so `for item in items` does not swallow the `in`.
func (p *parser) parseLoopTarget() (pyast.Expr, error) {
	saved := p.noIn
	p.noIn = true
	target, err := p.parseTargetList()
	p.noIn = saved
	return target, err
}

func (p *parser) parseWith() (pyast.Stmt, error) {
	t := p.next() // with
	w := &pyast.With{Loc: p.loc(t)}
	for {
		itemTok := p.cur()
		ctxExpr, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		item := &pyast.WithItem{Loc: p.loc(itemTok), Context: ctxExpr}
		if p.accept(token.NAME, "as") {
			vars, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			item.Vars = vars
		}
		w.Items = append(w.Items, item)
		if !p.accept(token.OP, ",") {
			break
		}
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	w.Body = body
	return w, nil
}

func (p *parser) parseTry() (pyast.Stmt, error) {
	t := p.next() // try
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	tr := &pyast.Try{Loc: p.loc(t), Body: body}
	for p.at(token.NAME, "except") {
		et := p.next()
		h := &pyast.ExceptHandler{Loc: p.loc(et)}
		if !p.at(token.OP, ":") {
			typ, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			h.Type = typ
			if p.accept(token.NAME, "as") {
				name, err := p.expect(token.NAME, "")
				if err != nil {
					return nil, err
				}
				h.Name = name.Text
			}
		}
		h.Body, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
		tr.Handlers = append(tr.Handlers, h)
	}
	if len(tr.Handlers) > 0 && p.accept(token.NAME, "else") {
		tr.Else, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	if p.accept(token.NAME, "finally") {
		tr.Final, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	if len(tr.Handlers) == 0 && tr.Final == nil {
		return nil, p.errorf("expected except or finally after try block")
	}
	return tr, nil
}

// parseSuite parses `':' (simple-line | NEWLINE INDENT stmt+ DEDENT)`.
func (p *parser) parseSuite() ([]pyast.Stmt, error) {
	if _, err := p.expect(token.OP, ":"); err != nil {
		return nil, err
	}
	if !p.accept(token.NEWLINE, "") {
		return p.parseSimpleLine()
	}
	if _, err := p.expect(token.INDENT, ""); err != nil {
		return nil, err
	}
	var body []pyast.Stmt
	for !p.at(token.DEDENT, "") && !p.at(token.EOF, "") {
		stmts, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmts...)
	}
	p.accept(token.DEDENT, "")
	return body, nil
}
