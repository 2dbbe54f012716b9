// Package ast defines the immutable, location-bearing tree produced by the
// parser. Every node carries the byte offset of its defining token; the
// analyzer is responsible for turning an offset into a (line, column) pair
// when it needs to report a diagnostic.
package ast

import "github.com/uguisu-dev/uguisu/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() int
}

// Statement is a Node that appears in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears in an expression position.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parsed source file.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() int {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return 0
}

// TypeName is a reference to a type by name in source (e.g. the `number` in
// `fn f(x: number): bool`). The analyzer resolves it to a typesystem type.
type TypeName struct {
	Token token.Token
	Name  string
}

func (t *TypeName) Pos() int { return t.Token.Offset }

// ---- Statements ----

// FuncParam is one parameter in a function declaration's parameter list.
type FuncParam struct {
	Token token.Token
	Name  string
	Type  *TypeName // nil means "missing annotation" (a SyntaxError).
}

func (p *FuncParam) Pos() int { return p.Token.Offset }

// FunctionDecl declares a named function, optionally with a body. A
// function declared without a body (`fn f(): number;`) parses successfully
// but is rejected by the analyzer ("function declaration cannot be
// undefined.").
type FunctionDecl struct {
	Token      token.Token
	Name       string
	Params     []*FuncParam
	ReturnType *TypeName // nil means "no annotation" (defaults to Void).
	Body       []Statement
	HasBody    bool
}

func (f *FunctionDecl) Pos() int { return f.Token.Offset }
func (f *FunctionDecl) statementNode() {}

// VarDecl declares a variable, optionally with a type annotation and/or an
// initializer. `const`/`let` parse into the same node but are rejected by
// the analyzer in favor of `var`.
type VarDecl struct {
	Token      token.Token
	Keyword    string // "var", "const", or "let"
	Name       string
	Type       *TypeName // nil means "no annotation".
	Value      Expression // nil means "no initializer".
}

func (v *VarDecl) Pos() int { return v.Token.Offset }
func (v *VarDecl) statementNode() {}

// BreakStatement is a `break;`.
type BreakStatement struct {
	Token token.Token
}

func (b *BreakStatement) Pos() int { return b.Token.Offset }
func (b *BreakStatement) statementNode() {}

// ReturnStatement is a `return;` or `return expr;`.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil means bare `return;`.
}

func (r *ReturnStatement) Pos() int { return r.Token.Offset }
func (r *ReturnStatement) statementNode() {}

// AssignMode is the operator used by an AssignStatement.
type AssignMode string

const (
	Assign      AssignMode = "="
	AddAssign   AssignMode = "+="
	SubAssign   AssignMode = "-="
	MulAssign   AssignMode = "*="
	DivAssign   AssignMode = "/="
	ModAssign   AssignMode = "%="
)

// AssignStatement is `name op= expr;`.
type AssignStatement struct {
	Token  token.Token
	Target *Identifier
	Mode   AssignMode
	Value  Expression
}

func (a *AssignStatement) Pos() int { return a.Token.Offset }
func (a *AssignStatement) statementNode() {}

// IfStatement is `if cond { then } [else { elseBlock }]`. `if/else if/else`
// chains are parsed here as nested IfStatements: the parser desugars
// `else if` right-associatively, so the analyzer (and interpreter) only
// ever see a two-arm shape.
type IfStatement struct {
	Token     token.Token
	Condition Expression
	Then      []Statement
	Else      []Statement // may contain a single *IfStatement wrapped in ExpressionStatement-free form, or any statement list.
}

func (i *IfStatement) Pos() int { return i.Token.Offset }
func (i *IfStatement) statementNode() {}

// LoopStatement is `loop { body }`.
type LoopStatement struct {
	Token token.Token
	Body  []Statement
}

func (l *LoopStatement) Pos() int { return l.Token.Offset }
func (l *LoopStatement) statementNode() {}

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) Pos() int { return e.Token.Offset }
func (e *ExpressionStatement) statementNode() {}

// ---- Expressions ----

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) Pos() int { return i.Token.Offset }
func (i *Identifier) expressionNode() {}

// NumberLiteral is a signed 64-bit integer literal.
type NumberLiteral struct {
	Token token.Token
	Value int64
}

func (n *NumberLiteral) Pos() int { return n.Token.Offset }
func (n *NumberLiteral) expressionNode() {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (b *BoolLiteral) Pos() int { return b.Token.Offset }
func (b *BoolLiteral) expressionNode() {}

// UnaryExpr is a prefix operator applied to one operand, e.g. `!b`.
type UnaryExpr struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (u *UnaryExpr) Pos() int { return u.Token.Offset }
func (u *UnaryExpr) expressionNode() {}

// BinaryExpr is an infix operator applied to two operands. The analyzer
// classifies Operator into arithmetic/relational/logical at lowering time;
// the AST itself does not distinguish them.
type BinaryExpr struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpr) Pos() int { return b.Token.Offset }
func (b *BinaryExpr) expressionNode() {}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Token    token.Token // the '(' token
	Callee   Expression
	Args     []Expression
}

func (c *CallExpr) Pos() int { return c.Token.Offset }
func (c *CallExpr) expressionNode() {}
