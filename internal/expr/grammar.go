package expr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar follows the usual precedence, from lowest to highest:
//
//	+ -          left associative
//	* / %        left associative
//	unary + -
//	^            right associative, binds tighter than unary minus
//
// so -2^2 is -4 and 2^3^2 is 512.

//nolint:govet // participle grammar tags are not standard struct tags
type expression struct {
	Left  *term     `parser:"@@"`
	Right []*opTerm `parser:"@@*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type opTerm struct {
	Op   string `parser:"@(\"+\" | \"-\")"`
	Term *term  `parser:"@@"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type term struct {
	Left  *unary     `parser:"@@"`
	Right []*opUnary `parser:"@@*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type opUnary struct {
	Op    string `parser:"@(\"*\" | \"/\" | \"%\")"`
	Unary *unary `parser:"@@"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type unary struct {
	Op    string `parser:"  ( @(\"-\" | \"+\")"`
	Unary *unary `parser:"    @@ )"`
	Power *power `parser:"| @@"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type power struct {
	Base *primary `parser:"@@"`
	Exp  *unary   `parser:"( \"^\" @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type primary struct {
	Number *string     `parser:"  @Number"`
	Call   *call       `parser:"| @@"`
	Var    *string     `parser:"| @Ident"`
	Sub    *expression `parser:"| \"(\" @@ \")\""`
}

//nolint:govet // participle grammar tags are not standard struct tags
type call struct {
	Name string        `parser:"@Ident \"(\""`
	Args []*expression `parser:"( @@ ( \",\" @@ )* )? \")\""`
}

// exprLexer defines the lexer for arithmetic expressions.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[-+*/%^(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// exprParser is the participle parser for arithmetic expressions.
var exprParser = participle.MustBuild[expression](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
