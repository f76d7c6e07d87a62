// Package directive parses the //quote:derive comments that mark struct
// declarations for derivation.
//
// A directive is a line comment in the doc comment of a type declaration:
//
//	//quote:derive
//	//quote:derive mod_path="example.com/geo"
//	//quote:derive(mod_path = "test")
//
// Options are key="value" pairs, optionally enclosed in parentheses and
// separated by commas or spaces.
package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/mod/module"

	"quote-generator/internal/common"
)

// Prefix starts every derive directive.
const Prefix = "//quote:derive"

// OptModPath names the option carrying the qualifying path.
const OptModPath = "mod_path"

// ErrInvalid is wrapped by every error returned for a malformed directive.
var ErrInvalid = errors.New("invalid directive")

// Directive is a parsed //quote:derive comment.
type Directive struct {
	// ModPath is the import path whose last element qualifies emitted
	// constructor calls. Empty means unqualified.
	ModPath string
	// Pos is the position of the comment.
	Pos token.Pos
}

// Is reports whether comment is a derive directive, ignoring options.
func Is(comment string) bool {
	rest, ok := strings.CutPrefix(comment, Prefix)
	if !ok {
		return false
	}

	return rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '('
}

// Find returns the derive directive in doc, or nil if there is none.
// More than one directive in the same comment group is an error.
func Find(doc *ast.CommentGroup) (*Directive, error) {
	if doc == nil {
		return nil, nil
	}

	var found *Directive
	for _, c := range doc.List {
		if !Is(c.Text) {
			continue
		}

		if found != nil {
			return nil, fmt.Errorf("%w: duplicate %s", ErrInvalid, Prefix)
		}

		d, err := Parse(c.Text)
		if err != nil {
			return nil, err
		}

		d.Pos = c.Slash
		found = d
	}

	return found, nil
}

// Parse parses a single directive comment.
func Parse(comment string) (*Directive, error) {
	if !Is(comment) {
		return nil, fmt.Errorf("%w: %q does not start with %s", ErrInvalid, comment, Prefix)
	}

	opts, err := parseOptions(strings.TrimPrefix(comment, Prefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	d := &Directive{}
	for key, value := range opts {
		switch key {
		case OptModPath:
			if err := ValidateModPath(value); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
			}

			d.ModPath = value
		default:
			return nil, fmt.Errorf("%w: unknown option %q", ErrInvalid, key)
		}
	}

	return d, nil
}

// ValidateModPath checks that p is a well-formed import path whose package
// name (its last element without a major version suffix) can be used as a
// qualifier.
func ValidateModPath(p string) error {
	if err := module.CheckImportPath(p); err != nil {
		return fmt.Errorf("%s %q: %w", OptModPath, p, err)
	}

	name := common.PkgAlias(p)
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%s %q: package name %q is not a valid identifier", OptModPath, p, name)
	}

	return nil
}

type optionScanner struct {
	s   scanner.Scanner
	err error

	pos token.Pos
	tok token.Token
	lit string
}

func (p *optionScanner) next() {
	for {
		p.pos, p.tok, p.lit = p.s.Scan()
		// Automatic semicolons carry the literal "\n".
		if p.tok != token.SEMICOLON || p.lit != "\n" {
			return
		}
	}
}

func parseOptions(src string) (map[string]string, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	p := &optionScanner{}
	p.s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("column %d: %s", pos.Column, msg)
		}
	}, 0)

	opts := make(map[string]string)

	p.next()
	parens := p.tok == token.LPAREN
	if parens {
		p.next()
	}

	for p.tok == token.IDENT {
		key := p.lit
		if _, dup := opts[key]; dup {
			return nil, fmt.Errorf("duplicate option %q", key)
		}

		p.next()
		if p.tok != token.ASSIGN {
			return nil, fmt.Errorf("expected = after %q, found %s", key, p.tok)
		}

		p.next()
		if p.tok != token.STRING {
			return nil, fmt.Errorf("expected string value for %q, found %s", key, p.tok)
		}

		value, err := strconv.Unquote(p.lit)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", key, err)
		}

		opts[key] = value

		p.next()
		if p.tok == token.COMMA {
			p.next()
		}
	}

	if parens {
		if p.tok != token.RPAREN {
			return nil, fmt.Errorf("expected ), found %s", p.tok)
		}

		p.next()
	}

	if p.tok != token.EOF {
		return nil, fmt.Errorf("unexpected %s", describe(p.tok, p.lit))
	}

	if p.err != nil {
		return nil, p.err
	}

	return opts, nil
}

func describe(tok token.Token, lit string) string {
	if lit != "" {
		return fmt.Sprintf("%s %q", tok, lit)
	}

	return tok.String()
}
