package lp

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shaowei-cai-group/Local-MIP/model"
)

var posInf = math.Inf(1)
var negInf = math.Inf(-1)

var sectionKeywords = map[string]bool{
	"SUBJECT": true, "SUCH": true, "ST": true, "S.T.": true, "S.T": true,
	"CONSTRAINTS": true, "CONSTRAINT": true,
	"BOUNDS": true, "BOUND": true,
	"BINARIES": true, "BINARY": true, "BIN": true,
	"GENERAL": true, "GENERALS": true, "INTEGER": true, "INTEGERS": true, "INT": true,
	"END": true,
}

func isSectionKeyword(u string) bool { return sectionKeywords[u] }

func isConstraintsKeyword(u string) bool {
	switch u {
	case "SUBJECT", "SUCH", "ST", "S.T.", "S.T", "CONSTRAINTS", "CONSTRAINT":
		return true
	default:
		return false
	}
}

func isBoundsKeyword(u string) bool { return u == "BOUNDS" || u == "BOUND" }

func isIntegersKeyword(u string) bool {
	switch u {
	case "GENERAL", "GENERALS", "INTEGER", "INTEGERS", "INT":
		return true
	default:
		return false
	}
}

func isBinaryKeyword(u string) bool {
	return u == "BINARY" || u == "BINARIES" || u == "BIN"
}

// lpTerm is a name/coefficient pair collected by parseLinearExpression
// before the variable it names has necessarily been created.
type lpTerm struct {
	name  string
	coeff float64
}

// Parse reads an LP file from r into a fresh *model.Store. zeroTol is the
// coefficient-is-zero threshold; terms below it are silently dropped.
func Parse(r io.Reader, zeroTol float64) (*model.Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lp: reading input: %w", err)
	}
	cleaned := preprocessContent(string(raw))

	store := model.NewStore()
	p := &parser{store: store, zeroTol: zeroTol, tz: newTokenizer(cleaned)}

	if err := p.parseObjective(); err != nil {
		return nil, err
	}
	for {
		tok, err := p.tz.peek()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEnd {
			break
		}
		if tok.kind == tokSemicolon {
			p.tz.next()
			continue
		}
		if tok.kind != tokIdentifier {
			return nil, malformed("unexpected token outside of sections")
		}
		u := upper(tok.text)
		switch {
		case isConstraintsKeyword(u):
			if err := p.parseConstraints(); err != nil {
				return nil, err
			}
		case isBoundsKeyword(u):
			if err := p.parseBounds(); err != nil {
				return nil, err
			}
		case isIntegersKeyword(u):
			if err := p.parseIntegers(); err != nil {
				return nil, err
			}
		case isBinaryKeyword(u):
			if err := p.parseBinaries(); err != nil {
				return nil, err
			}
		case u == "END":
			p.tz.next()
			return store, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, tok.text)
		}
	}
	return store, nil
}

// preprocessContent strips block comments (/* ... */, possibly spanning
// lines), line comments (// to end of line), and lines whose first
// non-space character is a backslash, the same three rules the reference
// LP grammar applies before tokenizing.
func preprocessContent(raw string) string {
	var out strings.Builder
	inBlock := false

	for _, line := range strings.Split(raw, "\n") {
		var kept strings.Builder
		for i := 0; i < len(line); i++ {
			if inBlock {
				if i+1 < len(line) && line[i] == '*' && line[i+1] == '/' {
					inBlock = false
					i++
				}
				continue
			}
			if i+1 < len(line) && line[i] == '/' && line[i+1] == '*' {
				inBlock = true
				i++
				continue
			}
			if i+1 < len(line) && line[i] == '/' && line[i+1] == '/' {
				break
			}
			kept.WriteByte(line[i])
		}

		text := kept.String()
		trimmed := strings.TrimLeft(text, " \t")
		if strings.HasPrefix(trimmed, "\\") {
			continue
		}
		out.WriteString(text)
		out.WriteByte('\n')
	}
	return out.String()
}

type parser struct {
	store          *model.Store
	zeroTol        float64
	tz             *tokenizer
	objName        string
	autoConCounter int
}

func (p *parser) generateConstraintName() string {
	name := fmt.Sprintf("lp_auto_con_%d", p.autoConCounter)
	p.autoConCounter++
	return name
}

func stopAtSectionKeyword(tok token) bool {
	return tok.kind == tokIdentifier && isSectionKeyword(upper(tok.text))
}

func stopAtRelation(tok token) bool {
	return tok.kind == tokLE || tok.kind == tokGE || tok.kind == tokEQ
}

func (p *parser) parseLinearExpression(stop func(token) bool) ([]lpTerm, float64, error) {
	var terms []lpTerm
	constant := 0.0
	pendingSign := 1.0

	for {
		tok, err := p.tz.peek()
		if err != nil {
			return nil, 0, err
		}
		if tok.kind == tokEnd || stop(tok) {
			return terms, constant, nil
		}

		switch tok.kind {
		case tokPlus:
			p.tz.next()
			pendingSign = 1
		case tokMinus:
			p.tz.next()
			pendingSign = -1
		case tokNumber:
			tok, _ = p.tz.next()
			coeff := tok.value
			if !tok.hasSign {
				coeff *= pendingSign
			}
			pendingSign = 1

			next, err := p.tz.peek()
			if err != nil {
				return nil, 0, err
			}
			if next.kind == tokIdentifier && !isSectionKeyword(upper(next.text)) {
				next, _ = p.tz.next()
				terms = append(terms, lpTerm{name: next.text, coeff: coeff})
			} else {
				constant += coeff
			}
		case tokIdentifier:
			tok, _ = p.tz.next()
			if isSectionKeyword(upper(tok.text)) {
				p.tz.pushBack(tok)
				return terms, constant, nil
			}
			terms = append(terms, lpTerm{name: tok.text, coeff: pendingSign})
			pendingSign = 1
		case tokSemicolon:
			p.tz.next()
			return terms, constant, nil
		default:
			return nil, 0, malformed("unexpected token inside linear expression")
		}
	}
}

func (p *parser) parseNumericValue() (float64, error) {
	sign := 1.0
	for {
		tok, err := p.tz.next()
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokPlus:
			sign = 1
		case tokMinus:
			sign = -1
		case tokNumber:
			value := tok.value
			if !tok.hasSign {
				value *= sign
			}
			return value, nil
		case tokIdentifier:
			u := upper(tok.text)
			if u == "INF" || u == "INFINITY" {
				return sign * posInf, nil
			}
			return 0, malformed("invalid numeric value %q", tok.text)
		default:
			return 0, malformed("expecting numeric value")
		}
	}
}

func (p *parser) parseObjective() error {
	senseTok, err := p.tz.next()
	if err != nil {
		return err
	}
	if senseTok.kind != tokIdentifier {
		return malformed("LP objective must start with minimize or maximize")
	}
	switch upper(senseTok.text) {
	case "MIN", "MINIMIZE", "MINIMUM":
	case "MAX", "MAXIMIZE", "MAXIMUM":
		p.store.Maximize = true
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSense, senseTok.text)
	}

	objName := ""
	next, err := p.tz.peek()
	if err != nil {
		return err
	}
	if next.kind == tokIdentifier {
		possibleName, _ := p.tz.next()
		colon, err := p.tz.peek()
		if err != nil {
			return err
		}
		if colon.kind == tokColon {
			p.tz.next()
			objName = possibleName.text
		} else {
			p.tz.pushBack(possibleName)
		}
	}
	p.objName = objName

	terms, constant, err := p.parseLinearExpression(stopAtSectionKeyword)
	if err != nil {
		return err
	}
	for _, term := range terms {
		if err := p.addTerm(objName, term.name, term.coeff); err != nil {
			return err
		}
	}
	p.store.ObjOffset = constant
	return nil
}

func (p *parser) parseConstraints() error {
	keyword, err := p.tz.next()
	if err != nil {
		return err
	}
	switch upper(keyword.text) {
	case "SUBJECT":
		if maybeTo, err := p.tz.peek(); err != nil {
			return err
		} else if maybeTo.kind == tokIdentifier && upper(maybeTo.text) == "TO" {
			p.tz.next()
		}
	case "SUCH":
		if maybeThat, err := p.tz.peek(); err != nil {
			return err
		} else if maybeThat.kind == tokIdentifier && upper(maybeThat.text) == "THAT" {
			p.tz.next()
		}
	case "ST", "S.T.", "S.T", "CONSTRAINT", "CONSTRAINTS":
		// nothing else to consume
	default:
		return malformed("invalid constraint section keyword %q", keyword.text)
	}

	for {
		tok, err := p.tz.peek()
		if err != nil {
			return err
		}
		if tok.kind == tokEnd || stopAtSectionKeyword(tok) {
			return nil
		}
		if tok.kind == tokSemicolon {
			p.tz.next()
			continue
		}

		conName := ""
		possibleName, err := p.tz.peek()
		if err != nil {
			return err
		}
		if possibleName.kind == tokIdentifier {
			nameTok, _ := p.tz.next()
			colon, err := p.tz.peek()
			if err != nil {
				return err
			}
			if colon.kind == tokColon {
				p.tz.next()
				conName = nameTok.text
			} else {
				p.tz.pushBack(nameTok)
			}
		}
		if conName == "" {
			conName = p.generateConstraintName()
		}

		lhsTerms, lhsConstant, err := p.parseLinearExpression(stopAtRelation)
		if err != nil {
			return err
		}
		rel, err := p.tz.next()
		if err != nil {
			return err
		}
		var sense model.Sense
		switch rel.kind {
		case tokLE:
			sense = model.LE
		case tokGE:
			sense = model.GE
		case tokEQ:
			sense = model.EQ
		default:
			return malformed("constraint %q must contain a relation operator", conName)
		}
		rhs, err := p.parseNumericValue()
		if err != nil {
			return err
		}

		conID, err := p.store.MakeConstraint(conName, sense)
		if err != nil {
			return err
		}
		p.store.Cons[conID].RHS = rhs - lhsConstant
		for _, term := range lhsTerms {
			if err := p.addTerm(conName, term.name, term.coeff); err != nil {
				return err
			}
		}

		if maybeSemi, err := p.tz.peek(); err != nil {
			return err
		} else if maybeSemi.kind == tokSemicolon {
			p.tz.next()
		}
	}
}

func (p *parser) parseBounds() error {
	if _, err := p.tz.next(); err != nil { // consume BOUNDS/BOUND
		return err
	}
	for {
		tok, err := p.tz.peek()
		if err != nil {
			return err
		}
		if tok.kind == tokEnd || stopAtSectionKeyword(tok) {
			return nil
		}
		if tok.kind == tokSemicolon {
			p.tz.next()
			continue
		}

		if tok.kind == tokNumber {
			firstValue, err := p.parseNumericValue()
			if err != nil {
				return err
			}
			firstRel, err := p.tz.next()
			if err != nil {
				return err
			}
			if firstRel.kind != tokLE && firstRel.kind != tokGE {
				return malformed("invalid bounds statement")
			}
			varTok, err := p.tz.next()
			if err != nil {
				return err
			}
			if varTok.kind != tokIdentifier {
				return malformed("expecting variable name in bounds")
			}
			v, err := p.store.MakeVariable(varTok.text, false)
			if err != nil {
				return err
			}
			variable := &p.store.Vars[v]

			maybeSecond, err := p.tz.peek()
			if err != nil {
				return err
			}
			if firstRel.kind == tokLE {
				variable.Lower = firstValue
				if maybeSecond.kind == tokLE || maybeSecond.kind == tokGE {
					secondRel, err := p.tz.next()
					if err != nil {
						return err
					}
					if secondRel.kind != tokLE {
						return malformed("invalid chained bounds order on %q", varTok.text)
					}
					upperValue, err := p.parseNumericValue()
					if err != nil {
						return err
					}
					variable.Upper = upperValue
				}
			} else {
				variable.Upper = firstValue
				if maybeSecond.kind == tokGE {
					p.tz.next()
					lowerValue, err := p.parseNumericValue()
					if err != nil {
						return err
					}
					variable.Lower = lowerValue
				}
			}
			continue
		}

		varTok, err := p.tz.next()
		if err != nil {
			return err
		}
		if varTok.kind != tokIdentifier {
			return malformed("unexpected token in bounds")
		}
		v, err := p.store.MakeVariable(varTok.text, false)
		if err != nil {
			return err
		}
		variable := &p.store.Vars[v]

		next, err := p.tz.peek()
		if err != nil {
			return err
		}
		if next.kind == tokIdentifier && upper(next.text) == "FREE" {
			p.tz.next()
			variable.Lower, variable.Upper = negInf, posInf
			continue
		}

		rel, err := p.tz.next()
		if err != nil {
			return err
		}
		switch rel.kind {
		case tokLE:
			v, err := p.parseNumericValue()
			if err != nil {
				return err
			}
			variable.Upper = v
		case tokGE:
			v, err := p.parseNumericValue()
			if err != nil {
				return err
			}
			variable.Lower = v
		case tokEQ:
			v, err := p.parseNumericValue()
			if err != nil {
				return err
			}
			variable.Lower, variable.Upper = v, v
			variable.Kind = model.Fixed
		default:
			return malformed("invalid bounds operator on %q", varTok.text)
		}
	}
}

func (p *parser) parseIntegers() error {
	if _, err := p.tz.next(); err != nil { // consume GENERAL(S)/INTEGER(S)/INT
		return err
	}
	for {
		tok, err := p.tz.peek()
		if err != nil {
			return err
		}
		if tok.kind == tokEnd || stopAtSectionKeyword(tok) {
			return nil
		}
		if tok.kind == tokSemicolon {
			p.tz.next()
			continue
		}
		tok, err = p.tz.next()
		if err != nil {
			return err
		}
		if tok.kind != tokIdentifier {
			return malformed("invalid integer declaration")
		}
		v, err := p.store.MakeVariable(tok.text, false)
		if err != nil {
			return err
		}
		if p.store.Vars[v].Kind != model.Binary {
			p.store.Vars[v].Kind = model.GeneralInteger
		}
	}
}

func (p *parser) parseBinaries() error {
	if _, err := p.tz.next(); err != nil { // consume BINARY/BINARIES/BIN
		return err
	}
	for {
		tok, err := p.tz.peek()
		if err != nil {
			return err
		}
		if tok.kind == tokEnd || stopAtSectionKeyword(tok) {
			return nil
		}
		if tok.kind == tokSemicolon {
			p.tz.next()
			continue
		}
		tok, err = p.tz.next()
		if err != nil {
			return err
		}
		if tok.kind != tokIdentifier {
			return malformed("invalid binary declaration")
		}
		v, err := p.store.MakeVariable(tok.text, false)
		if err != nil {
			return err
		}
		variable := &p.store.Vars[v]
		variable.Kind = model.Binary
		if variable.Lower < 0 {
			variable.Lower = 0
		}
		if variable.Upper > 1 {
			variable.Upper = 1
		}
	}
}

// addTerm resolves rowName to a ConID (the objective alias when it
// matches the name captured by parseObjective, otherwise a constraint
// already created by parseConstraints) and creates varName on demand,
// mirroring the reference reader's add_term.
func (p *parser) addTerm(rowName, varName string, coeff float64) error {
	c := model.ObjectiveRow
	if rowName != p.objName {
		id, err := p.store.ConByName(rowName)
		if err != nil {
			return fmt.Errorf("%w: unknown row %q", ErrMalformed, rowName)
		}
		c = id
	}

	v, err := p.store.MakeVariable(varName, false)
	if err != nil {
		return err
	}
	if err := p.store.AddTerm(c, v, coeff, p.zeroTol); err != nil {
		if errors.Is(err, model.ErrZeroCoefficient) {
			return nil
		}
		return err
	}
	return nil
}
