package mps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shaowei-cai-group/Local-MIP/model"
)

var posInf = math.Inf(1)
var negInf = math.Inf(-1)

type section int

const (
	secNone section = iota
	secName
	secObjSense
	secRows
	secColumns
	secRHS
	secBounds
	secDone
)

var headers = map[string]section{
	"NAME":     secName,
	"OBJSENSE": secObjSense,
	"ROWS":     secRows,
	"COLUMNS":  secColumns,
	"RHS":      secRHS,
	"BOUNDS":   secBounds,
	"ENDATA":   secDone,
}

var unsupportedHeaders = map[string]bool{
	"RANGES":     true,
	"SOS":        true,
	"INDICATORS": true,
}

// Parse reads an MPS file from r into a fresh *model.Store. zeroTol is the
// coefficient-is-zero threshold (spec.md §6 τ_zero); terms below it are
// silently dropped, matching the reference reader's own behaviour.
func Parse(r io.Reader, zeroTol float64) (*model.Store, error) {
	store := model.NewStore()
	p := &parser{store: store, zeroTol: zeroTol}

	scanner := bufio.NewScanner(r)
	sec := secNone
	for scanner.Scan() {
		p.line++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "*") {
			continue
		}

		fields := strings.Fields(trimmed)
		head := strings.ToUpper(fields[0])
		if unsupportedHeaders[head] {
			return nil, fmt.Errorf("%w: line %d: %s", ErrUnsupportedSection, p.line, head)
		}
		if next, ok := headers[head]; ok && !strings.HasPrefix(raw, " ") {
			sec = next
			continue // the header line itself carries no row/column data
		}

		var err error
		switch sec {
		case secObjSense:
			err = p.objSense(fields)
		case secRows:
			err = p.row(fields)
		case secColumns:
			err = p.column(fields)
		case secRHS:
			err = p.rhs(fields)
		case secBounds:
			err = p.bound(fields)
		case secDone:
			// trailing content after ENDATA is ignored.
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mps: reading input: %w", err)
	}

	return store, nil
}

type parser struct {
	store    *model.Store
	zeroTol  float64
	line     int
	objName  string
	haveObj  bool
	integral bool
}

func (p *parser) objSense(fields []string) error {
	if strings.HasPrefix(strings.ToUpper(fields[0]), "MAX") {
		p.store.Maximize = true
	}
	return nil
}

func (p *parser) row(fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("%w: line %d: ROWS entry needs a sense and a name", ErrMalformed, p.line)
	}
	sense := strings.ToUpper(fields[0])
	name := fields[1]

	if sense == "N" {
		if p.haveObj {
			return fmt.Errorf("%w: line %d: %q", ErrDuplicateObjective, p.line, name)
		}
		p.objName = name
		p.haveObj = true
		return nil
	}

	var s model.Sense
	switch sense {
	case "L":
		s = model.LE
	case "G":
		s = model.GE
	case "E":
		s = model.EQ
	default:
		return fmt.Errorf("%w: line %d: unknown row sense %q", ErrMalformed, p.line, sense)
	}
	_, err := p.store.MakeConstraint(name, s)
	return err
}

func (p *parser) column(fields []string) error {
	if len(fields) >= 3 && strings.Contains(strings.ToUpper(fields[1]), "MARKER") {
		tag := strings.ToUpper(fields[2])
		switch {
		case strings.Contains(tag, "INTORG"):
			p.integral = true
		case strings.Contains(tag, "INTEND"):
			p.integral = false
		default:
			return fmt.Errorf("%w: line %d: unknown marker %q", ErrMalformed, p.line, fields[2])
		}
		return nil
	}
	if len(fields) < 3 || len(fields)%2 != 1 {
		return fmt.Errorf("%w: line %d: malformed COLUMNS entry", ErrMalformed, p.line)
	}

	varName := fields[0]
	v, err := p.store.MakeVariable(varName, p.integral)
	if err != nil {
		return err
	}

	for i := 1; i+1 < len(fields); i += 2 {
		rowName := fields[i]
		coeff, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: coefficient %q: %v", ErrMalformed, p.line, fields[i+1], err)
		}
		if err := p.addTerm(rowName, v, coeff); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) addTerm(rowName string, v model.VarID, coeff float64) error {
	c := model.ObjectiveRow
	if rowName != p.objName {
		id, err := p.store.ConByName(rowName)
		if err != nil {
			return fmt.Errorf("%w: line %d: unknown row %q", ErrMalformed, p.line, rowName)
		}
		c = id
	}

	if err := p.store.AddTerm(c, v, coeff, p.zeroTol); err != nil {
		if errors.Is(err, model.ErrZeroCoefficient) {
			return nil // coefficient below tolerance: silently dropped
		}
		return fmt.Errorf("%w: line %d", err, p.line)
	}
	return nil
}

func (p *parser) rhs(fields []string) error {
	if len(fields) < 3 || len(fields)%2 != 1 {
		return fmt.Errorf("%w: line %d: malformed RHS entry", ErrMalformed, p.line)
	}
	for i := 1; i+1 < len(fields); i += 2 {
		rowName := fields[i]
		val, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: rhs %q: %v", ErrMalformed, p.line, fields[i+1], err)
		}
		if rowName == p.objName {
			p.store.ObjOffset = -val
			continue
		}
		id, err := p.store.ConByName(rowName)
		if err != nil {
			return fmt.Errorf("%w: line %d: unknown row %q", ErrMalformed, p.line, rowName)
		}
		p.store.Cons[id].RHS = val
	}
	return nil
}

func (p *parser) bound(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: line %d: malformed BOUNDS entry", ErrMalformed, p.line)
	}
	boundType := strings.ToUpper(fields[0])
	varName := fields[2]

	v, err := p.store.VarByName(varName)
	if err != nil {
		return nil // bound on a variable never used in any row/column: ignore
	}
	variable := &p.store.Vars[v]

	var value float64
	needsValue := boundType == "UP" || boundType == "LO" || boundType == "LI" ||
		boundType == "UI" || boundType == "FX"
	if needsValue {
		if len(fields) < 4 {
			return fmt.Errorf("%w: line %d: %s bound needs a value", ErrMalformed, p.line, boundType)
		}
		value, err = strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: bound value %q: %v", ErrMalformed, p.line, fields[3], err)
		}
	}

	if variable.Kind == model.Binary && (boundType == "UP" || boundType == "LO" || boundType == "LI" || boundType == "UI") {
		variable.Kind = model.GeneralInteger
		variable.Upper = posInf
	}

	switch boundType {
	case "UP":
		variable.Upper = value
	case "LO":
		variable.Lower = value
	case "BV":
		variable.Kind = model.Binary
		variable.Lower, variable.Upper = 0, 1
	case "LI":
		variable.Lower = value
	case "UI":
		variable.Upper = value
	case "FX":
		variable.Lower, variable.Upper = value, value
		variable.Kind = model.Fixed
	case "FR":
		variable.Lower, variable.Upper = negInf, posInf
	case "MI":
		variable.Lower = negInf
	case "PL":
		variable.Upper = posInf
	default:
		return fmt.Errorf("%w: line %d: %q", ErrUnknownBoundType, p.line, boundType)
	}
	return nil
}
