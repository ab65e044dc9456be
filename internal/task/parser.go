package task

import (
	"bufio"
	"io"
	"math/big"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/smartcontractkit/eccalc/internal/curve"
	"github.com/smartcontractkit/eccalc/internal/field"
	"github.com/smartcontractkit/eccalc/internal/gf2"
)

// The input grammar is line oriented. The first line names the field kind,
// the following lines configure the field and the curve, and every remaining
// line is one task:
//
//	Z_p                        GF(2^n)
//	<p>                        <degree n, or irreducible polynomial>
//	<a>                        nss | ss
//	<b>                        <a>
//	a (3, 10) (4, 0)           <b>
//	m (3, 10) 5                [<c>]          (nss only)
//	                           a (0b0010, 0b1111) O
//	                           m (3, 12) 0x1f
//
// Integers accept 0b/0o/0x prefixes. Polynomials are written either as
// coefficient bit masks or in monomial form ("x^4 + x + 1"). Point operands
// are "(x, y)" pairs with free interior whitespace, or "O" for the point at
// infinity. Blank lines are ignored.

// pointPattern matches one point literal, tolerating interior whitespace.
// Mirrors the operand normalization of the task grammar: matches are
// rewritten to the compact "(x,y)" before tokenization.
var pointPattern = regexp.MustCompile(`\(\s*((?:0x|0o|0b)?[0-9a-f]+)\s*,\s*((?:0x|0o|0b)?[0-9a-f]+)\s*\)`)

// Parse reads one input file and returns the runnable job: the constructed
// curve plus its task list, in input order.
func Parse(r io.Reader) (Job, error) {
	it, err := readLines(r)
	if err != nil {
		return nil, err
	}
	kind, err := it.next()
	if err != nil {
		return nil, errors.Wrap(err, "reading field kind")
	}
	switch kind {
	case "Z_p":
		return parsePrimeJob(it)
	case "GF(2^n)":
		return parseBinaryJob(it)
	default:
		return nil, errors.Errorf("unknown field kind %q", kind)
	}
}

func parsePrimeJob(it *lineIter) (Job, error) {
	p, err := nextInt(it, "field order")
	if err != nil {
		return nil, err
	}
	a, err := nextInt(it, "curve coefficient a")
	if err != nil {
		return nil, err
	}
	b, err := nextInt(it, "curve coefficient b")
	if err != nil {
		return nil, err
	}
	f, err := field.NewPrime(p)
	if err != nil {
		return nil, err
	}
	tasks, err := parseTasks(it, parseIntCoordinate)
	if err != nil {
		return nil, err
	}
	return &job[*big.Int]{
		crv:     curve.NewWeierstrass(f, a, b),
		tasks:   tasks,
		element: FormatInt,
	}, nil
}

func parseBinaryJob(it *lineIter) (Job, error) {
	f, err := parseBinaryField(it)
	if err != nil {
		return nil, err
	}
	family, err := it.next()
	if err != nil {
		return nil, errors.Wrap(err, "reading curve family")
	}

	var crv *curve.Curve[gf2.Poly]
	switch strings.ToLower(family) {
	case "nss":
		a, b, c, err := nextPolyCoefficients3(it)
		if err != nil {
			return nil, err
		}
		crv = curve.NewBinaryNonSupersingular(f, a, b, c)
	case "ss":
		a, err := nextPoly(it, "curve coefficient a")
		if err != nil {
			return nil, err
		}
		b, err := nextPoly(it, "curve coefficient b")
		if err != nil {
			return nil, err
		}
		crv = curve.NewBinarySupersingular(f, a, b)
	default:
		return nil, errors.Errorf("unknown binary curve family %q (want nss or ss)", family)
	}

	tasks, err := parseTasks(it, parsePolyCoordinate)
	if err != nil {
		return nil, err
	}
	return &job[gf2.Poly]{crv: crv, tasks: tasks, element: FormatPoly}, nil
}

// parseBinaryField reads the field order line: an explicit irreducible
// polynomial in monomial form, or an integer degree resolved through the
// built-in table.
func parseBinaryField(it *lineIter) (*field.Binary, error) {
	line, err := it.next()
	if err != nil {
		return nil, errors.Wrap(err, "reading field order")
	}
	if isMonomialForm(line) {
		m, err := gf2.Parse(line)
		if err != nil {
			return nil, errors.Wrap(err, "parsing field modulus")
		}
		return field.NewBinary(m)
	}
	n, err := parseInt(line)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing field degree %q", line)
	}
	if !n.IsInt64() || n.Int64() < 1 {
		return nil, errors.Errorf("invalid field degree %s", n)
	}
	return field.NewBinaryOfDegree(int(n.Int64()))
}

func nextPolyCoefficients3(it *lineIter) (a, b, c gf2.Poly, err error) {
	if a, err = nextPoly(it, "curve coefficient a"); err != nil {
		return
	}
	if b, err = nextPoly(it, "curve coefficient b"); err != nil {
		return
	}
	c, err = nextPoly(it, "curve coefficient c")
	return
}

func nextInt(it *lineIter, what string) (*big.Int, error) {
	line, err := it.next()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", what)
	}
	v, err := parseInt(line)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s %q", what, line)
	}
	return v, nil
}

// nextPoly reads one polynomial value, accepting both the monomial form and
// an integer bit mask.
func nextPoly(it *lineIter, what string) (gf2.Poly, error) {
	line, err := it.next()
	if err != nil {
		return gf2.Poly{}, errors.Wrapf(err, "reading %s", what)
	}
	if isMonomialForm(line) {
		p, err := gf2.Parse(line)
		if err != nil {
			return gf2.Poly{}, errors.Wrapf(err, "parsing %s", what)
		}
		return p, nil
	}
	v, err := parseInt(line)
	if err != nil || v.Sign() < 0 {
		return gf2.Poly{}, errors.Errorf("parsing %s: %q is not a polynomial", what, line)
	}
	return gf2.FromBits(v), nil
}

// isMonomialForm distinguishes "x^4 + x + 1" from integer values; an "x" in
// an integer can only be part of a 0x prefix.
func isMonomialForm(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Contains(s, "x") && !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "-0x")
}

func parseTasks[T any](it *lineIter, coordinate func(string) (T, error)) ([]Task[T], error) {
	var tasks []Task[T]
	for {
		line, err := it.next()
		if err != nil {
			return tasks, nil
		}
		t, err := parseTask(line, coordinate)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
}

func parseTask[T any](line string, coordinate func(string) (T, error)) (Task[T], error) {
	normalized := pointPattern.ReplaceAllString(strings.ToLower(line), "($1,$2)")
	tokens := strings.Fields(normalized)
	if len(tokens) != 3 {
		return Task[T]{}, errors.Errorf("malformed task %q: want an operation and two operands", line)
	}

	var points []curve.Point[T]
	var scalars []*big.Int
	for _, tok := range tokens[1:] {
		switch {
		case tok == "o":
			points = append(points, curve.Infinity[T]())
		case strings.HasPrefix(tok, "("):
			p, err := parsePoint(tok, coordinate)
			if err != nil {
				return Task[T]{}, errors.Wrapf(err, "task %q", line)
			}
			points = append(points, p)
		default:
			s, err := parseInt(tok)
			if err != nil {
				return Task[T]{}, errors.Wrapf(err, "task %q: operand %q", line, tok)
			}
			scalars = append(scalars, s)
		}
	}

	switch tokens[0] {
	case "a":
		if len(points) != 2 {
			return Task[T]{}, errors.Errorf("task %q: addition needs two point operands", line)
		}
		return Task[T]{Kind: Add, P: points[0], Q: points[1]}, nil
	case "m":
		if len(points) != 1 || len(scalars) != 1 {
			return Task[T]{}, errors.Errorf("task %q: multiplication needs one point and one scalar", line)
		}
		if scalars[0].Sign() < 0 {
			return Task[T]{}, errors.Errorf("task %q: scalar must be non-negative", line)
		}
		return Task[T]{Kind: Mul, P: points[0], Scalar: scalars[0]}, nil
	default:
		return Task[T]{}, errors.Errorf("unknown operation %q in task %q", tokens[0], line)
	}
}

func parsePoint[T any](tok string, coordinate func(string) (T, error)) (curve.Point[T], error) {
	m := pointPattern.FindStringSubmatch(tok)
	if m == nil {
		return curve.Point[T]{}, errors.Errorf("invalid point %q", tok)
	}
	x, err := coordinate(m[1])
	if err != nil {
		return curve.Point[T]{}, err
	}
	y, err := coordinate(m[2])
	if err != nil {
		return curve.Point[T]{}, err
	}
	return curve.NewPoint(x, y), nil
}

func parseIntCoordinate(s string) (*big.Int, error) {
	return parseInt(s)
}

func parsePolyCoordinate(s string) (gf2.Poly, error) {
	v, err := parseInt(s)
	if err != nil {
		return gf2.Poly{}, err
	}
	if v.Sign() < 0 {
		return gf2.Poly{}, errors.Errorf("negative value %s is not a polynomial", v)
	}
	return gf2.FromBits(v), nil
}

// parseInt reads an integer with an optional 0b/0o/0x base prefix. Plain
// values are decimal; a leading zero does not imply octal.
func parseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	digits := s
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	base := 10
	lower := strings.ToLower(digits)
	switch {
	case strings.HasPrefix(lower, "0b"):
		base, digits = 2, digits[2:]
	case strings.HasPrefix(lower, "0o"):
		base, digits = 8, digits[2:]
	case strings.HasPrefix(lower, "0x"):
		base, digits = 16, digits[2:]
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

type lineIter struct {
	lines []string
	pos   int
}

var errEndOfInput = errors.New("unexpected end of input")

func (it *lineIter) next() (string, error) {
	if it.pos >= len(it.lines) {
		return "", errEndOfInput
	}
	line := it.lines[it.pos]
	it.pos++
	return line, nil
}

func readLines(r io.Reader) (*lineIter, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return &lineIter{lines: lines}, nil
}
