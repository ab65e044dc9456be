package task

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/eccalc/internal/curve"
	"github.com/smartcontractkit/eccalc/internal/field"
)

func parseAndRun(t *testing.T, input string) ([]string, error) {
	t.Helper()
	job, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	return job.Run()
}

func TestParsePrimeField(t *testing.T) {
	input := `Z_p
23
1
1
a (3, 10) (3, 10)
a (3,10) (4,0)
m (3, 10) 2
m (3, 10) 0
`
	lines, err := parseAndRun(t, input)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"(3, 10) + (3, 10) = (7, 12)",
		"(3, 10) + (4, 0) = (1, 16)",
		"(3, 10) * 2 = (7, 12)",
		"(3, 10) * 0 = O",
	}, lines)
}

func TestParseBasePrefixes(t *testing.T) {
	input := `Z_p
0x17
0b1
0o1
a (0x3, 0b1010) (4, 0o0)
`
	lines, err := parseAndRun(t, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"(3, 10) + (4, 0) = (1, 16)"}, lines)
}

func TestParseInfinityOperand(t *testing.T) {
	input := `Z_p
23
1
1
a O (3, 10)
a (3, 10) O
m O 5
`
	lines, err := parseAndRun(t, input)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"O + (3, 10) = (3, 10)",
		"(3, 10) + O = (3, 10)",
		"O * 5 = O",
	}, lines)
}

func TestParseScalarOperandOrder(t *testing.T) {
	input := `Z_p
23
1
1
m 2 (3, 10)
`
	lines, err := parseAndRun(t, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"(3, 10) * 2 = (7, 12)"}, lines)
}

func TestParseBinaryFieldByDegree(t *testing.T) {
	input := `GF(2^n)
4
nss
1
1
1
a (8, 2) (6, 7)
m (8, 2) 3
a (1, 6) (1, 7)
`
	lines, err := parseAndRun(t, input)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"(8, 2) + (6, 7) = (10, 5)",
		"(8, 2) * 3 = (10, 5)",
		"(1, 6) + (1, 7) = O",
	}, lines)
}

func TestParseBinaryFieldByModulus(t *testing.T) {
	input := `GF(2^n)
x^4 + x + 1
nss
1
1
1
m (8, 2) 5
`
	lines, err := parseAndRun(t, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"(8, 2) * 5 = (12, 8)"}, lines)
}

func TestParseSupersingularFamily(t *testing.T) {
	input := `GF(2^n)
4
ss
1
0
a (0, 6) (1, 0)
a (1, 0) (1, 0)
`
	lines, err := parseAndRun(t, input)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"(0, 6) + (1, 0) = (6, 0)",
		"(1, 0) + (1, 0) = (1, 1)",
	}, lines)
}

func TestParseSupersingularDegenerate(t *testing.T) {
	input := `GF(2^n)
4
ss
0
1
a (1, 1) (1, 1)
`
	job, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	_, err = job.Run()
	assert.True(t, errors.Is(err, curve.ErrDegenerateCurve))
}

func TestParseTaskOrderPreserved(t *testing.T) {
	input := `Z_p
23
1
1
m (3, 10) 3
m (3, 10) 1
m (3, 10) 2
`
	lines, err := parseAndRun(t, input)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"(3, 10) * 3 = (19, 5)",
		"(3, 10) * 1 = (3, 10)",
		"(3, 10) * 2 = (7, 12)",
	}, lines)
}

func TestParseUnsupportedDegree(t *testing.T) {
	input := `GF(2^n)
99
nss
1
1
1
`
	_, err := Parse(strings.NewReader(input))
	var unsupported *field.UnsupportedDegreeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, 99, unsupported.Degree)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field kind":      "F_q\n23\n1\n1\n",
		"truncated config":        "Z_p\n23\n1\n",
		"empty input":             "",
		"unknown operation":       "Z_p\n23\n1\n1\nd (3, 10) (4, 0)\n",
		"add with a scalar":       "Z_p\n23\n1\n1\na (3, 10) 5\n",
		"mul with two points":     "Z_p\n23\n1\n1\nm (3, 10) (4, 0)\n",
		"mul with two scalars":    "Z_p\n23\n1\n1\nm 3 5\n",
		"negative scalar":         "Z_p\n23\n1\n1\nm (3, 10) -2\n",
		"malformed point":         "Z_p\n23\n1\n1\na (3, (4, 0)\n",
		"too many operands":       "Z_p\n23\n1\n1\na (3, 10) (4, 0) (1, 16)\n",
		"bad integer":             "Z_p\ntwenty\n1\n1\n",
		"unknown binary family":   "GF(2^n)\n4\nweird\n1\n1\n",
		"bad polynomial modulus":  "GF(2^n)\nx^4 + y\nnss\n1\n1\n1\n",
		"negative field degree":   "GF(2^n)\n-4\nnss\n1\n1\n1\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	input := "Z_p\n\n23\n\n1\n1\n\nm (3, 10) 2\n\n"
	lines, err := parseAndRun(t, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"(3, 10) * 2 = (7, 12)"}, lines)
}
