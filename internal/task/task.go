// Package task holds the task model shared by the parser, the arithmetic
// engine and the formatter. A parsed input file becomes a Job: one constructed
// curve plus its ordered task list. Jobs are independent of each other and
// share no state.
package task

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smartcontractkit/eccalc/internal/curve"
)

// Kind selects the operation a task performs.
type Kind int

const (
	// Add requests the sum of two points.
	Add Kind = iota
	// Mul requests the multiplication of a point by a non-negative scalar.
	Mul
)

// Task is one parsed request. P and Q are the operand points for Add; Mul
// uses P and Scalar only.
type Task[T any] struct {
	Kind   Kind
	P, Q   curve.Point[T]
	Scalar *big.Int
}

// Result pairs a task with its computed point. The formatter receives both
// together; the arithmetic layer itself never renders text.
type Result[T any] struct {
	Task  Task[T]
	Point curve.Point[T]
}

// Job is a fully parsed input file, ready to evaluate. The concrete element
// type (integer or polynomial) is erased here so that the driver can treat
// all files uniformly.
type Job interface {
	// Run evaluates every task sequentially, in input order, and returns one
	// formatted result line per task. The first failing task aborts the job;
	// pure arithmetic on the same inputs cannot succeed on retry.
	Run() ([]string, error)

	// Len returns the number of tasks.
	Len() int
}

type job[T any] struct {
	crv     *curve.Curve[T]
	tasks   []Task[T]
	element func(T) string
}

func (j *job[T]) Len() int {
	return len(j.tasks)
}

func (j *job[T]) Run() ([]string, error) {
	lines := make([]string, 0, len(j.tasks))
	for _, t := range j.tasks {
		var p curve.Point[T]
		var err error
		switch t.Kind {
		case Add:
			p, err = j.crv.Add(t.P, t.Q)
		case Mul:
			p, err = j.crv.Mul(t.P, t.Scalar)
		default:
			err = errors.Errorf("unknown task kind %d", t.Kind)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "task %q", FormatTask(t, j.element))
		}
		lines = append(lines, FormatResult(Result[T]{Task: t, Point: p}, j.element))
	}
	return lines, nil
}
