package ast

import (
	"errors"
	"strconv"
)

var (
	ErrNotEvaluated     = errors.New("ast: constant value not yet evaluated")
	ErrAlreadyEvaluated = errors.New("ast: constant value already evaluated")
)

// IntVal is a constant-folded integer filled in after construction. The
// zero value means "not yet evaluated", which is distinct from zero.
type IntVal struct {
	value     int64
	evaluated bool
}

// Evaluated returns an IntVal holding v.
func Evaluated(v int64) IntVal {
	return IntVal{value: v, evaluated: true}
}

// Set populates the value. It can only be done once.
func (v *IntVal) Set(x int64) error {
	if v.evaluated {
		return ErrAlreadyEvaluated
	}
	v.value, v.evaluated = x, true
	return nil
}

func (v IntVal) IsEvaluated() bool {
	return v.evaluated
}

// Value returns the folded value or ErrNotEvaluated.
func (v IntVal) Value() (int64, error) {
	if !v.evaluated {
		return 0, ErrNotEvaluated
	}
	return v.value, nil
}

func (v IntVal) String() string {
	if !v.evaluated {
		return "<unevaluated>"
	}
	return strconv.FormatInt(v.value, 10)
}
