package InputParameters

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/Knetic/govaluate"
)

// Expression is a field given as a formula in the position x, e.g. "10 + 20*tanh(x/5)". Plain
// numbers in the input file are accepted as constant expressions.
type Expression string

func (e *Expression) UnmarshalJSON(b []byte) (err error) {
	var (
		s string
		f float64
	)
	if err = json.Unmarshal(b, &s); err == nil {
		*e = Expression(s)
		return
	}
	if err = json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("expression must be a string or a number, have %s", string(b))
	}
	*e = Expression(strconv.FormatFloat(f, 'g', -1, 64))
	return
}

func (e *Expression) UnmarshalTOML(v interface{}) error {
	switch val := v.(type) {
	case string:
		*e = Expression(val)
	case int64:
		*e = Expression(strconv.FormatInt(val, 10))
	case float64:
		*e = Expression(strconv.FormatFloat(val, 'g', -1, 64))
	default:
		return fmt.Errorf("expression must be a string or a number, have %v", v)
	}
	return nil
}

var profileFunctions = map[string]govaluate.ExpressionFunction{
	"exp":  unaryFunction("exp", math.Exp),
	"sqrt": unaryFunction("sqrt", math.Sqrt),
	"tanh": unaryFunction("tanh", math.Tanh),
	"min": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("got %d arguments for function 'min', but needs 2", len(args))
		}
		return math.Min(args[0].(float64), args[1].(float64)), nil
	},
	"max": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("got %d arguments for function 'max', but needs 2", len(args))
		}
		return math.Max(args[0].(float64), args[1].(float64)), nil
	},
}

func unaryFunction(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("got %d arguments for function '%s', but needs 1", len(args), name)
		}
		return f(args[0].(float64)), nil
	}
}

// EvaluateProfile evaluates expr at every x. Available names are x and pi, and the functions
// exp, sqrt, tanh, min and max.
func EvaluateProfile(expr string, x []float64) (vals []float64, err error) {
	var (
		expression *govaluate.EvaluableExpression
		result     interface{}
	)
	if expression, err = govaluate.NewEvaluableExpressionWithFunctions(expr, profileFunctions); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", expr, err)
	}
	vals = make([]float64, len(x))
	params := map[string]interface{}{"pi": math.Pi}
	for i, xi := range x {
		params["x"] = xi
		if result, err = expression.Evaluate(params); err != nil {
			return nil, fmt.Errorf("evaluating %q at x = %v: %w", expr, xi, err)
		}
		val, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("%q evaluates to %v, not a number", expr, result)
		}
		vals[i] = val
	}
	return
}
