package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const heightName = "h"

// volumeExpr is a compiled vendor volume equation in the variable h.
type volumeExpr struct {
	source  string
	program *vm.Program
}

var exprConstants = map[string]float64{
	"pi": math.Pi,
	"PI": math.Pi,
	"e":  math.E,
}

var exprOptions = []expr.Option{
	expr.Env(volumeEnv(0)),
	expr.Function("sqrt", func(params ...any) (any, error) {
		x, err := toFloat(params[0])
		if err != nil {
			return nil, err
		}
		return math.Sqrt(x), nil
	}, new(func(float64) float64)),
	expr.Function("pow", func(params ...any) (any, error) {
		x, err := toFloat(params[0])
		if err != nil {
			return nil, err
		}
		y, err := toFloat(params[1])
		if err != nil {
			return nil, err
		}
		return math.Pow(x, y), nil
	}, new(func(float64, float64) float64)),
}

func volumeEnv(h float64) map[string]any {
	env := make(map[string]any, len(exprConstants)+1)
	for name, value := range exprConstants {
		env[name] = value
	}
	env[heightName] = h
	return env
}

// compileVolumeExpr compiles an arithmetic expression over h with + - * /,
// ^ or ** for powers, parentheses, min max abs sqrt pow and the constants in
// exprConstants. A "math." qualifier is accepted and ignored. The program is
// run once at h=0 so equations that do not yield a number fail here.
func compileVolumeExpr(src string) (volumeExpr, error) {
	normalized := strings.ReplaceAll(src, "math.", "")
	if strings.TrimSpace(normalized) == "" {
		return volumeExpr{}, invalidEquation(src, "empty expression", nil)
	}
	program, err := expr.Compile(normalized, exprOptions...)
	if err != nil {
		return volumeExpr{}, invalidEquation(src, "does not compile", err)
	}
	compiled := volumeExpr{source: src, program: program}
	if _, err := compiled.eval(0); err != nil {
		return volumeExpr{}, err
	}
	return compiled, nil
}

func (e volumeExpr) eval(h float64) (float64, error) {
	out, err := expr.Run(e.program, volumeEnv(h))
	if err != nil {
		return 0, invalidEquation(e.source, "failed to evaluate", err)
	}
	value, err := toFloat(out)
	if err != nil {
		return 0, invalidEquation(e.source, "is not numeric", err)
	}
	return value, nil
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unexpected %T value %v", value, value)
	}
}

func invalidEquation(src string, reason string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("volume equation %q %s", src, reason))
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}
