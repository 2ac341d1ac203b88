package isa

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// exprPattern matches $(...) with at most one level of nested parentheses.
var exprPattern = regexp.MustCompile(`\$\([^$()]*(?:\([^$()]*\)[^$()]*)*\)`)

// parenEval does compile-time $(...) evaluations
func parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "charis"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expandExpressions replaces every $(...) in a line with its decimal value.
func expandExpressions(line string) (expanded string, err error) {
	expanded = exprPattern.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	return
}
