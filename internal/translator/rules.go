package translator

import (
	"regexp"
	"strings"
)

// typeNames is the closed set of annotation types that get stripped.
const typeNames = `(?:bool|int|str|list|dict|function)`

var (
	annotationRe = regexp.MustCompile(`:[ \t]*` + typeNames + `(?:[ \t]*\|[ \t]*` + typeNames + `)*([ \t]*[,)=])`)
	raiseRe      = regexp.MustCompile(`raise [A-Za-z]+(.*)\n`)
)

type regexpRule struct {
	name string
	re   *regexp.Regexp
	repl func(re *regexp.Regexp, src string) string
}

func (r *regexpRule) Name() string { return r.name }

func (r *regexpRule) Apply(src string) string { return r.repl(r.re, src) }

// AnnotationRule removes PEP-484 parameter annotations such as ": int" or
// ": str|list", keeping the delimiter that follows them.
func AnnotationRule() Rule {
	return &regexpRule{
		name: "annotations",
		re:   annotationRe,
		repl: func(re *regexp.Regexp, src string) string {
			return re.ReplaceAllString(src, "${1}")
		},
	}
}

// RaiseRule turns "raise Error(args)" into "fail(args)". The exception
// class is dropped.
func RaiseRule() Rule {
	return &regexpRule{
		name: "raise",
		re:   raiseRe,
		repl: func(re *regexp.Regexp, src string) string {
			return re.ReplaceAllStringFunc(src, func(match string) string {
				return failCall(re.FindStringSubmatch(match)[1])
			})
		},
	}
}

// failCall builds the replacement line from whatever followed the exception name.
func failCall(rest string) string {
	rest, cr := strings.CutSuffix(rest, "\r")
	args := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(args, "(") {
		args = "(" + args + ")"
	}
	if cr {
		return "fail" + args + "\r\n"
	}
	return "fail" + args + "\n"
}

// IsNoneRule replaces " is None" with " == None" everywhere, including
// inside strings and comments. Skylark has no "is" operator.
func IsNoneRule() Rule {
	return isNoneRule{}
}

type isNoneRule struct{}

func (isNoneRule) Name() string { return "is-none" }

func (isNoneRule) Apply(src string) string {
	return strings.ReplaceAll(src, " is None", " == None")
}
