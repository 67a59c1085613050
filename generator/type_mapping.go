// This file maps Swagger parameter types onto the Go types used in generated
// method signatures, and renders the expressions that turn those values back
// into wire strings.

package generator

import (
	"fmt"
	"strings"

	"github.com/lizlecrone/fitbit-api/swagger"
)

// paramKind classifies a parameter by the Go type it maps to.
type paramKind int

const (
	kindString paramKind = iota
	kindInt
	kindFloat
	kindBool
	kindDate
)

// kindOf classifies a Swagger parameter. Dates are recognized by the "date"
// format or, since Fitbit's document rarely sets formats, by a description
// naming the yyyy-MM-dd convention.
func kindOf(p *swagger.Parameter) paramKind {
	if p.Format == "date" || strings.Contains(p.Description, "yyyy-MM-dd") {
		return kindDate
	}
	switch p.Type {
	case "integer":
		return kindInt
	case "number":
		return kindFloat
	case "boolean":
		return kindBool
	default:
		return kindString
	}
}

// goType returns the Go type for a parameter kind.
func (k paramKind) goType() string {
	switch k {
	case kindInt:
		return "int"
	case kindFloat:
		return "float64"
	case kindBool:
		return "bool"
	case kindDate:
		return "time.Time"
	default:
		return "string"
	}
}

// wireExpr renders the expression converting the named value to its wire
// string. Required dates go through formatDate so the zero value means
// "today".
func (k paramKind) wireExpr(name string) string {
	switch k {
	case kindInt:
		return fmt.Sprintf("strconv.Itoa(%s)", name)
	case kindFloat:
		return fmt.Sprintf("strconv.FormatFloat(%s, 'f', -1, 64)", name)
	case kindBool:
		return fmt.Sprintf("strconv.FormatBool(%s)", name)
	case kindDate:
		return fmt.Sprintf("formatDate(%s)", name)
	default:
		return name
	}
}

// zeroGuard renders the condition under which an optional field is set, and
// the wire expression for its value. Optional zero values are omitted from
// the request entirely, so optional dates format directly instead of falling
// back to "today".
func (k paramKind) zeroGuard(name string) (cond, value string) {
	switch k {
	case kindInt, kindFloat:
		return fmt.Sprintf("%s != 0", name), k.wireExpr(name)
	case kindBool:
		return name, `"true"`
	case kindDate:
		return fmt.Sprintf("!%s.IsZero()", name), fmt.Sprintf("%s.Format(DateFormat)", name)
	default:
		return fmt.Sprintf("%s != \"\"", name), name
	}
}

// imports returns the import paths the kind's expressions rely on.
func (k paramKind) imports() []string {
	switch k {
	case kindInt, kindFloat, kindBool:
		return []string{"strconv"}
	case kindDate:
		return []string{"time"}
	default:
		return nil
	}
}
