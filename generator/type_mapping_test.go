package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lizlecrone/fitbit-api/swagger"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name  string
		param swagger.Parameter
		want  paramKind
	}{
		{"date format", swagger.Parameter{Type: "string", Format: "date"}, kindDate},
		{"date by description", swagger.Parameter{Type: "string", Description: "The date in the format yyyy-MM-dd."}, kindDate},
		{"integer", swagger.Parameter{Type: "integer"}, kindInt},
		{"number", swagger.Parameter{Type: "number"}, kindFloat},
		{"boolean", swagger.Parameter{Type: "boolean"}, kindBool},
		{"plain string", swagger.Parameter{Type: "string"}, kindString},
		{"untyped", swagger.Parameter{}, kindString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kindOf(&tt.param))
		})
	}
}

func TestGoType(t *testing.T) {
	assert.Equal(t, "string", kindString.goType())
	assert.Equal(t, "int", kindInt.goType())
	assert.Equal(t, "float64", kindFloat.goType())
	assert.Equal(t, "bool", kindBool.goType())
	assert.Equal(t, "time.Time", kindDate.goType())
}

func TestWireExpr(t *testing.T) {
	assert.Equal(t, "x", kindString.wireExpr("x"))
	assert.Equal(t, "strconv.Itoa(x)", kindInt.wireExpr("x"))
	assert.Equal(t, "strconv.FormatFloat(x, 'f', -1, 64)", kindFloat.wireExpr("x"))
	assert.Equal(t, "strconv.FormatBool(x)", kindBool.wireExpr("x"))
	assert.Equal(t, "formatDate(x)", kindDate.wireExpr("x"))
}

func TestZeroGuard(t *testing.T) {
	cond, value := kindString.zeroGuard("params.Name")
	assert.Equal(t, `params.Name != ""`, cond)
	assert.Equal(t, "params.Name", value)

	cond, value = kindInt.zeroGuard("params.Limit")
	assert.Equal(t, "params.Limit != 0", cond)
	assert.Equal(t, "strconv.Itoa(params.Limit)", value)

	cond, value = kindBool.zeroGuard("params.Favorite")
	assert.Equal(t, "params.Favorite", cond)
	assert.Equal(t, `"true"`, value)

	cond, value = kindDate.zeroGuard("params.BeforeDate")
	assert.Equal(t, "!params.BeforeDate.IsZero()", cond)
	assert.Equal(t, "params.BeforeDate.Format(DateFormat)", value)
}
