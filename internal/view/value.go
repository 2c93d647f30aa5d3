package view

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type valueKind int

const (
	kindAbsent valueKind = iota
	kindNumber
	kindText
	kindBool
)

// Value is one product field as shown in the comparison table: absent, a number, text or a flag.
type Value struct {
	kind valueKind
	num  float64
	text string
	flag bool
}

func Absent() Value            { return Value{} }
func Number(f float64) Value   { return Value{kind: kindNumber, num: f} }
func Text(s string) Value      { return Value{kind: kindText, text: s} }
func Bool(b bool) Value        { return Value{kind: kindBool, flag: b} }
func (v Value) IsAbsent() bool { return v.kind == kindAbsent }

// Float returns the numeric value and whether v is a number.
func (v Value) Float() (float64, bool) { return v.num, v.kind == kindNumber }

// truthy follows the usual loose rules: zero, empty text, false and absent are false.
func (v Value) truthy() bool {
	switch v.kind {
	case kindNumber:
		return v.num != 0
	case kindText:
		return v.text != ""
	case kindBool:
		return v.flag
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindText:
		return v.text
	case kindBool:
		return strconv.FormatBool(v.flag)
	default:
		return "N/A"
	}
}

var printer = message.NewPrinter(language.English)

// grouped renders f with thousands separators and at most three decimals.
func grouped(f float64) string {
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}

func (v Value) localized() string {
	if v.kind == kindNumber {
		return grouped(v.num)
	}
	return v.String()
}
