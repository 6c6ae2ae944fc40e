package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/tony-format/hocon/ir"
)

// ColorAttr names the role a piece of output plays.
type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	PunctColor
	SubstColor
	MultilineColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorFunc func(string, ...any) string

// Colors maps roles to print functions. Entries missing from Map use Default.
type Colors struct {
	Default ColorFunc
	Map     map[Colorable]ColorFunc
}

type paint struct {
	types []ir.Type
	attr  ColorAttr
	fn    ColorFunc
}

func rgb(r, g, b int) ColorFunc { return color.RGB(r, g, b).SprintfFunc() }

func palette() []paint {
	punct := rgb(196, 128, 128)
	number := rgb(128, 216, 236)
	return []paint{
		{ir.Types(), PunctColor, punct},
		{ir.Types(), SubstColor, color.BlueString},
		{[]ir.Type{ir.ObjectType}, KeyColor, rgb(128, 168, 196)},
		{[]ir.Type{ir.IntType, ir.DoubleType}, ValueColor, number},
		{[]ir.Type{ir.BoolType}, ValueColor, color.CyanString},
		{[]ir.Type{ir.NullType}, ValueColor, rgb(168, 0, 196)},
		{[]ir.Type{ir.StringType}, ValueColor, rgb(8, 196, 16)},
		{[]ir.Type{ir.StringType}, MultilineColor, rgb(198, 198, 46)},
		{[]ir.Type{ir.PendingType}, ValueColor, rgb(88, 158, 86)},
	}
}

func NewColors() *Colors {
	c := &Colors{Default: plain, Map: map[Colorable]ColorFunc{}}
	for _, p := range palette() {
		f := p.fn
		for _, t := range p.types {
			// values are printed through a format string.
			c.Map[Colorable{Type: t, Attr: p.attr}] = func(v string, _ ...any) string {
				return f(strings.ReplaceAll(v, "%", "%%"))
			}
		}
	}
	return c
}

func plain(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f(s)
	}
	if c.Default == nil {
		return s
	}
	return c.Default(s)
}
