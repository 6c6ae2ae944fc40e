package hocon

import (
	"strconv"
	"strings"

	"github.com/signadot/tony-format/hocon/gomap"
	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/token"
)

// GetString returns the text of a scalar value. Arrays and objects have no
// string form and yield nil.
func (c *Config) GetString(path string) (*string, error) {
	v, err := c.GetValue(path)
	if err != nil || v == nil {
		return nil, err
	}
	if !v.Type.IsLeaf() {
		return nil, nil
	}
	s := v.Text()
	return &s, nil
}

// GetInt returns an integer value. Doubles and numeric strings are
// truncated toward zero.
func (c *Config) GetInt(path string) (*int64, error) {
	v, err := c.GetValue(path)
	if err != nil || v == nil {
		return nil, err
	}
	var i int64
	switch v.Type {
	case ir.IntType:
		i = v.Int
	case ir.DoubleType:
		i = int64(v.Double)
	case ir.StringType:
		f, ok := numeric(v.String)
		if !ok {
			return nil, nil
		}
		if token.IsInt(strings.TrimSpace(v.String)) {
			i, _ = strconv.ParseInt(strings.TrimSpace(v.String), 10, 64)
		} else {
			i = int64(f)
		}
	default:
		return nil, nil
	}
	return &i, nil
}

func (c *Config) GetDouble(path string) (*float64, error) {
	v, err := c.GetValue(path)
	if err != nil || v == nil {
		return nil, err
	}
	var f float64
	switch v.Type {
	case ir.DoubleType:
		f = v.Double
	case ir.IntType:
		f = float64(v.Int)
	case ir.StringType:
		var ok bool
		if f, ok = numeric(v.String); !ok {
			return nil, nil
		}
	default:
		return nil, nil
	}
	return &f, nil
}

// GetFloat is GetDouble narrowed to 32 bits.
func (c *Config) GetFloat(path string) (*float32, error) {
	d, err := c.GetDouble(path)
	if err != nil || d == nil {
		return nil, err
	}
	f := float32(*d)
	return &f, nil
}

// GetBool accepts booleans, the strings "true" and "false" in any case and
// the integers 1 and 0.
func (c *Config) GetBool(path string) (*bool, error) {
	v, err := c.GetValue(path)
	if err != nil || v == nil {
		return nil, err
	}
	var b bool
	switch v.Type {
	case ir.BoolType:
		b = v.Bool
	case ir.StringType:
		switch strings.ToLower(v.String) {
		case "true":
			b = true
		case "false":
		default:
			return nil, nil
		}
	case ir.IntType:
		switch v.Int {
		case 1:
			b = true
		case 0:
		default:
			return nil, nil
		}
	default:
		return nil, nil
	}
	return &b, nil
}

// GetArray returns the resolved elements of an array value.
func (c *Config) GetArray(path string) ([]*ir.Node, error) {
	v, err := c.GetValue(path)
	if err != nil || v == nil || v.Type != ir.ArrayType {
		return nil, err
	}
	return v.Values, nil
}

// GetConfig returns the object at path as a partial configuration whose
// references fall back to c.
func (c *Config) GetConfig(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}
	if n := c.root.GetPath(path); n != nil && n.Type == ir.ObjectType {
		return &Config{root: n, parent: c}, nil
	}
	if c.root.GetPath(path) == nil && c.parent != nil {
		return c.parent.GetConfig(path)
	}
	v, err := c.GetValue(path)
	if err != nil || v == nil || v.Type != ir.ObjectType {
		return nil, err
	}
	return &Config{root: v, parent: c}, nil
}

// Decode stores the resolved value at path in p, a pointer to a Go value
// shaped like the configuration. An empty path decodes the whole
// configuration. A missing value leaves p untouched.
func (c *Config) Decode(path string, p any, opts ...gomap.FromOption) error {
	var (
		v   *ir.Node
		err error
	)
	if path == "" {
		v, err = c.Resolve()
	} else {
		v, err = c.GetValue(path)
	}
	if err != nil || v == nil {
		return err
	}
	return gomap.FromIR(v, p, opts...)
}

func numeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !token.IsInt(s) && !token.IsFloat(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
