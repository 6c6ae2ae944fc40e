package token

import "strconv"

// IsInt reports whether s is a decimal integer literal: an optional sign
// followed by digits without a leading zero, within int64 range.
func IsInt(s string) bool {
	d := s
	if d != "" && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	n := asciiDigits(d)
	if n == 0 || n != len(d) {
		return false
	}
	if n > 1 && d[0] == '0' {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// IsFloat reports whether s is a decimal floating point literal with an
// optional sign, fraction and exponent. At least one digit is required
// before or after the decimal point and the integer part has no leading
// zero.
func IsFloat(s string) bool {
	d := s
	if d != "" && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	ip := asciiDigits(d)
	if ip > 1 && d[0] == '0' {
		return false
	}
	d = d[ip:]
	fp := 0
	if d != "" && d[0] == '.' {
		fp = asciiDigits(d[1:])
		d = d[1+fp:]
	}
	if ip+fp == 0 {
		return false
	}
	if d != "" {
		e := exp(d)
		if e != len(d) {
			return false
		}
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	return i
}

func exp(d string) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}
