package parse

import (
	"errors"
)

var (
	ErrEmpty = errors.New("content must not be empty")
)

const (
	msgConfigBraces    = "Config starts with '{' but does not end with '}'"
	msgStrayClose      = "Unexpected '}' outside of an object"
	msgObjectStart     = "Object must start with {"
	msgObjectEnd       = "Object must end with }"
	msgArrayStart      = "Array must start with ["
	msgArrayEnd        = "Array must end with ]"
	msgArrayLeading    = ", is not allowed at the start of an array"
	msgArrayTrailing   = "Array value cannot end with ,"
	msgCommas          = "Only one , is allowed after a value"
	msgKeyNewline      = "Invalid key. Key may not contain new line character."
	msgKeySeparator    = "Unexpected character after key, expected one of [,{"
	msgKeyQuote        = "Quoted key must end with \""
	msgMultilineEOF    = "Multiline string ended prematurely"
	msgMultilineSingle = "Multiline string detected. Use '\"\"\"' for multiline strings"
	msgStringEnd       = "Quoted string must end with \""
	msgRefStart        = "Config references must start with $"
	msgRefBrace        = "Config references $ must be followed by {"
	msgRefEnd          = "Config references must end with }"
)
