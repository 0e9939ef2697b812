package common

import "fmt"

// EnumStringMap represents a mapping from enum values to string representations.
type EnumStringMap map[int]string

// BinaryOperatorMapping maps binary operators to their string representations.
var BinaryOperatorMapping = EnumStringMap{
	int(OpAdd): "+",
	int(OpSub): "-",
	int(OpMul): "*",
	int(OpDiv): "/",
	int(OpEq):  "==",
	int(OpNe):  "!=",
	int(OpLt):  "<",
	int(OpLe):  "<=",
	int(OpGt):  ">",
	int(OpGe):  ">=",
}

// FormatEnum formats an enum value using the provided mapping.
func FormatEnum(value int, mapping EnumStringMap) string {
	if str, exists := mapping[value]; exists {
		return str
	}
	return fmt.Sprintf("unknown(%d)", value)
}
