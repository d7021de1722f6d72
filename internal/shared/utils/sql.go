package utils

import (
	"math"
	"strings"
)

// MaxSerialID là giá trị lớn nhất của cột SERIAL/INTEGER (int4)
const MaxSerialID = math.MaxInt32

// InSerialRange reports whether id can exist in an int4 id column.
func InSerialRange(id int64) bool {
	return id > 0 && id <= MaxSerialID
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE wildcards so the pattern matches the literal text.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds a "%text%" pattern for a literal substring match.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
