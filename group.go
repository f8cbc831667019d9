package numfmt

import "strings"

// Group inserts sep between every three digits of an integer digit string,
// counting from the right. Strings of three digits or fewer come back as-is.
// digits must hold ASCII digits only; signs and fractions are the caller's job.
func Group(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3*len(sep))

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
