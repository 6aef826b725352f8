package utils

import "strconv"

// FormatNaira renders an integer naira amount with thousands separators,
// e.g. 12900 -> "₦12,900". Amounts carry no sub-unit precision.
func FormatNaira(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	out := make([]byte, 0, len(digits)+len(digits)/3+4)
	if neg {
		out = append(out, '-')
	}
	out = append(out, []byte("₦")...)

	lead := len(digits) % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
		if len(digits) > lead {
			out = append(out, ',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		out = append(out, digits[i:i+3]...)
		if i+3 < len(digits) {
			out = append(out, ',')
		}
	}
	return string(out)
}
