package resources

import (
	"strconv"
	"strings"
)

// FormatSalary renders a monthly salary in rupees with Indian digit grouping,
// e.g. "1234567.5" -> "₹12,34,567.5".
func FormatSalary(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return Blank
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return *s
	}

	raw := strconv.FormatFloat(f, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}
	whole, frac, _ := strings.Cut(raw, ".")
	if len(frac) > 3 {
		frac = frac[:3]
	}

	grouped := groupIndian(whole)
	if frac != "" {
		grouped += "." + frac
	}
	return sign + "₹" + grouped
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}
