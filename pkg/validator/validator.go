package validator

import "regexp"

// emailRegex accepts anything of the form local@domain.tld where no part
// contains whitespace or a second @. Deliberately loose: deliverability is
// proven by the acknowledgment email, not by the pattern.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule pairs a check with the user-visible message reported when it fails.
type Rule struct {
	Check   func() bool
	Message string
}

// Error is the failure result of Apply. It satisfies the error interface so
// validation outcomes travel through ordinary error returns.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Apply evaluates the rules in order and returns an *Error carrying the
// message of the first rule that fails, or nil when all rules pass.
func Apply(rules ...Rule) error {
	for _, r := range rules {
		if !r.Check() {
			return &Error{Message: r.Message}
		}
	}
	return nil
}

// Required returns a check that passes only when every value is non-empty.
func Required(values ...string) func() bool {
	return func() bool {
		for _, v := range values {
			if v == "" {
				return false
			}
		}
		return true
	}
}

// ValidEmail returns a check for syntactic email validity.
func ValidEmail(addr string) func() bool {
	return func() bool {
		return emailRegex.MatchString(addr)
	}
}
