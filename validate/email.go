package validate

import "regexp"

// emailPattern is anchored at both ends: partial matches never count. The
// TLD requires two or more letters, so "a@b.c" fails while "a@b.co" passes.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email reports whether s is shaped like an email address. This is a
// syntactic check only; no DNS lookup or mailbox verification is performed
// or implied.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}
