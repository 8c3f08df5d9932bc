package hierarchy

import (
	"regexp"
	"strconv"
	"strings"
)

// 1..999 numeric suffix
var suffixRe = regexp.MustCompile(`^\s*(\d{1,3})\s*$`)

// codeRe matches catalog codes: digit-led tokens like "12", "12.6", "3-b".
var codeRe = regexp.MustCompile(`^\d[\d.\-a-zA-Z]*$`)

// SplitCodeName splits a free-form entry line into code and name. The
// first whitespace-separated token is the code when it looks like a
// catalog code; otherwise the whole line is the name.
func SplitCodeName(line string) (code, name string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) > 1 && codeRe.MatchString(fields[0]) {
		return fields[0], strings.Join(fields[1:], " ")
	}
	if codeRe.MatchString(fields[0]) && len(fields) == 1 {
		return fields[0], ""
	}
	return "", strings.Join(fields, " ")
}

// ExpandChildCode expands a bare numeric child code against its parent code:
// "06" under "12" becomes "12.6". Codes that are empty, already contain the
// delimiter, or are not a short numeric suffix pass through unchanged, as do
// children of parents with no code.
func ExpandChildCode(parentCode, childCode, delimiter string) string {
	p := strings.TrimSpace(parentCode)
	c := strings.TrimSpace(childCode)

	if c == "" || p == "" {
		return c
	}
	if delimiter != "" && strings.Contains(c, delimiter) {
		return c
	}

	m := suffixRe.FindStringSubmatch(c)
	if m == nil {
		return c
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return c
	}
	return p + delimiter + strconv.Itoa(n)
}

// ExpandChildCodes rewrites every node's code in place, expanding numeric
// suffixes against the effective (already expanded) parent code, so "6"
// under "12" under a root becomes "12.6" and its own children expand
// against "12.6" in turn.
func ExpandChildCodes(roots []*Node, delimiter string) {
	expand(roots, "", delimiter)
}

func expand(nodes []*Node, parentCode, delimiter string) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		n.Code = ExpandChildCode(parentCode, n.Code, delimiter)
		expand(n.Children, n.Code, delimiter)
	}
}
