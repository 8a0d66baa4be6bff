package manifest

import (
	"regexp"
	"strings"
)

var (
	tableHeader      = regexp.MustCompile(`^\s*\[\s*([A-Za-z0-9_-]+)\s*\]\s*(?:#.*)?$`)
	arrayTableHeader = regexp.MustCompile(`^\s*\[\[`)
	otherTableHeader = regexp.MustCompile(`^\s*\[`)

	// versionAssignment captures the key, the quoted value and the rest of the line.
	versionAssignment = regexp.MustCompile(`^(\s*version\s*=\s*)("[^"\\]*"|'[^'\n]*')(.*)$`)
)

var multilineDelims = []string{`"""`, `'''`}

// editInPlace replaces the quoted value of the first version assignment in
// the [package] table, keeping the original quote style. Lines inside
// multiline strings are skipped. It reports false when no such assignment
// exists or version cannot be written with that quote style unescaped.
func editInPlace(contents []byte, version string) ([]byte, bool) {
	if strings.ContainsAny(version, "\"'\\\n\r") {
		return nil, false
	}

	lines := strings.Split(string(contents), "\n")
	inPackage := false
	openDelim := ""

	for i, line := range lines {
		if openDelim != "" {
			if strings.Count(line, openDelim)%2 == 1 {
				openDelim = ""
			}
			continue
		}

		switch {
		case arrayTableHeader.MatchString(line):
			inPackage = false
			continue
		case tableHeader.MatchString(line):
			inPackage = tableHeader.FindStringSubmatch(line)[1] == packageKey
			continue
		case otherTableHeader.MatchString(line):
			inPackage = false
			continue
		}

		m := versionAssignment.FindStringSubmatch(line)
		if m == nil || !inPackage {
			openDelim = opensMultiline(line)
			continue
		}

		quote := m[2][:1]
		lines[i] = m[1] + quote + version + quote + m[3]
		return []byte(strings.Join(lines, "\n")), true
	}

	return nil, false
}

// opensMultiline returns the delimiter of a multiline string left open at
// the end of line, or "".
func opensMultiline(line string) string {
	for _, delim := range multilineDelims {
		if strings.Count(line, delim)%2 == 1 {
			return delim
		}
	}
	return ""
}
