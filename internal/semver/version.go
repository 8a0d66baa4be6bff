// Package semver parses and bumps the semantic versions read by accessors.
// It is only consulted by the bump command and for ordering warnings; the
// write path accepts any version string.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SemVersion represents a semantic version (major.minor.patch-preRelease+build).
type SemVersion struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
	Build      string
}

// Bump labels accepted by Bump.
const (
	LabelPatch = "patch"
	LabelMinor = "minor"
	LabelMajor = "major"
	LabelNext  = "next"
)

// Labels lists the accepted bump labels in display order.
var Labels = []string{LabelPatch, LabelMinor, LabelMajor, LabelNext}

// versionRegex matches major.minor.patch with an optional "v" prefix,
// pre-release and build metadata.
var versionRegex = regexp.MustCompile(
	`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-([0-9A-Za-z\-\.]+))?` +
		`(?:\+([0-9A-Za-z\-\.]+))?$`,
)

// ErrInvalidVersion is returned when a string is not a semantic version.
var ErrInvalidVersion = errors.New("invalid version format")

// maxVersionLength bounds the input handed to the regex.
const maxVersionLength = 128

// String returns the string representation of the semantic version.
func (v SemVersion) String() string {
	var sb strings.Builder
	sb.Grow(20)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Build)
	}
	return sb.String()
}

// ParseVersion parses "1.2.3", "v1.2.3", "1.2.3-rc.1", "1.2.3+build.5" and
// combinations thereof.
func ParseVersion(s string) (SemVersion, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return SemVersion{}, fmt.Errorf("%w: version string exceeds maximum length of %d", ErrInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return SemVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return SemVersion{}, fmt.Errorf("%w: %s", ErrInvalidVersion, err)
		}
		nums[i] = n
	}

	return SemVersion{
		Major:      nums[0],
		Minor:      nums[1],
		Patch:      nums[2],
		PreRelease: matches[4],
		Build:      matches[5],
	}, nil
}

// Bump returns v bumped by label.
//
//   - patch: 1.2.3 -> 1.2.4
//   - minor: 1.2.3 -> 1.3.0
//   - major: 1.2.3 -> 2.0.0
//   - next:  1.2.3-rc.1 -> 1.2.3, otherwise a patch bump
//
// Pre-release and build metadata are dropped.
func Bump(v SemVersion, label string) (SemVersion, error) {
	switch label {
	case LabelPatch:
		return SemVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	case LabelMinor:
		return SemVersion{Major: v.Major, Minor: v.Minor + 1}, nil
	case LabelMajor:
		return SemVersion{Major: v.Major + 1}, nil
	case LabelNext:
		if v.PreRelease != "" {
			return SemVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch}, nil
		}
		return SemVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return SemVersion{}, fmt.Errorf("invalid bump label %q: expected one of %s", label, strings.Join(Labels, ", "))
	}
}

// Compare returns -1, 0 or +1 as v is lower than, equal to or higher than
// other. Build metadata is ignored.
func (v SemVersion) Compare(other SemVersion) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	// 1.0.0-alpha < 1.0.0
	switch {
	case v.PreRelease == "" && other.PreRelease == "":
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	default:
		return comparePreRelease(v.PreRelease, other.PreRelease)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePreRelease(a, b string) int {
	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")

	for i := range min(len(aIDs), len(bIDs)) {
		if c := compareIdentifier(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(aIDs), len(bIDs))
}

func compareIdentifier(a, b string) int {
	aNum, aIsNum := parseNumericIdentifier(a)
	bNum, bIsNum := parseNumericIdentifier(b)

	switch {
	case aIsNum && bIsNum:
		return compareInt(aNum, bNum)
	case aIsNum:
		return -1 // numeric < non-numeric
	case bIsNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// parseNumericIdentifier accepts digits without leading zeros.
func parseNumericIdentifier(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
