package coordinate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// nameRegex matches group, artifact and classifier segments.
	nameRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.\-]*$`)
	// versionRegex also admits dynamic versions (`1.+`) and ranges (`[1.0,2.0)`).
	versionRegex = regexp.MustCompile(`^[A-Za-z0-9_.+\-\[\](),]+$`)
)

// Parse creates a Coordinate from its canonical string representation.
func Parse(raw string) (Coordinate, error) {
	if raw == "" {
		return Coordinate{}, fmt.Errorf("coordinate cannot be empty")
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Coordinate{}, fmt.Errorf("coordinate %q must have the form group:artifact:version[:classifier]", raw)
	}

	for i, part := range parts {
		if part == "" {
			return Coordinate{}, fmt.Errorf("coordinate %q contains an empty segment", raw)
		}
		re := nameRegex
		if i == 2 {
			re = versionRegex
		}
		if !re.MatchString(part) {
			return Coordinate{}, fmt.Errorf("invalid segment %q in coordinate %q", part, raw)
		}
	}

	c := New(parts[0], parts[1], parts[2])
	if len(parts) == 4 {
		c.Classifier = parts[3]
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for built-in tables
// and tests.
func MustParse(raw string) Coordinate {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String serializes the Coordinate into its canonical notation.
func (c Coordinate) String() string {
	var sb strings.Builder
	sb.WriteString(c.Group)
	sb.WriteByte(':')
	sb.WriteString(c.Artifact)
	sb.WriteByte(':')
	sb.WriteString(c.Version)
	if c.HasClassifier() {
		sb.WriteByte(':')
		sb.WriteString(c.Classifier)
	}
	return sb.String()
}

// ConflictsWith reports whether both coordinates name the same library at
// different versions. Classifier variants of one version do not conflict.
func (c Coordinate) ConflictsWith(other Coordinate) bool {
	return c.Key() == other.Key() && c.Version != other.Version
}
