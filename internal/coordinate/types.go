package coordinate

// Coordinate is the structured form of a dependency notation.
type Coordinate struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string // Empty when the notation has no fourth segment.
}

// New creates a coordinate without a classifier.
func New(group, artifact, version string) Coordinate {
	return Coordinate{Group: group, Artifact: artifact, Version: version}
}

// Key returns `group:artifact`, the identity of the library regardless of
// which version is requested.
func (c Coordinate) Key() string {
	return c.Group + ":" + c.Artifact
}

// HasClassifier reports whether the notation carried a classifier segment.
func (c Coordinate) HasClassifier() bool {
	return c.Classifier != ""
}
