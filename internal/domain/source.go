package domain

type SourceKind string

const (
	SourceRemote SourceKind = "remote"
	SourceLocal  SourceKind = "local"
)

// Source is where the page text comes from: a remote URL or a local file path.
type Source struct {
	Kind     SourceKind
	Location string
}

func NewRemoteSource(rawURL string) Source {
	return Source{Kind: SourceRemote, Location: rawURL}
}

func NewLocalSource(path string) Source {
	return Source{Kind: SourceLocal, Location: path}
}

func (s Source) IsRemote() bool { return s.Kind == SourceRemote }

func (s Source) String() string {
	return string(s.Kind) + ":" + s.Location
}
