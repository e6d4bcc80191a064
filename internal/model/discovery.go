package model

// NoticeKind classifies non-fatal findings produced during discovery.
type NoticeKind int

const (
	// NoticeShadowing means the working-directory copy hides an installed one.
	NoticeShadowing NoticeKind = iota
	// NoticeNotInstalled means the name only resolves from the working directory.
	NoticeNotInstalled
	// NoticeMissingMarker means a sub-directory lacks its __init__.py.
	NoticeMissingMarker
	// NoticeCycle means a package was not expanded because of the cycle guard.
	NoticeCycle
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeShadowing:
		return "shadowing"
	case NoticeNotInstalled:
		return "not-installed"
	case NoticeMissingMarker:
		return "missing-marker"
	case NoticeCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Notice is an informational finding that never affects the verdict.
type Notice struct {
	Kind    NoticeKind
	Module  DottedName
	Message string
}

// Discovery is the result of one scheduler task.
type Discovery struct {
	Name DottedName
	// Root is the requested name this one was discovered from.
	Root DottedName
	// Module is nil when resolution failed. It may be set together with Err
	// when the module resolved but listing its children failed.
	Module  *ResolvedModule
	Err     error
	Notices []Notice
}
