package collision

// Mode is the collision handling strategy a Policy resolves to
type Mode string

const (
	ModeAutoRename   Mode = "auto_rename"
	ModeOverwrite    Mode = "overwrite"
	ModeExplicitName Mode = "explicit_name"
	ModeInteractive  Mode = "interactive"
)

// Policy carries the collision flags given for a save. Several flags may be
// set at once; Resolve honours them in the order auto-rename, overwrite,
// explicit name, interactive.
type Policy struct {
	AutoRename bool
	Overwrite  bool
	NewName    string
}

// Interactive is the zero policy: prompt on every collision
var Interactive = Policy{}

// Mode reports the strategy that wins when the destination already exists
func (p Policy) Mode() Mode {
	switch {
	case p.AutoRename:
		return ModeAutoRename
	case p.Overwrite:
		return ModeOverwrite
	case p.NewName != "":
		return ModeExplicitName
	default:
		return ModeInteractive
	}
}

// WithoutNewName drops the explicit name, keeping the other flags. Used for
// folder imports where one name cannot label many files.
func (p Policy) WithoutNewName() Policy {
	p.NewName = ""
	return p
}
