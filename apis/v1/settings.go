package v1

// Settings is the user settings source read by `emitter settings`.
type Settings struct {
	// NotesDir is the directory notes are kept in.
	NotesDir string `yaml:"notes_dir" json:"notes_dir" validate:"required"`

	// Author is attached to notes when set.
	Author *string `yaml:"author,omitempty" json:"author,omitempty"`
}
