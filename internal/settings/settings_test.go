package settings

import (
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	v1 "github.com/infracollect/emitter/apis/v1"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemMapFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		dir := filepath.Dir(path)
		if dir != "" {
			require.NoError(t, fs.MkdirAll(dir, 0755))
		}

		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		want        v1.Settings
		wantErr     bool
		errContains string
	}{
		{
			name: "yaml with author",
			data: "notes_dir: /home/me/notes\nauthor: Ada\n",
			want: v1.Settings{NotesDir: "/home/me/notes", Author: lo.ToPtr("Ada")},
		},
		{
			name: "yaml without author",
			data: "notes_dir: notes\n",
			want: v1.Settings{NotesDir: "notes"},
		},
		{
			name: "json",
			data: `{"notes_dir": "notes", "author": "Grace"}`,
			want: v1.Settings{NotesDir: "notes", Author: lo.ToPtr("Grace")},
		},
		{
			name:        "missing notes_dir",
			data:        "author: Ada\n",
			wantErr:     true,
			errContains: "failed to validate settings",
		},
		{
			name:        "malformed",
			data:        "notes_dir: [unterminated\n",
			wantErr:     true,
			errContains: "failed to unmarshal settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_ValidationErrorsAreInspectable(t *testing.T) {
	_, err := Parse([]byte("author: Ada\n"))

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "NotesDir", validationErrs[0].Field())
	assert.Equal(t, "required", validationErrs[0].Tag())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		source      string
		wantPath    string
		wantDir     string
		wantErr     error
		errContains string
	}{
		{
			name:     "default name resolves yaml",
			files:    map[string]string{"/etc/emitter/config.yaml": "notes_dir: a\n"},
			wantPath: "/etc/emitter/config.yaml",
			wantDir:  "a",
		},
		{
			name: "yaml preferred over json",
			files: map[string]string{
				"/etc/emitter/config.json": `{"notes_dir": "from-json"}`,
				"/etc/emitter/config.yaml": "notes_dir: from-yaml\n",
			},
			wantPath: "/etc/emitter/config.yaml",
			wantDir:  "from-yaml",
		},
		{
			name:     "falls back to json",
			files:    map[string]string{"/etc/emitter/config.json": `{"notes_dir": "j"}`},
			wantPath: "/etc/emitter/config.json",
			wantDir:  "j",
		},
		{
			name:     "custom name",
			files:    map[string]string{"/etc/emitter/notes.yml": "notes_dir: n\n"},
			source:   "notes",
			wantPath: "/etc/emitter/notes.yml",
			wantDir:  "n",
		},
		{
			name:     "name with extension is used as is",
			files:    map[string]string{"/etc/emitter/custom.json": `{"notes_dir": "c"}`},
			source:   "custom.json",
			wantPath: "/etc/emitter/custom.json",
			wantDir:  "c",
		},
		{
			name:    "not found",
			files:   nil,
			wantErr: ErrNotFound,
		},
		{
			name:        "invalid content names the file",
			files:       map[string]string{"/etc/emitter/config.yaml": "author: nobody\n"},
			errContains: "/etc/emitter/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newMemMapFs(t, tt.files)

			s, path, err := Load(fs, "/etc/emitter", tt.source)
			if tt.wantErr != nil || tt.errContains != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				if tt.errContains != "" {
					assert.ErrorContains(t, err, tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantDir, s.NotesDir)
		})
	}
}
