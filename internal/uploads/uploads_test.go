package uploads

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/blabla/internal/apperr"
)

func TestFilename_AllowedTypes(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())

	for _, original := range []string{"me.jpg", "me.jpeg", "me.png", "ME.PNG", "photo.Jpg"} {
		name, err := s.Filename(original)
		require.NoError(t, err, original)
		assert.Equal(t, strings.ToLower(filepath.Ext(original)), filepath.Ext(name))
	}
}

func TestFilename_RejectsOtherTypes(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())

	for _, original := range []string{"anim.gif", "doc.pdf", "run.exe", "pic.png.svg"} {
		_, err := s.Filename(original)
		assert.ErrorIs(t, err, apperr.ErrValidation, original)
	}
}

func TestFilename_MissingExtensionDefaultsToJpg(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())

	name, err := s.Filename("noext")
	require.NoError(t, err)
	assert.Equal(t, ".jpg", filepath.Ext(name))
}

func TestPath(t *testing.T) {
	t.Parallel()

	s := NewStore("uploads")
	assert.Equal(t, filepath.Join("uploads", "x.png"), s.Path("x.png"))
}
