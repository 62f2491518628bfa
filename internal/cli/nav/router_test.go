package nav

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_GoTo(t *testing.T) {
	var out bytes.Buffer
	r := NewRouter(&out)
	r.Handle("/", func(w io.Writer) error {
		_, err := io.WriteString(w, "home\n")
		return err
	})

	require.NoError(t, r.GoTo("/"))
	assert.Equal(t, "home\n", out.String())
	assert.Equal(t, "/", r.Current())
}

func TestRouter_UnknownPath(t *testing.T) {
	r := NewRouter(io.Discard)
	assert.Error(t, r.GoTo("/nowhere"))
	assert.Empty(t, r.Current())
}

func TestRouter_RenderErrorKeepsLocation(t *testing.T) {
	r := NewRouter(io.Discard)
	r.Handle("/", func(io.Writer) error { return nil })
	r.Handle("/broken", func(io.Writer) error { return errors.New("boom") })

	require.NoError(t, r.GoTo("/"))
	assert.Error(t, r.GoTo("/broken"))
	assert.Equal(t, "/", r.Current())
}
