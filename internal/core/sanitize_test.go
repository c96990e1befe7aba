package core_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Ashish-0130/PaprCup/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"hello", "hello"},
		{"  padded  ", "padded"},
		{"<script>hi</script>", "&lt;script&gt;hi&lt;/script&gt;"},
		{`a & "b"`, "a &amp; &#34;b&#34;"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, core.Sanitize(tt.in))
		})
	}
}

func TestSanitize_SinglePass(t *testing.T) {
	once := core.Sanitize("<b>")
	assert.NotContains(t, once, "<")
	// Sanitizing again escapes the entities themselves; callers apply it once.
	assert.Equal(t, "&amp;lt;b&amp;gt;", core.Sanitize(once))
}

func TestSanitizeBio(t *testing.T) {
	t.Run("short bio untouched", func(t *testing.T) {
		assert.Equal(t, "hi there", core.SanitizeBio(" hi there ", 50))
	})

	t.Run("long bio truncated to limit", func(t *testing.T) {
		got := core.SanitizeBio(strings.Repeat("a", 80), 50)
		assert.Equal(t, strings.Repeat("a", 50), got)
	})

	t.Run("truncation happens after escaping", func(t *testing.T) {
		got := core.SanitizeBio(strings.Repeat("<", 20), 50)
		assert.Equal(t, 50, utf8.RuneCountInString(got))
		assert.True(t, strings.HasPrefix(got, "&lt;&lt;"))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		got := core.SanitizeBio(strings.Repeat("é", 60), 50)
		assert.Equal(t, 50, utf8.RuneCountInString(got))
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("no limit", func(t *testing.T) {
		assert.Len(t, core.SanitizeBio(strings.Repeat("a", 80), 0), 80)
	})
}
