package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictSanitizer_Clean(t *testing.T) {
	s := NewTextSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "Role for system Administrator", want: "Role for system Administrator"},
		{name: "script removed", in: "Ops<script>alert(1)</script>", want: "Ops"},
		{name: "tags stripped", in: "<b>Admin</b> team", want: "Admin team"},
		{name: "whitespace trimmed", in: "  spaced  ", want: "spaced"},
		{name: "ampersand kept", in: "R&D", want: "R&D"},
		{name: "apostrophe kept", in: "O'Brien", want: "O'Brien"},
		{name: "quotes kept", in: `Say "hi"`, want: `Say "hi"`},
		{name: "bare less-than kept", in: "a < b", want: "a < b"},
		{name: "encoded markup stripped", in: "&lt;b&gt;bold&lt;/b&gt;", want: "bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.in))
		})
	}
}

func TestStrictSanitizer_CleanIsIdempotent(t *testing.T) {
	s := NewTextSanitizer()

	inputs := []string{"R&D", "Tom & Jerry's <i>role</i>", "a < b > c", "&amp;lt;x&amp;gt;", "50% off"}
	for _, in := range inputs {
		once := s.Clean(in)
		assert.Equal(t, once, s.Clean(once), in)
	}
}
