package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "v1.2.3", Normalize("1.2.3"))
	assert.Equal(t, "v1.2.3", Normalize(" v1.2.3 "))
}

func TestString(t *testing.T) {
	orig := Current
	t.Cleanup(func() { Current = orig })

	tests := []struct {
		current string
		want    string
	}{
		{current: "dev", want: "dev"},
		{current: "1.4.0", want: "v1.4.0"},
		{current: "v2.0", want: "v2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			Current = tt.current
			assert.Equal(t, tt.want, String())
		})
	}
}
