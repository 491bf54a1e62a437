package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Rings", want: "rings"},
		{name: "spaces", in: "White Gold Sets", want: "white-gold-sets"},
		{name: "punctuation", in: "Sirg'alar", want: "sirg-alar"},
		{name: "collapses_runs", in: "a  -  b", want: "a-b"},
		{name: "trims_trailing", in: "watches!", want: "watches"},
		{name: "digits_kept", in: "585 Proba", want: "585-proba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
