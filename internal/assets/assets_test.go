package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "photo.jpg", "photo.jpg"},
		{"unix path stripped", "uploads/photo.jpg", "photo.jpg"},
		{"windows path stripped", `C:\Users\ana\photo.jpg`, "photo.jpg"},
		{"traversal stripped", "../../etc/passwd", "passwd"},
		{"spaces replaced", "mi salón favorito.png", "mi_salón_favorito.png"},
		{"tabs replaced", "a\tb.jpg", "a_b.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeFilename(tt.in))
		})
	}
}
