package api

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  Swamp Radio ", "Swamp Radio"},
		{"ampersand survives", "Frogs & Toads", "Frogs & Toads"},
		{"comparison survives", "1 < 2", "1 < 2"},
		{"tags stripped", "<b>Bold</b> move", "Bold move"},
		{"script dropped", "<script>alert(1)</script>ok", "ok"},
		{"entity encoded script", "&lt;script&gt;alert(1)&lt;/script&gt;ok", "ok"},
		{"entity encoded tag", "&lt;i&gt;Lore&lt;/i&gt;", "Lore"},
		{"double encoded tag", "&amp;lt;b&amp;gt;x&amp;lt;/b&amp;gt;", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plainText(tt.in); got != tt.want {
				t.Errorf("plainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
