package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"a\nb", "a\nb", false},
		{"a\r\nb\r\n", "a\nb\n", true},
		{"a\rb", "a\rb", false}, // одиночный \r не трогаем
	}
	for _, tt := range tests {
		got, changed := normalizeCRLF([]byte(tt.in))
		if string(got) != tt.want || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = %q,%v want %q,%v", tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestBuildLineIndex(t *testing.T) {
	idx := buildLineIndex([]byte("a\nbc\n"))
	if len(idx) != 2 || idx[0] != 1 || idx[1] != 4 {
		t.Fatalf("buildLineIndex = %v", idx)
	}
	if got := toLineCol(idx, 5); got != (LineCol{Line: 3, Col: 1}) {
		t.Errorf("toLineCol past last newline = %+v", got)
	}
	if got := toLineCol(nil, 7); got != (LineCol{Line: 1, Col: 8}) {
		t.Errorf("toLineCol without index = %+v", got)
	}
}
