package mask

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"digits only", "01022020", "01022020"},
		{"separators stripped", "01.02.2020", "01022020"},
		{"letters stripped", "a1b2c3", "123"},
		{"whitespace stripped", " 1 2\t3\n", "123"},
		{"emoji stripped", "1😀2", "12"},
		{"trademark stripped", "2™020", "2020"},
		{"umbrella stripped", "☂31", "31"},
		{"circled digit stripped", "①23", "23"},
		{"musical symbol stripped", "1\U0001D11E2", "12"},
		{"only symbols", "🎹🎹☀", ""},
		{"mixed everything", "0x1F•/😀-2,020", "012020"},
		{"multibyte letters kept out", "１２", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"01.02.2020",
		"1😀2",
		"abc",
		"☂™🎹",
		"09:30",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSanitizeZWJCluster(t *testing.T) {
	// A ZWJ emoji sequence must be dropped whole, leaving surrounding
	// digits intact.
	input := "1\U0001F469‍\U0001F4BB2"
	if got := Sanitize(input); got != "12" {
		t.Errorf("Sanitize(%q) = %q, want %q", input, got, "12")
	}
}
