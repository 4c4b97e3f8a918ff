package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyBackspace, "Backspace"},
		{KeyDelete, "Delete"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyEscape, "Escape"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeyHome, "Home"},
		{KeyEnd, "End"},
		{KeyRune, "Rune"},
		{Key(200), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIsSpecial(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyNone, false},
		{KeyRune, false},
		{KeyBackspace, true},
		{KeyEscape, true},
		{KeyLeft, true},
		{KeyEnd, true},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsSpecial(); got != tt.want {
				t.Errorf("Key.IsSpecial() = %v, want %v", got, tt.want)
			}
		})
	}
}
