package key

import "testing"

func TestEventIsRune(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"digit", NewRuneEvent('5', ModNone), true},
		{"letter", NewRuneEvent('a', ModNone), true},
		{"zero rune", Event{Key: KeyRune}, false},
		{"special", NewSpecialEvent(KeyBackspace, ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsRune(); got != tt.want {
				t.Errorf("IsRune() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventIsModified(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"plain rune", NewRuneEvent('5', ModNone), false},
		{"shifted rune not modified", NewRuneEvent('A', ModShift), false},
		{"ctrl rune", NewRuneEvent('c', ModCtrl), true},
		{"plain special", NewSpecialEvent(KeyLeft, ModNone), false},
		{"shifted special", NewSpecialEvent(KeyLeft, ModShift), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsModified(); got != tt.want {
				t.Errorf("IsModified() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventHelpers(t *testing.T) {
	bs := NewSpecialEvent(KeyBackspace, ModNone)
	if !bs.IsBackspace() || bs.IsDelete() || bs.IsEscape() || bs.IsTab() {
		t.Errorf("Backspace helpers wrong: %+v", bs)
	}

	del := NewSpecialEvent(KeyDelete, ModNone)
	if !del.IsDelete() || del.IsBackspace() {
		t.Errorf("Delete helpers wrong: %+v", del)
	}

	// Modified specials do not match the plain helpers.
	if NewSpecialEvent(KeyBackspace, ModCtrl).IsBackspace() {
		t.Error("Ctrl+Backspace reported as plain Backspace")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('5', ModNone), "5"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewSpecialEvent(KeyBackspace, ModNone), "Backspace"},
		{NewSpecialEvent(KeyLeft, ModCtrl), "Ctrl+Left"},
		{NewRuneEvent('c', ModCtrl), "Ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
