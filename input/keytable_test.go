package input

import "testing"

func TestDefaultKeyMapBindsEveryKeyAction(t *testing.T) {
	km := DefaultKeyMap()
	for a := ActionNone + 1; a < actionCount; a++ {
		if !a.Bindable() {
			if _, ok := km[a]; ok {
				t.Errorf("DefaultKeyMap binds non-bindable %v", a)
			}
			continue
		}
		if len(km[a]) == 0 {
			t.Errorf("DefaultKeyMap has no key for %v", a)
		}
		for _, k := range km[a] {
			if !k.Valid() {
				t.Errorf("DefaultKeyMap[%v] has invalid key %q", a, k)
			}
		}
	}
}

func TestDefaultKeyMapReferenceKeys(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		a   Action
		key Key
	}{
		{ActionQuit, KeyEscape},
		{ActionIncreaseDetail, KeyKPAdd},
		{ActionDecreaseDetail, KeyKPSubtract},
		{ActionRegenerate, KeyEnter},
		{ActionZoomIn, KeyPageUp},
		{ActionZoomOut, KeyPageDown},
	}
	for _, tt := range tests {
		if k, ok := km.Lookup(tt.a); !ok || k != tt.key {
			t.Errorf("Lookup(%v) = (%q, %v), want %q", tt.a, k, ok, tt.key)
		}
	}
}

func TestKeyMapMerge(t *testing.T) {
	base := DefaultKeyMap()
	merged := base.Merge(KeyMap{
		ActionZoomIn:   {"z"},
		ActionSnapshot: {},
	})

	if got := merged[ActionZoomIn]; len(got) != 1 || got[0] != "z" {
		t.Errorf("merged[ZoomIn] = %v, want [z]", got)
	}
	if _, ok := merged[ActionSnapshot]; ok {
		t.Error("empty override should unbind snapshot")
	}
	if len(merged[ActionZoomOut]) == 0 {
		t.Error("untouched action lost its binding")
	}
	if len(base[ActionSnapshot]) == 0 {
		t.Error("Merge mutated the receiver")
	}
}

func TestKeyRune(t *testing.T) {
	tests := []struct {
		k      Key
		want   rune
		wantOK bool
	}{
		{"s", 's', true},
		{"+", '+', true},
		{KeySpace, ' ', true},
		{KeyEscape, 0, false},
		{"ab", 0, false},
	}
	for _, tt := range tests {
		r, ok := tt.k.Rune()
		if r != tt.want || ok != tt.wantOK {
			t.Errorf("Key(%q).Rune() = (%q, %v), want (%q, %v)", tt.k, r, ok, tt.want, tt.wantOK)
		}
	}
	if RuneKey(' ') != KeySpace {
		t.Errorf("RuneKey(' ') = %q, want %q", RuneKey(' '), KeySpace)
	}
}
