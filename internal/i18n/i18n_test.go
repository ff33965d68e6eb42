package i18n

import "testing"

func TestT_Lookup(t *testing.T) {
	tr := New(EN)
	if got := tr.T("check"); got != "Check" {
		t.Errorf("T(check) = %q", got)
	}
	if got := New(ZH).T("check"); got != "检查" {
		t.Errorf("zh T(check) = %q", got)
	}
}

func TestT_Interpolation(t *testing.T) {
	tr := New(EN)
	got := tr.T("card_of", map[string]string{"current": "2", "total": "8"})
	if got != "Card 2 of 8" {
		t.Errorf("T(card_of) = %q", got)
	}
}

func TestT_MissingKeyFallsBack(t *testing.T) {
	if got := New(ZH).T("no_such_key"); got != "no_such_key" {
		t.Errorf("missing key = %q, want the key itself", got)
	}
}

func TestToggle(t *testing.T) {
	tr := New(EN).Toggle()
	if tr.Lang() != ZH {
		t.Errorf("Toggle from EN = %v, want ZH", tr.Lang())
	}
	if tr.Toggle().Lang() != EN {
		t.Error("Toggle from ZH should return EN")
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	for k := range en {
		if _, ok := zh[k]; !ok {
			t.Errorf("key %q missing from zh table", k)
		}
	}
	for k := range zh {
		if _, ok := en[k]; !ok {
			t.Errorf("key %q missing from en table", k)
		}
	}
}
