package ui

import "testing"

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyDownload); got != "Download" {
		t.Errorf("GetText(en) = %q", got)
	}

	l.SetLanguage("pt")
	if got := l.GetText(KeyDownload); got != "Baixar" {
		t.Errorf("GetText(pt) = %q", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("unknown language must be ignored, got %q", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system must map to en, got %q", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("GetText(missing) = %q", got)
	}
}

func TestLocalizationKeysComplete(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		for _, lang := range []string{"ru", "pt"} {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("language %s lacks key %s", lang, key)
			}
		}
	}
}

func TestLocalizationFormat(t *testing.T) {
	l := NewLocalization()
	if got := l.Format(KeyDownloadFailed, "403"); got != "Download failed: 403" {
		t.Errorf("Format() = %q", got)
	}
}
