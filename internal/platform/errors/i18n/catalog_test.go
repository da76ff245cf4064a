package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if got := GetCatalog(""); got != base {
		t.Fatal("expected empty locale to use en-US catalog")
	}
	if got := GetCatalog("not a locale!"); got != base {
		t.Fatal("expected unparsable locale to use en-US catalog")
	}
}

func TestGetCatalogMatchesFrench(t *testing.T) {
	for _, locale := range []string{"fr", "fr-CA", "fr-FR"} {
		if got := GetCatalog(locale).Locale(); got != "fr-FR" {
			t.Fatalf("GetCatalog(%q) locale = %q, want fr-FR", locale, got)
		}
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestFormatBuiltInMessages(t *testing.T) {
	got := GetCatalog("fr").Format(CodeNotFound, map[string]string{"Path": "fr.json"})
	if got != "le fichier de traduction fr.json n'existe pas" {
		t.Fatalf("unexpected french message %q", got)
	}
	got = GetCatalog("en-US").Format(CodeNotObject, map[string]string{"Path": "en.json", "Key": "profile"})
	if got != "profile in en.json is not a JSON object" {
		t.Fatalf("unexpected english message %q", got)
	}
}
