package web

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveThemeBase(t *testing.T) {
	cfg, err := ResolveTheme(DefaultManifest(), BaseVariant)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Theme != DefaultThemeName || cfg.Variant != "" {
		t.Fatalf("selection = %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.CSSVars["--accent"] != "#2563eb" {
		t.Fatalf("css vars not derived from tokens: %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/"+StylesheetName {
		t.Fatalf("stylesheet url = %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset url = %q", got)
	}
	if got := partialName(cfg, pageTemplate); got != "page.tmpl" {
		t.Fatalf("page partial = %q", got)
	}
}

func TestResolveThemeVariantOverridesTokens(t *testing.T) {
	cfg, err := ResolveTheme(DefaultManifest(), "Dark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Variant != "dark" {
		t.Fatalf("variant = %q", cfg.Variant)
	}
	if cfg.Tokens["surface"] != "#111827" || cfg.Tokens["danger"] != "#dc2626" {
		t.Fatalf("tokens not merged with variant: %v", cfg.Tokens)
	}
	if cfg.CSSVars["--surface"] != "#111827" {
		t.Fatalf("css vars not derived from variant tokens: %v", cfg.CSSVars)
	}
}

func TestResolveThemeErrors(t *testing.T) {
	if _, err := ResolveTheme(nil, ""); err == nil {
		t.Fatalf("expected error for nil manifest")
	}
	if _, err := ResolveTheme(DefaultManifest(), "sepia"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := cssVarsStyle(map[string]string{"--b": "2", "--a": "1"})
	if diff := cmp.Diff("--a: 1; --b: 2;", got); diff != "" {
		t.Fatalf("style mismatch (-want +got):\n%s", diff)
	}
	if cssVarsStyle(nil) != "" {
		t.Fatalf("expected empty style for no vars")
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := map[string]string{
		"Asha":                           "Asha",
		"Tom & Jerry":                    "Tom & Jerry",
		"<b>Go</b>":                      "Go",
		"<script>alert(1)</script>Rao":   "Rao",
		`a<img src=x onerror=alert(1)>b`: "ab",
	}
	for in, want := range cases {
		if got := sanitizeInput(in); got != want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", in, got, want)
		}
	}
}
