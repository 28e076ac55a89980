package output

import (
	"testing"
)

func TestColorSchemes(t *testing.T) {
	for name, scheme := range map[string]*ColorScheme{
		"default":  DefaultColorScheme(),
		"no-color": NoColorScheme(),
	} {
		if scheme.Title == nil {
			t.Errorf("%s: Title should not be nil", name)
		}
		if scheme.Method == nil {
			t.Errorf("%s: Method should not be nil", name)
		}
		if scheme.URL == nil {
			t.Errorf("%s: URL should not be nil", name)
		}
		if scheme.Label == nil {
			t.Errorf("%s: Label should not be nil", name)
		}
		if scheme.Value == nil {
			t.Errorf("%s: Value should not be nil", name)
		}
		if scheme.Success == nil {
			t.Errorf("%s: Success should not be nil", name)
		}
		if scheme.Error == nil {
			t.Errorf("%s: Error should not be nil", name)
		}
		if scheme.Highlight == nil {
			t.Errorf("%s: Highlight should not be nil", name)
		}
	}
}

func TestNoColorScheme_PlainText(t *testing.T) {
	scheme := NoColorScheme()
	if got := scheme.Error.Sprint("boom"); got != "boom" {
		t.Errorf("expected plain text, got %q", got)
	}
	if got := SchemeFor(true).Success.Sprint("ok"); got != "ok" {
		t.Errorf("expected plain text, got %q", got)
	}
}

func TestIcons(t *testing.T) {
	if SuccessIcon(true) != "✓" {
		t.Errorf("unexpected plain success icon: %q", SuccessIcon(true))
	}
	if ErrorIcon(true) != "✗" {
		t.Errorf("unexpected plain error icon: %q", ErrorIcon(true))
	}
	if SuccessIcon(false) == "" {
		t.Error("SuccessIcon should not be empty")
	}
	if ErrorIcon(false) == "" {
		t.Error("ErrorIcon should not be empty")
	}
}
