package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultContent(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	if got := strings.Join(c.Languages(), ","); got != "en,sv" {
		t.Fatalf("unexpected languages %q", got)
	}
	if c.Lang("en").Hero.Greeting != "Hi,\nI'm\nJonathan." {
		t.Fatalf("unexpected en greeting %q", c.Lang("en").Hero.Greeting)
	}
	if c.Lang("sv").Nav.Home != "Hem" {
		t.Fatalf("unexpected sv nav %q", c.Lang("sv").Nav.Home)
	}
	if len(c.Projects) != 4 || len(c.Featured()) != 3 {
		t.Fatalf("unexpected projects %d featured %d", len(c.Projects), len(c.Featured()))
	}
	if len(c.Skills) != 3 || len(c.Links) != 3 {
		t.Fatalf("unexpected skills %d links %d", len(c.Skills), len(c.Links))
	}
}

func TestLangFallbackAndCycle(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	if c.Lang("de").Label != "English" {
		t.Fatalf("expected fallback to first language")
	}
	if c.NextLang("en") != "sv" || c.NextLang("sv") != "en" || c.NextLang("de") != "en" {
		t.Fatalf("unexpected language cycle")
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	body := `
[langs.en]
label = "English"
[langs.en.nav]
home = "Home"
work = "Work"
all = "All"
skills = "Skills"
about = "About"
contact = "Contact"
[langs.en.hero]
greeting = "Hello."
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	if c.Lang("en").Hero.Greeting != "Hello." || len(c.Projects) != 0 {
		t.Fatalf("unexpected content %+v", c)
	}
}

func TestValidateRejectsMissingGreeting(t *testing.T) {
	_, err := Parse(`
[langs.en.nav]
home = "Home"
work = "Work"
all = "All"
skills = "Skills"
about = "About"
contact = "Contact"
`)
	if err == nil || !strings.Contains(err.Error(), "greeting") {
		t.Fatalf("expected greeting error, got %v", err)
	}
}

func TestValidateRejectsBadLevel(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	c.Skills[0].Items[0].Level = 120
	if err := c.Validate(); err == nil {
		t.Fatalf("expected level error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected read error")
	}
}
