// Package content loads the portfolio copy and its translations.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultTOML string

// Content is the full set of portfolio copy.
type Content struct {
	Langs    map[string]Strings `toml:"langs"`
	Projects []Project          `toml:"projects"`
	Skills   []SkillCategory    `toml:"skills"`
	Links    []Link             `toml:"links"`
}

// Strings holds the translated copy of one language.
type Strings struct {
	Label   string  `toml:"label"`
	Nav     Nav     `toml:"nav"`
	Hero    Hero    `toml:"hero"`
	Work    Work    `toml:"work"`
	Skills  Skills  `toml:"skills"`
	About   About   `toml:"about"`
	Contact Contact `toml:"contact"`
}

type Nav struct {
	Home    string `toml:"home"`
	Work    string `toml:"work"`
	All     string `toml:"all"`
	Skills  string `toml:"skills"`
	About   string `toml:"about"`
	Contact string `toml:"contact"`
}

type Hero struct {
	Greeting string `toml:"greeting"`
	Followup string `toml:"followup"`
	Hint     string `toml:"hint"`
	Tagline  string `toml:"tagline"`
}

type Work struct {
	Title    string `toml:"title"`
	AllTitle string `toml:"all_title"`
	Subtitle string `toml:"subtitle"`
	Tech     string `toml:"tech"`
	Open     string `toml:"open"`
}

type Skills struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
}

type About struct {
	Title       string   `toml:"title"`
	Paragraphs  []string `toml:"paragraphs"`
	Quote       string   `toml:"quote"`
	QuoteAuthor string   `toml:"quote_author"`
}

type Contact struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Name     string `toml:"name"`
	Email    string `toml:"email"`
	Message  string `toml:"message"`
	Submit   string `toml:"submit"`
	Sent     string `toml:"sent"`
}

// Project is a showcased piece of work.
type Project struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Date        string   `toml:"date"`
	Link        string   `toml:"link"`
	Tech        []string `toml:"tech"`
	Featured    bool     `toml:"featured"`
}

// SkillCategory groups skills with a proficiency level in percent.
type SkillCategory struct {
	Title string  `toml:"title"`
	Items []Skill `toml:"items"`
}

type Skill struct {
	Name  string `toml:"name"`
	Level int    `toml:"level"`
}

// Link is a contact or social link.
type Link struct {
	Name string `toml:"name"`
	Href string `toml:"href"`
}

// Default returns the embedded content.
func Default() (*Content, error) {
	return Parse(defaultTOML)
}

// Load reads content from path. An empty path returns the embedded content.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes and validates content from TOML text.
func Parse(data string) (*Content, error) {
	var c Content
	meta, err := toml.Decode(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown content key %q", undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every language can drive the page.
func (c *Content) Validate() error {
	if len(c.Langs) == 0 {
		return fmt.Errorf("content defines no languages")
	}
	for _, code := range c.Languages() {
		s := c.Langs[code]
		if s.Hero.Greeting == "" {
			return fmt.Errorf("language %q has no hero greeting", code)
		}
		n := s.Nav
		if n.Home == "" || n.Work == "" || n.All == "" || n.Skills == "" || n.About == "" || n.Contact == "" {
			return fmt.Errorf("language %q is missing nav labels", code)
		}
	}
	for _, cat := range c.Skills {
		for _, item := range cat.Items {
			if item.Level < 0 || item.Level > 100 {
				return fmt.Errorf("skill %q level %d out of range", item.Name, item.Level)
			}
		}
	}
	return nil
}

// Languages returns the language codes in sorted order.
func (c *Content) Languages() []string {
	codes := make([]string, 0, len(c.Langs))
	for code := range c.Langs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Has reports whether code is a known language.
func (c *Content) Has(code string) bool {
	_, ok := c.Langs[code]
	return ok
}

// Lang returns the strings for code, falling back to the first language.
func (c *Content) Lang(code string) Strings {
	if s, ok := c.Langs[code]; ok {
		return s
	}
	return c.Langs[c.Languages()[0]]
}

// NextLang returns the language after code in sorted order, wrapping around.
func (c *Content) NextLang(code string) string {
	codes := c.Languages()
	for i, v := range codes {
		if v == code {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}

// Featured returns the featured projects, or all of them when none is marked.
func (c *Content) Featured() []Project {
	var out []Project
	for _, p := range c.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return c.Projects
	}
	return out
}
