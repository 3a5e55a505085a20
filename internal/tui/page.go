package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
)

// page is the rendered document and the top row of every rendered section.
type page struct {
	body string
	tops map[string]int
}

// Sections implements sections.Registry.
func (p *page) Sections() []string {
	return model.PageSections
}

// Offset implements sections.Registry.
func (p *page) Offset(id string) (int, bool) {
	top, ok := p.tops[id]
	return top, ok
}

type pageInput struct {
	width      int
	heroHeight int
	// viewHeight is the viewport height; the page is padded so its last
	// section can scroll to the top. Zero leaves the page unpadded.
	viewHeight int
	hero       string
	strings    content.Strings
	content    *content.Content
	showAll    bool
	notice     string
	styles     styles
}

type block struct {
	id   string
	body string
}

func buildPage(in pageInput) *page {
	blocks := []block{
		{id: model.SectionHero, body: renderHeroBlock(in)},
		{id: model.SectionWork, body: renderWork(in)},
	}
	if in.showAll {
		blocks = append(blocks, block{id: model.SectionAllProjects, body: renderAllProjects(in)})
	}
	blocks = append(blocks,
		block{id: model.SectionSkills, body: renderSkills(in)},
		block{id: model.SectionAbout, body: renderAbout(in)},
		block{id: model.SectionContact, body: renderContact(in)},
	)

	p := &page{tops: make(map[string]int, len(blocks))}
	var parts []string
	row, last := 0, 0
	for _, b := range blocks {
		p.tops[b.id] = row
		last = row
		parts = append(parts, b.body)
		row += lineCount(b.body)
	}
	if tail := last + in.viewHeight - row; in.viewHeight > 0 && tail > 0 {
		parts = append(parts, strings.Repeat("\n", tail-1))
	}
	p.body = strings.Join(parts, "\n")
	return p
}

func renderHeroBlock(in pageInput) string {
	body := in.hero
	if tagline := in.strings.Hero.Tagline; tagline != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "", in.styles.muted.Render(tagline))
	}
	if in.heroHeight > lineCount(body) {
		body = lipgloss.PlaceVertical(in.heroHeight, lipgloss.Center, body)
	}
	return lipgloss.PlaceHorizontal(in.width, lipgloss.Center, body)
}

func sectionHeader(in pageInput, title, subtitle string) []string {
	// The first row of every section sits under the nav bar after an advance.
	lines := []string{"", in.styles.title.Render(title)}
	if subtitle != "" {
		lines = append(lines, wrapText(subtitle, contentWidth(in.width), in.styles.muted))
	}
	return append(lines, "")
}

func renderWork(in pageInput) string {
	s := in.strings.Work
	lines := sectionHeader(in, s.Title, s.Subtitle)
	width := contentWidth(in.width)
	onlyFeatured := len(in.content.Featured()) != len(in.content.Projects)
	for i, p := range in.content.Projects {
		if onlyFeatured && !p.Featured {
			continue
		}
		lines = append(lines, renderProjectCard(in, i, p, width))
	}
	if s.Open != "" {
		lines = append(lines, in.styles.muted.Render(s.Open))
	}
	return indent(in, strings.Join(lines, "\n"))
}

func renderProjectCard(in pageInput, index int, p content.Project, width int) string {
	inner := max(width-4, 10)
	head := in.styles.accent.Render(fmt.Sprintf("%d.", index+1)) + " " + in.styles.title.Render(p.Title)
	if p.Date != "" {
		head += in.styles.muted.Render(" · " + p.Date)
	}
	body := []string{head, wrapText(p.Description, inner, in.styles.text)}
	if len(p.Tech) > 0 {
		body = append(body, in.styles.tag.Render(strings.Join(p.Tech, " · ")))
	}
	return in.styles.card.Width(inner + 2).Render(strings.Join(body, "\n"))
}

func renderAllProjects(in pageInput) string {
	s := in.strings.Work
	lines := sectionHeader(in, s.AllTitle, "")
	for i, p := range in.content.Projects {
		row := in.styles.accent.Render(fmt.Sprintf("%2d.", i+1)) + " " + in.styles.text.Render(p.Title)
		if p.Date != "" {
			row += in.styles.muted.Render(" · " + p.Date)
		}
		lines = append(lines, row)
		if len(p.Tech) > 0 {
			lines = append(lines, "    "+in.styles.tag.Render(strings.Join(p.Tech, ", ")))
		}
	}
	return indent(in, strings.Join(lines, "\n"))
}

func renderSkills(in pageInput) string {
	s := in.strings.Skills
	lines := sectionHeader(in, s.Title, s.Subtitle)
	width := contentWidth(in.width)
	nameWidth := 0
	for _, cat := range in.content.Skills {
		for _, item := range cat.Items {
			nameWidth = max(nameWidth, lipgloss.Width(item.Name))
		}
	}
	bar := progress.New(
		progress.WithGradient(in.styles.gradient[0], in.styles.gradient[1]),
		progress.WithWidth(max(width-nameWidth-8, 10)),
	)
	for _, cat := range in.content.Skills {
		lines = append(lines, in.styles.accent.Render(cat.Title))
		for _, item := range cat.Items {
			name := padLine(in.styles.text.Render(item.Name), nameWidth)
			lines = append(lines, name+"  "+bar.ViewAs(float64(item.Level)/100))
		}
		lines = append(lines, "")
	}
	return indent(in, strings.Join(lines, "\n"))
}

func renderAbout(in pageInput) string {
	s := in.strings.About
	lines := sectionHeader(in, s.Title, "")
	width := contentWidth(in.width)
	for _, p := range s.Paragraphs {
		lines = append(lines, wrapText(p, width, in.styles.text), "")
	}
	if s.Quote != "" {
		quote := wrapText("“"+s.Quote+"”", width-2, in.styles.accent)
		lines = append(lines, "  "+strings.ReplaceAll(quote, "\n", "\n  "))
		if s.QuoteAuthor != "" {
			lines = append(lines, in.styles.muted.Render("  - "+s.QuoteAuthor))
		}
		lines = append(lines, "")
	}
	return indent(in, strings.Join(lines, "\n"))
}

func renderContact(in pageInput) string {
	s := in.strings.Contact
	lines := sectionHeader(in, s.Title, s.Subtitle)
	for _, link := range in.content.Links {
		lines = append(lines, in.styles.accent.Render(link.Name)+"  "+in.styles.muted.Render(link.Href))
	}
	if in.notice != "" {
		lines = append(lines, "", in.styles.accent.Render(in.notice))
	}
	lines = append(lines, "")
	return indent(in, strings.Join(lines, "\n"))
}

func indent(in pageInput, s string) string {
	left := max((in.width-contentWidth(in.width))/2, 0)
	if left == 0 {
		return s
	}
	pad := strings.Repeat(" ", left)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
