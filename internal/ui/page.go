package ui

import (
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/ui/textutil"
	"folio/internal/widget"
)

// layout renders every section, records each one's line extent with the
// tracker and replaces the viewport content. The page is padded at the end
// so that any section can be scrolled to the top.
func (m *AppModel) layout() {
	if m.Page.Width <= 0 {
		return
	}
	m.Tracker.Forget()
	parts := make([]string, 0, len(Sections)+1)
	top := 0
	for _, s := range Sections {
		body := m.section(s)
		h := lipgloss.Height(body)
		m.Tracker.Measure(s.Name, widget.Extent{Top: top, Height: h})
		parts = append(parts, body)
		top += h
	}
	if last := lipgloss.Height(parts[len(parts)-1]); last < m.Page.Height {
		parts = append(parts, strings.Repeat("\n", m.Page.Height-last-1))
	}
	m.Page.SetContent(strings.Join(parts, "\n"))
}

// section returns the rendered section, memoized by width and the state the
// section depends on.
func (m *AppModel) section(s Section) string {
	key := s.Name + "/" + strconv.Itoa(m.Page.Width) + "/" + m.sectionState(s.Name)
	if v, ok := m.renders.Get(key); ok {
		return v.(string)
	}
	out := m.renderSection(s)
	m.renders.SetDefault(key, out)
	return out
}

func (m *AppModel) sectionState(name string) string {
	switch name {
	case "hero":
		return strconv.Itoa(m.Revealer.Cursor())
	case "gallery":
		return strconv.Itoa(m.Carousel.Index())
	case "experience":
		return strconv.Itoa(m.job)
	case "projects":
		return strconv.Itoa(m.project)
	}
	return ""
}

// contentWidth is the usable text width inside a section's padding.
func (m *AppModel) contentWidth() int {
	return max(min(m.Page.Width, 100)-4, 20)
}

// Section padding, in cells.
const (
	sectionPadY = 1
	sectionPadX = 2
)

func sectionHeading(s Section) string {
	if s.Name == "hero" {
		return ""
	}
	return Styles.Section.Render(strings.ToUpper(s.Label))
}

// bodyTop is the line, relative to the section's extent, where its body starts.
func bodyTop(s Section) int {
	if h := sectionHeading(s); h != "" {
		return sectionPadY + lipgloss.Height(h)
	}
	return sectionPadY
}

func (m *AppModel) renderSection(s Section) string {
	w := m.contentWidth()
	var body string
	switch s.Name {
	case "hero":
		body = m.renderHero(w)
	case "gallery":
		body = m.renderGallery(w)
	case "about":
		body = m.renderAbout(w)
	case "experience":
		body = m.renderExperience(w)
	case "skills":
		body = m.renderSkills(w)
	case "projects":
		body = m.renderProjects(w)
	case "contact":
		body = m.renderContact(w)
	}
	if h := sectionHeading(s); h != "" {
		body = h + "\n" + body
	}
	return lipgloss.NewStyle().Padding(sectionPadY, sectionPadX).Render(body)
}

func wrap(s string, w int) string {
	return lipgloss.NewStyle().Width(w).Render(s)
}

func bullet(s string, w int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, Styles.Selected.Render("• "), wrap(s, w-2))
}

func (m *AppModel) renderHero(w int) string {
	p := m.Portfolio.Profile
	name := lipgloss.JoinHorizontal(lipgloss.Center,
		Styles.Tag.Render(p.InitialsOrDefault()), "  ", Styles.Title.Render(p.Name))

	// The tagline keeps the height of the fully revealed text so the
	// sections below do not move while it types.
	full := m.Revealer.Text()
	if m.Revealer.CursorGlyph != "" {
		full += m.Revealer.CursorGlyph
	}
	height := lipgloss.Height(wrap(full, w))
	tagline := textutil.FitLines(wrap(m.Revealer.View(), w), height)

	lines := []string{name, "", Styles.Normal.Render(p.Role), tagline, ""}
	if p.Location != "" {
		lines = append(lines, Styles.Muted.Render("◆ "+p.Location))
	}
	if p.Photo != "" {
		lines = append(lines, Styles.Hint.Render("photo: "+path.Base(p.Photo)))
	}
	return strings.Join(lines, "\n")
}

func (m *AppModel) renderGallery(w int) string {
	hint := Styles.Hint.Render(textutil.Truncate("[ ] browse  1-9 jump  enter open", w))
	return lipgloss.JoinVertical(lipgloss.Left, m.Carousel.View(), "", hint)
}

func (m *AppModel) renderAbout(w int) string {
	p := m.Portfolio.Profile
	if p.About == "" {
		return Styles.Empty.Render("Nothing here yet.")
	}
	out := wrap(Styles.Normal.Render(p.About), w)
	if p.CV != "" {
		out += "\n\n" + Styles.Hint.Render("CV: "+path.Base(p.CV)+"  (SPC c d)")
	}
	return out
}

func (m *AppModel) renderExperience(w int) string {
	if len(m.Portfolio.Experience) == 0 {
		return Styles.Empty.Render("Nothing here yet.")
	}
	var entries []string
	for i, e := range m.Portfolio.Experience {
		var b strings.Builder
		marker := "  "
		if i == m.job {
			marker = "▸ "
		}
		b.WriteString(Styles.Selected.Render(marker + e.Position))
		b.WriteString(Styles.Muted.Render(" @ " + e.Company))
		b.WriteString("\n")
		meta := e.Period
		if e.Location != "" {
			meta += " · " + e.Location
		}
		b.WriteString(Styles.Hint.Render(meta))
		for _, r := range e.Responsibilities {
			b.WriteString("\n")
			b.WriteString(bullet(r, w))
		}
		if n := len(e.Images); n > 0 {
			hint := fmt.Sprintf("%d photos", n)
			if i == m.job {
				hint = "enter: " + hint
			}
			b.WriteString("\n")
			b.WriteString(Styles.Hint.Render(hint))
		}
		entries = append(entries, b.String())
	}
	if len(entries) > 1 {
		entries = append(entries, Styles.Hint.Render("n/p select  enter photos"))
	}
	return strings.Join(entries, "\n\n")
}

func (m *AppModel) renderSkills(w int) string {
	if len(m.Portfolio.Skills) == 0 {
		return Styles.Empty.Render("Nothing here yet.")
	}
	var cats []string
	for _, c := range m.Portfolio.Skills {
		lines := []string{Styles.Title.Render(c.Title)}
		for _, s := range c.Skills {
			line := Styles.Normal.Render(s.Name)
			if s.Description != "" {
				line += Styles.Hint.Render(": " + s.Description)
			}
			lines = append(lines, bullet(line, w))
		}
		cats = append(cats, strings.Join(lines, "\n"))
	}
	return strings.Join(cats, "\n\n")
}

func (m *AppModel) renderProjects(w int) string {
	if len(m.Portfolio.Projects) == 0 {
		return Styles.Empty.Render("Nothing here yet.")
	}
	var out []string
	for i, p := range m.Portfolio.Projects {
		if i == m.project {
			out = append(out, m.renderProjectDetail(p, w))
			continue
		}
		title := textutil.Truncate(p.Title, max(w-len(p.Date)-4, 8))
		out = append(out, "  "+Styles.Normal.Render(title)+Styles.Hint.Render("  "+p.Date))
	}
	out = append(out, Styles.Hint.Render("n/p select  i images  v video  o repo  enter open"))
	return strings.Join(out, "\n")
}

func (m *AppModel) renderProjectDetail(p content.Project, w int) string {
	inner := w - 2
	lines := []string{
		Styles.Selected.Render("▸ "+p.Title) + Styles.Hint.Render("  "+p.Date),
	}
	if p.Description != "" {
		lines = append(lines, wrap(Styles.Normal.Render(p.Description), inner))
	}
	if len(p.Technologies) > 0 {
		chips := make([]string, len(p.Technologies))
		for i, t := range p.Technologies {
			chips[i] = Styles.Tag.Render(t)
		}
		lines = append(lines, wrap(strings.Join(chips, " "), inner))
	}
	for _, h := range p.Highlights {
		lines = append(lines, bullet(h, inner))
	}
	if len(p.Metrics) > 0 {
		keys := make([]string, 0, len(p.Metrics))
		for k := range p.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		metrics := make([]string, len(keys))
		for i, k := range keys {
			metrics[i] = Styles.Metric.Render(p.Metrics[k]) + Styles.Hint.Render(" "+k)
		}
		lines = append(lines, wrap(strings.Join(metrics, "   "), inner))
	}
	if p.DetailedDescription != "" {
		lines = append(lines, "", content.RenderMarkdown(p.DetailedDescription, inner, markdownStyles()))
	}
	if media := mediaHint(p); media != "" {
		lines = append(lines, "", Styles.Hint.Render(media))
	}
	body := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		PaddingLeft(1).
		Render(body) + "\n"
}

func mediaHint(p content.Project) string {
	var parts []string
	if set, ok := p.ImageSet(); ok {
		parts = append(parts, fmt.Sprintf("i: %d images", set.Len()))
	}
	if _, ok := p.VideoSet(); ok {
		parts = append(parts, "v: demo video")
	}
	if p.GitHubURL != "" {
		parts = append(parts, "o: repository")
	}
	return strings.Join(parts, "  ")
}

func (m *AppModel) renderContact(w int) string {
	prof := m.Portfolio.Profile
	rows := []struct {
		key, label, value string
	}{
		{"g", "GitHub", prof.Links.GitHub},
		{"l", "LinkedIn", prof.Links.LinkedIn},
		{"m", "Mail", prof.Links.Email},
		{"p", "Phone", prof.Links.Phone},
		{"d", "CV", prof.CV},
	}
	var lines []string
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		line := Styles.Selected.Render("SPC c "+r.key) + "  " +
			Styles.Normal.Render(textutil.PadRightVisual(r.label, 9)) +
			Styles.Hint.Render(textutil.Truncate(r.value, max(w-20, 8)))
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return Styles.Empty.Render("No contact details.")
	}
	return strings.Join(lines, "\n")
}

// render composes the header, the page and the status line, or the lightbox
// when it is open.
func (m *AppModel) render() string {
	if m.Modal.IsOpen() {
		return m.Modal.View()
	}
	if m.width <= 0 {
		return "loading…"
	}

	body := m.Page.View()
	overlay := ""
	if m.KeyHandler != nil && m.KeyHandler.LeaderWaiting {
		overlay = RenderKeybindHelp(m.KeyHandler, m.Mode)
	} else if m.showHelp {
		overlay = RenderKeyHelp(m.KeyHandler.Registry, m.Mode, m.width)
	}
	if overlay != "" {
		lines := strings.Split(body, "\n")
		keep := max(len(lines)-lipgloss.Height(overlay), 0)
		body = strings.Join(append(lines[:keep], overlay), "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderStatus())
}

func (m *AppModel) renderHeader() string {
	items := []string{Styles.Title.Render(m.Portfolio.Profile.InitialsOrDefault()) + " "}
	for _, s := range Sections {
		if s.Name == m.active {
			items = append(items, Styles.NavOn.Render(s.Label))
		} else {
			items = append(items, Styles.Nav.Render(s.Label))
		}
	}
	nav := lipgloss.NewStyle().MaxWidth(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
	return Styles.Header.Width(m.width).Render(nav)
}

func (m *AppModel) renderStatus() string {
	pct := fmt.Sprintf(" %3.f%%", m.Page.ScrollPercent()*100)
	width := max(m.width-len(pct), 0)
	switch {
	case m.status != "" && m.statusErr:
		return Styles.Error.Render(textutil.PadRightVisual(m.status, width)) + Styles.Hint.Render(pct)
	case m.status != "":
		return Styles.Status.Render(textutil.PadRightVisual(m.status, width)) + Styles.Hint.Render(pct)
	default:
		hint := "SPC menu  tab sections  ? help  q quit"
		return Styles.Hint.Render(textutil.PadRightVisual(hint, width) + pct)
	}
}
