package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownStyles are the terminal styles for rendered Markdown.
type MarkdownStyles struct {
	Heading  lipgloss.Style
	Strong   lipgloss.Style
	Emphasis lipgloss.Style
	Code     lipgloss.Style
	Link     lipgloss.Style
	Hint     lipgloss.Style
	Bullet   lipgloss.Style
}

// DefaultMarkdownStyles matches the page palette.
func DefaultMarkdownStyles() MarkdownStyles {
	return MarkdownStyles{
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Strong:   lipgloss.NewStyle().Bold(true),
		Emphasis: lipgloss.NewStyle().Italic(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Underline(true),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}

var markdown = goldmark.New()

// RenderMarkdown parses src and renders it as styled terminal text wrapped to
// width columns. Width <= 0 disables wrapping.
func RenderMarkdown(src string, width int, st MarkdownStyles) string {
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))
	r := mdRenderer{src: source, st: st}

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if b := r.block(n, width); b != "" {
			blocks = append(blocks, b)
		}
	}
	return strings.Join(blocks, "\n\n")
}

type mdRenderer struct {
	src []byte
	st  MarkdownStyles
}

func (r *mdRenderer) block(n ast.Node, width int) string {
	switch n := n.(type) {
	case *ast.Heading:
		return r.wrap(r.st.Heading.Render(r.inline(n)), width)
	case *ast.Paragraph, *ast.TextBlock:
		return r.wrap(r.inline(n), width)
	case *ast.List:
		return r.list(n, width)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var b strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(r.src))
		}
		return r.st.Code.Render(strings.TrimRight(b.String(), "\n"))
	case *ast.Blockquote:
		var parts []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			parts = append(parts, r.block(c, width-2))
		}
		lines := strings.Split(strings.Join(parts, "\n\n"), "\n")
		for i, l := range lines {
			lines[i] = r.st.Hint.Render("│ ") + l
		}
		return strings.Join(lines, "\n")
	case *ast.ThematicBreak:
		return r.st.Hint.Render(strings.Repeat("─", max(width, 3)))
	case *ast.HTMLBlock:
		return ""
	default:
		return r.wrap(r.inline(n), width)
	}
}

func (r *mdRenderer) list(l *ast.List, width int) string {
	num := l.Start
	if num == 0 {
		num = 1
	}
	var items []string
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if l.IsOrdered() {
			marker = fmt.Sprintf("%d.", num)
			num++
		}
		inner := width - lipgloss.Width(marker) - 1
		var parts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			parts = append(parts, r.block(c, inner))
		}
		items = append(items, lipgloss.JoinHorizontal(lipgloss.Top,
			r.st.Bullet.Render(marker)+" ", strings.Join(parts, "\n")))
	}
	return strings.Join(items, "\n")
}

func (r *mdRenderer) inline(parent ast.Node) string {
	var b strings.Builder
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(r.src))
			switch {
			case c.HardLineBreak():
				b.WriteString("\n")
			case c.SoftLineBreak():
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.CodeSpan:
			b.WriteString(r.st.Code.Render(r.plain(c)))
		case *ast.Emphasis:
			if c.Level >= 2 {
				b.WriteString(r.st.Strong.Render(r.inline(c)))
			} else {
				b.WriteString(r.st.Emphasis.Render(r.inline(c)))
			}
		case *ast.Link:
			label := r.plain(c)
			dest := string(c.Destination)
			b.WriteString(r.st.Link.Render(label))
			if dest != "" && dest != label {
				b.WriteString(r.st.Hint.Render(" (" + dest + ")"))
			}
		case *ast.AutoLink:
			b.WriteString(r.st.Link.Render(string(c.URL(r.src))))
		case *ast.Image:
			b.WriteString(r.st.Hint.Render("[" + r.plain(c) + "]"))
		case *ast.RawHTML:
		default:
			b.WriteString(r.inline(c))
		}
	}
	return b.String()
}

// plain returns the unstyled text under n.
func (r *mdRenderer) plain(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(r.src))
			if c.SoftLineBreak() {
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(c.Value)
		default:
			b.WriteString(r.plain(c))
		}
	}
	return b.String()
}

func (r *mdRenderer) wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
