package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/dustin/go-humanize/english"

	"github.com/bnema/winshell/internal/domain/entity"
	"github.com/bnema/winshell/internal/infrastructure/headless"
)

// WindowNode is one window of a rendered window tree.
type WindowNode struct {
	ID         entity.WindowID
	Browser    entity.BrowserID
	HasBrowser bool
	Size       entity.Size
	IsDevtools bool
	Closed     bool
	Children   []WindowNode
}

// SessionRenderer renders a simulated session.
type SessionRenderer struct {
	theme *Theme
}

// NewSessionRenderer creates a session renderer with the given theme.
func NewSessionRenderer(theme *Theme) *SessionRenderer {
	return &SessionRenderer{theme: theme}
}

// RenderTree renders the window forest, one tree per root.
func (r *SessionRenderer) RenderTree(title string, roots []WindowNode) string {
	var sb strings.Builder
	sb.WriteString("\n  " + r.theme.Title.Render(title) + "\n")

	if len(roots) == 0 {
		sb.WriteString("  " + r.theme.Subtle.Render("no windows") + "\n")
		return sb.String()
	}

	for _, root := range roots {
		t := r.subtree(root).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(lipgloss.NewStyle().Foreground(r.theme.Border).MarginRight(1)).
			RootStyle(r.theme.Highlight)
		sb.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(t.String()))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *SessionRenderer) subtree(n WindowNode) *tree.Tree {
	t := tree.Root(r.label(n))
	for _, child := range n.Children {
		if len(child.Children) == 0 {
			t.Child(r.label(child))
			continue
		}
		t.Child(r.subtree(child))
	}
	return t
}

func (r *SessionRenderer) label(n WindowNode) string {
	icon := IconWindow
	if n.IsDevtools {
		icon = IconBug
	}

	parts := []string{
		icon,
		n.ID.String(),
		r.theme.Subtle.Render(fmt.Sprintf("%dx%d", n.Size.Width, n.Size.Height)),
	}
	if n.HasBrowser {
		parts = append(parts, r.theme.Badge.Render(fmt.Sprintf("browser %d", n.Browser)))
	}
	if n.IsDevtools {
		parts = append(parts, r.theme.BadgeMuted.Render("devtools"))
	}
	if n.Closed {
		parts = append(parts, r.theme.ErrorStyle.Render("closed"))
	}
	return strings.Join(parts, " ")
}

// RenderJournal renders the host events in order.
func (r *SessionRenderer) RenderJournal(journal headless.Journal) string {
	var sb strings.Builder
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	sb.WriteString(fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconLogs), r.theme.Title.Render("Host events")))

	for _, e := range journal {
		kind := r.theme.Normal.Render(string(e.Kind))
		switch e.Kind {
		case headless.EventWindowClosed, headless.EventBrowserClosed:
			kind = r.theme.WarningStyle.Render(string(e.Kind))
		case headless.EventPopupDenied:
			kind = r.theme.ErrorStyle.Render(string(e.Kind))
		}

		line := fmt.Sprintf("  %s %s", r.theme.Subtle.Render(fmt.Sprintf("%3d", e.Seq)), kind)
		if e.Window != 0 {
			line += r.theme.Subtle.Render(fmt.Sprintf(" window=%d", e.Window))
		}
		if e.Browser != 0 {
			line += r.theme.Subtle.Render(fmt.Sprintf(" browser=%d", e.Browser))
		}
		if e.Detail != "" {
			line += " " + e.Detail
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// RenderSummary renders the final counts of a session.
func (r *SessionRenderer) RenderSummary(windows, browsers int) string {
	style := r.theme.SuccessStyle
	icon := IconCheck
	if windows > 0 || browsers > 0 {
		style = r.theme.WarningStyle
		icon = IconInfo
	}
	return fmt.Sprintf("\n  %s %s\n",
		style.Render(icon),
		style.Render(fmt.Sprintf("%s, %s left open",
			english.Plural(windows, "window", ""),
			english.Plural(browsers, "browser", ""),
		)),
	)
}
