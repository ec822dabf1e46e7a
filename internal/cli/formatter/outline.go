package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// OutlineItem is one row of an outline: a numbered title with an optional
// badge.
type OutlineItem struct {
	Seq   int // 0 hides the number
	Title string
	Done  bool
	Next  bool // the item to work on next
	Badge string
}

// RenderOutline draws items as a rounded tree. Done items get a green ✔
// and a dimmed title, the Next item an amber ▶. Badges line up on the
// right.
func RenderOutline(items []OutlineItem) string {
	if len(items) == 0 {
		return ""
	}

	labels := make([]string, len(items))
	width := 0
	for i, item := range items {
		labels[i] = outlineLabel(item)
		width = max(width, lipgloss.Width(labels[i]))
	}

	t := tree.New().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(StyleDim.PaddingRight(1))
	for i, item := range items {
		row := labels[i]
		if item.Badge != "" {
			row += strings.Repeat(" ", width-lipgloss.Width(row)+2) + StyleDim.Render("[ "+item.Badge+" ]")
		}
		t.Child(row)
	}
	return t.String() + "\n"
}

func outlineLabel(item OutlineItem) string {
	title := item.Title
	if item.Done {
		title = StyleDim.Render(title)
	}
	if item.Seq > 0 {
		title = StyleDim.Render(fmt.Sprintf("%d. ", item.Seq)) + title
	}
	switch {
	case item.Done:
		return StyleGreen.Render("✔ ") + title
	case item.Next:
		return StyleYellowBold.Render("▶ ") + title
	}
	return "  " + title
}
