package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// cardWidth is the wrap width for objective and assignment text.
const cardWidth = 72

// CurriculumView holds everything needed to render the active plan.
type CurriculumView struct {
	Topic       string
	Preferences *domain.Preferences
	Days        []domain.DayPlan
	Progress    domain.Progress
}

// FormatCurriculum renders the plan header with its outline, each day card
// and the progress summary.
func FormatCurriculum(v CurriculumView) string {
	var head strings.Builder
	if v.Preferences != nil {
		head.WriteString(FormatPreferences(*v.Preferences))
		head.WriteString("\n\n")
	}
	head.WriteString(FormatOutline(v.Days))

	title := "Curriculum"
	if v.Topic != "" {
		title = v.Topic + " curriculum"
	}

	var b strings.Builder
	b.WriteString(RenderBox(title, strings.TrimRight(head.String(), "\n")))
	b.WriteString("\n\n")
	for i, d := range v.Days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatDay(d))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(FormatProgress(v.Progress))
	return b.String()
}

// FormatPreferences renders the one-line summary of what a plan was built for.
func FormatPreferences(p domain.Preferences) string {
	parts := []string{
		StylePurple.Render(domain.DisplayTopic(p.Topic)),
		fmt.Sprintf("%s pace %s", capitalize(string(p.Pace)), Dim(fmt.Sprintf("(%d days)", p.Pace.DayCount()))),
		capitalize(string(p.Depth)),
	}
	styles := make([]string, len(p.Styles))
	for i, s := range p.Styles {
		styles[i] = s.Label()
	}
	parts = append(parts, strings.Join(styles, ", "))
	return strings.Join(parts, Dim(" · "))
}

// FormatOutline lists the days as a tree. The first unfinished day is
// marked as next.
func FormatOutline(days []domain.DayPlan) string {
	items := make([]OutlineItem, len(days))
	nextMarked := false
	for i, d := range days {
		items[i] = OutlineItem{
			Seq:   d.DayNumber,
			Title: d.Title,
			Done:  d.Completed,
			Badge: fmt.Sprintf("%d objectives", len(d.Objectives)),
		}
		if !d.Completed && !nextMarked {
			items[i].Next = true
			nextMarked = true
		}
	}
	return RenderOutline(items)
}

// FormatDay renders one day card: title with its check mark, objectives,
// resources and the assignment.
func FormatDay(d domain.DayPlan) string {
	var b strings.Builder

	heading := fmt.Sprintf("Day %d: %s", d.DayNumber, d.Title)
	if d.Completed {
		b.WriteString(CheckMark(true) + " " + Dim(heading) + "  " + StyleGreen.Render("Completed"))
	} else {
		b.WriteString(CheckMark(false) + " " + Bold(heading))
	}
	b.WriteString("\n")

	if len(d.Objectives) > 0 {
		b.WriteString("  " + StyleHeader.Render("Objectives") + "\n")
		for _, o := range d.Objectives {
			b.WriteString(bulleted(o) + "\n")
		}
	}

	if len(d.Resources) > 0 {
		b.WriteString("  " + StyleHeader.Render("Resources") + "\n")
		for _, r := range d.Resources {
			line := StyleBlue.Render("["+r.Kind+"]") + " " + r.Title
			if r.URL != "" && r.URL != r.Title {
				line += "  " + Dim(r.URL)
			}
			b.WriteString("    • " + line + "\n")
		}
	}

	if d.Assignment != "" {
		b.WriteString("  " + StyleHeader.Render("Assignment") + "\n")
		b.WriteString(indentWrapped(d.Assignment, 4, cardWidth) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatProgress renders the bar, the "N of M days completed" line and the
// streak label once anything is done.
func FormatProgress(p domain.Progress) string {
	var b strings.Builder
	b.WriteString(Header("Your progress"))
	b.WriteString("\n")
	b.WriteString(RenderCurriculumProgress(p, DefaultBarWidth))
	b.WriteString("  ")
	b.WriteString(progressStatus(p))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d of %d days completed", CheckMark(p.Completed > 0), p.Completed, p.Total))
	if streak := p.StreakLabel(); streak != "" {
		b.WriteString("  " + StyleYellow.Render(streak+" 🔥"))
	}
	b.WriteString("\n")
	b.WriteString(Dim(encouragement(p)))
	return b.String()
}

// FormatCompletionBanner is shown once every day of the plan is done.
func FormatCompletionBanner(topic string) string {
	msg := "You've completed your entire curriculum."
	if topic != "" {
		msg = fmt.Sprintf("You've completed your entire %s curriculum.", topic)
	}
	body := StyleGreen.Bold(true).Render("🎉 Congratulations!") + "\n\n" +
		msg + "\n" +
		Dim("Ready to explore more learning paths? Run `pathwise restart` or `pathwise generate`.")
	return RenderBox("", body)
}

// HistoryRow is one stored curriculum in the history list.
type HistoryRow struct {
	ID        string
	Topic     string
	Pace      domain.Pace
	Depth     domain.Depth
	Source    string
	Active    bool
	Completed int
	Total     int
	CreatedAt time.Time
}

// FormatHistory renders stored curricula, newest first, inside a box.
func FormatHistory(rows []HistoryRow, now time.Time) string {
	if len(rows) == 0 {
		return Dim("No curricula yet. Run `pathwise generate` to create one.")
	}

	headers := []string{"ID", "TOPIC", "PACE", "DEPTH", "SOURCE", "PROGRESS", "CREATED", ""}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		active := ""
		if r.Active {
			active = StyleGreen.Render("● active")
		}
		p := domain.NewProgress(r.Completed, r.Total)
		table = append(table, []string{
			TruncID(r.ID),
			Bold(r.Topic),
			string(r.Pace),
			string(r.Depth),
			Dim(r.Source),
			fmt.Sprintf("%s %d/%d", RenderCompactBar(p.Fraction(), 8, !r.Active), r.Completed, r.Total),
			HumanTimestampFrom(r.CreatedAt, now),
			active,
		})
	}
	return RenderBox("History", strings.TrimRight(RenderTable(headers, table), "\n"))
}

func progressStatus(p domain.Progress) string {
	if p.IsComplete() {
		return StyleGreen.Render("Complete")
	}
	return StyleBlue.Render("In Progress")
}

func encouragement(p domain.Progress) string {
	switch {
	case p.Completed == 0:
		return "Let's get started on your learning journey!"
	case p.IsComplete():
		return "Amazing work! You've completed everything!"
	default:
		return "Keep going, you're doing great!"
	}
}

func bulleted(text string) string {
	wrapped := indentWrapped(text, 6, cardWidth-6)
	if len(wrapped) < 6 {
		return "    • " + strings.TrimSpace(wrapped)
	}
	return "    • " + wrapped[6:]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatNotice renders a state-change notice as a single line.
func FormatNotice(isError bool, message string) string {
	if isError {
		return StyleRed.Render("✖ " + message)
	}
	return StyleGreen.Render("✔ " + message)
}
