package gateway

import (
	"fmt"
	"strings"
)

const curriculumSystemPrompt = `You are a curriculum generator. You design short, practical, day-by-day learning plans.

You MUST output ONLY a JSON array, no prose and no markdown. Each element describes one day:
[
  {
    "day": 1,
    "topic": "Intro to <topic>",
    "objectives": ["Understand basics", "Learn tools"],
    "resources": ["https://example.com/1", "https://example.com/2"],
    "assignment": "Summarize what you learned"
  }
]

Rules:
- "day" starts at 1 and increases by 1 with no gaps.
- Every day has a non-empty "topic" and at least one objective.
- "resources" are URLs or short resource names matching the learner's preferred styles.
- Match the difficulty of every objective and assignment to the requested depth.`

// buildPrompt embeds the learner's preferences into the user prompt.
func buildPrompt(req PlanRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a personalized %d-day learning plan:\n", req.DayCount())
	fmt.Fprintf(&b, "- Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "- Pace: %s\n", req.Pace)
	fmt.Fprintf(&b, "- Style(s): %s\n", strings.Join(req.Style, ", "))
	fmt.Fprintf(&b, "- Depth: %s\n", req.Depth)
	if req.StartDate != "" {
		fmt.Fprintf(&b, "- Start date: %s\n", req.StartDate)
	}
	return b.String()
}
