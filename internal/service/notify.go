package service

import "fmt"

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short user-facing message emitted by a state change.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Notifier receives notices. Presentation decides how to show them.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

type noopNotifier struct{}

func (noopNotifier) Notify(Notice) {}

// milestoneDays is how many completions get their own notice before a
// single "multiple days" notice takes over.
const milestoneDays = 3

const (
	msgGenerateFailed = "Failed to generate curriculum. Please try again."
	msgMultipleDays   = "Multiple days completed! Great progress! 🎉"
	msgRestart        = "Ready for a new learning journey! 💪"
)

func generatedNotice(displayTopic string) Notice {
	return Notice{Level: NoticeSuccess, Message: fmt.Sprintf("%s curriculum generated successfully!", displayTopic)}
}

// completionNotice returns the notice for completing day when prevCompleted
// days were already complete, or false when nothing should be shown.
func completionNotice(day, prevCompleted int) (Notice, bool) {
	switch {
	case prevCompleted < milestoneDays:
		return Notice{Level: NoticeSuccess, Message: fmt.Sprintf("Day %d completed! 🎉", day)}, true
	case prevCompleted == milestoneDays:
		return Notice{Level: NoticeSuccess, Message: msgMultipleDays}, true
	default:
		return Notice{}, false
	}
}
