package layout

import (
	"regexp"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText truncates text to maxWidth with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	textLen := utf8.RuneCountInString(text)

	if textLen <= maxWidth {
		return text, false
	}

	if maxWidth <= ellipsisLen {
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	truncLen := maxWidth - ellipsisLen
	return string(runes[:truncLen]) + cfg.Ellipsis, true
}

// CalculateModalWidth computes responsive modal width based on percentage of
// terminal width, clamped between MinWidth and MaxWidth.
func CalculateModalWidth(terminalWidth int, cfg ModalConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100

	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}

	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < 1 {
		return 1
	}

	return width
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if viewportHeight <= 0 || total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// CalculateVisibleListItems computes the start and end indices for a
// scrollable list. Returns (start, end) where items[start:end] is displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = start + maxVisible
	if end > totalItems {
		end = totalItems
	}

	return start, end
}
