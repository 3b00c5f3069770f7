package ui

import (
	"sort"
	"strings"
)

// RenderSuccess renders a success box with the given title and details.
// Details are printed in key order so output is stable.
func RenderSuccess(title string, details map[string]string) string {
	width := GetTerminalWidth()

	var lines []string
	lines = append(lines, "")
	lines = append(lines, SuccessTitleStyle.Render("   "+SuccessMarker+"  SUCCESS  -  "+title))
	lines = append(lines, "")

	for _, key := range sortedKeys(details) {
		keyStyled := ResultKeyStyle.Render("   " + key + ":")
		valueStyled := ResultValueStyle.Render(details[key])
		lines = append(lines, keyStyled+" "+valueStyled)
	}
	lines = append(lines, "")

	return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderFailure renders a failure box with the given title, error, and
// troubleshooting tips.
func RenderFailure(title string, err error, troubleshooting []string) string {
	width := GetTerminalWidth()

	var lines []string
	lines = append(lines, "")
	lines = append(lines, ErrorTitleStyle.Render("   "+FailureMarker+"  FAILED  -  "+title))
	lines = append(lines, "")

	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+err.Error()))
		lines = append(lines, "")
	}

	if len(troubleshooting) > 0 {
		var tips []string
		tips = append(tips, TroubleshootingTitleStyle.Render("Troubleshooting:"))
		tips = append(tips, "")
		for _, tip := range troubleshooting {
			tips = append(tips, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, TroubleshootingBoxStyle(width).Render(strings.Join(tips, "\n")))
		lines = append(lines, "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
