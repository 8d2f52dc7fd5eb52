package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	tt "github.com/sablelang/sable/internal/types"
)

var (
	fileStyle    = color.New(color.FgCyan, color.Bold)
	funcStyle    = color.New(color.FgHiBlue, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	valueStyle   = color.New(color.FgGreen, color.Bold)
	messageStyle = color.New(color.FgWhite)
)

// GenerateFormattedReport renders the rewrites performed on one file as a
// human-readable, colored report.
func GenerateFormattedReport(path string, rewrites []tt.Rewrite) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", fileStyle.Sprint(path))
	if len(rewrites) == 0 {
		fmt.Fprintf(&b, "  %s\n", messageStyle.Sprint("no simplifications"))
		return b.String()
	}

	byFunc := make(map[string][]tt.Rewrite)
	var order []string
	for _, rw := range rewrites {
		if _, seen := byFunc[rw.Function]; !seen {
			order = append(order, rw.Function)
		}
		byFunc[rw.Function] = append(byFunc[rw.Function], rw)
	}

	for _, fn := range order {
		fmt.Fprintf(&b, "  %s\n", funcStyle.Sprintf("@%s", fn))
		for _, rw := range byFunc[fn] {
			fmt.Fprintf(&b, "    %s: %s %s %s %s\n",
				ruleStyle.Sprint(rw.Rule),
				valueStyle.Sprintf("%%%d", rw.Old),
				messageStyle.Sprint("->"),
				valueStyle.Sprintf("%%%d", rw.New),
				messageStyle.Sprintf("(in %s)", rw.Block),
			)
		}
	}
	return b.String()
}

// Summary renders a one-line count of rewrites across many files.
func Summary(fileCount, rewriteCount int) string {
	return messageStyle.Sprintf("%d simplification(s) across %d file(s)", rewriteCount, fileCount)
}
