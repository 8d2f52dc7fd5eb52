package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	tt "github.com/sablelang/sable/internal/types"
)

func TestGenerateFormattedReport(t *testing.T) {
	color.NoColor = true

	rewrites := []tt.Rewrite{
		{Rule: "tuple-extract", Function: "pick", Block: "entry", Old: 4, New: 1},
		{Rule: "upcast-downcast", Function: "pick", Block: "entry", Old: 6, New: 2},
		{Rule: "bool-literal", Function: "other", Block: "then", Old: 3, New: 1},
	}

	report := GenerateFormattedReport("lib/sample.sir", rewrites)

	assert.Contains(t, report, "lib/sample.sir")
	assert.Contains(t, report, "@pick")
	assert.Contains(t, report, "@other")
	assert.Contains(t, report, "tuple-extract: %4 -> %1 (in entry)")
	assert.Contains(t, report, "bool-literal: %3 -> %1 (in then)")

	// rewrites stay grouped under their function
	assert.Less(t, strings.Index(report, "@pick"), strings.Index(report, "@other"))
}

func TestGenerateFormattedReportEmpty(t *testing.T) {
	color.NoColor = true

	report := GenerateFormattedReport("lib/sample.sir", nil)
	assert.Contains(t, report, "no simplifications")
}

func TestSummary(t *testing.T) {
	color.NoColor = true

	assert.Equal(t, "3 simplification(s) across 2 file(s)", Summary(2, 3))
}
