package pricing

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Formatter formats cost estimates for display.
type Formatter struct{}

// NewFormatter creates a new formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format returns a detailed, formatted cost estimate for terminal display.
func (f *Formatter) Format(e *Estimate) string {
	var sb strings.Builder

	width := 61

	// Header
	sb.WriteString(boxTop(width))
	sb.WriteString(boxLine("mailstead Cost Estimate", width))
	sb.WriteString(boxLine(fmt.Sprintf("Environment: %s", e.Environment), width))
	sb.WriteString(boxSep(width))

	// Line items
	sb.WriteString(boxEmpty(width))
	for _, item := range e.Items {
		line := fmt.Sprintf("%-20s %4d x %-6s %8.2f/mo",
			item.Description, item.Quantity, item.Unit, item.Total)
		sb.WriteString(boxLine(line, width))
	}

	// Totals
	sb.WriteString(boxDash(width))
	sb.WriteString(boxLine(fmt.Sprintf("%-34s %8.2f/mo", "Total", e.Total), width))
	sb.WriteString(boxEmpty(width))
	sb.WriteString(boxLine(fmt.Sprintf("Annual estimate: %.2f", e.AnnualCost()), width))
	sb.WriteString(boxEmpty(width))
	sb.WriteString(boxBottom(width))

	// Footer
	sb.WriteString("\n  Approximate on-demand pricing (USD, us-east-1)\n")

	return sb.String()
}

// FormatCompact returns a single-line cost summary.
func (f *Formatter) FormatCompact(e *Estimate) string {
	return fmt.Sprintf("%s: %.2f/mo (%.2f/yr)",
		e.Environment, e.Total, e.AnnualCost())
}

// FormatJSON returns the estimate as JSON.
func (f *Formatter) FormatJSON(e *Estimate) string {
	type jsonItem struct {
		Description string  `json:"description"`
		Quantity    int     `json:"quantity"`
		Unit        string  `json:"unit"`
		UnitPrice   float64 `json:"unit_price"`
		Total       float64 `json:"total"`
	}
	type jsonEstimate struct {
		Environment string     `json:"environment"`
		Items       []jsonItem `json:"items"`
		Total       float64    `json:"total"`
		Annual      float64    `json:"annual"`
	}

	je := jsonEstimate{
		Environment: string(e.Environment),
		Total:       e.Total,
		Annual:      e.AnnualCost(),
	}
	for _, item := range e.Items {
		je.Items = append(je.Items, jsonItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	data, _ := json.MarshalIndent(je, "", "  ")
	return string(data)
}

// Helper functions for box drawing

func boxTop(width int) string {
	return fmt.Sprintf("┌%s┐\n", strings.Repeat("─", width-2))
}

func boxBottom(width int) string {
	return fmt.Sprintf("└%s┘\n", strings.Repeat("─", width-2))
}

func boxSep(width int) string {
	return fmt.Sprintf("├%s┤\n", strings.Repeat("─", width-2))
}

func boxDash(width int) string {
	return fmt.Sprintf("│ %s │\n", strings.Repeat("─", width-4))
}

func boxLine(text string, width int) string {
	padding := width - 4 - len(text)
	if padding < 0 {
		padding = 0
		text = text[:width-4]
	}
	return fmt.Sprintf("│ %s%s │\n", text, strings.Repeat(" ", padding))
}

func boxEmpty(width int) string {
	return fmt.Sprintf("│%s│\n", strings.Repeat(" ", width-2))
}
