package report

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize/english"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/smykla-skalski/commitlint/internal/color"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

var ruleHeaders = []string{"", "Rule", "Level", "When", "Value"}

// Column indexes of the rules table.
const (
	colIcon = iota
	colName
	colLevel
	colWhen
	colValue
)

// LevelIcon returns a single-width character for a rule level.
// Emoji would break column alignment inside tables.
func LevelIcon(level config.Level) string {
	switch level {
	case config.LevelError:
		return "✗"
	case config.LevelWarning:
		return "!"
	case config.LevelOff:
		return "-"
	default:
		return "?"
	}
}

// StyledLevelIcon returns a LevelIcon colored by the theme.
func StyledLevelIcon(level config.Level, theme color.Theme) string {
	icon := LevelIcon(level)

	switch level {
	case config.LevelError:
		return theme.Error.Render(icon)
	case config.LevelWarning:
		return theme.Warning.Render(icon)
	default:
		return theme.Muted.Render(icon)
	}
}

// RulesTitle returns the heading printed above the rules table, e.g.
// "15 rules, 13 active".
func RulesTitle(rules config.RuleSet, theme color.Theme) string {
	active := 0

	for _, rule := range rules {
		if rule.IsActive() {
			active++
		}
	}

	return theme.Header.Render(english.Plural(len(rules), "rule", "") + ", " + strconv.Itoa(active) + " active")
}

// RenderRules builds a table of the rule table in rule-name order.
// Long values wrap within the last column when the terminal width is known.
func RenderRules(rules config.RuleSet, theme color.Theme) string {
	return renderRulesWidth(rules, theme, termWidth())
}

func renderRulesWidth(rules config.RuleSet, theme color.Theme, width int) string {
	if len(rules) == 0 {
		return ""
	}

	names := rules.Names()
	colWidths := calcColumnWidthsFor(width, names)

	var buf bytes.Buffer

	opts := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Row().Formatting().WithAutoWrap(tw.WrapNormal).Build().
			Build().Build()),
	}

	if colWidths != nil {
		opts = append(opts, tablewriter.WithColumnWidths(toCellWidths(colWidths)))
	}

	t := tablewriter.NewTable(&buf, opts...)

	t.Header(ruleHeaders)

	for _, name := range names {
		_ = t.Append(buildRuleRow(name, rules[name], colWidths, theme))
	}

	_ = t.Render()

	return dimBorders(strings.TrimRight(buf.String(), "\n"), theme)
}

func buildRuleRow(name string, rule *config.Rule, colWidths map[int]int, theme color.Theme) []string {
	level := rule.Level.String()

	switch rule.Level {
	case config.LevelError:
		level = theme.Error.Render(level)
	case config.LevelWarning:
		level = theme.Warning.Render(level)
	default:
		level = theme.Muted.Render(level)
	}

	row := []string{
		StyledLevelIcon(rule.Level, theme),
		name,
		level,
		rule.When.String(),
		RuleValue(rule),
	}

	if colWidths != nil {
		for i, cell := range row {
			if w, ok := colWidths[i]; ok {
				row[i] = padToWidth(cell, w)
			}
		}
	}

	return row
}

// RuleValue renders the parameter of a rule: tokens, limit, casing modes or character.
func RuleValue(rule *config.Rule) string {
	switch {
	case len(rule.Values) > 0:
		return strings.Join(rule.Tokens(), ", ")
	case rule.Limit != nil:
		return strconv.Itoa(*rule.Limit)
	case len(rule.Cases) > 0:
		cases := make([]string, 0, len(rule.Cases))
		for _, c := range rule.Cases {
			cases = append(cases, string(c))
		}

		return strings.Join(cases, ", ")
	case rule.Character != "":
		return strconv.Quote(rule.Character)
	default:
		return ""
	}
}

// toCellWidths converts content widths to cell widths (content + left/right
// padding) for WithColumnWidths.
func toCellWidths(contentWidths map[int]int) tw.Mapper[int, int] {
	const padW = 2 // " " left + " " right

	m := make(tw.Mapper[int, int], len(contentWidths))
	for col, w := range contentWidths {
		m[col] = w + padW
	}

	return m
}

// padToWidth right-pads s with spaces so its display width reaches w.
// ANSI escape codes are excluded from width calculation.
func padToWidth(s string, w int) string {
	visible := runewidth.StringWidth(ansi.Strip(s))
	if visible >= w {
		return s
	}

	return s + strings.Repeat(" ", w-visible)
}

// dimBorders applies the muted theme style to the box-drawing characters.
func dimBorders(s string, theme color.Theme) string {
	for _, ch := range []string{
		"╭", "╮", "╰", "╯", "│", "─", "┬", "┴", "├", "┤", "┼",
	} {
		s = strings.ReplaceAll(s, ch, theme.Muted.Render(ch))
	}

	return s
}

// calcColumnWidthsFor computes per-column content widths for a terminal of
// width w. Returns nil when the terminal is unknown or too narrow, leaving
// layout to tablewriter.
func calcColumnWidthsFor(w int, names []string) map[int]int {
	const (
		minTableW = 60
		iconW     = 1
		levelW    = len("warning")
		whenW     = len("always")
		minValueW = 16
	)

	if w < minTableW {
		return nil
	}

	nameW := len("Rule")
	for _, n := range names {
		nameW = max(nameW, runewidth.StringWidth(n))
	}

	// Each column has: 1 border char + 1 left pad + 1 right pad = 3.
	// Plus 1 trailing border on the right.
	const colOverhead = 3

	overhead := len(ruleHeaders)*colOverhead + 1
	remaining := w - overhead - iconW - nameW - levelW - whenW

	if remaining < minValueW {
		return nil
	}

	return map[int]int{
		colIcon:  iconW,
		colName:  nameW,
		colLevel: levelW,
		colWhen:  whenW,
		colValue: remaining,
	}
}

// termWidth returns the terminal width or 0 if not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(
		int(os.Stdout.Fd()), //nolint:gosec // fd fits int
	); err == nil && w > 0 {
		return w
	}

	return 0
}
