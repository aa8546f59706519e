package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"nixlint/internal/lint"
	"nixlint/internal/lint/rules"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).PaddingLeft(4)
	inlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// renderExplanation styles headings and code blocks of an explanation.
// Without color the text is printed as is.
func renderExplanation(text string, colored bool) string {
	if !colored {
		return text
	}
	var (
		sb     strings.Builder
		inCode bool
		block  []string
	)
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "```"):
			if inCode {
				sb.WriteString(codeStyle.Render(strings.Join(block, "\n")))
				sb.WriteByte('\n')
				block = block[:0]
			}
			inCode = !inCode
		case inCode:
			block = append(block, line)
		case strings.HasPrefix(line, "## "):
			sb.WriteString(headingStyle.Render(strings.TrimPrefix(line, "## ")))
			sb.WriteByte('\n')
		default:
			sb.WriteString(renderInline(line))
			sb.WriteByte('\n')
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// renderInline подсвечивает `код` внутри строки.
func renderInline(line string) string {
	parts := strings.Split(line, "`")
	if len(parts)%2 == 0 {
		return line
	}
	for i := 1; i < len(parts); i += 2 {
		parts[i] = inlineStyle.Render(parts[i])
	}
	return strings.Join(parts, "")
}

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "explain CODE",
		Short:   "Show the explanation of a lint, e.g. W04",
		Args:    cobra.ExactArgs(1),
		Example: "  nixlint explain W04\n  nixlint explain 4",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := lint.ParseCode(args[0])
			if err != nil {
				return wrapErr(kindExplain, err)
			}
			text, err := lint.Explain(rules.All(), code)
			if err != nil {
				return wrapErr(kindExplain, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderExplanation(text, a.color))
			return err
		},
	}
}
