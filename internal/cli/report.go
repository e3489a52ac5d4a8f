package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/ian-shakespeare/minicc/internal/config"
	"github.com/ian-shakespeare/minicc/internal/frontend"
	"github.com/ian-shakespeare/minicc/pkg/array"
)

type section int

const (
	sectionTokens section = 1 << iota
	sectionParse
)

func (s section) has(other section) bool {
	return s&other != 0
}

type report struct {
	sections section
	tokens   []frontend.Token
	result   frontend.Result
}

func (r report) write(w io.Writer, cfg config.OutputConfig) error {
	if cfg.Format == "yaml" {
		return r.writeYAML(w)
	}
	return r.writeText(w, newStyles(w, cfg.Color))
}

func (r report) writeText(w io.Writer, st styles) error {
	var b strings.Builder

	if r.sections.has(sectionTokens) {
		fmt.Fprintln(&b, st.paint(st.header, "--- Lexical Analysis (Scanning) ---"))
		for _, token := range r.tokens {
			fmt.Fprintln(&b, token)
		}
	}

	if r.sections.has(sectionTokens) && r.sections.has(sectionParse) {
		fmt.Fprintf(&b, "\n%s\n\n", st.paint(st.rule, strings.Repeat("=", 30)))
	}

	if r.sections.has(sectionParse) {
		fmt.Fprintln(&b, st.paint(st.header, "--- Syntactic Analysis (Parsing) ---"))
		if r.result.Success() {
			fmt.Fprintln(&b, st.paint(st.success, "Parsing successful! No syntax errors found."))
		} else {
			fmt.Fprintln(&b, st.paint(st.failure, "Parsing failed! Syntax errors found:"))
			for _, message := range r.result.Messages() {
				fmt.Fprintf(&b, "- %s\n", message)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

type yamlToken struct {
	Category string `yaml:"category"`
	Lexeme   string `yaml:"lexeme"`
}

type yamlReport struct {
	Tokens  []yamlToken `yaml:"tokens,omitempty"`
	Success *bool       `yaml:"success,omitempty"`
	Errors  []string    `yaml:"errors,omitempty"`
}

func (r report) writeYAML(w io.Writer) error {
	var doc yamlReport

	if r.sections.has(sectionTokens) {
		doc.Tokens = array.Map(r.tokens, func(token frontend.Token) yamlToken {
			return yamlToken{Category: token.Type.String(), Lexeme: token.Value}
		})
	}
	if r.sections.has(sectionParse) {
		success := r.result.Success()
		doc.Success = &success
		doc.Errors = r.result.Messages()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

type styles struct {
	color   bool
	header  lipgloss.Style
	rule    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// newStyles binds the styles to w, so output that is not a terminal is left
// unstyled even when color is on.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		color:   color,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
	}
}

func (s styles) paint(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}
