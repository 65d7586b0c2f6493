package console

import (
	"fmt"
	"io"
	"strings"
)

// ANSI escape sequences for the operator terminal.
const (
	colorGreen  = "\033[92m"
	colorRed    = "\033[91m"
	colorYellow = "\033[93m"
	colorCyan   = "\033[96m"
	colorBold   = "\033[1m"
	colorReset  = "\033[0m"
)

// Renderer writes operator-facing output. It implements the evaluation
// observer contract, so pipeline progress is rendered without the core
// components printing anything themselves.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// FetchStarted announces an upstream lookup.
func (r *Renderer) FetchStarted(resource string, id int) {
	fmt.Fprintf(r.out, "%s\nlooking up %s id=%d...%s\n", colorCyan, resource, id, colorReset)
}

// FetchFailed reports a terminal upstream failure.
func (r *Renderer) FetchFailed(resource string, id int, err error) {
	fmt.Fprintf(r.out, "%s%s %d not found (%v)%s\n", colorRed, resource, id, err, colorReset)
}

// AssessmentProduced reports the score as soon as it is known; the decision
// itself is rendered with the full summary.
func (r *Renderer) AssessmentProduced(score int, _ bool) {
	fmt.Fprintf(r.out, "%srisk score: %d/100%s\n", colorYellow, score, colorReset)
}

// Header prints the program banner with the configured endpoints and threshold.
func (r *Renderer) Header(usersBase, productsBase string, threshold int) {
	line := strings.Repeat("=", 78)
	fmt.Fprintln(r.out, line)
	fmt.Fprintf(r.out, "%s%sAPI INTEGRATION VALIDATOR - ANTIFRAUD%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintln(r.out, line)
	fmt.Fprintf(r.out, "users    -> %s\n", usersBase)
	fmt.Fprintf(r.out, "products -> %s\n", productsBase)
	fmt.Fprintf(r.out, "blocking threshold = %d\n", threshold)
	fmt.Fprintln(r.out, line)
}

// Summary renders the full evaluation outcome.
func (r *Renderer) Summary(res summaryView) {
	fmt.Fprintf(r.out, "\n%s%suser:%s %s | %s\n", colorBold, colorGreen, colorReset, res.UserName, res.UserEmail)
	fmt.Fprintf(r.out, "%scity:%s %s\n", colorCyan, colorReset, res.UserCity)
	fmt.Fprintf(r.out, "\n%s%sproduct:%s %s\n", colorBold, colorGreen, colorReset, res.ProductTitle)
	fmt.Fprintf(r.out, "%sprice:%s %s | category: %s\n", colorCyan, colorReset, res.ProductPrice, orDash(res.ProductCategory))

	if len(res.Reasons) > 0 {
		fmt.Fprintf(r.out, "%sreasons: %s%s\n", colorYellow, strings.Join(res.Reasons, ", "), colorReset)
	}

	if res.Blocked {
		fmt.Fprintf(r.out, "%s\nintegration BLOCKED: risk above threshold (%d)%s\n", colorRed, res.Threshold, colorReset)
	} else {
		fmt.Fprintf(r.out, "%s\nintegration authorized: result saved%s\n", colorGreen, colorReset)
	}
}

// Warn prints an operator warning, e.g. for invalid input.
func (r *Renderer) Warn(msg string) {
	fmt.Fprintf(r.out, "%s%s%s\n", colorYellow, msg, colorReset)
}

// Goodbye prints the exit message.
func (r *Renderer) Goodbye() {
	fmt.Fprintf(r.out, "%s\nshutting down, goodbye%s\n", colorCyan, colorReset)
}

type summaryView struct {
	UserName        string
	UserEmail       string
	UserCity        string
	ProductTitle    string
	ProductPrice    string
	ProductCategory string
	Reasons         []string
	Threshold       int
	Blocked         bool
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
