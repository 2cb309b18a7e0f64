package cli

import (
	"fmt"
	"io"
	"time"
)

type Step struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type colorizer interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

// Problem is one page-level error or warning in a Report.
type Problem struct {
	Page    string
	Message string
	Details []string
}

// Report collects the steps and problems of an export or check run and prints
// a summary. Clean runs get a short summary; runs with problems list them.
type Report struct {
	colors    colorizer
	verb      string
	steps     []Step
	warnings  []Problem
	errors    []Problem
	startTime time.Time
	now       func() time.Time
	pageCount int
	outputDir string
	failed    bool
}

// NewReport starts a report. verb names the run in the summary line, for
// example "Export" or "Check".
func NewReport(colors colorizer, verb, outputDir string) *Report {
	return &Report{
		colors:    colors,
		verb:      verb,
		startTime: time.Now(),
		now:       time.Now,
		outputDir: outputDir,
	}
}

func (r *Report) SetPageCount(count int) {
	r.pageCount = count
}

func (r *Report) StartStep(name string) int {
	r.steps = append(r.steps, Step{Name: name, StartTime: r.now()})
	return len(r.steps) - 1
}

func (r *Report) EndStep(step int, success bool, err string) {
	s := &r.steps[step]
	s.EndTime = r.now()
	s.Success = success
	s.Error = err
	if !success {
		r.failed = true
	}
}

func (r *Report) AddWarning(page, message string, details ...string) {
	r.warnings = append(r.warnings, Problem{Page: page, Message: message, Details: details})
}

func (r *Report) AddError(page, message string, details ...string) {
	r.errors = append(r.errors, Problem{Page: page, Message: message, Details: details})
	r.failed = true
}

func (r *Report) Errors() []Problem {
	return r.errors
}

func (r *Report) Warnings() []Problem {
	return r.warnings
}

func (r *Report) HasFailures() bool {
	return r.failed
}

func (r *Report) Render(w io.Writer) {
	duration := r.now().Sub(r.startTime)
	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(w, duration)
	} else {
		r.renderVerbose(w, duration)
	}
}

func (r *Report) renderMinimal(w io.Writer, duration time.Duration) {
	fmt.Fprintf(w, "  "+r.colors.Green("✓ ")+"%s\n", pages(r.pageCount))

	var failed []string
	for _, step := range r.steps {
		if !step.Success {
			failed = append(failed, "  "+r.colors.Red("✗ ")+step.Name)
		}
	}

	if len(failed) == 0 {
		fmt.Fprintf(w, "  "+r.colors.Green("✓ ")+"%s complete in %s\n", r.verb, formatDuration(duration))
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed steps:")
		for _, line := range failed {
			fmt.Fprintln(w, line)
		}
	}
	r.renderOutputDir(w)
}

func (r *Report) renderVerbose(w io.Writer, duration time.Duration) {
	fmt.Fprintf(w, "  %s\n", pages(r.pageCount))

	fmt.Fprintln(w)
	for _, step := range r.steps {
		status := r.colors.Green("✓")
		if !step.Success {
			status = r.colors.Red("✗")
		}
		fmt.Fprintf(w, "  %s %s\n", status, step.Name)
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  "+r.colors.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderProblems(w, r.colors.Red("✗"), r.errors)
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  "+r.colors.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderProblems(w, r.colors.Yellow("⚠"), r.warnings)
	}

	fmt.Fprintln(w)
	if len(r.errors) > 0 {
		fmt.Fprintf(w, "  %s\n", r.colors.Red(fmt.Sprintf("%s failed after %s", r.verb, formatDuration(duration))))
	} else {
		fmt.Fprintf(w, "  "+r.colors.Green("✓ ")+"%s complete in %s\n", r.verb, formatDuration(duration))
	}
	r.renderOutputDir(w)
}

func (r *Report) renderOutputDir(w io.Writer) {
	if r.outputDir != "" {
		fmt.Fprintf(w, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *Report) renderProblems(w io.Writer, marker string, problems []Problem) {
	for _, p := range problems {
		fmt.Fprintf(w, "  %s %s\n", marker, p.Page)
		fmt.Fprintf(w, "    %s\n", p.Message)
		for _, detail := range deduplicate(p.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func pages(n int) string {
	if n == 1 {
		return "1 page found"
	}
	return fmt.Sprintf("%d pages found", n)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicate collapses repeated details, keeping first-seen order.
func deduplicate(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int, len(items))
	var order []string
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if n := counts[item]; n > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, n))
		} else {
			result = append(result, item)
		}
	}
	return result
}
