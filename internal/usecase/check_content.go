package usecase

import (
	"context"
	"fmt"

	"github.com/stanjdev/folio/internal/adapters/cli"
	"github.com/stanjdev/folio/internal/core"
)

type CheckInput struct {
	Pages []ExportPage
}

type CheckOutput struct {
	Checked int
	Report  *cli.Report
	Error   error
}

type CheckService struct {
	renderer *core.Renderer
	cli      CLIOutput
}

func NewCheckService(renderer *core.Renderer, cli CLIOutput) *CheckService {
	return &CheckService{
		renderer: renderer,
		cli:      cli,
	}
}

// CheckContent assembles and renders every page without writing anything.
// Invalid definitions are errors; images that resolve to an empty alt text
// are warnings.
func (s *CheckService) CheckContent(ctx context.Context, input CheckInput) CheckOutput {
	s.cli.PrintHeader("Folio Check")

	report := cli.NewReport(s.cli, "Check", "")
	report.SetPageCount(len(input.Pages))

	step := report.StartStep("Assembling and rendering documents")
	checked := 0
	for _, page := range input.Pages {
		if err := ctx.Err(); err != nil {
			report.EndStep(step, false, err.Error())
			return CheckOutput{Checked: checked, Report: report, Error: err}
		}
		checked++

		if page.Source == nil {
			report.AddError(page.Route, "no document source")
			continue
		}
		doc, err := page.Source.Document()
		if err != nil {
			report.AddError(page.Route, failureMessage(err), failureDetails(err)...)
			continue
		}
		tree, err := s.renderer.Render(doc)
		if err != nil {
			report.AddError(page.Route, failureMessage(err), failureDetails(err)...)
			continue
		}

		if missing := imagesWithoutAlt(tree); len(missing) > 0 {
			report.AddWarning(page.Route, "images without alt text", missing...)
		}
	}
	report.EndStep(step, len(report.Errors()) == 0, "")

	report.Render(s.cli.Writer())

	out := CheckOutput{Checked: checked, Report: report}
	if report.HasFailures() {
		out.Error = fmt.Errorf("check failed: %d invalid pages", len(report.Errors()))
	}
	return out
}

func imagesWithoutAlt(tree core.OutputTree) []string {
	var srcs []string
	tree.Walk(func(n core.Node) bool {
		if n.Block != core.KindFigure {
			return true
		}
		for _, img := range n.Elements("img") {
			if alt, _ := img.Attr("alt"); alt == "" {
				src, _ := img.Attr("src")
				srcs = append(srcs, src)
			}
		}
		return true
	})
	return srcs
}
