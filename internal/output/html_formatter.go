package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"
	"github.com/ukpayroll/roi-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":         FormatCurrency,
	"pct":          FormatPercentage,
	"months":       FormatMonths,
	"option":       OptionLabel,
	"benefitLabel": func(b domain.BenefitType) string { return b.Label() },
	"value":        formatValue,
	"diff":         formatDiff,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// benefitLine is a breakdown row in AllBenefitTypes order
type benefitLine struct {
	Type    domain.BenefitType
	Savings domain.BenefitSavingsResult
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	var benefits []benefitLine
	if report.Savings != nil {
		for _, bt := range domain.AllBenefitTypes {
			if s, ok := report.Savings.BenefitBreakdown[bt]; ok {
				benefits = append(benefits, benefitLine{bt, s})
			}
		}
	}

	data := struct {
		*domain.Report
		Benefits       []benefitLine
		Rows           []metricRow
		Recommendation Recommendation
		Assumptions    []string
	}{report, benefits, comparisonRows(report), AnalyzeComparison(report), assumptionsFor(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
