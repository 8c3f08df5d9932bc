package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/labelkit/labelkit"
	"github.com/labelkit/labelkit/internal/hierarchy"
	"github.com/labelkit/labelkit/internal/input"
	"github.com/labelkit/labelkit/internal/parser"
)

func main() {
	var (
		inputFile     string
		outputFile    string
		templateID    string
		pageName      string
		sectionTitle  string
		strapline     string
		marginCm      float64
		twoColumns    bool
		expandCodes   bool
		listTemplates bool
		verbose       bool
	)

	flag.StringVar(&inputFile, "input", "", "Input file path (.json, .md, .html, .txt)")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.StringVar(&templateID, "template", "classic", "Visual template identifier")
	flag.StringVar(&pageName, "page", "A4", "Page size (A3, A4, A5, Letter, Legal)")
	flag.StringVar(&sectionTitle, "section", "", "Section title shown above the rows")
	flag.StringVar(&strapline, "strapline", "", "Institutional strapline")
	flag.Float64Var(&marginCm, "margin", 1.6, "Page margin in centimeters")
	flag.BoolVar(&twoColumns, "two-columns", true, "Allow automatic two-column layout")
	flag.BoolVar(&expandCodes, "expand-codes", false, "Expand bare child codes under their parent code")
	flag.BoolVar(&listTemplates, "list-templates", false, "List available templates and exit")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if listTemplates {
		fmt.Println(strings.Join(labelkit.Templates(), "\n"))
		return
	}

	if inputFile == "" {
		fmt.Println("Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	src, err := input.NewLoader().Load(inputFile)
	if err != nil {
		fmt.Printf("Error loading input: %v\n", err)
		os.Exit(1)
	}

	p, err := parser.ForFile(src.Name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	doc, err := p.Parse(bytes.NewReader(src.Data))
	if err != nil {
		fmt.Printf("Error parsing %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	if outputFile == "" {
		outputFile = strings.TrimSuffix(src.Name, filepath.Ext(src.Name)) + ".pdf"
	}

	options := labelkit.DefaultOptions()
	labelkit.WithTemplate(templateID)(&options)
	labelkit.WithPageSizeName(pageName)(&options)
	labelkit.WithMarginCm(marginCm)(&options)
	labelkit.WithSectionTitle(sectionTitle)(&options)
	labelkit.WithStrapline(strapline)(&options)
	labelkit.WithAutoTwoColumns(twoColumns)(&options)
	if expandCodes {
		labelkit.WithChildCodeExpansion(".")(&options)
	}
	labelkit.WithDebug(verbose)(&options)

	exporter := labelkit.NewWithOptions(options)
	if err := exporter.ExportToFile(toDocument(doc), outputFile); err != nil {
		fmt.Printf("Error exporting file: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Successfully exported %s to %s\n", inputFile, outputFile)
	}
}

func toDocument(doc *hierarchy.Document) labelkit.Document {
	return labelkit.Document{
		Title:          doc.Title,
		CabinetSection: doc.CabinetSection,
		Hierarchy:      toNodes(doc.Roots),
	}
}

func toNodes(nodes []*hierarchy.Node) []labelkit.Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]labelkit.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, labelkit.Node{
			Code:     n.Code,
			Name:     n.Name,
			Children: toNodes(n.Children),
		})
	}
	return out
}
