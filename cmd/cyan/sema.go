package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cyan/internal/ast"
	"cyan/internal/diag"
	"cyan/internal/diagfmt"
	"cyan/internal/modreg"
	"cyan/internal/names"
	"cyan/internal/sema"
	"cyan/internal/source"
)

var semaCmd = &cobra.Command{
	Use:   "sema",
	Short: "Run the semantic analyzer over a small built-in demo chunk",
	Long: "Parsing .cys source is an external collaborator this module does not " +
		"implement; sema instead runs over a fixed demo chunk to exercise the " +
		"full traversal end to end.",
	RunE: runSema,
}

func buildDemoChunk() (*ast.File, *names.Interner) {
	interner := names.NewInterner()
	file := ast.NewFile(1, "demo.cys")

	aName := interner.Intern("a")
	zero := file.Exprs.Int(source.Span{}, 0)
	lhsA := file.Exprs.Ident(source.Span{}, aName)
	assignA := file.Stmts.Assign(source.Span{}, lhsA, zero)

	makeName := interner.Intern("make")
	one := file.Exprs.Int(source.Span{}, 1)
	retOne := file.Stmts.Return(source.Span{}, one, true)
	oneArgMake := file.Stmts.FuncDecl(source.Span{}, makeName, nil, []ast.StmtID{retOne}, true)

	xParam := ast.FuncParam{Name: interner.Intern("x")}
	two := file.Exprs.Int(source.Span{}, 2)
	retTwo := file.Stmts.Return(source.Span{}, two, true)
	twoArgMake := file.Stmts.FuncDecl(source.Span{}, makeName, []ast.FuncParam{xParam}, []ast.StmtID{retTwo}, true)

	file.Top = []ast.StmtID{assignA, oneArgMake, twoArgMake}
	return file, interner
}

func runSema(cmd *cobra.Command, args []string) error {
	bag := diag.NewBag()
	reporter := diag.NewDedupReporter(bag)
	file, fileInterner := buildDemoChunk()

	registry := modreg.NewRegistry()
	loader := modreg.NewLoader(registry, nil, nil)
	driver := sema.NewDriver(fileInterner, sema.NullVMHost{}, reporter, registry, loader)

	driver.BeginChunk(file, ".")
	if err := driver.AnalyzeChunk(); err != nil {
		return fmt.Errorf("analysis aborted: %w", err)
	}

	bag.Sort()
	asJSON, _ := cmd.Flags().GetBool("json")
	colorFlag, _ := cmd.Flags().GetString("color")
	mode := diagfmt.ColorAuto
	switch colorFlag {
	case "on":
		mode = diagfmt.ColorOn
	case "off":
		mode = diagfmt.ColorOff
	}

	if asJSON {
		return diagfmt.JSON(os.Stdout, bag.Items())
	}
	diagfmt.Pretty(os.Stdout, bag.Items(), mode)
	if bag.Len() == 0 {
		fmt.Println("no diagnostics")
	}
	return nil
}
