package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cyan/internal/loadui"
	"cyan/internal/modreg"
)

var buildCmd = &cobra.Command{
	Use:   "build [import...]",
	Short: "Drain a demo import graph through the module loader, showing progress",
	Long: "Chunk parsing is an external collaborator this module does not " +
		"implement; build instead drains the given import specs (or a fixed " +
		"set of demo specs when none are given) through modreg's loader to " +
		"exercise the FIFO worklist end to end.",
	RunE: runBuild,
}

func demoImports(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return []string{
		"std/io",
		"https://github.com/acme/widgets",
		"./sibling",
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	specs := demoImports(args)
	registry := modreg.NewRegistry()
	builtins := stringSet{"std/io": true}
	loader := modreg.NewLoader(registry, builtins, passthroughResolver{})
	for _, s := range specs {
		loader.Enqueue(s, ".")
	}

	events := make(chan loadui.Event, 16)
	doneCh := make(chan []error, 1)

	go func() {
		errs := loader.Drain(func(mod *modreg.Module, resolved modreg.Resolved) error {
			events <- loadui.Event{Module: resolved.Canonical, Status: loadui.StatusLoading}
			time.Sleep(150 * time.Millisecond) // visualize the fetch/parse latency a real loader would have
			events <- loadui.Event{Module: resolved.Canonical, Status: loadui.StatusDone}
			return nil
		})
		close(events)
		doneCh <- errs
	}()

	// Events carry each module's canonical spec, so the rows are keyed the
	// same way.
	labels := make([]string, len(specs))
	for i, s := range specs {
		labels[i] = s
		if r, err := modreg.ResolveSpec(s, ".", builtins, passthroughResolver{}); err == nil {
			labels[i] = r.Canonical
		}
	}
	model := loadui.New("loading imports", labels, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return err
	}

	if errs := <-doneCh; len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, "import error:", e)
		}
	}
	return nil
}

type stringSet map[string]bool

func (s stringSet) IsBuiltin(name string) bool { return s[name] }

// passthroughResolver resolves every relative import to the importing
// directory joined with the path as written, and always reports it as
// found, standing in for a real filesystem lookup the demo has no chunk
// tree to back.
type passthroughResolver struct{}

func (passthroughResolver) Realpath(importingChunkDir, path string) (string, bool) {
	return importingChunkDir + "/" + path, true
}
