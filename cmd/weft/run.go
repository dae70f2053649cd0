package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-weft/weft/cmd/weft/internal/config"
	"github.com/go-weft/weft/cmd/weft/internal/tui"
	"github.com/go-weft/weft/pkg/components"
	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/inspect"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Mount the demo tree and dispatch handler ids from stdin",
	Long: `Mounts the demo component tree into a container, prints the bound
output tree, then reads handler ids from stdin. Each id is dispatched
into the renderer and the tree is re-mounted and printed again.
Type "q" to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)

		dir, _ := cmd.Flags().GetString("dir")
		cfg, err := config.Resolve(dir)
		if err != nil {
			return fmt.Errorf("resolving config: %w", err)
		}

		inspectAddr, _ := cmd.Flags().GetString("inspect")
		if inspectAddr == "" {
			inspectAddr = cfg.InspectorAddr
		}

		root := core.Literal(dom.Container(map[string]string{"class": "root"}),
			core.Defer(components.NewApp, components.AppProps{Title: cfg.AppName}),
		)
		container := dom.NewContainer(map[string]string{"id": "app"})
		renderer := core.NewRenderer(root, container)
		renderer.Mount()

		var server *inspect.Server
		if inspectAddr != "" {
			server = inspect.NewServer(renderer)
			addr, err := server.Start(inspectAddr)
			if err != nil {
				return fmt.Errorf("starting inspector: %w", err)
			}
			defer server.Stop()
			fmt.Printf("inspector on http://%s/tree\n", addr)
		}

		printer := tui.NewPrinter(os.Stdout)
		printer.Print(container)

		fmt.Println("enter a handler id to dispatch, q to quit:")
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
				continue
			case line == "q" || line == "quit":
				if server != nil {
					server.Stop()
				}
				renderer.Unmount()
				return nil
			}

			id, err := strconv.ParseUint(line, 10, 64)
			if err != nil {
				fmt.Printf("not a handler id: %q\n", line)
				continue
			}
			// The inspector dispatches HTTP messages into the same
			// renderer, so stdin ids must go through its lock too.
			if server != nil {
				server.Dispatch(id)
			} else {
				renderer.OnMessage(id)
				renderer.Mount()
			}
			printer.Print(container)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("inspect", "", "Listen address for the HTTP tree inspector")
}
