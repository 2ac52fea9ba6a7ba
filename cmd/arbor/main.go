// Command arbor builds the demo UI scene and either prints its resolved node
// tree or runs it in a window.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phanxgames/arbor"
)

var (
	cfgFile string
	frames  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("[arbor]"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "arbor",
		Short:         "Scene graph and UI layout demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	root.AddCommand(newTreeCmd(), newRunCmd())
	return root
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Tick the demo scene headless and print the resolved node tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDirector()
			if err != nil {
				return err
			}
			defer d.Close()
			s, err := buildDemo(d)
			if err != nil {
				return err
			}
			d.RunScene(s)
			for i := 0; i < frames; i++ {
				d.Tick(1 / float64(d.Config().TPS))
			}
			printTree(cmd.OutOrStdout(), &s.Node, 0)
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 1, "number of ticks before printing")
	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the demo scene in a window with the debug overlay",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDirector()
			if err != nil {
				return err
			}
			s, err := buildDemo(d)
			if err != nil {
				return err
			}
			d.RunScene(s)
			return arbor.Run(d)
		},
	}
}

func newDirector() (*arbor.Director, error) {
	cfg, err := arbor.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	return arbor.NewDirector(cfg), nil
}

func printTree(w io.Writer, n *arbor.Node, depth int) {
	pos := n.Position()
	size := n.ContentSize()
	name := color.CyanString(n.Name())
	if !n.ActiveInHierarchy() {
		name = color.HiBlackString(n.Name())
	}
	fmt.Fprintf(w, "%s%s %s %s\n",
		strings.Repeat("  ", depth),
		name,
		fmt.Sprintf("pos=(%.1f, %.1f)", pos.X, pos.Y),
		color.YellowString("size=%.1fx%.1f", size.Width, size.Height),
	)
	for _, c := range n.Children() {
		printTree(w, c, depth+1)
	}
}
