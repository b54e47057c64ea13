package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/imageio"
	"github.com/katalvlaran/mazegraph/maze"
	"github.com/katalvlaran/mazegraph/store"
	"github.com/katalvlaran/mazegraph/tui"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mazesolve",
		Short: "Solve two-opening maze images",
		Long: `mazesolve reads a maze image (light pixels are corridors, dark pixels
are walls), reduces it to a graph of junctions and dead ends, and finds
the path between its two border openings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Bypass the solution cache")

	solveCmd := &cobra.Command{
		Use:   "solve <image>",
		Short: "Solve a maze and write the solution overlay",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSolve,
	}
	solveCmd.Flags().StringP("output", "o", "", "Output PNG (default: <image>.solved.png)")

	validateCmd := &cobra.Command{
		Use:   "validate <image>",
		Short: "Check that an image is a well-formed maze",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runValidate,
	}

	graphCmd := &cobra.Command{
		Use:   "graph <image>",
		Short: "Print the vertices and corridors of a maze",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runGraph,
	}
	graphCmd.Flags().Bool("json", false, "Print machine-readable graph")

	viewCmd := &cobra.Command{
		Use:   "view <image>",
		Short: "Show the solved maze in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runView,
	}

	rootCmd.AddCommand(solveCmd, validateCmd, graphCmd, viewCmd)

	return rootCmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".solved.png"
	}

	g, err := a.loadGrid(input)
	if err != nil {
		return err
	}
	began := time.Now()
	rec, cached, err := a.solve(cmd, g)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = imageio.Encode(f, g, rec.Path, imageio.EncodeOptions{
		Scale:  a.cfg.Output.Scale,
		Margin: a.cfg.Output.Margin,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	var size uint64
	if fi, statErr := os.Stat(output); statErr == nil {
		size = uint64(fi.Size())
	}
	a.log.Info("maze solved",
		"file", input, "cached", cached, "path_len", len(rec.Path),
		"vertices", rec.Vertices, "elapsed", time.Since(began))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: path of %s cells through %s vertices -> %s (%s)\n",
		input,
		humanize.Comma(int64(len(rec.Path))),
		humanize.Comma(int64(rec.Vertices)),
		output,
		humanize.Bytes(size))

	return nil
}

// solve returns the solution for g, from the cache when possible.
func (a *app) solve(cmd *cobra.Command, g *grid.Grid) (*store.Record, bool, error) {
	cache := a.openCache()
	if cache != nil {
		defer cache.Close()
	}
	fp := store.Fingerprint(g)

	if cache != nil {
		rec, err := cache.Get(fp)
		if err != nil {
			a.log.Warn("cache read failed", "fingerprint", fp, "err", err)
		} else if rec != nil {
			return rec, true, nil
		}
	}

	sol, err := maze.SolveGrid(g,
		maze.WithContext(cmd.Context()),
		maze.WithOnVisit(func(v maze.Vertex) error {
			a.log.Debug("vertex", "cell", v.Cell.String(), "kind", v.Kind.String())
			return nil
		}))
	if err != nil {
		return nil, false, err
	}
	rec := &store.Record{
		Width:    g.Width(),
		Height:   g.Height(),
		Path:     sol.Path,
		Vertices: sol.Vertices,
		Edges:    sol.Edges,
		SolvedAt: time.Now().UTC(),
	}
	if cache != nil {
		if err = cache.Put(fp, *rec); err != nil {
			a.log.Warn("cache write failed", "fingerprint", fp, "err", err)
		}
	}

	return rec, false, nil
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrid(args[0])
	if err != nil {
		return err
	}
	openings := g.Openings()
	regions := g.Regions()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %dx%d maze, openings %v, %d region(s)\n",
		args[0], g.Width(), g.Height(), openings, len(regions))
	if !g.Connected(openings[0], openings[1]) {
		a.log.Warn("openings are not connected", "file", args[0], "regions", len(regions))
	}

	return nil
}

type vertexDoc struct {
	Cell     grid.Cell `json:"cell"`
	Kind     string    `json:"kind"`
	Explored string    `json:"explored"`
}

type edgeDoc struct {
	From    grid.Cell `json:"from"`
	To      grid.Cell `json:"to"`
	Heading string    `json:"heading"`
	Length  int       `json:"length"`
}

type graphDoc struct {
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Start    grid.Cell   `json:"start"`
	Goal     grid.Cell   `json:"goal"`
	Vertices []vertexDoc `json:"vertices"`
	Edges    []edgeDoc   `json:"edges"`
}

func (a *app) runGraph(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	g, err := a.loadGrid(args[0])
	if err != nil {
		return err
	}
	gr, err := maze.Build(g, maze.WithContext(cmd.Context()))
	if err != nil {
		return err
	}

	doc := graphDoc{
		Width:  g.Width(),
		Height: g.Height(),
		Start:  gr.Start().Cell,
		Goal:   gr.Goal().Cell,
	}
	for _, v := range gr.Vertices() {
		doc.Vertices = append(doc.Vertices, vertexDoc{Cell: v.Cell, Kind: v.Kind.String(), Explored: v.Explored.String()})
	}
	for _, e := range gr.Edges() {
		doc.Edges = append(doc.Edges, edgeDoc{From: e.From, To: e.To, Heading: e.Heading.String(), Length: e.Length})
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	fmt.Fprintf(out, "%d vertices, %d edges (start %v, goal %v)\n",
		len(doc.Vertices), len(doc.Edges), doc.Start, doc.Goal)
	for _, v := range doc.Vertices {
		fmt.Fprintf(out, "vertex %v %s\n", v.Cell, v.Kind)
	}
	for _, e := range doc.Edges {
		fmt.Fprintf(out, "edge %v -%s-> %v len=%d\n", e.From, e.Heading, e.To, e.Length)
	}

	return nil
}

func (a *app) runView(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrid(args[0])
	if err != nil {
		return err
	}
	rec, _, err := a.solve(cmd, g)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	return tui.Run(screen, g, rec.Path)
}
