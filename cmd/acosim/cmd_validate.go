package main

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/acopath/config"
	"github.com/katalvlaran/acopath/dfs"
	"github.com/katalvlaran/acopath/dijkstra"
	"github.com/katalvlaran/acopath/flow"
	"github.com/katalvlaran/acopath/loader"
	"github.com/katalvlaran/acopath/prim_kruskal"
)

type validateResult struct {
	Graph    string   `json:"graph"`
	Nodes    int      `json:"nodes"`
	Edges    int      `json:"edges"`
	Start    int      `json:"start_node_id"`
	End      int      `json:"end_node_id"`
	Shortest float64  `json:"shortest_length"`
	Hops     int      `json:"shortest_hops"`
	Routes   int      `json:"routes"`
	Capped   bool     `json:"routes_capped"`
	Cycles   int      `json:"cycle_rank"`
	Disjoint int      `json:"disjoint_routes"`
	Cut      [][2]int `json:"bottleneck_edges"`
	Spanning float64  `json:"spanning_tree_length,omitempty"`
	Config   string   `json:"config,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <graph.json>",
		Short: "Check a graph file (and optionally a config file)",
		Long: `Check a graph file (and optionally a config file).

The graph must match the document schema, pass structural validation
(known endpoints, no self-loops, no dangling or zero-length edges) and have
its end node reachable from its start node.

Examples:
  acosim validate world.json
  acosim validate world.json --config sim.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			cfgPath, _ := cmd.Flags().GetString("config")

			g, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			length, path, err := dijkstra.ShortestPath(g, g.Start(), g.End())
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			limit, _ := cmd.Flags().GetInt("route-limit")
			routes, capped, err := dfs.CountRoutes(g, limit)
			if err != nil {
				return err
			}

			mf, err := flow.EdmondsKarp(cmd.Context(), g, g.Start(), g.End())
			if err != nil {
				return err
			}

			res := validateResult{
				Graph:    args[0],
				Nodes:    g.NodeCount(),
				Edges:    g.EdgeCount(),
				Start:    int(g.Start()),
				End:      int(g.End()),
				Shortest: length,
				Hops:     len(path) - 1,
				Routes:   routes,
				Capped:   capped,
				Cycles:   dfs.CycleRank(g),
				Disjoint: int(mf.Value),
			}
			for _, i := range mf.Cut {
				e := g.Edge(i)
				res.Cut = append(res.Cut, [2]int{int(e.From), int(e.To)})
			}
			if _, w, err := prim_kruskal.Kruskal(g); err == nil {
				res.Spanning = w
			} else if errors.Is(err, prim_kruskal.ErrDisconnected) {
				res.Warnings = append(res.Warnings, "some nodes are not connected to the nest: ants never visit them")
			} else {
				return err
			}
			if res.Cycles == 0 {
				res.Warnings = append(res.Warnings, "graph has no cycles: there is only one route to find")
			}
			if cfgPath != "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				res.Config = cfgPath
				if cfg.AntSpeed == 0 {
					res.Warnings = append(res.Warnings, "ant_speed is 0: ants will never leave the nest")
				}
				if cfg.AntSpeed > g.MaxEdgeLength() {
					res.Warnings = append(res.Warnings, "ant_speed exceeds the longest edge: every hop takes a single tick")
				}
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: ok (%d nodes, %d edges, start %d, end %d)\n",
				res.Graph, res.Nodes, res.Edges, res.Start, res.End)
			fmt.Fprintf(out, "shortest path: %.3f over %d edges\n", res.Shortest, res.Hops)
			more := ""
			if res.Capped {
				more = "+"
			}
			fmt.Fprintf(out, "simple routes: %d%s, cycle rank %d\n", res.Routes, more, res.Cycles)
			fmt.Fprintf(out, "disjoint routes: %d\n", res.Disjoint)
			if res.Spanning > 0 {
				fmt.Fprintf(out, "spanning tree: %.3f\n", res.Spanning)
			}
			if res.Disjoint == 1 {
				e := res.Cut[0]
				fmt.Fprintf(out, "bottleneck edge: %d-%d\n", e[0], e[1])
			}
			if res.Config != "" {
				fmt.Fprintf(out, "%s: ok\n", res.Config)
			}
			for _, w := range res.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().String("config", "", "Also validate this simulation config file")
	cmd.Flags().Int("route-limit", 10000, "Stop counting simple routes after this many")

	return cmd
}
