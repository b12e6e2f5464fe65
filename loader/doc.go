// Package loader reads and writes ACO worlds in the JSON graph format:
//
//	{
//	  "start_node_id": 0,
//	  "end_node_id": 2,
//	  "nodes": [{"id": 0, "x": 10, "y": 10}, ...],
//	  "edges": [{"from_node_id": 0, "to_node_id": 1}, ...]
//	}
//
// Loading runs three gates in order:
//
//  1. Shape: the document is checked against its JSON Schema (Schema) so missing
//     or mistyped keys are reported before anything is built.
//  2. Semantics: core.Build validates ids, self-loops, dangling references and
//     endpoint degrees (errors satisfy errors.Is with the core sentinels).
//  3. Connectivity: the end node must be reachable from the start node
//     (ErrEndUnreachable), otherwise no ant could ever complete a trip.
package loader
