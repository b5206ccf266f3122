// Package sugiyama computes layered, crossing-reduced layouts for directed graphs.
//
// # Overview
//
// The [Engine] takes an arbitrary node list and edge list and produces a
// [Result] holding a position for every node and a polyline route for every
// edge. The graph may contain cycles, self-loops, duplicate edges and
// disconnected components; none of these are errors.
//
// # Phases
//
// A single call to [Engine.Layout] runs the classic Sugiyama phases in order:
//
//  1. Cycle breaking: a depth-first traversal from each unvisited node (in
//     input order) classifies back edges and reverses them.
//  2. Layering: longest-path layering via Kahn's algorithm. Nodes left without
//     a layer are placed by a breadth-first fallback seeded at layer 0.
//  3. Subdivision: edges spanning more than one layer are replaced by chains
//     of dummy vertices so every working edge spans exactly one layer.
//  4. Crossing reduction: 24 alternating barycenter sweeps, each a stable
//     sort of one layer by the mean position of its neighbours.
//  5. Coordinates and routes: layers are centered against the widest one;
//     routes follow the dummy chains and are flipped back for reversed edges.
//
// All working state lives in the call. The engine itself only holds its
// [Options], so one engine may be shared between goroutines.
//
// # Usage
//
//	eng := sugiyama.Default[string]()
//	res := eng.Layout(
//	    []string{"app", "lib", "core"},
//	    []sugiyama.Edge[string]{{From: "app", To: "lib"}, {From: "lib", To: "core"}},
//	)
//	fmt.Println(res.Positions["core"]) // {0 260}
package sugiyama
