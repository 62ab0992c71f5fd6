// Package dagpath finds longest (maximum-weight) paths in directed acyclic
// graphs and builds critical-path schedules on top of them.
//
// 🚀 What is dagpath?
//
//	A small, dependency-light toolkit made of:
//		• graph:       the Digraph capability (Nodes + Incoming) and a generic List
//		• core:        thread-safe string-keyed graph with edge weights
//		• dfs:         topological sort and cycle witnesses
//		• longestpath: Solve, Length and Distances over any Digraph
//		• cpm:         earliest/latest start, slack, critical path and waves
//
// ✨ Why dagpath?
//
//   - Any representation works – implement two methods and solve
//   - Fallible weights – evaluators may fail, the first error wins
//   - Deterministic – ties follow Nodes() and Incoming() order
//   - Cycles are an outcome, not a panic – ok == false
//
// The dagpath command (cmd/dagpath) reads YAML, JSON or HCL graph documents
// and prints paths, schedules and cycles as text, JSON or YAML.
//
// Quick ASCII example:
//
//	    A──3──►B──5──►D
//	    │             ▲
//	    └──2──►C──1───┘
//
// The longest path is A → B → D with weight 8.
//
//	go get github.com/katalvlaran/dagpath
package dagpath
