// Package builder generates deterministic synthetic social datasets (node
// rows plus directed edges) in the shape the ingest package reads. The
// datasets feed tests, benchmarks and the `socialreach generate` command.
//
// The package offers the following key components:
//
//   - One orchestrator: BuildDataset(bopts, cons...) resolves options and runs
//     constructors in order over a shared dataset.
//   - Topology constructors:
//     – Path(n):            0→1→…→n-1.
//     – Cycle(n):           Path plus n-1→0.
//     – Star(n):            hub 0 follows every leaf 1..n-1 (hub is the most popular).
//     – RandomSparse(n, p): each ordered pair i≠j kept with probability p.
//   - Naming schemes (NameFn):
//     – DefaultNameFn:      "Person 0", "Person 1", …
//     – ClubNameFn:         "Club A", …, "Club Z", "Club AA", …
//     – WithDuplicateNames: cycles through k base names to force collisions.
//   - Options: WithSeed, WithRand, WithNameScheme, WithDuplicateNames, WithIDOffset.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical datasets.
//   - Nodes are emitted once per id, in first-added order; composing
//     constructors over the same index range reuses nodes.
//   - Constructors never panic at runtime; they return sentinel errors.
//     Option constructors panic on meaningless inputs (nil functions, k < 1).
package builder
