package stats

// EngineVersion identifies the computation and overlay logic. Persisted
// artifacts are stamped with this value so results produced by a later,
// behavior-changing engine can be told apart from historical ones. Bump on
// any change that alters computed numbers.
const EngineVersion = "1.2.0"
