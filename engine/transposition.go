package engine

// ttKey identifies a search node: the canonical position encoding (FEN, which
// carries side to move, castling rights and the en passant target) plus the
// remaining depth and which side this node maximizes for. Two nodes with equal
// keys are search-equivalent.
type ttKey struct {
	pos        string
	depth      int8
	maximizing bool
}

// TransTable memoizes one score per search node. There is no eviction, size
// bound or TTL: the table lives as long as its Searcher does and grows over
// the whole game. It must be probed before any other work at a node and
// written as the last action before returning from it.
type TransTable struct {
	entries map[ttKey]int32
}

func newTransTable() *TransTable {
	return &TransTable{entries: make(map[ttKey]int32)}
}

func (tt *TransTable) Probe(key ttKey) (score int32, found bool) {
	score, found = tt.entries[key]
	return score, found
}

func (tt *TransTable) Store(key ttKey, score int32) {
	tt.entries[key] = score
}

func (tt *TransTable) Len() int {
	return len(tt.entries)
}

func (tt *TransTable) Clear() {
	tt.entries = make(map[ttKey]int32)
}
