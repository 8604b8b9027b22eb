package score

import "math/bits"

// InitFn identifies an implementation selector bound to a Range. It is
// opaque to this package: score never calls it, only carries it.
type InitFn interface {
	// Name identifies the algorithm, for logging and CLI display only.
	Name() string
}

// TeamRef identifies the team context an InitFn applies to. It is opaque
// to this package for the same reason InitFn is.
type TeamRef interface {
	// ID is a process-local team identity, used only for equality,
	// cache keys and logging.
	ID() uint64
}

// ColType is a bitmask enumeration of collective kinds: exactly one bit is
// set for any single collective, but a mask of several bits is accepted
// wherever the API iterates "for each requested collective" (BuildDefault,
// the parser's coll_list field).
type ColType uint32

// The defined collective kinds. Order matches the bit position used by
// ilog2 to index ScoreMap's coll dimension.
const (
	ColBarrier ColType = 1 << iota
	ColBcast
	ColAllreduce
	ColReduce
	ColReduceScatter
	ColReduceScatterv
	ColAllgather
	ColAllgatherv
	ColAlltoall
	ColAlltoallv
	ColGather
	ColGatherv
	ColScatter
	ColScatterv
	ColFanin
	ColFanout

	collTypeSentinel
)

// ColTypeNum is the count of defined collective kinds (spec.md's
// COLL_TYPE_NUM).
const ColTypeNum = 16

var colTypeNames = map[ColType]string{
	ColBarrier:        "barrier",
	ColBcast:          "bcast",
	ColAllreduce:      "allreduce",
	ColReduce:         "reduce",
	ColReduceScatter:  "reduce_scatter",
	ColReduceScatterv: "reduce_scatterv",
	ColAllgather:      "allgather",
	ColAllgatherv:     "allgatherv",
	ColAlltoall:       "alltoall",
	ColAlltoallv:      "alltoallv",
	ColGather:         "gather",
	ColGatherv:        "gatherv",
	ColScatter:        "scatter",
	ColScatterv:       "scatterv",
	ColFanin:          "fanin",
	ColFanout:         "fanout",
}

// ColTypeAll is the mask of every defined collective kind.
const ColTypeAll = ColType(1<<ColTypeNum) - 1

// ilog2 maps a single-bit ColType mask to its 0-based coll-index, the
// dimension used to index into ScoreMap's cell table.
func ilog2(bit ColType) int {
	return bits.TrailingZeros32(uint32(bit))
}

// String returns the selection-string name of a single-bit ColType, or
// "unknown" if ct is not a single bit (or is unknown).
func (ct ColType) String() string {
	if name, ok := colTypeNames[ct]; ok {
		return name
	}
	return "unknown"
}

// MemType enumerates memory kinds. Unlike ColType it is a plain index, not
// a bitmask: exactly one kind describes any given buffer.
type MemType int

const (
	MemHost MemType = iota
	MemCuda
	MemCudaManaged
	MemRocm
	MemRocmManaged
)

// MemTypeLast is the sentinel count of defined memory kinds (spec.md's
// MEMORY_TYPE_LAST). Declared as an untyped constant, like ColTypeNum
// above, so it can be compared against and used to size plain int loop
// variables without an explicit conversion at every call site.
const MemTypeLast = 5

var memTypeNames = map[MemType]string{
	MemHost:        "host",
	MemCuda:        "cuda",
	MemCudaManaged: "cuda_managed",
	MemRocm:        "rocm",
	MemRocmManaged: "rocm_managed",
}

func (mt MemType) String() string {
	if name, ok := memTypeNames[mt]; ok {
		return name
	}
	return "unknown"
}

// Score is an unsigned priority. Higher wins. Two values are reserved:
// ScoreDisabled suppresses a range entirely (it is never stored), and
// ScoreMax is the strongest possible preference ("inf" in the selection
// grammar). ScoreInvalid is an internal sentinel meaning "not yet set";
// it is never visible outside the parser.
type Score uint64

const (
	ScoreDisabled Score = 0
	ScoreMax      Score = 1<<62 - 1
	ScoreInvalid  Score = 1<<64 - 1
)

// MsgMax is the exclusive upper bound of the message-size axis (spec.md's
// UCC_MSG_MAX): "the rest of the address space", i.e. every range built by
// BuildDefault or an msg_list-less parser entry runs to MsgMax.
const MsgMax uint64 = 1 << 62
