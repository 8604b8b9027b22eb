package score

import (
	"encoding/binary"
	"math/bits"
	"sync"

	farm "github.com/dgryski/go-farm"
	"github.com/minio/highwayhash"
)

// nextExp2 returns the next power of two strictly greater than x, used to
// round a requested cache capacity up before sizing byKey's backing map so
// growth-driven rehashing happens at most once per cache lifetime.
func nextExp2(x int) int {
	if x <= 0 {
		return 1
	}
	log2 := 63 - bits.LeadingZeros64(uint64(x))
	return 2 << uint(log2)
}

// highwayKey is a fixed, process-local HighwayHash key. The default-build
// cache never crosses a trust or process boundary, so a hardcoded key is
// fine: it only needs to avoid accidental collisions between distinct
// cache entries in one process's lifetime, not resist an adversary.
var highwayKey = func() []byte {
	k := make([]byte, 32)
	for i := range k {
		k[i] = byte(i * 7)
	}
	return k
}()

// parseCache memoizes AllocFromStr by (selStr, teamSize): the parse is
// pure, and the same selection string (typically an environment variable
// read once per team create, but re-parsed by every caller that shares
// the string) is parsed repeatedly in a long-running process.
type parseCache struct {
	mu    sync.Mutex
	cap   int
	order []uint64
	byKey map[uint64]*ScoreMap
}

func newParseCache(capacity int) *parseCache {
	return &parseCache{cap: capacity, byKey: make(map[uint64]*ScoreMap, nextExp2(capacity))}
}

func parseCacheKey(str string, teamSize uint32) uint64 {
	buf := make([]byte, len(str)+4)
	copy(buf, str)
	binary.LittleEndian.PutUint32(buf[len(str):], teamSize)
	return farm.Fingerprint64(buf)
}

// get returns a fresh Clone of the cached ScoreMap for (str, teamSize), if
// present: callers mutate ScoreMaps in place via Merge/Update, so the
// cache must never hand out its own copy of record.
func (c *parseCache) get(str string, teamSize uint32) (*ScoreMap, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.byKey[parseCacheKey(str, teamSize)]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

func (c *parseCache) put(str string, teamSize uint32, m *ScoreMap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := parseCacheKey(str, teamSize)
	if _, exists := c.byKey[key]; !exists {
		if c.cap > 0 && len(c.order) >= c.cap {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.byKey, oldest)
		}
		c.order = append(c.order, key)
	}
	c.byKey[key] = m.Clone()
}

// defaultParseCache and defaultDefaultCache back the package-level cached
// entry points below. 256 entries comfortably covers "one selection
// string per env var, re-read by every team" and "one default map per
// (team, coll_mask) combination" in any realistic process.
var (
	defaultParseCacheOnce = newParseCache(256)
	defaultBuildCacheOnce = newDefaultCache(256)
)

// AllocFromStrCached behaves like AllocFromStr but memoizes results
// keyed on (str, teamSize), returning a fresh Clone on cache hits
// (spec.md §4.8's parse cache).
func AllocFromStrCached(str string, teamSize uint32) (*ScoreMap, error) {
	if m, ok := defaultParseCacheOnce.get(str, teamSize); ok {
		return m, nil
	}
	m, err := AllocFromStr(str, teamSize)
	if err != nil {
		return nil, err
	}
	defaultParseCacheOnce.put(str, teamSize, m)
	return m, nil
}

// BuildDefaultCached behaves like BuildDefault but memoizes results keyed
// on (team identity, defaultScore, defaultInit's name, collMask, memTypes) (spec.md §4.8's
// default-build cache).
func BuildDefaultCached(team TeamRef, defaultScore Score, defaultInit InitFn, collMask ColType, memTypes []MemType) (*ScoreMap, error) {
	if m, ok := defaultBuildCacheOnce.get(team, defaultScore, defaultInit, collMask, memTypes); ok {
		return m, nil
	}
	m, err := BuildDefault(team, defaultScore, defaultInit, collMask, memTypes)
	if err != nil {
		return nil, err
	}
	defaultBuildCacheOnce.put(team, defaultScore, defaultInit, collMask, memTypes, m)
	return m, nil
}

// defaultCache memoizes BuildDefault by the opaque team identity plus its
// other, value-comparable parameters.
type defaultCache struct {
	mu    sync.Mutex
	cap   int
	order []uint64
	byKey map[uint64]*ScoreMap
}

func newDefaultCache(capacity int) *defaultCache {
	return &defaultCache{cap: capacity, byKey: make(map[uint64]*ScoreMap, nextExp2(capacity))}
}

// defaultCacheKey folds in defaultInit's Name() (empty string if nil)
// alongside the other parameters: two calls that differ only in which
// implementation they bind (e.g. two plugins sharing a team/score/mask)
// must not collide on the same cache entry.
func defaultCacheKey(team TeamRef, defaultScore Score, defaultInit InitFn, collMask ColType, memTypes []MemType) uint64 {
	name := ""
	if defaultInit != nil {
		name = defaultInit.Name()
	}
	buf := make([]byte, 0, 8+8+4+4+len(memTypes)+len(name))
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], team.ID())
	buf = append(buf, tmp[:]...)
	binary.LittleEndian.PutUint64(tmp[:], uint64(defaultScore))
	buf = append(buf, tmp[:]...)
	var tmp4 [4]byte
	binary.LittleEndian.PutUint32(tmp4[:], uint32(collMask))
	buf = append(buf, tmp4[:]...)
	// memTypes is length-prefixed so its bytes can never be read as part
	// of the variable-length name that follows.
	binary.LittleEndian.PutUint32(tmp4[:], uint32(len(memTypes)))
	buf = append(buf, tmp4[:]...)
	for _, mt := range memTypes {
		buf = append(buf, byte(mt))
	}
	buf = append(buf, name...)
	return highwayhash.Sum64(buf, highwayKey)
}

func (c *defaultCache) get(team TeamRef, defaultScore Score, defaultInit InitFn, collMask ColType, memTypes []MemType) (*ScoreMap, bool) {
	key := defaultCacheKey(team, defaultScore, defaultInit, collMask, memTypes)
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.byKey[key]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

func (c *defaultCache) put(team TeamRef, defaultScore Score, defaultInit InitFn, collMask ColType, memTypes []MemType, m *ScoreMap) {
	key := defaultCacheKey(team, defaultScore, defaultInit, collMask, memTypes)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byKey[key]; !exists {
		if c.cap > 0 && len(c.order) >= c.cap {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.byKey, oldest)
		}
		c.order = append(c.order, key)
	}
	c.byKey[key] = m.Clone()
}
