package utils

import (
	"sync"
)

type termShard struct {
	sync.Mutex
	counts map[string]int
}

// termCounter is a concurrent term -> count map split across shards so that
// documents processed in parallel rarely contend on the same lock.
type termCounter struct {
	shards []*termShard
	count  int
}

func newTermCounter(shardCount int) *termCounter {
	if shardCount < 1 {
		shardCount = 1
	}
	shards := make([]*termShard, shardCount)
	for i := range shards {
		shards[i] = &termShard{counts: make(map[string]int)}
	}
	return &termCounter{shards: shards, count: shardCount}
}

func (tc *termCounter) getShard(term string) *termShard {
	h := fnv32(term) % uint32(tc.count)
	return tc.shards[h]
}

func fnv32(s string) uint32 {
	h := uint32(2166136261)
	for _, c := range s {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}

// Add counts every token once per occurrence.
func (tc *termCounter) Add(tokens []string) {
	local := make(map[string]int, len(tokens))
	for _, t := range tokens {
		local[t]++
	}
	for term, n := range local {
		shard := tc.getShard(term)
		shard.Lock()
		shard.counts[term] += n
		shard.Unlock()
	}
}

// Counts merges all shards into one map. Call after all writers are done.
func (tc *termCounter) Counts() map[string]int {
	out := make(map[string]int)
	for _, shard := range tc.shards {
		shard.Lock()
		for term, n := range shard.counts {
			out[term] = n
		}
		shard.Unlock()
	}
	return out
}

// forEachDocument runs fn for every document index on at most workers
// goroutines and returns when all calls have finished.
func forEachDocument(n, workers int, fn func(i int)) {
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(i)
		}(i)
	}
	wg.Wait()
}
