package client

import (
	"reflect"
	"sync"
	"testing"

	"github.com/mnehpets/onecall/jsonrpc"
)

func TestRequestBuilderSequence(t *testing.T) {
	var b RequestBuilder

	if got := b.Last(); got != 0 {
		t.Fatalf("fresh builder Last() = %d, want 0", got)
	}

	first := b.Build("test", []any{})
	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}
	if first.Method != "test" {
		t.Errorf("method = %q, want %q", first.Method, "test")
	}
	if first.JSONRPC != jsonrpc.Version {
		t.Errorf("version marker = %q, want %q", first.JSONRPC, jsonrpc.Version)
	}
	if got := b.Last(); got != 1 {
		t.Errorf("Last() after one build = %d, want 1", got)
	}

	second := b.Build("test", []any{})
	if second.ID != 2 {
		t.Errorf("second id = %d, want 2", second.ID)
	}
	if got := b.Last(); got != 2 {
		t.Errorf("Last() after two builds = %d, want 2", got)
	}

	// Identical method and params must still build distinct envelopes.
	if reflect.DeepEqual(first, second) {
		t.Error("requests built at different times compare equal")
	}
}

func TestRequestBuilderConcurrent(t *testing.T) {
	const (
		goroutines = 8
		perG       = 250
	)
	var b RequestBuilder
	ids := make(chan uint64, goroutines*perG)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				ids <- b.Build("concurrent", nil).ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, goroutines*perG)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d issued twice", id)
		}
		seen[id] = true
	}
	// No gaps: every id in 1..N was issued exactly once.
	for want := uint64(1); want <= goroutines*perG; want++ {
		if !seen[want] {
			t.Fatalf("id %d never issued", want)
		}
	}
	if got := b.Last(); got != goroutines*perG {
		t.Errorf("Last() = %d, want %d", got, goroutines*perG)
	}
}
