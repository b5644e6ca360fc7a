// fields_test.go — context field parsing, immutability, concurrent reads.
package xgxfault

import (
	"sync"
	"testing"
)

func TestFieldsFromKV_PairingRules(t *testing.T) {
	t.Parallel()

	t.Run("well-formed pairs", func(t *testing.T) {
		fs := fieldsFromKV("a", 1, "b", "two")
		if len(fs) != 2 || fs[0] != (Field{Key: "a", Val: 1}) || fs[1] != (Field{Key: "b", Val: "two"}) {
			t.Fatalf("got %v", fs)
		}
	})

	t.Run("non-string key drops the whole pair", func(t *testing.T) {
		fs := fieldsFromKV(123, "v1", "k2", "v2")
		if len(fs) != 1 || fs[0].Key != "k2" || fs[0].Val != "v2" {
			t.Fatalf("misaligned parse: %v", fs)
		}
	})

	t.Run("trailing key gets nil value", func(t *testing.T) {
		fs := fieldsFromKV("k")
		if len(fs) != 1 || fs[0].Key != "k" || fs[0].Val != nil {
			t.Fatalf("got %v", fs)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if len(fieldsFromKV()) != 0 {
			t.Fatal("expected empty fields")
		}
	})

	t.Run("all pairs dropped", func(t *testing.T) {
		if len(fieldsFromKV(1, 2, 3, 4)) != 0 {
			t.Fatal("expected empty fields")
		}
	})
}

func TestFieldsCloneAppend_NeverAliases(t *testing.T) {
	t.Parallel()

	base := fieldsFromKV("a", 1)
	grown := fieldsCloneAppend(base, Field{Key: "b", Val: 2})
	grown[0].Val = 99
	if base[0].Val != 1 {
		t.Fatal("append must not alias the source backing array")
	}

	copied := fieldsCloneAppend(base)
	copied[0].Val = 42
	if base[0].Val != 1 {
		t.Fatal("no-op append must still return an independent copy")
	}
}

func TestContext_CopyOnRead(t *testing.T) {
	t.Parallel()

	f := New(KindConflict, "dup", "rev", 3)
	m := f.Context()
	m["rev"] = 999
	m["injected"] = true
	got := f.Context()
	if got["rev"] != 3 {
		t.Fatalf("stored ctx mutated through the returned map: %v", got)
	}
	if _, ok := got["injected"]; ok {
		t.Fatal("returned map must be detached from the fault")
	}
}

func TestContext_DuplicateKeysLastWriteWins(t *testing.T) {
	t.Parallel()

	f := New(KindConflict, "dup", "k", "old").With("k", "new")
	if got := f.Context()["k"]; got != "new" {
		t.Fatalf("want=new got=%v", got)
	}
}

func TestFault_SharedValueConcurrentAugmentation(t *testing.T) {
	t.Parallel()

	// Copy-on-write means a shared fault value can be read and augmented from
	// many goroutines with no synchronization; run under -race.
	base := New(KindUnavailable, "db down", "service", "users")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			local := base.With("worker", i).Ctx("", "attempt", i)
			if local.Context()["worker"] != i {
				t.Errorf("worker %d: ctx lost", i)
			}
			_ = base.Context()
			_ = base.Error()
		}(i)
	}
	wg.Wait()

	if _, ok := base.Context()["worker"]; ok {
		t.Fatal("base must be untouched by concurrent augmentation")
	}
}
