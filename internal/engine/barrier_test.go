package engine

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestBarrierReleasesAllPartiesTogether(t *testing.T) {
	const parties = 4
	const cycles = 50

	b, err := NewBarrier(parties)
	if err != nil {
		t.Fatal(err)
	}

	var arrived atomic.Int32
	errs := make(chan string, parties)
	var wg sync.WaitGroup
	for p := 0; p < parties; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := 0; c < cycles; c++ {
				arrived.Add(1)
				b.Await()
				// Nobody passes the barrier before every party of this
				// cycle has arrived.
				if got := arrived.Load(); got < int32(parties*(c+1)) {
					errs <- "released before all parties arrived"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	if msg, ok := <-errs; ok {
		t.Fatal(msg)
	}
}

func TestBarrierPublishesWrites(t *testing.T) {
	b, err := NewBarrier(2)
	if err != nil {
		t.Fatal(err)
	}

	value := 0
	done := make(chan struct{})
	go func() {
		value = 42
		b.Await()
		close(done)
	}()

	b.Await()
	if value != 42 {
		t.Fatalf("write before Await not visible after it, got %d", value)
	}
	<-done
}

func TestBarrierSinglePartyNeverBlocks(t *testing.T) {
	b, err := NewBarrier(1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		b.Await()
	}
}

func TestNewBarrierRejectsNonPositiveParties(t *testing.T) {
	for _, parties := range []int{0, -1} {
		if _, err := NewBarrier(parties); err == nil {
			t.Fatalf("NewBarrier(%d) should fail", parties)
		}
	}
}
