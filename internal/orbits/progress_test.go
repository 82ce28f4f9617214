package orbits

import (
	"sync"
	"testing"
)

func TestProgressConcurrentAdd(t *testing.T) {
	p := NewProgress(8000)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				p.Add(Lanes)
			}
		}()
	}
	wg.Wait()
	if p.Done() != 8000 {
		t.Fatalf("done = %d", p.Done())
	}
	if p.Percent() != 100 {
		t.Fatalf("percent = %v", p.Percent())
	}
}

func TestProgressNil(t *testing.T) {
	var p *Progress
	if p.Add(3) != 0 || p.Done() != 0 || p.Total() != 0 || p.Percent() != 0 {
		t.Fatal("nil progress must read as zero")
	}
	if NewProgress(0).Percent() != 0 {
		t.Fatal("unknown total must read as zero percent")
	}
}
