package orbits

import "sync/atomic"

// Progress counts evaluated samples. It is advisory: readers may see a
// slightly stale value while workers are running.
type Progress struct {
	done  atomic.Int64
	total int64
}

func NewProgress(total int64) *Progress {
	return &Progress{total: total}
}

// Add records n more samples and returns the new count. Safe on a nil Progress.
func (p *Progress) Add(n int64) int64 {
	if p == nil {
		return 0
	}
	return p.done.Add(n)
}

func (p *Progress) Done() int64 {
	if p == nil {
		return 0
	}
	return p.done.Load()
}

func (p *Progress) Total() int64 {
	if p == nil {
		return 0
	}
	return p.total
}

// Percent returns done/total in percent, 0 when the total is unknown.
func (p *Progress) Percent() Real {
	if p == nil || p.total <= 0 {
		return 0
	}
	return Real(p.Done()) * 100 / Real(p.total)
}
