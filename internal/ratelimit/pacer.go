// Package ratelimit paces requests so consecutive product checks don't hit
// retailers back to back.
package ratelimit

import (
	"sync"
	"time"
)

// Pacer is a small token bucket refilled at a fixed interval. It starts with
// one token so the first check of a run goes out immediately.
type Pacer struct {
	interval time.Duration
	max      int

	mu     sync.Mutex
	tokens int

	avail chan struct{}
	done  chan struct{}
}

func NewPacer(interval time.Duration, burst int) *Pacer {
	if burst < 1 {
		burst = 1
	}
	p := &Pacer{
		interval: interval,
		max:      burst,
		tokens:   1,
		avail:    make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go p.refill()
	return p
}

func (p *Pacer) refill() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.mu.Lock()
			prev := p.tokens
			p.tokens++
			if p.tokens > p.max {
				p.tokens = p.max
			}
			if prev == 0 && p.tokens > 0 {
				select {
				case p.avail <- struct{}{}:
				default:
				}
			}
			p.mu.Unlock()
		case <-p.done:
			return
		}
	}
}

func (p *Pacer) take() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tokens > 0 {
		p.tokens--
		return true
	}
	return false
}

// Wait blocks until a token is available.
func (p *Pacer) Wait() {
	if p.take() {
		return
	}
	for {
		select {
		case <-p.avail:
			if p.take() {
				return
			}
		case <-time.After(p.interval):
			if p.take() {
				return
			}
		}
	}
}

func (p *Pacer) Stop() {
	close(p.done)
}
