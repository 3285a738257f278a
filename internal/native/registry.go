package native

import "sync"

// envHandle is the value handed to the unit as componentEnvironment. It is a
// registry key, not a Go pointer, so C may keep it for as long as it likes.
type envHandle uintptr

var (
	regMu   sync.Mutex
	regNext envHandle = 1
	reg               = map[envHandle]*sinks{}
)

// sinks are the caller closures a trampoline forwards to.
type sinks Callbacks

func (s *sinks) report(err error) {
	if s.Error != nil {
		s.Error(err)
	}
}

func register(s *sinks) envHandle {
	regMu.Lock()
	h := regNext
	regNext++
	reg[h] = s
	regMu.Unlock()
	return h
}

func lookup(h envHandle) (*sinks, bool) {
	regMu.Lock()
	s, ok := reg[h]
	regMu.Unlock()
	return s, ok
}

func unregister(h envHandle) {
	regMu.Lock()
	delete(reg, h)
	regMu.Unlock()
}

func registered() int {
	regMu.Lock()
	defer regMu.Unlock()
	return len(reg)
}
