package haxxor

import "sync"

// Attempt is the outcome of decrypting a hash with one module.
type Attempt struct {
	Algorithm Algorithm
	Plaintext string // empty when Err is set
	Err       error
}

// Attempts holds one entry per reversible module, in declaration order.
// A failed attempt is recorded with an empty Plaintext rather than aborting the cycle.
type Attempts []Attempt

// Get returns the plaintext recorded for algo.
func (a Attempts) Get(algo Algorithm) (string, bool) {
	for _, at := range a {
		if at.Algorithm == algo {
			return at.Plaintext, true
		}
	}
	return "", false
}

// Empty reports whether no attempt produced any plaintext.
func (a Attempts) Empty() bool {
	for _, at := range a {
		if at.Plaintext != "" {
			return false
		}
	}
	return true
}

// Recovered returns the attempts that decrypted without error.
func (a Attempts) Recovered() Attempts {
	var out Attempts
	for _, at := range a {
		if at.Err == nil {
			out = append(out, at)
		}
	}
	return out
}

// cycle decrypts hash with each module concurrently.
// Every goroutine owns one slot, so results keep module order without locking.
func cycle(modules []Module, hash string) Attempts {
	out := make(Attempts, len(modules))

	var wg sync.WaitGroup
	for i, m := range modules {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plain, err := m.Decrypt(hash)
			if err != nil {
				plain = ""
			}
			out[i] = Attempt{Algorithm: m.Algorithm(), Plaintext: plain, Err: err}
		}()
	}
	wg.Wait()

	return out
}
