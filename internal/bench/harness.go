package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"sigbench/internal/crypto"
	"sigbench/internal/domain"
	"sigbench/internal/util/memzero"
)

// Primitives are the operations timed by the harness.
type Primitives struct {
	FillRandom      func(buf []byte) error
	GenerateX25519  func() (domain.X25519Private, domain.X25519Public, error)
	GenerateEd25519 func() (domain.Ed25519Private, domain.Ed25519Public, error)
	Sign            func(msg []byte, sk domain.Ed25519Private) (domain.Signature, error)
	Verify          func(sig domain.Signature, msg []byte, pk domain.Ed25519Public) error
}

// DefaultPrimitives returns the real implementations from package crypto.
func DefaultPrimitives() Primitives {
	return Primitives{
		FillRandom:      crypto.FillRandom,
		GenerateX25519:  crypto.GenerateX25519,
		GenerateEd25519: crypto.GenerateEd25519,
		Sign:            crypto.SignDetached,
		Verify:          crypto.VerifyDetached,
	}
}

// Option customises a Harness.
type Option func(*Harness)

// WithClock replaces time.Now as the clock sampled around each loop.
func WithClock(now func() time.Time) Option {
	return func(h *Harness) { h.now = now }
}

// WithPrimitives replaces the timed operations.
func WithPrimitives(p Primitives) Option {
	return func(h *Harness) { h.prims = p }
}

// Harness runs the benchmark phases. It is not safe for concurrent use.
type Harness struct {
	conf   Config
	logger *logrus.Entry
	out    io.Writer
	now    func() time.Time
	prims  Primitives

	// Carried from the last signing iteration into the verify phase.
	signed    bool
	signerPub domain.Ed25519Public
	signature domain.Signature
}

// New returns a Harness that writes one report line per phase to out.
func New(conf Config, logger *logrus.Entry, out io.Writer, opts ...Option) *Harness {
	h := &Harness{
		conf:   conf,
		logger: logger,
		out:    out,
		now:    time.Now,
		prims:  DefaultPrimitives(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes every phase in order, reporting each one before the next
// starts. The only error returned is a failure to write the report.
func (h *Harness) Run() ([]Result, error) {
	steps := map[Phase]func() Result{
		PhaseSeed:    h.Seeds,
		PhaseKeypair: h.Keypairs,
		PhaseSign:    h.Signatures,
		PhaseVerify:  h.Verifications,
	}

	results := make([]Result, 0, len(Phases))
	for _, p := range Phases {
		r := steps[p]()
		if err := h.report(r); err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Seeds fills a 32-byte buffer with random bytes Iterations times.
func (h *Harness) Seeds() Result {
	var seed domain.Seed
	return h.timed(PhaseSeed, h.conf.Iterations, func(uint32) error {
		return h.prims.FillRandom(seed[:])
	})
}

// Keypairs generates Iterations X25519 key pairs.
func (h *Harness) Keypairs() Result {
	return h.timed(PhaseKeypair, h.conf.Iterations, func(uint32) error {
		priv, _, err := h.prims.GenerateX25519()
		memzero.Zero(priv[:])
		return err
	})
}

// Signatures generates a fresh Ed25519 key pair and signs the configured
// message on every iteration. The public key and signature of the final
// iteration are kept for Verifications.
func (h *Harness) Signatures() Result {
	h.signed = false
	h.signerPub, h.signature = domain.Ed25519Public{}, domain.Signature{}

	last := h.conf.Iterations
	r := h.timed(PhaseSign, h.conf.Iterations, func(i uint32) error {
		priv, pub, err := h.prims.GenerateEd25519()
		if err != nil {
			return err
		}
		sig, err := h.prims.Sign(h.conf.Message, priv)
		memzero.Zero(priv[:])
		if i == last-1 {
			h.signerPub, h.signature = pub, sig
		}
		return err
	})
	h.signed = r.Iterations > 0
	return r
}

// Verifications checks the signature carried from Signatures Iterations
// times. Without a carried signature no iteration runs.
func (h *Harness) Verifications() Result {
	n := h.conf.Iterations
	if !h.signed {
		if n > 0 {
			h.logger.WithField("phase", PhaseVerify).Warn("No signature carried from sign phase")
		}
		n = 0
	}
	return h.timed(PhaseVerify, n, func(uint32) error {
		return h.prims.Verify(h.signature, h.conf.Message, h.signerPub)
	})
}

// timed runs op n times between two clock samples. Errors are logged and
// counted; the loop always runs to completion.
func (h *Harness) timed(p Phase, n uint32, op func(i uint32) error) Result {
	r := Result{Phase: p, Iterations: n}

	start := h.now()
	for i := uint32(0); i < n; i++ {
		if err := op(i); err != nil {
			r.Failures++
			h.logger.WithFields(logrus.Fields{
				"phase":     p,
				"iteration": i,
			}).WithError(err).Warn("Operation failed")
		}
	}
	r.Elapsed = h.now().Sub(start)

	h.logger.WithFields(logrus.Fields{
		"phase":      p,
		"iterations": r.Iterations,
		"elapsed":    r.Elapsed,
		"failures":   r.Failures,
	}).Debug("Phase done")

	return r
}

func (h *Harness) report(r Result) error {
	if _, err := fmt.Fprintln(h.out, r); err != nil {
		return fmt.Errorf("writing %s result: %w", r.Phase, err)
	}
	return nil
}
