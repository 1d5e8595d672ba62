package bench_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigbench/internal/bench"
	"sigbench/internal/crypto"
	"sigbench/internal/domain"
	"sigbench/internal/util/logging"
)

// stepClock advances by step on every sample.
func stepClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func newHarness(t *testing.T, iterations uint32, out *bytes.Buffer, opts ...bench.Option) *bench.Harness {
	t.Helper()
	conf := bench.NewDefaultConfig()
	conf.Iterations = iterations
	logger := logging.Component(logging.NewTestLogger(t), "bench")
	return bench.New(conf, logger, out, opts...)
}

func TestRunReportsFourPhasesInOrder(t *testing.T) {
	var out bytes.Buffer
	h := newHarness(t, 50, &out)

	results, err := h.Run()
	require.NoError(t, err)
	require.Len(t, results, 4)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	want := []struct {
		prefix, unit string
	}{
		{"testing seed generation performance: ", "us per seed"},
		{"testing key generation performance: ", "us per keypair"},
		{"testing sign performance: ", "us per signature"},
		{"testing verify performance: ", "us per signature"},
	}
	for i, r := range results {
		assert.Equal(t, bench.Phases[i], r.Phase)
		assert.Equal(t, uint32(50), r.Iterations)
		assert.Zero(t, r.Failures, r.Phase.String())
		assert.GreaterOrEqual(t, r.AvgMicros(), 0.0)

		assert.True(t, strings.HasPrefix(lines[i], want[i].prefix), lines[i])
		assert.Contains(t, lines[i], want[i].unit)
		assert.True(t, strings.HasSuffix(lines[i], "(0 failures)"), lines[i])
	}
}

func TestZeroIterations(t *testing.T) {
	var out bytes.Buffer
	h := newHarness(t, 0, &out)

	results, err := h.Run()
	require.NoError(t, err)
	for _, r := range results {
		assert.Zero(t, r.Iterations)
		assert.Zero(t, r.AvgMicros())
		assert.Zero(t, r.Failures)
	}
	assert.Contains(t, out.String(), "testing verify performance: 0.000000us per signature")
}

func TestAverageUsesOneSampleAroundTheLoop(t *testing.T) {
	var out bytes.Buffer
	h := newHarness(t, 4, &out, bench.WithClock(stepClock(8*time.Microsecond)))

	r := h.Seeds()
	assert.Equal(t, 8*time.Microsecond, r.Elapsed)
	assert.Equal(t, 2.0, r.AvgMicros())
}

type counting struct {
	seeds, x25519, ed25519, signs, verifies int
}

func (c *counting) primitives(failEvery int) bench.Primitives {
	base := bench.DefaultPrimitives()
	fail := func(n int) error {
		if failEvery > 0 && n%failEvery == 0 {
			return errors.New("injected")
		}
		return nil
	}
	return bench.Primitives{
		FillRandom: func(buf []byte) error {
			c.seeds++
			return fail(c.seeds)
		},
		GenerateX25519: func() (domain.X25519Private, domain.X25519Public, error) {
			c.x25519++
			priv, pub, err := base.GenerateX25519()
			if err == nil {
				err = fail(c.x25519)
			}
			return priv, pub, err
		},
		GenerateEd25519: func() (domain.Ed25519Private, domain.Ed25519Public, error) {
			c.ed25519++
			return base.GenerateEd25519()
		},
		Sign: func(msg []byte, sk domain.Ed25519Private) (domain.Signature, error) {
			c.signs++
			if err := fail(c.signs); err != nil {
				return domain.Signature{}, err
			}
			return base.Sign(msg, sk)
		},
		Verify: func(sig domain.Signature, msg []byte, pk domain.Ed25519Public) error {
			c.verifies++
			if err := fail(c.verifies); err != nil {
				return err
			}
			return base.Verify(sig, msg, pk)
		},
	}
}

func TestEachPhaseRunsExactlyIterations(t *testing.T) {
	var out bytes.Buffer
	var c counting
	h := newHarness(t, 7, &out, bench.WithPrimitives(c.primitives(0)))

	_, err := h.Run()
	require.NoError(t, err)
	assert.Equal(t, counting{seeds: 7, x25519: 7, ed25519: 7, signs: 7, verifies: 7}, c)
}

func TestFailuresAreCountedNotFatal(t *testing.T) {
	var out bytes.Buffer
	var c counting
	// Every third call fails; the tenth (final) signature succeeds.
	h := newHarness(t, 10, &out, bench.WithPrimitives(c.primitives(3)))

	results, err := h.Run()
	require.NoError(t, err)

	for _, r := range results {
		assert.Equal(t, uint32(10), r.Iterations)
		assert.Equal(t, uint64(3), r.Failures, r.Phase.String())
	}
	assert.Equal(t, counting{seeds: 10, x25519: 10, ed25519: 10, signs: 10, verifies: 10}, c)
	assert.Equal(t, 4, strings.Count(out.String(), "(3 failures)"))
}

func TestSignaturesResetsCarriedState(t *testing.T) {
	var out bytes.Buffer
	prims := bench.DefaultPrimitives()

	calls := 0
	gen := prims.GenerateEd25519
	prims.GenerateEd25519 = func() (domain.Ed25519Private, domain.Ed25519Public, error) {
		calls++
		if calls == 4 {
			return domain.Ed25519Private{}, domain.Ed25519Public{}, errors.New("injected")
		}
		return gen()
	}
	var got []domain.Ed25519Public
	var sigs []domain.Signature
	prims.Verify = func(sig domain.Signature, msg []byte, pk domain.Ed25519Public) error {
		got = append(got, pk)
		sigs = append(sigs, sig)
		if pk == (domain.Ed25519Public{}) {
			return crypto.ErrVerifyFailure
		}
		return crypto.VerifyDetached(sig, msg, pk)
	}
	h := newHarness(t, 2, &out, bench.WithPrimitives(prims))

	require.Zero(t, h.Signatures().Failures)
	require.Zero(t, h.Verifications().Failures)

	// The final key generation of the second run fails, so nothing from
	// the first run may be verified again.
	assert.Equal(t, uint64(1), h.Signatures().Failures)
	got, sigs = nil, nil
	verify := h.Verifications()
	assert.Equal(t, uint64(2), verify.Failures)
	for i := range got {
		assert.Equal(t, domain.Ed25519Public{}, got[i])
		assert.Equal(t, domain.Signature{}, sigs[i])
	}
	assert.Len(t, got, 2)
}

func TestVerifyUsesLastSignature(t *testing.T) {
	var out bytes.Buffer
	var pubs []domain.Ed25519Public
	prims := bench.DefaultPrimitives()
	gen := prims.GenerateEd25519
	prims.GenerateEd25519 = func() (domain.Ed25519Private, domain.Ed25519Public, error) {
		priv, pub, err := gen()
		pubs = append(pubs, pub)
		return priv, pub, err
	}
	var verifiedWith []domain.Ed25519Public
	prims.Verify = func(sig domain.Signature, msg []byte, pk domain.Ed25519Public) error {
		verifiedWith = append(verifiedWith, pk)
		return crypto.VerifyDetached(sig, msg, pk)
	}
	h := newHarness(t, 3, &out, bench.WithPrimitives(prims))

	sign := h.Signatures()
	verify := h.Verifications()
	assert.Zero(t, sign.Failures)
	assert.Zero(t, verify.Failures)

	require.Len(t, pubs, 3)
	require.Len(t, verifiedWith, 3)
	for _, pk := range verifiedWith {
		assert.Equal(t, pubs[2], pk)
	}
}

func TestVerifyWithoutSignPhase(t *testing.T) {
	var out bytes.Buffer
	h := newHarness(t, 5, &out)

	r := h.Verifications()
	assert.Equal(t, bench.PhaseVerify, r.Phase)
	assert.Zero(t, r.Iterations)
	assert.Zero(t, r.AvgMicros())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunStopsOnReportError(t *testing.T) {
	conf := bench.NewDefaultConfig()
	conf.Iterations = 1
	h := bench.New(conf, logging.Component(logging.NewTestLogger(t), "bench"), failingWriter{})

	results, err := h.Run()
	assert.Error(t, err)
	assert.Empty(t, results)
}
