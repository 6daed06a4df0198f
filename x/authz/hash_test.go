package authz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorumgate"
	"quorumgate/gatetest"
)

func refTx() Tx {
	return Tx{
		Target:   gatetest.IdentityFromSeed("target"),
		Payload:  []byte("call something"),
		Value:    42,
		Nonce:    7,
		Deadline: quorumgate.AsUnixTime(time.Unix(1700000000, 0)),
	}
}

func TestTxHashDeterministic(t *testing.T) {
	a, err := TxHash("domain-one", refTx())
	require.NoError(t, err)
	require.NoError(t, a.Validate())

	b, err := TxHash("domain-one", refTx())
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
}

func TestTxHashSensitivity(t *testing.T) {
	base, err := TxHash("domain-one", refTx())
	require.NoError(t, err)

	cases := map[string]func(*Tx){
		"target":   func(tx *Tx) { tx.Target = gatetest.IdentityFromSeed("other") },
		"payload":  func(tx *Tx) { tx.Payload = []byte("call something else") },
		"value":    func(tx *Tx) { tx.Value++ },
		"nonce":    func(tx *Tx) { tx.Nonce++ },
		"deadline": func(tx *Tx) { tx.Deadline++ },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			tx := refTx()
			mutate(&tx)
			got, err := TxHash("domain-one", tx)
			require.NoError(t, err)
			assert.False(t, base.Equals(got), "digest must change with %s", field)
		})
	}
}

func TestTxHashDomainSeparation(t *testing.T) {
	// The same transaction signed for one engine instance must not be
	// replayable against another.
	a, err := TxHash("domain-one", refTx())
	require.NoError(t, err)
	b, err := TxHash("domain-two", refTx())
	require.NoError(t, err)
	assert.False(t, a.Equals(b))
}

func TestTxHashAmbiguousBoundary(t *testing.T) {
	// Fixed width fields before the payload mean that moving a byte
	// between value-encoding and payload cannot produce a collision.
	a := refTx()
	a.Payload = []byte{1, 2, 3}
	b := refTx()
	b.Payload = []byte{1, 2}
	b.Value = a.Value // same scalar fields, payload differs by one byte

	ha, err := TxHash("domain-one", a)
	require.NoError(t, err)
	hb, err := TxHash("domain-one", b)
	require.NoError(t, err)
	assert.False(t, ha.Equals(hb))
}

func TestTxHashInvalidInput(t *testing.T) {
	_, err := TxHash("x", refTx())
	assert.Error(t, err, "invalid domain must fail")

	tx := refTx()
	tx.Target = tx.Target[:4]
	_, err = TxHash("domain-one", tx)
	assert.Error(t, err, "truncated target must fail")
}

func TestEngineTxHashMatchesPackageFunc(t *testing.T) {
	engine, _, _ := newTestEngine(t, 1, "alice")

	tx := refTx()
	fromEngine, err := engine.TxHash(tx)
	require.NoError(t, err)
	direct, err := TxHash(testDomain, tx)
	require.NoError(t, err)
	assert.True(t, fromEngine.Equals(direct))
}

func TestDigestValidate(t *testing.T) {
	assert.Error(t, Digest(nil).Validate())
	assert.Error(t, Digest([]byte("short")).Validate())

	digest, err := TxHash("domain-one", refTx())
	require.NoError(t, err)
	assert.NoError(t, digest.Validate())
}
