package hashutil_test

import (
	"testing"

	"github.com/databrickslabs/sandbox/buckets/hashutil"
	"github.com/stretchr/testify/assert"
)

func TestHashIsStable(t *testing.T) {
	type cart struct {
		Name  string
		Count int
	}
	first, err := hashutil.Hash(cart{"apples", 3})
	assert.NoError(t, err)
	second, err := hashutil.Hash(cart{"apples", 3})
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := hashutil.Hash(cart{"oranges", 3})
	assert.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestHashRejectsFunctions(t *testing.T) {
	_, err := hashutil.Hash(struct{ Fn func() }{func() {}})
	assert.Error(t, err)
	assert.Zero(t, hashutil.MustHash(struct{ Fn func() }{func() {}}))
}

func TestMustHashDiffersByValue(t *testing.T) {
	assert.Equal(t, hashutil.MustHash("word"), hashutil.MustHash("word"))
	assert.NotEqual(t, hashutil.MustHash("word"), hashutil.MustHash("sword"))
	assert.NotEqual(t, hashutil.MustHash(7), hashutil.MustHash(8))
}

func TestDigestLengthFraming(t *testing.T) {
	ab := hashutil.NewDigest()
	ab.WriteStringWithLen("ab")
	ab.WriteStringWithLen("c")

	a := hashutil.NewDigest()
	a.WriteStringWithLen("a")
	a.WriteStringWithLen("bc")

	assert.NotEqual(t, ab.Sum64(), a.Sum64())
}

func TestDigestTypedWrites(t *testing.T) {
	first := hashutil.NewDigest()
	first.WriteUint64(42)
	first.WriteInt64(-1)
	first.WriteBool(true)

	second := hashutil.NewDigest()
	second.WriteUint64(42)
	second.WriteInt64(-1)
	second.WriteBool(true)
	assert.Equal(t, first.Sum64(), second.Sum64())

	third := hashutil.NewDigest()
	third.WriteUint64(42)
	third.WriteInt64(-1)
	third.WriteBool(false)
	assert.NotEqual(t, first.Sum64(), third.Sum64())
}
