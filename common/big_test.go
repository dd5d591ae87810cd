package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBig(t *testing.T) {
	assert.Equal(t, "0", Big0.String())
	assert.Equal(t, "257", Big257.String())
	assert.True(t, U2560.IsZero())
	assert.Equal(t, 256, TT256().BitLen()-1, "2^256 has bit 256 set")
	assert.Equal(t, 128, TT128().BitLen()-1)
	assert.Equal(t, "1024", BigPow(2, 10).String())
}

func TestU256S256(t *testing.T) {
	minusOne := U256(big.NewInt(-1))
	assert.Equal(t, 0, minusOne.Cmp(MaxBig256), "-1 wraps to 2^256-1")
	assert.Equal(t, "-1", S256(new(big.Int).Set(MaxBig256)).String())
	assert.Equal(t, "1", S256(big.NewInt(1)).String())

	half := new(big.Int).Lsh(Big1, 255)
	assert.Equal(t, new(big.Int).Neg(half).String(), S256(half).String())
}

func TestUint256FromBig(t *testing.T) {
	v, overflow := Uint256FromBig(big.NewInt(42))
	assert.False(t, overflow)
	assert.Equal(t, uint64(42), v.Uint64())

	_, overflow = Uint256FromBig(big.NewInt(-1))
	assert.True(t, overflow, "negative values do not fit")

	_, overflow = Uint256FromBig(TT256())
	assert.True(t, overflow, "2^256 does not fit")
}

func TestPadBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 1, 2}, LeftPadBytes([]byte{1, 2}, 4))
	assert.Equal(t, []byte{1, 2, 0, 0}, RightPadBytes([]byte{1, 2}, 4))
	assert.Equal(t, []byte{1, 2}, LeftPadBytes([]byte{1, 2}, 1))
	assert.Equal(t, []byte{0, 0, 0, 5}, PaddedBigBytes(big.NewInt(5), 4))
	assert.Equal(t, []byte{1}, TrimLeftZeroes([]byte{0, 0, 1}))
	assert.True(t, IsZeroBytes(make([]byte, 32)))
	assert.False(t, IsZeroBytes([]byte{0, 1}))
}

func TestFromHex(t *testing.T) {
	b, err := FromHex("0x0102")
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	b, err = FromHex("abc")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0xbc}, b, "odd length is left padded")

	_, err = FromHex("0xzz")
	assert.Error(t, err)
	assert.Equal(t, "0x0a0b", PrettyBytes([]byte{10, 11}))
}

func TestParseBig256(t *testing.T) {
	tests := []struct {
		input string
		num   string
		ok    bool
	}{
		{"", "0", true},
		{"0", "0", true},
		{"0x0", "0", true},
		{"12345678", "12345678", true},
		{"0x12345678", "305419896", true},
		{"0X12345678", "305419896", true},
		{"0123456789", "123456789", true},
		{"00000000FFFFFFFF", "", false},
		{"0x" + "ff" + "00000000000000000000000000000000000000000000000000000000000000", "", true},
		{"0x1" + "0000000000000000000000000000000000000000000000000000000000000000", "", false},
		{"-1", "-1", true},
		{"abcd", "", false},
	}
	for i, test := range tests {
		num, ok := ParseBig256(test.input)
		assert.Equal(t, test.ok, ok, "Test case %d: %q", i, test.input)
		if ok && test.num != "" {
			assert.Equal(t, test.num, num.String(), "Test case %d", i)
		}
	}
}
