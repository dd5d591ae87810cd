package common

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/blake2b"
)

// Lengths of hashes, addresses and token ids in bytes.
const (
	// HashLength is the excepted length of the hash
	HashLength = 32
	// AddressCoreLength is the length of the hash part of an address
	AddressCoreLength = 20
	// AddressLength is the length of an original address: core hash plus the contract flag byte
	AddressLength = AddressCoreLength + 1
	// AddressChecksumLength is the length of the blake2b checksum rendered after an address
	AddressChecksumLength = 5
	// TokenIdLength is the length of an original token id
	TokenIdLength = 10
	// TokenIdChecksumLength is the length of the blake2b checksum rendered after a token id
	TokenIdChecksumLength = 2

	AddressPrefix = "vite_"
	TokenIdPrefix = "tti_"
)

var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidChecksum = errors.New("invalid checksum")
)

var (
	// addressRegex 地址文本形式：vite_ + 20 字节哈希 + 5 字节校验和（共 50 个十六进制字符）
	addressRegex = regexp.MustCompile("^vite_[0-9a-f]{50}$")
	// tokenIdRegex 代币 ID 文本形式：tti_ + 10 字节 + 2 字节校验和
	tokenIdRegex = regexp.MustCompile("^tti_[0-9a-f]{24}$")
)

// Well known token ids of the main network.
var (
	ViteTokenId = MustParseTokenId("tti_5649544520544f4b454e6e40")
	UsdtTokenId = MustParseTokenId("tti_80f3751485e4e83456059473")
	BtcTokenId  = MustParseTokenId("tti_b90c9baffffc9dae58d1f33f")
	EthTokenId  = MustParseTokenId("tti_687d8a93915393b219212c73")
)

// AddressType is the result of validating the text form of an address.
type AddressType int

const (
	InvalidAddress AddressType = iota
	AccountAddress
	ContractAddress
)

func (t AddressType) String() string {
	switch t {
	case AccountAddress:
		return "address"
	case ContractAddress:
		return "contract"
	default:
		return "invalid"
	}
}

// ComputeChecksum returns the blake2b digest of payload configured to
// outputLength bytes.
// ComputeChecksum 返回 payload 的 blake2b 摘要，摘要长度为 outputLength 字节。
func ComputeChecksum(payload []byte, outputLength int) []byte {
	h, err := blake2b.New(outputLength, nil)
	if err != nil {
		// only reachable with an out of range digest size, which is a programming error
		panic(err)
	}
	h.Write(payload)
	return h.Sum(nil)
}

/////////// Hash

// Hash represents the 32 byte blake2b hash of arbitrary data.
type Hash [HashLength]byte

// BytesToHash sets b to hash.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// HexToHash parses a 64 character hex string (the 0x prefix is optional).
func HexToHash(s string) (Hash, error) {
	b, err := hex.DecodeString(trimHexPrefix(s))
	if err != nil || len(b) != HashLength {
		return Hash{}, fmt.Errorf("%w: hash %q", ErrInvalidFormat, s)
	}
	return BytesToHash(b), nil
}

func (h Hash) Bytes() []byte { return h[:] }

// Hex returns the hex encoding of the hash, without prefix.
func (h Hash) Hex() string { return hex.EncodeToString(h[:]) }

func (h Hash) String() string { return h.Hex() }

// MarshalText implements encoding.TextMarshaler. The 0x prefix keeps an
// all-digit hash from being read back as a number by TOML encoders.
// MarshalText 输出带 0x 前缀的十六进制，避免 TOML 将全数字哈希当作整数输出。
func (h Hash) MarshalText() ([]byte, error) {
	return []byte("0x" + h.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(input []byte) error {
	v, err := HexToHash(string(input))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

/////////// Address

// Address is the original form of an account or contract address: the 20 byte
// hash followed by a flag byte that is 1 for contracts.
// Address 是账户或合约地址的原始形式：20 字节哈希加 1 字节合约标志。
type Address [AddressLength]byte

// BytesToAddress builds an address from its 21 original bytes.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("%w: original address must be %d bytes, got %d", ErrInvalidFormat, AddressLength, len(b))
	}
	if b[AddressCoreLength] > 1 {
		return a, fmt.Errorf("%w: invalid contract flag byte %#x", ErrInvalidFormat, b[AddressCoreLength])
	}
	copy(a[:], b)
	return a, nil
}

// NewAddress builds an address from its core hash and the contract flag.
func NewAddress(core [AddressCoreLength]byte, isContract bool) Address {
	var a Address
	copy(a[:], core[:])
	if isContract {
		a[AddressCoreLength] = 1
	}
	return a
}

// Core returns the 20 byte hash part of the address.
func (a Address) Core() [AddressCoreLength]byte {
	var core [AddressCoreLength]byte
	copy(core[:], a[:AddressCoreLength])
	return core
}

// IsContract reports whether the flag byte marks a contract.
func (a Address) IsContract() bool {
	return a[AddressCoreLength] == 1
}

// Bytes returns the 21 original bytes.
func (a Address) Bytes() []byte { return a[:] }

// String returns the checksummed text form, vite_...
func (a Address) String() string {
	return EncodeAddress(a.Core(), a.IsContract())
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(input []byte) error {
	v, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// EncodeAddress renders the 20 byte core hash into its checksummed text form.
// The checksum is inverted bit by bit for contract addresses.
// EncodeAddress 将 20 字节哈希渲染为带校验和的文本形式；合约地址的校验和按位取反。
func EncodeAddress(core [AddressCoreLength]byte, isContract bool) string {
	checksum := ComputeChecksum(core[:], AddressChecksumLength)
	if isContract {
		for i := range checksum {
			checksum[i] ^= 0xff
		}
	}
	return AddressPrefix + hex.EncodeToString(core[:]) + hex.EncodeToString(checksum)
}

// ValidateAddress classifies the text form of an address.
// ValidateAddress 校验地址文本，返回普通地址、合约地址或无效。
func ValidateAddress(text string) AddressType {
	if !addressRegex.MatchString(text) {
		return InvalidAddress
	}
	body := text[len(AddressPrefix):]
	core, _ := hex.DecodeString(body[:2*AddressCoreLength])
	checksum, _ := hex.DecodeString(body[2*AddressCoreLength:])

	calc := ComputeChecksum(core, AddressChecksumLength)
	if bytes.Equal(checksum, calc) {
		return AccountAddress
	}
	for i := range checksum {
		checksum[i] ^= 0xff
	}
	if bytes.Equal(checksum, calc) {
		return ContractAddress
	}
	return InvalidAddress
}

// IsValidAddress reports whether text is a well formed, correctly checksummed address.
func IsValidAddress(text string) bool {
	return ValidateAddress(text) != InvalidAddress
}

// ParseAddress decodes the text form of an address into its original bytes.
func ParseAddress(text string) (Address, error) {
	if !addressRegex.MatchString(text) {
		return Address{}, fmt.Errorf("%w: address %q", ErrInvalidFormat, text)
	}
	var core [AddressCoreLength]byte
	hex.Decode(core[:], []byte(text[len(AddressPrefix):len(AddressPrefix)+2*AddressCoreLength]))

	switch ValidateAddress(text) {
	case AccountAddress:
		return NewAddress(core, false), nil
	case ContractAddress:
		return NewAddress(core, true), nil
	default:
		return Address{}, fmt.Errorf("%w: address %q", ErrInvalidChecksum, text)
	}
}

// HexToAddress builds an address from the hex form of its 21 original bytes
// (the 0x prefix is optional).
func HexToAddress(s string) (Address, error) {
	b, err := FromHex(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return BytesToAddress(b)
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(text string) Address {
	a, err := ParseAddress(text)
	if err != nil {
		panic(err)
	}
	return a
}

/////////// TokenId

// TokenId is the 10 byte original form of a token id.
type TokenId [TokenIdLength]byte

// BytesToTokenId builds a token id from its 10 original bytes.
func BytesToTokenId(b []byte) (TokenId, error) {
	var t TokenId
	if len(b) != TokenIdLength {
		return t, fmt.Errorf("%w: original token id must be %d bytes, got %d", ErrInvalidFormat, TokenIdLength, len(b))
	}
	copy(t[:], b)
	return t, nil
}

func (t TokenId) Bytes() []byte { return t[:] }

// String returns the checksummed text form, tti_...
func (t TokenId) String() string {
	return EncodeTokenId(t)
}

// MarshalText implements encoding.TextMarshaler.
func (t TokenId) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TokenId) UnmarshalText(input []byte) error {
	v, err := ParseTokenId(string(input))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// EncodeTokenId renders a token id with its 2 byte checksum.
func EncodeTokenId(t TokenId) string {
	checksum := ComputeChecksum(t[:], TokenIdChecksumLength)
	return TokenIdPrefix + hex.EncodeToString(t[:]) + hex.EncodeToString(checksum)
}

// IsValidTokenId reports whether text is a well formed, correctly checksummed token id.
func IsValidTokenId(text string) bool {
	_, err := ParseTokenId(text)
	return err == nil
}

// ParseTokenId decodes the text form of a token id.
func ParseTokenId(text string) (TokenId, error) {
	var t TokenId
	if !tokenIdRegex.MatchString(text) {
		return t, fmt.Errorf("%w: token id %q", ErrInvalidFormat, text)
	}
	body := text[len(TokenIdPrefix):]
	hex.Decode(t[:], []byte(body[:2*TokenIdLength]))
	checksum, _ := hex.DecodeString(body[2*TokenIdLength:])
	if !bytes.Equal(checksum, ComputeChecksum(t[:], TokenIdChecksumLength)) {
		return TokenId{}, fmt.Errorf("%w: token id %q", ErrInvalidChecksum, text)
	}
	return t, nil
}

// MustParseTokenId is like ParseTokenId but panics on error.
func MustParseTokenId(text string) TokenId {
	t, err := ParseTokenId(text)
	if err != nil {
		panic(err)
	}
	return t
}
