// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"context"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/crypto"
)

// Operands are taken in push order: for `[a, b] = PopN(2)` the word pushed
// first is a. SUB therefore computes a - b with b on top of the stack.
// 操作数按压栈顺序取出：[a, b] = PopN(2) 中 a 先入栈，b 在栈顶。

var (
	tt128 = common.TT128()
	tt256 = common.TT256()
)

// toSigned reads a word as signed, treating 2^128 and above as negative.
// toSigned 将字解释为有符号数：大于等于 2^128 的值视为负数。
func toSigned(x *uint256.Int) *big.Int {
	b := x.ToBig()
	if b.Cmp(tt128) >= 0 {
		b.Sub(b, tt256)
	}
	return b
}

// fromSigned maps a signed result back into [0, 2^256).
func fromSigned(b *big.Int) *uint256.Int {
	if b.Sign() < 0 {
		b.Add(b, tt256)
	}
	v, _ := uint256.FromBig(b)
	return v
}

// binary pops two operands and pushes f(a, b).
func binary(scope *ScopeContext, f func(a, b *uint256.Int) *uint256.Int) error {
	ops, err := scope.Stack.PopN(2)
	if err != nil {
		return err
	}
	return scope.Stack.Push(f(&ops[0], &ops[1]))
}

// ternary pops three operands and pushes f(a, b, c).
func ternary(scope *ScopeContext, f func(a, b, c *uint256.Int) *uint256.Int) error {
	ops, err := scope.Stack.PopN(3)
	if err != nil {
		return err
	}
	return scope.Stack.Push(f(&ops[0], &ops[1], &ops[2]))
}

// unary pops one operand and pushes f(a).
func unary(scope *ScopeContext, f func(a *uint256.Int) *uint256.Int) error {
	a, err := scope.Stack.Pop()
	if err != nil {
		return err
	}
	return scope.Stack.Push(f(&a))
}

func boolWord(b bool) *uint256.Int {
	if b {
		return uint256.NewInt(1)
	}
	return new(uint256.Int)
}

func opAdd(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return a.Add(a, b) })
}

func opMul(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return a.Mul(a, b) })
}

func opSub(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return a.Sub(a, b) })
}

// opDiv pushes 0 when the divisor is 0.
func opDiv(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return a.Div(a, b) })
}

func opSdiv(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int {
		if a.IsZero() || b.IsZero() {
			return new(uint256.Int)
		}
		// 截断除法（向零取整）
		return fromSigned(new(big.Int).Quo(toSigned(a), toSigned(b)))
	})
}

func opMod(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return a.Mod(a, b) })
}

// opSmod takes the remainder with the sign of the dividend, then lifts a
// negative remainder by |b| so the result is never negative.
// opSmod 余数符号与被除数相同；若余数为负则加上 |b|。
func opSmod(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int {
		if b.IsZero() {
			return new(uint256.Int)
		}
		sb := toSigned(b)
		r := new(big.Int).Rem(toSigned(a), sb)
		if r.Sign() < 0 {
			r.Add(r, new(big.Int).Abs(sb))
		}
		return fromSigned(r)
	})
}

// opAddmod and opMulmod compute with full precision and push 0 for a zero
// modulus.
func opAddmod(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return ternary(scope, func(a, b, m *uint256.Int) *uint256.Int { return a.AddMod(a, b, m) })
}

func opMulmod(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return ternary(scope, func(a, b, m *uint256.Int) *uint256.Int { return a.MulMod(a, b, m) })
}

// opExp raises base to exponent modulo 2^256 by square-and-multiply.
func opExp(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(base, exponent *uint256.Int) *uint256.Int { return base.Exp(base, exponent) })
}

// opSignExtend extends the sign bit of byte k (counted from the least
// significant end) through the word. k of 31 or more leaves the value as is.
// opSignExtend 以第 k 字节的最高位为符号位进行扩展；k >= 31 时值不变。
func opSignExtend(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(k, val *uint256.Int) *uint256.Int {
		if k.LtUint64(31) {
			val.ExtendSign(val, k)
		}
		return val
	})
}

func opLt(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return boolWord(a.Lt(b)) })
}

func opGt(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return boolWord(a.Gt(b)) })
}

func opSlt(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int {
		return boolWord(toSigned(a).Cmp(toSigned(b)) < 0)
	})
}

func opSgt(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int {
		return boolWord(toSigned(a).Cmp(toSigned(b)) > 0)
	})
}

func opEq(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return boolWord(a.Eq(b)) })
}

func opIszero(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return unary(scope, func(a *uint256.Int) *uint256.Int { return boolWord(a.IsZero()) })
}

func opAnd(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return a.And(a, b) })
}

func opOr(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return a.Or(a, b) })
}

func opXor(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(a, b *uint256.Int) *uint256.Int { return a.Xor(a, b) })
}

func opNot(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return unary(scope, func(a *uint256.Int) *uint256.Int { return a.Not(a) })
}

// opByte pushes byte pos of word, 0 being the most significant; positions
// past the word yield 0.
func opByte(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(pos, word *uint256.Int) *uint256.Int { return word.Byte(pos) })
}

// opSHL and opSHR push 0 for shifts of 256 or more.
func opSHL(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(shift, value *uint256.Int) *uint256.Int {
		if !shift.LtUint64(256) {
			return new(uint256.Int)
		}
		return value.Lsh(value, uint(shift.Uint64()))
	})
}

func opSHR(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(shift, value *uint256.Int) *uint256.Int {
		if !shift.LtUint64(256) {
			return new(uint256.Int)
		}
		return value.Rsh(value, uint(shift.Uint64()))
	})
}

// opSAR shifts right filling with bit 255. Shifts of 256 or more saturate to
// all ones for negative values and to zero otherwise.
// opSAR 算术右移，以第 255 位填充；移位 >= 256 时负数得全 1，非负数得 0。
func opSAR(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return binary(scope, func(shift, value *uint256.Int) *uint256.Int {
		if !shift.LtUint64(256) {
			if value.Sign() >= 0 {
				return value.Clear()
			}
			return value.SetAllOne()
		}
		return value.SRsh(value, uint(shift.Uint64()))
	})
}

// hashMemory pops [offset, length] and pushes the digest of that memory
// region. A zero length hashes the empty input without touching memory.
func hashMemory(scope *ScopeContext, digest func(...[]byte) []byte) error {
	ops, err := scope.Stack.PopN(2)
	if err != nil {
		return err
	}
	offset, length := &ops[0], &ops[1]
	data := []byte{}
	if !length.IsZero() {
		if !offset.IsUint64() || !length.IsUint64() {
			return ErrMemoryOverflow
		}
		if data, err = scope.Memory.Read(offset.Uint64(), length.Uint64()); err != nil {
			return err
		}
	}
	return scope.Stack.Push(new(uint256.Int).SetBytes(digest(data)))
}

func opSha3(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return hashMemory(scope, crypto.Keccak256)
}

func opBlake2b(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return hashMemory(scope, crypto.Blake2b256)
}

// opAddress pushes the 21 original bytes of the executing contract.
func opAddress(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	addr := in.block.ToAddress
	return scope.Stack.Push(new(uint256.Int).SetBytes(addr[:]))
}

// opBalance pops a token id, given as the integer value of its 10 original
// bytes, and pushes the balance of that token held by the executing
// contract. Off-chain it pushes 0 without consulting the provider.
// opBalance 弹出代币 ID（10 字节原始形式的整数值），压入合约持有的该代币余额；链下模式压入 0。
func opBalance(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	word, err := scope.Stack.Pop()
	if err != nil {
		return err
	}
	if in.cfg.Offchain {
		return scope.Stack.Push(new(uint256.Int))
	}
	if in.provider == nil {
		return ErrNoDataProvider
	}
	raw := word.Bytes32()
	token, _ := common.BytesToTokenId(raw[32-common.TokenIdLength:])

	balance, err := in.provider.GetBalance(ctx, in.block.ToAddress, token)
	if err != nil {
		return err
	}
	return scope.Stack.PushBig(balance)
}

// pushOnchain pushes v, or 0 when the interpreter runs off-chain.
func pushOnchain(in *Interpreter, scope *ScopeContext, v []byte) error {
	if in.cfg.Offchain {
		return scope.Stack.Push(new(uint256.Int))
	}
	return scope.Stack.Push(new(uint256.Int).SetBytes(v))
}

func opCaller(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return pushOnchain(in, scope, in.block.FromAddress.Bytes())
}

func opCallValue(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	if in.cfg.Offchain || in.block.Amount == nil {
		return scope.Stack.Push(new(uint256.Int))
	}
	return scope.Stack.PushBig(in.block.Amount)
}

func opTokenId(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return pushOnchain(in, scope, in.block.TokenId.Bytes())
}

func opFromHash(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return pushOnchain(in, scope, in.block.FromHash.Bytes())
}

func opHeight(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return scope.Stack.Push(new(uint256.Int).SetUint64(in.block.Height))
}

func opAccountHeight(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return scope.Stack.Push(new(uint256.Int).SetUint64(in.block.AccountHeight))
}

func opPrevHash(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return scope.Stack.Push(new(uint256.Int).SetBytes(in.block.PrevHash.Bytes()))
}

func opTimestamp(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return scope.Stack.Push(new(uint256.Int).SetUint64(in.block.Timestamp))
}

func opPop(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	_, err := scope.Stack.Pop()
	return err
}

// memoryOffset converts a stack word into a memory offset.
func memoryOffset(w *uint256.Int) (uint64, error) {
	if !w.IsUint64() {
		return 0, ErrMemoryOverflow
	}
	return w.Uint64(), nil
}

func opMload(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	w, err := scope.Stack.Pop()
	if err != nil {
		return err
	}
	offset, err := memoryOffset(&w)
	if err != nil {
		return err
	}
	data, err := scope.Memory.Read(offset, 32)
	if err != nil {
		return err
	}
	return scope.Stack.Push(new(uint256.Int).SetBytes(data))
}

// opMstore pops [offset, value] and stores value as a 32 byte word.
func opMstore(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	ops, err := scope.Stack.PopN(2)
	if err != nil {
		return err
	}
	offset, err := memoryOffset(&ops[0])
	if err != nil {
		return err
	}
	return scope.Memory.Set32(offset, &ops[1])
}

// opMstore8 pops [offset, value] and stores the low byte of value.
func opMstore8(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	ops, err := scope.Stack.PopN(2)
	if err != nil {
		return err
	}
	offset, err := memoryOffset(&ops[0])
	if err != nil {
		return err
	}
	return scope.Memory.SetByte(offset, byte(ops[1].Uint64()))
}

func opMsize(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return scope.Stack.Push(new(uint256.Int).SetUint64(uint64(scope.Memory.Len())))
}

func opPc(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return scope.Stack.Push(new(uint256.Int).SetUint64(scope.PC))
}

func opJumpdest(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return nil
}

func opStop(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	return nil
}

// opReturn pops [offset, size], keeps that memory region as the return
// data and halts.
func opReturn(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
	ops, err := scope.Stack.PopN(2)
	if err != nil {
		return err
	}
	offset, err := memoryOffset(&ops[0])
	if err != nil {
		return err
	}
	size, err := memoryOffset(&ops[1])
	if err != nil {
		return err
	}
	scope.ReturnData, err = scope.Memory.Read(offset, size)
	return err
}

// makePush creates a push executor for a PUSHn instruction. The immediate is
// read from the code after scope.PC, which is then advanced past it.
// makePush 创建 PUSHn 的执行函数：从代码中读取 size 字节立即数并前移 PC。
func makePush(size uint64) executionFunc {
	return func(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
		start := scope.PC + 1
		end := start + size
		if end > uint64(len(scope.Code)) || end < start {
			return ErrInvalidPush
		}
		if err := scope.Stack.Push(new(uint256.Int).SetBytes(scope.Code[start:end])); err != nil {
			return err
		}
		scope.PC += size
		return nil
	}
}

// makeDup creates a dup executor for DUPn.
func makeDup(size int) executionFunc {
	return func(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
		return scope.Stack.Dup(size)
	}
}

// makeSwap creates a swap executor for SWAPn.
func makeSwap(size int) executionFunc {
	return func(ctx context.Context, in *Interpreter, scope *ScopeContext) error {
		return scope.Stack.Swap(size)
	}
}
