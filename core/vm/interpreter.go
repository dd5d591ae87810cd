// Copyright 2014 The go-ethereum Authors
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

	"github.com/holiman/uint256"

	"github.com/vitelabs/vitecore/log"
)

// Config are the configuration options for the Interpreter
// Config 是解释器的配置选项
type Config struct {
	StackLimit int  // Maximum stack height, 0 selects params.StackLimit 最大栈高度
	Offchain   bool // Off-chain query mode, transactional context reads as 0 链下查询模式
	Debug      bool // Log every executed instruction at trace level 以 trace 级别记录每条指令
}

// ScopeContext contains the things that are per-call, such as stack and memory,
// together with the code being run and the program counter.
// ScopeContext 包含每次调用的内容，例如栈和内存，以及正在执行的代码和程序计数器。
type ScopeContext struct {
	Memory     *Memory // 调用中的内存
	Stack      *Stack  // 调用中的栈
	Code       []byte  // 正在执行的字节码
	PC         uint64  // 程序计数器
	ReturnData []byte  // RETURN 留下的数据
}

// MemoryData returns the underlying memory slice. Callers must not modify the contents
// of the returned data.
// MemoryData 返回底层内存切片，调用者不得修改。
func (ctx *ScopeContext) MemoryData() []byte {
	if ctx.Memory == nil {
		return nil
	}
	return ctx.Memory.Data()
}

// StackData returns the stack data. Callers must not modify the contents
// of the returned data.
// StackData 返回栈数据，调用者不得修改。
func (ctx *ScopeContext) StackData() []uint256.Int {
	if ctx.Stack == nil {
		return nil
	}
	return ctx.Stack.Data()
}

// Release returns the stack and memory to their pools. The scope must not be
// used afterwards.
func (ctx *ScopeContext) Release() {
	if ctx.Stack != nil {
		ReturnStack(ctx.Stack)
		ctx.Stack = nil
	}
	if ctx.Memory != nil {
		ctx.Memory.Free()
		ctx.Memory = nil
	}
}

// Interpreter executes vm instructions against a block context. It holds
// no per-run state and may be shared by concurrent runs.
// Interpreter 在给定账户块上下文中执行指令；不保存单次执行的状态，可被并发使用。
type Interpreter struct {
	cfg      Config
	block    BlockContext
	provider DataProvider
	table    *JumpTable // 操作码跳转表
}

// NewInterpreter returns a new instance of the Interpreter. The provider may
// be nil when the code never reads balances or runs off-chain.
// NewInterpreter 返回一个新的解释器实例。
func NewInterpreter(cfg Config, block BlockContext, provider DataProvider) *Interpreter {
	return &Interpreter{
		cfg:      cfg,
		block:    block,
		provider: provider,
		table:    &viteInstructionSet,
	}
}

// Config returns the interpreter configuration.
func (in *Interpreter) Config() Config { return in.cfg }

// NewScope prepares a fresh stack and memory for running code. The caller
// owns the scope and should Release it when done.
// NewScope 为执行 code 准备新的栈和内存，调用者负责 Release。
func (in *Interpreter) NewScope(code []byte) *ScopeContext {
	return &ScopeContext{
		Memory: NewMemory(),
		Stack:  NewStack(in.cfg.StackLimit),
		Code:   code,
	}
}

// Execute dispatches a single opcode against scope. PUSH instructions read
// their immediate from scope.Code after scope.PC. Halting opcodes return nil.
// Execute 对 scope 执行单个操作码；停机指令返回 nil。
func (in *Interpreter) Execute(ctx context.Context, op OpCode, scope *ScopeContext) error {
	_, err := in.execute(ctx, op, scope)
	return err
}

func (in *Interpreter) execute(ctx context.Context, op OpCode, scope *ScopeContext) (halt bool, err error) {
	operation := in.table[op]
	if operation == nil {
		return false, &ErrOpcode{opcode: op, pc: scope.PC}
	}
	// Validate stack
	// 验证栈
	if err := scope.Stack.Require(operation.minStack); err != nil {
		return false, err
	}
	if in.cfg.Debug {
		log.Trace("Executing instruction", "pc", scope.PC, "op", op, "stack", scope.Stack.Len())
	}
	if err := operation.execute(ctx, in, scope); err != nil {
		return false, err
	}
	return operation.halts, nil
}

// Run executes code from its first byte until a STOP or RETURN, an error, or
// the end of the code, and returns the RETURN data if any.
// Control flow is not supported: JUMP and JUMPI fail like every other
// unsupported opcode.
// Run 从第一个字节开始执行，直到 STOP、RETURN、出错或代码结束。
func (in *Interpreter) Run(ctx context.Context, code []byte) ([]byte, error) {
	scope := in.NewScope(code)
	defer scope.Release()

	return in.RunScope(ctx, scope)
}

// RunScope is like Run but executes scope.Code from scope.PC on a caller
// provided scope, leaving the final stack and memory in place.
// RunScope 在调用者提供的 scope 上执行，执行后栈和内存保持不变。
func (in *Interpreter) RunScope(ctx context.Context, scope *ScopeContext) ([]byte, error) {
	// The Interpreter main run loop. This loop runs until either an explicit
	// STOP or RETURN is executed, an error occurred during the execution of
	// one of the operations or until the done flag is set by the parent
	// context.
	// 解释器的主运行循环。
	for scope.PC < uint64(len(scope.Code)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		halt, err := in.execute(ctx, OpCode(scope.Code[scope.PC]), scope)
		if err != nil {
			return nil, err
		}
		if halt {
			return scope.ReturnData, nil
		}
		scope.PC++
	}
	return scope.ReturnData, nil
}
