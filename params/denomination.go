// Copyright 2017 The go-ethereum Authors
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

package params

// These are the multipliers for VITE denominations.
// Example: To get the attov value of an amount in 'vite', use
//
//	new(big.Int).Mul(value, big.NewInt(params.Vite))
//
// 这些是 VITE 单位的乘数。attov 是最小单位，1 VITE = 10^18 attov。
const (
	Attov = 1    // Attov 是 VITE 的最小单位，值为 1
	Vite  = 1e18 // Vite 是 10^18 Attov

	ViteDecimals = 18 // Number of decimal places of the VITE token
)
