/*
* Candidate hash functions module
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// BucketCount is the size of the 16-bit hash output space.
const BucketCount = 65536

type NamedHashFunc struct {
	Name string
	Hash func(word string) uint16
}

func StringLengthHash(word string) uint16 {
	return uint16(len(word) % BucketCount)
}

func FirstCharacterHash(word string) uint16 {
	if len(word) == 0 {
		return 0
	}
	return uint16(word[0])
}

func AdditiveChecksumHash(word string) uint16 {
	var h int
	for i := 0; i < len(word); i++ {
		h = (h + int(word[i])) % BucketCount
	}
	return uint16(h)
}

func RemainderHash(word string) uint16 {
	// 65413 is the largest prime below 65536, so bucket indices
	// stay inside [0, 65412].
	const m = 65413
	var h int
	for i := 0; i < len(word); i++ {
		h = (h*31 + int(word[i])) % m
	}
	return uint16(h)
}

func MultiplicativeHash(word string) uint16 {
	var h float64
	for i := 0; i < len(word); i++ {
		h = math.Mod(h*0.6180339887+float64(word[i]), 1.0)
	}
	return uint16(h * BucketCount)
}

// LibraryHash is the general-purpose baseline. Its exact values are not
// meaningful, only how uniformly they spread.
func LibraryHash(word string) uint16 {
	return uint16(xxhash.Sum64String(word) % BucketCount)
}

func CandidateHashFuncs() []NamedHashFunc {
	return []NamedHashFunc{
		{Name: "String Length", Hash: StringLengthHash},
		{Name: "First Character", Hash: FirstCharacterHash},
		{Name: "Additive Checksum", Hash: AdditiveChecksumHash},
		{Name: "Remainder", Hash: RemainderHash},
		{Name: "Multiplicative", Hash: MultiplicativeHash},
		{Name: "Library (xxHash)", Hash: LibraryHash},
	}
}
