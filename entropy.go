/*
* Entropy estimation test module
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
)

// EntropyEstimation returns the Shannon entropy of the bucket distribution
// in bits. A perfectly uniform spread over 65536 buckets yields 16 bits.
func EntropyEstimation(buckets []int, totalWords int) float64 {
	var entropy float64
	for _, count := range buckets {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(totalWords)
		entropy += p * math.Log2(p)
	}
	return -entropy
}
