/*
* Kolmogorov test module
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

// KsTest returns the Kolmogorov-Smirnov statistic between the empirical
// bucket CDF and the uniform CDF, the bucket index of the maximal
// deviation, and the critical values at significance 0.01 and 0.05.
func KsTest(buckets []int, totalWords int) (float64, int, float64, float64) {
	var empiricalCumSum float64
	var theoreticalCumSum float64

	var ksStatistic float64
	var maxDiffPosition int

	for idx, count := range buckets {
		empiricalCumSum += float64(count) / float64(totalWords)
		theoreticalCumSum += 1.0 / float64(len(buckets))

		diff := math.Abs(empiricalCumSum - theoreticalCumSum)
		if diff > ksStatistic {
			ksStatistic = diff
			maxDiffPosition = idx
		}
	}

	criticalValue001 := 1.63 / math.Sqrt(float64(totalWords))
	criticalValue005 := 1.36 / math.Sqrt(float64(totalWords))
	return ksStatistic, maxDiffPosition, criticalValue001, criticalValue005
}
