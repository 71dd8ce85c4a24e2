/*
* Pearson chi-squared test module
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
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSqTest compares the observed bucket counts against a uniform
// distribution over len(buckets) values.
func ChiSqTest(buckets []int, totalWords int) (float64, error) {
	if totalWords == 0 {
		return 0, errors.New("dictionary is empty, chi-square is undefined")
	}

	expected := float64(totalWords) / float64(len(buckets))

	var chiSquare float64
	for _, count := range buckets {
		observed := float64(count)
		chiSquare += math.Pow(observed-expected, 2) / expected
	}
	return chiSquare, nil
}

// ChiSqPValue evaluates the chi-squared CDF with BucketCount-1 degrees of
// freedom. gonum computes it through the regularized incomplete gamma
// function, which stays accurate at 65535 degrees of freedom.
func ChiSqPValue(chiSquare float64) float64 {
	c2d := distuv.ChiSquared{K: float64(BucketCount - 1)}
	return c2d.CDF(chiSquare)
}
