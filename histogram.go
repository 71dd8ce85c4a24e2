/*
* Histogram rendering module
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
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
)

// SegmentCount is the number of displayable histogram columns; each column
// covers BucketCount/SegmentCount contiguous buckets.
const SegmentCount = 16

func printHorizontalLine(w io.Writer, length int) {
	fmt.Fprintln(w, strings.Repeat("-", length-1))
}

// normalizeSegments compresses the bucket histogram into SegmentCount
// column heights in [0, height-1]. Each segment is represented by its
// maximal bucket count, scaled against the global min/max over the whole
// histogram. A degenerate histogram (max == min) renders flat at height 0.
func normalizeSegments(buckets []int, height int) ([]int, error) {
	bucketData := stats.LoadRawData(buckets)
	globalMin, err := stats.Min(bucketData)
	if err != nil {
		return nil, fmt.Errorf("histogram min calc error: %w", err)
	}
	globalMax, err := stats.Max(bucketData)
	if err != nil {
		return nil, fmt.Errorf("histogram max calc error: %w", err)
	}

	segmentSize := len(buckets) / SegmentCount
	normalized := make([]int, SegmentCount)
	if globalMax == globalMin {
		return normalized, nil
	}

	for i := 0; i < SegmentCount; i++ {
		segment := bucketData[i*segmentSize : (i+1)*segmentSize]
		segmentMax, err := stats.Max(segment)
		if err != nil {
			return nil, fmt.Errorf("segment max calc error: %w", err)
		}
		normalized[i] = int(math.Round((segmentMax - globalMin) / (globalMax - globalMin) * float64(height-1)))
	}
	return normalized, nil
}

func (t *HashTester) printHistogram(buckets []int) error {
	normalized, err := normalizeSegments(buckets, t.config.HistogramHeight)
	if err != nil {
		return err
	}

	out := t.config.Output
	fmt.Fprintln(out, "Histogram (Hashes Distribution):")
	printHorizontalLine(out, t.config.HistogramWidth)

	for row := t.config.HistogramHeight - 1; row >= 0; row-- {
		fmt.Fprint(out, "|")
		for col := 0; col < SegmentCount; col++ {
			if normalized[col] >= row {
				fmt.Fprint(out, "   #")
			} else {
				fmt.Fprint(out, "    ")
			}
		}
		fmt.Fprintln(out, "   |")
	}

	printHorizontalLine(out, t.config.HistogramWidth)

	fmt.Fprint(out, " ")
	for i := 0; i < SegmentCount; i++ {
		fmt.Fprintf(out, "%4d", i)
	}
	fmt.Fprintln(out)
	return nil
}
