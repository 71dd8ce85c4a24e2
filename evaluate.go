/*
* Hash distribution evaluation module
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
	"fmt"
	"io"
	"os"

	"github.com/montanaflynn/stats"
)

type Config struct {
	DictionaryPath  string
	HistogramWidth  int
	HistogramHeight int
	Output          io.Writer
}

func DefaultConfig() Config {
	return Config{
		DictionaryPath:  "./words.txt",
		HistogramWidth:  70,
		HistogramHeight: 10,
		Output:          os.Stdout,
	}
}

type HashTester struct {
	words  []string
	config Config
}

func NewHashTester(words []string, config Config) *HashTester {
	return &HashTester{words: words, config: config}
}

// countHashes tallies every word into a freshly zeroed bucket histogram.
// The sum of all counters always equals the word count.
func (t *HashTester) countHashes(hashFunc func(string) uint16) []int {
	buckets := make([]int, BucketCount)
	for _, word := range t.words {
		buckets[hashFunc(word)]++
	}
	return buckets
}

func (t *HashTester) TestHashFunction(name string, hashFunc func(string) uint16) error {
	buckets := t.countHashes(hashFunc)

	chiSquare, err := ChiSqTest(buckets, len(t.words))
	if err != nil {
		return fmt.Errorf("%s hash: %w", name, err)
	}
	pValue := ChiSqPValue(chiSquare)

	ksStatistic, maxDiffPosition, criticalValue001, criticalValue005 := KsTest(buckets, len(t.words))
	entropy := EntropyEstimation(buckets, len(t.words))

	bucketData := stats.LoadRawData(buckets)
	bucketStdDev, err := stats.StandardDeviation(bucketData)
	if err != nil {
		return fmt.Errorf("%s hash: standard deviation calc error: %w", name, err)
	}
	bucketMin, err := stats.Min(bucketData)
	if err != nil {
		return fmt.Errorf("%s hash: min calc error: %w", name, err)
	}
	bucketMax, err := stats.Max(bucketData)
	if err != nil {
		return fmt.Errorf("%s hash: max calc error: %w", name, err)
	}

	out := t.config.Output
	printHorizontalLine(out, t.config.HistogramWidth)
	fmt.Fprintf(out, "%s Hash:\n", name)
	printHorizontalLine(out, t.config.HistogramWidth/2)
	fmt.Fprintf(out, "Chi-Square: %f\n", chiSquare)
	fmt.Fprintf(out, "P-Value: %f\n", pValue)
	fmt.Fprintf(out, "KS Statistic: %f at bucket %d (crit. values: %f at 0.01, %f at 0.05)\n",
		ksStatistic, maxDiffPosition, criticalValue001, criticalValue005)
	fmt.Fprintf(out, "Entropy: %f bits of 16\n", entropy)
	fmt.Fprintf(out, "Buckets: min %.0f, max %.0f, std. dev. %f\n", bucketMin, bucketMax, bucketStdDev)

	return t.printHistogram(buckets)
}

// RunAllTests evaluates every candidate hash function in a fixed order,
// each against its own freshly tallied histogram.
func (t *HashTester) RunAllTests() error {
	if len(t.words) == 0 {
		return errors.New("dictionary is empty")
	}
	for _, candidate := range CandidateHashFuncs() {
		if err := t.TestHashFunction(candidate.Name, candidate.Hash); err != nil {
			return err
		}
	}
	return nil
}
