/*
* Hash distribution evaluation tests
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
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(out *bytes.Buffer) Config {
	config := DefaultConfig()
	config.Output = out
	return config
}

func testWords(n int) []string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, fmt.Sprintf("word%d", i))
	}
	return words
}

func TestCountHashesSumInvariant(t *testing.T) {
	words := append(testWords(500), "", "Привіт", strings.Repeat("x", 70000))
	tester := NewHashTester(words, testConfig(&bytes.Buffer{}))

	for _, candidate := range CandidateHashFuncs() {
		buckets := tester.countHashes(candidate.Hash)
		var sum int
		for _, count := range buckets {
			sum += count
		}
		assert.Equal(t, len(words), sum, "%s hash lost or duplicated words", candidate.Name)
	}
}

func TestTestHashFunctionReport(t *testing.T) {
	var out bytes.Buffer
	tester := NewHashTester([]string{"cat", "dog", "bird"}, testConfig(&out))

	require.NoError(t, tester.TestHashFunction("String Length", StringLengthHash))

	report := out.String()
	assert.Contains(t, report, "String Length Hash:")
	assert.Contains(t, report, "Chi-Square: ")
	assert.Contains(t, report, "P-Value: ")
	assert.Contains(t, report, "KS Statistic: ")
	assert.Contains(t, report, "Entropy: ")
	assert.Contains(t, report, "Histogram (Hashes Distribution):")
	assert.Contains(t, report, strings.Repeat("-", 69)+"\n", "full-width divider is width-1 dashes")
	assert.Contains(t, report, "\n"+strings.Repeat("-", 34)+"\n", "half-width divider")
}

func TestTestHashFunctionEmptyWordList(t *testing.T) {
	var out bytes.Buffer
	tester := NewHashTester(nil, testConfig(&out))
	err := tester.TestHashFunction("String Length", StringLengthHash)
	require.Error(t, err)
	assert.NotContains(t, out.String(), "Chi-Square", "no partial report on error")
}

func TestRunAllTests(t *testing.T) {
	var out bytes.Buffer
	tester := NewHashTester(testWords(200), testConfig(&out))
	require.NoError(t, tester.RunAllTests())

	report := out.String()
	for _, candidate := range CandidateHashFuncs() {
		assert.Contains(t, report, candidate.Name+" Hash:")
	}
}

func TestRunAllTestsEmptyDictionary(t *testing.T) {
	var out bytes.Buffer
	tester := NewHashTester(nil, testConfig(&out))
	require.Error(t, tester.RunAllTests())
	assert.Empty(t, out.String())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "./words.txt", config.DictionaryPath)
	assert.Equal(t, 70, config.HistogramWidth)
	assert.Equal(t, 10, config.HistogramHeight)
}
