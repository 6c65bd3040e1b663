package csvdoc

import (
	"github.com/sirupsen/logrus"
)

// detectSeparator picks the candidate whose per-line count is the most
// consistent over a bounded prefix of input. Defaults to comma.
func detectSeparator(input string) rune {
	lines := sampleCounts(input, cDetectSampleLines, cDetectSampleBytes)

	best := rune(cDefaultSeparator)
	bestScore := 0
	for i, cand := range cDetectCandidates {
		counts := make([]int, len(lines))
		for j, line := range lines {
			counts[j] = line[i]
		}
		// strict > keeps the earlier candidate on ties
		if score := consistency(counts); score > bestScore {
			best = cand
			bestScore = score
		}
	}

	logrus.WithFields(logrus.Fields{
		"separator": SeparatorName(best),
		"lines":     len(lines),
		"score":     bestScore,
	}).Debug("Detected separator")
	return best
}

// sampleCounts counts every candidate outside quotes for up to maxLines
// non-empty logical lines within the first maxBytes of input.
// A line cut off by maxBytes is used only when it is the only line.
func sampleCounts(input string, maxLines, maxBytes int) [][]int {
	truncated := false
	if len(input) > maxBytes {
		input = input[:maxBytes]
		truncated = true
	}

	lines := make([][]int, 0, maxLines)
	counts := make([]int, len(cDetectCandidates))
	empty := true
	inQuotes := false

	for i := 0; i < len(input) && len(lines) < maxLines; i++ {
		c := rune(input[i])
		if c == cQuote {
			inQuotes = !inQuotes
			empty = false
			continue
		}
		if inQuotes {
			continue
		}
		if isLineEnd(c) {
			if !empty {
				lines = append(lines, counts)
				counts = make([]int, len(cDetectCandidates))
				empty = true
			}
			continue
		}
		empty = false
		for j, cand := range cDetectCandidates {
			if c == cand {
				counts[j]++
			}
		}
	}
	if !empty && len(lines) < maxLines && (!truncated || len(lines) == 0) {
		lines = append(lines, counts)
	}
	return lines
}

// consistency returns how many lines share the most frequent non-zero count.
func consistency(counts []int) int {
	freq := make(map[int]int)
	best := 0
	for _, n := range counts {
		if n == 0 {
			continue
		}
		freq[n]++
		if freq[n] > best {
			best = freq[n]
		}
	}
	return best
}
