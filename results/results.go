// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/planning-poker/models"
)

// NumericValue parses a card token into its numeric value. The abstain
// token reports ok=false and is excluded from statistics.
func NumericValue(token string) (float64, bool) {
	switch token {
	case models.CardAbstain:
		return 0, false
	case models.CardHalf:
		return 0.5, true
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Aggregate computes the results report for one voting round. It is
// deterministic and has no side effects: same members and votes, same
// report.
func Aggregate(members []models.Membership, votes []models.Vote) models.ResultsReport {
	counts := make(map[string]int)
	var numeric []float64
	voted := make(map[int64]bool)

	for _, v := range votes {
		counts[v.Value]++
		voted[v.UserID] = true
		if n, ok := NumericValue(v.Value); ok {
			numeric = append(numeric, n)
		}
	}

	// Histogram in card display order, present tokens only
	histogram := []models.TokenCount{}
	for _, card := range models.Cards {
		if c, ok := counts[card]; ok {
			histogram = append(histogram, models.TokenCount{Value: card, Count: c})
		}
	}

	report := models.ResultsReport{
		Histogram:  histogram,
		TotalVotes: len(votes),
		NonVoters:  []models.Membership{},
	}

	if len(numeric) > 0 {
		m := round2(mean(numeric))
		md := median(numeric)
		report.Mean = &m
		report.Median = &md
	}

	// Non-voters in join order
	for _, m := range members {
		if !voted[m.UserID] {
			report.NonVoters = append(report.NonVoters, m)
		}
	}

	return report
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median returns the middle element, or the average of the two middle
// elements for even-length input
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DisplayName picks the name shown for a member in report text:
// username, else display name, else the raw user id.
func DisplayName(m models.Membership) string {
	if m.Username != "" {
		return m.Username
	}
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return strconv.FormatInt(m.UserID, 10)
}

// FormatReport renders the report as the text broadcast to participants.
func FormatReport(sess models.Session, r models.ResultsReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Results for %q (%s):\n", sess.Title, sess.ID)

	for _, tc := range r.Histogram {
		fmt.Fprintf(&b, "%s — %d\n", tc.Value, tc.Count)
	}

	fmt.Fprintf(&b, "\nTotal votes: %d\n", r.TotalVotes)
	if r.Mean != nil {
		fmt.Fprintf(&b, "Mean: %.2f\n", *r.Mean)
	}
	if r.Median != nil {
		fmt.Fprintf(&b, "Median: %s\n", strconv.FormatFloat(*r.Median, 'f', -1, 64))
	}

	if len(r.NonVoters) > 0 {
		b.WriteString("\nNot voted yet:\n")
		for _, m := range r.NonVoters {
			fmt.Fprintf(&b, "- %s\n", DisplayName(m))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
