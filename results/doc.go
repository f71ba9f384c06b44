// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package results computes the aggregate outcome of a voting round.

# Aggregation

Aggregate is a pure function from (members, votes) to a report:

	report := results.Aggregate(members, votes)

  - Histogram: count per card token, fixed card-scale order, zero-count
    tokens omitted
  - Mean: arithmetic mean of numeric votes, rounded to 2 decimals
  - Median: exact (average of the two middle values for even counts)
  - TotalVotes: every vote, numeric or not
  - NonVoters: members without a vote, in join order

"½" counts as 0.5; "?" is excluded from mean and median but kept in the
histogram and total. Mean and Median are nil when every vote abstained.

# Rendering

FormatReport produces the text broadcast to participants on reveal.
Nothing in this package touches storage or the network.
*/
package results
