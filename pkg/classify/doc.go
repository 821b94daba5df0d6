// Package classify tells genuine social profiles from fake ones with the
// profile acceptor of package catalog.
//
// # Overview
//
// Every profile in a [dataset.Graph] has a friend list. [Evaluate] marks a
// random subset of ids as genuine, gives every friend an activity string
// drawn from the genuine or the fake pattern, and asks the [Classifier]
// whether the string is accepted. The verdicts are tallied against the
// ground truth into a [Report].
//
// The default patterns are (a|b)*a# for genuine and (a*|b)(b|ab*a)# for fake
// activity. They overlap, and the acceptor needs at least two symbols before
// the final a, so the classifier is deliberately imperfect.
//
// # Reproducibility
//
// All randomness derives from [Options.Seed]; the same dataset and options
// always produce the same report.
package classify
