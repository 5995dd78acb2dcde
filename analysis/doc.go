// SPDX-License-Identifier: MIT

// Package analysis runs the rank and zero engines over whole L-function
// instances and collects the outcome into a Report.
//
// An Analyzer is configured once and may analyse many contexts. Run works on
// a single Job; RunBatch fans independent jobs out over a bounded number of
// goroutines and stops handing out new jobs once its context is cancelled.
// A scan already in progress always runs to completion.
//
// Every Job must own its Context: the engines mutate the rank, the leading
// term and the zero lists, and none of that is synchronised.
package analysis
