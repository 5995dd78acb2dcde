// SPDX-License-Identifier: MIT

// Package dataset reads and writes L-function records as YAML.
//
// A record carries the functional-equation data (degree, mus, A, H,
// fft_NN), the root number ε recorded at ingestion, an optional declared
// rank and the stored samples F(n/A) of each side as ball literals:
//
//	name: cos-demo
//	degree: 2
//	a: 4
//	h: 8
//	fft_nn: 1024
//	epsilon: {re: 1, im: 0}
//	self_dual: true
//	samples:
//	  primal:
//	    - {n: 0, value: "[0x.8p+1, 0x.8p+1]"}
//	    - {n: 1, value: "0.5 +/- 1e-20"}
//
// Any form accepted by ball.Parse may be used; Encode writes exact
// hexadecimal endpoints so a write/read cycle loses nothing. A self-dual
// record may omit the dual samples.
package dataset
