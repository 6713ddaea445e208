// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tib implements Gibbs sampling kernels for the Topic-Indexed Bias
// flavor of Mixed Membership Matrix Factorization (Mackey, Weiss and Jordan,
// ICML 2010). A rating is modeled as a base prediction plus two topic-indexed
// bias terms: each user owns an offset vector indexed by the item-side topic
// of an example, and each item owns one indexed by the user-side topic. The
// package redraws both offset matrices from their exact conjugate Gaussian
// posteriors given the current residuals and topic assignments; the outer
// sweep loop, topic sampling and factor sampling belong to the caller.
package tib
