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

package tib

import (
	"context"

	"github.com/chewxy/math32"
	"github.com/gorse-io/m3f/base"
	"github.com/gorse-io/m3f/base/log"
	"github.com/gorse-io/m3f/common/floats"
	"github.com/gorse-io/m3f/common/parallel"
	"github.com/gorse-io/m3f/dataset"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// SampleOffsets redraws the per-user offsets c and the per-item offsets d
// from their conjugate Gaussian posteriors, overwriting samp in place. The
// user side is refreshed first, so the item side always observes the freshly
// sampled user offsets. A side is skipped when its gate is off or when the
// topic count indexing its offsets is zero; a skipped side is left untouched,
// and the other side reads whatever its offsets currently hold.
//
// rngs is the caller-owned pool of generators, one per worker; len(rngs) must
// be at least config.Jobs. Inputs must satisfy the shape contract (topic
// assignments within range, adjacency referencing valid examples); violations
// are programming errors and panic.
func (tib *TIB) SampleOffsets(ctx context.Context, data *dataset.Dataset, samp *Sample, rngs []base.RandomGenerator, config *SampleConfig) error {
	if config == nil {
		config = NewSampleConfig()
	}
	log.Logger().Debug("sample offsets",
		zap.Int("num_users", data.CountUsers()),
		zap.Int("num_items", data.CountItems()),
		zap.Int("num_examples", data.CountExamples()),
		zap.Int("jobs", config.Jobs))
	invSigmaSqd := 1 / tib.sigmaSqd
	invSigmaSqd0 := 1 / tib.sigmaSqd0
	// Sample c offsets
	if tib.itemTopics > 0 && config.SampleUserOffsets {
		if err := sampleOffsets(ctx, data.GetExampsByUser(), data.GetItems(),
			samp.UserTopics, samp.ItemTopics, samp.Residuals,
			tib.userTopics, tib.itemTopics, invSigmaSqd, invSigmaSqd0, tib.c0,
			samp.UserOffsets, samp.ItemOffsets, rngs, config.Jobs); err != nil {
			return errors.Trace(err)
		}
	}
	// Sample d offsets
	if tib.userTopics > 0 && config.SampleItemOffsets {
		if err := sampleOffsets(ctx, data.GetExampsByItem(), data.GetUsers(),
			samp.ItemTopics, samp.UserTopics, samp.Residuals,
			tib.itemTopics, tib.userTopics, invSigmaSqd, invSigmaSqd0, tib.d0,
			samp.ItemOffsets, samp.UserOffsets, rngs, config.Jobs); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// sampleOffsets redraws the offset vectors of one side of the dyad. It is
// written from the perspective of sampling the user offsets c; swap the roles
// of the user and item arguments to sample the item offsets d.
//
// Each entity is one indivisible job: its offset row is zeroed, per-topic
// sufficient statistics are aggregated over its adjacency list, then every
// coordinate is drawn from its posterior using the worker's private
// generator. Workers write disjoint rows of offsets and only read
// crossOffsets, so no synchronization is needed beyond the dispatch itself.
func sampleOffsets(ctx context.Context, examps [][]int32, crossIds []int32,
	ownTopics, crossTopics []int32, residuals []float32,
	ownK, crossK int, invSigmaSqd, invSigmaSqd0, priorMean float32,
	offsets, crossOffsets [][]float32,
	rngs []base.RandomGenerator, jobs int) error {
	jobs = max(jobs, 1)
	// Prior term shared by every coordinate
	ratio := priorMean * invSigmaSqd0
	// Per-worker topic counts, re-zeroed for every entity
	counts := base.NewMatrixInt(jobs, crossK)
	return parallel.Parallel(ctx, len(offsets), jobs, func(workerId, u int) error {
		offset := offsets[u]
		floats.Zero(offset)
		count := counts[workerId]
		for i := range count {
			count[i] = 0
		}
		// Aggregate sufficient statistics by cross-side topic
		for _, e := range examps[u] {
			i := crossTopics[e]
			if ownK > 0 {
				offset[i] += residuals[e] - crossOffsets[crossIds[e]][ownTopics[e]]
			} else {
				offset[i] += residuals[e]
			}
			count[i]++
		}
		// Draw new offset values using sufficient statistics
		rng := rngs[workerId]
		for i := 0; i < crossK; i++ {
			variance := 1 / (invSigmaSqd0 + float32(count[i])*invSigmaSqd)
			mean := (ratio + offset[i]*invSigmaSqd) * variance
			offset[i] = rng.Gaussian(mean, math32.Sqrt(variance))
		}
		return nil
	})
}
