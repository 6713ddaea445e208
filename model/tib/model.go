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
	"github.com/gorse-io/m3f/base"
	"github.com/gorse-io/m3f/model"
	"github.com/samber/lo"
)

// TIB is the Topic-Indexed Bias model.
//
// Hyper-parameters:
//
//	UserTopics     - The number of user-side topics (K^U). Default is 4.
//	ItemTopics     - The number of item-side topics (K^M). Default is 4.
//	NoiseVariance  - The residual noise variance (sigma^2). Default is 0.5.
//	OffsetVariance - The prior variance of offsets (sigma_0^2). Default is 0.1.
//	UserOffsetMean - The prior mean of user offsets (c_0). Default is 0.
//	ItemOffsetMean - The prior mean of item offsets (d_0). Default is 0.
//
// A topic count of zero disables the corresponding offsets: users own no
// offset vectors when ItemTopics is 0, items own none when UserTopics is 0.
type TIB struct {
	model.BaseModel
	// Hyper parameters
	userTopics int
	itemTopics int
	sigmaSqd   float32
	sigmaSqd0  float32
	c0         float32
	d0         float32
}

var _ model.Model = &TIB{}

// NewTIB creates a TIB model.
func NewTIB(params model.Params) *TIB {
	tib := new(TIB)
	tib.SetParams(params)
	return tib
}

// SetParams sets hyper-parameters of the TIB model.
func (tib *TIB) SetParams(params model.Params) {
	tib.BaseModel.SetParams(params)
	// Setup hyper-parameters
	tib.userTopics = tib.Params.GetInt(model.UserTopics, 4)
	tib.itemTopics = tib.Params.GetInt(model.ItemTopics, 4)
	tib.sigmaSqd = tib.Params.GetFloat32(model.NoiseVariance, 0.5)
	tib.sigmaSqd0 = tib.Params.GetFloat32(model.OffsetVariance, 0.1)
	tib.c0 = tib.Params.GetFloat32(model.UserOffsetMean, 0)
	tib.d0 = tib.Params.GetFloat32(model.ItemOffsetMean, 0)
}

func (tib *TIB) GetParamsGrid(withSize bool) model.ParamsGrid {
	return model.ParamsGrid{
		model.UserTopics:     lo.If(withSize, []interface{}{1, 2, 4, 8}).Else([]interface{}{4}),
		model.ItemTopics:     lo.If(withSize, []interface{}{1, 2, 4, 8}).Else([]interface{}{4}),
		model.NoiseVariance:  []interface{}{0.1, 0.5, 1.0},
		model.OffsetVariance: []interface{}{0.01, 0.1, 1.0},
		model.UserOffsetMean: []interface{}{0},
		model.ItemOffsetMean: []interface{}{0},
	}
}

// Sample is one Gibbs draw of the model variables touched by this package.
// Offset matrices are allocated once per run and overwritten in place on
// every sweep; topic assignments and residuals are read-only inputs refreshed
// by the caller between sweeps.
type Sample struct {
	UserOffsets [][]float32 // c: numUsers x ItemTopics
	ItemOffsets [][]float32 // d: numItems x UserTopics
	UserTopics  []int32     // z^U: user-side topic of each example
	ItemTopics  []int32     // z^M: item-side topic of each example
	Residuals   []float32   // observed minus base-predicted rating of each example
}

// NewSample allocates the sample state for a sampling run.
func (tib *TIB) NewSample(numUsers, numItems, numExamples int) *Sample {
	return &Sample{
		UserOffsets: base.NewMatrix32(numUsers, tib.itemTopics),
		ItemOffsets: base.NewMatrix32(numItems, tib.userTopics),
		UserTopics:  make([]int32, numExamples),
		ItemTopics:  make([]int32, numExamples),
		Residuals:   make([]float32, numExamples),
	}
}

// SampleConfig gates one invocation of the offset sampler.
type SampleConfig struct {
	Jobs              int
	SampleUserOffsets bool
	SampleItemOffsets bool
}

// NewSampleConfig creates a config with both sides enabled.
func NewSampleConfig() *SampleConfig {
	return &SampleConfig{
		Jobs:              1,
		SampleUserOffsets: true,
		SampleItemOffsets: true,
	}
}

func (config *SampleConfig) SetJobs(jobs int) *SampleConfig {
	config.Jobs = jobs
	return config
}

func (config *SampleConfig) SetUserOffsets(enabled bool) *SampleConfig {
	config.SampleUserOffsets = enabled
	return config
}

func (config *SampleConfig) SetItemOffsets(enabled bool) *SampleConfig {
	config.SampleItemOffsets = enabled
	return config
}
