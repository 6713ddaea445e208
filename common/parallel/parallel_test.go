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

package parallel

import (
	"context"
	"fmt"
	"testing"

	"github.com/gorse-io/m3f/common/util"
	"github.com/stretchr/testify/assert"
)

func TestParallelFail(t *testing.T) {
	// multiple threads
	err := Parallel(context.Background(), 10000, 4, func(workerId, jobId int) error {
		if jobId%2 == 1 {
			return fmt.Errorf("error from %d", jobId)
		}
		return nil
	})
	assert.Error(t, err)
	// single thread
	err = Parallel(context.Background(), 10000, 1, func(workerId, jobId int) error {
		if jobId%2 == 1 {
			return fmt.Errorf("error from %d", jobId)
		}
		return nil
	})
	assert.Error(t, err)
}

func TestFor(t *testing.T) {
	a := util.RangeInt(10000)
	b := make([]int, len(a))
	// multiple threads
	err := For(context.Background(), len(a), 4, func(jobId int) {
		b[jobId] = a[jobId]
	})
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	// single thread
	err = For(context.Background(), len(a), 1, func(jobId int) {
		b[jobId] = a[jobId]
	})
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestForEach(t *testing.T) {
	a := util.RangeInt(10000)
	b := make([]int, len(a))
	// multiple threads
	err := ForEach(context.Background(), a, 4, func(i, v int) {
		b[i] = v
	})
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	// single thread
	err = ForEach(context.Background(), a, 1, func(i, v int) {
		b[i] = v
	})
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSplit(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6}
	b := Split(a, 3)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, b)

	a = []int{1, 2, 3, 4, 5, 6, 7}
	b = Split(a, 3)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}, {6, 7}}, b)
}
