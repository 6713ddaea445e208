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

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_AddRating(t *testing.T) {
	d := NewDataset(0)
	d.AddRating("1", "10", 5)
	d.AddRating("1", "20", 3)
	d.AddRating("2", "10", 1)

	assert.Equal(t, 2, d.CountUsers())
	assert.Equal(t, 2, d.CountItems())
	assert.Equal(t, 3, d.CountExamples())
	assert.Equal(t, []int32{0, 0, 1}, d.GetUsers())
	assert.Equal(t, []int32{0, 1, 0}, d.GetItems())
	assert.Equal(t, []float32{5, 3, 1}, d.GetRatings())
	// adjacency holds example indices in insertion order
	assert.Equal(t, [][]int32{{0, 1}, {2}}, d.GetExampsByUser())
	assert.Equal(t, [][]int32{{0, 2}, {1}}, d.GetExampsByItem())
	assert.InDelta(t, 3.0, d.MeanRating(), 1e-6)
}

func TestDataset_AdjacencyInvariant(t *testing.T) {
	d := NewDataset(0)
	d.AddRating("a", "x", 1)
	d.AddRating("b", "y", 2)
	d.AddRating("a", "y", 3)
	d.AddRating("c", "x", 4)
	for u, examps := range d.GetExampsByUser() {
		for _, e := range examps {
			assert.Equal(t, int32(u), d.GetUsers()[e])
		}
	}
	for i, examps := range d.GetExampsByItem() {
		for _, e := range examps {
			assert.Equal(t, int32(i), d.GetItems()[e])
		}
	}
}

func TestLoadDataFromCSV(t *testing.T) {
	temp := t.TempDir()
	path := filepath.Join(temp, "u.data")
	content := "1\t10\t5\t874965758\n" +
		"1\t20\t3\t876893171\n" +
		"2\t10\t1\t878542960\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := LoadDataFromCSV(path, "\t", false)
	assert.NoError(t, err)
	assert.Equal(t, 2, d.CountUsers())
	assert.Equal(t, 2, d.CountItems())
	assert.Equal(t, 3, d.CountExamples())
	assert.Equal(t, []float32{5, 3, 1}, d.GetRatings())

	// header line is skipped
	pathHeader := filepath.Join(temp, "header.csv")
	assert.NoError(t, os.WriteFile(pathHeader, []byte("user,item,rating\n1,2,4.5\n"), 0644))
	d, err = LoadDataFromCSV(pathHeader, ",", true)
	assert.NoError(t, err)
	assert.Equal(t, 1, d.CountExamples())
	assert.Equal(t, []float32{4.5}, d.GetRatings())

	// malformed line
	pathBad := filepath.Join(temp, "bad.csv")
	assert.NoError(t, os.WriteFile(pathBad, []byte("1,2\n"), 0644))
	_, err = LoadDataFromCSV(pathBad, ",", false)
	assert.Error(t, err)

	// missing file
	_, err = LoadDataFromCSV(filepath.Join(temp, "missing.csv"), ",", false)
	assert.Error(t, err)
}

func TestFreqDict(t *testing.T) {
	d := NewFreqDict()
	assert.Equal(t, 0, d.Count())
	assert.Equal(t, 0, d.Id("a"))
	assert.Equal(t, 1, d.Id("b"))
	assert.Equal(t, 0, d.Id("a"))
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, 2, d.Freq(0))
	assert.Equal(t, 1, d.Freq(1))
	assert.Equal(t, 0, d.Freq(2))

	s, ok := d.String(1)
	assert.True(t, ok)
	assert.Equal(t, "b", s)
	_, ok = d.String(2)
	assert.False(t, ok)
}
