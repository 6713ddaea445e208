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
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Dataset is a dyadic ratings dataset. Every example is one observed
// (user, item, rating) event. Host-side ids are converted to dense 0-based
// indices at this boundary; the per-entity adjacency lists hold example
// indices in insertion order and are built once, read-only afterwards.
type Dataset struct {
	users        []int32
	items        []int32
	ratings      []float32
	exampsByUser [][]int32
	exampsByItem [][]int32
	userDict     *FreqDict
	itemDict     *FreqDict
}

func NewDataset(capacity int) *Dataset {
	return &Dataset{
		users:    make([]int32, 0, capacity),
		items:    make([]int32, 0, capacity),
		ratings:  make([]float32, 0, capacity),
		userDict: NewFreqDict(),
		itemDict: NewFreqDict(),
	}
}

func (d *Dataset) CountUsers() int {
	return d.userDict.Count()
}

func (d *Dataset) CountItems() int {
	return d.itemDict.Count()
}

func (d *Dataset) CountExamples() int {
	return len(d.ratings)
}

// GetUsers returns the user index of each example.
func (d *Dataset) GetUsers() []int32 {
	return d.users
}

// GetItems returns the item index of each example.
func (d *Dataset) GetItems() []int32 {
	return d.items
}

// GetRatings returns the observed rating of each example.
func (d *Dataset) GetRatings() []float32 {
	return d.ratings
}

// GetExampsByUser returns the ordered example indices of each user.
func (d *Dataset) GetExampsByUser() [][]int32 {
	return d.exampsByUser
}

// GetExampsByItem returns the ordered example indices of each item.
func (d *Dataset) GetExampsByItem() [][]int32 {
	return d.exampsByItem
}

func (d *Dataset) GetUserDict() *FreqDict {
	return d.userDict
}

func (d *Dataset) GetItemDict() *FreqDict {
	return d.itemDict
}

// MeanRating returns the mean of all observed ratings.
func (d *Dataset) MeanRating() float32 {
	if len(d.ratings) == 0 {
		return 0
	}
	var sum float32
	for _, r := range d.ratings {
		sum += r
	}
	return sum / float32(len(d.ratings))
}

// AddRating adds one example and links it into both adjacency lists.
func (d *Dataset) AddRating(userId, itemId string, rating float32) {
	userIndex := d.userDict.Id(userId)
	itemIndex := d.itemDict.Id(itemId)
	e := int32(len(d.ratings))
	d.users = append(d.users, int32(userIndex))
	d.items = append(d.items, int32(itemIndex))
	d.ratings = append(d.ratings, rating)
	for len(d.exampsByUser) <= userIndex {
		d.exampsByUser = append(d.exampsByUser, nil)
	}
	for len(d.exampsByItem) <= itemIndex {
		d.exampsByItem = append(d.exampsByItem, nil)
	}
	d.exampsByUser[userIndex] = append(d.exampsByUser[userIndex], e)
	d.exampsByItem[itemIndex] = append(d.exampsByItem[itemIndex], e)
}

// LoadDataFromCSV loads a dataset from a delimited text file of
// `user<sep>item<sep>rating` rows, such as the MovieLens u.data format.
// Extra columns are ignored.
func LoadDataFromCSV(path, sep string, hasHeader bool) (*Dataset, error) {
	dataset := NewDataset(0)
	// open file
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	// read lines
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if hasHeader {
			hasHeader = false
			continue
		}
		fields := strings.Split(line, sep)
		if len(fields) < 3 {
			return nil, errors.NotValidf("line %q", line)
		}
		rating, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return nil, errors.Trace(err)
		}
		dataset.AddRating(fields[0], fields[1], float32(rating))
	}
	return dataset, errors.Trace(scanner.Err())
}
