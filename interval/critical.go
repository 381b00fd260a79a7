// Copyright 2024 Fantom Foundation
// This file is part of the Interval Confidence-Interval Toolkit
//
// Interval is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Interval is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Interval. If not, see <http://www.gnu.org/licenses/>.

package interval

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"gonum.org/v1/gonum/stat/distuv"
)

const criticalCacheSize = 4096

// criticalKey identifies a cached critical value; df is zero for the normal
// distribution.
type criticalKey struct {
	normal     bool
	confidence float64
	df         int
}

// criticalCache memoises quantile evaluations.
var criticalCache *lru.Cache

func init() {
	var err error
	criticalCache, err = lru.New(criticalCacheSize)
	if err != nil {
		panic(err)
	}
}

// CriticalValue returns the two-tailed critical value for the confidence
// level: the standard normal quantile for Normal and Proportion, and the
// Student-t quantile with n-1 degrees of freedom for T.
func CriticalValue(mode Mode, confidence float64, n int) (float64, error) {
	if mode == Auto {
		mode = SelectMode(n, false)
	}
	if !(confidence > 0 && confidence < 1) {
		return 0, fmt.Errorf("confidence %v outside (0, 1): %w", confidence, ErrInvalidParameter)
	}
	if n < 1 {
		return 0, fmt.Errorf("sample size %d must be positive: %w", n, ErrInvalidParameter)
	}

	key := criticalKey{confidence: confidence}
	switch mode {
	case Normal, Proportion:
		key.normal = true
	case T:
		if n < 2 {
			return 0, fmt.Errorf("t-distribution needs a sample size of at least 2, got %d: %w", n, ErrInvalidParameter)
		}
		key.df = n - 1
	default:
		return 0, fmt.Errorf("unsupported mode %v: %w", mode, ErrInvalidParameter)
	}

	if v, ok := criticalCache.Get(key); ok {
		return v.(float64), nil
	}
	v := quantile(key)
	criticalCache.Add(key, v)
	return v, nil
}

// quantile evaluates the upper two-tailed quantile 1 - (1-c)/2.
func quantile(key criticalKey) float64 {
	p := 1 - (1-key.confidence)/2
	if key.normal {
		return distuv.UnitNormal.Quantile(p)
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(key.df)}.Quantile(p)
}
