// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeControlStopFlag(t *testing.T) {
	tc := NewFixedDepthTimeControl(10)
	require.False(t, tc.ShouldStop())
	tc.Stop()
	require.True(t, tc.ShouldStop())
}

func TestTimeControlDeadlineExpires(t *testing.T) {
	tc := NewTimeControl(0, 10)
	time.Sleep(time.Millisecond)
	require.True(t, tc.ShouldStop())
}

func TestTimeControlDepthAllowed(t *testing.T) {
	tc := NewFixedDepthTimeControl(5)
	require.True(t, tc.DepthAllowed(5))
	require.False(t, tc.DepthAllowed(6))
}

func TestTimeControlUnlimitedDepth(t *testing.T) {
	tc := NewFixedDepthTimeControl(0)
	require.True(t, tc.DepthAllowed(1000))
}

func TestNewDeadlineTimeControl(t *testing.T) {
	tc := NewDeadlineTimeControl(time.Now().Add(-time.Second))
	require.True(t, tc.ShouldStop())
}
