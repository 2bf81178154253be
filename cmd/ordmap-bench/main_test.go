package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Run_InsertHeavy_ProducesPositiveThroughput(t *testing.T) {
	t.Parallel()

	r := run("insert-heavy", 500, 1)

	assert.Equal(t, "insert-heavy", r.Workload)
	assert.Equal(t, 500, r.Size)
	assert.Greater(t, r.OpsPerS, 0.0)
}

func Test_Run_EraseHeavy_Completes(t *testing.T) {
	t.Parallel()

	r := run("erase-heavy", 200, 2)
	assert.Greater(t, r.Elapsed.Nanoseconds(), int64(0))
}

func Test_Run_Mixed_Completes(t *testing.T) {
	t.Parallel()

	r := run("mixed", 200, 3)
	assert.Greater(t, r.OpsPerS, 0.0)
}
