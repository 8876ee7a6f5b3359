package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

func TestFetchResultPassesThroughError(t *testing.T) {
	boom := errors.New("boom")
	res, err := fetchResult(&timetable.Result{}, boom)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}

func TestFetchResultRejectsNilResult(t *testing.T) {
	res, err := fetchResult[timetable.Result](nil, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestFetchResultReturnsResult(t *testing.T) {
	want := &timetable.ExamResult{Version: "e1"}
	got, err := fetchResult(want, nil)
	require.NoError(t, err)
	assert.Same(t, want, got)
}
