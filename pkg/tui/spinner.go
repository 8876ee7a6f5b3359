package tui

import (
	"errors"

	"github.com/charmbracelet/huh/spinner"
)

// ErrNoResult is returned when a fetch finished without an error but also
// without a result, e.g. because the spinner was interrupted.
var ErrNoResult = errors.New("fetch returned no result")

// WithSpinner runs fetch behind a spinner titled title.
func WithSpinner[T any](title string, fetch func() (*T, error)) (*T, error) {
	var res *T
	var err error

	if runErr := spinner.New().
		Title(title).
		Action(func() {
			res, err = fetch()
		}).
		Run(); runErr != nil {
		return nil, runErr
	}

	return fetchResult(res, err)
}

func fetchResult[T any](res *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNoResult
	}
	return res, nil
}
