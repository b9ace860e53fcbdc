package concurrent

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sceneforge/sceneforge/pkg/sequence"
)

// Concurrent runs the action function for each element of the iterator in a
// separate goroutine. It waits for all goroutines to finish. If action
// returns an error, it returns the first error encountered.
func Concurrent[T any](i *sequence.Iterator[T], action func(T) error) error {
	errGroup := errgroup.Group{}
	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		errGroup.Go(func() error {
			return action(value)
		})
	}

	return errGroup.Wait()
}

// Throttle runs the action for each element with at most concurrency
// goroutines in flight, waiting for all of them to finish.
func Throttle[T any](i *sequence.Iterator[T], concurrency int, action func(T)) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	next, stop := i.Pull()
	defer stop()
	for {
		value, valid := next()
		if !valid {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(v T) {
			defer wg.Done()
			action(v)
			<-sem
		}(value)
	}
	wg.Wait()
}
