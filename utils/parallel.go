package utils

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"
	"time"

	"go.uber.org/multierr"
	goutils "go.viam.com/utils"
)

// ParallelForEachPixel loops through an image of the given size and calls f
// for each [x, y] position. The image is divided into N * N blocks, where N
// is the number of available processor threads, with one goroutine per block.
func ParallelForEachPixel(size image.Point, f func(x, y int)) {
	procs := runtime.GOMAXPROCS(0)
	var waitGroup sync.WaitGroup
	waitGroup.Add(procs * procs)
	for i := 0; i < procs; i++ {
		startX := i * int(math.Floor(float64(size.X)/float64(procs)))
		endX := (i + 1) * int(math.Floor(float64(size.X)/float64(procs)))
		if i == procs-1 {
			endX = size.X
		}
		for j := 0; j < procs; j++ {
			startY := j * int(math.Floor(float64(size.Y)/float64(procs)))
			endY := (j + 1) * int(math.Floor(float64(size.Y)/float64(procs)))
			if j == procs-1 {
				endY = size.Y
			}
			sX, eX, sY, eY := startX, endX, startY, endY
			goutils.PanicCapturingGo(func() {
				defer waitGroup.Done()
				for x := sX; x < eX; x++ {
					for y := sY; y < eY; y++ {
						f(x, y)
					}
				}
			})
		}
	}
	waitGroup.Wait()
}

// SimpleFunc is for RunInParallel.
type SimpleFunc func(ctx context.Context) error

// RunInParallel runs all functions in parallel, returning the elapsed time
// and any errors combined. The context passed to the functions is canceled
// as soon as one of them fails.
func RunInParallel(ctx context.Context, fs []SimpleFunc) (time.Duration, error) {
	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	var bigError error
	var bigErrorMutex sync.Mutex
	storeError := func(err error) {
		bigErrorMutex.Lock()
		defer bigErrorMutex.Unlock()
		if bigError == nil || !errors.Is(err, context.Canceled) {
			bigError = multierr.Combine(bigError, err)
		}
	}

	for _, f := range fs {
		f := f
		wg.Add(1)
		go func() {
			defer func() {
				if thePanic := recover(); thePanic != nil {
					storeError(fmt.Errorf("got panic running something in parallel: %v", thePanic))
					cancel()
				}
				wg.Done()
			}()
			if err := f(ctx); err != nil {
				storeError(err)
				cancel()
			}
		}()
	}

	wg.Wait()
	return time.Since(start), bigError
}
