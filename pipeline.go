package collide

import "sync"

// parallelRange splits the index range [0, size) into one contiguous chunk
// per worker, runs fn on each chunk in its own goroutine, and blocks until
// every chunk is done.
func parallelRange(workers, size int, fn func(from, to int)) {
	if workers < 1 {
		workers = 1
	}
	chunkSize := (size + workers - 1) / workers

	var wg sync.WaitGroup
	for workerID := 0; workerID < workers; workerID++ {
		from := workerID * chunkSize
		to := min(from+chunkSize, size)
		if from >= to {
			break
		}

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			fn(from, to)
		}(from, to)
	}
	wg.Wait()
}
