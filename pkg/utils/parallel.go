package utils

import (
	"sync"
	"sync/atomic"
)

// ParallelMap 使用最多 workers 个 goroutine 并发执行 fn，结果顺序与输入一致。
// 输入不超过 1 个或 workers <= 1 时直接在当前 goroutine 中顺序执行。
func ParallelMap[T any, R any](inputs []T, workers int, fn func(T) R) []R {
	results := make([]R, len(inputs))
	if len(inputs) == 0 {
		return results
	}
	if len(inputs) == 1 || workers <= 1 {
		for i, in := range inputs {
			results[i] = fn(in)
		}
		return results
	}

	workers = min(workers, len(inputs))

	// 通过原子下标分发任务，避免为每个输入创建 channel 元素
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= len(inputs) {
					return
				}
				results[i] = fn(inputs[i])
			}
		}()
	}
	wg.Wait()
	return results
}
