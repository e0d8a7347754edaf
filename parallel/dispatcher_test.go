package parallel_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/databricks/databricks-sdk-go/logger"
	"github.com/databrickslabs/sandbox/buckets/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.DefaultLogger = &logger.SimpleLogger{
		Level: logger.LevelDebug,
	}
}

func TestTasksMapsEverything(t *testing.T) {
	ctx := context.Background()
	var tasks []int
	for i := range 100 {
		tasks = append(tasks, i)
	}

	squares, err := parallel.Tasks(ctx, 4, tasks, func(_ context.Context, i int) (int, error) {
		return i * i, nil
	})
	require.NoError(t, err)
	require.Len(t, squares, 100)

	total := 0
	for _, v := range squares {
		total += v
	}
	// 0² + 1² + … + 99²
	assert.Equal(t, 328350, total)
}

func TestTasksReturnsFirstError(t *testing.T) {
	ctx := context.Background()
	tasks := []int{1, 2, 3, 4, 5}

	out, err := parallel.Tasks(ctx, 2, tasks, func(_ context.Context, i int) (int, error) {
		if i == 3 {
			return 0, fmt.Errorf("task %d exploded", i)
		}
		return i, nil
	})
	assert.Nil(t, out)
	assert.ErrorContains(t, err, "exploded")
}

func TestTasksWithNoTasks(t *testing.T) {
	out, err := parallel.Tasks(context.Background(), 4, nil, func(_ context.Context, i int) (int, error) {
		return i, nil
	})
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestTasksClampsWorkerCount(t *testing.T) {
	out, err := parallel.Tasks(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, i int) (int, error) {
		return i * 10, nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{10, 20, 30}, out)
}

func TestTasksHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var tasks []int
	for i := range 1000 {
		tasks = append(tasks, i)
	}
	out, _ := parallel.Tasks(ctx, 2, tasks, func(_ context.Context, i int) (int, error) {
		return i, nil
	})
	assert.Less(t, len(out), 1000)
}
