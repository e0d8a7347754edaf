package main

import (
	"context"

	"github.com/databrickslabs/sandbox/buckets/cmd/wordbag/cmd"
)

func main() {
	cmd.Run(context.Background())
}
