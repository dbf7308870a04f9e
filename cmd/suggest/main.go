// Command suggest builds and queries autocompletion indexes.
//
//	suggest build --words words.txt
//	suggest suggest cas
//	suggest -i s3://my-bucket/indexes/tests.idx suggest tests/test_api
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
