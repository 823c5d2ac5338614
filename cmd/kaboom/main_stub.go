//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of kaboom requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/kaboom` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a windowless render, use `go run ./cmd/snapshot`.")
	os.Exit(2)
}
