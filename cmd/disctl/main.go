package main

import "github.com/danmuck/discodec/cmd/disctl/cmd"

func main() {
	cmd.Execute()
}
