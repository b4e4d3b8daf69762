package main

import (
	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
	cli "github.com/viant/roomplanner/cmd/roomplanner"
	"os"
)

func main() {
	cli.Run(os.Args[1:])
}
