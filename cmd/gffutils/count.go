package main

import (
	"fmt"

	"github.com/roryk/gffutils"
)

type cmdCount struct {
	file string
}

func (c *cmdCount) run() {
	r, err := gffutils.Open(c.file, nil, nil)
	raiseError(err)
	defer r.Close()

	n, err := r.Count()
	raiseError(err)
	fmt.Printf("%s\t%s\t%d\n", c.file, r.Filetype(), n)
}
