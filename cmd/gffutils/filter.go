package main

import (
	"bufio"
	"io"
	"log"

	"github.com/roryk/gffutils"
)

type cmdFilter struct {
	in     string
	out    string
	ignore []string
	only   []string
}

func (c *cmdFilter) run() {
	r, err := gffutils.Open(c.in, c.ignore, c.only)
	raiseError(err)
	defer r.Close()

	w := createFile(c.out)
	defer w.Close()
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	n := 0
	for {
		f, err := r.Read()
		if err != nil {
			if err != io.EOF {
				raiseError(err)
			}
			break
		}
		bw.WriteString(f.String())
		bw.WriteByte('\n')
		n++
	}

	if *debug {
		log.Printf("wrote %d records\n", n)
	}
}
