package main

import (
	"log"
	"os"
)

func createFile(filename string) *os.File {
	f, err := os.Create(filename)
	raiseError(err)

	return f
}

func raiseError(err error) {
	if err != nil {
		if *debug {
			log.Panic(err)
		} else {
			log.Fatalln(err)
		}
	}
}
