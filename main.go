package main

import (
	capstan "github.com/songstitch/capstan/cmd/capstan"
)

func main() {
	capstan.Execute()
}
