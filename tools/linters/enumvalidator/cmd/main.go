package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/Akhil-Baki/empathetic-email-helper/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
