package main

import (
	"os"

	"github.com/dmitrijs2005/exactauth/internal/accountctl"
)

func main() {
	os.Exit(accountctl.Execute())
}
