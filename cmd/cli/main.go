// botreport - Bot Transaction Duration Report
//
// botreport reads a log of bot transactions and reports, line by line, whether
// each transaction took longer than expected for its bot size.
package main

import (
	"os"

	"github.com/ccollicutt/botreport/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
