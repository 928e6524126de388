package main

import (
	"github.com/CompassSecurity/keyleek/internal/cmd"
	"github.com/CompassSecurity/keyleek/internal/cmd/common"
)

func main() {
	common.Run(cmd.NewRootCmd())
}
