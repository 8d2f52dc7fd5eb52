package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sablelang/sable/opt"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered simplification rules",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := opt.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize simplification engine", zap.Error(err))
		}
		for _, name := range engine.RuleNames() {
			fmt.Println(name)
		}
	},
}
