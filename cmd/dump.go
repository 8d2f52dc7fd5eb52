package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sablelang/sable/internal/ir"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [paths...]",
	Short: "Parse IR files and print their canonical form",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file paths")
			os.Exit(1)
		}

		for _, path := range args {
			source, err := os.ReadFile(path)
			if err != nil {
				logger.Error("Error reading file", zap.String("file", path), zap.Error(err))
				os.Exit(1)
			}

			types := ir.NewTypeTable()
			mod, err := ir.ParseModule(types, string(source))
			if err != nil {
				logger.Error("Error parsing file", zap.String("file", path), zap.Error(err))
				os.Exit(1)
			}
			if err := ir.VerifyModule(mod); err != nil {
				logger.Error("Malformed module", zap.String("file", path), zap.Error(err))
				os.Exit(1)
			}

			fmt.Print(ir.FormatModule(types, mod))
		}
	},
}
