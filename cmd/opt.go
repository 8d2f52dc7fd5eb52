package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sablelang/sable/formatter"
	"github.com/sablelang/sable/internal/ir"
	"github.com/sablelang/sable/opt"
)

var (
	ignoreRules string
	emitIR      bool
	outPath     string
)

var optCmd = &cobra.Command{
	Use:   "opt [paths...]",
	Short: "Run the peephole simplifier over IR files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := opt.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize simplification engine", zap.Error(err))
		}

		if ignoreRules != "" {
			rules := strings.Split(ignoreRules, ",")
			for _, rule := range rules {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		runOptProcess(ctx, logger, engine, args, emitIR, outPath)
	},
}

func init() {
	optCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
	optCmd.Flags().BoolVar(&emitIR, "emit", false, "Print the rewritten IR after the report")
	optCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the rewritten IR to a file")
}

func runOptProcess(ctx context.Context, logger *zap.Logger, engine opt.Engine, paths []string, emit bool, out string) {
	results, err := opt.ProcessFiles(ctx, logger, engine, paths)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	total := 0
	for _, res := range results {
		fmt.Println(formatter.GenerateFormattedReport(res.Path, res.Rewrites))
		total += len(res.Rewrites)

		if emit {
			fmt.Println(ir.FormatModule(res.Types, res.Module))
		}
		if out != "" {
			if err := os.WriteFile(out, []byte(ir.FormatModule(res.Types, res.Module)), 0o644); err != nil {
				logger.Error("Error writing output file", zap.String("file", out), zap.Error(err))
				os.Exit(1)
			}
		}
	}
	fmt.Println(formatter.Summary(len(results), total))
}
