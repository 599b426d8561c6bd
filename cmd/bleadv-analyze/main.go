package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/daveverwer/Bluetooth/pkg/bleadv"
)

var (
	rootCmd = &cobra.Command{
		Use:   "bleadv-analyze [hex]",
		Short: "Decode Bluetooth LE advertising payloads",
		Long:  "bleadv-analyze decodes the GAP records of a Bluetooth LE advertising or scan-response payload.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := bleadv.AnalyzeOptions{IgnoreUnknown: lenient}
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx, opts)
			}
			return runAnalyze(ctx, opts, args[0])
		},
	}

	lenient bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "skip unknown record types instead of failing")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(ctx context.Context, opts bleadv.AnalyzeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("bleadv analyze mode. Paste a hex payload and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runAnalyze(ctx, opts, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runAnalyze(ctx context.Context, opts bleadv.AnalyzeOptions, hex string) error {
	result, err := bleadv.AnalyzeHexWithOptions(ctx, hex, opts)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
