// Command swiftmt is a thin demonstration binary: it reads a raw FIN MT
// message, parses it, runs the network-validation layer, and prints the
// result. It is not a product CLI surface.
package main

import (
	"fmt"
	"os"

	"github.com/deltran/swiftmt"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: swiftmt <path-to-fin-message>")
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := swiftmt.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Fatal("failed to read input file", zap.Error(err))
	}

	opts := []swiftmt.Option{swiftmt.WithLogger(logger), swiftmt.WithRuleConfig(cfg)}

	msg, errs, err := swiftmt.ParseAndValidate(raw, opts...)
	if err != nil {
		logger.Fatal("parse failed", zap.Error(err))
	}

	fmt.Printf("message type: %s\n", msg.MessageType())
	if len(errs) == 0 {
		fmt.Println("validation: passed")
	} else {
		fmt.Printf("validation: %d rule violation(s)\n", len(errs))
		for _, e := range errs {
			fmt.Printf("  %s\n", e.Error())
		}
	}

	reemitted, err := swiftmt.Emit(msg, opts...)
	if err != nil {
		logger.Fatal("emit failed", zap.Error(err))
	}
	fmt.Println("---")
	fmt.Println(reemitted)
}
