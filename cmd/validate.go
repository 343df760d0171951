package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/brandquad/decomposer"
	"github.com/spf13/cobra"
)

var validateKind string

var validateCmd = &cobra.Command{
	Use:   "validate <record.json>",
	Short: "Validate a slide or result record against its JSON schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "result", "Record kind: result or slide")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read record: %w", err)
	}

	switch validateKind {
	case "result":
		err = decomposer.ValidateResultJSON(data)
	case "slide":
		err = decomposer.ValidateSlideJSON(data)
	default:
		return fmt.Errorf("unknown record kind %q", validateKind)
	}

	var ve *decomposer.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			log.Printf("[!] %s: %s", fe.Field, fe.Message)
		}
	}
	if err != nil {
		return err
	}
	log.Println("[<] Record is valid:", args[0])
	return nil
}
