package capstan

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/songstitch/capstan/pkg/dockerfile"
)

var utf8bom = []byte{0xEF, 0xBB, 0xBF}

func init() {
	rootCmd.PersistentFlags().
		StringP("input", "i", "Dockerfile", "Dockerfile to parse")
}

var rootCmd = &cobra.Command{
	Use:           "capstan",
	Short:         "capstan parses Dockerfiles into typed instructions",
	Long:          "capstan parses Dockerfiles into a typed sequence of instructions, and can rewrite them canonically or anchor their base images to digests.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		doc, err := parseFile(input)
		if err != nil {
			return err
		}

		for _, instruction := range doc.Instructions {
			switch in := instruction.(type) {
			case dockerfile.From:
				color.Cyan("FROM")
				fmt.Printf("\timage: %s\n", in.Image)
			case dockerfile.Run:
				color.Cyan("RUN")
				fmt.Printf("\tcommand: %s\n", in.Command)
			default:
				color.Cyan("%s", in.Name())
			}
		}
		color.Green("Parsed %d instructions from %s", len(doc.Instructions), input)
		return nil
	},
}

func parseFile(path string) (*dockerfile.Dockerfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content = bytes.TrimPrefix(content, utf8bom)
	doc, err := dockerfile.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}
}
